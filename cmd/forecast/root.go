package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rpgo/wealth-forecast/internal/calculation"
	"github.com/rpgo/wealth-forecast/internal/config"
	"github.com/rpgo/wealth-forecast/internal/domain"
	"github.com/rpgo/wealth-forecast/internal/output"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var errNoSnapshot = errors.New("no snapshot file given; pass --file or generate one with 'forecast example'")

// app carries the state shared by every subcommand.
type app struct {
	file     string
	format   string
	months   int
	lenient  bool
	logLevel string
	logJSON  bool
	save     bool

	out    io.Writer
	log    *logrus.Logger
	engine *calculation.ForecastEngine
}

func newRootCmd(settings config.CLISettings, out, errOut io.Writer) *cobra.Command {
	a := &app{
		out:    out,
		log:    logrus.New(),
		engine: calculation.NewForecastEngine(),
	}
	a.log.SetOutput(errOut)

	root := &cobra.Command{
		Use:          "forecast",
		Short:        "Personal cash-flow and net-wealth forecaster",
		Long:         "forecast reads a financial snapshot (YAML or JSON) and projects monthly cash flow, yearly net wealth, what-if scenarios and carried interest.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.configureLogger()
			if a.months < 0 {
				return fmt.Errorf("--months must not be negative, got %d", a.months)
			}
			return nil
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVarP(&a.file, "file", "f", "", "snapshot file (.yaml, .yml or .json)")
	pf.StringVar(&a.format, "format", settings.Format, "report format: "+strings.Join(output.AvailableFormatterNames(), ", "))
	pf.IntVar(&a.months, "months", settings.Months, "number of months to forecast")
	pf.BoolVar(&a.lenient, "lenient", settings.Lenient, "skip snapshot validation")
	pf.StringVar(&a.logLevel, "log-level", settings.LogLevel, "log level (debug, info, warn, error)")
	pf.BoolVar(&a.logJSON, "log-json", settings.LogJSON, "emit logs as JSON")
	pf.BoolVar(&a.save, "save", false, "write the report to a timestamped file instead of stdout")

	root.AddCommand(
		newCashFlowCmd(a),
		newProjectCmd(a),
		newScenariosCmd(a),
		newCarryCmd(a),
		newUpcomingCmd(a),
		newExampleCmd(a),
		newValidateCmd(a),
		newFormatsCmd(a),
	)
	return root
}

func (a *app) configureLogger() {
	if a.logJSON {
		a.log.SetFormatter(&logrus.JSONFormatter{})
	}
	level, err := logrus.ParseLevel(a.logLevel)
	if err != nil {
		a.log.Warnf("unknown log level %q, using info", a.logLevel)
		level = logrus.InfoLevel
	}
	a.log.SetLevel(level)
	a.engine.SetLogger(a.log)
}

func (a *app) loadSnapshot() (*domain.Snapshot, error) {
	if a.file == "" {
		return nil, errNoSnapshot
	}
	loader := config.NewSnapshotLoader()
	loader.Lenient = a.lenient
	snapshot, err := loader.LoadFromFile(a.file)
	if err != nil {
		return nil, err
	}
	a.log.Debugf("loaded snapshot %s: %d income streams, %d expenses, %d assets, %d liabilities",
		a.file, len(snapshot.IncomeStreams), len(snapshot.Expenses), len(snapshot.Assets), len(snapshot.Liabilities))
	return snapshot, nil
}

// newReport seeds a report with the fields every command shares.
func newReport(title string, snapshot *domain.Snapshot) *output.Report {
	return &output.Report{
		Title:       title,
		Currency:    snapshot.Settings.Currency,
		Assumptions: output.GenerateAssumptions(*snapshot),
	}
}

func (a *app) render(report *output.Report) error {
	if !a.save {
		return output.GenerateReport(report, a.format, a.out)
	}
	f := output.GetFormatterByName(a.format)
	if f == nil {
		return fmt.Errorf("%w: %q", output.ErrUnsupportedFormat, a.format)
	}
	name, err := output.WriteFormatted(f, report, output.Extension(f))
	if err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	a.log.Infof("report written to %s", name)
	fmt.Fprintln(a.out, name)
	return nil
}
