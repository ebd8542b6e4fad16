package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vasalvit/lsys/internal/app"
)

// ExitError is an error that carries the process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns the config, whether
// the program should exit cleanly right away, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("lsys", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
lsys - draws L-system figures into PNG or SVG files.

Usage:
  lsys [options] [OUTPUT]

Arguments:
  OUTPUT
    File to write, .png or .svg. Same as -o.

Options:
`)
		flagSet.PrintDefaults()
	}

	presetFlag := flagSet.String("preset", "", "Start from a built-in preset, see -list.")
	listFlag := flagSet.Bool("list", false, "Print the built-in preset names and exit.")
	axiomFlag := flagSet.String("axiom", "", "Starting rule.")
	rulesFlag := flagSet.String("rules", "", "Rule definitions like 'f=f+f', one per line or separated by ';'.")
	angleFlag := flagSet.Float64("angle", 0, "Initial heading in degrees; 0 points down the canvas.")
	stepFlag := flagSet.Float64("step", 0, "Degrees turned by each '+' or '-'.")
	scaleFlag := flagSet.Float64("scale", 0, "Step length multiplier applied on each expansion.")
	depthFlag := flagSet.Int("depth", 0, "Expansion depth.")
	sizeFlag := flagSet.Int("size", 400, "Canvas width and height in pixels.")
	borderFlag := flagSet.Float64("border", 10, "Margin left around the figure, in pixels.")
	axesFlag := flagSet.Bool("axes", true, "Draw the axes and the canvas bounds.")
	maxSegmentsFlag := flagSet.Int("max-segments", 1000000, "Stop with an error after this many moves or expansions. 0 is unlimited.")
	stateFlag := flagSet.String("state", "", "Settings file to start from and to update after the run.")
	outFlag := flagSet.String("o", "", "File to write, .png or .svg.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	outPath := *outFlag
	if outPath == "" && flagSet.NArg() > 0 {
		outPath = flagSet.Arg(0)
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected arguments: %s", strings.Join(flagSet.Args()[1:], " "))}
	}

	if outPath == "" && !*listFlag {
		slog.Debug("No output given, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	// Only flags given on the command line override the preset and the
	// saved settings.
	var overrides app.Overrides
	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "axiom":
			overrides.Axiom = axiomFlag
		case "rules":
			rules := strings.ReplaceAll(*rulesFlag, ";", "\n")
			overrides.Rules = &rules
		case "angle":
			overrides.InitialAngle = angleFlag
		case "step":
			overrides.AngleStep = stepFlag
		case "scale":
			overrides.ScaleMultiplier = scaleFlag
		case "depth":
			overrides.Depth = depthFlag
		}
	})
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		Output:      outPath,
		Preset:      *presetFlag,
		StatePath:   *stateFlag,
		List:        *listFlag,
		Size:        *sizeFlag,
		Border:      *borderFlag,
		Axes:        *axesFlag,
		MaxSegments: *maxSegmentsFlag,
		LogFormat:   logFormat,
		LogLevel:    logLevel,
		Overrides:   overrides,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
