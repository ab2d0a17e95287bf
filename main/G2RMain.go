package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"g2rapid/common/logger"
	"g2rapid/common/utils/sys"
	"g2rapid/project"
	"g2rapid/project/util"

	"github.com/alexflint/go-arg"
	"go.uber.org/multierr"
)

type args struct {
	Input    string `arg:"-i,--input,required" help:"G-code input file, - for stdin"`
	Output   string `arg:"-o,--output" help:"RAPID module output file; stdout when empty"`
	Settings string `arg:"--settings" default:"settings.json" help:"settings file, created with defaults if missing"`
	Presets  string `arg:"--presets" default:"position_presets.json" help:"orientation preset catalog"`
	ArmSpeed *int   `arg:"--arm-speed" help:"override arm speed; 0 uses the G-code feed rate"`
	Zone     *int   `arg:"--zone" help:"override zone"`
	Port     string `arg:"--port" help:"serial device to upload the module to"`
	Baud     int    `arg:"--baud" default:"9600"`
	LogFile  string `arg:"--log" help:"rotating log file"`
	Verbose  bool   `arg:"-v,--verbose"`
}

func (args) Description() string {
	return "Converts G-code motion commands into an ABB RAPID module."
}

func readInput(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	return string(data), err
}

func convert(text string, settings *project.AppSettings) project.ConversionResult {
	dispatcher := project.NewDispatcher()
	defer dispatcher.Close()

	done := make(chan project.ConversionResult, 1)
	dispatcher.Submit(text, settings, func(result project.ConversionResult) {
		done <- result
	})
	return <-done
}

func run(a args) error {
	util.ExpandPaths(&a.Input, &a.Output, &a.Settings, &a.Presets)
	text, err := readInput(a.Input)
	if err != nil {
		return err
	}

	settings := project.NewSettingsStore(a.Settings).Load()
	project.LoadPresetCatalog(a.Presets).ApplyTo(settings)
	if a.ArmSpeed != nil {
		if err := settings.SetArmSpeed(*a.ArmSpeed); err != nil {
			return err
		}
	}
	if a.Zone != nil {
		if err := settings.SetZone(*a.Zone); err != nil {
			return err
		}
	}

	result := convert(text, settings)
	if errors.Is(result.Err, project.ErrNilSettings) {
		return result.Err
	}
	for _, lineErr := range multierr.Errors(result.Err) {
		logger.Warnf("%v", lineErr)
	}

	extracted := project.ExtractCoordinatesFromRapid(result.Output)
	if len(extracted) != len(result.Trace)-1 {
		logger.Warnf("round trip mismatch: %d positions in text, %d in trace", len(extracted), len(result.Trace)-1)
	}
	if b, ok := project.TraceBounds(result.Trace); ok {
		logger.Infof("job %s: %d positions, min %+v, max %+v, centroid %+v",
			result.ID, len(result.Trace), b.Min, b.Max, b.Centroid)
	}

	module, err := project.BuildRapidModule(result.Lines, settings)
	if err != nil {
		return err
	}
	if a.Output == "" {
		fmt.Print(module)
	} else if err := project.WriteRapidFile(result.Lines, a.Output, settings); err != nil {
		return err
	}

	if a.Port != "" {
		return project.UploadProgram(project.SerialConfig{Name: a.Port, Baud: a.Baud}, module)
	}
	return nil
}

func main() {
	var a args
	arg.MustParse(&a)

	level := logger.InfoLevel
	if a.Verbose {
		level = logger.DebugLevel
	}
	util.ExpandPaths(&a.LogFile)
	logger.InitLogger(level, a.LogFile, logger.SUPPORT_COLOR, 10, 3, 28)
	defer logger.Sync()
	logger.Debugf("main thread %d running", sys.GetGID())

	if err := run(a); err != nil {
		logger.Fatalf("g2rapid: %v", err)
	}
}
