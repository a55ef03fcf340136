// cmd/elixir/main.go
//
// Entry point for the elixir CLI.
//
// Flow:
// 1. Load elixir.yaml (or defaults) and apply flag overrides
// 2. Read the task CSV
// 3. Compute the CPM schedule
// 4. Write output.csv and timeline.csv, print the console report
// 5. Optionally open the interactive viewer

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Dragjon/elixir-cpm/internal/config"
	"github.com/Dragjon/elixir-cpm/internal/csvio"
	"github.com/Dragjon/elixir-cpm/internal/logging"
	"github.com/Dragjon/elixir-cpm/internal/report"
	"github.com/Dragjon/elixir-cpm/internal/schedule"
	"github.com/Dragjon/elixir-cpm/internal/tui"
)

func main() {
	var (
		configPath   string
		inputPath    string
		schedulePath string
		timelinePath string
		view         bool
		quiet        bool
	)
	flag.StringVar(&configPath, "config", "", "project config file (default elixir.yaml)")
	flag.StringVar(&inputPath, "input", "", "task CSV path (overrides config)")
	flag.StringVar(&schedulePath, "output", "", "schedule CSV path (overrides config)")
	flag.StringVar(&timelinePath, "timeline", "", "timeline CSV path (overrides config)")
	flag.BoolVar(&view, "view", false, "open the interactive schedule viewer after computing")
	flag.BoolVar(&quiet, "quiet", false, "suppress the console report")
	flag.Parse()

	if err := run(configPath, inputPath, schedulePath, timelinePath, view, quiet); err != nil {
		fmt.Fprintf(os.Stderr, "elixir: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, inputPath, schedulePath, timelinePath string, view, quiet bool) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	cfg, err := config.New(cwd, configPath)
	if err != nil {
		return err
	}
	if inputPath != "" {
		cfg.Project.Input = inputPath
	}
	if schedulePath != "" {
		cfg.Project.Outputs.Schedule = schedulePath
	}
	if timelinePath != "" {
		cfg.Project.Outputs.Timeline = timelinePath
	}

	logger, err := logging.New(cwd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "elixir: warning: %v\n", err)
		logger = nil // Printf and Close are nil-safe
	}
	defer logger.Close()

	in, err := os.Open(cfg.InputPath())
	if err != nil {
		logger.Printf("open input failed: %v", err)
		return fmt.Errorf("open input: %w", err)
	}
	inputs, err := csvio.Load(in, cfg.Project.CSV.DependencySeparator)
	in.Close()
	if err != nil {
		logger.Printf("load failed: %v", err)
		return err
	}
	logger.Printf("loaded %d tasks from %s", len(inputs), cfg.InputPath())

	s, err := schedule.Compute(inputs)
	if err != nil {
		logger.Printf("compute failed: %v", err)
		return err
	}
	logger.Printf("schedule computed: horizon %d, critical path %v", s.Horizon, s.CriticalPath)

	if err := writeFile(cfg.SchedulePath(), func(f *os.File) error {
		return csvio.WriteSchedule(f, s)
	}); err != nil {
		logger.Printf("write schedule failed: %v", err)
		return err
	}
	fmt.Printf("Task details written to %s\n", cfg.SchedulePath())

	symbols := csvio.Symbols{
		Critical: cfg.Project.Timeline.Critical,
		Active:   cfg.Project.Timeline.Active,
		Inactive: cfg.Project.Timeline.Inactive,
	}
	if err := writeFile(cfg.TimelinePath(), func(f *os.File) error {
		return csvio.WriteTimeline(f, s, symbols)
	}); err != nil {
		logger.Printf("write timeline failed: %v", err)
		return err
	}
	fmt.Printf("Timeline written to %s\n", cfg.TimelinePath())

	if !quiet {
		fmt.Println()
		report.PrintSchedule(os.Stdout, s)
		fmt.Println()
		report.PrintTimeline(os.Stdout, s)
	}

	if view {
		return tui.Run(s)
	}
	return nil
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
