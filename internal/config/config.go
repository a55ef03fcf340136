// internal/config/config.go
//
// This package handles the optional elixir.yaml project configuration.
// Every setting has a default, so a bare tasks.csv next to the binary is
// enough to run the tool with no configuration at all.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file looked up in the project directory.
const DefaultFile = "elixir.yaml"

// OutputsConfig names the two result files.
type OutputsConfig struct {
	Schedule string `yaml:"schedule"`
	Timeline string `yaml:"timeline"`
}

// CSVConfig controls how the task CSV is parsed.
type CSVConfig struct {
	DependencySeparator string `yaml:"dependency_separator"`
}

// TimelineConfig sets the single-cell symbols used in the timeline CSV.
type TimelineConfig struct {
	Critical string `yaml:"critical"`
	Active   string `yaml:"active"`
	Inactive string `yaml:"inactive"`
}

// ProjectConfig models elixir.yaml.
type ProjectConfig struct {
	Version  int            `yaml:"version"`
	Input    string         `yaml:"input"`
	Outputs  OutputsConfig  `yaml:"outputs"`
	CSV      CSVConfig      `yaml:"csv"`
	Timeline TimelineConfig `yaml:"timeline"`
}

// Config holds the runtime configuration for a run: the project directory
// plus the parsed (or defaulted) project config.
type Config struct {
	ProjectDir string
	Project    ProjectConfig
}

func defaultProjectConfig() ProjectConfig {
	return ProjectConfig{
		Version: 1,
		Input:   "tasks.csv",
		Outputs: OutputsConfig{Schedule: "output.csv", Timeline: "timeline.csv"},
		CSV:     CSVConfig{DependencySeparator: ";"},
		Timeline: TimelineConfig{
			Critical: "C",
			Active:   "X",
			Inactive: "O",
		},
	}
}

// New loads the configuration for the given project directory. A missing
// config file is not an error; defaults apply. file may be empty to use
// DefaultFile.
func New(projectDir, file string) (*Config, error) {
	if file == "" {
		file = DefaultFile
	}
	c := &Config{ProjectDir: projectDir, Project: defaultProjectConfig()}

	path := file
	if !filepath.IsAbs(path) {
		path = filepath.Join(projectDir, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return c, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	parsed := defaultProjectConfig()
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := validate(parsed); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	c.Project = parsed
	return c, nil
}

func validate(p ProjectConfig) error {
	if p.Version != 1 {
		return fmt.Errorf("unsupported version %d (expected 1)", p.Version)
	}
	if p.Input == "" {
		return fmt.Errorf("input path must not be empty")
	}
	if p.Outputs.Schedule == "" || p.Outputs.Timeline == "" {
		return fmt.Errorf("output paths must not be empty")
	}
	if len([]rune(p.CSV.DependencySeparator)) != 1 {
		return fmt.Errorf("dependency_separator must be a single character, got %q", p.CSV.DependencySeparator)
	}
	syms := []string{p.Timeline.Critical, p.Timeline.Active, p.Timeline.Inactive}
	seen := map[string]bool{}
	for _, s := range syms {
		if s == "" {
			return fmt.Errorf("timeline symbols must not be empty")
		}
		if seen[s] {
			return fmt.Errorf("timeline symbols must be distinct, %q repeats", s)
		}
		seen[s] = true
	}
	return nil
}

// InputPath returns the task CSV path resolved against the project dir.
func (c *Config) InputPath() string { return c.resolve(c.Project.Input) }

// SchedulePath returns the schedule CSV output path.
func (c *Config) SchedulePath() string { return c.resolve(c.Project.Outputs.Schedule) }

// TimelinePath returns the timeline CSV output path.
func (c *Config) TimelinePath() string { return c.resolve(c.Project.Outputs.Timeline) }

func (c *Config) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.ProjectDir, path)
}
