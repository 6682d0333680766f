package config

import (
	"fmt"
	"os"
	"time"

	"github.com/benchstash/benchstash/internal/metric"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Store   Store    `yaml:"store"`
	Metrics []Metric `yaml:"metrics"`
}

type Store struct {
	Name string `yaml:"name"`
	Dir  string `yaml:"dir"`
}

// Metric declares one measurement. Kind selects the implementation; the
// remaining fields apply per kind.
type Metric struct {
	Name    string `yaml:"name"`
	Kind    string `yaml:"kind"`
	Command string `yaml:"command"`

	// time / container
	Setup          string `yaml:"setup"`
	Repeat         int    `yaml:"repeat"`
	Number         int    `yaml:"number"`
	Image          string `yaml:"image"`
	TimeoutMinutes int    `yaml:"timeout_minutes"`

	// linecount
	Path       string   `yaml:"path"`
	Extensions []string `yaml:"extensions"`

	// lint / json
	Pattern  string `yaml:"pattern"`
	JSONPath string `yaml:"json_path"`

	Env map[string]string `yaml:"env"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Store.Name == "" {
		return fmt.Errorf("store.name is required")
	}
	if len(cfg.Metrics) == 0 {
		return fmt.Errorf("no metrics defined")
	}
	for i := range cfg.Metrics {
		m := &cfg.Metrics[i]
		if m.Name == "" {
			return fmt.Errorf("metric %d: name is required", i)
		}
		switch m.Kind {
		case "time":
			if m.Command == "" {
				return fmt.Errorf("metric %q: command is required", m.Name)
			}
			if m.Repeat == 0 {
				m.Repeat = 100
			}
			if m.Number == 0 {
				m.Number = 1
			}
		case "linecount":
			if m.Path == "" {
				return fmt.Errorf("metric %q: path is required", m.Name)
			}
		case "lint", "memory":
			if m.Command == "" {
				return fmt.Errorf("metric %q: command is required", m.Name)
			}
		case "json":
			if m.Command == "" {
				return fmt.Errorf("metric %q: command is required", m.Name)
			}
			if m.JSONPath == "" {
				return fmt.Errorf("metric %q: json_path is required", m.Name)
			}
		case "container":
			if m.Command == "" {
				return fmt.Errorf("metric %q: command is required", m.Name)
			}
			if m.Image == "" {
				return fmt.Errorf("metric %q: image is required", m.Name)
			}
			if m.Repeat == 0 {
				m.Repeat = 5
			}
			if m.TimeoutMinutes == 0 {
				m.TimeoutMinutes = 10
			}
		case "":
			return fmt.Errorf("metric %q: kind is required", m.Name)
		default:
			return fmt.Errorf("metric %q: unknown kind %q", m.Name, m.Kind)
		}
	}
	return nil
}

// BuildMetrics constructs the declared metrics, rooted at the repository
// directory being measured.
func (cfg *Config) BuildMetrics(repoDir string) []metric.Metric {
	metrics := make([]metric.Metric, 0, len(cfg.Metrics))
	for _, m := range cfg.Metrics {
		switch m.Kind {
		case "time":
			metrics = append(metrics, &metric.TimeMetric{
				Name:    m.Name,
				Command: m.Command,
				Setup:   m.Setup,
				Repeat:  m.Repeat,
				Number:  m.Number,
				Dir:     repoDir,
				Env:     m.Env,
			})
		case "linecount":
			metrics = append(metrics, &metric.LineCountMetric{
				Path:       m.Path,
				Dir:        repoDir,
				Extensions: m.Extensions,
			})
		case "lint":
			metrics = append(metrics, &metric.LintMetric{
				Name:    m.Name,
				Command: m.Command,
				Pattern: m.Pattern,
				Dir:     repoDir,
			})
		case "memory":
			metrics = append(metrics, &metric.MemoryMetric{
				Name:    m.Name,
				Command: m.Command,
				Dir:     repoDir,
			})
		case "json":
			metrics = append(metrics, &metric.JSONMetric{
				Name:    m.Name,
				Command: m.Command,
				Path:    m.JSONPath,
				Dir:     repoDir,
			})
		case "container":
			metrics = append(metrics, &metric.ContainerMetric{
				Name:    m.Name,
				Image:   m.Image,
				Command: m.Command,
				Repeat:  m.Repeat,
				Timeout: time.Duration(m.TimeoutMinutes) * time.Minute,
				Dir:     repoDir,
				Env:     m.Env,
			})
		}
	}
	return metrics
}
