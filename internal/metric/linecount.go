package metric

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LineCountMetric counts newline-terminated lines in a file, or the sum
// over every regular file beneath a directory. Extensions, when set,
// restrict the directory walk (e.g. [".go", ".py"]).
type LineCountMetric struct {
	Path       string
	Dir        string
	Extensions []string
}

func (m *LineCountMetric) ID() string {
	return "linecount-" + m.Path
}

func (m *LineCountMetric) Run() (Outcome, error) {
	root := m.Path
	if m.Dir != "" && !filepath.IsAbs(root) {
		root = filepath.Join(m.Dir, root)
	}
	info, err := os.Stat(root)
	if err != nil {
		return Outcome{}, fmt.Errorf("counting lines for %s: %w", m.ID(), err)
	}
	if !info.IsDir() {
		n, err := countLines(root)
		if err != nil {
			return Outcome{}, fmt.Errorf("counting lines for %s: %w", m.ID(), err)
		}
		return Scalar(float64(n)), nil
	}

	total := 0
	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if info.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		if !m.matchExt(path) {
			return nil
		}
		n, err := countLines(path)
		if err != nil {
			return err
		}
		total += n
		return nil
	})
	if err != nil {
		return Outcome{}, fmt.Errorf("counting lines for %s: %w", m.ID(), err)
	}
	return Scalar(float64(total)), nil
}

func (m *LineCountMetric) matchExt(path string) bool {
	if len(m.Extensions) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(path))
	for _, want := range m.Extensions {
		if ext == strings.ToLower(want) {
			return true
		}
	}
	return false
}

func countLines(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return bytes.Count(data, []byte{'\n'}), nil
}
