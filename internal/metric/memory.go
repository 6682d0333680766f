package metric

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"syscall"
)

// MemoryMetric reports the peak resident set size, in megabytes, of one
// execution of a shell command. The figure comes from the kernel's rusage
// accounting for the child process, so it needs os/exec directly: the
// fluent executor wrapper does not surface ProcessState.
type MemoryMetric struct {
	Name    string
	Command string
	Dir     string
}

func (m *MemoryMetric) ID() string {
	return "memoryuse-" + m.Name
}

func (m *MemoryMetric) Run() (Outcome, error) {
	cmd := exec.Command("sh", "-c", m.Command)
	cmd.Dir = m.Dir
	cmd.Env = os.Environ()
	if err := cmd.Run(); err != nil {
		return Outcome{}, fmt.Errorf("running %s: %w", m.ID(), err)
	}
	rusage, ok := cmd.ProcessState.SysUsage().(*syscall.Rusage)
	if !ok {
		return Outcome{}, fmt.Errorf("%s: rusage not available on this platform", m.ID())
	}
	return Scalar(maxrssMegabytes(runtime.GOOS, int64(rusage.Maxrss))), nil
}

// maxrssMegabytes converts the kernel's ru_maxrss figure, which is
// kilobytes on Linux but bytes on darwin.
func maxrssMegabytes(goos string, maxrss int64) float64 {
	if goos == "darwin" {
		return float64(maxrss) / (1024 * 1024)
	}
	return float64(maxrss) / 1024
}
