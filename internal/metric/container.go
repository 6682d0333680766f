package metric

import (
	"context"
	"fmt"
	"time"

	"github.com/moby/moby/api/types/container"
	"github.com/moby/moby/api/types/mount"
	"github.com/moby/moby/client"
)

// ContainerMetric times a command inside a fresh Docker container of a
// pinned image, so the measured toolchain stays fixed while the repository
// changes underneath it. The repository is bind-mounted at /workspace. Each
// sample is the wall-clock duration of one container run.
type ContainerMetric struct {
	Name    string
	Image   string
	Command string
	Repeat  int
	Timeout time.Duration
	Dir     string
	Env     map[string]string
}

func (m *ContainerMetric) ID() string {
	return "container-" + m.Name
}

func (m *ContainerMetric) Run() (Outcome, error) {
	repeat := m.Repeat
	if repeat < 1 {
		repeat = 1
	}
	timeout := m.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Minute
	}

	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return Outcome{}, fmt.Errorf("%s: creating docker client: %w", m.ID(), err)
	}
	defer cli.Close()

	ctx := context.Background()
	samples := make([]float64, 0, repeat)
	for i := 0; i < repeat; i++ {
		elapsed, err := m.runOnce(ctx, cli, timeout)
		if err != nil {
			return Outcome{}, fmt.Errorf("%s: %w", m.ID(), err)
		}
		samples = append(samples, elapsed.Seconds())
	}
	return Samples(samples), nil
}

func (m *ContainerMetric) runOnce(ctx context.Context, cli *client.Client, timeout time.Duration) (time.Duration, error) {
	envSlice := make([]string, 0, len(m.Env))
	for k, v := range m.Env {
		envSlice = append(envSlice, k+"="+v)
	}

	containerCfg := &container.Config{
		Image:      m.Image,
		Cmd:        []string{"sh", "-c", m.Command},
		Env:        envSlice,
		WorkingDir: "/workspace",
		Labels:     map[string]string{"benchstash": "true"},
	}
	hostCfg := &container.HostConfig{
		Mounts: []mount.Mount{
			{
				Type:   mount.TypeBind,
				Source: m.Dir,
				Target: "/workspace",
			},
		},
	}

	createResp, err := cli.ContainerCreate(ctx, client.ContainerCreateOptions{
		Config:     containerCfg,
		HostConfig: hostCfg,
	})
	if err != nil {
		return 0, fmt.Errorf("creating container: %w", err)
	}
	containerID := createResp.ID
	defer func() {
		cli.ContainerRemove(context.Background(), containerID, client.ContainerRemoveOptions{Force: true})
	}()

	start := time.Now()
	if _, err := cli.ContainerStart(ctx, containerID, client.ContainerStartOptions{}); err != nil {
		return 0, fmt.Errorf("starting container: %w", err)
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	waitResult := cli.ContainerWait(timeoutCtx, containerID, client.ContainerWaitOptions{
		Condition: container.WaitConditionNotRunning,
	})
	for {
		select {
		case err := <-waitResult.Error:
			if err != nil {
				cli.ContainerKill(context.Background(), containerID, client.ContainerKillOptions{Signal: "SIGKILL"})
				return 0, fmt.Errorf("container timed out after %s", timeout)
			}
			// nil error means no error on this channel; wait for result
		case status := <-waitResult.Result:
			elapsed := time.Since(start)
			if status.StatusCode != 0 {
				return 0, fmt.Errorf("container exited with status %d", status.StatusCode)
			}
			return elapsed, nil
		}
	}
}
