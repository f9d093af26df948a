package cmd

import (
	"bufio"
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"termtools/collector"
	"termtools/config"
	"termtools/monitor"
	"termtools/ui"
)

var (
	procLive     bool
	procDuration int
)

var procCmd = &cobra.Command{
	Use:   "proc",
	Short: "Live-refreshing process monitor with interactive sort/filter",
	RunE: func(cmd *cobra.Command, args []string) error {
		if procLive {
			return runProcLive(time.Duration(procDuration) * time.Second)
		}
		return runProc(bufio.NewReader(os.Stdin))
	},
}

func init() {
	procCmd.Flags().BoolVar(&procLive, "live", false, "run the fixed-duration live mode, no input")
	procCmd.Flags().IntVar(&procDuration, "duration", 60, "live mode duration in seconds")
}

// runProc shows the mode selector and starts the chosen loop.
func runProc(reader *bufio.Reader) error {
	render := ui.New(os.Stdout)
	cfg := config.Load()

	render.Menu("Process Monitor", [][2]string{
		{"1", "Interactive mode"},
		{"2", "Live monitoring (" + cfg.LiveDuration.String() + ")"},
		{"3", "Exit"},
	})
	render.Prompt("Enter your choice (1-3)")

	choice, err := reader.ReadString('\n')
	if err != nil {
		render.Notice("Goodbye!")
		return nil
	}

	switch strings.TrimSpace(choice) {
	case "1":
		ctx, stop := signalContext()
		defer stop()
		return newMonitor(cfg, reader).RunInteractive(ctx)
	case "2":
		ctx, stop := signalContext()
		defer stop()
		return newMonitor(cfg, reader).RunLive(ctx, cfg.LiveDuration)
	case "3":
		render.Notice("Goodbye!")
		return nil
	default:
		render.Warning("Invalid choice!")
		return nil
	}
}

// runProcLive skips the menu, for the --live flag.
func runProcLive(duration time.Duration) error {
	cfg := config.Load()
	if duration > 0 {
		cfg.LiveDuration = duration
	}
	ctx, stop := signalContext()
	defer stop()
	return newMonitor(cfg, nil).RunLive(ctx, cfg.LiveDuration)
}

func newMonitor(cfg *config.Config, input *bufio.Reader) *monitor.Monitor {
	opts := monitor.Options{
		Snapshots:   collector.NewProcessCollector(),
		Stats:       collector.NewStatsCollector(),
		Renderer:    ui.New(os.Stdout),
		Actuator:    monitor.NewActuator(),
		View:        monitor.NewView(),
		TopLimit:    cfg.TopLimit,
		LiveLimit:   cfg.LiveLimit,
		LiveQuantum: cfg.LiveQuantum,
	}
	if input != nil {
		opts.Input = input
	}
	return monitor.New(opts)
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
