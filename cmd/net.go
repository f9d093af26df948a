package cmd

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"termtools/collector"
	"termtools/config"
	"termtools/netdiag"
	"termtools/ui"
)

var netCmd = &cobra.Command{
	Use:   "net",
	Short: "Network diagnostics: interfaces, connections, ping, port scan",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNet(bufio.NewReader(os.Stdin))
	},
}

// runNet loops the diagnostics menu until the user backs out.
func runNet(reader *bufio.Reader) error {
	render := ui.New(os.Stdout)
	cfg := config.Load()

	for {
		render.Menu("Network Utilities", [][2]string{
			{"1", "Network interfaces"},
			{"2", "Active connections"},
			{"3", "Interface I/O statistics"},
			{"4", "Ping a host"},
			{"5", "Port scan"},
			{"6", "TCP latency probe"},
			{"7", "Public IP"},
			{"q", "Back"},
		})
		render.Prompt("Your choice")

		choice, err := reader.ReadString('\n')
		if err != nil {
			return nil
		}

		switch strings.ToLower(strings.TrimSpace(choice)) {
		case "1":
			if infos, err := collector.Interfaces(); err != nil {
				render.Warning(err.Error())
			} else {
				render.Interfaces(infos)
			}
		case "2":
			if conns, err := collector.Connections(); err != nil {
				render.Warning(err.Error())
			} else {
				render.Connections(conns)
			}
		case "3":
			if counters, err := collector.NICCounters(); err != nil {
				render.Warning(err.Error())
			} else {
				render.NICCounters(counters)
			}
		case "4":
			runPing(render, reader, cfg)
		case "5":
			runScan(render, reader, cfg)
		case "6":
			render.Latency(netdiag.Latency(netdiag.DefaultLatencyTargets, cfg.ProbeTimeout))
		case "7":
			render.PublicIP(netdiag.PublicIP())
		case "q":
			return nil
		default:
			render.Warning("Invalid choice!")
		}
	}
}

func runPing(render *ui.Renderer, reader *bufio.Reader, cfg *config.Config) {
	host := ask(render, reader, "Host to ping")
	if host == "" {
		render.Warning("No host given")
		return
	}

	report, err := netdiag.Ping(host, cfg.PingCount, cfg.PingTimeout)
	if err != nil {
		render.Warning(err.Error())
		return
	}
	render.PingReport(report)
}

func runScan(render *ui.Renderer, reader *bufio.Reader, cfg *config.Config) {
	host := ask(render, reader, "Host to scan")
	if host == "" {
		render.Warning("No host given")
		return
	}

	// Default range covers the classic well-known block
	from, to := 20, 80
	if rangeStr := ask(render, reader, "Port range (from-to, default 20-80)"); rangeStr != "" {
		parts := strings.SplitN(rangeStr, "-", 2)
		if len(parts) == 2 {
			f, errF := strconv.Atoi(strings.TrimSpace(parts[0]))
			t, errT := strconv.Atoi(strings.TrimSpace(parts[1]))
			if errF == nil && errT == nil && f >= 1 && t >= f {
				from, to = f, t
			} else {
				render.Warning("Bad port range, using 20-80")
			}
		} else {
			render.Warning("Bad port range, using 20-80")
		}
	}

	render.Notice("Scanning...")
	render.PortScan(host, netdiag.ScanPorts(host, from, to, cfg.ScanTimeout))
}

func ask(render *ui.Renderer, reader *bufio.Reader, label string) string {
	render.Prompt(label)
	text, err := reader.ReadString('\n')
	if err != nil {
		return ""
	}
	return strings.TrimSpace(text)
}
