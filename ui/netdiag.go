package ui

import (
	"fmt"

	"termtools/models"
)

// Interfaces draws the NIC table.
func (r *Renderer) Interfaces(infos []models.InterfaceInfo) {
	header := fmt.Sprintf("%-14s %-6s %-16s %-26s %-18s %5s",
		"NAME", "STATE", "IPV4", "IPV6", "MAC", "MTU")
	body := titleStyle.Render("Network Interfaces") + "\n\n" + headerStyle.Render(header)
	for _, i := range infos {
		state := critStyle.Render("down")
		if i.Up {
			state = goodStyle.Render("up  ")
		}
		body += "\n" + fmt.Sprintf("%-14s %s   %-16s %-26s %-18s %5d",
			truncate(i.Name, 14), state, orDash(i.IPv4), truncate(orDash(i.IPv6), 26), orDash(i.MAC), i.MTU)
	}
	fmt.Fprintln(r.out, bluePanel.Render(body))
}

// Connections draws the active TCP connection table.
func (r *Renderer) Connections(conns []models.ConnectionInfo) {
	header := fmt.Sprintf("%-26s %-26s %-13s %s", "LOCAL", "REMOTE", "STATUS", "PID")
	body := titleStyle.Render("Active Connections") + "\n\n" + headerStyle.Render(header)
	for _, c := range conns {
		body += "\n" + fmt.Sprintf("%-26s %-26s %s %d",
			c.LocalAddr, c.RemoteAddr, goodStyle.Render(fmt.Sprintf("%-13s", c.Status)), c.PID)
	}
	if len(conns) == 0 {
		body += "\n" + dimStyle.Render("no established connections")
	}
	fmt.Fprintln(r.out, bluePanel.Render(body))
}

// NICCounters draws per-interface I/O totals.
func (r *Renderer) NICCounters(counters []models.NICCounters) {
	header := fmt.Sprintf("%-14s %12s %12s %12s %12s",
		"NAME", "SENT(MB)", "RECV(MB)", "PKT SENT", "PKT RECV")
	body := titleStyle.Render("Interface I/O") + "\n\n" + headerStyle.Render(header)
	for _, c := range counters {
		body += "\n" + fmt.Sprintf("%-14s %12.2f %12.2f %12d %12d",
			truncate(c.Name, 14), mb(c.BytesSent), mb(c.BytesRecv), c.PacketsSent, c.PacketsRecv)
	}
	fmt.Fprintln(r.out, bluePanel.Render(body))
}

// PingReport draws the result of one ping run.
func (r *Renderer) PingReport(report models.PingReport) {
	body := titleStyle.Render("Ping "+report.Host) + "\n\n"
	if report.ResolvedIP != "" {
		body += fmt.Sprintf("Resolved: %s\n", report.ResolvedIP)
	}
	for i, rtt := range report.RTTs {
		body += fmt.Sprintf("seq=%d time=%.2f ms\n", i, float64(rtt.Microseconds())/1000)
	}
	lossStyle := goodStyle
	if report.LossPct > 0 {
		lossStyle = warmStyle
	}
	if report.Received == 0 {
		lossStyle = critStyle
	}
	body += fmt.Sprintf("\n%d sent, %d received, %s loss\n",
		report.Sent, report.Received, lossStyle.Render(fmt.Sprintf("%.0f%%", report.LossPct)))
	body += fmt.Sprintf("rtt min/avg/max = %.2f/%.2f/%.2f ms",
		float64(report.MinRTT.Microseconds())/1000,
		float64(report.AvgRTT.Microseconds())/1000,
		float64(report.MaxRTT.Microseconds())/1000)
	fmt.Fprintln(r.out, bluePanel.Render(body))
}

// PortScan draws the results of a TCP port scan.
func (r *Renderer) PortScan(host string, results []models.PortResult) {
	header := fmt.Sprintf("%-7s %-8s %-14s %s", "PORT", "STATE", "SERVICE", "LATENCY")
	body := titleStyle.Render("Port scan: "+host) + "\n\n" + headerStyle.Render(header)

	open := 0
	for _, res := range results {
		if !res.Open {
			continue
		}
		open++
		body += "\n" + fmt.Sprintf("%-7d %s %-14s %.1f ms",
			res.Port, goodStyle.Render(fmt.Sprintf("%-8s", "open")), res.Service,
			float64(res.Latency.Microseconds())/1000)
	}
	if open == 0 {
		body += "\n" + warmStyle.Render("No open ports found")
	} else {
		body += "\n\n" + noticeStyle.Render(fmt.Sprintf("Found %d open ports", open))
	}
	fmt.Fprintln(r.out, bluePanel.Render(body))
}

// Latency draws TCP dial latency probes.
func (r *Renderer) Latency(results []models.LatencyResult) {
	body := titleStyle.Render("TCP Latency") + "\n"
	for _, res := range results {
		if res.Success {
			body += "\n" + fmt.Sprintf("%-12s %s", res.Target,
				goodStyle.Render(fmt.Sprintf("%.1f ms", float64(res.Latency.Microseconds())/1000)))
		} else {
			body += "\n" + fmt.Sprintf("%-12s %s", res.Target, critStyle.Render("unreachable"))
		}
	}
	fmt.Fprintln(r.out, bluePanel.Render(body))
}

// PublicIP draws the external address lookup.
func (r *Renderer) PublicIP(ip string) {
	if ip == "" {
		r.Warning("Public IP lookup failed")
		return
	}
	fmt.Fprintln(r.out, bluePanel.Render(titleStyle.Render("Public IP")+"\n"+ip))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
