// Package netdiag implements the network diagnostics operations: ICMP ping,
// TCP port scan, dial latency probes, and public IP lookup. All calls are
// sequential and blocking; results go back to the caller for rendering.
package netdiag

import (
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	probing "github.com/prometheus-community/pro-bing"

	"termtools/models"
)

// DefaultLatencyTargets are the public resolvers probed by Latency.
var DefaultLatencyTargets = []string{"8.8.8.8:53", "1.1.1.1:53"}

// wellKnownServices names the ports the scanner reports on.
var wellKnownServices = map[int]string{
	20:   "FTP Data",
	21:   "FTP",
	22:   "SSH",
	23:   "Telnet",
	25:   "SMTP",
	53:   "DNS",
	80:   "HTTP",
	110:  "POP3",
	143:  "IMAP",
	443:  "HTTPS",
	3306: "MySQL",
	5432: "PostgreSQL",
	6379: "Redis",
	8080: "HTTP Alt",
}

// ServiceName returns the well-known service for a port, or "Unknown".
func ServiceName(port int) string {
	if name, ok := wellKnownServices[port]; ok {
		return name
	}
	return "Unknown"
}

// Ping runs count ICMP echo probes against host. Unprivileged UDP mode, so
// no root is needed on Linux.
func Ping(host string, count int, timeout time.Duration) (models.PingReport, error) {
	pinger, err := probing.NewPinger(host)
	if err != nil {
		return models.PingReport{}, fmt.Errorf("ping %s: %w", host, err)
	}
	pinger.Count = count
	pinger.Timeout = timeout
	pinger.SetPrivileged(false)

	if err := pinger.Run(); err != nil {
		return models.PingReport{}, fmt.Errorf("ping %s: %w", host, err)
	}

	stats := pinger.Statistics()
	report := models.PingReport{
		Host:     host,
		Sent:     stats.PacketsSent,
		Received: stats.PacketsRecv,
		LossPct:  stats.PacketLoss,
		MinRTT:   stats.MinRtt,
		AvgRTT:   stats.AvgRtt,
		MaxRTT:   stats.MaxRtt,
		RTTs:     stats.Rtts,
	}
	if stats.IPAddr != nil {
		report.ResolvedIP = stats.IPAddr.String()
	}
	return report, nil
}

// CheckPort reports whether a single TCP port accepts connections.
func CheckPort(host string, port int, timeout time.Duration) models.PortResult {
	result := models.PortResult{Port: port, Service: ServiceName(port)}

	start := time.Now()
	conn, err := net.DialTimeout("tcp", net.JoinHostPort(host, fmt.Sprintf("%d", port)), timeout)
	if err == nil {
		conn.Close()
		result.Open = true
		result.Latency = time.Since(start)
	}
	return result
}

// ScanPorts probes every port in [from, to] on host, in order.
func ScanPorts(host string, from, to int, timeout time.Duration) []models.PortResult {
	if from < 1 {
		from = 1
	}
	if to > 65535 {
		to = 65535
	}

	var results []models.PortResult
	for port := from; port <= to; port++ {
		results = append(results, CheckPort(host, port, timeout))
	}
	return results
}

// Latency measures TCP dial time to each target address.
func Latency(targets []string, timeout time.Duration) []models.LatencyResult {
	results := make([]models.LatencyResult, 0, len(targets))

	for _, target := range targets {
		host, _, _ := net.SplitHostPort(target)
		if host == "" {
			host = target
		}

		res := models.LatencyResult{Target: host}

		start := time.Now()
		conn, err := net.DialTimeout("tcp", target, timeout)
		if err == nil {
			conn.Close()
			res.Latency = time.Since(start)
			res.Success = true
		}
		results = append(results, res)
	}

	return results
}

// PublicIP fetches the external address, empty string on any failure.
func PublicIP() string {
	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get("https://api.ipify.org")
	if err != nil {
		return ""
	}
	defer resp.Body.Close()
	ip, _ := io.ReadAll(resp.Body)
	return string(ip)
}
