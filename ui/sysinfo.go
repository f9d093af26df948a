package ui

import (
	"fmt"
	"time"

	"termtools/models"
)

// Report draws the one-shot system information dashboard.
func (r *Renderer) Report(report *models.SystemReport) {
	fmt.Fprintln(r.out, r.hostPanel(report.Host))
	fmt.Fprintln(r.out, r.cpuPanel(report.CPU))
	fmt.Fprintln(r.out, r.memoryPanel(report.Memory, report.Swap))
	if len(report.Partitions) > 0 {
		fmt.Fprintln(r.out, r.partitionsPanel(report.Partitions))
	}
	fmt.Fprintln(r.out, r.netTotalsPanel(report.Network))
	if len(report.Containers) > 0 {
		fmt.Fprintln(r.out, r.containersPanel(report.Containers))
	}
}

func (r *Renderer) hostPanel(h models.HostInfo) string {
	body := titleStyle.Render("System Information") + "\n\n"
	body += fmt.Sprintf("%-12s %s\n", "Hostname:", h.Hostname)
	body += fmt.Sprintf("%-12s %s\n", "OS:", h.OS)
	body += fmt.Sprintf("%-12s %s\n", "Kernel:", h.Kernel)
	body += fmt.Sprintf("%-12s %s\n", "Arch:", h.Arch)
	body += fmt.Sprintf("%-12s %s\n", "Uptime:", (time.Duration(h.Uptime) * time.Second).String())
	body += fmt.Sprintf("%-12s %s", "Booted:", h.BootTime.Format("2006-01-02 15:04:05"))
	return bluePanel.Render(body)
}

func (r *Renderer) cpuPanel(c models.CPUDetail) string {
	body := titleStyle.Render("CPU") + "\n\n"
	body += fmt.Sprintf("%-16s %s\n", "Model:", c.Model)
	body += fmt.Sprintf("%-16s %d\n", "Physical cores:", c.PhysicalCores)
	body += fmt.Sprintf("%-16s %d\n", "Logical cores:", c.LogicalCores)
	body += fmt.Sprintf("%-16s %.2f Mhz\n", "Frequency:", c.FrequencyMhz)
	body += fmt.Sprintf("%-16s %s %.1f%%", "Usage:", bar(c.UsagePercent), c.UsagePercent)
	return bluePanel.Render(body)
}

func (r *Renderer) memoryPanel(m models.MemoryDetail, s models.SwapDetail) string {
	body := titleStyle.Render("Memory") + "\n\n"
	body += fmt.Sprintf("%-12s %.2f GB\n", "Total:", gb(m.Total))
	body += fmt.Sprintf("%-12s %.2f GB\n", "Available:", gb(m.Available))
	body += fmt.Sprintf("%-12s %.2f GB\n", "Used:", gb(m.Used))
	body += fmt.Sprintf("%-12s %s %.1f%%\n", "Usage:", bar(m.Percent), m.Percent)
	body += fmt.Sprintf("%-12s %.2f GB used of %.2f GB", "Swap:", gb(s.Used), gb(s.Total))
	return bluePanel.Render(body)
}

func (r *Renderer) partitionsPanel(parts []models.PartitionDetail) string {
	header := fmt.Sprintf("%-18s %-16s %-8s %9s %9s %7s",
		"DEVICE", "MOUNT", "FSTYPE", "TOTAL(GB)", "USED(GB)", "USE%")
	body := titleStyle.Render("Disks") + "\n\n" + headerStyle.Render(header)
	for _, p := range parts {
		body += "\n" + fmt.Sprintf("%-18s %-16s %-8s %9.1f %9.1f %s",
			truncate(p.Device, 18),
			truncate(p.Mountpoint, 16),
			p.Fstype,
			gb(p.Total),
			gb(p.Used),
			sysUsageStyle(p.Percent).Render(fmt.Sprintf("%6.1f%%", p.Percent)),
		)
	}
	return bluePanel.Render(body)
}

func (r *Renderer) netTotalsPanel(n models.NetTotals) string {
	body := titleStyle.Render("Network") + "\n\n"
	body += fmt.Sprintf("%-18s %.2f MB\n", "Bytes sent:", mb(n.BytesSent))
	body += fmt.Sprintf("%-18s %.2f MB\n", "Bytes received:", mb(n.BytesRecv))
	body += fmt.Sprintf("%-18s %d\n", "Packets sent:", n.PacketsSent)
	body += fmt.Sprintf("%-18s %d", "Packets received:", n.PacketsRecv)
	return bluePanel.Render(body)
}

func (r *Renderer) containersPanel(containers []models.ContainerInfo) string {
	header := fmt.Sprintf("%-13s %-20s %-24s %-10s %s",
		"ID", "NAME", "IMAGE", "STATE", "STATUS")
	body := titleStyle.Render("Containers") + "\n\n" + headerStyle.Render(header)
	for _, c := range containers {
		stateStyle := goodStyle
		if c.State != "running" {
			stateStyle = dimStyle
		}
		body += "\n" + fmt.Sprintf("%-13s %-20s %-24s %s %s",
			c.ID,
			truncate(c.Name, 20),
			truncate(c.Image, 24),
			stateStyle.Render(fmt.Sprintf("%-10s", c.State)),
			c.Status,
		)
	}
	return bluePanel.Render(body)
}
