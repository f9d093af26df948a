package collector

import (
	"runtime"
	"time"

	"termtools/models"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
	gopsnet "github.com/shirou/gopsutil/v3/net"
	"github.com/shirou/gopsutil/v3/process"
)

// StatsCollector produces the per-cycle system summary for the monitor.
type StatsCollector struct{}

func NewStatsCollector() *StatsCollector {
	return &StatsCollector{}
}

// Stats gathers the system-wide summary. Individual metric failures leave
// zero values rather than failing the whole call.
func (c *StatsCollector) Stats() (models.SystemStats, error) {
	var stats models.SystemStats

	if percent, err := cpu.Percent(100*time.Millisecond, false); err == nil && len(percent) > 0 {
		stats.CPUPercent = percent[0]
	}

	if memInfo, err := mem.VirtualMemory(); err == nil {
		stats.MemoryPercent = memInfo.UsedPercent
		stats.MemoryUsed = memInfo.Used
		stats.MemoryTotal = memInfo.Total
	}

	if usage, err := disk.Usage(rootDiskPath()); err == nil {
		stats.DiskPercent = usage.UsedPercent
		stats.DiskUsed = usage.Used
		stats.DiskTotal = usage.Total
	}

	if pids, err := process.Pids(); err == nil {
		stats.ProcessCount = len(pids)
	}

	if boot, err := host.BootTime(); err == nil {
		stats.BootTime = time.Unix(int64(boot), 0)
	}

	return stats, nil
}

// Report gathers the full one-shot dump for the sysinfo tool.
func Report() (*models.SystemReport, error) {
	report := &models.SystemReport{}

	if hostInfo, err := host.Info(); err == nil {
		report.Host = models.HostInfo{
			Hostname: hostInfo.Hostname,
			OS:       hostInfo.OS + " " + hostInfo.Platform + " " + hostInfo.PlatformVersion,
			Kernel:   hostInfo.KernelVersion,
			Arch:     hostInfo.KernelArch,
			Uptime:   hostInfo.Uptime,
			BootTime: time.Unix(int64(hostInfo.BootTime), 0),
		}
	}

	collectCPUDetail(&report.CPU)
	collectMemoryDetail(&report.Memory, &report.Swap)
	report.Partitions = collectPartitions()

	if netIO, err := gopsnet.IOCounters(false); err == nil && len(netIO) > 0 {
		report.Network = models.NetTotals{
			BytesSent:   netIO[0].BytesSent,
			BytesRecv:   netIO[0].BytesRecv,
			PacketsSent: netIO[0].PacketsSent,
			PacketsRecv: netIO[0].PacketsRecv,
		}
	}

	report.Containers = Containers()

	return report, nil
}

// Gathers CPU facts
func collectCPUDetail(detail *models.CPUDetail) {
	if info, err := cpu.Info(); err == nil && len(info) > 0 {
		detail.Model = info[0].ModelName
		detail.FrequencyMhz = info[0].Mhz
	}
	if physical, err := cpu.Counts(false); err == nil {
		detail.PhysicalCores = physical
	}
	if logical, err := cpu.Counts(true); err == nil {
		detail.LogicalCores = logical
	}
	if percent, err := cpu.Percent(time.Second, false); err == nil && len(percent) > 0 {
		detail.UsagePercent = percent[0]
	}
}

// Gathers memory and swap stats
func collectMemoryDetail(memory *models.MemoryDetail, swap *models.SwapDetail) {
	if memInfo, err := mem.VirtualMemory(); err == nil {
		*memory = models.MemoryDetail{
			Total:     memInfo.Total,
			Available: memInfo.Available,
			Used:      memInfo.Used,
			Percent:   memInfo.UsedPercent,
		}
	}

	if swapInfo, err := mem.SwapMemory(); err == nil {
		*swap = models.SwapDetail{
			Total:   swapInfo.Total,
			Used:    swapInfo.Used,
			Free:    swapInfo.Free,
			Percent: swapInfo.UsedPercent,
		}
	}
}

// Gathers usage for every mounted partition, skipping ones that refuse stat
func collectPartitions() []models.PartitionDetail {
	parts, err := disk.Partitions(false)
	if err != nil {
		return nil
	}

	details := make([]models.PartitionDetail, 0, len(parts))
	for _, part := range parts {
		usage, err := disk.Usage(part.Mountpoint)
		if err != nil {
			continue
		}
		details = append(details, models.PartitionDetail{
			Device:     part.Device,
			Mountpoint: part.Mountpoint,
			Fstype:     part.Fstype,
			Total:      usage.Total,
			Used:       usage.Used,
			Free:       usage.Free,
			Percent:    usage.UsedPercent,
		})
	}
	return details
}

// rootDiskPath picks the filesystem root to report (Windows uses C:\)
func rootDiskPath() string {
	if runtime.GOOS == "windows" {
		return "C:\\"
	}
	return "/"
}
