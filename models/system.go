package models

import "time"

// SystemStats is the per-cycle system summary shown above the process table.
// Recomputed on every refresh, no history kept.
type SystemStats struct {
	CPUPercent    float64
	MemoryPercent float64
	MemoryUsed    uint64
	MemoryTotal   uint64
	DiskPercent   float64
	DiskUsed      uint64
	DiskTotal     uint64
	ProcessCount  int
	BootTime      time.Time
}

// HostInfo holds OS identity details
type HostInfo struct {
	Hostname string
	OS       string
	Kernel   string
	Arch     string
	Uptime   uint64
	BootTime time.Time
}

// CPUDetail holds CPU facts for the sysinfo report
type CPUDetail struct {
	Model         string
	PhysicalCores int
	LogicalCores  int
	FrequencyMhz  float64
	UsagePercent  float64
}

// MemoryDetail holds RAM stats
type MemoryDetail struct {
	Total     uint64
	Available uint64
	Used      uint64
	Percent   float64
}

// SwapDetail holds swap stats
type SwapDetail struct {
	Total   uint64
	Used    uint64
	Free    uint64
	Percent float64
}

// PartitionDetail holds usage for one mounted partition
type PartitionDetail struct {
	Device     string
	Mountpoint string
	Fstype     string
	Total      uint64
	Used       uint64
	Free       uint64
	Percent    float64
}

// NetTotals holds aggregate network I/O since boot
type NetTotals struct {
	BytesSent   uint64
	BytesRecv   uint64
	PacketsSent uint64
	PacketsRecv uint64
}

// ContainerInfo holds Docker container details
type ContainerInfo struct {
	ID      string
	Name    string
	Image   string
	Status  string
	State   string
	Created int64
}

// SystemReport is the full one-shot dump rendered by the sysinfo tool.
type SystemReport struct {
	Host       HostInfo
	CPU        CPUDetail
	Memory     MemoryDetail
	Swap       SwapDetail
	Partitions []PartitionDetail
	Network    NetTotals
	Containers []ContainerInfo
}
