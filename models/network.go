package models

import "time"

// InterfaceInfo holds per-NIC identity and link state
type InterfaceInfo struct {
	Name string
	IPv4 string
	IPv6 string
	MAC  string
	Up   bool
	MTU  int
}

// ConnectionInfo is one active TCP connection
type ConnectionInfo struct {
	LocalAddr  string
	RemoteAddr string
	Status     string
	PID        int32
}

// NICCounters holds per-interface I/O counters
type NICCounters struct {
	Name        string
	BytesSent   uint64
	BytesRecv   uint64
	PacketsSent uint64
	PacketsRecv uint64
}

// PingReport summarizes one ICMP ping run against a host.
type PingReport struct {
	Host       string
	Sent       int
	Received   int
	LossPct    float64
	MinRTT     time.Duration
	AvgRTT     time.Duration
	MaxRTT     time.Duration
	RTTs       []time.Duration
	ResolvedIP string
}

// PortResult is the outcome of probing a single TCP port.
type PortResult struct {
	Port    int
	Open    bool
	Service string
	Latency time.Duration
}

// LatencyResult is one TCP dial latency probe.
type LatencyResult struct {
	Target  string
	Success bool
	Latency time.Duration
}
