package collector

import (
	"fmt"
	"strings"

	"termtools/models"

	gopsnet "github.com/shirou/gopsutil/v3/net"
)

// Interfaces lists every NIC with its addresses and link state.
func Interfaces() ([]models.InterfaceInfo, error) {
	ifaces, err := gopsnet.Interfaces()
	if err != nil {
		return nil, fmt.Errorf("list interfaces: %w", err)
	}

	infos := make([]models.InterfaceInfo, 0, len(ifaces))
	for _, iface := range ifaces {
		info := models.InterfaceInfo{
			Name: iface.Name,
			MAC:  iface.HardwareAddr,
			MTU:  iface.MTU,
		}

		for _, flag := range iface.Flags {
			if flag == "up" {
				info.Up = true
				break
			}
		}

		for _, addr := range iface.Addrs {
			ip := strings.Split(addr.Addr, "/")[0]
			if strings.Contains(ip, ":") {
				if info.IPv6 == "" {
					info.IPv6 = ip
				}
			} else if info.IPv4 == "" {
				info.IPv4 = ip
			}
		}

		infos = append(infos, info)
	}

	return infos, nil
}

// Connections lists established TCP connections.
func Connections() ([]models.ConnectionInfo, error) {
	conns, err := gopsnet.Connections("tcp")
	if err != nil {
		return nil, fmt.Errorf("list connections: %w", err)
	}

	infos := make([]models.ConnectionInfo, 0, len(conns))
	for _, conn := range conns {
		if conn.Status != "ESTABLISHED" {
			continue
		}
		infos = append(infos, models.ConnectionInfo{
			LocalAddr:  fmt.Sprintf("%s:%d", conn.Laddr.IP, conn.Laddr.Port),
			RemoteAddr: fmt.Sprintf("%s:%d", conn.Raddr.IP, conn.Raddr.Port),
			Status:     conn.Status,
			PID:        conn.Pid,
		})
	}

	return infos, nil
}

// NICCounters returns per-interface I/O counters.
func NICCounters() ([]models.NICCounters, error) {
	counters, err := gopsnet.IOCounters(true)
	if err != nil {
		return nil, fmt.Errorf("io counters: %w", err)
	}

	result := make([]models.NICCounters, 0, len(counters))
	for _, c := range counters {
		result = append(result, models.NICCounters{
			Name:        c.Name,
			BytesSent:   c.BytesSent,
			BytesRecv:   c.BytesRecv,
			PacketsSent: c.PacketsSent,
			PacketsRecv: c.PacketsRecv,
		})
	}
	return result, nil
}
