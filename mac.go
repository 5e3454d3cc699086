package main

import (
	"fmt"
	"net"
)

// MAC address classes, carried in the second octet so that host MACs and
// switch port MACs never collide.
const (
	MACClassPort byte = 0x00
	MACClassHost byte = 0x01
)

// GenerateMAC generates a locally administered MAC address.
// Format: 02:CC:XX:XX:XX:XX where CC is the class and XX the id.
func GenerateMAC(class byte, id uint32) net.HardwareAddr {
	return net.HardwareAddr{
		0x02, // Locally administered (U/L bit = 1)
		class,
		byte(id >> 24),
		byte(id >> 16),
		byte(id >> 8),
		byte(id),
	}
}

// HostMAC returns the MAC address of the host with the given ordinal.
func HostMAC(ordinal int) net.HardwareAddr {
	return GenerateMAC(MACClassHost, uint32(ordinal))
}

// MACToLLA converts a MAC address to IPv6 link-local address using EUI-64.
// RFC 4291 Section 2.5.1
func MACToLLA(mac net.HardwareAddr) net.IP {
	if len(mac) != 6 {
		return nil
	}

	// EUI-64: insert FF:FE in the middle, flip U/L bit
	eui64 := make([]byte, 8)
	eui64[0] = mac[0] ^ 0x02
	eui64[1] = mac[1]
	eui64[2] = mac[2]
	eui64[3] = 0xFF
	eui64[4] = 0xFE
	eui64[5] = mac[3]
	eui64[6] = mac[4]
	eui64[7] = mac[5]

	ip := make(net.IP, 16)
	ip[0] = 0xfe
	ip[1] = 0x80
	copy(ip[8:], eui64)

	return ip
}

// FormatMACCommand returns the command setting the MAC of an interface.
func FormatMACCommand(iface string, mac net.HardwareAddr) string {
	return fmt.Sprintf("ip link set dev %s address %s", iface, mac)
}
