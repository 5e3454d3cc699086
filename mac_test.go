package main

import (
	"net"
	"testing"
)

func TestMACToLLA(t *testing.T) {
	tests := []struct {
		mac      string
		expected string
	}{
		// Locally administered MACs (U/L bit already set)
		{"02:00:00:00:00:00", "fe80::ff:fe00:0"},
		{"02:00:00:00:01:00", "fe80::ff:fe00:100"},
		{"02:01:00:00:00:01", "fe80::1:ff:fe00:1"},
		// Standard MAC (from RFC example style)
		{"00:12:7f:eb:6b:40", "fe80::212:7fff:feeb:6b40"},
	}

	for _, tt := range tests {
		mac, err := net.ParseMAC(tt.mac)
		if err != nil {
			t.Fatalf("Failed to parse MAC %s: %v", tt.mac, err)
		}
		got := MACToLLA(mac)
		if got.String() != tt.expected {
			t.Errorf("MACToLLA(%s) = %s, want %s", tt.mac, got, tt.expected)
		}
	}
}

func TestGenerateMACClasses(t *testing.T) {
	tests := []struct {
		class    byte
		id       uint32
		expected string
	}{
		{MACClassPort, 0, "02:00:00:00:00:00"},
		{MACClassPort, 0x0102, "02:00:00:00:01:02"},
		{MACClassHost, 1, "02:01:00:00:00:01"},
		{MACClassHost, 0xdeadbeef, "02:01:de:ad:be:ef"},
	}

	for _, tt := range tests {
		if got := GenerateMAC(tt.class, tt.id).String(); got != tt.expected {
			t.Errorf("GenerateMAC(%#x, %d) = %s, want %s", tt.class, tt.id, got, tt.expected)
		}
	}

	if HostMAC(1).String() == GenerateMAC(MACClassPort, 1).String() {
		t.Errorf("host and port MACs collide for id 1")
	}
}
