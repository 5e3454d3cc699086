package main

import (
	"errors"
	"testing"
)

func TestBuildSwitches(t *testing.T) {
	tests := []struct {
		layer Layer
		first string
		last  string
	}{
		{LayerCore, "cs_1", "cs_4"},
		{LayerAggregation, "as_1", "as_4"},
		{LayerEdge, "es_1", "es_4"},
	}

	for _, tt := range tests {
		t.Run(tt.layer.String(), func(t *testing.T) {
			switches, err := BuildSwitches(4, tt.layer)
			if err != nil {
				t.Fatalf("BuildSwitches failed: %v", err)
			}
			if len(switches) != 4 {
				t.Fatalf("got %d switches, want 4", len(switches))
			}
			if switches[0].ID != tt.first || switches[3].ID != tt.last {
				t.Errorf("IDs = %s..%s, want %s..%s", switches[0].ID, switches[3].ID, tt.first, tt.last)
			}
			for i, s := range switches {
				if s.Ordinal != i+1 || s.Layer != tt.layer {
					t.Errorf("switch %d = %+v", i, s)
				}
			}
		})
	}
}

func TestBuildSwitchesInvalid(t *testing.T) {
	if _, err := BuildSwitches(-1, LayerCore); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("negative count error = %v, want ErrInvalidParameter", err)
	}
	if _, err := BuildSwitches(1, LayerHost); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("host layer error = %v, want ErrInvalidParameter", err)
	}
	switches, err := BuildSwitches(0, LayerEdge)
	if err != nil || len(switches) != 0 {
		t.Errorf("BuildSwitches(0) = %v, %v", switches, err)
	}
}

func TestBuildHosts(t *testing.T) {
	hosts, err := BuildHosts(16)
	if err != nil {
		t.Fatalf("BuildHosts failed: %v", err)
	}
	for i, h := range hosts {
		if h.Ordinal != i+1 || h.ID != HostID(i+1) {
			t.Errorf("host %d = %+v", i, h)
		}
	}
	if hosts[15].ID != "h_16" {
		t.Errorf("last host = %s, want h_16", hosts[15].ID)
	}

	if _, err := BuildHosts(-3); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("negative count error = %v, want ErrInvalidParameter", err)
	}
}

func TestParseSwitchID(t *testing.T) {
	tests := []struct {
		id      string
		layer   Layer
		ordinal int
		wantErr bool
	}{
		{"cs_1", LayerCore, 1, false},
		{"as_12", LayerAggregation, 12, false},
		{"es_3", LayerEdge, 3, false},
		{"h_1", 0, 0, true},
		{"es_03", 0, 0, true},
		{"es_0", 0, 0, true},
		{"cs_1x", 0, 0, true},
		{"spine0", 0, 0, true},
	}

	for _, tt := range tests {
		s, err := ParseSwitchID(tt.id)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("ParseSwitchID(%q) error = %v, want ErrInvalidParameter", tt.id, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseSwitchID(%q) failed: %v", tt.id, err)
			continue
		}
		if s.Layer != tt.layer || s.Ordinal != tt.ordinal {
			t.Errorf("ParseSwitchID(%q) = %+v", tt.id, s)
		}
	}
}
