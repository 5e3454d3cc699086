package main

import (
	"errors"
	"strings"
	"testing"
)

// recordingFabric captures every call Realize makes.
type recordingFabric struct {
	switches  []string
	hosts     []string
	links     []string
	addresses map[string]string
	failOn    string
}

func (r *recordingFabric) CreateSwitch(id string) (Handle, error) {
	if id == r.failOn {
		return nil, errors.New("boom")
	}
	r.switches = append(r.switches, id)
	return id, nil
}

func (r *recordingFabric) CreateHost(id string) (Handle, error) {
	if id == r.failOn {
		return nil, errors.New("boom")
	}
	r.hosts = append(r.hosts, id)
	return id, nil
}

func (r *recordingFabric) CreateLink(a, b Handle, bandwidthMbps int) error {
	r.links = append(r.links, a.(string)+"-"+b.(string))
	return nil
}

func (r *recordingFabric) SetHostAddress(h Handle, address string) error {
	if r.addresses == nil {
		r.addresses = make(map[string]string)
	}
	r.addresses[h.(string)] = address
	return nil
}

func TestRealize(t *testing.T) {
	ft, err := BuildFatTree(4, 1000)
	if err != nil {
		t.Fatalf("BuildFatTree failed: %v", err)
	}

	rf := &recordingFabric{}
	if err := Realize(ft, rf); err != nil {
		t.Fatalf("Realize failed: %v", err)
	}

	if len(rf.switches) != 20 || len(rf.hosts) != 16 || len(rf.links) != 48 || len(rf.addresses) != 16 {
		t.Fatalf("recorded %d switches, %d hosts, %d links, %d addresses",
			len(rf.switches), len(rf.hosts), len(rf.links), len(rf.addresses))
	}
	if rf.switches[0] != "cs_1" || rf.switches[4] != "as_1" || rf.switches[12] != "es_1" {
		t.Errorf("switches not created in build order: %v", rf.switches)
	}
	if rf.links[0] != "es_1-h_1" {
		t.Errorf("first link = %s, want es_1-h_1", rf.links[0])
	}
	if rf.addresses["h_16"] != "10.4.2.2" {
		t.Errorf("h_16 address = %s, want 10.4.2.2", rf.addresses["h_16"])
	}
}

func TestRealizeStopsOnError(t *testing.T) {
	ft, err := BuildFatTree(4, 1000)
	if err != nil {
		t.Fatalf("BuildFatTree failed: %v", err)
	}

	rf := &recordingFabric{failOn: "h_3"}
	err = Realize(ft, rf)
	if err == nil || !strings.Contains(err.Error(), "h_3") {
		t.Fatalf("Realize error = %v, want failure naming h_3", err)
	}
	if len(rf.links) != 0 {
		t.Errorf("links created after a failed host: %d", len(rf.links))
	}
}
