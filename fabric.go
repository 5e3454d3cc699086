package main

import "fmt"

// Handle is an opaque reference to an entity created by a Fabric.
type Handle interface{}

// Fabric is the capability a network emulation layer offers to realize a
// fat-tree. Realize calls each method once per entity, link or address.
type Fabric interface {
	CreateSwitch(id string) (Handle, error)
	CreateHost(id string) (Handle, error)
	CreateLink(a, b Handle, bandwidthMbps int) error
	SetHostAddress(h Handle, address string) error
}

// Realize creates ft on f: switches and hosts in build order, then links, then
// host addresses.
func Realize(ft *FatTree, f Fabric) error {
	handles := make(map[string]Handle)

	for _, s := range ft.Switches() {
		h, err := f.CreateSwitch(s.ID)
		if err != nil {
			return fmt.Errorf("failed to create switch %s: %w", s.ID, err)
		}
		handles[s.ID] = h
	}

	for _, host := range ft.Hosts {
		h, err := f.CreateHost(host.ID)
		if err != nil {
			return fmt.Errorf("failed to create host %s: %w", host.ID, err)
		}
		handles[host.ID] = h
	}

	for _, l := range ft.Links {
		a, ok := handles[l.A.ID]
		if !ok {
			return fmt.Errorf("%w: no handle for %s", ErrIntegrity, l.A.ID)
		}
		b, ok := handles[l.B.ID]
		if !ok {
			return fmt.Errorf("%w: no handle for %s", ErrIntegrity, l.B.ID)
		}
		if err := f.CreateLink(a, b, l.BandwidthMbps); err != nil {
			return fmt.Errorf("failed to create link %s - %s: %w", l.A.ID, l.B.ID, err)
		}
	}

	for _, a := range ft.Addresses {
		h, ok := handles[a.Host.ID]
		if !ok {
			return fmt.Errorf("%w: no handle for %s", ErrIntegrity, a.Host.ID)
		}
		if err := f.SetHostAddress(h, a.Address); err != nil {
			return fmt.Errorf("failed to set address of %s: %w", a.Host.ID, err)
		}
	}

	return nil
}
