package auth

import (
	"fmt"
	"net"
	"strings"
)

// Allowlist restricts which client addresses may fetch theme assets.
// An empty allowlist allows everyone.
type Allowlist struct {
	nets []*net.IPNet
}

// NewAllowlist parses CIDR entries; bare addresses are treated as /32 or /128.
func NewAllowlist(entries []string) (*Allowlist, error) {
	a := &Allowlist{nets: make([]*net.IPNet, 0, len(entries))}
	for _, cidr := range entries {
		cidr = strings.TrimSpace(cidr)
		// Handle single IP addresses without CIDR notation
		if !strings.Contains(cidr, "/") {
			if strings.Contains(cidr, ":") {
				cidr = cidr + "/128" // IPv6
			} else {
				cidr = cidr + "/32" // IPv4
			}
		}
		_, ipNet, err := net.ParseCIDR(cidr)
		if err != nil {
			return nil, fmt.Errorf("invalid IP allowlist entry '%s': %w", cidr, err)
		}
		a.nets = append(a.nets, ipNet)
	}
	return a, nil
}

// Allowed reports whether addr (an IP, optionally with a port) may connect.
func (a *Allowlist) Allowed(addr string) bool {
	if a == nil || len(a.nets) == 0 {
		return true
	}

	host := addr
	if h, _, err := net.SplitHostPort(addr); err == nil {
		host = h
	}

	ip := net.ParseIP(host)
	if ip == nil {
		return false
	}

	for _, ipNet := range a.nets {
		if ipNet.Contains(ip) {
			return true
		}
	}
	return false
}

// Len returns the number of configured networks.
func (a *Allowlist) Len() int {
	if a == nil {
		return 0
	}
	return len(a.nets)
}
