package discovery

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// Service represents a preview server found on the network
type Service struct {
	// Instance is the advertised mDNS instance name (e.g., "flochat-wizard on studio")
	Instance string

	// Hostname is the mDNS hostname (e.g., "studio.local.")
	Hostname string

	// IP is the address to connect to, IPv4 when one is advertised
	IP string

	// Port is the preview server's HTTP port
	Port int

	// Metadata contains the TXT record data
	// Common fields: "version=1.2.0", "path=/", "ws=/ws"
	Metadata map[string]string

	// DiscoveredAt is when the service was discovered
	DiscoveredAt time.Time
}

// String returns a human-readable string representation of the service
func (s *Service) String() string {
	return fmt.Sprintf("%s (%s) at %s", s.Instance, s.Hostname, s.URL())
}

// URL returns the preview page URL
func (s *Service) URL() string {
	return "http://" + net.JoinHostPort(s.IP, strconv.Itoa(s.Port)) + s.pathOr("path", "/")
}

// WebSocketURL returns the live update endpoint
func (s *Service) WebSocketURL() string {
	return "ws://" + net.JoinHostPort(s.IP, strconv.Itoa(s.Port)) + s.pathOr("ws", "/ws")
}

// GetMetadata retrieves a metadata value by key, or returns empty string if not found
func (s *Service) GetMetadata(key string) string {
	if s.Metadata == nil {
		return ""
	}
	return s.Metadata[key]
}

func (s *Service) pathOr(key, def string) string {
	if p := s.GetMetadata(key); p != "" {
		return p
	}
	return def
}
