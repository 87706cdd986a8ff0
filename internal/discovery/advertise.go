package discovery

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/grandcat/zeroconf"
)

// Advertisement is a live mDNS registration. Call Shutdown to withdraw it.
type Advertisement struct {
	server   *zeroconf.Server
	Instance string
	Port     int
}

// Advertise publishes a preview server on port under ServiceType.
// An empty instance defaults to "flochat-wizard on <hostname>".
func Advertise(instance string, port int, metadata map[string]string) (*Advertisement, error) {
	if instance == "" {
		instance = DefaultInstance()
	}

	server, err := zeroconf.Register(instance, ServiceType, ServiceDomain, port, buildTXT(metadata), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to register mDNS service: %w", err)
	}

	return &Advertisement{server: server, Instance: instance, Port: port}, nil
}

// Shutdown withdraws the advertisement. Safe to call on nil.
func (a *Advertisement) Shutdown() {
	if a == nil || a.server == nil {
		return
	}
	a.server.Shutdown()
	a.server = nil
}

// DefaultInstance names the advertisement after the local host.
func DefaultInstance() string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		return appValue
	}
	host = strings.TrimSuffix(host, ".local")
	return appValue + " on " + host
}

// buildTXT renders metadata as sorted "key=value" records and always adds
// the app marker Scan filters on.
func buildTXT(metadata map[string]string) []string {
	txt := make([]string, 0, len(metadata)+1)
	txt = append(txt, appKey+"="+appValue)
	keys := make([]string, 0, len(metadata))
	for k := range metadata {
		if k != appKey {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		txt = append(txt, k+"="+metadata[k])
	}
	return txt
}
