// Package discovery announces the scheduler's transceiver-facing UDP
// endpoint over mDNS/DNS-SD, so a transceiver process or a test
// harness on the local network can find a running scheduler without
// static configuration.
package discovery

import (
	"context"
	"os"
	"strings"

	"github.com/brutella/dnssd"

	"github.com/osmocom-go/trxsched/internal/rflog"
)

// ServiceType is the DNS-SD service type announced for the
// scheduler's control/data endpoint.
const ServiceType = "_gsm-trx._udp"

// DefaultServiceName derives an instance name from the hostname, or
// falls back to a fixed one.
func DefaultServiceName() string {
	hostname, err := os.Hostname()
	if err != nil {
		return "trx-sched"
	}

	// On some systems an FQDN is returned; remove the domain part.
	hostname, _, _ = strings.Cut(hostname, ".")

	return "trx-sched on " + hostname
}

// Announce publishes the service on port until ctx is cancelled. An
// empty name selects DefaultServiceName. Announcement failures are
// logged and otherwise ignored; discovery is a convenience, never a
// dependency.
func Announce(ctx context.Context, name string, port int, log *rflog.Logger) {
	if name == "" {
		name = DefaultServiceName()
	}

	cfg := dnssd.Config{
		Name: name,
		Type: ServiceType,
		Port: port,
	}

	sv, err := dnssd.NewService(cfg)
	if err != nil {
		log.Error("dns-sd: failed to create service: %v", err)
		return
	}

	rp, err := dnssd.NewResponder()
	if err != nil {
		log.Error("dns-sd: failed to create responder: %v", err)
		return
	}

	if _, err := rp.Add(sv); err != nil {
		log.Error("dns-sd: failed to add service: %v", err)
		return
	}

	log.Info("dns-sd: announcing %s on port %d as %q", ServiceType, port, name)

	go func() {
		if err := rp.Respond(ctx); err != nil && ctx.Err() == nil {
			log.Error("dns-sd: responder error: %v", err)
		}
	}()
}
