package main

/*-------------------------------------------------------------------
 *
 * Purpose:	Frame scheduler daemon.
 *
 * Description:	Wires the scheduler core to a transceiver — either a
 *		real one over UDP or the built-in simulator — and runs
 *		until interrupted.  Channel codecs are registered by
 *		the integrating build; without them only the broadcast
 *		carrier's fixed bursts go out, which is still enough to
 *		verify timing against a transceiver.
 *
 *-------------------------------------------------------------------*/

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/osmocom-go/trxsched/internal/discovery"
	"github.com/osmocom-go/trxsched/internal/rflog"
	"github.com/osmocom-go/trxsched/internal/simtrx"
	"github.com/osmocom-go/trxsched/internal/trxio"
	"github.com/osmocom-go/trxsched/sched"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var (
		trxHost   = pflag.StringP("trx-host", "t", "127.0.0.1", "Transceiver host.")
		trxPort   = pflag.IntP("trx-port", "p", 5700, "Transceiver base control port.")
		simulate  = pflag.BoolP("simulate", "s", false, "Use the built-in simulated transceiver instead of UDP.")
		announce  = pflag.BoolP("dns-sd", "d", false, "Announce the endpoint via DNS-SD.")
		name      = pflag.String("dns-sd-name", "", "DNS-SD instance name. Empty derives one from the hostname.")
		pchanStrs = pflag.StringArray("pchan", []string{"0:CCCH"}, "Timeslot configuration as tn:PCHAN. Repeatable.")
		bsic      = pflag.Uint8("bsic", 0, "Base station identity code.")
		tsc       = pflag.Uint8("tsc", 0, "Training sequence code (0..7).")
		clockAdv  = pflag.Uint32("clock-advance", sched.DefaultClockAdvance, "Frames of transceiver processing headroom.")
		rtsAdv    = pflag.Uint32("rts-advance", sched.DefaultRTSAdvance, "Additional frames of ready-to-send lead.")
		slotmask  = pflag.Uint8("slotmask", 0xFF, "Bitmask of enabled timeslots.")
		logLevel  = pflag.String("log-level", "info", "Minimum log level: debug, info, error, fatal.")
		tsFormat  = pflag.String("log-timestamp", rflog.DefaultTimestampFormat, "strftime pattern for log timestamps. Empty disables.")
	)
	pflag.Parse()

	level, err := parseLevel(*logLevel)
	if err != nil {
		return err
	}
	logger, err := rflog.New(os.Stderr, level, *tsFormat)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		xcvr sched.Transceiver
		sim  *simtrx.SimTRX
		conn *trxio.Conn
	)
	if *simulate {
		sim, err = simtrx.Open(logger)
		if err != nil {
			return err
		}
		defer sim.Close()
		logger.Info("simulated transceiver on %s", sim.SlaveName())
		xcvr = sim
	} else {
		conn, err = trxio.Dial(0, *trxHost, *trxPort, logger)
		if err != nil {
			return err
		}
		defer conn.Close()
		xcvr = conn
	}

	s := sched.New(sched.Codecs{}, nopUpper{}, xcvr, logger)
	trxIdx := s.AddTRX(sched.TRXConfig{
		PowerOn:      true,
		SlotMask:     *slotmask,
		TSC:          *tsc,
		ClockAdvance: *clockAdv,
		RTSAdvance:   *rtsAdv,
		BSIC:         *bsic,
	})
	trx := s.TRXAt(trxIdx)
	for _, spec := range *pchanStrs {
		tn, pchan, err := parsePCHAN(spec)
		if err != nil {
			return err
		}
		if err := trx.SetPCHAN(tn, pchan); err != nil {
			return err
		}
	}

	if *announce {
		discovery.Announce(ctx, *name, *trxPort, logger)
	}

	if sim != nil {
		// Drive the clock ourselves at frame rate; the real path gets
		// clock indications over the control socket instead.
		go func() {
			for ctx.Err() == nil {
				sim.RunClock(s, s.Clock().InternalFN(), 1000)
			}
		}()
	} else {
		go conn.Serve(s)
		if err := conn.Provision(); err != nil {
			return err
		}
	}

	<-ctx.Done()
	s.Clock().Stop()
	logger.Info("shutting down")
	return nil
}

func parseLevel(s string) (rflog.Level, error) {
	switch s {
	case "debug":
		return rflog.Debug, nil
	case "info":
		return rflog.Info, nil
	case "error":
		return rflog.Error, nil
	case "fatal":
		return rflog.Fatal, nil
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}

func parsePCHAN(spec string) (int, sched.PCHAN, error) {
	var tn int
	var name string
	if _, err := fmt.Sscanf(spec, "%d:%s", &tn, &name); err != nil {
		return 0, sched.PCHANNone, fmt.Errorf("bad --pchan %q: want tn:PCHAN", spec)
	}
	for _, p := range []sched.PCHAN{
		sched.PCHANCCCH, sched.PCHANCCCHSDCCH4, sched.PCHANSDCCH8SACCH8C,
		sched.PCHANTCHF, sched.PCHANTCHH, sched.PCHANPDCH,
	} {
		if p.String() == name {
			return tn, p, nil
		}
	}
	return 0, sched.PCHANNone, fmt.Errorf("bad --pchan %q: unknown PCHAN %q", spec, name)
}

// nopUpper discards every indication; a real upper layer is attached
// by the integrating build.
type nopUpper struct{}

func (nopUpper) PHDataInd(chanNr, linkID byte, fn sched.FN, l2 []byte) {}
func (nopUpper) TCHInd(chanNr byte, fn sched.FN, payload []byte)       {}
func (nopUpper) PHRachInd(ra byte, accDelay int, fn sched.FN)          {}
func (nopUpper) PHRTSInd(chanNr, linkID byte, fn sched.FN)             {}
func (nopUpper) TCHRTSInd(chanNr byte, fn sched.FN)                    {}
func (nopUpper) MPHTimeInd(fn sched.FN)                                {}
