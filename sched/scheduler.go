package sched

import "github.com/osmocom-go/trxsched/internal/rflog"

/*-------------------------------------------------------------------
 *
 * Purpose:	Scheduler aggregate.
 *
 * Description:	One instance per cell, owning every TRX's timeslot
 *		state, the codec / upper-layer / transceiver
 *		collaborators and the clock engine.  All shared state
 *		hangs off this value; there are no package-level
 *		mutables.
 *
 *-------------------------------------------------------------------*/

// Scheduler is the per-cell radio-frame scheduler.
type Scheduler struct {
	trxs   []*TRX
	c0Idx  int // index of the broadcast carrier
	codecs Codecs
	upper  UpperLayer
	xcvr   Transceiver
	log    *schedLogger
	clock  *ClockEngine
}

// New builds a Scheduler with no TRXes configured yet. Call AddTRX to
// populate it before starting the clock engine. The first TRX added
// is the broadcast carrier.
func New(codecs Codecs, upper UpperLayer, xcvr Transceiver, logger *rflog.Logger) *Scheduler {
	s := &Scheduler{
		codecs: codecs,
		upper:  upper,
		xcvr:   xcvr,
		log:    newSchedLogger(logger),
	}
	s.clock = newClockEngine(s)
	return s
}

// AddTRX appends a new TRX with the given configuration and returns
// its index.
func (s *Scheduler) AddTRX(cfg TRXConfig) int {
	s.trxs = append(s.trxs, newTRX(cfg))
	return len(s.trxs) - 1
}

// trxAt returns the TRX at idx, or nil if out of range.
func (s *Scheduler) trxAt(idx int) *TRX {
	if idx < 0 || idx >= len(s.trxs) {
		return nil
	}
	return s.trxs[idx]
}

// TRXAt exposes a configured TRX for (re)configuration. Returns nil
// if idx is out of range.
func (s *Scheduler) TRXAt(idx int) *TRX {
	return s.trxAt(idx)
}

// Clock returns the scheduler's clock engine, the entry point for
// feeding it clock samples.
func (s *Scheduler) Clock() *ClockEngine {
	return s.clock
}

// Reset clears every timeslot of TRX trxIdx: channel buffers are
// released, block bookkeeping zeroed and pending downlink primitives
// flushed. The PCHAN configuration is kept.
func (s *Scheduler) Reset(trxIdx int) {
	trx := s.trxAt(trxIdx)
	if trx == nil {
		return
	}
	for _, ts := range trx.ts {
		ts.resetAll()
	}
}

// Shutdown tears down TN tn on TRX trxIdx: resets its channel state
// and leaves it unconfigured, so the slot is dead until a new PCHAN
// is set. tn < 0 shuts down every timeslot.
func (s *Scheduler) Shutdown(trxIdx, tn int) {
	trx := s.trxAt(trxIdx)
	if trx == nil || tn >= NumTimeslots {
		return
	}
	if tn < 0 {
		for i := range trx.ts {
			s.Shutdown(trxIdx, i)
		}
		return
	}
	ts := trx.ts[tn]
	ts.resetAll()
	ts.pchan = PCHANNone
	ts.mf = nil
}
