package sched

import (
	"sync"
	"time"
)

/*-------------------------------------------------------------------
 *
 * Purpose:	Frame clock engine.
 *
 * Description:	Phase-locks an internal frame counter to the clock
 *		samples the transceiver reports on its control channel.
 *		Between samples a periodic timer synthesises ticks so
 *		the schedule keeps running at frame rate; a burst of
 *		missing samples eventually declares the transceiver
 *		lost, and a jump beyond the skew bound re-locks rather
 *		than streaming the whole delta through the dispatcher.
 *
 *-------------------------------------------------------------------*/

// ClockState is the engine's lock state.
type ClockState int

const (
	ClockUnlocked ClockState = iota
	ClockLocked
)

func (c ClockState) String() string {
	if c == ClockLocked {
		return "LOCKED"
	}
	return "UNLOCKED"
}

const (
	// FrameDuration is the length of one TDMA frame.
	FrameDuration = 4615 * time.Microsecond
	// MaxFNSkew bounds how far a clock sample may jump from the
	// internal counter before the engine re-locks instead.
	MaxFNSkew = 50
	// LossThreshold is how many synthetic frames may pass without a
	// real clock sample before the transceiver is declared lost.
	LossThreshold = 400
)

// ClockEngine phase-locks the scheduler's internal frame counter to
// the transceiver's reported frame numbers. It is owned by exactly
// one Scheduler; the timer callback and the transceiver I/O goroutine
// are the only concurrent entry points.
type ClockEngine struct {
	mu sync.Mutex

	s *Scheduler

	state       ClockState
	internalFN  FN
	lostCounter int
	tvClock     time.Time

	timer *time.Timer
}

func newClockEngine(s *Scheduler) *ClockEngine {
	return &ClockEngine{s: s, state: ClockUnlocked}
}

// clockNow is swapped out in tests; production always reads time.Now.
var clockNow = time.Now

// OnClock feeds one transceiver clock sample into the engine.
func (ce *ClockEngine) OnClock(fn FN) {
	ce.mu.Lock()
	defer ce.mu.Unlock()

	ce.lostCounter = 0

	if ce.state == ClockUnlocked {
		ce.s.log.infof("initial clock received: fn=%d", fn)
		ce.lockAt(fn)
		return
	}

	delta := fn.SignedDelta(ce.internalFN)
	if delta > MaxFNSkew || delta < -MaxFNSkew {
		ce.s.log.errorf("clock skew: old fn=%d, new fn=%d", ce.internalFN, fn)
		ce.lockAt(fn)
		return
	}

	now := clockNow()

	if delta < 0 {
		// We already processed frames past this sample: pretend the
		// last frame was sent in the future and delay the next tick
		// until the transceiver has caught up.
		ce.tvClock = now.Add(time.Duration(-delta) * FrameDuration)
		ce.rearm(time.Duration(1-delta) * FrameDuration)
		return
	}

	// Process what we still owe, then resynchronise the wall-clock
	// anchor to this sample.
	for ce.internalFN != fn {
		ce.internalFN = ce.internalFN.Add(1)
		ce.s.tick(ce.internalFN)
	}
	ce.tvClock = now
	ce.rearm(FrameDuration)
}

// lockAt (re-)enters LOCKED at fn. Caller holds ce.mu.
func (ce *ClockEngine) lockAt(fn FN) {
	ce.state = ClockLocked
	ce.internalFN = fn
	ce.lostCounter = 0
	ce.tvClock = clockNow()
	ce.s.tick(fn)
	ce.rearm(FrameDuration)
}

// rearm (re)schedules the frame timer to fire after d. Caller holds
// ce.mu.
func (ce *ClockEngine) rearm(d time.Duration) {
	if d <= 0 {
		d = time.Nanosecond
	}
	if ce.timer != nil {
		ce.timer.Stop()
	}
	ce.timer = time.AfterFunc(d, ce.onTimer)
}

// onTimer synthesises frame ticks between clock samples.
func (ce *ClockEngine) onTimer() {
	ce.mu.Lock()
	defer ce.mu.Unlock()

	if ce.state != ClockLocked {
		return
	}

	ce.lostCounter++
	if ce.lostCounter >= LossThreshold {
		ce.s.onTransceiverLoss()
		ce.state = ClockUnlocked
		return
	}

	elapsed := clockNow().Sub(ce.tvClock)
	if elapsed > FrameDuration*MaxFNSkew || elapsed < 0 {
		// Someone played with the clock, or the process stalled.
		// Stop ticking and wait for the next real sample.
		ce.s.log.errorf("pc clock skew: elapsed=%v", elapsed)
		ce.state = ClockUnlocked
		return
	}

	for elapsed > FrameDuration/2 {
		ce.tvClock = ce.tvClock.Add(FrameDuration)
		ce.internalFN = ce.internalFN.Add(1)
		ce.s.tick(ce.internalFN)
		elapsed -= FrameDuration
	}
	ce.rearm(FrameDuration - elapsed)
}

// State returns the current lock state, for monitoring.
func (ce *ClockEngine) State() ClockState {
	ce.mu.Lock()
	defer ce.mu.Unlock()
	return ce.state
}

// InternalFN returns the engine's current frame counter, for
// monitoring.
func (ce *ClockEngine) InternalFN() FN {
	ce.mu.Lock()
	defer ce.mu.Unlock()
	return ce.internalFN
}

// Stop cancels the frame timer and drops back to UNLOCKED. Used at
// daemon shutdown.
func (ce *ClockEngine) Stop() {
	ce.mu.Lock()
	defer ce.mu.Unlock()
	if ce.timer != nil {
		ce.timer.Stop()
		ce.timer = nil
	}
	ce.state = ClockUnlocked
}
