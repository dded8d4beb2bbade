// Package simtrx is a fake transceiver for development and testing.
//
// It implements the scheduler's outbound transceiver boundary,
// records everything the dispatcher sends, and mirrors the burst
// stream onto a pseudo-terminal so external tooling (or a human with
// cat) can watch a running scheduler without a radio. Clock samples
// and uplink bursts are injected programmatically.
package simtrx

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/creack/pty"

	"github.com/osmocom-go/trxsched/internal/rflog"
	"github.com/osmocom-go/trxsched/sched"
)

// TxFrame is one recorded downlink burst.
type TxFrame struct {
	TRX  int
	TN   int
	FN   sched.FN
	Gain uint8
	Bits []byte
}

// SimTRX is the fake transceiver. The zero value is not usable;
// construct with Open.
type SimTRX struct {
	mu sync.Mutex

	master *os.File
	slave  *os.File

	log *rflog.Logger

	frames     []TxFrame
	flushes    map[int]int
	provisions int
}

// Open creates a SimTRX backed by a fresh pseudo-terminal. The slave
// side's path is available via SlaveName for external readers.
func Open(log *rflog.Logger) (*SimTRX, error) {
	master, slave, err := pty.Open()
	if err != nil {
		return nil, fmt.Errorf("simtrx: could not create pseudo terminal: %w", err)
	}
	return &SimTRX{
		master:  master,
		slave:   slave,
		log:     log,
		flushes: make(map[int]int),
	}, nil
}

// SlaveName returns the path of the pty slave carrying the mirrored
// burst stream.
func (s *SimTRX) SlaveName() string {
	return s.slave.Name()
}

// TxData records one outbound burst and mirrors a one-line summary to
// the pty.
func (s *SimTRX) TxData(trxIdx, tn int, fn sched.FN, gain uint8, bits []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	frame := TxFrame{TRX: trxIdx, TN: tn, FN: fn, Gain: gain, Bits: append([]byte(nil), bits...)}
	s.frames = append(s.frames, frame)

	fmt.Fprintf(s.master, "tx trx=%d tn=%d fn=%d gain=%d bits=%d\r\n",
		trxIdx, tn, fn, gain, len(bits))
}

// Provision records a provisioning request.
func (s *SimTRX) Provision() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.provisions++
	s.log.Info("simtrx: provision requested")
	return nil
}

// Flush records a flush for one TRX.
func (s *SimTRX) Flush(trxIdx int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flushes[trxIdx]++
}

// Frames returns a copy of every burst recorded so far.
func (s *SimTRX) Frames() []TxFrame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]TxFrame(nil), s.frames...)
}

// Provisions returns how many provisioning requests were recorded.
func (s *SimTRX) Provisions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.provisions
}

// Flushes returns how many flushes were recorded for trxIdx.
func (s *SimTRX) Flushes(trxIdx int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flushes[trxIdx]
}

// RunClock feeds n consecutive clock samples starting at fn into src,
// one per frame duration. It blocks until done; run it in its own
// goroutine for a live simulation.
func (s *SimTRX) RunClock(src sched.ClockSource, fn sched.FN, n int) {
	for i := 0; i < n; i++ {
		src.OnClock(fn)
		fn = fn.Add(1)
		time.Sleep(sched.FrameDuration)
	}
}

// InjectBurst hands one uplink burst to src as if the radio had
// received it.
func (s *SimTRX) InjectBurst(src sched.ClockSource, trxIdx, tn int, fn sched.FN, softBits []int8, rssi, toa float32) {
	src.OnRxBurst(trxIdx, tn, fn, softBits, rssi, toa)
}

// Close releases both pty ends.
func (s *SimTRX) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.slave.Close(); err != nil {
		s.master.Close()
		return err
	}
	return s.master.Close()
}
