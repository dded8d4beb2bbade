package sched

/*-------------------------------------------------------------------
 *
 * Purpose:	Per-channel state matrix.
 *
 * Description:	One chanState lives per (timeslot, channel type) pair.
 *		Interleaving buffers are single-owner, lazily allocated
 *		on first use and released on reset (a DL buffer also
 *		when its producer finds nothing queued for a new
 *		block); deactivating a channel alone does not release
 *		them.  No sharing, no reference counting.
 *
 *-------------------------------------------------------------------*/

// Buffer sizes: 464 hard bits for a 4-burst signalling block (4x116
// encoded bits), 928 for the full-rate traffic channel whose 8-burst
// diagonal interleaver keeps the previous block's half addressable.
const (
	xcchBufLen = 464
	tchfBufLen = 928
)

// chanState is the mutable per-(TS, channel) cell of the scheduler's
// state matrix.
type chanState struct {
	dlActive bool
	ulActive bool

	dlBursts []byte // hard bits, lazily sized to xcchBufLen or tchfBufLen
	ulBursts []int8 // soft bits, same sizing

	ulMask    uint8 // 4-bit presence mask within the current block
	ulFirstFN FN    // FN of the block's first burst (bid==0)

	sacchLost int // consecutive missed SACCH DL primitives
}

// ensureDLBuffer lazily allocates the DL interleaver buffer of size n
// if not already present.
func (cs *chanState) ensureDLBuffer(n int) []byte {
	if cs.dlBursts == nil {
		cs.dlBursts = make([]byte, n)
	}
	return cs.dlBursts
}

// ensureULBuffer lazily allocates the UL interleaver buffer of size n
// if not already present.
func (cs *chanState) ensureULBuffer(n int) []int8 {
	if cs.ulBursts == nil {
		cs.ulBursts = make([]int8, n)
	}
	return cs.ulBursts
}

// reset releases both buffers and clears all per-block bookkeeping.
func (cs *chanState) reset() {
	cs.dlBursts = nil
	cs.ulBursts = nil
	cs.ulMask = 0
	cs.ulFirstFN = 0
	cs.sacchLost = 0
}

// tsState holds one timeslot's PCHAN configuration and the state
// matrix of its legal sub-channels.
type tsState struct {
	tn     int
	pchan  PCHAN
	mf     *Multiframe
	states map[ChanType]*chanState
	queue  []*dlPrimitive
}

func newTSState(tn int) *tsState {
	return &tsState{tn: tn, pchan: PCHANNone, states: make(map[ChanType]*chanState)}
}

// chanState returns (lazily creating) the state cell for c.
func (ts *tsState) chanState(c ChanType) *chanState {
	cs, ok := ts.states[c]
	if !ok {
		cs = &chanState{}
		ts.states[c] = cs
	}
	return cs
}

// resetAll clears every channel cell's buffers and flushes the DL
// primitive queue.
func (ts *tsState) resetAll() {
	for _, cs := range ts.states {
		cs.reset()
	}
	ts.queue = nil
}
