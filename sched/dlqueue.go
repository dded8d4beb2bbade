package sched

/*-------------------------------------------------------------------
 *
 * Purpose:	Downlink primitive queue.
 *
 * Description:	One FIFO per timeslot of upper-layer primitives, each
 *		tagged with the frame number it must be transmitted in.
 *		Serving is governed by frame-number match rather than
 *		enqueue order: stale primitives are purged as a side
 *		effect of every dequeue, and a signalling primitive
 *		beats a traffic one queued for the same frame (FACCH
 *		stealing).
 *
 *-------------------------------------------------------------------*/

// primKind distinguishes a generic data primitive from a traffic
// (TCH) one, needed for the FACCH-preemption rule.
type primKind int

const (
	primPHData primKind = iota
	primTCH
)

// dlPrimitive is one upper-layer primitive awaiting its target FN.
type dlPrimitive struct {
	Kind   primKind
	ChanNr byte
	LinkID byte
	FN     FN
	L2     []byte
}

// staleWindow bounds the forward distance (target - fn) mod Hyperframe
// a queued primitive may have before it is purged. A target in the
// past wraps to a distance near a whole hyperframe, so it is always
// purged; a target more than 20 frames ahead is purged as well.
const staleWindow = 20

// enqueue appends prim to ts's queue. Empty L2 frames are dropped
// silently.
func (ts *tsState) enqueue(prim *dlPrimitive) {
	if len(prim.L2) == 0 {
		return
	}
	ts.queue = append(ts.queue, prim)
}

// dequeuePrim serves channel c at frame fn: purges stale primitives,
// picks the frame-matching candidate (preferring signalling over
// traffic), and validates its addressing against the descriptor.
// Returns nil if nothing was served.
func (ts *tsState) dequeuePrim(tn int, fn FN, c ChanType, log *schedLogger) *dlPrimitive {
	desc := descriptorFor(c)
	if desc == nil {
		return nil
	}

	kept := ts.queue[:0]
	var winner *dlPrimitive
	for _, p := range ts.queue {
		d := p.FN.Since(fn)
		switch {
		case d > staleWindow:
			// Outside the window: any past target, or one more than
			// 20 frames ahead. Discarded, not kept.
			log.errorf("tn=%d fn=%d: stale primitive discarded (target fn=%d)", tn, fn, p.FN)
			continue
		case d > 0:
			// Future primitive, still pending.
			kept = append(kept, p)
			continue
		}
		// d == 0: candidate for this exact frame.
		if winner == nil {
			winner = p
			continue
		}
		// Two candidates: FACCH (non-traffic) preempts TCH.
		if winner.Kind == primTCH && p.Kind != primTCH {
			winner = p
		}
		// The loser is simply not kept.
	}
	ts.queue = kept

	if winner == nil {
		log.errorf("tn=%d fn=%d chan=%s: not served", tn, fn, c)
		return nil
	}

	wantChanNr := desc.ChanNr | byte(tn)
	wantSACCH := desc.LinkID&liSACCH != 0
	gotSACCH := winner.LinkID&liSACCH != 0
	if winner.ChanNr != wantChanNr || gotSACCH != wantSACCH {
		log.fatalf("tn=%d fn=%d chan=%s: malformed primitive chan_nr=0x%02x link_id=0x%02x", tn, fn, c, winner.ChanNr, winner.LinkID)
		return nil
	}

	return winner
}
