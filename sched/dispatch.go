package sched

/*-------------------------------------------------------------------
 *
 * Purpose:	Per-TRX, per-frame dispatch.
 *
 * Description:	Three entry points scoped to one TRX and timeslot —
 *		ready-to-send, downlink burst, uplink burst — plus the
 *		per-frame orchestration that walks every powered-on
 *		TRX's enabled timeslots.  Each entry point looks up the
 *		timeslot's multiframe row for the frame number and
 *		calls the scheduled channel's hook.
 *
 *		Nothing here blocks; outbound bursts are handed to the
 *		transceiver boundary fire-and-forget.
 *
 *-------------------------------------------------------------------*/

// rts invokes the scheduled channel's ready-to-send hook, only on the
// block's first burst and only if the channel is active (or always
// on).
func (s *Scheduler) rts(trxIdx, tn int, fn FN) {
	trx := s.trxAt(trxIdx)
	if trx == nil {
		return
	}
	ts := trx.ts[tn]
	if ts.mf == nil {
		return
	}
	row := ts.mf.Lookup(fn)
	if row.DLBid != 0 {
		return
	}
	desc := descriptorFor(row.DLChan)
	if desc == nil || desc.RTS == nil {
		return
	}
	if !desc.AutoActive && !ts.chanState(row.DLChan).dlActive {
		return
	}
	desc.RTS(s, trxIdx, tn, fn, row.DLChan)
}

// dlBurst produces the outbound bits for (tn, fn). On the broadcast
// carrier an empty slot is filled with the dummy burst to maintain
// constant RF power; elsewhere it stays silent.
func (s *Scheduler) dlBurst(trxIdx, tn int, fn FN) ([]byte, bool) {
	trx := s.trxAt(trxIdx)
	if trx == nil {
		return nil, false
	}
	ts := trx.ts[tn]

	var bits []byte
	var ok bool
	if ts.mf != nil {
		row := ts.mf.Lookup(fn)
		desc := descriptorFor(row.DLChan)
		if desc != nil && desc.DLProducer != nil &&
			(desc.AutoActive || ts.chanState(row.DLChan).dlActive) {
			bits, ok = desc.DLProducer(s, trxIdx, tn, fn, row.DLChan, row.DLBid)
		}
	}

	if !ok && trxIdx == s.c0Idx {
		return dummyBurst[:], true
	}
	return bits, ok
}

// ulBurst routes a received burst into the scheduled channel's
// consumer, if it is active.
func (s *Scheduler) ulBurst(trxIdx, tn int, fn FN, softBits []int8, toa float32) {
	trx := s.trxAt(trxIdx)
	if trx == nil {
		return
	}
	ts := trx.ts[tn]
	if ts.mf == nil {
		return
	}
	row := ts.mf.Lookup(fn)
	desc := descriptorFor(row.ULChan)
	if desc == nil || desc.ULConsumer == nil {
		return
	}
	if !desc.AutoActive && !ts.chanState(row.ULChan).ulActive {
		return
	}
	desc.ULConsumer(s, trxIdx, tn, fn, row.ULChan, row.ULBid, softBits, toa)
}

// OnRxBurst delivers a received burst from the transceiver's event
// loop straight into ulBurst.
func (s *Scheduler) OnRxBurst(trxIdx, tn int, fn FN, softBits []int8, rssi float32, toa float32) {
	s.ulBurst(trxIdx, tn, fn, softBits, toa)
}

// OnClock feeds a transceiver clock sample to the clock engine; with
// OnRxBurst this makes the Scheduler the ClockSource consumer the
// transport delivers into.
func (s *Scheduler) OnClock(fn FN) {
	s.clock.OnClock(fn)
}

// dummyGain is the attenuation sent with a filler burst; real bursts
// go out at full power.
const dummyGain = 128

// tick runs one frame: emits the time indication, advances the frame
// number so the transceiver has processing headroom, and serves RTS
// then the downlink burst for every powered-on TRX's enabled
// timeslots. RTS leads the burst by a further rtsAdvance frames.
func (s *Scheduler) tick(fn FN) {
	if s.upper != nil {
		s.upper.MPHTimeInd(fn)
	}

	for trxIdx, trx := range s.trxs {
		if !trx.Config.PowerOn {
			continue
		}
		fnAdvanced := fn.Add(int64(trx.Config.ClockAdvance))
		fnRTS := fnAdvanced.Add(int64(trx.Config.RTSAdvance))

		for tn := 0; tn < NumTimeslots; tn++ {
			if !trx.tnEnabled(tn) {
				continue
			}
			s.rts(trxIdx, tn, fnRTS)

			bits, ok := s.dlBurst(trxIdx, tn, fnAdvanced)
			gain := uint8(0)
			if !ok {
				bits = dummyBurst[:]
				gain = dummyGain
			}
			if s.xcvr != nil {
				s.xcvr.TxData(trxIdx, tn, fnAdvanced, gain, bits)
			}
		}
	}
}

// onTransceiverLoss flushes every TRX's outbound queue and asks for
// the transceiver to be provisioned again.
func (s *Scheduler) onTransceiverLoss() {
	s.log.errorf("no more clock from transceiver: flushing and requesting re-provision")
	if s.xcvr == nil {
		return
	}
	for idx := range s.trxs {
		s.xcvr.Flush(idx)
	}
	if err := s.xcvr.Provision(); err != nil {
		s.log.errorf("re-provision failed: %v", err)
	}
}
