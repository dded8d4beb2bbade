package sched

/*-------------------------------------------------------------------
 *
 * Purpose:	Downlink burst producers.
 *
 * Description:	One producer per channel family (IDLE, FCCH, SCH,
 *		generic xCCH data, PDTCH, TCH/F, TCH/H).  Each owns the
 *		interleaving-buffer lifecycle for its channel cell and
 *		composes the final 148-symbol burst; bit-level coding
 *		is delegated to the codec collaborators.
 *
 *		Buffers are released as soon as a channel has nothing
 *		queued, so an idle dedicated channel costs no memory
 *		and the dispatcher falls back to the dummy burst.
 *
 *-------------------------------------------------------------------*/

const burstLen = 148

// trainingSequences holds the 8 normal-burst training sequences
// (26 bits each), selected per TRX by the configured TSC.
var trainingSequences = [8][26]byte{
	{0, 0, 1, 0, 0, 1, 0, 1, 1, 1, 0, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 1, 0, 1, 1, 1},
	{0, 0, 1, 0, 1, 1, 0, 1, 1, 1, 0, 1, 1, 1, 1, 0, 0, 0, 1, 0, 1, 1, 0, 1, 1, 1},
	{0, 1, 0, 0, 0, 0, 1, 1, 1, 0, 1, 1, 1, 0, 1, 0, 0, 1, 0, 0, 0, 0, 1, 1, 1, 0},
	{0, 1, 0, 0, 0, 1, 1, 1, 1, 0, 1, 1, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 1, 1, 1, 0},
	{0, 0, 0, 1, 1, 0, 1, 0, 1, 1, 1, 0, 0, 1, 0, 0, 0, 0, 0, 1, 1, 0, 1, 0, 1, 1},
	{0, 1, 0, 0, 1, 1, 1, 0, 1, 0, 1, 1, 0, 0, 0, 0, 0, 1, 0, 0, 1, 1, 1, 0, 1, 0},
	{1, 0, 1, 0, 0, 1, 1, 1, 1, 1, 0, 1, 1, 0, 0, 0, 1, 0, 1, 0, 0, 1, 1, 1, 1, 1},
	{1, 1, 1, 0, 1, 1, 1, 1, 0, 0, 0, 1, 0, 0, 1, 0, 1, 1, 1, 0, 1, 1, 1, 1, 0, 0},
}

// schTraining is the fixed 64-bit synchronisation-burst training
// sequence at the centre of every SCH burst.
var schTraining = [64]byte{
	1, 0, 1, 1, 1, 0, 0, 1, 0, 1, 1, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1,
	0, 0, 1, 0, 1, 1, 0, 1, 0, 1, 0, 0, 0, 1, 0, 1, 0, 1, 1, 1, 0, 1, 1, 0, 0, 0, 0, 1, 1, 0, 1, 1,
}

// dummyBurst is the filler transmitted on the broadcast carrier when
// no channel has data for a slot, so C0 keeps constant RF power.
var dummyBurst = [burstLen]byte{
	0, 0, 0,
	1, 1, 1, 1, 1, 0, 1, 1, 0, 1, 1, 1, 0, 1, 1, 0, 0, 0, 0, 0, 1, 0, 1, 0, 0, 1, 0, 0, 1, 1, 1, 0,
	0, 0, 0, 0, 1, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 0, 0, 0, 1, 1, 1, 0, 0,
	0, 1, 0, 1, 1, 1, 0, 0, 0, 1, 0, 1, 1, 1, 0, 0, 0, 1, 0, 1, 0, 1, 1, 1, 0, 1, 0, 0, 1, 0, 1, 0,
	0, 0, 1, 1, 0, 0, 1, 1, 0, 0, 1, 1, 1, 0, 0, 1, 1, 1, 1, 0, 1, 0, 0, 1, 1, 1, 1, 1, 0, 0, 0, 1,
	0, 0, 1, 0, 1, 1, 1, 1, 1, 0, 1, 0, 1, 0,
	0, 0, 0,
}

// composeNormalBurst lays out a 148-symbol normal burst: 3 tail, 58
// payload, 26 training (by tsc), 58 payload, 3 tail.
func composeNormalBurst(lowHalf, highHalf []byte, tsc uint8) []byte {
	burst := make([]byte, burstLen)
	copy(burst[3:61], lowHalf)
	copy(burst[61:87], trainingSequences[tsc%8][:])
	copy(burst[87:145], highHalf)
	return burst
}

// An IDLE slot produces nothing; on C0 the dispatcher substitutes the
// dummy burst.
func dlProduceIdle(s *Scheduler, trxIdx, tn int, fn FN, chan_ ChanType, bid int) ([]byte, bool) {
	return nil, false
}

// The frequency-correction burst is all zeros (a pure tone after
// modulation).
func dlProduceFCCH(s *Scheduler, trxIdx, tn int, fn FN, chan_ ChanType, bid int) ([]byte, bool) {
	return make([]byte, burstLen), true
}

func dlProduceSCH(s *Scheduler, trxIdx, tn int, fn FN, chan_ ChanType, bid int) ([]byte, bool) {
	trx := s.trxAt(trxIdx)
	if trx == nil || s.codecs.SCH == nil {
		return nil, false
	}

	// Create SB info from GSM time and BSIC.
	t := fn.Decompose()
	bsic := trx.Config.BSIC
	var sbInfo [4]byte
	sbInfo[0] = ((bsic & 0x3f) << 2) |
		byte((t.T1&0x600)>>9)
	sbInfo[1] = byte((t.T1 & 0x1fe) >> 1)
	sbInfo[2] = byte((t.T1&0x001)<<7) |
		byte((t.T2&0x1f)<<2) |
		byte((t.T3p&0x6)>>1)
	// NOTE: overwrites the previous assignment with only the low bit
	// of T3'.  Kept bit-exact until reference vectors say otherwise.
	sbInfo[2] = byte(t.T3p & 0x1)

	encoded := s.codecs.SCH.Encode(sbInfo[:])
	if len(encoded) < 78 {
		return nil, false
	}

	burst := make([]byte, burstLen)
	copy(burst[3:42], encoded[:39])
	copy(burst[42:106], schTraining[:])
	copy(burst[106:145], encoded[39:78])
	return burst, true
}

func rtsXCCH(s *Scheduler, trxIdx, tn int, fn FN, chan_ ChanType) {
	desc := descriptorFor(chan_)
	if desc == nil || s.upper == nil {
		return
	}
	s.upper.PHRTSInd(desc.ChanNr|byte(tn), desc.LinkID, fn)
}

// rtsTCH notifies the upper layer twice for a traffic slot: once for
// the TCH itself and once for a possible FACCH stealing the block.
func rtsTCH(s *Scheduler, trxIdx, tn int, fn FN, chan_ ChanType) {
	desc := descriptorFor(chan_)
	if desc == nil || s.upper == nil {
		return
	}
	chanNr := desc.ChanNr | byte(tn)
	s.upper.TCHRTSInd(chanNr, fn)
	// NOTE: the channel number of the second indication is overwritten
	// with the link id and the link id field is never filled in.  Kept
	// as-is; upper layers compensating for this exist in the field.
	s.upper.PHRTSInd(desc.LinkID, 0, fn)
}

func dlProduceXCCH(s *Scheduler, trxIdx, tn int, fn FN, chan_ ChanType, bid int) ([]byte, bool) {
	trx := s.trxAt(trxIdx)
	if trx == nil {
		return nil, false
	}
	ts := trx.ts[tn]
	cs := ts.chanState(chan_)
	desc := descriptorFor(chan_)

	if bid > 0 {
		// Send the next burst only if a block was already encoded.
		if cs.dlBursts == nil {
			return nil, false
		}
		return sendStoredBurst(cs, bid, trx.Config.TSC)
	}

	prim := ts.dequeuePrim(tn, fn, chan_, s.log)
	if prim == nil || len(prim.L2) != 23 {
		if prim != nil {
			s.log.fatalf("tn=%d fn=%d chan=%s: prim not 23 bytes (len=%d)", tn, fn, chan_, len(prim.L2))
		}
		if desc != nil && chan_.IsSACCH() {
			cs.sacchLost++
			if cs.sacchLost > 1 && s.upper != nil {
				s.upper.PHDataInd(desc.ChanNr|byte(tn), desc.LinkID, fn, nil)
			}
		}
		cs.dlBursts = nil
		return nil, false
	}

	if chan_.IsSACCH() {
		cs.sacchLost = 0
	}

	buf := cs.ensureDLBuffer(xcchBufLen)
	if s.codecs.XCCH != nil {
		if hard, err := s.codecs.XCCH.Encode(prim.L2); err == nil {
			copy(buf, hard)
		}
	}
	return sendStoredBurst(cs, 0, trx.Config.TSC)
}

// sendStoredBurst composes burst bid out of the channel's encoded
// interleaver buffer.
func sendStoredBurst(cs *chanState, bid int, tsc uint8) ([]byte, bool) {
	if bid < 0 || bid > 3 {
		return nil, false
	}
	off := bid * 116
	if off+116 > len(cs.dlBursts) {
		return nil, false
	}
	return composeNormalBurst(cs.dlBursts[off:off+58], cs.dlBursts[off+58:off+116], tsc), true
}

func dlProducePDTCH(s *Scheduler, trxIdx, tn int, fn FN, chan_ ChanType, bid int) ([]byte, bool) {
	trx := s.trxAt(trxIdx)
	if trx == nil {
		return nil, false
	}
	ts := trx.ts[tn]
	cs := ts.chanState(chan_)

	if bid > 0 {
		if cs.dlBursts == nil {
			return nil, false
		}
		return sendStoredBurst(cs, bid, trx.Config.TSC)
	}

	prim := ts.dequeuePrim(tn, fn, chan_, s.log)
	if prim == nil {
		cs.dlBursts = nil
		return nil, false
	}

	buf := cs.ensureDLBuffer(xcchBufLen)
	if s.codecs.PDTCH == nil {
		cs.dlBursts = nil
		return nil, false
	}
	hard, err := s.codecs.PDTCH.Encode(prim.L2)
	if err != nil {
		s.log.fatalf("tn=%d fn=%d: prim invalid length (len=%d): %v", tn, fn, len(prim.L2), err)
		cs.dlBursts = nil
		return nil, false
	}
	copy(buf, hard)
	return sendStoredBurst(cs, 0, trx.Config.TSC)
}

func dlProduceTCHF(s *Scheduler, trxIdx, tn int, fn FN, chan_ ChanType, bid int) ([]byte, bool) {
	trx := s.trxAt(trxIdx)
	if trx == nil {
		return nil, false
	}
	ts := trx.ts[tn]
	cs := ts.chanState(chan_)

	if bid > 0 {
		if cs.dlBursts == nil {
			return nil, false
		}
		return sendStoredBurst(cs, bid, trx.Config.TSC)
	}

	prim := ts.dequeuePrim(tn, fn, chan_, s.log)
	if prim == nil {
		cs.dlBursts = nil
		return nil, false
	}

	// A TCH primitive carries a 33-byte frame; a data primitive a
	// 23-byte FACCH block stealing this TCH block.
	wantLen := 23
	if prim.Kind == primTCH {
		wantLen = 33
	}
	if len(prim.L2) != wantLen {
		s.log.fatalf("tn=%d fn=%d chan=%s: prim not %d bytes (len=%d)", tn, fn, chan_, wantLen, len(prim.L2))
		cs.dlBursts = nil
		return nil, false
	}

	// Allocate, or shift the buffer by 4 bursts to keep the diagonal
	// interleaver's half-block overlap addressable.
	fresh := cs.dlBursts == nil
	buf := cs.ensureDLBuffer(tchfBufLen)
	if !fresh {
		copy(buf[0:464], buf[464:928])
	}

	if s.codecs.TCHF != nil {
		if hard, err := s.codecs.TCHF.Encode(prim.L2); err == nil {
			copy(buf[464:928], hard)
		}
	}
	return sendStoredBurst(cs, 0, trx.Config.TSC)
}

// TCH/H needs the channel-pair interleaver; until that lands the
// producer behaves like TCH/F so a configured half-rate slot is at
// least served.
// TODO: implement the TCH/H diagonal interleaver over the channel pair.
func dlProduceTCHH(s *Scheduler, trxIdx, tn int, fn FN, chan_ ChanType, bid int) ([]byte, bool) {
	return dlProduceTCHF(s, trxIdx, tn, fn, chan_, bid)
}
