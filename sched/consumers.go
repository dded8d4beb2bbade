package sched

/*-------------------------------------------------------------------
 *
 * Purpose:	Uplink burst consumers.
 *
 * Description:	One consumer per channel family (RACH, generic xCCH
 *		data, PDTCH, TCH/F).  Each accumulates received soft
 *		bits into the channel's de-interleaving buffer, tracks
 *		which bursts of the current block arrived, and hands a
 *		complete (or degraded-but-anchored) block to the codec.
 *		Every block produces exactly one upward indication —
 *		decoded bytes or a bad-frame marker — stamped with the
 *		frame number of the block's first burst.
 *
 *-------------------------------------------------------------------*/

// ulConsumeRACH decodes a single-burst access request. The 36 encoded
// bits follow 8 extended-tail and 41 synchronisation-sequence symbols,
// so they start at symbol 49.
func ulConsumeRACH(s *Scheduler, trxIdx, tn int, fn FN, chan_ ChanType, bid int, softBits []int8, toa float32) {
	trx := s.trxAt(trxIdx)
	if trx == nil || s.codecs.RACH == nil || len(softBits) < burstLen {
		return
	}
	const rachOffset = 49
	const rachLen = 36
	ra, ok := s.codecs.RACH.Decode(trx.Config.BSIC, softBits[rachOffset:rachOffset+rachLen])
	if !ok {
		s.log.errorf("tn=%d fn=%d: received bad rach burst", tn, fn)
		return
	}
	if s.upper != nil {
		// TODO: derive the access delay from toa once the transceiver
		// reports it in quarter-bit units.
		s.upper.PHRachInd(ra, 0, fn)
	}
}

// accumulateBurst copies one burst's two payload halves into the
// block buffer at the burst's position and records its presence.
func accumulateBurst(cs *chanState, buf []int8, bid, base int, softBits []int8) {
	off := base + bid*116
	copy(buf[off:off+58], softBits[3:61])
	copy(buf[off+58:off+116], softBits[87:145])
	cs.ulMask |= 1 << uint(bid)
}

// blockComplete decides at the last burst whether the accumulated
// block may be decoded: a full mask always may, a partial one only if
// the first burst (which anchors the block FN) arrived.
func blockComplete(s *Scheduler, cs *chanState, tn int, chan_ ChanType) bool {
	if cs.ulMask&0xf != 0xf {
		s.log.infof("tn=%d chan=%s: received incomplete block at fn=%d (mask=0x%x)",
			tn, chan_, cs.ulFirstFN, cs.ulMask)
		if cs.ulMask&0x1 == 0 {
			cs.ulMask = 0
			return false
		}
	}
	cs.ulMask = 0
	return true
}

func ulConsumeXCCH(s *Scheduler, trxIdx, tn int, fn FN, chan_ ChanType, bid int, softBits []int8, toa float32) {
	trx := s.trxAt(trxIdx)
	if trx == nil || len(softBits) < burstLen || bid < 0 || bid > 3 {
		return
	}
	ts := trx.ts[tn]
	cs := ts.chanState(chan_)
	desc := descriptorFor(chan_)
	buf := cs.ensureULBuffer(xcchBufLen)

	if bid == 0 {
		for i := range buf {
			buf[i] = 0
		}
		cs.ulMask = 0
		cs.ulFirstFN = fn
	}
	accumulateBurst(cs, buf, bid, 0, softBits)

	if bid != 3 {
		return
	}
	if !blockComplete(s, cs, tn, chan_) {
		return
	}

	var l2 []byte
	err := errNoCodec
	if s.codecs.XCCH != nil {
		l2, err = s.codecs.XCCH.Decode(buf)
	}
	if desc == nil || s.upper == nil {
		return
	}
	if err != nil {
		s.log.errorf("tn=%d fn=%d chan=%s: received bad data block", tn, cs.ulFirstFN, chan_)
		s.upper.PHDataInd(desc.ChanNr|byte(tn), desc.LinkID, cs.ulFirstFN, nil)
		return
	}
	s.upper.PHDataInd(desc.ChanNr|byte(tn), desc.LinkID, cs.ulFirstFN, l2)
}

// ulConsumePDTCH accumulates like xCCH but reports a leading quality
// tag upward: 7 for a valid block, 0 for a bad one.
func ulConsumePDTCH(s *Scheduler, trxIdx, tn int, fn FN, chan_ ChanType, bid int, softBits []int8, toa float32) {
	trx := s.trxAt(trxIdx)
	if trx == nil || len(softBits) < burstLen || bid < 0 || bid > 3 {
		return
	}
	ts := trx.ts[tn]
	cs := ts.chanState(chan_)
	desc := descriptorFor(chan_)
	buf := cs.ensureULBuffer(xcchBufLen)

	if bid == 0 {
		for i := range buf {
			buf[i] = 0
		}
		cs.ulMask = 0
		cs.ulFirstFN = fn
	}
	accumulateBurst(cs, buf, bid, 0, softBits)

	if bid != 3 {
		return
	}
	if !blockComplete(s, cs, tn, chan_) {
		return
	}

	var l2 []byte
	var rc int
	err := errNoCodec
	if s.codecs.PDTCH != nil {
		l2, rc, err = s.codecs.PDTCH.Decode(buf)
	}
	if desc == nil || s.upper == nil {
		return
	}
	if err != nil {
		s.log.errorf("tn=%d fn=%d chan=%s: received bad packet block", tn, cs.ulFirstFN, chan_)
		s.upper.PHDataInd(desc.ChanNr|byte(tn), desc.LinkID, cs.ulFirstFN, []byte{0})
		return
	}
	payload := append([]byte{7}, l2[:rc]...)
	s.upper.PHDataInd(desc.ChanNr|byte(tn), desc.LinkID, cs.ulFirstFN, payload)
}

// ulConsumeTCHF accumulates into the high half of the 8-burst rolling
// buffer, decodes against the full window at the block's last burst,
// then shifts the high half down so the next block overlaps it.
func ulConsumeTCHF(s *Scheduler, trxIdx, tn int, fn FN, chan_ ChanType, bid int, softBits []int8, toa float32) {
	trx := s.trxAt(trxIdx)
	if trx == nil || len(softBits) < burstLen || bid < 0 || bid > 3 {
		return
	}
	ts := trx.ts[tn]
	cs := ts.chanState(chan_)
	desc := descriptorFor(chan_)
	buf := cs.ensureULBuffer(tchfBufLen)

	if bid == 0 {
		cs.ulMask = 0
		cs.ulFirstFN = fn
	}
	accumulateBurst(cs, buf, bid, 464, softBits)

	if bid != 3 {
		return
	}
	if !blockComplete(s, cs, tn, chan_) {
		return
	}

	var payload []byte
	var rc int
	err := errNoCodec
	if s.codecs.TCHF != nil {
		payload, rc, err = s.codecs.TCHF.Decode(buf)
	}
	copy(buf[0:464], buf[464:928])

	if desc == nil || s.upper == nil {
		return
	}
	if err != nil || rc < 0 {
		// Bad frame: the upper layer still sees the block tick, as a
		// zero-length traffic indication.
		s.log.errorf("tn=%d fn=%d chan=%s: received bad traffic block", tn, cs.ulFirstFN, chan_)
		s.upper.TCHInd(desc.ChanNr|byte(tn), cs.ulFirstFN, nil)
		return
	}
	if rc == 23 {
		// A stolen FACCH block rides up the signalling path.
		s.upper.PHDataInd(desc.ChanNr|byte(tn), desc.LinkID, cs.ulFirstFN, payload[:23])
		return
	}
	s.upper.TCHInd(desc.ChanNr|byte(tn), cs.ulFirstFN, payload[:rc])
}
