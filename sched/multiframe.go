package sched

/*-------------------------------------------------------------------
 *
 * Purpose:	Multiframe schedule tables and lookup.
 *
 * Description:	One static table per physical channel configuration
 *		mapping frame-number-mod-period to the logical channel
 *		and burst id scheduled in each direction.  The common
 *		control configurations have no closed form and are
 *		written out row by row; the traffic and packet tables
 *		follow a 13-frame pattern and are generated once at
 *		package init.  Lookup is a plain array index either
 *		way.
 *
 *-------------------------------------------------------------------*/

// mfEntry is one row of a multiframe schedule.
type mfEntry struct {
	DLChan ChanType
	DLBid  int
	ULChan ChanType
	ULBid  int
}

// Multiframe holds the resolved (period, table) pair for a PCHAN.
type Multiframe struct {
	PCHAN  PCHAN
	Period int
	frames []mfEntry
}

// Lookup returns the schedule row for fn, reduced mod the table's
// period.
func (m *Multiframe) Lookup(fn FN) mfEntry {
	idx := int(fn) % m.Period
	return m.frames[idx]
}

var multiframeTables = map[PCHAN]*Multiframe{
	PCHANCCCH:          {PCHAN: PCHANCCCH, Period: 51, frames: tableCCCH[:]},
	PCHANCCCHSDCCH4:    {PCHAN: PCHANCCCHSDCCH4, Period: 102, frames: tableCCCHSDCCH4[:]},
	PCHANSDCCH8SACCH8C: {PCHAN: PCHANSDCCH8SACCH8C, Period: 102, frames: tableSDCCH8SACCH8C[:]},
	PCHANTCHF:          {PCHAN: PCHANTCHF, Period: 104, frames: tableTCHF[:]},
	PCHANTCHH:          {PCHAN: PCHANTCHH, Period: 104, frames: tableTCHH[:]},
	PCHANPDCH:          {PCHAN: PCHANPDCH, Period: 104, frames: tablePDCH[:]},
}

// MultiframeFor returns the static multiframe table for p, or nil if
// p is PCHANNone or otherwise unsupported.
func MultiframeFor(p PCHAN) *Multiframe {
	return multiframeTables[p]
}

// buildTCHF generates the 104-entry TCH/F table: every 13th entry is
// SACCH/TF with the burst id cycling 0..3 across the four 26-frame
// multiframes, every 26th entry is IDLE.
func buildTCHF() [104]mfEntry {
	var t [104]mfEntry
	sacchCycle := 0
	// The data burst-id restarts at 0 after every SACCH or IDLE
	// frame, so each 4-burst block sits in consecutive data frames.
	bid := 0
	for i := 0; i < 104; i++ {
		switch {
		case i%26 == 25:
			t[i] = mfEntry{ChanIdle, 0, ChanIdle, 0}
			bid = 0
		case i%13 == 12:
			sbid := sacchCycle % 4
			sacchCycle++
			t[i] = mfEntry{ChanSACCHTF, sbid, ChanSACCHTF, sbid}
			bid = 0
		default:
			t[i] = mfEntry{ChanTCHF, bid, ChanTCHF, bid}
			bid = (bid + 1) % 4
		}
	}
	return t
}

// buildTCHH generates the 104-entry table for the half-rate channel
// pair: positions 12, 25, 38, 51, 64, 77, 90 and 103 alternate
// SACCH/TH(0) and SACCH/TH(1) across consecutive multiframes. Each
// sub-channel gets a burst every other frame otherwise.
func buildTCHH() [104]mfEntry {
	var t [104]mfEntry
	sacchPositions := map[int]bool{12: true, 25: true, 38: true, 51: true, 64: true, 77: true, 90: true, 103: true}
	sacchToggle := 0
	// Data frames between SACCH positions run TCH/H(0), TCH/H(1),
	// TCH/H(0), ... with each sub-channel's burst-id cycling 0,1;
	// both the alternation and the burst-ids restart after every
	// SACCH frame.
	n := 0
	for i := 0; i < 104; i++ {
		if sacchPositions[i] {
			var ch ChanType
			if sacchToggle%2 == 0 {
				ch = ChanSACCHTH0
			} else {
				ch = ChanSACCHTH1
			}
			bid := (sacchToggle / 2) % 4
			t[i] = mfEntry{ch, bid, ch, bid}
			sacchToggle++
			n = 0
			continue
		}
		ch := ChanTCHH0
		if n%2 == 1 {
			ch = ChanTCHH1
		}
		bid := (n / 2) % 2
		t[i] = mfEntry{ch, bid, ch, bid}
		n++
	}
	return t
}

// buildPDCH generates the 104-entry packet-data table: positions 12,
// 38, 64 and 90 carry PTCCH, 25, 51, 77 and 103 are IDLE.
func buildPDCH() [104]mfEntry {
	var t [104]mfEntry
	ptcch := map[int]bool{12: true, 38: true, 64: true, 90: true}
	idle := map[int]bool{25: true, 51: true, 77: true, 103: true}
	// As with TCH/F, the data burst-id restarts after every PTCCH or
	// IDLE frame; the PTCCH burst-id itself cycles 0..3 across the
	// four PTCCH frames of the multiframe.
	bid := 0
	ptcchCycle := 0
	for i := 0; i < 104; i++ {
		switch {
		case ptcch[i]:
			t[i] = mfEntry{ChanPTCCH, ptcchCycle, ChanPTCCH, ptcchCycle}
			ptcchCycle++
			bid = 0
		case idle[i]:
			t[i] = mfEntry{ChanIdle, 0, ChanIdle, 0}
			bid = 0
		default:
			t[i] = mfEntry{ChanPDTCH, bid, ChanPDTCH, bid}
			bid = (bid + 1) % 4
		}
	}
	return t
}

var (
	tableTCHF = buildTCHF()
	tableTCHH = buildTCHH()
	tablePDCH = buildPDCH()
)
