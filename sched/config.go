package sched

import "fmt"

/*-------------------------------------------------------------------
 *
 * Purpose:	Per-TRX configuration and timeslot setup.
 *
 * Description:	One TRXConfig per transceiver carries the operator-
 *		tunable knobs the scheduler reads.  The configuration
 *		front end that populates these lives outside this
 *		package.
 *
 *-------------------------------------------------------------------*/

// ClockAdvance gives the transceiver processing headroom; RTSAdvance
// leads the downlink burst by a further ~20 ms so the upper layer has
// time to answer a ready-to-send.
const (
	DefaultClockAdvance = 10
	DefaultRTSAdvance   = 5
)

// TRXConfig is the set of recognised per-TRX options.
type TRXConfig struct {
	PowerOn      bool
	SlotMask     uint8 // bitmask of enabled TNs, bit i == TN i
	TSC          uint8 // training-sequence code, 0..7
	ClockAdvance uint32
	RTSAdvance   uint32
	BSIC         uint8
}

// DefaultTRXConfig returns a powered-on config with all timeslots
// enabled and the stock advance values.
func DefaultTRXConfig() TRXConfig {
	return TRXConfig{
		PowerOn:      true,
		SlotMask:     0xFF,
		TSC:          0,
		ClockAdvance: DefaultClockAdvance,
		RTSAdvance:   DefaultRTSAdvance,
	}
}

// TRX is one transceiver's worth of timeslot state.
type TRX struct {
	Config TRXConfig
	ts     [NumTimeslots]*tsState
}

func newTRX(cfg TRXConfig) *TRX {
	t := &TRX{Config: cfg}
	for i := range t.ts {
		t.ts[i] = newTSState(i)
	}
	return t
}

// tnEnabled reports whether TN tn is enabled in the slot-mask.
func (t *TRX) tnEnabled(tn int) bool {
	if tn < 0 || tn >= NumTimeslots {
		return false
	}
	return t.Config.SlotMask&(1<<uint(tn)) != 0
}

// SetPCHAN configures TN tn's physical channel. Fails if tn is
// disabled in the slot-mask or pchan has no known multiframe table.
func (t *TRX) SetPCHAN(tn int, pchan PCHAN) error {
	if !t.tnEnabled(tn) {
		return fmt.Errorf("sched: tn %d disabled in slotmask 0x%02x", tn, t.Config.SlotMask)
	}
	mf := MultiframeFor(pchan)
	if mf == nil && pchan != PCHANNone {
		return fmt.Errorf("sched: unsupported pchan %s", pchan)
	}
	ts := t.ts[tn]
	ts.pchan = pchan
	ts.mf = mf
	ts.resetAll()
	return nil
}

// Direction distinguishes downlink from uplink activation targets in
// SetLCHAN.
type Direction int

const (
	DirDL Direction = iota
	DirUL
)

// SetLCHAN activates or deactivates every descriptor row whose
// (chan_nr & 0xF8, link_id) matches (chanNr, linkID). The timeslot is
// taken from the channel number's low bits. The SACCH loss counter is
// cleared on every match so a fresh activation starts clean.
func (t *TRX) SetLCHAN(chanNr, linkID byte, dir Direction, active bool) {
	tn := int(chanNr & 0x07)
	ts := t.ts[tn]
	for c, desc := range descriptors {
		if desc.ChanNr&0xF8 != chanNr&0xF8 || desc.LinkID != linkID {
			continue
		}
		cs := ts.chanState(c)
		switch dir {
		case DirDL:
			cs.dlActive = active
		case DirUL:
			cs.ulActive = active
		}
		cs.sacchLost = 0
	}
}
