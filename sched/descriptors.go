package sched

/*-------------------------------------------------------------------
 *
 * Purpose:	Channel descriptor table.
 *
 * Description:	One row per logical channel type: its channel-number
 *		tag, link-id tag, display name, and nullable RTS/DL/UL
 *		hooks.  Broadcast-side channels carry auto_active and
 *		bypass the per-channel activation flags.
 *
 *		A missing RTS hook means no ready-to-send notification
 *		is ever emitted for the channel; a missing DL hook
 *		means nothing is transmitted even when scheduled; a
 *		missing UL hook means uplink bursts are ignored.
 *
 *-------------------------------------------------------------------*/

// rtsFunc notifies the upper layer that a DL primitive is wanted for
// (trxIdx, tn, fn, chan).
type rtsFunc func(s *Scheduler, trxIdx, tn int, fn FN, chan_ ChanType)

// dlProducerFunc assembles the outbound burst bits for (trxIdx, tn,
// fn, chan, bid), or returns ok=false for "no bits".
type dlProducerFunc func(s *Scheduler, trxIdx, tn int, fn FN, chan_ ChanType, bid int) (bits []byte, ok bool)

// ulConsumerFunc processes a received burst for (trxIdx, tn, fn, chan,
// bid).
type ulConsumerFunc func(s *Scheduler, trxIdx, tn int, fn FN, chan_ ChanType, bid int, softBits []int8, toa float32)

// chanDescriptor is one row of the channel descriptor table.
type chanDescriptor struct {
	ChanNr     byte
	LinkID     byte
	Name       string
	RTS        rtsFunc
	DLProducer dlProducerFunc
	ULConsumer ulConsumerFunc
	AutoActive bool
}

const (
	liMain  = 0x00
	liSACCH = 0x40
)

// descriptors is keyed by ChanType; populated in init() because the
// producer/consumer functions reference *Scheduler and a package-level
// composite literal would create an initialization cycle.
var descriptors map[ChanType]*chanDescriptor

func init() {
	descriptors = map[ChanType]*chanDescriptor{
		ChanIdle: {ChanNr: 0x00, LinkID: liMain, Name: "IDLE", DLProducer: dlProduceIdle, AutoActive: true},
		ChanFCCH: {ChanNr: 0x00, LinkID: liMain, Name: "FCCH", DLProducer: dlProduceFCCH, AutoActive: true},
		ChanSCH:  {ChanNr: 0x00, LinkID: liMain, Name: "SCH", DLProducer: dlProduceSCH, AutoActive: true},
		ChanBCCH: {ChanNr: 0x80, LinkID: liMain, Name: "BCCH", RTS: rtsXCCH, DLProducer: dlProduceXCCH, AutoActive: true},
		ChanRACH: {ChanNr: 0x88, LinkID: liMain, Name: "RACH", ULConsumer: ulConsumeRACH, AutoActive: true},
		ChanCCCH: {ChanNr: 0x90, LinkID: liMain, Name: "CCCH", RTS: rtsXCCH, DLProducer: dlProduceXCCH, AutoActive: true},

		ChanTCHF:  {ChanNr: 0x08, LinkID: liMain, Name: "TCH/F", RTS: rtsTCH, DLProducer: dlProduceTCHF, ULConsumer: ulConsumeTCHF},
		ChanTCHH0: {ChanNr: 0x10, LinkID: liMain, Name: "TCH/H(0)", RTS: rtsTCH, DLProducer: dlProduceTCHH, ULConsumer: ulConsumeTCHF},
		ChanTCHH1: {ChanNr: 0x18, LinkID: liMain, Name: "TCH/H(1)", RTS: rtsTCH, DLProducer: dlProduceTCHH, ULConsumer: ulConsumeTCHF},

		ChanSDCCH4_0: {ChanNr: 0x20, LinkID: liMain, Name: "SDCCH/4(0)", RTS: rtsXCCH, DLProducer: dlProduceXCCH, ULConsumer: ulConsumeXCCH},
		ChanSDCCH4_1: {ChanNr: 0x28, LinkID: liMain, Name: "SDCCH/4(1)", RTS: rtsXCCH, DLProducer: dlProduceXCCH, ULConsumer: ulConsumeXCCH},
		ChanSDCCH4_2: {ChanNr: 0x30, LinkID: liMain, Name: "SDCCH/4(2)", RTS: rtsXCCH, DLProducer: dlProduceXCCH, ULConsumer: ulConsumeXCCH},
		ChanSDCCH4_3: {ChanNr: 0x38, LinkID: liMain, Name: "SDCCH/4(3)", RTS: rtsXCCH, DLProducer: dlProduceXCCH, ULConsumer: ulConsumeXCCH},

		ChanSDCCH8_0: {ChanNr: 0x40, LinkID: liMain, Name: "SDCCH/8(0)", RTS: rtsXCCH, DLProducer: dlProduceXCCH, ULConsumer: ulConsumeXCCH},
		ChanSDCCH8_1: {ChanNr: 0x48, LinkID: liMain, Name: "SDCCH/8(1)", RTS: rtsXCCH, DLProducer: dlProduceXCCH, ULConsumer: ulConsumeXCCH},
		ChanSDCCH8_2: {ChanNr: 0x50, LinkID: liMain, Name: "SDCCH/8(2)", RTS: rtsXCCH, DLProducer: dlProduceXCCH, ULConsumer: ulConsumeXCCH},
		ChanSDCCH8_3: {ChanNr: 0x58, LinkID: liMain, Name: "SDCCH/8(3)", RTS: rtsXCCH, DLProducer: dlProduceXCCH, ULConsumer: ulConsumeXCCH},
		ChanSDCCH8_4: {ChanNr: 0x60, LinkID: liMain, Name: "SDCCH/8(4)", RTS: rtsXCCH, DLProducer: dlProduceXCCH, ULConsumer: ulConsumeXCCH},
		ChanSDCCH8_5: {ChanNr: 0x68, LinkID: liMain, Name: "SDCCH/8(5)", RTS: rtsXCCH, DLProducer: dlProduceXCCH, ULConsumer: ulConsumeXCCH},
		ChanSDCCH8_6: {ChanNr: 0x70, LinkID: liMain, Name: "SDCCH/8(6)", RTS: rtsXCCH, DLProducer: dlProduceXCCH, ULConsumer: ulConsumeXCCH},
		ChanSDCCH8_7: {ChanNr: 0x78, LinkID: liMain, Name: "SDCCH/8(7)", RTS: rtsXCCH, DLProducer: dlProduceXCCH, ULConsumer: ulConsumeXCCH},

		ChanSACCHTF:  {ChanNr: 0x08, LinkID: liSACCH, Name: "SACCH/TF", RTS: rtsXCCH, DLProducer: dlProduceXCCH, ULConsumer: ulConsumeXCCH},
		ChanSACCHTH0: {ChanNr: 0x10, LinkID: liSACCH, Name: "SACCH/TH(0)", RTS: rtsXCCH, DLProducer: dlProduceXCCH, ULConsumer: ulConsumeXCCH},
		ChanSACCHTH1: {ChanNr: 0x18, LinkID: liSACCH, Name: "SACCH/TH(1)", RTS: rtsXCCH, DLProducer: dlProduceXCCH, ULConsumer: ulConsumeXCCH},

		ChanSACCH4_0: {ChanNr: 0x20, LinkID: liSACCH, Name: "SACCH/4(0)", RTS: rtsXCCH, DLProducer: dlProduceXCCH, ULConsumer: ulConsumeXCCH},
		ChanSACCH4_1: {ChanNr: 0x28, LinkID: liSACCH, Name: "SACCH/4(1)", RTS: rtsXCCH, DLProducer: dlProduceXCCH, ULConsumer: ulConsumeXCCH},
		ChanSACCH4_2: {ChanNr: 0x30, LinkID: liSACCH, Name: "SACCH/4(2)", RTS: rtsXCCH, DLProducer: dlProduceXCCH, ULConsumer: ulConsumeXCCH},
		ChanSACCH4_3: {ChanNr: 0x38, LinkID: liSACCH, Name: "SACCH/4(3)", RTS: rtsXCCH, DLProducer: dlProduceXCCH, ULConsumer: ulConsumeXCCH},

		ChanSACCH8_0: {ChanNr: 0x40, LinkID: liSACCH, Name: "SACCH/8(0)", RTS: rtsXCCH, DLProducer: dlProduceXCCH, ULConsumer: ulConsumeXCCH},
		ChanSACCH8_1: {ChanNr: 0x48, LinkID: liSACCH, Name: "SACCH/8(1)", RTS: rtsXCCH, DLProducer: dlProduceXCCH, ULConsumer: ulConsumeXCCH},
		ChanSACCH8_2: {ChanNr: 0x50, LinkID: liSACCH, Name: "SACCH/8(2)", RTS: rtsXCCH, DLProducer: dlProduceXCCH, ULConsumer: ulConsumeXCCH},
		ChanSACCH8_3: {ChanNr: 0x58, LinkID: liSACCH, Name: "SACCH/8(3)", RTS: rtsXCCH, DLProducer: dlProduceXCCH, ULConsumer: ulConsumeXCCH},
		ChanSACCH8_4: {ChanNr: 0x60, LinkID: liSACCH, Name: "SACCH/8(4)", RTS: rtsXCCH, DLProducer: dlProduceXCCH, ULConsumer: ulConsumeXCCH},
		ChanSACCH8_5: {ChanNr: 0x68, LinkID: liSACCH, Name: "SACCH/8(5)", RTS: rtsXCCH, DLProducer: dlProduceXCCH, ULConsumer: ulConsumeXCCH},
		ChanSACCH8_6: {ChanNr: 0x70, LinkID: liSACCH, Name: "SACCH/8(6)", RTS: rtsXCCH, DLProducer: dlProduceXCCH, ULConsumer: ulConsumeXCCH},
		// NOTE: 0x68 duplicates SACCH/8(5); 0x78 would match the
		// SDCCH/8(7) row.  Kept bit-exact pending field confirmation.
		ChanSACCH8_7: {ChanNr: 0x68, LinkID: liSACCH, Name: "SACCH/8(7)", RTS: rtsXCCH, DLProducer: dlProduceXCCH, ULConsumer: ulConsumeXCCH},

		ChanPDTCH: {ChanNr: 0x08, LinkID: liMain, Name: "PDTCH", RTS: rtsXCCH, DLProducer: dlProducePDTCH, ULConsumer: ulConsumePDTCH},
		ChanPTCCH: {ChanNr: 0x08, LinkID: liMain, Name: "PTCCH", RTS: rtsXCCH, DLProducer: dlProducePDTCH, ULConsumer: ulConsumePDTCH},
	}
}

// descriptorFor returns the descriptor row for c, or nil if c has no
// row (ChanNone).
func descriptorFor(c ChanType) *chanDescriptor {
	return descriptors[c]
}
