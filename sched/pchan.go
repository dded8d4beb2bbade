package sched

// PCHAN is the physical-channel configuration of a timeslot.
type PCHAN int

const (
	PCHANNone PCHAN = iota
	PCHANCCCH
	PCHANCCCHSDCCH4
	PCHANSDCCH8SACCH8C
	PCHANTCHF
	PCHANTCHH
	PCHANPDCH
)

func (p PCHAN) String() string {
	switch p {
	case PCHANNone:
		return "NONE"
	case PCHANCCCH:
		return "CCCH"
	case PCHANCCCHSDCCH4:
		return "CCCH+SDCCH4"
	case PCHANSDCCH8SACCH8C:
		return "SDCCH8+SACCH8C"
	case PCHANTCHF:
		return "TCH/F"
	case PCHANTCHH:
		return "TCH/H"
	case PCHANPDCH:
		return "PDCH"
	default:
		return "UNKNOWN"
	}
}

// Period returns the multiframe length, in frames, of this PCHAN's
// schedule.
func (p PCHAN) Period() int {
	switch p {
	case PCHANCCCH:
		return 51
	case PCHANCCCHSDCCH4:
		return 102
	case PCHANSDCCH8SACCH8C:
		return 102
	case PCHANTCHF, PCHANTCHH, PCHANPDCH:
		return 104
	default:
		return 0
	}
}
