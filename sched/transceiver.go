package sched

/*-------------------------------------------------------------------
 *
 * Purpose:	Transceiver boundary.
 *
 * Description:	The wire transport to the radio lives outside this
 *		package; the core only depends on these interfaces.
 *		internal/simtrx provides a fake for tests and bench
 *		setups.
 *
 *-------------------------------------------------------------------*/

// Transceiver is the outbound half of the transceiver boundary: burst
// data and control messages the scheduler sends down.
type Transceiver interface {
	// TxData sends one outbound burst. gain 0 means full power, 128
	// an attenuated filler burst.
	TxData(trxIdx, tn int, fn FN, gain uint8, bits []byte)
	// Provision (re)establishes the transceiver link after a loss.
	Provision() error
	// Flush discards all in-flight outbound state for trxIdx.
	Flush(trxIdx int)
}

// ClockSource is the inbound half: clock samples and received bursts
// arriving from the transceiver's event loop. The scheduler registers
// itself as the ClockSource's consumer; it does not poll.
type ClockSource interface {
	// OnClock delivers a clock(fn) control message.
	OnClock(fn FN)
	// OnRxBurst delivers a received rx_burst data message.
	OnRxBurst(trxIdx, tn int, fn FN, softBits []int8, rssi float32, toa float32)
}
