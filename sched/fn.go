package sched

/*-------------------------------------------------------------------
 *
 * Purpose:	Frame number / hyperframe arithmetic.
 *
 * Description:	Every frame computation in this package wraps modulo
 *		the hyperframe, including deltas that are conceptually
 *		negative.  Keeping the wrapping in one place avoids the
 *		classic off-by-hyperframe mistakes at the 2715647 -> 0
 *		boundary.
 *
 *-------------------------------------------------------------------*/

// Hyperframe is the GSM hyperframe length: 26 * 51 * 2048.
const Hyperframe = 2715648

// NumTimeslots is the number of TDMA timeslots per radio frame.
const NumTimeslots = 8

// FN is a frame number, always kept in [0, Hyperframe).
type FN uint32

// NormFN reduces an arbitrary (possibly huge or conceptually negative,
// expressed as int64) frame count into the valid FN range.
func NormFN(n int64) FN {
	m := n % Hyperframe
	if m < 0 {
		m += Hyperframe
	}
	return FN(m)
}

// Add returns fn + delta, wrapped modulo the hyperframe. delta may be
// negative.
func (fn FN) Add(delta int64) FN {
	return NormFN(int64(fn) + delta)
}

// Since returns (fn - other) mod Hyperframe, i.e. how far fn is ahead
// of other when walking forward around the cycle. Always >= 0.
func (fn FN) Since(other FN) int64 {
	d := int64(fn) - int64(other)
	if d < 0 {
		d += Hyperframe
	}
	return d
}

// SignedDelta returns the signed difference (fn - other), wrapped into
// (-Hyperframe/2, Hyperframe/2], so a small step backwards reads as a
// small negative number rather than a huge positive one. The clock
// engine's re-lock hysteresis depends on this.
func (fn FN) SignedDelta(other FN) int64 {
	d := fn.Since(other)
	if d > Hyperframe/2 {
		d -= Hyperframe
	}
	return d
}

// GSMTime is the (T1, T2, T3) decomposition of an FN used by the
// synchronisation burst.
type GSMTime struct {
	T1  uint32 // 0..2047, superframe number within hyperframe
	T2  uint32 // 0..25
	T3  uint32 // 0..50
	T3p uint32 // 0..4, (T3-1)/10
}

// Decompose splits fn into its GSM time components.
func (fn FN) Decompose() GSMTime {
	n := uint32(fn)
	t1 := n / (26 * 51)
	t2 := n % 26
	t3 := n % 51
	// (T3-1)/10 with truncation toward zero, so T3 == 0 yields 0
	// rather than wrapping.
	t3p := uint32(int32(t3-1) / 10)
	return GSMTime{T1: t1, T2: t2, T3: t3, T3p: t3p}
}
