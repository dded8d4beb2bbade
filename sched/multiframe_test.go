package sched

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestMultiframe_CCCH(t *testing.T) {
	mf := MultiframeFor(PCHANCCCH)
	require.NotNil(t, mf)

	row := mf.Lookup(0)
	assert.Equal(t, ChanFCCH, row.DLChan)
	assert.Equal(t, 0, row.DLBid)
	assert.Equal(t, ChanRACH, row.ULChan)

	row = mf.Lookup(1)
	assert.Equal(t, ChanSCH, row.DLChan)
	assert.Equal(t, ChanRACH, row.ULChan)

	row = mf.Lookup(2)
	assert.Equal(t, ChanBCCH, row.DLChan)
	assert.Equal(t, ChanRACH, row.ULChan)

	row = mf.Lookup(50)
	assert.Equal(t, ChanIdle, row.DLChan)
	assert.Equal(t, ChanRACH, row.ULChan)
}

func TestMultiframe_CCCHSDCCH4(t *testing.T) {
	mf := MultiframeFor(PCHANCCCHSDCCH4)
	require.NotNil(t, mf)

	row := mf.Lookup(0)
	assert.Equal(t, ChanSDCCH4_3, row.ULChan)
	assert.Equal(t, 0, row.ULBid)

	row = mf.Lookup(3)
	assert.Equal(t, ChanSDCCH4_3, row.ULChan)
	assert.Equal(t, 3, row.ULBid)

	row = mf.Lookup(37)
	assert.Equal(t, ChanSDCCH4_3, row.DLChan)
	assert.Equal(t, 1, row.DLBid)
	assert.Equal(t, ChanSDCCH4_0, row.ULChan)
	assert.Equal(t, 0, row.ULBid)
}

func TestMultiframe_TCHF(t *testing.T) {
	mf := MultiframeFor(PCHANTCHF)
	require.NotNil(t, mf)

	row := mf.Lookup(12)
	assert.Equal(t, ChanSACCHTF, row.DLChan)
	assert.Equal(t, 0, row.DLBid)
	assert.Equal(t, ChanSACCHTF, row.ULChan)

	row = mf.Lookup(25)
	assert.Equal(t, ChanIdle, row.DLChan)
	assert.Equal(t, ChanIdle, row.ULChan)

	row = mf.Lookup(13)
	assert.Equal(t, ChanTCHF, row.DLChan)
	assert.Equal(t, 0, row.DLBid)
	assert.Equal(t, ChanTCHF, row.ULChan)
}

// The data burst-id restarts after every SACCH and IDLE frame, so a
// 4-burst block never straddles a stolen frame.
func TestMultiframe_TCHF_BidResetsAfterStolenFrames(t *testing.T) {
	mf := MultiframeFor(PCHANTCHF)
	require.NotNil(t, mf)

	for fn := 0; fn < 104; fn++ {
		row := mf.Lookup(FN(fn))
		if row.DLChan != ChanTCHF {
			continue
		}
		next := mf.Lookup(FN(fn + 1))
		if row.DLBid < 3 {
			require.Equal(t, ChanTCHF, next.DLChan, "fn %d", fn)
			assert.Equal(t, row.DLBid+1, next.DLBid, "fn %d", fn)
		} else if next.DLChan == ChanTCHF {
			assert.Equal(t, 0, next.DLBid, "fn %d", fn)
		}
	}
}

func TestMultiframe_TCHF_SACCHBidCycles(t *testing.T) {
	mf := MultiframeFor(PCHANTCHF)
	require.NotNil(t, mf)
	for i, pos := range []int{12, 38, 64, 90} {
		row := mf.Lookup(FN(pos))
		assert.Equal(t, ChanSACCHTF, row.DLChan, "position %d", pos)
		assert.Equal(t, i, row.DLBid, "position %d", pos)
	}
}

func TestMultiframe_TCHH_SACCHPositions(t *testing.T) {
	mf := MultiframeFor(PCHANTCHH)
	require.NotNil(t, mf)
	for _, pos := range []int{12, 25, 38, 51, 64, 77, 90, 103} {
		row := mf.Lookup(FN(pos))
		assert.Truef(t, row.DLChan == ChanSACCHTH0 || row.DLChan == ChanSACCHTH1,
			"position %d should carry a SACCH/TH burst, got %s", pos, row.DLChan)
	}
}

// The sub-channel alternation and its 0,1 burst-id cycle both restart
// after each SACCH frame.
func TestMultiframe_TCHH_DataPattern(t *testing.T) {
	mf := MultiframeFor(PCHANTCHH)
	require.NotNil(t, mf)

	expect := []struct {
		fn  int
		ch  ChanType
		bid int
	}{
		{0, ChanTCHH0, 0}, {1, ChanTCHH1, 0}, {2, ChanTCHH0, 1}, {3, ChanTCHH1, 1},
		{4, ChanTCHH0, 0}, {5, ChanTCHH1, 0},
		{13, ChanTCHH0, 0}, {14, ChanTCHH1, 0}, {15, ChanTCHH0, 1},
		{26, ChanTCHH0, 0},
	}
	for _, e := range expect {
		row := mf.Lookup(FN(e.fn))
		assert.Equal(t, e.ch, row.DLChan, "fn %d", e.fn)
		assert.Equal(t, e.bid, row.DLBid, "fn %d", e.fn)
	}
}

func TestMultiframe_PDCH_PTCCHAndIdlePositions(t *testing.T) {
	mf := MultiframeFor(PCHANPDCH)
	require.NotNil(t, mf)
	for i, pos := range []int{12, 38, 64, 90} {
		row := mf.Lookup(FN(pos))
		assert.Equal(t, ChanPTCCH, row.DLChan, "position %d", pos)
		assert.Equal(t, i, row.DLBid, "position %d", pos)
	}
	for _, pos := range []int{25, 51, 77, 103} {
		row := mf.Lookup(FN(pos))
		assert.Equal(t, ChanIdle, row.DLChan, "position %d", pos)
	}

	// Data burst-ids restart after every PTCCH/IDLE frame.
	row := mf.Lookup(13)
	assert.Equal(t, ChanPDTCH, row.DLChan)
	assert.Equal(t, 0, row.DLBid)
	row = mf.Lookup(26)
	assert.Equal(t, ChanPDTCH, row.DLChan)
	assert.Equal(t, 0, row.DLBid)
}

// Every supported configuration yields a well-formed row for every
// frame number.
func TestMultiframe_Totality(t *testing.T) {
	pchans := []PCHAN{PCHANCCCH, PCHANCCCHSDCCH4, PCHANSDCCH8SACCH8C, PCHANTCHF, PCHANTCHH, PCHANPDCH}
	rapid.Check(t, func(t *rapid.T) {
		p := pchans[rapid.IntRange(0, len(pchans)-1).Draw(t, "pchan_idx")]
		mf := MultiframeFor(p)
		require.NotNil(t, mf)
		fn := FN(rapid.Int64Range(0, Hyperframe-1).Draw(t, "fn"))
		row := mf.Lookup(fn)
		assert.NotEqual(t, ChanNone, row.DLChan)
		assert.NotEqual(t, ChanNone, row.ULChan)
	})
}

func TestMultiframe_Periodicity(t *testing.T) {
	pchans := []PCHAN{PCHANCCCH, PCHANCCCHSDCCH4, PCHANSDCCH8SACCH8C, PCHANTCHF, PCHANTCHH, PCHANPDCH}
	for _, p := range pchans {
		mf := MultiframeFor(p)
		require.NotNil(t, mf)
		rapid.Check(t, func(t *rapid.T) {
			fn := FN(rapid.Int64Range(0, Hyperframe-1).Draw(t, "fn"))
			a := mf.Lookup(fn)
			b := mf.Lookup(fn.Add(int64(mf.Period)))
			assert.Equal(t, a, b)
		})
	}
}
