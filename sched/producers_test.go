package sched

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXCCH_EncodesBlockAndEmitsFourBursts(t *testing.T) {
	s, _, _ := newTestSched()
	trx := s.trxAt(0)
	ts := trx.ts[0]

	l2 := make([]byte, 23)
	for i := range l2 {
		l2[i] = byte(i + 1)
	}
	ts.enqueue(&dlPrimitive{Kind: primPHData, ChanNr: 0x20, FN: 100, L2: l2})

	for bid := 0; bid < 4; bid++ {
		bits, ok := dlProduceXCCH(s, 0, 0, 100, ChanSDCCH4_0, bid)
		require.True(t, ok, "burst %d", bid)
		require.Len(t, bits, 148)
		assert.Equal(t, trainingSequences[0][:], bits[61:87], "burst %d midamble", bid)
		assert.Equal(t, []byte{0, 0, 0}, bits[:3])
		assert.Equal(t, []byte{0, 0, 0}, bits[145:])
	}
	assert.NotNil(t, ts.chanState(ChanSDCCH4_0).dlBursts)
}

func TestXCCH_NoPrimitiveReleasesBuffer(t *testing.T) {
	s, _, _ := newTestSched()
	ts := s.trxAt(0).ts[0]
	cs := ts.chanState(ChanSDCCH4_0)

	ts.enqueue(&dlPrimitive{Kind: primPHData, ChanNr: 0x20, FN: 100, L2: make([]byte, 23)})
	_, ok := dlProduceXCCH(s, 0, 0, 100, ChanSDCCH4_0, 0)
	require.True(t, ok)
	require.NotNil(t, cs.dlBursts)

	// Next block with nothing queued: no bits and the interleaver
	// buffer goes away.
	_, ok = dlProduceXCCH(s, 0, 0, 104, ChanSDCCH4_0, 0)
	assert.False(t, ok)
	assert.Nil(t, cs.dlBursts)
}

func TestXCCH_LaterBurstWithoutBlockIsSilent(t *testing.T) {
	s, _, _ := newTestSched()

	_, ok := dlProduceXCCH(s, 0, 0, 101, ChanSDCCH4_0, 1)
	assert.False(t, ok)
}

func TestXCCH_WrongLengthPrimitiveDiscarded(t *testing.T) {
	s, _, _ := newTestSched()
	ts := s.trxAt(0).ts[0]

	ts.enqueue(&dlPrimitive{Kind: primPHData, ChanNr: 0x20, FN: 100, L2: make([]byte, 21)})
	_, ok := dlProduceXCCH(s, 0, 0, 100, ChanSDCCH4_0, 0)
	assert.False(t, ok)
	assert.Empty(t, ts.queue)
}

func TestSACCH_BFIOnSecondConsecutiveMiss(t *testing.T) {
	s, upper, _ := newTestSched()

	_, ok := dlProduceXCCH(s, 0, 0, 100, ChanSACCH4_0, 0)
	assert.False(t, ok)
	assert.Empty(t, upper.dataInds, "first miss only counts")

	_, ok = dlProduceXCCH(s, 0, 0, 202, ChanSACCH4_0, 0)
	assert.False(t, ok)
	require.Len(t, upper.dataInds, 1, "second miss raises the bad-frame indication")
	assert.Equal(t, byte(0x20), upper.dataInds[0].chanNr)
	assert.Equal(t, byte(0x40), upper.dataInds[0].linkID)
	assert.Empty(t, upper.dataInds[0].l2)
}

func TestSACCH_ServedPrimitiveClearsLossCounter(t *testing.T) {
	s, upper, _ := newTestSched()
	ts := s.trxAt(0).ts[0]
	cs := ts.chanState(ChanSACCH4_0)

	dlProduceXCCH(s, 0, 0, 100, ChanSACCH4_0, 0)
	require.Equal(t, 1, cs.sacchLost)

	ts.enqueue(&dlPrimitive{Kind: primPHData, ChanNr: 0x20, LinkID: 0x40, FN: 202, L2: make([]byte, 23)})
	_, ok := dlProduceXCCH(s, 0, 0, 202, ChanSACCH4_0, 0)
	require.True(t, ok)
	assert.Zero(t, cs.sacchLost)

	// A single later miss starts counting from scratch.
	dlProduceXCCH(s, 0, 0, 304, ChanSACCH4_0, 0)
	assert.Empty(t, upper.dataInds)
}

func TestTCHF_InterleaverOverlap(t *testing.T) {
	s, _, _ := newTestSched()
	ts := s.trxAt(0).ts[2]
	cs := ts.chanState(ChanTCHF)

	l2 := make([]byte, 33)
	l2[0] = 0xd0
	ts.enqueue(&dlPrimitive{Kind: primTCH, ChanNr: 0x0a, FN: 100, L2: l2})
	_, ok := dlProduceTCHF(s, 0, 2, 100, ChanTCHF, 0)
	require.True(t, ok)

	high := append([]byte(nil), cs.dlBursts[464:928]...)

	ts.enqueue(&dlPrimitive{Kind: primTCH, ChanNr: 0x0a, FN: 104, L2: l2})
	_, ok = dlProduceTCHF(s, 0, 2, 104, ChanTCHF, 0)
	require.True(t, ok)

	assert.Equal(t, high, cs.dlBursts[0:464],
		"previous block's half must slide down for the diagonal interleaver")
}

func TestTCHF_FACCHPreemptsSpeech(t *testing.T) {
	s, _, _ := newTestSched()
	ts := s.trxAt(0).ts[2]
	tchf := s.codecs.TCHF.(*fakeTCHF)

	ts.enqueue(&dlPrimitive{Kind: primTCH, ChanNr: 0x0a, FN: 100, L2: make([]byte, 33)})
	ts.enqueue(&dlPrimitive{Kind: primPHData, ChanNr: 0x0a, FN: 100, L2: make([]byte, 23)})

	_, ok := dlProduceTCHF(s, 0, 2, 100, ChanTCHF, 0)
	require.True(t, ok)
	assert.Len(t, tchf.lastEncode, 23, "the signalling primitive wins the slot")
	assert.Empty(t, ts.queue)
}

func TestTCHF_WrongLengthDiscarded(t *testing.T) {
	s, _, _ := newTestSched()
	ts := s.trxAt(0).ts[2]
	cs := ts.chanState(ChanTCHF)

	ts.enqueue(&dlPrimitive{Kind: primTCH, ChanNr: 0x0a, FN: 100, L2: make([]byte, 23)})
	_, ok := dlProduceTCHF(s, 0, 2, 100, ChanTCHF, 0)
	assert.False(t, ok)
	assert.Nil(t, cs.dlBursts)
}

func TestPDTCH_EncodeErrorReleasesBuffer(t *testing.T) {
	s, _, _ := newTestSched()
	ts := s.trxAt(0).ts[0]
	cs := ts.chanState(ChanPDTCH)
	s.codecs.PDTCH.(*fakePDTCH).encodeErr = errNoCodec

	ts.enqueue(&dlPrimitive{Kind: primPHData, ChanNr: 0x08, FN: 100, L2: make([]byte, 11)})
	_, ok := dlProducePDTCH(s, 0, 0, 100, ChanPDTCH, 0)
	assert.False(t, ok)
	assert.Nil(t, cs.dlBursts)
}

// recSCH records the SB info handed to the encoder.
type recSCH struct {
	last []byte
}

func (r *recSCH) Encode(sbInfo []byte) []byte {
	r.last = append([]byte(nil), sbInfo...)
	return make([]byte, 78)
}

func TestSCH_SBInfoLowBitOverwrite(t *testing.T) {
	enc := &recSCH{}
	s := New(Codecs{SCH: enc}, &fakeUpper{}, &fakeXCVR{}, nil)
	s.AddTRX(TRXConfig{PowerOn: true, SlotMask: 0xFF, BSIC: 0x3f})

	// fn=1337: T1=1, T2=11, T3=11, T3'=1. The final SB info byte
	// keeps only T3''s low bit.
	_, ok := dlProduceSCH(s, 0, 0, 1337, ChanSCH, 0)
	require.True(t, ok)
	require.Len(t, enc.last, 4)
	assert.Equal(t, byte((0x3f<<2)|0), enc.last[0])
	assert.Equal(t, byte(0), enc.last[1])
	assert.Equal(t, byte(1), enc.last[2])
}
