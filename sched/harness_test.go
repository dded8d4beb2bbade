package sched

// Shared fakes for the scheduler tests: a recording upper layer, a
// recording transceiver, and trivially-coded fake codecs.

type dataInd struct {
	chanNr byte
	linkID byte
	fn     FN
	l2     []byte
}

type tchInd struct {
	chanNr  byte
	fn      FN
	payload []byte
}

type rachInd struct {
	ra       byte
	accDelay int
	fn       FN
}

type rtsInd struct {
	chanNr byte
	linkID byte
	fn     FN
}

type fakeUpper struct {
	dataInds []dataInd
	tchInds  []tchInd
	rachInds []rachInd
	phRTS    []rtsInd
	tchRTS   []rtsInd
	times    []FN
}

func (u *fakeUpper) PHDataInd(chanNr, linkID byte, fn FN, l2 []byte) {
	u.dataInds = append(u.dataInds, dataInd{chanNr, linkID, fn, append([]byte(nil), l2...)})
}

func (u *fakeUpper) TCHInd(chanNr byte, fn FN, payload []byte) {
	u.tchInds = append(u.tchInds, tchInd{chanNr, fn, append([]byte(nil), payload...)})
}

func (u *fakeUpper) PHRachInd(ra byte, accDelay int, fn FN) {
	u.rachInds = append(u.rachInds, rachInd{ra, accDelay, fn})
}

func (u *fakeUpper) PHRTSInd(chanNr, linkID byte, fn FN) {
	u.phRTS = append(u.phRTS, rtsInd{chanNr, linkID, fn})
}

func (u *fakeUpper) TCHRTSInd(chanNr byte, fn FN) {
	u.tchRTS = append(u.tchRTS, rtsInd{chanNr, 0, fn})
}

func (u *fakeUpper) MPHTimeInd(fn FN) {
	u.times = append(u.times, fn)
}

type txFrame struct {
	trxIdx int
	tn     int
	fn     FN
	gain   uint8
	bits   []byte
}

type fakeXCVR struct {
	frames     []txFrame
	flushes    []int
	provisions int
}

func (x *fakeXCVR) TxData(trxIdx, tn int, fn FN, gain uint8, bits []byte) {
	x.frames = append(x.frames, txFrame{trxIdx, tn, fn, gain, append([]byte(nil), bits...)})
}

func (x *fakeXCVR) Provision() error {
	x.provisions++
	return nil
}

func (x *fakeXCVR) Flush(trxIdx int) {
	x.flushes = append(x.flushes, trxIdx)
}

// fakeSCH returns a 78-bit encoding that repeats the low bit of each
// SB info byte, so tests can tell blocks apart.
type fakeSCH struct{}

func (fakeSCH) Encode(sbInfo []byte) []byte {
	out := make([]byte, 78)
	for i := range out {
		out[i] = sbInfo[i%len(sbInfo)] & 1
	}
	return out
}

// fakeXCCH "encodes" by repeating the L2 bytes bitwise into 464 hard
// bits. Decode ignores the soft bits: it fails if failDecode is set,
// else returns decoded, or 23 zero bytes when decoded is nil.
type fakeXCCH struct {
	failDecode bool
	decoded    []byte
}

func (c *fakeXCCH) Encode(l2 []byte) ([]byte, error) {
	out := make([]byte, 464)
	for i := range out {
		out[i] = (l2[i%len(l2)] >> uint(i%8)) & 1
	}
	return out, nil
}

func (c *fakeXCCH) Decode(softBits []int8) ([]byte, error) {
	if c.failDecode {
		return nil, errNoCodec
	}
	if c.decoded != nil {
		return c.decoded, nil
	}
	return make([]byte, 23), nil
}

type fakePDTCH struct {
	encodeErr  error
	failDecode bool
	rc         int
}

func (c *fakePDTCH) Encode(l2 []byte) ([]byte, error) {
	if c.encodeErr != nil {
		return nil, c.encodeErr
	}
	return make([]byte, 464), nil
}

func (c *fakePDTCH) Decode(softBits []int8) ([]byte, int, error) {
	if c.failDecode {
		return nil, 0, errNoCodec
	}
	rc := c.rc
	if rc == 0 {
		rc = 23
	}
	return make([]byte, 54), rc, nil
}

type fakeTCHF struct {
	failDecode bool
	rc         int
	lastEncode []byte
}

func (c *fakeTCHF) Encode(l2 []byte) ([]byte, error) {
	c.lastEncode = append([]byte(nil), l2...)
	out := make([]byte, 464)
	for i := range out {
		out[i] = l2[i%len(l2)] & 1
	}
	return out, nil
}

func (c *fakeTCHF) Decode(softBits []int8) ([]byte, int, error) {
	if c.failDecode {
		return nil, -1, errNoCodec
	}
	rc := c.rc
	if rc == 0 {
		rc = 33
	}
	return make([]byte, 33), rc, nil
}

type fakeRACH struct {
	ok bool
	ra byte
}

func (c *fakeRACH) Decode(bsic uint8, softBits []int8) (byte, bool) {
	return c.ra, c.ok
}

// newTestSched builds a scheduler with one powered-on TRX and the
// full fake codec bundle, returning the recording collaborators.
func newTestSched() (*Scheduler, *fakeUpper, *fakeXCVR) {
	upper := &fakeUpper{}
	xcvr := &fakeXCVR{}
	s := New(Codecs{
		SCH:   fakeSCH{},
		XCCH:  &fakeXCCH{},
		PDTCH: &fakePDTCH{},
		TCHF:  &fakeTCHF{},
		RACH:  &fakeRACH{ok: true, ra: 0x2a},
	}, upper, xcvr, nil)
	s.AddTRX(DefaultTRXConfig())
	return s, upper, xcvr
}

// softBurst builds a 148-soft-bit burst whose payload halves are the
// given fill value.
func softBurst(fill int8) []int8 {
	b := make([]int8, 148)
	for i := 3; i < 61; i++ {
		b[i] = fill
	}
	for i := 87; i < 145; i++ {
		b[i] = fill
	}
	return b
}
