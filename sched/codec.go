package sched

import "errors"

// errNoCodec is returned internally when a UL consumer has no codec
// collaborator wired in; it never escapes to the upper layer, which
// just sees a BFI/zero-length indication.
var errNoCodec = errors.New("sched: no codec configured")

/*-------------------------------------------------------------------
 *
 * Purpose:	Channel codec collaborator interfaces.
 *
 * Description:	Convolutional coding, block interleaving depth beyond
 *		the overlap bookkeeping the producers own themselves,
 *		parity and ciphering all live outside this package.
 *		The scheduler only calls through these interfaces;
 *		tests supply fakes.
 *
 *-------------------------------------------------------------------*/

// SCHEncoder runs the synchronisation-channel convolutional encoder
// over the 25-bit SB info block (packed into 4 bytes) and returns the
// 78 encoded bits split around the burst's training sequence.
type SCHEncoder interface {
	Encode(sbInfo []byte) (encoded []byte)
}

// XCCHCodec encodes/decodes a 4-burst signalling block. Encode takes
// 23 bytes of L2 and returns 464 hard bits (4x116). Decode takes 464
// soft bits and returns the decoded L2 bytes, or an error if the
// block failed parity.
type XCCHCodec interface {
	Encode(l2 []byte) (hardBits []byte, err error)
	Decode(softBits []int8) (l2 []byte, err error)
}

// PDTCHCodec is the packet-data analogue of XCCHCodec: L2 length is
// variable, Encode rejects invalid lengths with an error, and Decode
// additionally reports the decoded length.
type PDTCHCodec interface {
	Encode(l2 []byte) (hardBits []byte, err error)
	Decode(softBits []int8) (l2 []byte, rc int, err error)
}

// TCHFCodec encodes/decodes the 8-burst diagonal-interleaved
// full-rate traffic block. Decode's returned length discriminates the
// frame kind: 33 a speech frame, 23 a stolen FACCH block, anything
// else a bad frame.
type TCHFCodec interface {
	Encode(l2 []byte) (hardBits []byte, err error)
	Decode(softBits []int8) (payload []byte, rc int, err error)
}

// RACHDecoder decodes the single-burst access request against a BSIC.
type RACHDecoder interface {
	Decode(bsic uint8, softBits []int8) (ra byte, ok bool)
}

// Codecs bundles every codec collaborator the scheduler dispatches
// to. A nil field is only valid if no channel of that kind is ever
// scheduled. If one is used anyway, the SCH and PDTCH producers return
// "no bits", while the xCCH and TCH/F producers still send bursts from
// the interleaver buffer without encoding the new block. The xCCH,
// PDTCH and TCH/F consumers report a bad block upward, and the RACH
// consumer drops the burst.
type Codecs struct {
	SCH   SCHEncoder
	XCCH  XCCHCodec
	PDTCH PDTCHCodec
	TCHF  TCHFCodec
	RACH  RACHDecoder
}
