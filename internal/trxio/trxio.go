// Package trxio is the UDP transport between the scheduler and a
// transceiver process.
//
// Two sockets per TRX: a data socket carrying bursts in both
// directions and a control socket carrying text commands plus the
// transceiver's clock indications. Downlink writes are fire-and-
// forget; both receive directions run on their own goroutine and feed
// the scheduler's event-driven entry points.
package trxio

import (
	"encoding/binary"
	"fmt"
	"net"
	"strconv"
	"strings"
	"sync"

	"github.com/osmocom-go/trxsched/internal/rflog"
	"github.com/osmocom-go/trxsched/sched"
)

// Wire sizes of the data-socket messages: downlink is tn(1) fn(4)
// gain(1) bits(148), uplink is tn(1) fn(4) rssi(1) toa(2) bits(148).
const (
	dlMsgLen = 1 + 4 + 1 + 148
	ulMsgLen = 1 + 4 + 1 + 2 + 148
)

// Conn is one TRX's pair of sockets. It implements the scheduler's
// outbound transceiver boundary.
type Conn struct {
	trxIdx int

	data *net.UDPConn
	ctrl *net.UDPConn

	log *rflog.Logger

	mu     sync.Mutex
	closed bool
}

// Dial connects the data and control sockets of TRX trxIdx to a
// transceiver at host, using the conventional port pairing: control
// on basePort, data on basePort+1, each offset by 2 per TRX.
func Dial(trxIdx int, host string, basePort int, log *rflog.Logger) (*Conn, error) {
	ctrl, err := dialUDP(host, basePort+2*trxIdx)
	if err != nil {
		return nil, fmt.Errorf("trxio: control socket: %w", err)
	}
	data, err := dialUDP(host, basePort+2*trxIdx+1)
	if err != nil {
		ctrl.Close()
		return nil, fmt.Errorf("trxio: data socket: %w", err)
	}
	return &Conn{trxIdx: trxIdx, data: data, ctrl: ctrl, log: log}, nil
}

func dialUDP(host string, port int) (*net.UDPConn, error) {
	raddr, err := net.ResolveUDPAddr("udp", net.JoinHostPort(host, strconv.Itoa(port)))
	if err != nil {
		return nil, err
	}
	return net.DialUDP("udp", nil, raddr)
}

// TxData sends one downlink burst. Errors are logged and dropped; the
// frame deadline does not wait for retransmission.
func (c *Conn) TxData(trxIdx, tn int, fn sched.FN, gain uint8, bits []byte) {
	var buf [dlMsgLen]byte
	buf[0] = byte(tn)
	binary.BigEndian.PutUint32(buf[1:5], uint32(fn))
	buf[5] = gain
	copy(buf[6:], bits)
	if _, err := c.data.Write(buf[:]); err != nil {
		c.log.Error("trxio: tx data: %v", err)
	}
}

// Provision asks the transceiver to (re)start serving this TRX.
func (c *Conn) Provision() error {
	if _, err := fmt.Fprintf(c.ctrl, "CMD POWERON"); err != nil {
		return fmt.Errorf("trxio: provision: %w", err)
	}
	return nil
}

// Flush discards in-flight outbound state. UDP keeps nothing queued
// locally, so there is nothing to do beyond noting it.
func (c *Conn) Flush(trxIdx int) {
	c.log.Debug("trxio: flush trx=%d", trxIdx)
}

// Serve reads both sockets until Close, handing clock indications and
// received bursts to src. Run it in its own goroutine.
func (c *Conn) Serve(src sched.ClockSource) {
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		c.serveCtrl(src)
	}()
	go func() {
		defer wg.Done()
		c.serveData(src)
	}()
	wg.Wait()
}

func (c *Conn) serveCtrl(src sched.ClockSource) {
	buf := make([]byte, 1500)
	for {
		n, err := c.ctrl.Read(buf)
		if err != nil {
			if !c.isClosed() {
				c.log.Error("trxio: control read: %v", err)
			}
			return
		}
		line := strings.TrimRight(string(buf[:n]), "\x00\r\n")
		fields := strings.Fields(line)
		if len(fields) == 3 && fields[0] == "IND" && fields[1] == "CLOCK" {
			fn, err := strconv.ParseUint(fields[2], 10, 32)
			if err != nil {
				c.log.Error("trxio: bad clock indication %q", line)
				continue
			}
			src.OnClock(sched.NormFN(int64(fn)))
		}
	}
}

func (c *Conn) serveData(src sched.ClockSource) {
	buf := make([]byte, 1500)
	for {
		n, err := c.data.Read(buf)
		if err != nil {
			if !c.isClosed() {
				c.log.Error("trxio: data read: %v", err)
			}
			return
		}
		if n < ulMsgLen {
			c.log.Error("trxio: short uplink message (%d bytes)", n)
			continue
		}
		tn := int(buf[0])
		fn := sched.NormFN(int64(binary.BigEndian.Uint32(buf[1:5])))
		rssi := -float32(buf[5])
		toa := float32(int16(binary.BigEndian.Uint16(buf[6:8]))) / 256
		soft := make([]int8, 148)
		for i := range soft {
			soft[i] = int8(buf[8+i])
		}
		src.OnRxBurst(c.trxIdx, tn, fn, soft, rssi, toa)
	}
}

func (c *Conn) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// Close shuts both sockets down and unblocks Serve.
func (c *Conn) Close() error {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
	err := c.ctrl.Close()
	if derr := c.data.Close(); err == nil {
		err = derr
	}
	return err
}
