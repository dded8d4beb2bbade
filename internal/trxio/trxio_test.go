package trxio

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osmocom-go/trxsched/internal/rflog"
	"github.com/osmocom-go/trxsched/sched"
)

type recSource struct {
	clocks chan sched.FN
	bursts chan int
}

func (r *recSource) OnClock(fn sched.FN) { r.clocks <- fn }

func (r *recSource) OnRxBurst(trxIdx, tn int, fn sched.FN, softBits []int8, rssi, toa float32) {
	r.bursts <- tn
}

// listenPair binds a control and data socket on loopback and returns
// them with the control port.
func listenPair(t *testing.T) (*net.UDPConn, *net.UDPConn, int) {
	t.Helper()
	for port := 15700; port < 15800; port += 2 {
		ctrl, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1), Port: port})
		if err != nil {
			continue
		}
		data, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1), Port: port + 1})
		if err != nil {
			ctrl.Close()
			continue
		}
		return ctrl, data, port
	}
	t.Fatal("no free loopback port pair")
	return nil, nil, 0
}

func TestConn_TxDataWireFormat(t *testing.T) {
	ctrl, data, port := listenPair(t)
	defer ctrl.Close()
	defer data.Close()

	c, err := Dial(0, "127.0.0.1", port, rflog.Discard())
	require.NoError(t, err)
	defer c.Close()

	bits := make([]byte, 148)
	bits[147] = 1
	c.TxData(0, 5, 123456, 128, bits)

	buf := make([]byte, 1500)
	require.NoError(t, data.SetReadDeadline(time.Now().Add(2*time.Second)))
	n, _, err := data.ReadFromUDP(buf)
	require.NoError(t, err)
	require.Equal(t, dlMsgLen, n)
	assert.Equal(t, byte(5), buf[0])
	assert.Equal(t, []byte{0x00, 0x01, 0xe2, 0x40}, buf[1:5])
	assert.Equal(t, byte(128), buf[5])
	assert.Equal(t, byte(1), buf[6+147])
}

func TestConn_ServeDeliversClockAndBursts(t *testing.T) {
	ctrl, data, port := listenPair(t)
	defer ctrl.Close()
	defer data.Close()

	c, err := Dial(0, "127.0.0.1", port, rflog.Discard())
	require.NoError(t, err)
	defer c.Close()

	src := &recSource{clocks: make(chan sched.FN, 1), bursts: make(chan int, 1)}
	go c.Serve(src)

	// The far end learns our addresses from the first packets we send.
	require.NoError(t, c.Provision())
	c.TxData(0, 0, 0, 0, make([]byte, 148))

	buf := make([]byte, 1500)
	require.NoError(t, ctrl.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, ctrlAddr, err := ctrl.ReadFromUDP(buf)
	require.NoError(t, err)
	require.NoError(t, data.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, dataAddr, err := data.ReadFromUDP(buf)
	require.NoError(t, err)

	_, err = ctrl.WriteToUDP([]byte("IND CLOCK 4242"), ctrlAddr)
	require.NoError(t, err)

	ul := make([]byte, ulMsgLen)
	ul[0] = 6
	_, err = data.WriteToUDP(ul, dataAddr)
	require.NoError(t, err)

	select {
	case fn := <-src.clocks:
		assert.Equal(t, sched.FN(4242), fn)
	case <-time.After(2 * time.Second):
		t.Fatal("clock indication not delivered")
	}
	select {
	case tn := <-src.bursts:
		assert.Equal(t, 6, tn)
	case <-time.After(2 * time.Second):
		t.Fatal("uplink burst not delivered")
	}
}
