package discovery

import (
	"encoding/json"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// freeUDPPort подбирает свободный порт для слушателя.
func freeUDPPort(t *testing.T) int {
	pc, err := net.ListenPacket("udp4", ":0")
	require.NoError(t, err)
	port := pc.LocalAddr().(*net.UDPAddr).Port
	require.NoError(t, pc.Close())
	return port
}

func sendBeacon(t *testing.T, port int, payload any) {
	conn, err := net.Dial("udp4", fmt.Sprintf("127.0.0.1:%d", port))
	require.NoError(t, err)
	defer conn.Close()

	b, err := json.Marshal(payload)
	require.NoError(t, err)
	_, err = conn.Write(b)
	require.NoError(t, err)
}

func beaconFrame(data any) map[string]any {
	return map[string]any{
		"apiName":     "VTubeStudioPublicAPI",
		"apiVersion":  "1.0",
		"timestamp":   time.Now().UnixMilli(),
		"messageType": "VTubeStudioAPIStateBroadcast",
		"data":        data,
	}
}

func TestListenerReceivesBeacon(t *testing.T) {
	port := freeUDPPort(t)
	l := New(port, zerolog.Nop())

	states := make(chan State, 1)
	l.OnState(func(st State) { states <- st })
	require.NoError(t, l.Start())
	defer l.Stop()

	beacon := beaconFrame(State{Active: true, Port: 8001, InstanceID: "abc", WindowTitle: "VTube Studio"})

	// маяки шлются раз в секунду, повторяем до первого принятого
	deadline := time.After(3 * time.Second)
	for {
		sendBeacon(t, port, beacon)
		select {
		case st := <-states:
			assert.True(t, st.Active)
			assert.Equal(t, 8001, st.Port)
			assert.Equal(t, "abc", st.InstanceID)

			last, ok := l.Last()
			require.True(t, ok)
			assert.Equal(t, st, last)
			return
		case <-deadline:
			t.Fatal("beacon was not received")
		case <-time.After(50 * time.Millisecond):
		}
	}
}

func TestListenerIgnoresForeignDatagrams(t *testing.T) {
	port := freeUDPPort(t)
	l := New(port, zerolog.Nop())

	states := make(chan State, 1)
	l.OnState(func(st State) { states <- st })
	require.NoError(t, l.Start())
	defer l.Stop()

	sendBeacon(t, port, map[string]any{"hello": "world"})
	sendBeacon(t, port, map[string]any{
		"apiName":     "SomethingElse",
		"apiVersion":  "1.0",
		"messageType": "VTubeStudioAPIStateBroadcast",
		"data":        State{Active: true},
	})

	select {
	case <-states:
		t.Fatal("foreign datagram must not produce a state update")
	case <-time.After(200 * time.Millisecond):
	}
	_, ok := l.Last()
	assert.False(t, ok)
}

func TestListenerStopIsIdempotent(t *testing.T) {
	l := New(freeUDPPort(t), zerolog.Nop())
	require.NoError(t, l.Start())
	require.NoError(t, l.Start()) // повторный Start — no-op
	l.Stop()
	l.Stop()
}
