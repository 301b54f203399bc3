package vtsclient

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EgorLis/govts/internal/vtsapi"
)

func TestEventDelivery(t *testing.T) {
	p := newTestPeer(t)
	v := startClient(t, p)

	moved := make(chan *Event, 1)
	v.OnEvent(vtsapi.EventTypeModelMoved, func(ev *Event) error {
		moved <- ev
		return nil
	})
	unrelated := make(chan struct{}, 1)
	v.OnEvent(vtsapi.EventTypeHotkeyTriggered, func(*Event) error {
		unrelated <- struct{}{}
		return nil
	})

	p.pushEvent(vtsapi.EventTypeModelMoved, vtsapi.ModelMovedEventData{
		ModelID:   "m1",
		ModelName: "Akari",
	})

	select {
	case ev := <-moved:
		assert.Equal(t, vtsapi.EventTypeModelMoved, ev.Type)
		data := ev.Data.(*vtsapi.ModelMovedEventData)
		assert.Equal(t, "m1", data.ModelID)
		assert.Equal(t, "Akari", data.ModelName)
	case <-time.After(3 * time.Second):
		t.Fatal("model moved handler was not invoked")
	}

	select {
	case <-unrelated:
		t.Fatal("handler of a different event type was invoked")
	case <-time.After(100 * time.Millisecond):
	}
	assert.Len(t, moved, 0, "handler invoked more than once")
}

// Кадр с requestID ожидающего запроса — ответ, даже когда его messageType
// выглядит как событие.
func TestResponseWinsOverEventClassification(t *testing.T) {
	p := newTestPeer(t)
	v := startClient(t, p)

	handled := make(chan struct{}, 1)
	v.OnEvent(vtsapi.EventTypeModelMoved, func(*Event) error {
		handled <- struct{}{}
		return nil
	})

	errCh := make(chan error, 1)
	var out vtsapi.ModelMovedEventData
	go func() {
		errCh <- v.Call(context.Background(), vtsapi.MessageTypeStatisticsRequest,
			vtsapi.StatisticsRequestData{}, &out)
	}()
	req := p.nextRequest()
	p.respond(req.RequestID, vtsapi.MessageType(vtsapi.EventTypeModelMoved),
		vtsapi.ModelMovedEventData{ModelID: "m1"})

	require.NoError(t, <-errCh)
	assert.Equal(t, "m1", out.ModelID)

	select {
	case <-handled:
		t.Fatal("frame with a pending requestID must not reach event handlers")
	case <-time.After(100 * time.Millisecond):
	}
}

// Ошибка или паника одного обработчика не мешает остальным.
func TestHandlerFailureIsIsolated(t *testing.T) {
	p := newTestPeer(t)
	v := startClient(t, p)

	v.OnEvent(vtsapi.EventTypeTest, func(*Event) error {
		return errors.New("handler failed")
	})
	v.OnEvent(vtsapi.EventTypeTest, func(*Event) error {
		panic("handler panicked")
	})
	survived := make(chan struct{}, 1)
	v.OnEvent(vtsapi.EventTypeTest, func(*Event) error {
		survived <- struct{}{}
		return nil
	})

	p.pushEvent(vtsapi.EventTypeTest, vtsapi.TestEventData{YourTestMessage: "ping"})

	select {
	case <-survived:
	case <-time.After(3 * time.Second):
		t.Fatal("third handler was not invoked")
	}
	assert.True(t, v.Connected(), "handler failures must not close the session")
}

func TestDuplicateRegistrationInvokedTwice(t *testing.T) {
	p := newTestPeer(t)
	v := startClient(t, p)

	hits := make(chan struct{}, 4)
	h := func(*Event) error {
		hits <- struct{}{}
		return nil
	}
	v.OnEvent(vtsapi.EventTypeTest, h)
	v.OnEvent(vtsapi.EventTypeTest, h)

	p.pushEvent(vtsapi.EventTypeTest, vtsapi.TestEventData{})

	for i := 0; i < 2; i++ {
		select {
		case <-hits:
		case <-time.After(3 * time.Second):
			t.Fatalf("handler invoked %d times, want 2", i)
		}
	}
}

func TestOffEvent(t *testing.T) {
	p := newTestPeer(t)
	v := startClient(t, p)

	hits := make(chan struct{}, 4)
	h := func(*Event) error {
		hits <- struct{}{}
		return nil
	}

	err := v.OffEvent(vtsapi.EventTypeTest, h)
	assert.ErrorIs(t, err, ErrHandlerNotFound)

	v.OnEvent(vtsapi.EventTypeTest, h)
	other := func(*Event) error { return nil }
	err = v.OffEvent(vtsapi.EventTypeTest, other)
	assert.ErrorIs(t, err, ErrHandlerNotFound)

	require.NoError(t, v.OffEvent(vtsapi.EventTypeTest, h))

	p.pushEvent(vtsapi.EventTypeTest, vtsapi.TestEventData{})
	select {
	case <-hits:
		t.Fatal("removed handler was invoked")
	case <-time.After(100 * time.Millisecond):
	}
}

// Переполнение очереди диспетчера дропает лишние вызовы, не блокируя
// приёмный цикл.
func TestEventQueueOverflowDropsButKeepsReceiving(t *testing.T) {
	p := newTestPeer(t)
	v := startClient(t, p)

	const flood = eventQueueSize + 100

	gate := make(chan struct{})
	entered := make(chan struct{})
	var invoked atomic.Int64
	v.OnEvent(vtsapi.EventTypeTest, func(*Event) error {
		if invoked.Add(1) == 1 {
			close(entered)
			<-gate // первый вызов держит пачку, очередь копится
		}
		return nil
	})

	p.pushEvent(vtsapi.EventTypeTest, vtsapi.TestEventData{})
	select {
	case <-entered:
	case <-time.After(3 * time.Second):
		t.Fatal("first handler invocation did not start")
	}

	// очередь пуста, диспетчер заблокирован: влезет ровно eventQueueSize
	for i := 0; i < flood; i++ {
		p.pushEvent(vtsapi.EventTypeTest, vtsapi.TestEventData{Counter: i})
	}

	// приёмный цикл жив: запрос-ответ проходит, пока диспетчер стоит
	go func() {
		req := p.nextRequest()
		p.respond(req.RequestID, vtsapi.MessageTypeStatisticsResponse,
			vtsapi.StatisticsResponseData{Uptime: 9})
	}()
	stats, err := v.Statistics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(9), stats.Uptime)

	close(gate)

	want := int64(eventQueueSize + 1)
	require.Eventually(t, func() bool { return invoked.Load() >= want },
		3*time.Second, 5*time.Millisecond)
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, want, invoked.Load(), "dropped invocations must not be replayed")
}

// Событие без обработчиков просто отбрасывается, не ломая сессию.
func TestEventWithoutHandlersIsDiscarded(t *testing.T) {
	p := newTestPeer(t)
	v := startClient(t, p)

	p.pushEvent(vtsapi.EventTypeBackgroundChanged,
		vtsapi.BackgroundChangedEventData{BackgroundName: "stage"})

	go func() {
		req := p.nextRequest()
		p.respond(req.RequestID, vtsapi.MessageTypeStatisticsResponse,
			vtsapi.StatisticsResponseData{Uptime: 3})
	}()
	stats, err := v.Statistics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Uptime)
}

func TestSubscribeEventSendsSubscriptionRequest(t *testing.T) {
	p := newTestPeer(t)
	v := startClient(t, p)

	go func() {
		req := p.nextRequest()
		var sd vtsapi.EventSubscriptionRequestData
		if assert.NoError(t, json.Unmarshal(req.Data, &sd)) {
			assert.Equal(t, vtsapi.EventTypeModelMoved, sd.EventName)
			assert.True(t, sd.Subscribe)
		}
		p.respond(req.RequestID, vtsapi.MessageTypeEventSubscriptionResponse,
			vtsapi.EventSubscriptionResponseData{
				SubscribedEventCount: 1,
				SubscribedEvents:     []vtsapi.EventType{vtsapi.EventTypeModelMoved},
			})
	}()

	resp, err := v.SubscribeEvent(context.Background(), vtsapi.EventTypeModelMoved, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.SubscribedEventCount)

	go func() {
		req := p.nextRequest()
		var sd vtsapi.EventSubscriptionRequestData
		if assert.NoError(t, json.Unmarshal(req.Data, &sd)) {
			assert.False(t, sd.Subscribe)
		}
		p.respond(req.RequestID, vtsapi.MessageTypeEventSubscriptionResponse,
			vtsapi.EventSubscriptionResponseData{})
	}()

	_, err = v.UnsubscribeEvent(context.Background(), vtsapi.EventTypeModelMoved)
	require.NoError(t, err)
}
