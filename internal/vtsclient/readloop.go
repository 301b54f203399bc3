package vtsclient

import (
	"github.com/gorilla/websocket"

	"github.com/EgorLis/govts/internal/vtsapi"
)

// readLoop — единственный читатель сокета на всё время жизни сессии.
// Каждому кадру — одна классификация: ответ на ожидающий запрос или
// пуш-событие. Ошибка чтения по инициативе пира рушит сессию целиком;
// после Close выход тихий.
func (v *VTS) readLoop(conn *websocket.Conn, stopCh chan struct{}, queue chan invocation) {
	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			select {
			case <-stopCh:
				// штатное закрытие по Close — не ошибка
				return
			default:
			}
			v.log.Info().Err(err).Msg("websocket connection closed by peer")
			v.teardown(ErrConnectionClosed)
			return
		}
		v.handleFrame(raw, queue)
	}
}

// handleFrame классифицирует входящий кадр. Любая ошибка разбора локальна:
// кадр логируется и отбрасывается, цикл продолжается.
func (v *VTS) handleFrame(raw []byte, queue chan invocation) {
	env, err := vtsapi.DecodeEnvelope(raw)
	if err != nil {
		v.log.Warn().Err(err).Msg("dropping undecodable frame")
		return
	}

	// requestID имеет приоритет: кадр с id ожидающего запроса — это ответ,
	// даже если его messageType совпадает с типом события
	if env.RequestID != "" {
		if ch, ok := v.takePending(env.RequestID); ok {
			ch <- callResult{env: env}
			return
		}
	}

	if vtsapi.KnownEventType(env.MessageType) {
		v.handleEvent(env, queue)
		return
	}

	v.log.Warn().
		Str("messageType", string(env.MessageType)).
		Str("requestID", env.RequestID).
		Msg("dropping unclassifiable frame")
}

// handleEvent декодирует payload события и ставит вызовы обработчиков в
// очередь диспетчера. Постановка неблокирующая: при переполнении очереди
// событие теряется с предупреждением, приёмный цикл не ждёт.
func (v *VTS) handleEvent(env *vtsapi.Envelope, queue chan invocation) {
	et := vtsapi.EventType(env.MessageType)

	payload, _ := vtsapi.NewEventData(et)
	if err := env.DecodeData(payload); err != nil {
		v.log.Warn().Err(err).Str("event", string(et)).Msg("dropping undecodable event payload")
		return
	}

	v.hmu.Lock()
	handlers := append([]EventHandler(nil), v.handlers[et]...)
	v.hmu.Unlock()
	if len(handlers) == 0 {
		v.log.Debug().Str("event", string(et)).Msg("event without handlers discarded")
		return
	}

	ev := &Event{Type: et, Timestamp: env.Timestamp, Data: payload}
	for _, h := range handlers {
		select {
		case queue <- invocation{fn: h, ev: ev}:
		default:
			v.log.Warn().Str("event", string(et)).Msg("event queue full, dropping invocation")
		}
	}
}
