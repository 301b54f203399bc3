package vtsclient

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/EgorLis/govts/internal/vtsapi"
)

// Event — декодированное пуш-событие. Data указывает на конкретную схему
// payload (например *vtsapi.ModelMovedEventData).
type Event struct {
	Type      vtsapi.EventType
	Timestamp int64
	Data      any
}

// EventHandler принимает одно событие; ошибка уходит в лог сессии и
// никогда не закрывает соединение.
type EventHandler func(*Event) error

type invocation struct {
	fn EventHandler
	ev *Event
}

// dispatchLoop — единственный потребитель очереди событий. Забирает всё,
// что накопилось, выполняет пачку обработчиков параллельно и ждёт её
// завершения; медленный обработчик тормозит только свою пачку, но не
// приёмный цикл.
func (v *VTS) dispatchLoop(stopCh chan struct{}, queue chan invocation) {
	for {
		var batch []invocation
		select {
		case <-stopCh:
			return
		case inv := <-queue:
			batch = append(batch, inv)
		}
	drain:
		for {
			select {
			case inv := <-queue:
				batch = append(batch, inv)
			default:
				break drain
			}
		}

		var wg sync.WaitGroup
		for _, inv := range batch {
			wg.Add(1)
			go func(inv invocation) {
				defer wg.Done()
				v.runHandler(inv)
			}(inv)
		}
		wg.Wait()
	}
}

func (v *VTS) runHandler(inv invocation) {
	defer func() {
		if r := recover(); r != nil {
			v.log.Error().
				Str("event", string(inv.ev.Type)).
				Interface("panic", r).
				Msg("event handler panicked")
		}
	}()
	if err := inv.fn(inv.ev); err != nil {
		v.log.Error().Err(err).Str("event", string(inv.ev.Type)).Msg("event handler failed")
	}
}

// OnEvent регистрирует обработчик; порядок регистрации определяет порядок
// запуска внутри одной пачки. Один и тот же обработчик можно
// зарегистрировать несколько раз — будет вызван столько же раз.
func (v *VTS) OnEvent(t vtsapi.EventType, h EventHandler) {
	v.hmu.Lock()
	v.handlers[t] = append(v.handlers[t], h)
	v.hmu.Unlock()
	v.log.Debug().Str("event", string(t)).Msg("registered event handler")
}

// OffEvent снимает первую регистрацию этого обработчика (сравнение по
// указателю функции). Незнакомая пара тип/обработчик — ErrHandlerNotFound.
func (v *VTS) OffEvent(t vtsapi.EventType, h EventHandler) error {
	v.hmu.Lock()
	defer v.hmu.Unlock()

	list := v.handlers[t]
	if len(list) == 0 {
		return fmt.Errorf("%w: no handlers registered for %s", ErrHandlerNotFound, t)
	}
	target := reflect.ValueOf(h).Pointer()
	for i, reg := range list {
		if reflect.ValueOf(reg).Pointer() == target {
			v.handlers[t] = append(list[:i:i], list[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: handler is not registered for %s", ErrHandlerNotFound, t)
}
