package vtsclient

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/EgorLis/govts/internal/vtsapi"
)

type callResult struct {
	env *vtsapi.Envelope
	err error
}

// nextRequestID — монотонный счётчик + случайный суффикс, чтобы id не
// совпадали даже после сброса счётчика между переподключениями.
func (v *VTS) nextRequestID() string {
	return fmt.Sprintf("%d_%s", v.counter.Add(1), uuid.NewString()[:8])
}

// Call отправляет запрос и ждёт ответ с тем же requestID. Параллельных
// вызовов может быть сколько угодно; ответы разруливаются по таблице
// ожидающих запросов в любом порядке прихода. Без дедлайна в ctx действует
// таймаут сессии по умолчанию.
func (v *VTS) Call(ctx context.Context, msgType vtsapi.MessageType, data, out any) error {
	req := vtsapi.NewRequest(msgType, data)
	return v.call(ctx, req, out)
}

func (v *VTS) call(ctx context.Context, req *vtsapi.Request, out any) error {
	if !v.connected.Load() {
		return ErrNotConnected
	}
	if req.RequestID == "" {
		req.RequestID = v.nextRequestID()
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, v.callTimeout)
		defer cancel()
	}

	ch := make(chan callResult, 1)
	v.mu.Lock()
	if !v.started || v.pending == nil {
		v.mu.Unlock()
		return ErrNotConnected
	}
	stopCh := v.stopCh
	v.pending[req.RequestID] = ch
	v.mu.Unlock()
	// запись в таблицу снимается ровно один раз на любом пути выхода
	defer v.removePending(req.RequestID)

	if err := v.writeJSON(req); err != nil {
		return fmt.Errorf("send %s: %w", req.MessageType, err)
	}

	select {
	case res := <-ch:
		if res.err != nil {
			return res.err
		}
		return decodeCallResult(res.env, out)
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("request %s: %w", req.RequestID, ErrTimeout)
		}
		return ctx.Err()
	case <-stopCh:
		return ErrConnectionClosed
	}
}

func decodeCallResult(env *vtsapi.Envelope, out any) error {
	if env.IsError() {
		var ed vtsapi.ErrorData
		if err := env.DecodeData(&ed); err != nil {
			return fmt.Errorf("decode APIError payload: %w", err)
		}
		return &RequestError{Code: ed.ErrorID, Message: ed.Message}
	}
	if out == nil {
		return nil
	}
	if err := env.DecodeData(out); err != nil {
		return fmt.Errorf("decode %s: %w", env.MessageType, err)
	}
	return nil
}

// takePending забирает слот ответа по id (и удаляет его из таблицы).
func (v *VTS) takePending(id string) (chan callResult, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	ch, ok := v.pending[id]
	if ok {
		delete(v.pending, id)
	}
	return ch, ok
}

func (v *VTS) removePending(id string) {
	v.mu.Lock()
	delete(v.pending, id)
	v.mu.Unlock()
}

// failPending отклоняет все ожидающие запросы при закрытии соединения.
func (v *VTS) failPending(cause error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for id, ch := range v.pending {
		ch <- callResult{err: cause}
		delete(v.pending, id)
	}
}
