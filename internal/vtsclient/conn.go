package vtsclient

import (
	"context"
	"fmt"
	"time"

	"github.com/gorilla/websocket"
)

// ========================= low-level =========================

const (
	dialTimeout  = 10 * time.Second
	writeTimeout = 5 * time.Second
	readLimit    = 16 << 20
)

func (v *VTS) wsURL() string {
	return fmt.Sprintf("ws://%s:%d", v.cfg.Host, v.cfg.Port)
}

func (v *VTS) dial(ctx context.Context) (*websocket.Conn, error) {
	dialer := websocket.Dialer{HandshakeTimeout: dialTimeout}
	conn, _, err := dialer.DialContext(ctx, v.wsURL(), nil)
	if err != nil {
		return nil, err
	}
	conn.SetReadLimit(readLimit)
	return conn, nil
}

// запись строго через один мьютекс + write-deadline
func (v *VTS) writeJSON(msg any) error {
	v.mu.Lock()
	conn := v.conn
	v.mu.Unlock()
	if conn == nil {
		return ErrNotConnected
	}

	v.wmu.Lock()
	defer v.wmu.Unlock()
	_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err := conn.WriteJSON(msg); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

// безопасно закрыть сокет: вежливый close-frame, потом Close
func (v *VTS) closeConn(conn *websocket.Conn) {
	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "closing"),
		time.Now().Add(500*time.Millisecond))
	_ = conn.Close()
}
