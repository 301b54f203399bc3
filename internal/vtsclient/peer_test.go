package vtsclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/EgorLis/govts/internal/vtsapi"
)

// rawRequest — входящий кадр глазами тестового сервера.
type rawRequest struct {
	APIName     string             `json:"apiName"`
	APIVersion  string             `json:"apiVersion"`
	RequestID   string             `json:"requestID"`
	MessageType vtsapi.MessageType `json:"messageType"`
	Data        json.RawMessage    `json:"data"`
}

// testPeer — фейковый сервер VTube Studio поверх httptest. Сам отвечает на
// кадры аутентификации, остальное складывает в requests для теста.
// Поля-перехватчики задаются до старта клиента.
type testPeer struct {
	t   *testing.T
	srv *httptest.Server

	mu   sync.Mutex
	conn *websocket.Conn

	// onRequest перехватывает кадр до стандартной обработки;
	// вернул true — кадр считается обработанным
	onRequest func(p *testPeer, req rawRequest) bool
	// acceptToken решает судьбу AuthenticationRequest (nil — принимать всё)
	acceptToken func(token string) bool
	// authToken выдаётся в ответ на AuthenticationTokenRequest
	authToken string

	requests chan rawRequest
}

func newTestPeer(t *testing.T) *testPeer {
	p := &testPeer{
		t:         t,
		authToken: "issued-token",
		requests:  make(chan rawRequest, 64),
	}
	upgrader := websocket.Upgrader{}
	p.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		p.mu.Lock()
		p.conn = c
		p.mu.Unlock()
		p.serve(c)
	}))
	t.Cleanup(p.srv.Close)
	return p
}

func (p *testPeer) serve(c *websocket.Conn) {
	for {
		_, b, err := c.ReadMessage()
		if err != nil {
			return
		}
		var req rawRequest
		if err := json.Unmarshal(b, &req); err != nil {
			p.t.Errorf("peer received non-json frame: %v", err)
			continue
		}
		if p.onRequest != nil && p.onRequest(p, req) {
			continue
		}
		switch req.MessageType {
		case vtsapi.MessageTypeAuthenticationTokenRequest:
			p.respond(req.RequestID, vtsapi.MessageTypeAuthenticationTokenResponse,
				vtsapi.AuthenticationTokenResponseData{AuthenticationToken: p.authToken})
		case vtsapi.MessageTypeAuthenticationRequest:
			var ad vtsapi.AuthenticationRequestData
			_ = json.Unmarshal(req.Data, &ad)
			ok := p.acceptToken == nil || p.acceptToken(ad.AuthenticationToken)
			resp := vtsapi.AuthenticationResponseData{Authenticated: ok}
			if !ok {
				resp.Reason = "token invalid"
			}
			p.respond(req.RequestID, vtsapi.MessageTypeAuthenticationResponse, resp)
		default:
			select {
			case p.requests <- req:
			default:
				p.t.Error("peer request channel full")
			}
		}
	}
}

// send пишет клиенту произвольный конверт.
func (p *testPeer) send(msgType vtsapi.MessageType, reqID string, data any) {
	frame := map[string]any{
		"apiName":     vtsapi.APIName,
		"apiVersion":  vtsapi.APIVersion,
		"timestamp":   time.Now().UnixMilli(),
		"requestID":   reqID,
		"messageType": string(msgType),
		"data":        data,
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.conn == nil {
		p.t.Error("peer has no connection")
		return
	}
	if err := p.conn.WriteJSON(frame); err != nil {
		p.t.Errorf("peer write failed: %v", err)
	}
}

func (p *testPeer) respond(reqID string, msgType vtsapi.MessageType, data any) {
	p.send(msgType, reqID, data)
}

func (p *testPeer) sendError(reqID string, code vtsapi.ErrorCode, msg string) {
	p.respond(reqID, vtsapi.MessageTypeAPIError, vtsapi.ErrorData{ErrorID: code, Message: msg})
}

// sendRaw пишет клиенту сырой текстовый кадр как есть.
func (p *testPeer) sendRaw(b []byte) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.conn.WriteMessage(websocket.TextMessage, b); err != nil {
		p.t.Errorf("peer write failed: %v", err)
	}
}

// pushEvent — нежданное событие без requestID.
func (p *testPeer) pushEvent(t vtsapi.EventType, data any) {
	p.send(vtsapi.MessageType(t), "", data)
}

// nextRequest достаёт следующий неаутентификационный кадр.
func (p *testPeer) nextRequest() rawRequest {
	select {
	case req := <-p.requests:
		return req
	case <-time.After(3 * time.Second):
		p.t.Fatal("timed out waiting for a request frame")
		return rawRequest{}
	}
}

// dropConn рвёт соединение со стороны сервера.
func (p *testPeer) dropConn() {
	p.mu.Lock()
	conn := p.conn
	p.mu.Unlock()
	if conn != nil {
		_ = conn.Close()
	}
}

func (p *testPeer) clientConfig() Config {
	u, err := url.Parse(p.srv.URL)
	require.NoError(p.t, err)
	port, err := strconv.Atoi(u.Port())
	require.NoError(p.t, err)
	return Config{
		PluginName:      "govts test",
		PluginDeveloper: "govts",
		Host:            u.Hostname(),
		Port:            port,
		AuthToken:       "preset-token",
	}
}

// startClient поднимает клиента против p и проходит аутентификацию.
func startClient(t *testing.T, p *testPeer) *VTS {
	v := New(p.clientConfig())
	v.SetLogger(zerolog.Nop())
	_, err := v.Start(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = v.Close() })
	return v
}
