// Package discovery слушает UDP-маяк VTube Studio: приложение раз в
// секунду рассылает состояние своего API (активен ли, на каком порту)
// широковещательно на порт 47779. Позволяет найти нужный порт WebSocket
// до подключения.
package discovery

import (
	"fmt"
	"net"
	"sync"

	"github.com/rs/zerolog"

	"github.com/EgorLis/govts/internal/vtsapi"
)

// DefaultPort — порт широковещательной рассылки VTube Studio.
const DefaultPort = 47779

// State — содержимое одного маяка.
type State struct {
	Active      bool   `json:"active"`
	Port        int    `json:"port"`
	InstanceID  string `json:"instanceID"`
	WindowTitle string `json:"windowTitle"`
}

// Listener — фоновый слушатель маяков. Хранит последний снимок состояния
// и опционально дёргает notify на каждый принятый маяк.
type Listener struct {
	port   int
	log    zerolog.Logger
	notify func(State)

	mu      sync.RWMutex
	last    *State
	running bool
	stopCh  chan struct{}
	pc      net.PacketConn
}

func New(port int, log zerolog.Logger) *Listener {
	if port == 0 {
		port = DefaultPort
	}
	return &Listener{port: port, log: log}
}

// OnState задаёт колбэк на каждый принятый маяк (до Start).
func (l *Listener) OnState(fn func(State)) { l.notify = fn }

// Start запускает фоновый приём маяков. Повторный Start — no-op.
func (l *Listener) Start() error {
	l.mu.Lock()
	if l.running {
		l.mu.Unlock()
		return nil
	}
	pc, err := net.ListenPacket("udp4", fmt.Sprintf(":%d", l.port))
	if err != nil {
		l.mu.Unlock()
		return fmt.Errorf("listen udp %d: %w", l.port, err)
	}
	l.pc = pc
	l.running = true
	l.stopCh = make(chan struct{})
	stopCh := l.stopCh
	l.mu.Unlock()

	go func() {
		buf := make([]byte, 2048)
		for {
			n, addr, err := pc.ReadFrom(buf)
			if err != nil {
				select {
				case <-stopCh:
					return
				default:
				}
				l.log.Warn().Err(err).Msg("discovery read failed")
				return
			}
			l.handleBeacon(buf[:n], addr)
		}
	}()
	return nil
}

// Stop останавливает приём. Повторный Stop — no-op.
func (l *Listener) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.running {
		return
	}
	l.running = false
	close(l.stopCh)
	_ = l.pc.Close()
	l.pc = nil
}

// Last — последний принятый снимок состояния.
func (l *Listener) Last() (State, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.last == nil {
		return State{}, false
	}
	return *l.last, true
}

func (l *Listener) handleBeacon(raw []byte, addr net.Addr) {
	env, err := vtsapi.DecodeEnvelope(raw)
	if err != nil {
		l.log.Debug().Err(err).Str("from", addr.String()).Msg("dropping non-beacon datagram")
		return
	}
	if env.MessageType != vtsapi.MessageTypeAPIStateBroadcast {
		return
	}
	var st State
	if err := env.DecodeData(&st); err != nil {
		l.log.Warn().Err(err).Msg("dropping undecodable beacon")
		return
	}

	l.mu.Lock()
	l.last = &st
	l.mu.Unlock()

	if l.notify != nil {
		l.notify(st)
	}
}
