package vtsclient

import (
	"context"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/EgorLis/govts/internal/vtsapi"
)

const (
	defaultHost        = "localhost"
	defaultPort        = 8001
	defaultCallTimeout = 30 * time.Second

	// ёмкость очереди диспетчера: приёмный цикл никогда не блокируется,
	// переполнение — дроп события с предупреждением
	eventQueueSize = 256
)

type Config struct {
	PluginName      string `json:"plugin_name"`
	PluginDeveloper string `json:"plugin_developer"`
	PluginIcon      string `json:"plugin_icon,omitempty"`
	Host            string `json:"host"`
	Port            int    `json:"port"`
	AuthToken       string `json:"auth_token,omitempty"`
	TokenFile       string `json:"token_file,omitempty"`
	SaveToken       bool   `json:"save_token"`
}

// VTS — сессия одного WebSocket-соединения с VTube Studio: владеет сокетом,
// таблицей ожидающих запросов, реестром обработчиков событий и состоянием
// аутентификации.
type VTS struct {
	cfg         Config
	callTimeout time.Duration
	store       TokenStore
	log         zerolog.Logger

	mu        sync.Mutex // conn, lifecycle, pending, token
	conn      *websocket.Conn
	started   bool
	stopCh    chan struct{}
	closeOnce *sync.Once
	pending   map[string]chan callResult
	token     string

	wmu sync.Mutex // сериализует запись в websocket

	hmu      sync.Mutex
	handlers map[vtsapi.EventType][]EventHandler

	queue chan invocation

	connected     atomic.Bool
	authenticated atomic.Bool
	counter       atomic.Uint64
}

func New(cfg Config) *VTS {
	if cfg.Host == "" {
		cfg.Host = defaultHost
	}
	if cfg.Port == 0 {
		cfg.Port = defaultPort
	}
	return &VTS{
		cfg:         cfg,
		callTimeout: defaultCallTimeout,
		store:       FileTokenStore{},
		log: zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05.000"}).
			With().Timestamp().Str("component", "vtsclient").Logger(),
		handlers: make(map[vtsapi.EventType][]EventHandler),
	}
}

// SetLogger подменяет логгер сессии (до Start).
func (v *VTS) SetLogger(log zerolog.Logger) { v.log = log }

// SetTokenStore подменяет хранилище токена (до Start).
func (v *VTS) SetTokenStore(store TokenStore) { v.store = store }

// SetCallTimeout задаёт таймаут по умолчанию для Call без дедлайна.
func (v *VTS) SetCallTimeout(d time.Duration) {
	if d > 0 {
		v.callTimeout = d
	}
}

func (v *VTS) Connected() bool     { return v.connected.Load() }
func (v *VTS) Authenticated() bool { return v.authenticated.Load() }

// Token — токен, которым сессия аутентифицирована (пусто до Start).
func (v *VTS) Token() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.token
}

// Start открывает сокет, запускает приёмный цикл и диспетчер событий,
// проходит аутентификацию и возвращает действующий токен.
// Повторный Start на запущенной сессии — ErrAlreadyConnected; после Close
// можно стартовать заново.
func (v *VTS) Start(ctx context.Context) (string, error) {
	v.mu.Lock()
	if v.started {
		v.mu.Unlock()
		return "", ErrAlreadyConnected
	}
	v.started = true
	v.mu.Unlock()

	v.log.Info().Str("url", v.wsURL()).Msg("connecting to VTube Studio")
	conn, err := v.dial(ctx)
	if err != nil {
		v.mu.Lock()
		v.started = false
		v.mu.Unlock()
		return "", fmt.Errorf("connect to VTube Studio: %w", err)
	}

	stopCh := make(chan struct{})
	queue := make(chan invocation, eventQueueSize)

	v.mu.Lock()
	v.conn = conn
	v.stopCh = stopCh
	v.closeOnce = new(sync.Once)
	v.pending = make(map[string]chan callResult)
	v.queue = queue
	v.mu.Unlock()
	v.connected.Store(true)

	go v.readLoop(conn, stopCh, queue)
	go v.dispatchLoop(stopCh, queue)

	token, err := v.authenticate(ctx)
	if err != nil {
		v.teardown(ErrConnectionClosed)
		return "", err
	}
	v.log.Info().Msg("authenticated with VTube Studio")
	return token, nil
}

// Close закрывает сессию: останавливает оба цикла, закрывает сокет и
// отклоняет все ожидающие запросы. Повторный Close — no-op.
func (v *VTS) Close() error {
	v.mu.Lock()
	started := v.started
	v.mu.Unlock()
	if !started {
		return nil
	}
	v.teardown(ErrConnectionClosed)
	return nil
}

// teardown — единственный путь разборки сессии; выполняется не более
// одного раза на поколение соединения, из Close и из приёмного цикла.
func (v *VTS) teardown(cause error) {
	v.mu.Lock()
	once := v.closeOnce
	v.mu.Unlock()
	if once == nil {
		return
	}
	once.Do(func() {
		v.connected.Store(false)
		v.authenticated.Store(false)

		v.mu.Lock()
		conn := v.conn
		stopCh := v.stopCh
		v.conn = nil
		v.started = false
		v.mu.Unlock()

		close(stopCh)
		if conn != nil {
			v.closeConn(conn)
		}
		v.failPending(cause)
		v.log.Info().Msg("disconnected from VTube Studio")
	})
}
