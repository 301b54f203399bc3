// Package vts — публичная поверхность библиотеки.
// Реэкспортирует клиент и типы протокола из internal-пакетов,
// чтобы пользователю хватало одного импорта.
package vts

import (
	"github.com/rs/zerolog"

	"github.com/EgorLis/govts/internal/discovery"
	"github.com/EgorLis/govts/internal/vtsapi"
	"github.com/EgorLis/govts/internal/vtsclient"
)

// ========================= клиент =========================

type (
	Client       = vtsclient.VTS
	Config       = vtsclient.Config
	Event        = vtsclient.Event
	EventHandler = vtsclient.EventHandler
	TokenStore   = vtsclient.TokenStore
	// FileTokenStore хранит токен в обычном файле.
	FileTokenStore = vtsclient.FileTokenStore
	RequestError   = vtsclient.RequestError
	AuthError      = vtsclient.AuthError
)

// New создаёт клиента с конфигом cfg.
func New(cfg Config) *Client { return vtsclient.New(cfg) }

var (
	ErrNotConnected     = vtsclient.ErrNotConnected
	ErrAlreadyConnected = vtsclient.ErrAlreadyConnected
	ErrConnectionClosed = vtsclient.ErrConnectionClosed
	ErrTimeout          = vtsclient.ErrTimeout
	ErrHandlerNotFound  = vtsclient.ErrHandlerNotFound
)

// ========================= протокол =========================

type (
	MessageType = vtsapi.MessageType
	ErrorCode   = vtsapi.ErrorCode
	EventType   = vtsapi.EventType
)

const (
	EventTest                        = vtsapi.EventTypeTest
	EventModelLoaded                 = vtsapi.EventTypeModelLoaded
	EventTrackingStatusChanged       = vtsapi.EventTypeTrackingStatusChanged
	EventBackgroundChanged           = vtsapi.EventTypeBackgroundChanged
	EventModelConfigChanged          = vtsapi.EventTypeModelConfigChanged
	EventModelMoved                  = vtsapi.EventTypeModelMoved
	EventModelOutline                = vtsapi.EventTypeModelOutline
	EventHotkeyTriggered             = vtsapi.EventTypeHotkeyTriggered
	EventModelAnimation              = vtsapi.EventTypeModelAnimation
	EventItem                        = vtsapi.EventTypeItem
	EventModelClicked                = vtsapi.EventTypeModelClicked
	EventPostProcessing              = vtsapi.EventTypePostProcessing
	EventLive2DCubismEditorConnected = vtsapi.EventTypeLive2DCubismEditorConnected
)

// Часто используемые структуры данных запросов и событий.
type (
	StatisticsResponseData            = vtsapi.StatisticsResponseData
	VTSFolderInfoResponseData         = vtsapi.VTSFolderInfoResponseData
	CurrentModelResponseData          = vtsapi.CurrentModelResponseData
	AvailableModelsResponseData       = vtsapi.AvailableModelsResponseData
	AvailableModel                    = vtsapi.AvailableModel
	ModelPosition                     = vtsapi.ModelPosition
	MoveModelRequestData              = vtsapi.MoveModelRequestData
	HotkeyAction                      = vtsapi.HotkeyAction
	AvailableHotkey                   = vtsapi.AvailableHotkey
	HotkeysInCurrentModelRequestData  = vtsapi.HotkeysInCurrentModelRequestData
	HotkeysInCurrentModelResponseData = vtsapi.HotkeysInCurrentModelResponseData
	Expression                        = vtsapi.Expression
	ExpressionStateRequestData        = vtsapi.ExpressionStateRequestData
	ExpressionStateResponseData       = vtsapi.ExpressionStateResponseData
	ParameterValue                    = vtsapi.ParameterValue
	ParameterValueResponseData        = vtsapi.ParameterValueResponseData
	ParameterMode                     = vtsapi.ParameterMode
	InjectParameterDataRequestData    = vtsapi.InjectParameterDataRequestData
	ItemType                          = vtsapi.ItemType
	ItemInstance                      = vtsapi.ItemInstance
	ItemFile                          = vtsapi.ItemFile
	ItemListRequestData               = vtsapi.ItemListRequestData
	ItemListResponseData              = vtsapi.ItemListResponseData
	Scene                             = vtsapi.Scene
	SceneListResponseData             = vtsapi.SceneListResponseData

	TestEventData                        = vtsapi.TestEventData
	ModelLoadedEventData                 = vtsapi.ModelLoadedEventData
	TrackingStatusChangedEventData       = vtsapi.TrackingStatusChangedEventData
	BackgroundChangedEventData           = vtsapi.BackgroundChangedEventData
	ModelConfigChangedEventData          = vtsapi.ModelConfigChangedEventData
	ModelMovedEventData                  = vtsapi.ModelMovedEventData
	ModelOutlineEventData                = vtsapi.ModelOutlineEventData
	HotkeyTriggeredEventData             = vtsapi.HotkeyTriggeredEventData
	ModelAnimationEventData              = vtsapi.ModelAnimationEventData
	ItemEventData                        = vtsapi.ItemEventData
	ModelClickedEventData                = vtsapi.ModelClickedEventData
	PostProcessingEventData              = vtsapi.PostProcessingEventData
	Live2DCubismEditorConnectedEventData = vtsapi.Live2DCubismEditorConnectedEventData

	TestEventConfig           = vtsapi.TestEventConfig
	ModelOutlineEventConfig   = vtsapi.ModelOutlineEventConfig
	ModelAnimationEventConfig = vtsapi.ModelAnimationEventConfig
	ItemEventConfig           = vtsapi.ItemEventConfig
	ModelClickedEventConfig   = vtsapi.ModelClickedEventConfig
)

// ========================= discovery =========================

type (
	APIState          = discovery.State
	DiscoveryListener = discovery.Listener
)

// DiscoveryPort — стандартный UDP-порт широковещательных пакетов состояния API.
const DiscoveryPort = discovery.DefaultPort

// NewDiscovery создаёт слушателя UDP-маячков на порту port (0 — порт по умолчанию).
func NewDiscovery(port int) *DiscoveryListener {
	return discovery.New(port, zerolog.Nop())
}
