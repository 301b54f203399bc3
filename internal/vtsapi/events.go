package vtsapi

// EventType — дискриминант пуш-событий (значение messageType конверта).
type EventType string

const (
	EventTypeTest                        EventType = "TestEvent"
	EventTypeModelLoaded                 EventType = "ModelLoadedEvent"
	EventTypeTrackingStatusChanged       EventType = "TrackingStatusChangedEvent"
	EventTypeBackgroundChanged           EventType = "BackgroundChangedEvent"
	EventTypeModelConfigChanged          EventType = "ModelConfigChangedEvent"
	EventTypeModelMoved                  EventType = "ModelMovedEvent"
	EventTypeModelOutline                EventType = "ModelOutlineEvent"
	EventTypeHotkeyTriggered             EventType = "HotkeyTriggeredEvent"
	EventTypeModelAnimation              EventType = "ModelAnimationEvent"
	EventTypeItem                        EventType = "ItemEvent"
	EventTypeModelClicked                EventType = "ModelClickedEvent"
	EventTypePostProcessing              EventType = "PostProcessingEvent"
	EventTypeLive2DCubismEditorConnected EventType = "Live2DCubismEditorConnectedEvent"
)

// ========================= payload-схемы событий =========================

type TestEventData struct {
	YourTestMessage string `json:"yourTestMessage"`
	Counter         int    `json:"counter"`
}

type ModelLoadedEventData struct {
	ModelLoaded bool   `json:"modelLoaded"`
	ModelName   string `json:"modelName"`
	ModelID     string `json:"modelID"`
}

type TrackingStatusChangedEventData struct {
	FaceFound      bool `json:"faceFound"`
	LeftHandFound  bool `json:"leftHandFound"`
	RightHandFound bool `json:"rightHandFound"`
}

type BackgroundChangedEventData struct {
	BackgroundName string `json:"backgroundName"`
}

type ModelConfigChangedEventData struct {
	ModelID             string `json:"modelID"`
	ModelName           string `json:"modelName"`
	HotkeyConfigChanged bool   `json:"hotkeyConfigChanged"`
}

type ModelMovedEventData struct {
	ModelID       string        `json:"modelID"`
	ModelName     string        `json:"modelName"`
	ModelPosition ModelPosition `json:"modelPosition"`
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type ModelOutlineEventData struct {
	ModelID          string  `json:"modelID"`
	ModelName        string  `json:"modelName"`
	ConvexHull       []Point `json:"convexHull"`
	ConvexHullCenter Point   `json:"convexHullCenter"`
	WindowSize       Point   `json:"windowSize"`
}

type HotkeyTriggeredEventData struct {
	HotkeyID             string       `json:"hotkeyID"`
	HotkeyName           string       `json:"hotkeyName"`
	HotkeyAction         HotkeyAction `json:"hotkeyAction"`
	HotkeyFile           string       `json:"hotkeyFile"`
	HotkeyTriggeredByAPI bool         `json:"hotkeyTriggeredByAPI"`
	ModelID              string       `json:"modelID"`
	ModelName            string       `json:"modelName"`
	IsLive2DItem         bool         `json:"isLive2DItem"`
}

type AnimationEventType string

const (
	AnimationEventCustom AnimationEventType = "Custom"
	AnimationEventStart  AnimationEventType = "Start"
	AnimationEventEnd    AnimationEventType = "End"
)

type ModelAnimationEventData struct {
	AnimationEventType AnimationEventType `json:"animationEventType"`
	AnimationEventTime float64            `json:"animationEventTime"`
	AnimationEventData string             `json:"animationEventData"`
	AnimationName      string             `json:"animationName"`
	AnimationLength    float64            `json:"animationLength"`
	IsIdleAnimation    bool               `json:"isIdleAnimation"`
	ModelID            string             `json:"modelID"`
	ModelName          string             `json:"modelName"`
	IsLive2DItem       bool               `json:"isLive2DItem"`
}

type ItemEventType string

const (
	ItemEventAdded           ItemEventType = "Added"
	ItemEventRemoved         ItemEventType = "Removed"
	ItemEventDroppedPinned   ItemEventType = "DroppedPinned"
	ItemEventDroppedUnpinned ItemEventType = "DroppedUnpinned"
	ItemEventClicked         ItemEventType = "Clicked"
	ItemEventLocked          ItemEventType = "Locked"
	ItemEventUnlocked        ItemEventType = "Unlocked"
)

type ItemEventData struct {
	ItemEventType  ItemEventType `json:"itemEventType"`
	ItemInstanceID string        `json:"itemInstanceID"`
	ItemFileName   string        `json:"itemFileName"`
	ItemPosition   Point         `json:"itemPosition"`
}

type MouseButtonID int

const (
	MouseButtonLeft   MouseButtonID = 0
	MouseButtonRight  MouseButtonID = 1
	MouseButtonMiddle MouseButtonID = 2
)

type HitInfo struct {
	ModelID       string  `json:"modelID"`
	ArtMeshID     string  `json:"artMeshID"`
	Angle         float64 `json:"angle"`
	Size          float64 `json:"size"`
	VertexID1     int     `json:"vertexID1"`
	VertexID2     int     `json:"vertexID2"`
	VertexID3     int     `json:"vertexID3"`
	VertexWeight1 float64 `json:"vertexWeight1"`
	VertexWeight2 float64 `json:"vertexWeight2"`
	VertexWeight3 float64 `json:"vertexWeight3"`
}

type ArtMeshHit struct {
	ArtMeshOrder int     `json:"artMeshOrder"`
	IsMasked     bool    `json:"isMasked"`
	HitInfo      HitInfo `json:"hitInfo"`
}

type ModelClickedEventData struct {
	ModelLoaded         bool          `json:"modelLoaded"`
	LoadedModelID       string        `json:"loadedModelID"`
	LoadedModelName     string        `json:"loadedModelName"`
	ModelWasClicked     bool          `json:"modelWasClicked"`
	MouseButtonID       MouseButtonID `json:"mouseButtonID"`
	ClickPosition       Point         `json:"clickPosition"`
	WindowSize          Point         `json:"windowSize"`
	ClickedArtMeshCount int           `json:"clickedArtMeshCount"`
	ArtMeshHits         []ArtMeshHit  `json:"artMeshHits"`
}

type PostProcessingEventData struct {
	CurrentState  bool   `json:"currentState"`
	CurrentPreset string `json:"currentPreset"`
}

type Live2DCubismEditorConnectedEventData struct {
	TryingToConnect      bool `json:"tryingToConnect"`
	Connected            bool `json:"connected"`
	ShouldSendParameters bool `json:"shouldSendParameters"`
}

// ========================= event config (для подписки) =========================

type TestEventConfig struct {
	TestMessageForEvent string `json:"testMessageForEvent,omitempty"`
}

type ModelOutlineEventConfig struct {
	Draw *bool `json:"draw,omitempty"`
}

type ModelAnimationEventConfig struct {
	IgnoreLive2DItems    bool `json:"ignoreLive2DItems"`
	IgnoreIdleAnimations bool `json:"ignoreIdleAnimations"`
}

type ItemEventConfig struct {
	ItemInstanceIDs []string `json:"itemInstanceIDs,omitempty"`
	ItemFileNames   []string `json:"itemFileNames,omitempty"`
}

type ModelClickedEventConfig struct {
	OnlyClicksOnModel *bool `json:"onlyClicksOnModel,omitempty"`
}

// ========================= реестр схем =========================

// eventPayloads — неизменяемая таблица «тип события → конструктор схемы».
// Инициализируется один раз, после старта только читается.
var eventPayloads = map[EventType]func() any{
	EventTypeTest:                        func() any { return new(TestEventData) },
	EventTypeModelLoaded:                 func() any { return new(ModelLoadedEventData) },
	EventTypeTrackingStatusChanged:       func() any { return new(TrackingStatusChangedEventData) },
	EventTypeBackgroundChanged:           func() any { return new(BackgroundChangedEventData) },
	EventTypeModelConfigChanged:          func() any { return new(ModelConfigChangedEventData) },
	EventTypeModelMoved:                  func() any { return new(ModelMovedEventData) },
	EventTypeModelOutline:                func() any { return new(ModelOutlineEventData) },
	EventTypeHotkeyTriggered:             func() any { return new(HotkeyTriggeredEventData) },
	EventTypeModelAnimation:              func() any { return new(ModelAnimationEventData) },
	EventTypeItem:                        func() any { return new(ItemEventData) },
	EventTypeModelClicked:                func() any { return new(ModelClickedEventData) },
	EventTypePostProcessing:              func() any { return new(PostProcessingEventData) },
	EventTypeLive2DCubismEditorConnected: func() any { return new(Live2DCubismEditorConnectedEventData) },
}

// KnownEventType — messageType относится к каталогу событий.
func KnownEventType(t MessageType) bool {
	_, ok := eventPayloads[EventType(t)]
	return ok
}

// NewEventData возвращает пустую схему payload для типа события.
func NewEventData(t EventType) (any, bool) {
	ctor, ok := eventPayloads[t]
	if !ok {
		return nil, false
	}
	return ctor(), true
}
