package vtsapi

// ========================= authentication =========================

type AuthenticationTokenRequestData struct {
	PluginName      string `json:"pluginName"`
	PluginDeveloper string `json:"pluginDeveloper"`
	PluginIcon      string `json:"pluginIcon,omitempty"`
}

type AuthenticationTokenResponseData struct {
	AuthenticationToken string `json:"authenticationToken"`
}

type AuthenticationRequestData struct {
	PluginName          string `json:"pluginName"`
	PluginDeveloper     string `json:"pluginDeveloper"`
	AuthenticationToken string `json:"authenticationToken"`
}

type AuthenticationResponseData struct {
	Authenticated bool   `json:"authenticated"`
	Reason        string `json:"reason,omitempty"`
}

// ========================= statistics / folders =========================

type StatisticsRequestData struct{}

type StatisticsResponseData struct {
	Uptime             int64  `json:"uptime"`
	Framerate          int    `json:"framerate"`
	VTubeStudioVersion string `json:"vTubeStudioVersion"`
	AllowedPlugins     int    `json:"allowedPlugins"`
	ConnectedPlugins   int    `json:"connectedPlugins"`
	StartedWithSteam   bool   `json:"startedWithSteam"`
	WindowWidth        int    `json:"windowWidth"`
	WindowHeight       int    `json:"windowHeight"`
	WindowIsFullscreen bool   `json:"windowIsFullscreen"`
}

type VTSFolderInfoRequestData struct{}

type VTSFolderInfoResponseData struct {
	Models      string `json:"models"`
	Backgrounds string `json:"backgrounds"`
	Items       string `json:"items"`
	Config      string `json:"config"`
	Logs        string `json:"logs"`
	Backup      string `json:"backup"`
}

// ========================= models =========================

type ModelPosition struct {
	PositionX float64 `json:"positionX"`
	PositionY float64 `json:"positionY"`
	Rotation  float64 `json:"rotation"`
	Size      float64 `json:"size"`
}

type CurrentModelRequestData struct{}

type CurrentModelResponseData struct {
	ModelLoaded              bool          `json:"modelLoaded"`
	ModelName                string        `json:"modelName"`
	ModelID                  string        `json:"modelID"`
	VTSModelName             string        `json:"vtsModelName"`
	VTSModelIconName         string        `json:"vtsModelIconName"`
	Live2DModelName          string        `json:"live2DModelName"`
	ModelLoadTime            int64         `json:"modelLoadTime"`
	TimeSinceModelLoaded     int64         `json:"timeSinceModelLoaded"`
	NumberOfLive2DParameters int           `json:"numberOfLive2DParameters"`
	NumberOfLive2DArtmeshes  int           `json:"numberOfLive2DArtmeshes"`
	HasPhysicsFile           bool          `json:"hasPhysicsFile"`
	NumberOfTextures         int           `json:"numberOfTextures"`
	TextureResolution        int           `json:"textureResolution"`
	ModelPosition            ModelPosition `json:"modelPosition"`
}

type AvailableModelsRequestData struct{}

type AvailableModel struct {
	ModelLoaded      bool   `json:"modelLoaded"`
	ModelName        string `json:"modelName"`
	ModelID          string `json:"modelID"`
	VTSModelName     string `json:"vtsModelName"`
	VTSModelIconName string `json:"vtsModelIconName"`
}

type AvailableModelsResponseData struct {
	NumberOfModels  int              `json:"numberOfModels"`
	AvailableModels []AvailableModel `json:"availableModels"`
}

type ModelLoadRequestData struct {
	ModelID string `json:"modelID,omitempty"`
}

type ModelLoadResponseData struct {
	ModelID string `json:"modelID,omitempty"`
}

// MoveModelRequestData — поля-указатели различают «не двигать» и «ноль».
type MoveModelRequestData struct {
	TimeInSeconds            float64  `json:"timeInSeconds"`
	ValuesAreRelativeToModel bool     `json:"valuesAreRelativeToModel"`
	PositionX                *float64 `json:"positionX,omitempty"`
	PositionY                *float64 `json:"positionY,omitempty"`
	Rotation                 *float64 `json:"rotation,omitempty"`
	Size                     *float64 `json:"size,omitempty"`
}

type MoveModelResponseData struct{}

// ========================= hotkeys =========================

// HotkeyAction — тип действия хоткея (поле type в списке хоткеев).
type HotkeyAction int

const (
	HotkeyActionUnset                      HotkeyAction = -1
	HotkeyActionTriggerAnimation           HotkeyAction = 0
	HotkeyActionChangeIdleAnimation        HotkeyAction = 1
	HotkeyActionToggleExpression           HotkeyAction = 2
	HotkeyActionRemoveAllExpressions       HotkeyAction = 3
	HotkeyActionMoveModel                  HotkeyAction = 4
	HotkeyActionChangeBackground           HotkeyAction = 5
	HotkeyActionReloadMicrophone           HotkeyAction = 6
	HotkeyActionReloadTextures             HotkeyAction = 7
	HotkeyActionCalibrateCam               HotkeyAction = 8
	HotkeyActionChangeVTSModel             HotkeyAction = 9
	HotkeyActionTakeScreenshot             HotkeyAction = 10
	HotkeyActionScreenColorOverlay         HotkeyAction = 11
	HotkeyActionRemoveAllItems             HotkeyAction = 12
	HotkeyActionToggleItemScene            HotkeyAction = 13
	HotkeyActionDownloadRandomWorkshopItem HotkeyAction = 14
	HotkeyActionExecuteItemAction          HotkeyAction = 15
	HotkeyActionArtMeshColorPreset         HotkeyAction = 16
	HotkeyActionToggleTracker              HotkeyAction = 17
	HotkeyActionToggleTwitchFeature        HotkeyAction = 18
	HotkeyActionLoadEffectPreset           HotkeyAction = 19
	HotkeyActionToggleLive2DEditorAPI      HotkeyAction = 20
	HotkeyActionWebItemAction              HotkeyAction = 21
)

type HotkeysInCurrentModelRequestData struct {
	ModelID            string `json:"modelID,omitempty"`
	Live2DItemFileName string `json:"live2DItemFileName,omitempty"`
}

type AvailableHotkey struct {
	Name             string       `json:"name"`
	Type             HotkeyAction `json:"type"`
	Description      string       `json:"description"`
	File             string       `json:"file"`
	HotkeyID         string       `json:"hotkeyID"`
	KeyCombination   []string     `json:"keyCombination"`
	OnScreenButtonID int          `json:"onScreenButtonID"`
}

type HotkeysInCurrentModelResponseData struct {
	ModelLoaded      bool              `json:"modelLoaded"`
	ModelName        string            `json:"modelName"`
	ModelID          string            `json:"modelID"`
	AvailableHotkeys []AvailableHotkey `json:"availableHotkeys"`
}

type HotkeyTriggerRequestData struct {
	HotkeyID       string `json:"hotkeyID"`
	ItemInstanceID string `json:"itemInstanceID,omitempty"`
}

type HotkeyTriggerResponseData struct {
	HotkeyID string `json:"hotkeyID"`
}

// ========================= expressions =========================

type ExpressionStateRequestData struct {
	Details        bool   `json:"details"`
	ExpressionFile string `json:"expressionFile,omitempty"`
}

type ExpressionHotkey struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

type ExpressionParameter struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type Expression struct {
	Name                       string                `json:"name"`
	File                       string                `json:"file"`
	Active                     bool                  `json:"active"`
	DeactivateWhenKeyIsLetGo   bool                  `json:"deactivateWhenKeyIsLetGo"`
	AutoDeactivateAfterSeconds bool                  `json:"autoDeactivateAfterSeconds"`
	SecondsRemaining           float64               `json:"secondsRemaining"`
	UsedInHotkeys              []ExpressionHotkey    `json:"usedInHotkeys"`
	Parameters                 []ExpressionParameter `json:"parameters"`
}

type ExpressionStateResponseData struct {
	ModelLoaded bool         `json:"modelLoaded"`
	ModelName   string       `json:"modelName"`
	ModelID     string       `json:"modelID"`
	Expressions []Expression `json:"expressions"`
}

type ExpressionActivationRequestData struct {
	ExpressionFile string  `json:"expressionFile"`
	FadeTime       float64 `json:"fadeTime"`
	Active         bool    `json:"active"`
}

type ExpressionActivationResponseData struct{}

// ========================= parameters =========================

type ParameterValueRequestData struct {
	Name string `json:"name"`
}

type ParameterValueResponseData struct {
	Name         string  `json:"name"`
	AddedBy      string  `json:"addedBy"`
	Value        float64 `json:"value"`
	Min          float64 `json:"min"`
	Max          float64 `json:"max"`
	DefaultValue float64 `json:"defaultValue"`
}

// ParameterMode — режим инъекции параметра.
type ParameterMode string

const (
	ParameterModeSet ParameterMode = "set"
	ParameterModeAdd ParameterMode = "add"
)

type ParameterValue struct {
	ID     string   `json:"id"`
	Value  float64  `json:"value"`
	Weight *float64 `json:"weight,omitempty"`
}

type InjectParameterDataRequestData struct {
	FaceFound       bool             `json:"faceFound"`
	Mode            ParameterMode    `json:"mode"`
	ParameterValues []ParameterValue `json:"parameterValues"`
}

type InjectParameterDataResponseData struct{}

// ========================= items =========================

type ItemType string

const (
	ItemTypePNG             ItemType = "PNG"
	ItemTypeJPEG            ItemType = "JPEG"
	ItemTypeGIF             ItemType = "GIF"
	ItemTypeLive2D          ItemType = "Live2D"
	ItemTypeAnimationFolder ItemType = "AnimationFolder"
	ItemTypeUnknown         ItemType = "Unknown"
)

type ItemInstance struct {
	FileName        string   `json:"fileName"`
	InstanceID      string   `json:"instanceID"`
	Order           int      `json:"order"`
	Type            ItemType `json:"type"`
	Censored        bool     `json:"censored"`
	Flipped         bool     `json:"flipped"`
	Locked          bool     `json:"locked"`
	Smoothing       float64  `json:"smoothing"`
	Framerate       float64  `json:"framerate"`
	FrameCount      int      `json:"frameCount"`
	CurrentFrame    int      `json:"currentFrame"`
	PinnedToModel   bool     `json:"pinnedToModel"`
	PinnedModelID   string   `json:"pinnedModelID"`
	PinnedArtMeshID string   `json:"pinnedArtMeshID"`
	GroupName       string   `json:"groupName"`
	SceneName       string   `json:"sceneName"`
	FromWorkshop    bool     `json:"fromWorkshop"`
}

type ItemFile struct {
	FileName    string   `json:"fileName"`
	Type        ItemType `json:"type"`
	LoadedCount int      `json:"loadedCount"`
}

type ItemListRequestData struct {
	IncludeAvailableSpots       bool   `json:"includeAvailableSpots"`
	IncludeItemInstancesInScene bool   `json:"includeItemInstancesInScene"`
	IncludeAvailableItemFiles   bool   `json:"includeAvailableItemFiles"`
	OnlyItemsWithFileName       string `json:"onlyItemsWithFileName,omitempty"`
}

type ItemListResponseData struct {
	ItemsInSceneCount      int            `json:"itemsInSceneCount"`
	TotalItemsAllowedCount int            `json:"totalItemsAllowedCount"`
	CanLoadItemsRightNow   bool           `json:"canLoadItemsRightNow"`
	AvailableSpots         []int          `json:"availableSpots"`
	ItemInstancesInScene   []ItemInstance `json:"itemInstancesInScene"`
	AvailableItemFiles     []ItemFile     `json:"availableItemFiles"`
}

// ========================= scenes (backgrounds) =========================

type SceneListRequestData struct{}

type Scene struct {
	SceneName string `json:"sceneName"`
}

type SceneListResponseData struct {
	CurrentSceneName string  `json:"currentSceneName"`
	Scenes           []Scene `json:"scenes"`
}

// ========================= event subscription =========================

// EventSubscriptionRequestData — единственное место в протоколе, где
// событие адресуется полем eventName; во входящих конвертах дискриминант
// всегда messageType.
type EventSubscriptionRequestData struct {
	EventName EventType `json:"eventName"`
	Subscribe bool      `json:"subscribe"`
	Config    any       `json:"config,omitempty"`
}

type EventSubscriptionResponseData struct {
	SubscribedEventCount int         `json:"subscribedEventCount"`
	SubscribedEvents     []EventType `json:"subscribedEvents"`
}
