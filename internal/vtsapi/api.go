package vtsapi

import (
	"encoding/json"
	"fmt"
)

// Константы публичного API VTube Studio. Кадр с другими значениями
// отбрасывается ещё до разбора payload.
const (
	APIName    = "VTubeStudioPublicAPI"
	APIVersion = "1.0"
)

// MessageType — дискриминант полезной нагрузки конверта.
type MessageType string

const (
	MessageTypeAPIError MessageType = "APIError"

	// широковещательный маяк состояния API (UDP, не WebSocket)
	MessageTypeAPIStateBroadcast MessageType = "VTubeStudioAPIStateBroadcast"

	MessageTypeAuthenticationRequest       MessageType = "AuthenticationRequest"
	MessageTypeAuthenticationResponse      MessageType = "AuthenticationResponse"
	MessageTypeAuthenticationTokenRequest  MessageType = "AuthenticationTokenRequest"
	MessageTypeAuthenticationTokenResponse MessageType = "AuthenticationTokenResponse"

	MessageTypeStatisticsRequest     MessageType = "StatisticsRequest"
	MessageTypeStatisticsResponse    MessageType = "StatisticsResponse"
	MessageTypeVTSFolderInfoRequest  MessageType = "VTSFolderInfoRequest"
	MessageTypeVTSFolderInfoResponse MessageType = "VTSFolderInfoResponse"

	MessageTypeCurrentModelRequest           MessageType = "CurrentModelRequest"
	MessageTypeCurrentModelResponse          MessageType = "CurrentModelResponse"
	MessageTypeAvailableModelsRequest        MessageType = "AvailableModelsRequest"
	MessageTypeAvailableModelsResponse       MessageType = "AvailableModelsResponse"
	MessageTypeModelLoadRequest              MessageType = "ModelLoadRequest"
	MessageTypeModelLoadResponse             MessageType = "ModelLoadResponse"
	MessageTypeMoveModelRequest              MessageType = "MoveModelRequest"
	MessageTypeMoveModelResponse             MessageType = "MoveModelResponse"
	MessageTypeHotkeysInCurrentModelRequest  MessageType = "HotkeysInCurrentModelRequest"
	MessageTypeHotkeysInCurrentModelResponse MessageType = "HotkeysInCurrentModelResponse"
	MessageTypeHotkeyTriggerRequest          MessageType = "HotkeyTriggerRequest"
	MessageTypeHotkeyTriggerResponse         MessageType = "HotkeyTriggerResponse"

	MessageTypeExpressionStateRequest       MessageType = "ExpressionStateRequest"
	MessageTypeExpressionStateResponse      MessageType = "ExpressionStateResponse"
	MessageTypeExpressionActivationRequest  MessageType = "ExpressionActivationRequest"
	MessageTypeExpressionActivationResponse MessageType = "ExpressionActivationResponse"

	MessageTypeParameterValueRequest       MessageType = "ParameterValueRequest"
	MessageTypeParameterValueResponse      MessageType = "ParameterValueResponse"
	MessageTypeInjectParameterDataRequest  MessageType = "InjectParameterDataRequest"
	MessageTypeInjectParameterDataResponse MessageType = "InjectParameterDataResponse"

	MessageTypeItemListRequest  MessageType = "ItemListRequest"
	MessageTypeItemListResponse MessageType = "ItemListResponse"

	MessageTypeSceneListRequest  MessageType = "SceneListRequest"
	MessageTypeSceneListResponse MessageType = "SceneListResponse"

	MessageTypeEventSubscriptionRequest  MessageType = "EventSubscriptionRequest"
	MessageTypeEventSubscriptionResponse MessageType = "EventSubscriptionResponse"
)

// Request — исходящий конверт. RequestID назначает клиент, сервер его
// эхо-возвращает в ответе.
type Request struct {
	APIName     string      `json:"apiName"`
	APIVersion  string      `json:"apiVersion"`
	RequestID   string      `json:"requestID,omitempty"`
	MessageType MessageType `json:"messageType"`
	Data        any         `json:"data,omitempty"`
}

// NewRequest собирает конверт с константами API.
func NewRequest(msgType MessageType, data any) *Request {
	return &Request{
		APIName:     APIName,
		APIVersion:  APIVersion,
		MessageType: msgType,
		Data:        data,
	}
}

// Envelope — входящий конверт. Data разбирается отложенно: сначала читаем
// requestID/messageType, потом выбираем конкретную схему.
type Envelope struct {
	APIName     string          `json:"apiName"`
	APIVersion  string          `json:"apiVersion"`
	Timestamp   int64           `json:"timestamp"`
	RequestID   string          `json:"requestID"`
	MessageType MessageType     `json:"messageType"`
	Data        json.RawMessage `json:"data"`
}

// DecodeEnvelope разбирает сырой текстовый кадр и проверяет константы API.
func DecodeEnvelope(raw []byte) (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}
	if env.APIName != APIName || env.APIVersion != APIVersion {
		return nil, fmt.Errorf("decode envelope: unexpected api %q/%q", env.APIName, env.APIVersion)
	}
	return &env, nil
}

// IsError — конверт несёт структурную ошибку вместо полезного ответа.
func (e *Envelope) IsError() bool {
	return e.MessageType == MessageTypeAPIError
}

// DecodeData разбирает полезную нагрузку в out.
func (e *Envelope) DecodeData(out any) error {
	if len(e.Data) == 0 {
		return nil
	}
	return json.Unmarshal(e.Data, out)
}

// ErrorData — структурная ошибка из ответа APIError.
type ErrorData struct {
	ErrorID ErrorCode `json:"errorID"`
	Message string    `json:"message"`
}
