package vtsclient

import (
	"context"

	"github.com/EgorLis/govts/internal/vtsapi"
)

// ========================= high-level API =========================

// RequestAuthenticationToken запрашивает новый токен плагина. VTube Studio
// показывает пользователю диалог подтверждения, так что ответ может идти
// десятки секунд — задайте дедлайн через ctx при необходимости.
func (v *VTS) RequestAuthenticationToken(ctx context.Context) (string, error) {
	var out vtsapi.AuthenticationTokenResponseData
	err := v.Call(ctx, vtsapi.MessageTypeAuthenticationTokenRequest,
		vtsapi.AuthenticationTokenRequestData{
			PluginName:      v.cfg.PluginName,
			PluginDeveloper: v.cfg.PluginDeveloper,
			PluginIcon:      v.cfg.PluginIcon,
		}, &out)
	if err != nil {
		return "", err
	}
	return out.AuthenticationToken, nil
}

// Authenticate аутентифицирует текущее соединение данным токеном.
func (v *VTS) Authenticate(ctx context.Context, token string) (*vtsapi.AuthenticationResponseData, error) {
	var out vtsapi.AuthenticationResponseData
	err := v.Call(ctx, vtsapi.MessageTypeAuthenticationRequest,
		vtsapi.AuthenticationRequestData{
			PluginName:          v.cfg.PluginName,
			PluginDeveloper:     v.cfg.PluginDeveloper,
			AuthenticationToken: token,
		}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (v *VTS) Statistics(ctx context.Context) (*vtsapi.StatisticsResponseData, error) {
	var out vtsapi.StatisticsResponseData
	if err := v.Call(ctx, vtsapi.MessageTypeStatisticsRequest, vtsapi.StatisticsRequestData{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (v *VTS) FolderInfo(ctx context.Context) (*vtsapi.VTSFolderInfoResponseData, error) {
	var out vtsapi.VTSFolderInfoResponseData
	if err := v.Call(ctx, vtsapi.MessageTypeVTSFolderInfoRequest, vtsapi.VTSFolderInfoRequestData{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (v *VTS) CurrentModel(ctx context.Context) (*vtsapi.CurrentModelResponseData, error) {
	var out vtsapi.CurrentModelResponseData
	if err := v.Call(ctx, vtsapi.MessageTypeCurrentModelRequest, vtsapi.CurrentModelRequestData{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (v *VTS) AvailableModels(ctx context.Context) (*vtsapi.AvailableModelsResponseData, error) {
	var out vtsapi.AvailableModelsResponseData
	if err := v.Call(ctx, vtsapi.MessageTypeAvailableModelsRequest, vtsapi.AvailableModelsRequestData{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LoadModel загружает модель по id (пустой id — перезагрузка текущей).
func (v *VTS) LoadModel(ctx context.Context, modelID string) (*vtsapi.ModelLoadResponseData, error) {
	var out vtsapi.ModelLoadResponseData
	err := v.Call(ctx, vtsapi.MessageTypeModelLoadRequest,
		vtsapi.ModelLoadRequestData{ModelID: modelID}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (v *VTS) MoveModel(ctx context.Context, data vtsapi.MoveModelRequestData) error {
	return v.Call(ctx, vtsapi.MessageTypeMoveModelRequest, data, nil)
}

func (v *VTS) HotkeysInCurrentModel(ctx context.Context, data vtsapi.HotkeysInCurrentModelRequestData) (*vtsapi.HotkeysInCurrentModelResponseData, error) {
	var out vtsapi.HotkeysInCurrentModelResponseData
	if err := v.Call(ctx, vtsapi.MessageTypeHotkeysInCurrentModelRequest, data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TriggerHotkey запускает хоткей и возвращает его id из ответа.
func (v *VTS) TriggerHotkey(ctx context.Context, hotkeyID string) (string, error) {
	var out vtsapi.HotkeyTriggerResponseData
	err := v.Call(ctx, vtsapi.MessageTypeHotkeyTriggerRequest,
		vtsapi.HotkeyTriggerRequestData{HotkeyID: hotkeyID}, &out)
	if err != nil {
		return "", err
	}
	return out.HotkeyID, nil
}

func (v *VTS) ExpressionState(ctx context.Context, data vtsapi.ExpressionStateRequestData) (*vtsapi.ExpressionStateResponseData, error) {
	var out vtsapi.ExpressionStateResponseData
	if err := v.Call(ctx, vtsapi.MessageTypeExpressionStateRequest, data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (v *VTS) ActivateExpression(ctx context.Context, expressionFile string, active bool) error {
	return v.Call(ctx, vtsapi.MessageTypeExpressionActivationRequest,
		vtsapi.ExpressionActivationRequestData{
			ExpressionFile: expressionFile,
			FadeTime:       0.25,
			Active:         active,
		}, nil)
}

func (v *VTS) ParameterValue(ctx context.Context, name string) (*vtsapi.ParameterValueResponseData, error) {
	var out vtsapi.ParameterValueResponseData
	err := v.Call(ctx, vtsapi.MessageTypeParameterValueRequest,
		vtsapi.ParameterValueRequestData{Name: name}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (v *VTS) InjectParameterData(ctx context.Context, data vtsapi.InjectParameterDataRequestData) error {
	if data.Mode == "" {
		data.Mode = vtsapi.ParameterModeSet
	}
	return v.Call(ctx, vtsapi.MessageTypeInjectParameterDataRequest, data, nil)
}

func (v *VTS) ItemList(ctx context.Context, data vtsapi.ItemListRequestData) (*vtsapi.ItemListResponseData, error) {
	var out vtsapi.ItemListResponseData
	if err := v.Call(ctx, vtsapi.MessageTypeItemListRequest, data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SceneList возвращает список фоновых сцен и имя текущей.
func (v *VTS) SceneList(ctx context.Context) (*vtsapi.SceneListResponseData, error) {
	var out vtsapi.SceneListResponseData
	if err := v.Call(ctx, vtsapi.MessageTypeSceneListRequest, vtsapi.SceneListRequestData{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SubscribeEvent подписывает сессию на пуш-события типа t. config —
// опциональная схема настройки конкретного события (например
// *vtsapi.ModelAnimationEventConfig), nil для событий без настроек.
func (v *VTS) SubscribeEvent(ctx context.Context, t vtsapi.EventType, config any) (*vtsapi.EventSubscriptionResponseData, error) {
	return v.subscribe(ctx, t, true, config)
}

// UnsubscribeEvent отменяет подписку на события типа t.
func (v *VTS) UnsubscribeEvent(ctx context.Context, t vtsapi.EventType) (*vtsapi.EventSubscriptionResponseData, error) {
	return v.subscribe(ctx, t, false, nil)
}

func (v *VTS) subscribe(ctx context.Context, t vtsapi.EventType, on bool, config any) (*vtsapi.EventSubscriptionResponseData, error) {
	var out vtsapi.EventSubscriptionResponseData
	err := v.Call(ctx, vtsapi.MessageTypeEventSubscriptionRequest,
		vtsapi.EventSubscriptionRequestData{
			EventName: t,
			Subscribe: on,
			Config:    config,
		}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
