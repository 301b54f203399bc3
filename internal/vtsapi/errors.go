package vtsapi

import "strconv"

// ErrorCode — код ошибки из ответа APIError.
type ErrorCode int

const (
	ErrorNone ErrorCode = 0

	ErrorInvalidRequest                  ErrorCode = 1
	ErrorRequestedItemNotFound           ErrorCode = 2
	ErrorMissingParameterInRequest       ErrorCode = 3
	ErrorRequestedItemIsDeactivated      ErrorCode = 4
	ErrorRequestedItemAlreadyInThatState ErrorCode = 5
	ErrorGeneric                         ErrorCode = 6

	ErrorAuthenticationTokenMissing               ErrorCode = 100
	ErrorAuthenticationTokenInvalid               ErrorCode = 101
	ErrorAuthenticationTokenRequestDenied         ErrorCode = 102
	ErrorAuthenticationTokenRequestTimedOut       ErrorCode = 103
	ErrorAuthenticationTokenRequestAlreadyHandled ErrorCode = 104

	ErrorModelNotFound      ErrorCode = 200
	ErrorModelFileInvalid   ErrorCode = 201
	ErrorModelAlreadyLoaded ErrorCode = 202
	ErrorModelLoadTimedOut  ErrorCode = 203
	ErrorModelLoadCancelled ErrorCode = 204
	ErrorModelLoadFailed    ErrorCode = 205

	ErrorHotkeyNotFound      ErrorCode = 300
	ErrorHotkeyTriggerFailed ErrorCode = 301

	ErrorExpressionNotFound         ErrorCode = 400
	ErrorExpressionActivationFailed ErrorCode = 401

	ErrorArtMeshNotFound ErrorCode = 500
	ErrorColorTintFailed ErrorCode = 501

	ErrorItemNotFound          ErrorCode = 600
	ErrorItemLoadFailed        ErrorCode = 601
	ErrorItemUnloadFailed      ErrorCode = 602
	ErrorItemAnimationNotFound ErrorCode = 603
	ErrorItemAnimationFailed   ErrorCode = 604

	ErrorSceneNotFound     ErrorCode = 700
	ErrorSceneChangeFailed ErrorCode = 701

	ErrorNDINotAvailable ErrorCode = 800
	ErrorNDIConfigFailed ErrorCode = 801
)

var errorCodeNames = map[ErrorCode]string{
	ErrorNone:                            "None",
	ErrorInvalidRequest:                  "InvalidRequest",
	ErrorRequestedItemNotFound:           "RequestedItemNotFound",
	ErrorMissingParameterInRequest:       "MissingParameterInRequest",
	ErrorRequestedItemIsDeactivated:      "RequestedItemIsDeactivated",
	ErrorRequestedItemAlreadyInThatState: "RequestedItemIsAlreadyInThatState",
	ErrorGeneric:                         "GenericError",

	ErrorAuthenticationTokenMissing:               "AuthenticationTokenMissing",
	ErrorAuthenticationTokenInvalid:               "AuthenticationTokenInvalid",
	ErrorAuthenticationTokenRequestDenied:         "AuthenticationTokenRequestDenied",
	ErrorAuthenticationTokenRequestTimedOut:       "AuthenticationTokenRequestTimedOut",
	ErrorAuthenticationTokenRequestAlreadyHandled: "AuthenticationTokenRequestAlreadyHandled",

	ErrorModelNotFound:      "ModelNotFound",
	ErrorModelFileInvalid:   "ModelFileInvalid",
	ErrorModelAlreadyLoaded: "ModelAlreadyLoaded",
	ErrorModelLoadTimedOut:  "ModelLoadTimedOut",
	ErrorModelLoadCancelled: "ModelLoadCancelled",
	ErrorModelLoadFailed:    "ModelLoadFailed",

	ErrorHotkeyNotFound:      "HotkeyNotFound",
	ErrorHotkeyTriggerFailed: "HotkeyTriggerFailed",

	ErrorExpressionNotFound:         "ExpressionNotFound",
	ErrorExpressionActivationFailed: "ExpressionActivationFailed",

	ErrorArtMeshNotFound: "ArtMeshNotFound",
	ErrorColorTintFailed: "ColorTintFailed",

	ErrorItemNotFound:          "ItemNotFound",
	ErrorItemLoadFailed:        "ItemLoadFailed",
	ErrorItemUnloadFailed:      "ItemUnloadFailed",
	ErrorItemAnimationNotFound: "ItemAnimationNotFound",
	ErrorItemAnimationFailed:   "ItemAnimationFailed",

	ErrorSceneNotFound:     "SceneNotFound",
	ErrorSceneChangeFailed: "SceneChangeFailed",

	ErrorNDINotAvailable: "NDINotAvailable",
	ErrorNDIConfigFailed: "NDIConfigFailed",
}

func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "ErrorCode(" + strconv.Itoa(int(c)) + ")"
}
