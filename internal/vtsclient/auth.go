package vtsclient

import (
	"context"
	"errors"
)

// authenticate проходит машину состояний аутентификации:
// токен из конфига/файла → AuthenticationRequest; отказ → запросить новый
// токен и аутентифицироваться им ровно один раз; второй отказ терминален.
// Транспортные ошибки (закрытие, таймаут) пробрасываются как есть, без
// попытки получить новый токен.
func (v *VTS) authenticate(ctx context.Context) (string, error) {
	token := v.cfg.AuthToken
	if v.cfg.TokenFile != "" {
		stored, err := v.store.Read(v.cfg.TokenFile)
		if err != nil {
			v.log.Warn().Err(err).Str("path", v.cfg.TokenFile).Msg("cannot read token file")
		} else if stored != "" {
			token = stored
		}
	}

	if token != "" {
		err := v.tryToken(ctx, token)
		if err == nil {
			return v.finishAuth(token), nil
		}
		if !isAuthRejection(err) {
			return "", err
		}
		// сохранённый токен отозван — получаем новый
		v.log.Warn().Err(err).Msg("stored token rejected, requesting a new one")
	}

	fresh, err := v.RequestAuthenticationToken(ctx)
	if err != nil {
		if isAuthRejection(err) {
			return "", &AuthError{Reason: "token request rejected", Err: err}
		}
		return "", err
	}
	v.log.Info().Msg("obtained new authentication token")

	if err := v.tryToken(ctx, fresh); err != nil {
		if isAuthRejection(err) {
			return "", &AuthError{Reason: "fresh token rejected", Err: err}
		}
		return "", err
	}
	return v.finishAuth(fresh), nil
}

// tryToken — одна попытка AuthenticationRequest данным токеном.
func (v *VTS) tryToken(ctx context.Context, token string) error {
	resp, err := v.Authenticate(ctx, token)
	if err != nil {
		return err
	}
	if !resp.Authenticated {
		reason := resp.Reason
		if reason == "" {
			reason = "unknown reason"
		}
		return &AuthError{Reason: reason}
	}
	return nil
}

// isAuthRejection — отказ, привязанный к токену (а не к транспорту):
// структурная ошибка сервера либо authenticated=false.
func isAuthRejection(err error) bool {
	var reqErr *RequestError
	var authErr *AuthError
	return errors.As(err, &reqErr) || errors.As(err, &authErr)
}

// finishAuth фиксирует состояние Authenticated и сохраняет токен.
// Персистентность best-effort: ошибка записи не отменяет аутентификацию.
func (v *VTS) finishAuth(token string) string {
	v.mu.Lock()
	v.token = token
	v.mu.Unlock()
	v.authenticated.Store(true)

	if v.cfg.SaveToken && v.cfg.TokenFile != "" {
		if err := v.store.Write(v.cfg.TokenFile, token); err != nil {
			v.log.Warn().Err(err).Str("path", v.cfg.TokenFile).Msg("cannot persist token")
		} else {
			v.log.Info().Str("path", v.cfg.TokenFile).Msg("saved authentication token")
		}
	}
	return token
}
