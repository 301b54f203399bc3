package vtsclient

import (
	"errors"
	"os"
	"strings"
)

// TokenStore — внешний коллаборатор для персистентности токена.
// Read возвращает пустую строку без ошибки, если токена ещё нет.
type TokenStore interface {
	Read(path string) (string, error)
	Write(path, token string) error
}

// FileTokenStore хранит токен одним файлом: содержимое целиком, с
// обрезанными пробелами.
type FileTokenStore struct{}

func (FileTokenStore) Read(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

func (FileTokenStore) Write(path, token string) error {
	return os.WriteFile(path, []byte(token), 0o600)
}
