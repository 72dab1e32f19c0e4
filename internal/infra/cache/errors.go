package cache

import "errors"

var (
	// ErrEncode возвращается, если значение не удалось сериализовать
	ErrEncode = errors.New("cache: failed to encode value")

	// ErrDecode возвращается, если запись в кэше повреждена
	ErrDecode = errors.New("cache: failed to decode value")

	// ErrBackend возвращается при ошибке хранилища кэша
	ErrBackend = errors.New("cache: backend error")
)
