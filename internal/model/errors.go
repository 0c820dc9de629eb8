package model

import (
	"errors"
	"fmt"
)

// ErrorKind закрытый набор причин, по которым не удалось получить настроение
type ErrorKind string

const (
	KindNotConfigured ErrorKind = "not_configured"
	KindNetwork       ErrorKind = "network"
	KindUpstream      ErrorKind = "upstream"
	KindMalformed     ErrorKind = "malformed"
	KindEmpty         ErrorKind = "empty"
)

// LookupError ошибка запроса к новостям или к модели
type LookupError struct {
	Kind    ErrorKind
	Op      string // "news" или "ai"
	Message string
	Err     error
}

func (e *LookupError) Error() string {
	switch {
	case e.Message != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// KindOf возвращает вид ошибки; всё, что не LookupError, считается сетевой ошибкой
func KindOf(err error) ErrorKind {
	var lookupErr *LookupError
	if errors.As(err, &lookupErr) {
		return lookupErr.Kind
	}
	return KindNetwork
}
