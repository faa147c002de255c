package fetcher

import (
	"errors"
	"fmt"
)

// ErrRequestFailed возвращается, когда запрос не получил HTTP ответа.
var ErrRequestFailed = errors.New("http request failed")

// RequestError описывает транспортную ошибку запроса.
type RequestError struct {
	URL   string
	Cause error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrRequestFailed, e.URL, e.Cause)
}

// Unwrap позволяет проверять и ErrRequestFailed, и исходную причину.
func (e *RequestError) Unwrap() []error {
	return []error{ErrRequestFailed, e.Cause}
}
