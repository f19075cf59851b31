package api

// Response is the uniform result shape every data-access operation
// yields. Exactly one of the two forms occurs: data with Success true,
// or an error message with Success false. Failures never propagate out
// of the api package any other way.
type Response[T any] struct {
	Data    *T      `json:"data"`
	Error   *string `json:"error"`
	Success bool    `json:"success"`
}

// defaultErr stands in when an underlying failure carries no message.
const defaultErr = "An error occurred"

func OK[T any](data T) Response[T] {
	return Response[T]{Data: &data, Success: true}
}

func Fail[T any](msg string) Response[T] {
	if msg == "" {
		msg = defaultErr
	}
	return Response[T]{Error: &msg}
}

func FailErr[T any](err error) Response[T] {
	if err == nil {
		return Fail[T]("")
	}
	return Fail[T](err.Error())
}

// ErrMessage returns the failure message, or "" for a success.
func (r Response[T]) ErrMessage() string {
	if r.Error == nil {
		return ""
	}
	return *r.Error
}
