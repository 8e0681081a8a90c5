// Package client is the in-process facade UI code talks to. Every method
// binds a service to one caller identity and returns a uniform Result
// envelope instead of a Go error, so callers branch on Success without any
// error handling of their own.
package client

import "stash-backend/internal/pkg/errs"

// ResultError is the flattened, display-ready form of a typed service error.
type ResultError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Retriable bool   `json:"retriable"`
}

type Result[T any] struct {
	Data    T            `json:"data"`
	Error   *ResultError `json:"error,omitempty"`
	Success bool         `json:"success"`
}

func ok[T any](data T) Result[T] {
	return Result[T]{Data: data, Success: true}
}

func fail[T any](err error) Result[T] {
	e := errs.AsE(err)
	return Result[T]{
		Error: &ResultError{
			Code:      e.WireCode(),
			Message:   e.Message,
			Retriable: e.Kind.Retriable(),
		},
	}
}
