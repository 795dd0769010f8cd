package models

import "time"

// ErrorResponse is returned with every non-2xx status.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type HealthResponse struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Server    string    `json:"server,omitempty"`
}

type IndexResponse struct {
	Success   bool     `json:"success"`
	Message   string   `json:"message"`
	Status    string   `json:"status"`
	Endpoints []string `json:"endpoints"`
}

// ListResponse carries a whole fixture listing; Count is always len(Data).
type ListResponse[T any] struct {
	Success bool `json:"success"`
	Data    []T  `json:"data"`
	Count   int  `json:"count"`
}

type ItemResponse[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
}

func NewList[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Success: true, Data: items, Count: len(items)}
}

func NewItem[T any](item T) ItemResponse[T] {
	return ItemResponse[T]{Success: true, Data: item}
}

func NewError(msg string) ErrorResponse {
	return ErrorResponse{Success: false, Error: msg}
}
