package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrKeyNotFound    = errors.New("key not found")
	ErrMalformedValue = errors.New("malformed value")
)

// Storage is the durable key-value storage backing sessions and content collections.
// Every value is written and read as a whole.
type Storage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Del(ctx context.Context, keys ...string) error
}

type Repository struct {
	Storage Storage
}

func New(storage Storage) *Repository {
	return &Repository{
		Storage: storage,
	}
}

func SetJSON(ctx context.Context, s Storage, key string, value interface{}) error {
	valueJSON, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return s.Set(ctx, key, string(valueJSON))
}

// GetJSON returns ErrKeyNotFound when the key is absent and wraps ErrMalformedValue
// when the stored value cannot be decoded into T. A stored "null" yields (nil, nil).
func GetJSON[T any](ctx context.Context, s Storage, key string) (*T, error) {
	value, err := s.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	if value == "null" {
		return nil, nil
	}

	var result T
	if err := json.Unmarshal([]byte(value), &result); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedValue, err.Error())
	}

	return &result, nil
}
