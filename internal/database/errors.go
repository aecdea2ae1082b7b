package database

import (
	"errors"
	"fmt"
)

var (
	ErrNoPath   = errors.New("database path is empty")
	ErrClosed   = errors.New("database is closed")
	ErrNotFound = errors.New("record not found")

	ErrInvalidStatus = errors.New("status is not final")
)

// Entities named in OpError.
const (
	EntityDatabase  = "database"
	EntitySetting   = "setting"
	EntityDialState = "dial state"
	EntityCountdown = "countdown"
)

type OpError struct {
	Op       string
	Resource string
	Key      string
	Err      error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	if e.Key != "" {
		return fmt.Sprintf("%s %s %s: %v", e.Op, e.Resource, e.Key, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Resource, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

func wrapErr(resource, op, key string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: resource, Key: key, Err: err}
}
