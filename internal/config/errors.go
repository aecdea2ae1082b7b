package config

import "errors"

var (
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrConfigFile    = errors.New("cannot read config file")
)
