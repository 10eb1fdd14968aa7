package config

import "errors"

var (
	// ErrInvalidConfig wraps the validation errors returned by
	// [GetAppConfig]; use [MissingFields] to list the blank fields.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrUnsupportedConfigFormat indicates a config file whose extension is
	// neither .json, .yaml nor .yml.
	ErrUnsupportedConfigFormat = errors.New("unsupported config file format")
)
