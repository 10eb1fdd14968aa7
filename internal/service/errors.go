package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrBackendURLIsNotSpecified = errors.New("backend url is not specified")
)
