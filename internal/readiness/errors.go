// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package readiness

import (
	"errors"
	"fmt"
)

// ErrNotReady is returned by [Gate.Run] when at least one check failed.
var ErrNotReady = errors.New("dependencies are not ready")

// CheckError names the check that produced Err.
type CheckError struct {
	Name string
	Err  error
}

func (e *CheckError) Error() string {
	return fmt.Sprintf("%s: %v", e.Name, e.Err)
}

func (e *CheckError) Unwrap() error {
	return e.Err
}

type permanentError struct {
	err error
}

func (e *permanentError) Error() string {
	return e.err.Error()
}

func (e *permanentError) Unwrap() error {
	return e.err
}

// Permanent marks err as not worth retrying, e.g. a rejected credential.
// Permanent(nil) returns nil.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

// IsPermanent reports whether err, or any error it wraps, was marked with
// [Permanent].
func IsPermanent(err error) bool {
	var p *permanentError
	return errors.As(err, &p)
}

// FailedChecks returns the names of the failed checks carried by an error
// returned from [Gate.Run].
func FailedChecks(err error) []string {
	var names []string
	var walk func(error)
	walk = func(err error) {
		switch e := err.(type) {
		case nil:
		case *CheckError:
			names = append(names, e.Name)
		case interface{ Unwrap() []error }:
			for _, inner := range e.Unwrap() {
				walk(inner)
			}
		case interface{ Unwrap() error }:
			walk(e.Unwrap())
		}
	}
	walk(err)

	return names
}
