// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// ErrNoHTTPServer is returned by NewServer when there is no router to
	// serve or no address to listen on.
	ErrNoHTTPServer = errors.New("no HTTP server to run")
	// ErrListen wraps failures to bind or serve the listen address.
	ErrListen = errors.New("HTTP server stopped listening")
)
