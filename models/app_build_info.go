// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

const buildValueNotAvailable = "N/A"

// AppBuildInfo is the build metadata linked into pickupd with -ldflags.
// Values left unset by the build read as "N/A".
type AppBuildInfo struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// NewAppBuildInfo constructs [AppBuildInfo] from linker-provided values.
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		Version: orNotAvailable(version),
		Date:    orNotAvailable(date),
		Commit:  orNotAvailable(commit),
	}
}

// String renders the banner pickupd prints on startup.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s\n", a.Version, a.Date, a.Commit)
}

// AppInfo is the body of GET /api/version/build. Version is the deployed
// application version from config; Build describes the pickupd binary.
type AppInfo struct {
	Version     string       `json:"version"`
	Environment string       `json:"environment"`
	Build       AppBuildInfo `json:"build"`
}

func orNotAvailable(s string) string {
	if s == "" {
		return buildValueNotAvailable
	}
	return s
}
