// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

const notAvailable = "N/A"

// AppBuildInfo carries immutable build-time metadata embedded into binaries.
//
// Values are injected by linker flags (-X main.buildVersion=...) and shown in
// the TUI build info window and in the startup log line of every binary.
type AppBuildInfo struct {
	appName      string
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo constructs [AppBuildInfo] from the provided build metadata.
func NewAppBuildInfo(appName, buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		appName:      appName,
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

// AppName returns the binary's display name.
func (a AppBuildInfo) AppName() string {
	return orNA(a.appName)
}

// BuildVersion returns the semantic version string of the build, or "N/A".
func (a AppBuildInfo) BuildVersion() string {
	return orNA(a.buildVersion)
}

// BuildDate returns the build timestamp string, or "N/A".
func (a AppBuildInfo) BuildDate() string {
	return orNA(a.buildDate)
}

// BuildCommit returns the source-control commit hash used for the build, or
// "N/A".
func (a AppBuildInfo) BuildCommit() string {
	return orNA(a.buildCommit)
}

func orNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return notAvailable
	}
	return v
}
