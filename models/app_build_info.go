// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// AppBuildInfo carries build-time metadata injected with -ldflags.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo constructs [AppBuildInfo]. Blank values are stored as
// "N/A" so binaries built without ldflags still report a version.
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: valueOrNA(buildVersion),
		buildDate:    valueOrNA(buildDate),
		buildCommit:  valueOrNA(buildCommit),
	}
}

// The accessors report "N/A" for the zero value too.
func (a AppBuildInfo) BuildVersion() string { return valueOrNA(a.buildVersion) }
func (a AppBuildInfo) BuildDate() string    { return valueOrNA(a.buildDate) }
func (a AppBuildInfo) BuildCommit() string  { return valueOrNA(a.buildCommit) }

// String renders the build metadata on one line.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("version %s, built %s, commit %s", a.BuildVersion(), a.BuildDate(), a.BuildCommit())
}

func valueOrNA(v string) string {
	if strings.TrimSpace(v) == "" {
		return "N/A"
	}
	return v
}
