// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package version carries the build metadata stamped in at release time.
package version

import (
	"fmt"
	"runtime"
)

// Overridden via -ldflags by the release build.
var (
	Version   = "0.0.0-development"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Info returns the one-line banner printed for the -version flag.
func Info() string {
	return fmt.Sprintf("reqsift %s (commit %s, built %s, %s %s/%s)",
		Version, GitCommit, BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
