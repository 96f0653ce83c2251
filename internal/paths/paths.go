// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package paths

import (
	"os"
	"path/filepath"
)

// GetConfigDir returns the reqsift configuration directory.
// REQSIFT_CONFIG_DIR overrides the default of ~/.reqsift.
func GetConfigDir() string {
	if dir := os.Getenv("REQSIFT_CONFIG_DIR"); dir != "" {
		return dir
	}

	home, err := os.UserHomeDir()
	if err != nil {
		// Last resort: current directory
		return ".reqsift"
	}
	return filepath.Join(home, ".reqsift")
}

// GetConfigFile returns the path to the main config file
func GetConfigFile() string {
	return filepath.Join(GetConfigDir(), "config.yaml")
}

// GetLanguageProfilesFile returns the path to the language profiles resource
func GetLanguageProfilesFile() string {
	return filepath.Join(GetConfigDir(), "language-profiles.yaml")
}
