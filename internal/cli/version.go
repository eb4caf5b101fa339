// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// version.go - Version command handler for the mentionctx CLI.
package cli

import (
	"fmt"
	"runtime"
)

// versionData is the JSON payload for the version command.
type versionData struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// HandleVersion prints version information.
func HandleVersion(args *Args) error {
	data := versionData{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}

	if args.JSON {
		return NewJSONResponse("version", data).Print()
	}

	fmt.Printf("mentionctx %s (%s, %s, %s)\n", data.Version, data.GitCommit, data.GoVersion, data.Platform)
	return nil
}
