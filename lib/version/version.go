// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Release metadata injected with -ldflags -X. Any left empty is filled
// from the build info the Go toolchain embeds in the binary.
var (
	// GitCommit is the short git SHA of the build.
	GitCommit = ""

	// GitDirty is "true" or "false" for uncommitted changes.
	GitDirty = ""

	// BuildTime is the UTC timestamp of the build.
	BuildTime = ""

	// Version is the semantic version, set for releases.
	Version = ""
)

const (
	developmentVersion = "0.1.0-dev"
	unknown            = "unknown"
	// decoderModule provides the consensus transaction codec.
	decoderModule = "github.com/btcsuite/btcd"
	// shortRevisionLength matches git rev-parse --short.
	shortRevisionLength = 7
)

// Build describes a mempoolview binary.
type Build struct {
	Version string
	Commit  string
	Dirty   bool
	Time    string
	// Decoder is the btcd module version the binary decodes
	// transactions with, or "" when the build info lacks it.
	Decoder   string
	GoVersion string
	Platform  string
}

// Current describes the running binary.
func Current() Build {
	// ReadBuildInfo returns nil when the binary carries none.
	info, _ := debug.ReadBuildInfo()
	return resolve(info)
}

// resolve merges the injected variables with info, which may be nil.
// Injected values win.
func resolve(info *debug.BuildInfo) Build {
	build := Build{
		Version:   Version,
		Commit:    GitCommit,
		Dirty:     GitDirty == "true",
		Time:      BuildTime,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}

	if info != nil {
		if build.Version == "" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			build.Version = info.Main.Version
		}
		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision":
				if build.Commit == "" {
					build.Commit = setting.Value[:min(len(setting.Value), shortRevisionLength)]
				}
			case "vcs.time":
				if build.Time == "" {
					build.Time = setting.Value
				}
			case "vcs.modified":
				if GitDirty == "" {
					build.Dirty = setting.Value == "true"
				}
			}
		}
		for _, module := range info.Deps {
			if module.Path == decoderModule {
				build.Decoder = module.Version
			}
		}
	}

	if build.Version == "" {
		build.Version = developmentVersion
	}
	if build.Commit == "" {
		build.Commit = unknown
	}
	if build.Time == "" {
		build.Time = unknown
	}
	return build
}

// String is the one-line form used for --version:
// "0.1.0-dev (abc1234-dirty, 2026-10-01T00:00:00Z)".
func (build Build) String() string {
	dirty := ""
	if build.Dirty {
		dirty = "-dirty"
	}
	return fmt.Sprintf("%s (%s%s, %s)", build.Version, build.Commit, dirty, build.Time)
}

// Info returns the one-line description of the running binary.
func Info() string {
	return Current().String()
}

// Full adds the Go version, platform, and transaction codec version.
func Full() string {
	build := Current()
	full := fmt.Sprintf("%s\n  Go: %s\n  Platform: %s", build, build.GoVersion, build.Platform)
	if build.Decoder != "" {
		full += fmt.Sprintf("\n  Decoder: btcd %s", build.Decoder)
	}
	return full
}

// Short returns just the version number.
func Short() string {
	return Current().Version
}
