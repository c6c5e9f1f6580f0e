package version

import (
	"runtime/debug"
	"testing"
)

func withBuildInfo(t *testing.T, bi *debug.BuildInfo, ok bool) {
	t.Helper()
	orig := readBuildInfo
	readBuildInfo = func() (*debug.BuildInfo, bool) { return bi, ok }
	t.Cleanup(func() { readBuildInfo = orig })
}

func withLdflags(t *testing.T, version, commit, buildTime string) {
	t.Helper()
	v, c, b := Version, Commit, BuildTime
	Version, Commit, BuildTime = version, commit, buildTime
	t.Cleanup(func() { Version, Commit, BuildTime = v, c, b })
}

func TestCurrent_NoBuildInfo(t *testing.T) {
	withLdflags(t, devVersion, "", "")
	withBuildInfo(t, nil, false)

	if got := FormatVersion(); got != "0.0.0-dev (development)" {
		t.Fatalf("FormatVersion got=%q", got)
	}
}

func TestCurrent_FromVCSSettings(t *testing.T) {
	withLdflags(t, devVersion, "", "")
	withBuildInfo(t, &debug.BuildInfo{
		Main: debug.Module{Version: "v1.4.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.time", Value: "2025-11-20T09:30:00+09:00"},
			{Key: "vcs.modified", Value: "true"},
		},
	}, true)

	info := Current()
	if info.Version != "1.4.0-dirty" {
		t.Errorf("version got=%q", info.Version)
	}
	if info.Commit != "0123456" {
		t.Errorf("commit got=%q", info.Commit)
	}
	if info.BuildTime != "2025-11-20T00:30:00Z" {
		t.Errorf("build time got=%q", info.BuildTime)
	}
}

func TestCurrent_LdflagsWin(t *testing.T) {
	withLdflags(t, "2.0.0", "abcdef1", "2025-12-01T00:00:00Z")
	withBuildInfo(t, &debug.BuildInfo{
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "9999999999"}},
	}, true)

	want := "2.0.0 (commit: abcdef1, built at: 2025-12-01T00:00:00Z)"
	if got := FormatVersion(); got != want {
		t.Fatalf("FormatVersion got=%q want=%q", got, want)
	}
}
