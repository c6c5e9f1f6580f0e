package version

import (
	"fmt"
	"runtime/debug"
	"strings"
	"time"
)

const devVersion = "0.0.0-dev"

// Definidos via -ldflags "-X .../pkg/version.Version=1.0.0" no build de release.
var (
	Version   = devVersion
	Commit    = ""
	BuildTime = ""
)

// Info descreve o binário em execução.
type Info struct {
	Version   string
	Commit    string
	BuildTime string
	Dirty     bool
}

// readBuildInfo is swapped in tests.
var readBuildInfo = debug.ReadBuildInfo

// Current devolve as informações de versão. Valores vindos de ldflags têm
// precedência; o restante é completado com os dados VCS embutidos pelo Go.
func Current() Info {
	info := Info{Version: Version, Commit: Commit, BuildTime: BuildTime}
	if info.Version == "" {
		info.Version = devVersion
	}

	bi, ok := readBuildInfo()
	if !ok || bi == nil {
		return info
	}

	settings := make(map[string]string, len(bi.Settings))
	for _, s := range bi.Settings {
		settings[s.Key] = s.Value
	}

	if info.Commit == "" {
		if rev := settings["vcs.revision"]; len(rev) >= 7 {
			info.Commit = rev[:7]
		}
	}
	if info.BuildTime == "" {
		if ts, err := time.Parse(time.RFC3339, settings["vcs.time"]); err == nil {
			info.BuildTime = ts.UTC().Format("2006-01-02T15:04:05Z")
		}
	}
	info.Dirty = strings.EqualFold(settings["vcs.modified"], "true")

	if info.Version == devVersion && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = strings.TrimPrefix(bi.Main.Version, "v")
	}
	if info.Dirty && !strings.HasSuffix(info.Version, "-dirty") {
		info.Version += "-dirty"
	}

	return info
}

// String formata a versão, ex.: "1.2.3 (commit: abc1234, built at: 2025-10-23T10:20:30Z)".
func (i Info) String() string {
	switch {
	case i.Commit == "" && i.BuildTime == "":
		return fmt.Sprintf("%s (development)", i.Version)
	case i.BuildTime == "":
		return fmt.Sprintf("%s (commit: %s)", i.Version, i.Commit)
	case i.Commit == "":
		return fmt.Sprintf("%s (built at: %s)", i.Version, i.BuildTime)
	default:
		return fmt.Sprintf("%s (commit: %s, built at: %s)", i.Version, i.Commit, i.BuildTime)
	}
}

// FormatVersion é um atalho para Current().String().
func FormatVersion() string {
	return Current().String()
}
