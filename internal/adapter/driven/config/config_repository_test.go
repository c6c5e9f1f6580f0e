package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/diillson/ktrade-dashboard-go/internal/shared/types"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigFile_Formats(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "toml",
			file: "ktrade.toml",
			content: `source = "s3://stats/trade.csv"
categories = [" 반도체 ", "자동차"]
period = "202511"
report_type = ["CSV", "xlsx"]
`,
		},
		{
			name: "yaml",
			file: "ktrade.yml",
			content: `source: s3://stats/trade.csv
categories: [반도체, 자동차]
period: "202511"
report_type: [csv, XLSX]
`,
		},
		{
			name:    "json",
			file:    "ktrade.json",
			content: `{"source":"s3://stats/trade.csv","categories":["반도체","자동차"],"period":"202511","report_type":["csv","xlsx"]}`,
		},
	}

	repo := NewConfigRepository()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := repo.LoadConfigFile(writeConfig(t, tt.file, tt.content))
			if err != nil {
				t.Fatalf("LoadConfigFile: %v", err)
			}
			if cfg.Source != "s3://stats/trade.csv" {
				t.Errorf("source got=%q", cfg.Source)
			}
			if !reflect.DeepEqual(cfg.Categories, []string{"반도체", "자동차"}) {
				t.Errorf("categories got=%v", cfg.Categories)
			}
			if cfg.Period != "202511" {
				t.Errorf("period got=%q", cfg.Period)
			}
			if !reflect.DeepEqual(cfg.ReportType, []string{"csv", "xlsx"}) {
				t.Errorf("report types got=%v", cfg.ReportType)
			}
		})
	}
}

func TestLoadConfigFile_Errors(t *testing.T) {
	repo := NewConfigRepository()

	if _, err := repo.LoadConfigFile(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := repo.LoadConfigFile(t.TempDir()); err == nil {
		t.Error("expected error for directory")
	}
	if _, err := repo.LoadConfigFile(writeConfig(t, "ktrade.ini", "source=x")); err == nil {
		t.Error("expected error for unsupported extension")
	}
	if _, err := repo.LoadConfigFile(writeConfig(t, "bad.json", "{")); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestMergeArgs_FlagsWin(t *testing.T) {
	args := &types.CLIArgs{
		Source:     "local.csv",
		ReportType: []string{"csv"},
	}
	cfg := &types.Config{
		Source:     "s3://stats/trade.csv",
		Categories: []string{"반도체"},
		Period:     "202510",
		ReportType: []string{"pdf"},
		Trend:      true,
	}
	explicit := map[string]bool{"source": true}

	MergeArgs(args, cfg, func(flag string) bool { return explicit[flag] })

	if args.Source != "local.csv" {
		t.Errorf("explicit source overwritten: %q", args.Source)
	}
	if !reflect.DeepEqual(args.Categories, []string{"반도체"}) {
		t.Errorf("categories got=%v", args.Categories)
	}
	if args.Period != "202510" {
		t.Errorf("period got=%q", args.Period)
	}
	if !reflect.DeepEqual(args.ReportType, []string{"pdf"}) {
		t.Errorf("report types got=%v", args.ReportType)
	}
	if !args.Trend {
		t.Error("trend should come from config")
	}
}

func TestMergeArgs_NoneFlagKeepsEmptySelection(t *testing.T) {
	args := &types.CLIArgs{NoneSelected: true}
	cfg := &types.Config{Categories: []string{"반도체"}}

	MergeArgs(args, cfg, func(flag string) bool { return flag == "none" })

	if len(args.Categories) != 0 {
		t.Errorf("categories should stay empty with --none, got %v", args.Categories)
	}
}
