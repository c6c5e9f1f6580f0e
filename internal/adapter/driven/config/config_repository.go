package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/diillson/ktrade-dashboard-go/internal/domain/repository"
	"github.com/diillson/ktrade-dashboard-go/internal/shared/types"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// ConfigRepositoryImpl implementa o ConfigRepository.
type ConfigRepositoryImpl struct{}

// NewConfigRepository cria uma nova implementação do ConfigRepository.
func NewConfigRepository() repository.ConfigRepository {
	return &ConfigRepositoryImpl{}
}

// LoadConfigFile carrega um arquivo de configuração TOML, YAML ou JSON.
func (r *ConfigRepositoryImpl) LoadConfigFile(filePath string) (*types.Config, error) {
	fileExtension := filepath.Ext(filePath)
	fileExtension = strings.ToLower(fileExtension)

	// Verifica se o arquivo existe
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error accessing config file: %w", err)
	}

	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", filePath)
	}

	// Lê o arquivo
	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config types.Config

	switch fileExtension {
	case ".toml":
		if err := toml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing TOML file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing YAML file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing JSON file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file format: %s", fileExtension)
	}

	config.Categories = trimAll(config.Categories)
	config.ReportType = lowerAll(trimAll(config.ReportType))

	return &config, nil
}

// MergeArgs aplica os valores do arquivo de configuração aos argumentos da CLI.
// Flags definidas explicitamente na linha de comando têm precedência; explicit
// informa quais flags foram alteradas pelo usuário.
func MergeArgs(args *types.CLIArgs, cfg *types.Config, explicit func(flag string) bool) {
	if cfg == nil {
		return
	}

	if !explicit("source") && cfg.Source != "" {
		args.Source = cfg.Source
	}
	if !explicit("category") && !explicit("none") && len(cfg.Categories) > 0 {
		args.Categories = cfg.Categories
	}
	if !explicit("period") && cfg.Period != "" {
		args.Period = cfg.Period
	}
	if !explicit("report-name") && cfg.ReportName != "" {
		args.ReportName = cfg.ReportName
	}
	if !explicit("report-type") && len(cfg.ReportType) > 0 {
		args.ReportType = cfg.ReportType
	}
	if !explicit("dir") && cfg.Dir != "" {
		args.Dir = cfg.Dir
	}
	if !explicit("pdf-font") && cfg.PDFFont != "" {
		args.PDFFont = cfg.PDFFont
	}
	if !explicit("trend") && cfg.Trend {
		args.Trend = true
	}
	if !explicit("raw") && cfg.Raw {
		args.Raw = true
	}
	if !explicit("log-level") && cfg.LogLevel != "" {
		args.LogLevel = cfg.LogLevel
	}
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func lowerAll(values []string) []string {
	for i, v := range values {
		values[i] = strings.ToLower(v)
	}
	return values
}
