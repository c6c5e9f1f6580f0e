package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/diillson/ktrade-dashboard-go/internal/domain/entity"
	"github.com/diillson/ktrade-dashboard-go/internal/domain/repository"
	"github.com/diillson/ktrade-dashboard-go/internal/domain/service"
	"github.com/shopspring/decimal"
)

// Nomes das seções usadas nos relatórios.
const (
	SectionDetail    = "detail"
	SectionBreakdown = "breakdown"
	SectionTrend     = "trend"
	SectionTotal     = "total"
)

var hundred = decimal.NewFromInt(100)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

var recordHeaders = []string{
	"Section", entity.ColumnCategoryL1, entity.ColumnCategoryL2, entity.ColumnCategoryL3,
	entity.ColumnPeriod, entity.ColumnExport, entity.ColumnImport, "무역수지 (천달러)",
}

// ExportToCSV grava as três seções da visão e a linha de totais em um único CSV
// UTF-8, com a seção na primeira coluna.
func (r *ExportRepositoryImpl) ExportToCSV(view entity.DashboardView, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if err := writer.Write(recordHeaders); err != nil {
		return "", fmt.Errorf("error writing CSV header: %w", err)
	}

	sections := []struct {
		name string
		rows []entity.TradeRecord
	}{
		{SectionDetail, view.Detail},
		{SectionBreakdown, view.Breakdown},
		{SectionTrend, view.Trend},
	}
	for _, section := range sections {
		for _, row := range section.rows {
			record := []string{
				section.name,
				row.CategoryL1,
				row.CategoryL2,
				row.CategoryL3,
				row.Period,
				row.ExportValue.String(),
				row.ImportValue.String(),
				row.Balance.String(),
			}
			if err := writer.Write(record); err != nil {
				return "", fmt.Errorf("error writing CSV record: %w", err)
			}
		}
	}

	total := []string{
		SectionTotal, "", "", "", view.Selection.Period,
		view.ExportTotal.String(), view.ImportTotal.String(), view.BalanceTotal.String(),
	}
	if err := writer.Write(total); err != nil {
		return "", fmt.Errorf("error writing CSV record: %w", err)
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("error flushing CSV file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// Report is the JSON document written by ExportToJSON.
type Report struct {
	GeneratedAt time.Time            `json:"generated_at"`
	Selection   entity.Selection     `json:"selection"`
	Summary     ReportSummary        `json:"summary"`
	Detail      []entity.TradeRecord `json:"detail"`
	Breakdown   []entity.TradeRecord `json:"breakdown"`
	Trend       []entity.TrendSeries `json:"trend"`
}

// ReportSummary holds the three headline totals.
type ReportSummary struct {
	ExportTotal  decimal.Decimal `json:"export_total"`
	ImportTotal  decimal.Decimal `json:"import_total"`
	BalanceTotal decimal.Decimal `json:"balance_total"`
}

func newReport(view entity.DashboardView) Report {
	return Report{
		GeneratedAt: time.Now().UTC().Truncate(time.Second),
		Selection:   view.Selection,
		Summary: ReportSummary{
			ExportTotal:  view.ExportTotal,
			ImportTotal:  view.ImportTotal,
			BalanceTotal: view.BalanceTotal,
		},
		Detail:    view.Detail,
		Breakdown: view.Breakdown,
		Trend:     service.TrendSeries(view),
	}
}

func (r *ExportRepositoryImpl) ExportToJSON(view entity.DashboardView, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(newReport(view)); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- Funções Auxiliares ---

// generateFilename cria um nome de arquivo único com timestamp e garante que o diretório exista.
func generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}
