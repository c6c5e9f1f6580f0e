package repository

import (
	"github.com/diillson/ktrade-dashboard-go/internal/domain/entity"
)

// ExportRepository grava a visão do dashboard em arquivos de relatório.
type ExportRepository interface {
	ExportToCSV(view entity.DashboardView, filename, outputDir string) (string, error)
	ExportToJSON(view entity.DashboardView, filename, outputDir string) (string, error)
	ExportToPDF(view entity.DashboardView, filename, outputDir, fontPath string) (string, error)
	ExportToXLSX(view entity.DashboardView, table *entity.TradeTable, filename, outputDir string) (string, error)
}
