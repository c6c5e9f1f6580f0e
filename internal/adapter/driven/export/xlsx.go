package export

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/diillson/ktrade-dashboard-go/internal/domain/entity"
	"github.com/diillson/ktrade-dashboard-go/internal/domain/service"
	"github.com/xuri/excelize/v2"
)

// Sheet names of the XLSX report.
const (
	SheetSummary   = "Summary"
	SheetBreakdown = "Breakdown"
	SheetTrend     = "Trend"
	SheetRaw       = "Data"
)

const (
	colorPrimary = "#1F77B4"
	colorImport  = "#EF553B"
)

// ExportToXLSX grava a visão em uma planilha com abas de resumo, participação,
// tendência (categorias nas colunas, períodos nas linhas) e a tabela completa.
func (r *ExportRepositoryImpl) ExportToXLSX(view entity.DashboardView, table *entity.TradeTable, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "xlsx")
	if err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return "", fmt.Errorf("error preparing workbook: %w", err)
	}
	for _, name := range []string{SheetBreakdown, SheetTrend, SheetRaw} {
		if _, err := f.NewSheet(name); err != nil {
			return "", fmt.Errorf("error creating sheet %s: %w", name, err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{colorPrimary}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return "", fmt.Errorf("error creating header style: %w", err)
	}
	numberStyle, err := f.NewStyle(&excelize.Style{NumFmt: 3}) // #,##0
	if err != nil {
		return "", fmt.Errorf("error creating number style: %w", err)
	}
	percentStyle, err := f.NewStyle(&excelize.Style{NumFmt: 10}) // 0.00%
	if err != nil {
		return "", fmt.Errorf("error creating percent style: %w", err)
	}
	importStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Color: colorImport},
		NumFmt: 3,
	})
	if err != nil {
		return "", fmt.Errorf("error creating import style: %w", err)
	}

	writeHeader := func(sheet string, headers []string) error {
		for i, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			if err := f.SetCellValue(sheet, cell, h); err != nil {
				return err
			}
		}
		last, _ := excelize.CoordinatesToCellName(len(headers), 1)
		return f.SetCellStyle(sheet, "A1", last, headerStyle)
	}

	// ===== Summary =====
	if err := writeHeader(SheetSummary, []string{entity.ColumnCategoryL1, entity.ColumnExport, entity.ColumnImport, "무역수지 (천달러)"}); err != nil {
		return "", fmt.Errorf("error writing summary sheet: %w", err)
	}
	row := 2
	for _, rec := range view.Detail {
		f.SetCellValue(SheetSummary, fmt.Sprintf("A%d", row), rec.CategoryL1)
		f.SetCellValue(SheetSummary, fmt.Sprintf("B%d", row), rec.ExportValue.InexactFloat64())
		f.SetCellValue(SheetSummary, fmt.Sprintf("C%d", row), rec.ImportValue.InexactFloat64())
		f.SetCellValue(SheetSummary, fmt.Sprintf("D%d", row), rec.Balance.InexactFloat64())
		row++
	}
	f.SetCellValue(SheetSummary, fmt.Sprintf("A%d", row), "Total "+view.Selection.Period)
	f.SetCellValue(SheetSummary, fmt.Sprintf("B%d", row), view.ExportTotal.InexactFloat64())
	f.SetCellValue(SheetSummary, fmt.Sprintf("C%d", row), view.ImportTotal.InexactFloat64())
	f.SetCellValue(SheetSummary, fmt.Sprintf("D%d", row), view.BalanceTotal.InexactFloat64())
	f.SetCellStyle(SheetSummary, "B2", fmt.Sprintf("D%d", row), numberStyle)
	f.SetCellStyle(SheetSummary, "C2", fmt.Sprintf("C%d", row), importStyle)
	f.SetColWidth(SheetSummary, "A", "A", 28)
	f.SetColWidth(SheetSummary, "B", "D", 18)

	// ===== Breakdown =====
	if err := writeHeader(SheetBreakdown, []string{entity.ColumnCategoryL1, entity.ColumnCategoryL2, entity.ColumnExport, "Share", "무역수지 (천달러)"}); err != nil {
		return "", fmt.Errorf("error writing breakdown sheet: %w", err)
	}
	row = 2
	for _, group := range service.BreakdownShares(view) {
		for _, item := range group.Items {
			f.SetCellValue(SheetBreakdown, fmt.Sprintf("A%d", row), group.Category)
			f.SetCellValue(SheetBreakdown, fmt.Sprintf("B%d", row), item.Name)
			f.SetCellValue(SheetBreakdown, fmt.Sprintf("C%d", row), item.ExportValue.InexactFloat64())
			f.SetCellValue(SheetBreakdown, fmt.Sprintf("D%d", row), item.Share.InexactFloat64())
			f.SetCellValue(SheetBreakdown, fmt.Sprintf("E%d", row), item.Balance.InexactFloat64())
			row++
		}
	}
	if row > 2 {
		f.SetCellStyle(SheetBreakdown, "C2", fmt.Sprintf("C%d", row-1), numberStyle)
		f.SetCellStyle(SheetBreakdown, "D2", fmt.Sprintf("D%d", row-1), percentStyle)
		f.SetCellStyle(SheetBreakdown, "E2", fmt.Sprintf("E%d", row-1), numberStyle)
	}
	f.SetColWidth(SheetBreakdown, "A", "B", 28)
	f.SetColWidth(SheetBreakdown, "C", "E", 16)

	// ===== Trend: períodos nas linhas, categorias nas colunas (exportações) =====
	series := service.TrendSeries(view)
	periodSet := map[string]struct{}{}
	var periods []string
	for _, s := range series {
		for _, p := range s.Points {
			if _, ok := periodSet[p.Period]; !ok {
				periodSet[p.Period] = struct{}{}
				periods = append(periods, p.Period)
			}
		}
	}
	sort.Strings(periods)

	trendHeaders := []string{entity.ColumnPeriod}
	for _, s := range series {
		trendHeaders = append(trendHeaders, s.Category)
	}
	if err := writeHeader(SheetTrend, trendHeaders); err != nil {
		return "", fmt.Errorf("error writing trend sheet: %w", err)
	}
	periodRow := make(map[string]int, len(periods))
	for i, p := range periods {
		periodRow[p] = i + 2
		f.SetCellStr(SheetTrend, fmt.Sprintf("A%d", i+2), p)
	}
	for ci, s := range series {
		for _, p := range s.Points {
			cell, _ := excelize.CoordinatesToCellName(ci+2, periodRow[p.Period])
			f.SetCellValue(SheetTrend, cell, p.ExportValue.InexactFloat64())
		}
	}
	if len(periods) > 0 && len(series) > 0 {
		last, _ := excelize.CoordinatesToCellName(len(series)+1, len(periods)+1)
		f.SetCellStyle(SheetTrend, "B2", last, numberStyle)
	}

	// ===== Data =====
	if err := writeHeader(SheetRaw, recordHeaders[1:]); err != nil {
		return "", fmt.Errorf("error writing data sheet: %w", err)
	}
	row = 2
	table.Each(func(rec entity.TradeRecord) {
		f.SetCellValue(SheetRaw, fmt.Sprintf("A%d", row), rec.CategoryL1)
		f.SetCellValue(SheetRaw, fmt.Sprintf("B%d", row), rec.CategoryL2)
		f.SetCellValue(SheetRaw, fmt.Sprintf("C%d", row), rec.CategoryL3)
		// período como texto para não virar número na planilha
		f.SetCellStr(SheetRaw, fmt.Sprintf("D%d", row), rec.Period)
		f.SetCellValue(SheetRaw, fmt.Sprintf("E%d", row), rec.ExportValue.InexactFloat64())
		f.SetCellValue(SheetRaw, fmt.Sprintf("F%d", row), rec.ImportValue.InexactFloat64())
		f.SetCellValue(SheetRaw, fmt.Sprintf("G%d", row), rec.Balance.InexactFloat64())
		row++
	})

	f.SetActiveSheet(0)
	if err := f.SaveAs(outputFilename); err != nil {
		return "", fmt.Errorf("error writing XLSX file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

