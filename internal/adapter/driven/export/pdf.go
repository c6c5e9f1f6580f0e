package export

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/diillson/ktrade-dashboard-go/internal/domain/entity"
	"github.com/diillson/ktrade-dashboard-go/internal/domain/service"
	"github.com/diillson/ktrade-dashboard-go/internal/shared/types"
	"github.com/jung-kurt/gofpdf"
)

const pdfFontFamily = "report"

// ExportToPDF gera o relatório em PDF. As fontes padrão do PDF não têm glifos
// coreanos; com fontPath (um TTF Unicode) os nomes das categorias são
// preservados.
func (r *ExportRepositoryImpl) ExportToPDF(view entity.DashboardView, filename, outputDir, fontPath string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	family := "Arial"
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	if fontPath != "" {
		pdf.AddUTF8Font(pdfFontFamily, "", fontPath)
		pdf.AddUTF8Font(pdfFontFamily, "B", fontPath)
		if err := pdf.Error(); err != nil {
			return "", fmt.Errorf("error loading PDF font %s: %w", fontPath, err)
		}
		family = pdfFontFamily
		tr = func(s string) string { return s }
	}

	headerColor := [3]int{40, 40, 40}
	headerTextColor := [3]int{255, 255, 255}
	sectionTitleColor := [3]int{0, 0, 0}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont(family, "", 8)
		pdf.SetTextColor(128, 128, 128)
		footerText := fmt.Sprintf("Generated by K-Trade Dashboard (Go) | %s", time.Now().Format("2006-01-02"))
		pdf.CellFormat(0, 10, tr(footerText), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 10, tr(fmt.Sprintf("Page %d", pdf.PageNo())), "", 0, "R", false, 0, "")
	})

	sectionTitle := func(title string) {
		pdf.SetFont(family, "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, tr(title))
		pdf.Ln(7)
		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(4)
	}

	drawTable := func(headers []string, widths []float64, rows [][]string) {
		pdf.SetFont(family, "B", 9)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		for i, h := range headers {
			align := "R"
			if i == 0 {
				align = "L"
			}
			pdf.CellFormat(widths[i], 7, tr(h), "B", 0, align, false, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont(family, "", 9)
		if len(rows) == 0 {
			pdf.CellFormat(0, 6, tr("No data for the current selection"), "", 1, "L", false, 0, "")
		}
		for _, row := range rows {
			for i, cell := range row {
				align := "R"
				if i == 0 {
					align = "L"
				}
				pdf.CellFormat(widths[i], 6, tr(cell), "", 0, align, false, 0, "")
			}
			pdf.Ln(-1)
		}
		pdf.Ln(8)
	}

	pdf.AddPage()

	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont(family, "B", 14)
	pdf.CellFormat(0, 12, tr("  K-Trade Export/Import Dashboard"), "", 1, "L", true, 0, "")

	pdf.SetFont(family, "", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	categories := strings.Join(view.Selection.Categories, ", ")
	if categories == "" {
		categories = "(none)"
	}
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("  Period: %s   Categories: %s", view.Selection.Period, categories)), "", 1, "L", true, 0, "")
	pdf.Ln(10)

	sectionTitle("Summary (thousand USD)")
	kpiWidth := 190.0 / 3
	pdf.SetFont(family, "B", 10)
	for _, label := range []string{"Total exports", "Total imports", "Trade balance"} {
		pdf.CellFormat(kpiWidth, 7, tr(label), "B", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont(family, "B", 16)
	pdf.CellFormat(kpiWidth, 12, tr(types.FormatKUSD(view.ExportTotal)), "", 0, "L", false, 0, "")
	pdf.CellFormat(kpiWidth, 12, tr(types.FormatKUSD(view.ImportTotal)), "", 0, "L", false, 0, "")

	originalR, originalG, originalB := pdf.GetTextColor()
	switch view.BalanceTotal.Sign() {
	case 1:
		pdf.SetTextColor(0, 128, 0)
	case -1:
		pdf.SetTextColor(192, 0, 0)
	}
	pdf.CellFormat(kpiWidth, 12, tr(types.FormatKUSD(view.BalanceTotal)), "", 1, "L", false, 0, "")
	pdf.SetTextColor(originalR, originalG, originalB)
	pdf.Ln(8)

	sectionTitle("Exports and imports by category")
	detailRows := make([][]string, 0, len(view.Detail))
	for _, row := range view.Detail {
		detailRows = append(detailRows, []string{
			row.CategoryL1,
			types.FormatThousands(row.ExportValue),
			types.FormatThousands(row.ImportValue),
			types.FormatThousands(row.Balance),
		})
	}
	drawTable([]string{"Category", "Exports", "Imports", "Balance"}, []float64{70, 40, 40, 40}, detailRows)

	sectionTitle("Sub-category export share")
	shareRows := [][]string{}
	for _, group := range service.BreakdownShares(view) {
		for _, item := range group.Items {
			shareRows = append(shareRows, []string{
				group.Category + " / " + item.Name,
				types.FormatThousands(item.ExportValue),
				item.Share.Mul(hundred).StringFixed(1) + "%",
				types.FormatThousands(item.Balance),
			})
		}
	}
	drawTable([]string{"Category / Sub-category", "Exports", "Share", "Balance"}, []float64{100, 30, 30, 30}, shareRows)

	pdf.AddPage()
	sectionTitle("Monthly export trend")
	trendRows := [][]string{}
	for _, series := range service.TrendSeries(view) {
		for _, p := range series.Points {
			trendRows = append(trendRows, []string{
				series.Category + " " + p.Period,
				types.FormatThousands(p.ExportValue),
				types.FormatThousands(p.ImportValue),
				types.FormatThousands(p.Balance),
			})
		}
	}
	drawTable([]string{"Category / Period", "Exports", "Imports", "Balance"}, []float64{70, 40, 40, 40}, trendRows)

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}
