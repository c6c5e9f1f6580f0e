package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"

	"github.com/diillson/ktrade-dashboard-go/internal/application/loader"
	"github.com/diillson/ktrade-dashboard-go/internal/domain/entity"
	"github.com/diillson/ktrade-dashboard-go/internal/domain/repository"
	"github.com/diillson/ktrade-dashboard-go/internal/domain/service"
	"github.com/diillson/ktrade-dashboard-go/internal/logger"
	"github.com/diillson/ktrade-dashboard-go/internal/shared/types"
)

var hundred = decimal.NewFromInt(100)

// DashboardUseCase handles the main dashboard functionality.
type DashboardUseCase struct {
	loader     loader.TableLoader
	exportRepo repository.ExportRepository
	console    types.ConsoleInterface
}

// NewDashboardUseCase creates a new dashboard use case.
func NewDashboardUseCase(
	tableLoader loader.TableLoader,
	exportRepo repository.ExportRepository,
	console types.ConsoleInterface,
) *DashboardUseCase {
	return &DashboardUseCase{
		loader:     tableLoader,
		exportRepo: exportRepo,
		console:    console,
	}
}

// RunDashboard carrega a tabela, resolve a seleção e renderiza o dashboard.
func (uc *DashboardUseCase) RunDashboard(ctx context.Context, args *types.CLIArgs) error {
	table, err := uc.loadTable(ctx, args.Source)
	if err != nil {
		return err
	}

	selection, err := uc.resolveSelection(table, args)
	if err != nil {
		return err
	}

	view := service.Aggregate(table, selection)
	log := logger.FromContext(ctx)
	log.Debug().
		Strs("categories", selection.Categories).
		Str("period", selection.Period).
		Int("detail_rows", len(view.Detail)).
		Int("breakdown_rows", len(view.Breakdown)).
		Int("trend_rows", len(view.Trend)).
		Msg("dashboard view aggregated")

	if args.Trend {
		uc.RunTrendAnalysis(view)
	} else {
		uc.console.Printf("\n%s\n", pterm.FgLightCyan.Sprintf("K-Trade 품목별 수출입 통계 (%s)", selection.Period))
		if len(selection.Categories) == 0 {
			uc.console.LogWarning("No category selected; choose at least one with --category or --interactive")
		}
		uc.displayKPIs(view)
		uc.displayDetail(view)
		uc.displayShares(view)
		uc.RunTrendAnalysis(view)
		if args.Raw {
			uc.displayRaw(table)
		}
	}

	uc.exportReports(view, table, args)
	return nil
}

// ListCategories imprime as categorias selecionáveis na ordem do arquivo.
func (uc *DashboardUseCase) ListCategories(ctx context.Context, source string) ([]string, error) {
	table, err := uc.loadTable(ctx, source)
	if err != nil {
		return nil, err
	}

	categories := service.SelectableCategories(table)
	if len(categories) == 0 {
		uc.console.LogWarning("No selectable categories in %s", source)
		return nil, types.ErrNoCategories
	}
	defaults := service.DefaultSelection(table)

	out := uc.console.CreateTable()
	out.AddColumn("#")
	out.AddColumn("품목별(1)")
	out.AddColumn("Default")
	for i, c := range categories {
		mark := ""
		if defaults.Contains(c) {
			mark = "✓"
		}
		out.AddRow(i+1, c, mark)
	}
	uc.console.Print(out.Render())

	return categories, nil
}

// ListPeriods imprime os períodos disponíveis, do mais antigo ao mais recente.
func (uc *DashboardUseCase) ListPeriods(ctx context.Context, source string) ([]string, error) {
	table, err := uc.loadTable(ctx, source)
	if err != nil {
		return nil, err
	}

	periods := service.SelectablePeriods(table)
	if len(periods) == 0 {
		uc.console.LogWarning("No periods in %s", source)
		return nil, types.ErrNoPeriods
	}
	for i, p := range periods {
		if i == len(periods)-1 {
			uc.console.Println(p, pterm.FgGray.Sprint("(latest)"))
			continue
		}
		uc.console.Println(p)
	}

	return periods, nil
}

// RunTrendAnalysis exibe as barras de exportação mensal de cada categoria selecionada.
func (uc *DashboardUseCase) RunTrendAnalysis(view entity.DashboardView) {
	series := service.TrendSeries(view)
	if len(series) == 0 {
		uc.console.LogWarning("No trend data available for the current selection")
		return
	}

	for _, s := range series {
		values := make([]types.MonthlyValue, len(s.Points))
		for i, p := range s.Points {
			values[i] = types.MonthlyValue{Month: p.Period, Value: p.ExportValue}
		}
		uc.console.DisplayTrendBars(fmt.Sprintf("%s 수출액 추이", s.Category), values)
	}
}

// loadTable carrega a tabela pelo loader memoizado e traduz os erros tipados
// em mensagens legíveis.
func (uc *DashboardUseCase) loadTable(ctx context.Context, source string) (*entity.TradeTable, error) {
	if strings.TrimSpace(source) == "" {
		uc.console.LogError("No trade data source configured; use --source or the config file")
		return nil, types.Reported(&types.SourceNotFoundError{Source: source})
	}

	status := uc.console.Status(fmt.Sprintf("Loading trade data from %s...", source))
	table, err := uc.loader.Load(ctx, source)
	status.Stop()

	if err != nil {
		var notFound *types.SourceNotFoundError
		var failure *types.LoadFailureError
		switch {
		case errors.As(err, &notFound):
			uc.console.LogError("Trade data file not found: %s. Check the file path and name.", notFound.Source)
		case errors.As(err, &failure):
			uc.console.LogError("Could not read trade data from %s: %s", failure.Source, failure.Err)
		default:
			uc.console.LogError("Failed to load trade data: %s", err)
		}
		return nil, types.Reported(err)
	}

	return table, nil
}

// resolveSelection aplica padrões, prompts interativos e valida a seleção.
func (uc *DashboardUseCase) resolveSelection(table *entity.TradeTable, args *types.CLIArgs) (entity.Selection, error) {
	requested := entity.Selection{Categories: args.Categories, Period: args.Period}
	noneSelected := args.NoneSelected

	if args.Interactive {
		defaults := service.ResolveSelection(table, requested, noneSelected).Selection

		categories, err := uc.console.MultiSelect("분석할 품목(대분류) 선택",
			service.SelectableCategories(table), defaults.Categories)
		if err != nil {
			return entity.Selection{}, fmt.Errorf("category selection: %w", err)
		}

		periods := service.SelectablePeriods(table)
		period := defaults.Period
		if len(periods) > 0 {
			if period, err = uc.console.Select("분석 기준월 선택", periods, defaults.Period); err != nil {
				return entity.Selection{}, fmt.Errorf("period selection: %w", err)
			}
		}

		requested = entity.Selection{Categories: categories, Period: period}
		noneSelected = len(categories) == 0
	}

	res := service.ResolveSelection(table, requested, noneSelected)
	for _, c := range res.UnknownCategories {
		uc.console.LogWarning("Category '%s' not found in trade data", c)
	}
	if res.UnknownPeriod {
		uc.console.LogWarning("Period '%s' not found in trade data; monthly figures will be empty", res.Selection.Period)
	}

	return res.Selection, nil
}

func (uc *DashboardUseCase) displayKPIs(view entity.DashboardView) {
	uc.console.DisplayKPIs([]types.KPI{
		{Label: "총 수출액", Value: types.FormatKUSD(view.ExportTotal)},
		{Label: "총 수입액", Value: types.FormatKUSD(view.ImportTotal)},
		{Label: "무역수지", Value: types.FormatKUSD(view.BalanceTotal), Sign: view.BalanceTotal.Sign()},
	})
}

// displayDetail exibe a comparação de exportação e importação por categoria.
func (uc *DashboardUseCase) displayDetail(view entity.DashboardView) {
	if len(view.Detail) == 0 {
		uc.console.LogInfo("No subtotal rows for period %s", view.Selection.Period)
		return
	}

	table := uc.console.CreateTable()
	table.AddColumn("품목별(1)")
	table.AddColumn("수출액 (천달러)")
	table.AddColumn("수입액 (천달러)")
	table.AddColumn("무역수지 (천달러)")

	for _, r := range view.Detail {
		table.AddRow(r.CategoryL1,
			types.FormatThousands(r.ExportValue),
			types.FormatThousands(r.ImportValue),
			colorBalance(types.FormatThousands(r.Balance), r.Balance.Sign()))
	}
	table.AddRow(pterm.Bold.Sprint("Total"),
		types.FormatThousands(view.ExportTotal),
		types.FormatThousands(view.ImportTotal),
		colorBalance(types.FormatThousands(view.BalanceTotal), view.BalanceTotal.Sign()))

	uc.console.Printf("\n%s\n", pterm.FgYellow.Sprint("품목별 수출/수입 비교"))
	uc.console.Print(table.Render())
}

// displayShares exibe a participação de cada subcategoria no valor exportado.
func (uc *DashboardUseCase) displayShares(view entity.DashboardView) {
	groups := service.BreakdownShares(view)
	if len(groups) == 0 {
		return
	}

	root := types.TreeNode{Text: fmt.Sprintf("세부 품목(중분류) 비중 · %s", view.Selection.Period)}
	for _, g := range groups {
		node := types.TreeNode{Text: fmt.Sprintf("%s  %s", g.Category, types.FormatKUSD(g.ExportValue))}
		for _, item := range g.Items {
			node.Children = append(node.Children, types.TreeNode{
				Text: fmt.Sprintf("%s  %s  %s%%  수지 %s",
					item.Name,
					types.FormatKUSD(item.ExportValue),
					item.Share.Mul(hundred).StringFixed(1),
					colorBalance(types.FormatKUSD(item.Balance), item.Balance.Sign())),
			})
		}
		root.Children = append(root.Children, node)
	}

	uc.console.Println()
	uc.console.DisplayTree(root)
}

// displayRaw exibe a tabela normalizada completa.
func (uc *DashboardUseCase) displayRaw(table *entity.TradeTable) {
	out := uc.console.CreateTable()
	for _, col := range []string{
		entity.ColumnCategoryL1, entity.ColumnCategoryL2, entity.ColumnCategoryL3, entity.ColumnPeriod,
		entity.ColumnExport, entity.ColumnImport, "무역수지",
	} {
		out.AddColumn(col)
	}

	table.Each(func(r entity.TradeRecord) {
		out.AddRow(r.CategoryL1, r.CategoryL2, r.CategoryL3, r.Period,
			types.FormatThousands(r.ExportValue),
			types.FormatThousands(r.ImportValue),
			types.FormatThousands(r.Balance))
	})

	uc.console.Printf("\n%s\n", pterm.FgYellow.Sprintf("전체 데이터 · %s (%d rows)", table.Source(), table.Len()))
	uc.console.Print(out.Render())
}

// exportReports grava um arquivo por tipo de relatório. Falhas são registradas
// e não interrompem os demais tipos.
func (uc *DashboardUseCase) exportReports(view entity.DashboardView, table *entity.TradeTable, args *types.CLIArgs) {
	if args.ReportName == "" || len(args.ReportType) == 0 {
		return
	}

	for _, reportType := range args.ReportType {
		switch reportType {
		case "csv":
			csvPath, err := uc.exportRepo.ExportToCSV(view, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to CSV: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to CSV: %s", csvPath)
			}
		case "json":
			jsonPath, err := uc.exportRepo.ExportToJSON(view, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to JSON: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to JSON: %s", jsonPath)
			}
		case "pdf":
			if args.PDFFont == "" {
				uc.console.LogWarning("No --pdf-font given; Korean labels may not render in the PDF report")
			}
			pdfPath, err := uc.exportRepo.ExportToPDF(view, args.ReportName, args.Dir, args.PDFFont)
			if err != nil {
				uc.console.LogError("Failed to export to PDF: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to PDF: %s", pdfPath)
			}
		case "xlsx":
			xlsxPath, err := uc.exportRepo.ExportToXLSX(view, table, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to XLSX: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to XLSX: %s", xlsxPath)
			}
		default:
			uc.console.LogWarning("Unknown report type '%s' ignored", reportType)
		}
	}
}

// colorBalance colore o saldo: verde para superávit, vermelho para déficit.
func colorBalance(text string, sign int) string {
	switch {
	case sign > 0:
		return pterm.FgGreen.Sprint(text)
	case sign < 0:
		return pterm.FgRed.Sprint(text)
	default:
		return text
	}
}
