package console

import (
	"fmt"
	"math"
	"strings"

	"github.com/fatih/color"

	"github.com/diillson/ktrade-dashboard-go/internal/shared/types"
	"github.com/pterm/pterm"
)

// Console é uma implementação do ConsoleInterface.
type Console struct{}

// NewConsole cria um novo Console.
func NewConsole() *Console {
	return &Console{}
}

// Print imprime no console.
func (c *Console) Print(a ...interface{}) {
	fmt.Print(a...)
}

// Printf imprime uma string formatada no console.
func (c *Console) Printf(format string, a ...interface{}) {
	fmt.Printf(format, a...)
}

// Println imprime no console com uma nova linha.
func (c *Console) Println(a ...interface{}) {
	fmt.Println(a...)
}

// LogInfo registra uma mensagem de informação.
func (c *Console) LogInfo(format string, a ...interface{}) {
	pterm.Info.Printfln(format, a...)
}

// LogWarning registra uma mensagem de aviso.
func (c *Console) LogWarning(format string, a ...interface{}) {
	pterm.Warning.Printfln(format, a...)
}

// LogError registra uma mensagem de erro.
func (c *Console) LogError(format string, a ...interface{}) {
	pterm.Error.Printfln(format, a...)
}

// LogSuccess registra uma mensagem de sucesso.
func (c *Console) LogSuccess(format string, a ...interface{}) {
	pterm.Success.Printfln(format, a...)
}

// statusHandle é uma implementação do StatusHandle.
type statusHandle struct {
	spinner *pterm.SpinnerPrinter
}

// Status cria um spinner de status com a mensagem especificada.
func (c *Console) Status(message string) types.StatusHandle {
	spinner, _ := pterm.DefaultSpinner.WithRemoveWhenDone(true).Start(message)
	return &statusHandle{spinner: spinner}
}

// Cores predefinidas para uso consistente
var (
	BrightGreen = color.New(color.FgGreen, color.Bold).SprintFunc()
	BrightRed   = color.New(color.FgRed, color.Bold).SprintFunc()
	BrightCyan  = color.New(color.FgCyan, color.Bold).SprintFunc()
	BrightWhite = color.New(color.FgWhite, color.Bold).SprintFunc()
)

// Update atualiza a mensagem de status.
func (h *statusHandle) Update(message string) {
	if h.spinner != nil {
		h.spinner.UpdateText(message)
	}
}

// Stop pára o spinner de status.
func (h *statusHandle) Stop() {
	if h.spinner != nil {
		h.spinner.Stop()
	}
}

// Table é uma implementação do TableInterface.
type Table struct {
	columns []string
	rows    [][]string
}

// CreateTable cria uma nova tabela.
func (c *Console) CreateTable() types.TableInterface {
	return &Table{
		columns: []string{},
		rows:    [][]string{},
	}
}

// AddColumn adiciona uma coluna à tabela.
func (t *Table) AddColumn(name string, options ...interface{}) {
	t.columns = append(t.columns, name)
}

// AddRow adiciona uma linha à tabela.
func (t *Table) AddRow(cells ...interface{}) {
	processedCells := make([]string, len(cells))
	for i, cell := range cells {
		processedCells[i] = fmt.Sprint(cell)
	}
	t.rows = append(t.rows, processedCells)
}

// Render renderiza a tabela como uma string.
func (t *Table) Render() string {
	tableData := pterm.TableData{t.columns}
	for _, row := range t.rows {
		tableData = append(tableData, row)
	}

	table := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
		WithData(tableData)

	renderedTable, _ := table.Srender()
	return renderedTable
}

// DisplayKPIs exibe os indicadores lado a lado, cada um em uma caixa.
func (c *Console) DisplayKPIs(kpis []types.KPI) {
	row := make([]pterm.Panel, 0, len(kpis))
	for _, kpi := range kpis {
		value := BrightWhite(kpi.Value)
		switch {
		case kpi.Sign > 0:
			value = BrightGreen("▲ " + kpi.Value)
		case kpi.Sign < 0:
			value = BrightRed("▼ " + kpi.Value)
		}
		box := pterm.DefaultBox.
			WithTitle(BrightCyan(kpi.Label)).
			WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).
			Sprint(value)
		row = append(row, pterm.Panel{Data: box})
	}

	rendered, _ := pterm.DefaultPanel.WithPanels(pterm.Panels{row}).Srender()
	fmt.Println(rendered)
}

// DisplayTree exibe uma visão hierárquica.
func (c *Console) DisplayTree(root types.TreeNode) {
	rendered, _ := pterm.DefaultTree.WithRoot(toPtermNode(root)).Srender()
	fmt.Println(rendered)
}

func toPtermNode(n types.TreeNode) pterm.TreeNode {
	node := pterm.TreeNode{Text: n.Text}
	for _, child := range n.Children {
		node.Children = append(node.Children, toPtermNode(child))
	}
	return node
}

// DisplayTrendBars exibe gráficos de barras para análise de tendências.
// Alta em relação ao mês anterior aparece em verde, queda em vermelho.
func (c *Console) DisplayTrendBars(title string, values []types.MonthlyValue) {
	fmt.Println("\n" + RenderTrendBars(title, values))
}

// RenderTrendBars monta o painel de barras sem imprimi-lo.
func RenderTrendBars(title string, values []types.MonthlyValue) string {
	maxValue := 0.0
	for _, mv := range values {
		if v := math.Abs(mv.Value.InexactFloat64()); v > maxValue {
			maxValue = v
		}
	}

	if maxValue == 0 {
		return pterm.Warning.Sprintfln("All values are $0K for %s", title)
	}

	tableData := pterm.TableData{
		{"Month", "Exports", "", "MoM Change"},
	}

	var prev *float64

	for _, mv := range values {
		current := mv.Value.InexactFloat64()
		barLength := int((math.Abs(current) / maxValue) * 40)
		bar := strings.Repeat("█", barLength)

		barColor := pterm.FgBlue.Sprint(bar)
		change := ""

		if prev != nil {
			if math.Abs(*prev) < 0.01 {
				if math.Abs(current) < 0.01 {
					change = pterm.FgYellow.Sprint("0%")
					barColor = pterm.FgYellow.Sprint(bar)
				} else {
					change = pterm.FgGreen.Sprint("N/A")
					barColor = pterm.FgGreen.Sprint(bar)
				}
			} else {
				changePercent := ((current - *prev) / math.Abs(*prev)) * 100.0

				if math.Abs(changePercent) < 0.01 {
					change = pterm.FgYellow.Sprintf("0%%")
					barColor = pterm.FgYellow.Sprint(bar)
				} else if math.Abs(changePercent) > 999 {
					if changePercent > 0 {
						change = pterm.FgGreen.Sprint(">+999%")
						barColor = pterm.FgGreen.Sprint(bar)
					} else {
						change = pterm.FgRed.Sprint(">-999%")
						barColor = pterm.FgRed.Sprint(bar)
					}
				} else if changePercent > 0 {
					change = pterm.FgGreen.Sprintf("+%.2f%%", changePercent)
					barColor = pterm.FgGreen.Sprint(bar)
				} else {
					change = pterm.FgRed.Sprintf("%.2f%%", changePercent)
					barColor = pterm.FgRed.Sprint(bar)
				}
			}
		}

		tableData = append(tableData, []string{
			mv.Month,
			types.FormatKUSD(mv.Value),
			barColor,
			change,
		})

		v := current
		prev = &v
	}

	table := pterm.DefaultTable.WithHasHeader().WithData(tableData)
	renderedTable, _ := table.Srender()

	return pterm.DefaultBox.WithTitle(title).WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).Sprint(renderedTable)
}

// MultiSelect pede ao usuário uma seleção múltipla.
func (c *Console) MultiSelect(title string, options, defaults []string) ([]string, error) {
	return pterm.DefaultInteractiveMultiselect.
		WithOptions(options).
		WithDefaultOptions(defaults).
		WithMaxHeight(15).
		Show(title)
}

// Select pede ao usuário uma única opção.
func (c *Console) Select(title string, options []string, defaultOption string) (string, error) {
	return pterm.DefaultInteractiveSelect.
		WithOptions(options).
		WithDefaultOption(defaultOption).
		WithMaxHeight(15).
		Show(title)
}
