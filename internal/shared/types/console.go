package types

import "github.com/shopspring/decimal"

// ConsoleInterface define a interface para saída no console.
type ConsoleInterface interface {
	Print(a ...interface{})
	Printf(format string, a ...interface{})
	Println(a ...interface{})

	LogInfo(format string, a ...interface{})
	LogWarning(format string, a ...interface{})
	LogError(format string, a ...interface{})
	LogSuccess(format string, a ...interface{})

	Status(message string) StatusHandle

	CreateTable() TableInterface
	DisplayKPIs(kpis []KPI)
	DisplayTree(root TreeNode)
	DisplayTrendBars(title string, values []MonthlyValue)

	MultiSelect(title string, options, defaults []string) ([]string, error)
	Select(title string, options []string, defaultOption string) (string, error)
}

// StatusHandle é uma interface para atualizar uma mensagem de status.
type StatusHandle interface {
	Update(message string)
	Stop()
}

// TableInterface define a interface para criar e manipular tabelas.
type TableInterface interface {
	AddColumn(name string, options ...interface{})
	AddRow(cells ...interface{})
	Render() string
}

// KPI é um indicador exibido no topo do dashboard.
type KPI struct {
	Label string
	Value string
	// Sign colours the value: 1 green, -1 red, 0 neutral.
	Sign int
}

// TreeNode is a node of a hierarchical view.
type TreeNode struct {
	Text     string
	Children []TreeNode
}

// MonthlyValue representa o valor de um mês específico, usado nos gráficos de tendência.
type MonthlyValue struct {
	Month string          `json:"month"`
	Value decimal.Decimal `json:"value"`
}
