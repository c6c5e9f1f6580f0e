package entity

import "github.com/shopspring/decimal"

// Selection is the user-facing filter state: a set of top-level categories
// and a single period token.
type Selection struct {
	Categories []string `json:"categories"`
	Period     string   `json:"period"`
}

// Contains reports whether category is part of the selection.
func (s Selection) Contains(category string) bool {
	for _, c := range s.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// DashboardView agrega os conjuntos de linhas e os totais exibidos no dashboard.
type DashboardView struct {
	Selection Selection `json:"selection"`

	// Detail: subtotal de cada categoria selecionada no período escolhido.
	Detail []TradeRecord `json:"detail"`
	// Breakdown: linhas de nível 2 (subtotal do nível 3) no período escolhido.
	Breakdown []TradeRecord `json:"breakdown"`
	// Trend: subtotais das categorias selecionadas em todos os períodos.
	Trend []TradeRecord `json:"trend"`

	ExportTotal  decimal.Decimal `json:"export_total"`
	ImportTotal  decimal.Decimal `json:"import_total"`
	BalanceTotal decimal.Decimal `json:"balance_total"`
}

// TrendPoint is one period of a category time series.
type TrendPoint struct {
	Period      string          `json:"period"`
	ExportValue decimal.Decimal `json:"export_value"`
	ImportValue decimal.Decimal `json:"import_value"`
	Balance     decimal.Decimal `json:"balance"`
}

// TrendSeries is the period-ordered series of one top-level category.
type TrendSeries struct {
	Category string       `json:"category"`
	Points   []TrendPoint `json:"points"`
}

// ShareItem is one second-level category inside a ShareGroup.
type ShareItem struct {
	Name        string          `json:"name"`
	ExportValue decimal.Decimal `json:"export_value"`
	Balance     decimal.Decimal `json:"balance"`
	// Share is the item's fraction of the group's export value, in [0, 1].
	Share decimal.Decimal `json:"share"`
}

// ShareGroup agrupa as linhas de Breakdown de uma categoria de nível 1.
type ShareGroup struct {
	Category    string          `json:"category"`
	ExportValue decimal.Decimal `json:"export_value"`
	Items       []ShareItem     `json:"items"`
}
