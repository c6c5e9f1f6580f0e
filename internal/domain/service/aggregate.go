package service

import (
	"sort"

	"github.com/diillson/ktrade-dashboard-go/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Aggregate projeta a tabela na visão do dashboard para a seleção informada.
// É uma função pura: não altera a tabela e pode ser chamada a cada renderização.
func Aggregate(table *entity.TradeTable, sel entity.Selection) entity.DashboardView {
	view := entity.DashboardView{
		Selection:    sel,
		Detail:       []entity.TradeRecord{},
		Breakdown:    []entity.TradeRecord{},
		Trend:        []entity.TradeRecord{},
		ExportTotal:  decimal.Zero,
		ImportTotal:  decimal.Zero,
		BalanceTotal: decimal.Zero,
	}

	if len(sel.Categories) == 0 {
		return view
	}

	selected := make(map[string]struct{}, len(sel.Categories))
	for _, c := range sel.Categories {
		selected[c] = struct{}{}
	}

	table.Each(func(r entity.TradeRecord) {
		if _, ok := selected[r.CategoryL1]; !ok {
			return
		}

		if r.CategoryL2 == entity.Subtotal {
			view.Trend = append(view.Trend, r)
			if r.Period == sel.Period {
				view.Detail = append(view.Detail, r)
				view.ExportTotal = view.ExportTotal.Add(r.ExportValue)
				view.ImportTotal = view.ImportTotal.Add(r.ImportValue)
			}
			return
		}

		if r.Period == sel.Period && r.CategoryL3 == entity.Subtotal {
			view.Breakdown = append(view.Breakdown, r)
		}
	})

	view.BalanceTotal = view.ExportTotal.Sub(view.ImportTotal)
	return view
}

// TrendSeries agrupa as linhas de tendência por categoria, na ordem em que as
// categorias aparecem na seleção, com os pontos ordenados por período.
func TrendSeries(view entity.DashboardView) []entity.TrendSeries {
	byCategory := make(map[string][]entity.TrendPoint)
	for _, r := range view.Trend {
		byCategory[r.CategoryL1] = append(byCategory[r.CategoryL1], entity.TrendPoint{
			Period:      r.Period,
			ExportValue: r.ExportValue,
			ImportValue: r.ImportValue,
			Balance:     r.Balance,
		})
	}

	series := make([]entity.TrendSeries, 0, len(byCategory))
	for _, category := range view.Selection.Categories {
		points, ok := byCategory[category]
		if !ok {
			continue
		}
		sort.SliceStable(points, func(i, j int) bool {
			return points[i].Period < points[j].Period
		})
		series = append(series, entity.TrendSeries{Category: category, Points: points})
		delete(byCategory, category)
	}

	return series
}

// BreakdownShares monta a visão hierárquica (nível 1 → nível 2) das linhas de
// Breakdown, com a participação de cada item nas exportações do grupo.
// Grupos sem exportação ficam com participação zero.
func BreakdownShares(view entity.DashboardView) []entity.ShareGroup {
	index := make(map[string]int)
	groups := []entity.ShareGroup{}

	for _, r := range view.Breakdown {
		i, ok := index[r.CategoryL1]
		if !ok {
			i = len(groups)
			index[r.CategoryL1] = i
			groups = append(groups, entity.ShareGroup{Category: r.CategoryL1, ExportValue: decimal.Zero})
		}
		groups[i].ExportValue = groups[i].ExportValue.Add(r.ExportValue)
		groups[i].Items = append(groups[i].Items, entity.ShareItem{
			Name:        r.CategoryL2,
			ExportValue: r.ExportValue,
			Balance:     r.Balance,
		})
	}

	for gi := range groups {
		total := groups[gi].ExportValue
		for ii := range groups[gi].Items {
			item := &groups[gi].Items[ii]
			if total.IsZero() {
				item.Share = decimal.Zero
				continue
			}
			item.Share = item.ExportValue.DivRound(total, 4)
		}
	}

	return groups
}
