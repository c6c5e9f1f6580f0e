package service

import (
	"sort"

	"github.com/diillson/ktrade-dashboard-go/internal/domain/entity"
)

// DefaultCategoryCount is how many categories are preselected when the user
// does not choose any.
const DefaultCategoryCount = 3

// SelectableCategories returns the distinct top-level categories in
// first-appearance order, without the grand-total sentinel.
func SelectableCategories(table *entity.TradeTable) []string {
	seen := make(map[string]struct{})
	categories := []string{}
	table.Each(func(r entity.TradeRecord) {
		if r.IsGrandTotal() {
			return
		}
		if _, ok := seen[r.CategoryL1]; ok {
			return
		}
		seen[r.CategoryL1] = struct{}{}
		categories = append(categories, r.CategoryL1)
	})
	return categories
}

// SelectablePeriods returns the distinct period tokens sorted as strings,
// which is chronological order for fixed-width tokens.
func SelectablePeriods(table *entity.TradeTable) []string {
	seen := make(map[string]struct{})
	periods := []string{}
	table.Each(func(r entity.TradeRecord) {
		if _, ok := seen[r.Period]; ok {
			return
		}
		seen[r.Period] = struct{}{}
		periods = append(periods, r.Period)
	})
	sort.Strings(periods)
	return periods
}

// DefaultSelection escolhe as primeiras categorias e o período mais recente.
func DefaultSelection(table *entity.TradeTable) entity.Selection {
	categories := SelectableCategories(table)
	if len(categories) > DefaultCategoryCount {
		categories = categories[:DefaultCategoryCount]
	}

	sel := entity.Selection{Categories: categories}
	if periods := SelectablePeriods(table); len(periods) > 0 {
		sel.Period = periods[len(periods)-1]
	}
	return sel
}

// Resolution is the outcome of validating a requested selection against a table.
type Resolution struct {
	Selection         entity.Selection
	UnknownCategories []string
	UnknownPeriod     bool
}

// ResolveSelection valida a seleção pedida contra a tabela.
//
// Categorias desconhecidas (ou o total geral) são descartadas e reportadas.
// Um período desconhecido é mantido: seleção obsoleta é um estado válido que
// resulta em visão vazia para o mês. Campos vazios recebem os valores padrão,
// exceto quando noneSelected pede explicitamente nenhuma categoria.
func ResolveSelection(table *entity.TradeTable, requested entity.Selection, noneSelected bool) Resolution {
	defaults := DefaultSelection(table)
	res := Resolution{}

	switch {
	case noneSelected:
		res.Selection.Categories = []string{}
	case len(requested.Categories) == 0:
		res.Selection.Categories = defaults.Categories
	default:
		known := make(map[string]struct{})
		for _, c := range SelectableCategories(table) {
			known[c] = struct{}{}
		}
		seen := make(map[string]struct{})
		res.Selection.Categories = []string{}
		for _, c := range requested.Categories {
			if _, dup := seen[c]; dup {
				continue
			}
			seen[c] = struct{}{}
			if _, ok := known[c]; !ok {
				res.UnknownCategories = append(res.UnknownCategories, c)
				continue
			}
			res.Selection.Categories = append(res.Selection.Categories, c)
		}
	}

	if requested.Period == "" {
		res.Selection.Period = defaults.Period
		return res
	}

	res.Selection.Period = requested.Period
	res.UnknownPeriod = true
	for _, p := range SelectablePeriods(table) {
		if p == requested.Period {
			res.UnknownPeriod = false
			break
		}
	}
	return res
}
