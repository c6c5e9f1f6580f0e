package entity

import "github.com/shopspring/decimal"

const (
	// GrandTotal marca a linha de total geral em category_l1.
	GrandTotal = "총액"
	// Subtotal marca a linha agregada do nível de classificação.
	Subtotal = "소계"
)

// Column headers of the customs trade-statistics export.
const (
	ColumnCategoryL1 = "품목별(1)"
	ColumnCategoryL2 = "품목별(2)"
	ColumnCategoryL3 = "품목별(3)"
	ColumnPeriod     = "시점"
	ColumnExport     = "수출액 (천달러)"
	ColumnImport     = "수입액 (천달러)"
)

// TradeRecord is one row of the trade-statistics table. Amounts are in
// thousands of US dollars.
type TradeRecord struct {
	CategoryL1  string          `json:"category_l1"`
	CategoryL2  string          `json:"category_l2"`
	CategoryL3  string          `json:"category_l3"`
	Period      string          `json:"period"`
	ExportValue decimal.Decimal `json:"export_value"`
	ImportValue decimal.Decimal `json:"import_value"`
	Balance     decimal.Decimal `json:"balance"`
}

// NewTradeRecord builds a record and derives its balance.
func NewTradeRecord(l1, l2, l3, period string, exportValue, importValue decimal.Decimal) TradeRecord {
	return TradeRecord{
		CategoryL1:  l1,
		CategoryL2:  l2,
		CategoryL3:  l3,
		Period:      period,
		ExportValue: exportValue,
		ImportValue: importValue,
		Balance:     exportValue.Sub(importValue),
	}
}

// IsGrandTotal reports whether the row is the all-categories total.
func (r TradeRecord) IsGrandTotal() bool {
	return r.CategoryL1 == GrandTotal
}

// TradeTable é um snapshot imutável da tabela carregada.
// Os acessores devolvem cópias; não há métodos de escrita.
type TradeTable struct {
	source  string
	records []TradeRecord
}

// NewTradeTable cria uma tabela a partir dos registros, copiando o slice.
func NewTradeTable(source string, records []TradeRecord) *TradeTable {
	rows := make([]TradeRecord, len(records))
	copy(rows, records)
	return &TradeTable{source: source, records: rows}
}

// Source returns the location the table was loaded from.
func (t *TradeTable) Source() string {
	return t.source
}

// Len returns the number of rows.
func (t *TradeTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.records)
}

// Records returns a copy of all rows in file order.
func (t *TradeTable) Records() []TradeRecord {
	if t == nil {
		return nil
	}
	rows := make([]TradeRecord, len(t.records))
	copy(rows, t.records)
	return rows
}

// Each calls fn for every row in file order without copying the table.
func (t *TradeTable) Each(fn func(TradeRecord)) {
	if t == nil {
		return
	}
	for _, r := range t.records {
		fn(r)
	}
}
