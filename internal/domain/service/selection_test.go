package service

import (
	"reflect"
	"testing"

	"github.com/diillson/ktrade-dashboard-go/internal/domain/entity"
)

func TestSelectableCategories_ExcludesGrandTotal(t *testing.T) {
	got := SelectableCategories(fixtureTable())
	want := []string{"Electronics", "Textiles", "Chemicals"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("categories got=%v want=%v", got, want)
	}
	for _, c := range got {
		if c == entity.GrandTotal {
			t.Fatalf("grand total sentinel must not be selectable")
		}
	}
}

func TestSelectablePeriods_SortedAsStrings(t *testing.T) {
	table := entity.NewTradeTable("t.csv", []entity.TradeRecord{
		rec("A", entity.Subtotal, entity.Subtotal, "202511", 0, 0),
		rec("A", entity.Subtotal, entity.Subtotal, "202409", 0, 0),
		rec("A", entity.Subtotal, entity.Subtotal, "202501", 0, 0),
		rec("A", entity.Subtotal, entity.Subtotal, "202409", 0, 0),
	})
	got := SelectablePeriods(table)
	want := []string{"202409", "202501", "202511"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("periods got=%v want=%v", got, want)
	}
}

func TestDefaultSelection(t *testing.T) {
	table := entity.NewTradeTable("t.csv", []entity.TradeRecord{
		rec("A", entity.Subtotal, entity.Subtotal, "202510", 0, 0),
		rec("B", entity.Subtotal, entity.Subtotal, "202511", 0, 0),
		rec("C", entity.Subtotal, entity.Subtotal, "202511", 0, 0),
		rec("D", entity.Subtotal, entity.Subtotal, "202509", 0, 0),
	})
	sel := DefaultSelection(table)
	if !reflect.DeepEqual(sel.Categories, []string{"A", "B", "C"}) {
		t.Fatalf("default categories got=%v", sel.Categories)
	}
	if sel.Period != "202511" {
		t.Fatalf("default period got=%s want=202511", sel.Period)
	}
}

func TestDefaultSelection_EmptyTable(t *testing.T) {
	sel := DefaultSelection(entity.NewTradeTable("empty.csv", nil))
	if len(sel.Categories) != 0 || sel.Period != "" {
		t.Fatalf("expected empty selection, got %+v", sel)
	}
}

func TestResolveSelection(t *testing.T) {
	table := fixtureTable()

	tests := []struct {
		name        string
		requested   entity.Selection
		none        bool
		wantCats    []string
		wantPeriod  string
		wantUnknown []string
		wantStale   bool
	}{
		{
			name:       "defaults",
			wantCats:   []string{"Electronics", "Textiles", "Chemicals"},
			wantPeriod: "202511",
		},
		{
			name:        "unknown and total categories dropped",
			requested:   entity.Selection{Categories: []string{"Textiles", "Toys", entity.GrandTotal, "Textiles"}},
			wantCats:    []string{"Textiles"},
			wantPeriod:  "202511",
			wantUnknown: []string{"Toys", entity.GrandTotal},
		},
		{
			name:       "explicit none",
			none:       true,
			wantCats:   []string{},
			wantPeriod: "202511",
		},
		{
			name:       "stale period kept",
			requested:  entity.Selection{Categories: []string{"Electronics"}, Period: "202001"},
			wantCats:   []string{"Electronics"},
			wantPeriod: "202001",
			wantStale:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ResolveSelection(table, tt.requested, tt.none)
			if !reflect.DeepEqual(res.Selection.Categories, tt.wantCats) {
				t.Fatalf("categories got=%v want=%v", res.Selection.Categories, tt.wantCats)
			}
			if res.Selection.Period != tt.wantPeriod {
				t.Fatalf("period got=%s want=%s", res.Selection.Period, tt.wantPeriod)
			}
			if !reflect.DeepEqual(res.UnknownCategories, tt.wantUnknown) {
				t.Fatalf("unknown got=%v want=%v", res.UnknownCategories, tt.wantUnknown)
			}
			if res.UnknownPeriod != tt.wantStale {
				t.Fatalf("UnknownPeriod got=%v want=%v", res.UnknownPeriod, tt.wantStale)
			}
		})
	}
}
