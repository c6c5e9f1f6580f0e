package console

import (
	"strings"
	"testing"

	"github.com/diillson/ktrade-dashboard-go/internal/shared/types"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
)

func TestTable_Render(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	table := NewConsole().CreateTable()
	table.AddColumn("Category")
	table.AddColumn("Exports")
	table.AddRow("반도체", "$1,000K")

	out := table.Render()
	for _, want := range []string{"Category", "Exports", "반도체", "$1,000K"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered table missing %q:\n%s", want, out)
		}
	}
}

func TestRenderTrendBars(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	out := RenderTrendBars("반도체", []types.MonthlyValue{
		{Month: "202509", Value: decimal.NewFromInt(100)},
		{Month: "202510", Value: decimal.NewFromInt(150)},
		{Month: "202511", Value: decimal.NewFromInt(75)},
	})

	for _, want := range []string{"202509", "202511", "$150K", "+50.00%", "-50.00%"} {
		if !strings.Contains(out, want) {
			t.Errorf("trend output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderTrendBars_AllZero(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	out := RenderTrendBars("섬유", []types.MonthlyValue{
		{Month: "202510", Value: decimal.Zero},
	})
	if !strings.Contains(out, "All values are $0K") {
		t.Fatalf("expected zero warning, got %q", out)
	}
}
