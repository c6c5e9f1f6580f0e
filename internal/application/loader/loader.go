package loader

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/diillson/ktrade-dashboard-go/internal/domain/entity"
	"github.com/diillson/ktrade-dashboard-go/internal/domain/repository"
	"github.com/diillson/ktrade-dashboard-go/internal/logger"
	"github.com/diillson/ktrade-dashboard-go/internal/shared/types"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"
)

// Placeholder is the token the customs export uses for "no data" cells.
const Placeholder = "-"

var requiredColumns = []string{
	entity.ColumnCategoryL1,
	entity.ColumnCategoryL2,
	entity.ColumnCategoryL3,
	entity.ColumnPeriod,
	entity.ColumnExport,
	entity.ColumnImport,
}

// textColumns só aceitam texto CP949 válido; o decodificador troca bytes
// inválidos por U+FFFD.
var textColumns = requiredColumns[:4]

// Stats counts how amount cells were coerced during a load.
type Stats struct {
	Rows         int
	Placeholders int
	// Coerced counts cells that were neither numbers nor the placeholder and
	// were replaced by zero.
	Coerced int
}

// Loader lê a tabela de comércio exterior e a normaliza.
type Loader struct {
	sources repository.SourceRepository
}

// NewLoader cria um novo Loader.
func NewLoader(sources repository.SourceRepository) *Loader {
	return &Loader{sources: sources}
}

// Load busca a fonte e devolve a tabela normalizada. Em caso de erro nenhuma
// tabela parcial é devolvida: *types.SourceNotFoundError quando a fonte não
// existe, *types.LoadFailureError para qualquer outra falha.
func (l *Loader) Load(ctx context.Context, location string) (*entity.TradeTable, error) {
	log := logger.FromContext(ctx)

	data, err := l.sources.Fetch(ctx, location)
	if err != nil {
		var notFound *types.SourceNotFoundError
		if errors.As(err, &notFound) {
			return nil, notFound
		}
		return nil, &types.LoadFailureError{Source: location, Err: err}
	}

	table, stats, err := Parse(location, bytes.NewReader(data))
	if err != nil {
		return nil, &types.LoadFailureError{Source: location, Err: err}
	}

	log.Debug().
		Str("source", location).
		Int("rows", stats.Rows).
		Int("placeholders", stats.Placeholders).
		Msg("trade table loaded")
	if stats.Coerced > 0 {
		log.Warn().
			Str("source", location).
			Int("cells", stats.Coerced).
			Msg("non-numeric amount cells coerced to zero")
	}

	return table, nil
}

// Parse decodifica um CSV em CP949 e normaliza as linhas.
func Parse(location string, r io.Reader) (*entity.TradeTable, Stats, error) {
	var stats Stats

	cr := csv.NewReader(transform.NewReader(r, korean.EUCKR.NewDecoder()))
	cr.FieldsPerRecord = -1

	headers, err := cr.Read()
	if err == io.EOF {
		return nil, stats, fmt.Errorf("empty trade table")
	}
	if err != nil {
		return nil, stats, fmt.Errorf("read header: %w", err)
	}

	col := toIndex(headers)
	for _, k := range requiredColumns {
		if _, ok := col[k]; !ok {
			return nil, stats, fmt.Errorf("missing column: %s", k)
		}
	}

	var records []entity.TradeRecord
	line := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, stats, fmt.Errorf("read row %d: %w", line, err)
		}

		cell := func(name string) string {
			i := col[name]
			if i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}

		for _, name := range textColumns {
			if strings.ContainsRune(cell(name), utf8.RuneError) {
				return nil, stats, fmt.Errorf("row %d: invalid CP949 text in column %s", line, name)
			}
		}

		exportValue := coerceAmount(cell(entity.ColumnExport), &stats)
		importValue := coerceAmount(cell(entity.ColumnImport), &stats)

		records = append(records, entity.NewTradeRecord(
			cell(entity.ColumnCategoryL1),
			cell(entity.ColumnCategoryL2),
			cell(entity.ColumnCategoryL3),
			cell(entity.ColumnPeriod),
			exportValue,
			importValue,
		))
		stats.Rows++
	}

	return entity.NewTradeTable(location, records), stats, nil
}

// coerceAmount converte uma célula de valor. O marcador "-" vale zero e
// qualquer valor não numérico também vira zero, sem erro.
func coerceAmount(raw string, stats *Stats) decimal.Decimal {
	if raw == Placeholder {
		stats.Placeholders++
		return decimal.Zero
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		stats.Coerced++
		return decimal.Zero
	}
	return v
}

func toIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		name := strings.TrimSpace(h)
		if _, dup := idx[name]; dup {
			continue
		}
		idx[name] = i
	}
	return idx
}
