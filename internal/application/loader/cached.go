package loader

import (
	"context"
	"errors"
	"sync"

	"github.com/diillson/ktrade-dashboard-go/internal/domain/entity"
)

// TableLoader carrega uma tabela a partir de uma localização.
type TableLoader interface {
	Load(ctx context.Context, location string) (*entity.TradeTable, error)
}

// Cached memoiza o resultado de Load por localização.
//
// Cada localização é carregada no máximo uma vez por processo e o resultado,
// tabela ou erro, é compartilhado somente leitura. Não há invalidação: a
// fonte é estática durante a vida do processo. Erros de cancelamento ou prazo
// do contexto não são memoizados, pois não dizem nada sobre a fonte.
type Cached struct {
	loader TableLoader

	mu      sync.Mutex
	entries map[string]*cacheEntry
}

type cacheEntry struct {
	mu    sync.Mutex
	done  bool
	table *entity.TradeTable
	err   error
}

// NewCached cria o cache em volta de um TableLoader.
func NewCached(loader TableLoader) *Cached {
	return &Cached{
		loader:  loader,
		entries: make(map[string]*cacheEntry),
	}
}

// Load devolve a tabela memoizada, carregando-a na primeira chamada.
func (c *Cached) Load(ctx context.Context, location string) (*entity.TradeTable, error) {
	c.mu.Lock()
	entry, ok := c.entries[location]
	if !ok {
		entry = &cacheEntry{}
		c.entries[location] = entry
	}
	c.mu.Unlock()

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if entry.done {
		return entry.table, entry.err
	}

	table, err := c.loader.Load(ctx, location)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil, err
	}
	entry.table, entry.err, entry.done = table, err, true
	return table, err
}
