package repository

import "context"

// SourceRepository resolves a source location to the raw bytes of the trade
// table. Implementations return *types.SourceNotFoundError when the file or
// object does not exist.
type SourceRepository interface {
	Fetch(ctx context.Context, location string) ([]byte, error)
}
