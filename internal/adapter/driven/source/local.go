package source

import (
	"fmt"
	"io"
	"os"

	"github.com/diillson/ktrade-dashboard-go/internal/shared/types"
)

// readLocalFile lê o arquivo local. Qualquer falha ao abrir (inexistente,
// sem permissão, diretório) é tratada como fonte não encontrada.
func readLocalFile(location, path string) ([]byte, error) {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return nil, &types.SourceNotFoundError{Source: location, Err: err}
	}
	if fileInfo.IsDir() {
		return nil, &types.SourceNotFoundError{Source: location, Err: fmt.Errorf("%s is a directory, not a file", path)}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &types.SourceNotFoundError{Source: location, Err: err}
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("error reading source file: %w", err)
	}
	return data, nil
}
