package types

import (
	"errors"
	"fmt"
)

var (
	ErrSourceNotFound    = errors.New("trade data source not found")
	ErrNoCategories      = errors.New("no selectable categories found in trade data")
	ErrNoPeriods         = errors.New("no periods found in trade data")
	ErrUnsupportedScheme = errors.New("unsupported source scheme")
)

// SourceNotFoundError indica que o arquivo (ou objeto) de origem não existe
// ou não pôde ser aberto no local configurado.
type SourceNotFoundError struct {
	Source string
	Err    error
}

func (e *SourceNotFoundError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("source %q not found", e.Source)
	}
	return fmt.Sprintf("source %q not found: %v", e.Source, e.Err)
}

func (e *SourceNotFoundError) Unwrap() error { return e.Err }

// Is permite errors.Is(err, ErrSourceNotFound).
func (e *SourceNotFoundError) Is(target error) bool { return target == ErrSourceNotFound }

// LoadFailureError envolve qualquer outra falha durante a carga/normalização.
type LoadFailureError struct {
	Source string
	Err    error
}

func (e *LoadFailureError) Error() string {
	return fmt.Sprintf("failed to load %q: %v", e.Source, e.Err)
}

func (e *LoadFailureError) Unwrap() error { return e.Err }

// ReportedError marca um erro que já foi exibido ao usuário pelo console,
// para que o ponto de entrada apenas defina o código de saída.
type ReportedError struct {
	Err error
}

func (e *ReportedError) Error() string { return e.Err.Error() }

func (e *ReportedError) Unwrap() error { return e.Err }

// Reported envolve err como já exibido. nil continua nil.
func Reported(err error) error {
	if err == nil {
		return nil
	}
	return &ReportedError{Err: err}
}

// IsReported reports whether err, or any error it wraps, was already shown.
func IsReported(err error) bool {
	var reported *ReportedError
	return errors.As(err, &reported)
}
