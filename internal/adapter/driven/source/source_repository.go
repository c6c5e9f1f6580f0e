package source

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/diillson/ktrade-dashboard-go/internal/domain/repository"
	"github.com/diillson/ktrade-dashboard-go/internal/shared/types"
)

const (
	schemeFile = "file"
	schemeS3   = "s3"
	schemeGCS  = "gs"
)

// SourceRepositoryImpl implementa o SourceRepository para arquivos locais,
// objetos S3 (s3://bucket/key) e objetos GCS (gs://bucket/object).
type SourceRepositoryImpl struct {
	awsProfile string

	mu       sync.Mutex
	s3Client s3GetObjectAPI
}

// Option configura o SourceRepositoryImpl.
type Option func(*SourceRepositoryImpl)

// WithAWSProfile usa um perfil específico do ~/.aws/config para fontes S3.
func WithAWSProfile(profile string) Option {
	return func(r *SourceRepositoryImpl) {
		r.awsProfile = profile
	}
}

// withS3Client injeta um cliente S3 já construído.
func withS3Client(client s3GetObjectAPI) Option {
	return func(r *SourceRepositoryImpl) {
		r.s3Client = client
	}
}

// NewSourceRepository cria uma nova implementação do SourceRepository.
func NewSourceRepository(opts ...Option) repository.SourceRepository {
	r := &SourceRepositoryImpl{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Fetch lê todo o conteúdo da fonte indicada.
func (r *SourceRepositoryImpl) Fetch(ctx context.Context, location string) ([]byte, error) {
	loc, err := parseLocation(location)
	if err != nil {
		return nil, err
	}

	switch loc.scheme {
	case schemeFile:
		return readLocalFile(location, loc.path)
	case schemeS3:
		client, err := r.getS3Client(ctx)
		if err != nil {
			return nil, err
		}
		return fetchS3Object(ctx, client, location, loc.bucket, loc.path)
	case schemeGCS:
		return fetchGCSObject(ctx, location, loc.bucket, loc.path)
	default:
		return nil, fmt.Errorf("%w: %s", types.ErrUnsupportedScheme, loc.scheme)
	}
}

func (r *SourceRepositoryImpl) getS3Client(ctx context.Context) (s3GetObjectAPI, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.s3Client != nil {
		return r.s3Client, nil
	}

	var loadOpts []func(*config.LoadOptions) error
	if r.awsProfile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(r.awsProfile))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	if cfg.Region == "" {
		cfg.Region = "ap-northeast-2"
	}

	r.s3Client = s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.RetryMaxAttempts = 3
	})
	return r.s3Client, nil
}

type location struct {
	scheme string
	bucket string
	path   string
}

// parseLocation separa o esquema, bucket e caminho de uma localização.
// Caminhos sem esquema são tratados como arquivos locais.
func parseLocation(raw string) (location, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return location{}, fmt.Errorf("empty source location")
	}

	scheme, rest, found := strings.Cut(trimmed, "://")
	if !found {
		return location{scheme: schemeFile, path: trimmed}, nil
	}

	scheme = strings.ToLower(scheme)
	switch scheme {
	case schemeFile:
		return location{scheme: schemeFile, path: rest}, nil
	case schemeS3, schemeGCS:
		bucket, key, ok := strings.Cut(rest, "/")
		if !ok || bucket == "" || key == "" {
			return location{}, fmt.Errorf("invalid %s location %q: expected %s://bucket/key", scheme, raw, scheme)
		}
		return location{scheme: scheme, bucket: bucket, path: key}, nil
	default:
		return location{}, fmt.Errorf("%w: %s", types.ErrUnsupportedScheme, scheme)
	}
}
