package source

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3Types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/diillson/ktrade-dashboard-go/internal/shared/types"
)

type fakeS3 struct {
	body   []byte
	err    error
	gotKey string
	gotBkt string
}

func (f *fakeS3) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.gotBkt = *params.Bucket
	f.gotKey = *params.Key
	if f.err != nil {
		return nil, f.err
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(f.body))}, nil
}

func TestParseLocation(t *testing.T) {
	tests := []struct {
		raw        string
		wantScheme string
		wantBucket string
		wantPath   string
		wantErr    bool
	}{
		{raw: "data/trade.csv", wantScheme: schemeFile, wantPath: "data/trade.csv"},
		{raw: "file:///tmp/trade.csv", wantScheme: schemeFile, wantPath: "/tmp/trade.csv"},
		{raw: "s3://stats/2025/trade.csv", wantScheme: schemeS3, wantBucket: "stats", wantPath: "2025/trade.csv"},
		{raw: "GS://stats/trade.csv", wantScheme: schemeGCS, wantBucket: "stats", wantPath: "trade.csv"},
		{raw: "s3://bucket-only", wantErr: true},
		{raw: "ftp://host/file.csv", wantErr: true},
		{raw: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			loc, err := parseLocation(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.raw)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if loc.scheme != tt.wantScheme || loc.bucket != tt.wantBucket || loc.path != tt.wantPath {
				t.Fatalf("got %+v want scheme=%s bucket=%s path=%s", loc, tt.wantScheme, tt.wantBucket, tt.wantPath)
			}
		})
	}
}

func TestFetch_UnsupportedScheme(t *testing.T) {
	repo := NewSourceRepository()
	_, err := repo.Fetch(context.Background(), "ftp://host/trade.csv")
	if !errors.Is(err, types.ErrUnsupportedScheme) {
		t.Fatalf("expected ErrUnsupportedScheme, got %v", err)
	}
}

func TestFetch_LocalFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "trade.csv")
	if err := os.WriteFile(path, []byte("a,b\n1,2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	repo := NewSourceRepository()
	data, err := repo.Fetch(context.Background(), path)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if string(data) != "a,b\n1,2\n" {
		t.Fatalf("unexpected content %q", data)
	}
}

func TestFetch_LocalFileMissing(t *testing.T) {
	repo := NewSourceRepository()
	missing := filepath.Join(t.TempDir(), "missing.csv")

	_, err := repo.Fetch(context.Background(), missing)
	if !errors.Is(err, types.ErrSourceNotFound) {
		t.Fatalf("expected ErrSourceNotFound, got %v", err)
	}
	var nf *types.SourceNotFoundError
	if !errors.As(err, &nf) || nf.Source != missing {
		t.Fatalf("expected SourceNotFoundError for %s, got %v", missing, err)
	}
}

func TestFetch_LocalDirectory(t *testing.T) {
	repo := NewSourceRepository()
	_, err := repo.Fetch(context.Background(), t.TempDir())
	if !errors.Is(err, types.ErrSourceNotFound) {
		t.Fatalf("expected ErrSourceNotFound for directory, got %v", err)
	}
}

func TestFetch_S3Object(t *testing.T) {
	client := &fakeS3{body: []byte("payload")}
	repo := NewSourceRepository(withS3Client(client))

	data, err := repo.Fetch(context.Background(), "s3://stats/monthly/trade.csv")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if string(data) != "payload" {
		t.Fatalf("unexpected content %q", data)
	}
	if client.gotBkt != "stats" || client.gotKey != "monthly/trade.csv" {
		t.Fatalf("unexpected request bucket=%s key=%s", client.gotBkt, client.gotKey)
	}
}

func TestFetch_S3NotFound(t *testing.T) {
	repo := NewSourceRepository(withS3Client(&fakeS3{err: &s3Types.NoSuchKey{}}))

	_, err := repo.Fetch(context.Background(), "s3://stats/missing.csv")
	if !errors.Is(err, types.ErrSourceNotFound) {
		t.Fatalf("expected ErrSourceNotFound, got %v", err)
	}
}

func TestFetch_S3OtherError(t *testing.T) {
	boom := errors.New("connection reset")
	repo := NewSourceRepository(withS3Client(&fakeS3{err: boom}))

	_, err := repo.Fetch(context.Background(), "s3://stats/trade.csv")
	if errors.Is(err, types.ErrSourceNotFound) {
		t.Fatalf("transport errors must not be reported as not found")
	}
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped cause, got %v", err)
	}
}
