package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/clauser-cli/internal/core/domain"
	"github.com/custodia-labs/clauser-cli/internal/core/ports/driven"
	"github.com/custodia-labs/clauser-cli/internal/core/ports/driving"
	"github.com/custodia-labs/clauser-cli/internal/logger"
)

// Ensure LibraryService implements the interface.
var _ driving.LibraryService = (*LibraryService)(nil)

const (
	// MaxUploadSize is the per-file ingestion cap.
	MaxUploadSize = 50 << 20 // 50 MB

	// maxWalkDepth bounds directory recursion during batch ingestion.
	maxWalkDepth = 16
)

// LibraryService manages the uploaded standards.
type LibraryService struct {
	store     driven.StandardStore
	extractor driven.TextExtractor
}

// NewLibraryService creates a new library service.
func NewLibraryService(store driven.StandardStore, extractor driven.TextExtractor) *LibraryService {
	return &LibraryService{
		store:     store,
		extractor: extractor,
	}
}

// Ingest uploads a single file.
//
// Files whose name does not indicate a PDF are skipped, not failed.
// Oversized files are rejected before any side effect. An unreadable
// PDF fails this file only; zero-page PDFs are still stored with the
// extractor's error marker as their text.
func (s *LibraryService) Ingest(ctx context.Context, path string) (*driving.IngestResult, error) {
	result := &driving.IngestResult{Path: path}

	if !isPDFName(path) {
		result.Skipped = true
		logger.Debug("skipping non-PDF file: %s", path)
		return result, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		result.Err = fmt.Errorf("reading %s: %w", path, err)
		return result, result.Err
	}
	if info.Size() > MaxUploadSize {
		result.Err = fmt.Errorf("%w: %s exceeds 50 MB", domain.ErrFileTooLarge, filepath.Base(path))
		return result, result.Err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Err = fmt.Errorf("reading %s: %w", path, err)
		return result, result.Err
	}

	text, err := s.extractor.Extract(ctx, data)
	if err != nil {
		result.Err = fmt.Errorf("extracting %s: %w", filepath.Base(path), err)
		return result, result.Err
	}

	std := &domain.Standard{
		ID:         uuid.NewString(),
		Name:       domain.DisplayName(filepath.Base(path)),
		Text:       text,
		Size:       int64(len(data)),
		Data:       data,
		UploadedAt: time.Now().UTC(),
	}
	if err := std.Validate(); err != nil {
		result.Err = err
		return result, err
	}

	if err := s.store.Save(ctx, std); err != nil {
		result.Err = fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
		return result, result.Err
	}

	logger.Info("ingested %s (%d bytes)", std.Name, std.Size)
	result.Standard = std
	return result, nil
}

// IngestAll uploads files and directories. Directories are walked
// recursively with a bounded depth. Per-file failures are recorded in
// the results and do not abort the batch.
func (s *LibraryService) IngestAll(ctx context.Context, paths []string) ([]driving.IngestResult, error) {
	var results []driving.IngestResult

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			results = append(results, driving.IngestResult{Path: path, Err: err})
			continue
		}

		if info.IsDir() {
			dirResults := s.ingestDir(ctx, path, 0)
			results = append(results, dirResults...)
			continue
		}

		res, _ := s.Ingest(ctx, path) // per-file error captured in res
		results = append(results, *res)
	}

	return results, nil
}

// ingestDir walks one directory level and recurses up to maxWalkDepth.
func (s *LibraryService) ingestDir(ctx context.Context, dir string, depth int) []driving.IngestResult {
	if depth >= maxWalkDepth {
		logger.Warn("directory %s exceeds max depth %d, skipping", dir, maxWalkDepth)
		return nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return []driving.IngestResult{{Path: dir, Err: err}}
	}

	var results []driving.IngestResult
	for _, entry := range entries {
		if ctx.Err() != nil {
			return results
		}
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			results = append(results, s.ingestDir(ctx, path, depth+1)...)
			continue
		}
		res, _ := s.Ingest(ctx, path)
		results = append(results, *res)
	}
	return results
}

// List returns all stored standards without raw bytes.
func (s *LibraryService) List(ctx context.Context) ([]domain.Standard, error) {
	return s.store.ListMeta(ctx)
}

// Get returns one standard with raw bytes, for rendering.
func (s *LibraryService) Get(ctx context.Context, id string) (*domain.Standard, error) {
	return s.store.Get(ctx, id)
}

// Remove deletes a standard by ID.
func (s *LibraryService) Remove(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	return nil
}

// isPDFName reports whether the filename indicates a PDF.
func isPDFName(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".pdf")
}
