package services

import (
	"context"
	"fmt"

	"github.com/zatekoja/hospital-locator/backend/internal/domain/repositories"
	"github.com/zatekoja/hospital-locator/backend/internal/infrastructure/observability"
)

// DirectoryIndexer publishes the directory snapshot to an external search index
type DirectoryIndexer struct {
	directory repositories.FacilityDirectory
	index     repositories.FacilitySearchIndex
}

// NewDirectoryIndexer creates a new directory indexer
func NewDirectoryIndexer(directory repositories.FacilityDirectory, index repositories.FacilitySearchIndex) *DirectoryIndexer {
	return &DirectoryIndexer{directory: directory, index: index}
}

// IndexAll ensures the schema and upserts every facility. Individual
// document failures are logged and skipped; the number indexed is returned.
func (s *DirectoryIndexer) IndexAll(ctx context.Context) (int, error) {
	ctx, span := observability.StartSpan(ctx, "DirectoryIndexer.IndexAll")
	defer span.End()

	logger := observability.LoggerFromContext(ctx)

	if err := s.index.InitSchema(ctx); err != nil {
		observability.RecordError(span, err)
		return 0, fmt.Errorf("failed to init search schema: %w", err)
	}

	facilities, err := s.directory.All(ctx)
	if err != nil {
		observability.RecordError(span, err)
		return 0, fmt.Errorf("failed to load facility directory: %w", err)
	}

	indexed := 0
	for i := range facilities {
		if err := s.index.Index(ctx, &facilities[i]); err != nil {
			logger.Warn().Err(err).Int("facility_id", facilities[i].ID).Msg("Failed to index facility")
			continue
		}
		indexed++
	}

	logger.Info().Int("indexed", indexed).Int("total", len(facilities)).Msg("Directory indexed")
	return indexed, nil
}
