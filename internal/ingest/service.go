package ingest

import (
	"context"

	"dining-concierge/internal/common/logger"
	"dining-concierge/internal/common/metrics"
	"dining-concierge/internal/models"
)

// Collaborator surfaces, kept narrow for mocking.

type DirectoryService interface {
	Search(ctx context.Context, location, term string, offset, limit int) ([]Business, error)
}

type StoreService interface {
	Put(ctx context.Context, record models.RestaurantRecord) error
}

type IndexService interface {
	IndexRestaurant(ctx context.Context, businessID, cuisine string) error
}

// Loader walks the location/cuisine grid and copies directory pages into the
// document store and the search index. Per-record failures are logged and
// skipped; a failing page ends that pair and the run moves on.
type Loader struct {
	config    *Config
	logger    logger.Logger
	directory DirectoryService
	store     StoreService
	index     IndexService
}

func NewLoader(config *Config, log logger.Logger, directory DirectoryService, store StoreService, index IndexService) *Loader {
	return &Loader{
		config:    config,
		logger:    log,
		directory: directory,
		store:     store,
		index:     index,
	}
}

// Run performs one full ingestion pass. The dedup set is scoped to this run
// so repeated runs refresh every record.
func (l *Loader) Run(ctx context.Context) (RunResult, error) {
	seen := make(map[string]struct{})
	var result RunResult

	for _, location := range models.SupportedLocations {
		for _, cuisine := range models.SupportedCuisines {
			l.loadPair(ctx, location, cuisine, seen, &result)

			if err := ctx.Err(); err != nil {
				return result, err
			}
		}
	}

	l.logger.Info("Ingestion run completed", map[string]interface{}{
		"written": result.Written,
		"skipped": result.Skipped,
		"failed":  result.Failed,
	})

	return result, nil
}

func (l *Loader) loadPair(ctx context.Context, location, cuisine string, seen map[string]struct{}, result *RunResult) {
	term := cuisine + " restaurants"

	for offset := 0; offset < l.config.MaxPerPair; offset += l.config.PageSize {
		page, err := l.directory.Search(ctx, location, term, offset, l.config.PageSize)
		if err != nil {
			l.logger.WithError(err).Warn("Directory page failed, moving to next pair", map[string]interface{}{
				"location": location,
				"cuisine":  cuisine,
				"offset":   offset,
			})
			return
		}

		if len(page) == 0 {
			return
		}

		l.writePage(ctx, page, location, cuisine, seen, result)
	}
}

func (l *Loader) writePage(ctx context.Context, page []Business, location, cuisine string, seen map[string]struct{}, result *RunResult) {
	for _, business := range page {
		if _, dup := seen[business.Alias]; dup {
			result.Skipped++
			metrics.IngestRecordsSkipped.WithLabelValues("duplicate").Inc()
			continue
		}
		seen[business.Alias] = struct{}{}

		record := models.RestaurantRecord{
			BusinessID:      business.ID,
			Name:            business.Name,
			Cuisine:         cuisine,
			Location:        location,
			Rating:          business.Rating,
			Address:         business.Location.DisplayAddress,
			NumberOfReviews: business.ReviewCount,
			ZipCode:         business.Location.ZipCode,
			Coordinates: models.Coordinates{
				Latitude:  business.Coordinates.Latitude,
				Longitude: business.Coordinates.Longitude,
			},
		}

		if err := l.store.Put(ctx, record); err != nil {
			result.Failed++
			metrics.IngestRecordsSkipped.WithLabelValues("write_failed").Inc()
			l.logger.WithError(err).Warn("Failed to write restaurant record", map[string]interface{}{
				"businessId": business.ID,
			})
			continue
		}

		if err := l.index.IndexRestaurant(ctx, business.ID, cuisine); err != nil {
			result.Failed++
			metrics.IngestRecordsSkipped.WithLabelValues("index_failed").Inc()
			l.logger.WithError(err).Warn("Failed to index restaurant", map[string]interface{}{
				"businessId": business.ID,
			})
			continue
		}

		result.Written++
		metrics.IngestRecordsWritten.Inc()
	}
}
