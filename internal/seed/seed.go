package seed

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/ticketpulse/internal/logger"
	"github.com/guttosm/ticketpulse/internal/storage"
)

const maxParallelFiles = 4

// repoCtor is an indirection for creating the repository; tests override it.
var repoCtor = func(db *sql.DB) storage.EventsRepository {
	return storage.NewEventsRepository(db)
}

// ProcessDirectory loads every *.json fixture file under dir into the
// database.
//
// Behavior:
//   - Files are discovered up front; an empty directory is an error.
//   - Files are processed concurrently, bounded by min(maxParallelFiles,
//     NumCPU) or the explicit parallel argument (clamped to 1..4).
//   - Within one file, events are inserted before sales so the foreign key
//     holds; inserts are idempotent, so re-running the same fixtures is safe.
//   - The first error cancels the remaining files and is returned.
func ProcessDirectory(ctx context.Context, dir string, db *sql.DB, parallel int) error {
	repo := repoCtor(db)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read dir %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)

	if len(files) == 0 {
		return fmt.Errorf("no .json fixture files in %s", dir)
	}

	logger.L().Info().Int("files", len(files)).Str("dir", dir).Msg("seed start")

	maxParallel := maxParallelFiles
	if parallel > 0 {
		if parallel > maxParallelFiles {
			parallel = maxParallelFiles
		}
		maxParallel = parallel
	} else if c := runtime.NumCPU(); c < maxParallel {
		maxParallel = c
	}

	logger.L().Info().Int("max_parallel", maxParallel).Msg("seed configured")

	// errgroup cancels siblings on first error.
	g, gctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, maxParallel)

	for i, file := range files {
		idx := i
		f := file
		sem <- struct{}{}

		g.Go(func() error {
			defer func() { <-sem }()

			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			start := time.Now()
			base := filepath.Base(f)
			logger.L().Info().Int("idx", idx+1).Int("total", len(files)).Str("file", base).Msg("file start")

			events, sales, err := parseFile(f)
			if err != nil {
				logger.L().Error().Str("file", base).Err(err).Msg("parse failed")
				return fmt.Errorf("file %s: %w", f, err)
			}

			// Events first: sales carry a foreign key into events.
			if err := repo.InsertEventsBatch(events); err != nil {
				logger.L().Error().Str("file", base).Err(err).Msg("insert events failed")
				return fmt.Errorf("file %s: insert events: %w", f, err)
			}
			if err := repo.InsertSalesBatch(sales); err != nil {
				logger.L().Error().Str("file", base).Err(err).Msg("insert sales failed")
				return fmt.Errorf("file %s: insert sales: %w", f, err)
			}

			logger.L().Info().
				Int("idx", idx+1).
				Int("total", len(files)).
				Str("file", base).
				Int("events", len(events)).
				Int("sales", len(sales)).
				Dur("elapsed", time.Since(start)).
				Msg("file done")
			return nil
		})
	}

	return g.Wait()
}
