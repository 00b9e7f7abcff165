package crawler

import (
	"context"
	"log"

	"go-linkedin-jobhunter/internal/browser"
	"go-linkedin-jobhunter/internal/config"

	mapset "github.com/deckarep/golang-set/v2"
)

// PageOpener hands out browsing pages; browser.Manager implements it.
type PageOpener interface {
	NewPage() (browser.Page, error)
}

// Store persists one run's results as a single atomic batch.
type Store interface {
	SaveBatch(ctx context.Context, jobs []JobDetails, failed []FailedJob) error
}

// Exporter writes the run result to a secondary artifact. Its outcome is
// independent of the durable store's.
type Exporter interface {
	Export(result RunResult) error
}

// Crawler sequences the pipeline: login, per-scope discovery, per-job
// extraction and filtering, then one batched save plus the JSON export.
// It owns the single browsing session for the lifetime of a run.
type Crawler struct {
	cfg      *config.Config
	pages    PageOpener
	store    Store
	exporter Exporter
	logger   *log.Logger
}

func New(cfg *config.Config, pages PageOpener, store Store, exporter Exporter, logger *log.Logger) *Crawler {
	return &Crawler{cfg: cfg, pages: pages, store: store, exporter: exporter, logger: logger}
}

// Run executes one complete crawl. A login failure aborts the run; a
// failure on any single job is recorded and the loop continues. The
// browsing session is released on every exit path.
func (c *Crawler) Run(ctx context.Context) (*RunResult, error) {
	page, err := c.pages.NewPage()
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := page.Close(); err != nil {
			c.logger.Printf("⚠️ Failed to close page: %v", err)
		}
	}()

	if err := Login(page, c.cfg, c.logger); err != nil {
		return nil, err
	}

	discoverer := NewDiscoverer(c.cfg, c.logger)
	extractor := NewExtractor(c.cfg, c.logger)

	//run-wide dedup: an id discovered under two scopes is processed once
	seen := mapset.NewSet[string]()
	var jobIDs []string
	for _, geoID := range c.cfg.GeoIDs {
		for _, id := range discoverer.Discover(ctx, page, geoID) {
			if seen.Add(id) {
				jobIDs = append(jobIDs, id)
			}
		}
	}
	c.logger.Printf("📦 %d unique jobs discovered across %d locations", len(jobIDs), len(c.cfg.GeoIDs))

	result := &RunResult{}
	for i, jobID := range jobIDs {
		if ctx.Err() != nil {
			c.logger.Printf("🛑 Run cancelled after %d/%d jobs", i, len(jobIDs))
			break
		}
		if i > 0 && c.cfg.PaceMaxMs > 0 {
			browser.RandomDelay(c.cfg.PaceMinMs, c.cfg.PaceMaxMs)
		}

		details, err := extractor.Extract(ctx, page, jobID)
		if err != nil {
			c.logger.Printf("⚠️ %v", err)
			result.Failed = append(result.Failed, FailedJob{
				JobID: jobID,
				Error: err.Error(),
				Stage: StageExtraction,
			})
			continue
		}

		if !Accepts(*details, c.cfg.Contains, c.cfg.NonContains) {
			//deliberate exclusion, not an error
			c.logger.Printf("🚫 Filtered out: %s - %s", details.Title, details.Company)
			continue
		}

		c.logger.Printf("✅ %s - %s", details.Title, details.Company)
		result.Jobs = append(result.Jobs, *details)
	}

	var saveErr error
	if len(result.Jobs) > 0 || len(result.Failed) > 0 {
		if saveErr = c.store.SaveBatch(ctx, result.Jobs, result.Failed); saveErr != nil {
			c.logger.Printf("❌ Batch save failed and was rolled back: %v", saveErr)
		} else {
			c.logger.Printf("💾 Saved %d successful and %d failed jobs", len(result.Jobs), len(result.Failed))
		}

		//export is decoupled from the durable store outcome
		if c.exporter != nil {
			if err := c.exporter.Export(*result); err != nil {
				c.logger.Printf("⚠️ Export failed: %v", err)
			}
		}
	} else {
		c.logger.Println("ℹ️ Empty run, nothing to persist")
	}

	if saveErr != nil {
		return result, &PersistenceError{Err: saveErr}
	}
	return result, nil
}
