package crawler

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"

	"go-linkedin-jobhunter/internal/browser"
	"go-linkedin-jobhunter/internal/config"
	"go-linkedin-jobhunter/internal/retry"

	mapset "github.com/deckarep/golang-set/v2"
)

// Discoverer walks the paginated search results for one geo scope and
// collects job IDs. Errors mid-pagination stop that scope only; whatever
// was accumulated up to that point is kept.
type Discoverer struct {
	cfg    *config.Config
	logger *log.Logger
}

func NewDiscoverer(cfg *config.Config, logger *log.Logger) *Discoverer {
	return &Discoverer{cfg: cfg, logger: logger}
}

// Discover returns the job IDs found across all result pages of the
// scope, deduplicated, in first-seen order. The initial page fetch is
// retried; everything after that is single-shot because a pagination
// click is not safely repeatable.
func (d *Discoverer) Discover(ctx context.Context, page browser.Page, geoID string) []string {
	searchURL := fmt.Sprintf("%s?keywords=%s&f_TPR=%s&geoId=%s",
		jobsSearchURL, url.QueryEscape(d.cfg.Keyword), d.cfg.DateFilterToken, geoID)
	d.logger.Printf("🔍 Searching geoId=%s: %s", geoID, searchURL)

	err := retry.Do(ctx, d.cfg.RetryAttempts, d.cfg.RetryBackoff, func() error {
		if err := page.Navigate(searchURL); err != nil {
			return err
		}
		return page.WaitVisible(selJobCard, d.cfg.Waits.Medium)
	})
	if err != nil {
		d.logger.Printf("⚠️ geoId=%s: search page did not load: %v", geoID, err)
		return nil
	}

	seen := mapset.NewSet[string]()
	var ids []string

	for pageNum := 1; ; pageNum++ {
		cards, err := page.FindAll(selJobCard)
		if err != nil {
			d.logger.Printf("⚠️ geoId=%s page %d: reading job cards: %v", geoID, pageNum, err)
			break
		}

		added := 0
		for _, card := range cards {
			id, err := card.Attribute(attrJobID)
			if err != nil || id == "" {
				continue
			}
			//Add reports whether the id was new; duplicates across
			//pages (list reordering) are silently absorbed
			if seen.Add(id) {
				ids = append(ids, id)
				added++
			}
		}
		d.logger.Printf("  📄 Page %d: %d cards, %d new IDs", pageNum, len(cards), added)

		next, err := page.Find(selNextPage)
		if err != nil {
			if errors.Is(err, browser.ErrNotFound) {
				//no next control means the last page: normal termination
				break
			}
			d.logger.Printf("⚠️ geoId=%s page %d: locating next page: %v", geoID, pageNum, err)
			break
		}
		if err := next.Click(); err != nil {
			d.logger.Printf("⚠️ geoId=%s page %d: clicking next page: %v", geoID, pageNum, err)
			break
		}
		if err := page.WaitVisible(selJobCard, d.cfg.Waits.Short); err != nil {
			d.logger.Printf("⚠️ geoId=%s page %d: results did not settle: %v", geoID, pageNum, err)
			break
		}
	}

	d.logger.Printf("  🔗 geoId=%s: %d job IDs collected", geoID, len(ids))
	return ids
}
