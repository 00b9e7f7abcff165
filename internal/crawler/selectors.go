package crawler

// Structural markers on linkedin.com. Fixed per target schema version;
// field extraction is not configurable.
const (
	baseURL       = "https://www.linkedin.com"
	loginURL      = baseURL + "/login"
	jobsSearchURL = baseURL + "/jobs/search"

	selEmailInput    = "#username"
	selPasswordInput = "#password"
	selLoginSubmit   = "[type=submit]"
	selGlobalNav     = "#global-nav"

	selJobCard  = `[data-job-id]:not([data-job-id="search"])`
	attrJobID   = "data-job-id"
	selNextPage = "li.active + li"

	selJobTitle    = ".job-details-jobs-unified-top-card__job-title"
	selCompanyName = ".job-details-jobs-unified-top-card__company-name"
	selDescription = ".jobs-description__content"
	selLocation    = ".job-details-jobs-unified-top-card__primary-description-container"
)
