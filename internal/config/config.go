// Load envs from .env
// Load optional YAML overlay
// Resolve location names and date filters through injected mappings
// Validate config

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Mappings are the provider lookup tables: human-readable location name
// to geoId, and date filter name to the f_TPR URL token. Injected so the
// tables stay immutable and swappable in tests.
type Mappings struct {
	Locations   map[string]string
	DateFilters map[string]string
}

func DefaultMappings() Mappings {
	return Mappings{
		Locations: map[string]string{
			"uk":          "101165590",
			"netherlands": "102890719",
			"germany":     "101282230",
			"uruguay":     "100867946",
		},
		DateFilters: map[string]string{
			"past_24h":   "r86400",
			"past_week":  "r604800",
			"past_month": "r2592000",
			"any_time":   "",
		},
	}
}

// WaitBudgets are the three settle budgets used as upper bounds on
// condition waits: Short after a pagination click, Medium after a full
// navigation, Long for the post-login challenge window.
type WaitBudgets struct {
	Short  time.Duration
	Medium time.Duration
	Long   time.Duration
}

type Config struct {
	Keyword     string   `yaml:"keyword"`
	Locations   []string `yaml:"locations"`
	DateFilter  string   `yaml:"date_filter"`
	Contains    []string `yaml:"contains"`
	NonContains []string `yaml:"non_contains"`
	//Credentials
	Email    string `yaml:"-"`
	Password string `yaml:"-"`
	//Run mode & outputs
	Headless     bool   `yaml:"headless"`
	OutputPath   string `yaml:"output_file"`
	DatabasePath string `yaml:"database_path"`
	//Optional run report
	TelegramToken  string `yaml:"-"`
	TelegramChatID int64  `yaml:"-"`

	Waits         WaitBudgets   `yaml:"-"`
	RetryAttempts int           `yaml:"-"`
	RetryBackoff  time.Duration `yaml:"-"`

	//Pacing between detail fetches, in milliseconds. Zero disables it.
	PaceMinMs int `yaml:"-"`
	PaceMaxMs int `yaml:"-"`

	//Resolved through Mappings, not set directly
	GeoIDs          []string `yaml:"-"`
	DateFilterToken string   `yaml:"-"`
}

// Load builds the run configuration from configs/config.yaml (when
// present) overridden by environment variables, and resolves the
// location and date filter names through the given mappings.
func Load(mappings Mappings) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	data, err := os.ReadFile("configs/config.yaml")
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config.yaml: %w", err)
		}
	}

	//Override with env vars
	if v := os.Getenv("KEYWORDS"); v != "" {
		cfg.Keyword = v
	}
	if v := os.Getenv("LOCATIONS"); v != "" {
		cfg.Locations = splitList(v)
	}
	if v := os.Getenv("DATE_FILTER"); v != "" {
		cfg.DateFilter = v
	}
	if v := os.Getenv("CONTAINS"); v != "" {
		cfg.Contains = splitList(v)
	}
	if v := os.Getenv("NON_CONTAINS"); v != "" {
		cfg.NonContains = splitList(v)
	}
	if v := os.Getenv("LINKEDIN_EMAIL"); v != "" {
		cfg.Email = v
	}
	if v := os.Getenv("LINKEDIN_PASSWORD"); v != "" {
		cfg.Password = v
	}
	if v := os.Getenv("HEADLESS"); v != "" {
		cfg.Headless = strings.EqualFold(v, "true")
	}
	if v := os.Getenv("OUTPUT_FILE"); v != "" {
		cfg.OutputPath = v
	}
	if v := os.Getenv("DATABASE_PATH"); v != "" {
		cfg.DatabasePath = v
	}
	cfg.TelegramToken = os.Getenv("TELEGRAM_BOT_TOKEN")
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid TELEGRAM_CHAT_ID: %w", err)
		}
		cfg.TelegramChatID = id
	}

	//Set default values if not set
	if cfg.DateFilter == "" {
		cfg.DateFilter = "past_24h"
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = "jobs.json"
	}
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = "jobs.db"
	}

	cfg.Waits = WaitBudgets{Short: 5 * time.Second, Medium: 10 * time.Second, Long: 15 * time.Second}
	if d, err := envDuration("WAIT_SHORT"); err != nil {
		return nil, err
	} else if d > 0 {
		cfg.Waits.Short = d
	}
	if d, err := envDuration("WAIT_MEDIUM"); err != nil {
		return nil, err
	} else if d > 0 {
		cfg.Waits.Medium = d
	}
	if d, err := envDuration("WAIT_LONG"); err != nil {
		return nil, err
	} else if d > 0 {
		cfg.Waits.Long = d
	}

	cfg.RetryAttempts = 3
	if v := os.Getenv("RETRY_ATTEMPTS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("RETRY_ATTEMPTS must be a positive integer, got %q", v)
		}
		cfg.RetryAttempts = n
	}
	cfg.RetryBackoff = time.Second
	if d, err := envDuration("RETRY_BACKOFF"); err != nil {
		return nil, err
	} else if d > 0 {
		cfg.RetryBackoff = d
	}
	cfg.PaceMinMs, cfg.PaceMaxMs = 500, 1500

	//Validate required fields and resolve mappings
	if cfg.Keyword == "" {
		return nil, fmt.Errorf("KEYWORDS is required")
	}
	if cfg.Email == "" || cfg.Password == "" {
		return nil, fmt.Errorf("LINKEDIN_EMAIL and LINKEDIN_PASSWORD are required")
	}
	if len(cfg.Locations) == 0 {
		return nil, fmt.Errorf("at least one location is required")
	}
	for _, loc := range cfg.Locations {
		geoID, ok := mappings.Locations[strings.ToLower(strings.TrimSpace(loc))]
		if !ok {
			return nil, fmt.Errorf("unknown location %q", loc)
		}
		cfg.GeoIDs = append(cfg.GeoIDs, geoID)
	}
	token, ok := mappings.DateFilters[cfg.DateFilter]
	if !ok {
		return nil, fmt.Errorf("unknown date filter %q", cfg.DateFilter)
	}
	cfg.DateFilterToken = token

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func envDuration(key string) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%s must be a positive duration, got %q", key, v)
	}
	return d, nil
}
