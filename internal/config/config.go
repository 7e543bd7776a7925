package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
)

// Config holds environment-driven configuration.
type Config struct {
	Toggl struct {
		APIToken    string
		WorkspaceID int64  // optional; entries outside it are ignored
		ProjectID   int64  // optional; 0 means no project filter
		BaseURL     string // default: https://api.track.toggl.com
	}
	Discord struct {
		WebhookURL string
		ThreadID   string // optional; delivered as thread_id query param
	}
	Report struct {
		Date   string // today, yesterday or YYYY-MM-DD; default yesterday
		DryRun bool
	}
}

// Load reads configuration from environment variables.
func Load() (Config, error) {
	var cfg Config

	cfg.Toggl.APIToken = os.Getenv("TOGGL_API_TOKEN")
	if cfg.Toggl.APIToken == "" {
		return cfg, errors.New("TOGGL_API_TOKEN is required")
	}
	if ws := os.Getenv("TOGGL_WORKSPACE_ID"); ws != "" {
		v, err := strconv.ParseInt(ws, 10, 64)
		if err != nil {
			return cfg, errors.New("TOGGL_WORKSPACE_ID must be an integer")
		}
		cfg.Toggl.WorkspaceID = v
	}
	if pid := os.Getenv("TOGGL_PROJECT_ID"); pid != "" {
		v, err := strconv.ParseInt(pid, 10, 64)
		if err != nil {
			return cfg, errors.New("TOGGL_PROJECT_ID must be an integer")
		}
		cfg.Toggl.ProjectID = v
	}
	cfg.Toggl.BaseURL = os.Getenv("TOGGL_BASE_URL")
	if cfg.Toggl.BaseURL == "" {
		cfg.Toggl.BaseURL = "https://api.track.toggl.com"
	}

	cfg.Discord.WebhookURL = os.Getenv("DISCORD_WEBHOOK_URL")
	if cfg.Discord.WebhookURL == "" {
		return cfg, errors.New("DISCORD_WEBHOOK_URL is required")
	}
	u, err := url.Parse(cfg.Discord.WebhookURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return cfg, fmt.Errorf("DISCORD_WEBHOOK_URL must be an http(s) URL")
	}
	cfg.Discord.ThreadID = os.Getenv("DISCORD_THREAD_ID")

	cfg.Report.Date = os.Getenv("REPORT_DATE")
	cfg.Report.DryRun = parseBool(os.Getenv("DRY_RUN"))

	return cfg, nil
}

// parseBool accepts the usual truthy spellings; anything else is false.
func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes":
		return true
	}
	return false
}
