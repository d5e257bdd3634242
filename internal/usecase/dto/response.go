package dto

import "github.com/transit-dashboard/internal/domain"

// FilterOptionsResponse - values for the three filter controls.
type FilterOptionsResponse struct {
	Days       []string `json:"days"`
	DefaultDay string   `json:"default_day"`
	Corridors  []string `json:"corridors"`
	Banks      []string `json:"banks"`
}

// DatasetInfo - provenance of the loaded table.
type DatasetInfo struct {
	Source      string `json:"source"`
	Rows        int    `json:"rows"`
	Fingerprint string `json:"fingerprint"`
	LoadedAt    string `json:"loaded_at"`
}

// DashboardResult - computed dashboard and whether it came from the cache.
type DashboardResult struct {
	Dashboard *domain.Dashboard
	Cached    bool
}
