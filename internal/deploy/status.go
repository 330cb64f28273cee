package deploy

import (
	"time"

	"github.com/brooksjoey/deploy-kit/internal/config"
	"github.com/brooksjoey/deploy-kit/internal/history"
)

// Snapshot is the read-only status report printed by the status command.
type Snapshot struct {
	Environment string          `json:"environment"`
	Timestamp   string          `json:"timestamp"`
	Config      config.Config   `json:"config"`
	Services    []string        `json:"services"`
	LastDeploy  *history.Record `json:"lastDeploy,omitempty"`
}

// Status assembles the current status snapshot. It is a pure read with no
// side effects and cannot fail; last may be nil when no deploy has been
// recorded.
func Status(cfg config.Config, last *history.Record) Snapshot {
	return Snapshot{
		Environment: cfg.Environment,
		Timestamp:   time.Now().Format(time.RFC3339),
		Config:      cfg,
		Services:    cfg.Services,
		LastDeploy:  last,
	}
}
