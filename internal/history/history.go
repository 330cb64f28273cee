package history

import (
	"encoding/json"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/brooksjoey/deploy-kit/internal/logger"
)

// Actions recorded in the history file.
const (
	ActionDeploy = "deploy"
	ActionBackup = "backup"
)

// Record is one deploy or backup run.
type Record struct {
	ID        string `json:"id"`        // unique run id
	Action    string `json:"action"`    // ActionDeploy or ActionBackup
	Target    string `json:"target"`    // script name, or backup destination
	Success   bool   `json:"success"`   // outcome of the run
	Timestamp string `json:"timestamp"` // RFC 3339 time the run finished
}

// History holds every recorded run, oldest first.
type History struct {
	Runs []Record `json:"runs"`
}

// Load reads the run history from the JSON file at path.
// If the file does not exist or cannot be parsed, it returns a new empty
// History so callers never have to deal with a nil or half-built value.
func Load(path string) *History {
	raw, err := os.ReadFile(path)
	if err != nil {
		return &History{Runs: []Record{}}
	}

	var h History
	_ = json.Unmarshal(raw, &h)
	if h.Runs == nil {
		h.Runs = []Record{}
	}
	return &h
}

// Save writes the history to path as pretty-printed JSON. Errors during
// marshalling or writing are logged but not propagated: losing a history
// record never fails a deployment.
func Save(path string, h *History) {
	raw, err := json.MarshalIndent(h, "", "  ")
	if err != nil {
		logger.Error("[ERROR] Failed to marshal history: %v\n", err)
		return
	}

	logger.Debug("[DEBUG] Writing history to %s:\n%s\n", path, string(raw))

	if err := os.WriteFile(path, raw, 0644); err != nil {
		logger.Error("[ERROR] Failed to write history file %s: %v\n", path, err)
	}
}

// Append adds a run record stamped with the current time and a fresh id,
// and returns it.
func (h *History) Append(action, target string, success bool) Record {
	rec := Record{
		ID:        uuid.NewString(),
		Action:    action,
		Target:    target,
		Success:   success,
		Timestamp: time.Now().Format(time.RFC3339),
	}
	h.Runs = append(h.Runs, rec)
	return rec
}

// LastDeploy returns the most recent successful deploy run, or nil when none
// has been recorded.
func (h *History) LastDeploy() *Record {
	for i := len(h.Runs) - 1; i >= 0; i-- {
		if h.Runs[i].Action == ActionDeploy && h.Runs[i].Success {
			return &h.Runs[i]
		}
	}
	return nil
}
