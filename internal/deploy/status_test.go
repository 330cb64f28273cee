package deploy

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brooksjoey/deploy-kit/internal/config"
	"github.com/brooksjoey/deploy-kit/internal/history"
)

func TestStatusSnapshotFields(t *testing.T) {
	cfg := config.Default()
	cfg.Environment = "production"
	cfg.Services = []string{"nginx"}

	snap := Status(cfg, nil)

	assert.Equal(t, "production", snap.Environment)
	assert.Equal(t, cfg, snap.Config)
	assert.Equal(t, []string{"nginx"}, snap.Services)
	assert.Nil(t, snap.LastDeploy)

	_, err := time.Parse(time.RFC3339, snap.Timestamp)
	assert.NoError(t, err, "timestamp must be RFC 3339")
}

func TestStatusJSONKeys(t *testing.T) {
	raw, err := json.Marshal(Status(config.Default(), nil))
	require.NoError(t, err)

	var keys map[string]any
	require.NoError(t, json.Unmarshal(raw, &keys))
	for _, key := range []string{"environment", "timestamp", "config", "services"} {
		assert.Contains(t, keys, key)
	}
	assert.NotContains(t, keys, "lastDeploy", "omitted when no deploy was recorded")
}

func TestStatusIncludesLastDeploy(t *testing.T) {
	last := &history.Record{ID: "x", Action: history.ActionDeploy, Target: "deploy", Success: true}

	snap := Status(config.Default(), last)
	assert.Equal(t, last, snap.LastDeploy)
}
