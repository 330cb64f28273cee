package history

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsEmptyHistory(t *testing.T) {
	h := Load(filepath.Join(t.TempDir(), "history.json"))

	require.NotNil(t, h)
	assert.Empty(t, h.Runs)
}

func TestAppendSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")

	h := Load(path)
	h.Append(ActionDeploy, "deploy", true)
	h.Append(ActionBackup, "/var/www/html_backup_20260831_142557", false)
	Save(path, h)

	loaded := Load(path)
	require.Len(t, loaded.Runs, 2)

	first := loaded.Runs[0]
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, ActionDeploy, first.Action)
	assert.Equal(t, "deploy", first.Target)
	assert.True(t, first.Success)
	_, err := time.Parse(time.RFC3339, first.Timestamp)
	assert.NoError(t, err)

	assert.Equal(t, ActionBackup, loaded.Runs[1].Action)
	assert.False(t, loaded.Runs[1].Success)
	assert.NotEqual(t, first.ID, loaded.Runs[1].ID)
}

func TestLastDeploy(t *testing.T) {
	h := &History{}
	assert.Nil(t, h.LastDeploy(), "empty history has no last deploy")

	h.Append(ActionDeploy, "deploy", false)
	assert.Nil(t, h.LastDeploy(), "failed deploys do not count")

	h.Append(ActionDeploy, "deploy", true)
	h.Append(ActionDeploy, "rollback", true)
	h.Append(ActionBackup, "/tmp/backup", true)

	last := h.LastDeploy()
	require.NotNil(t, last)
	assert.Equal(t, "rollback", last.Target, "most recent successful deploy wins")
}

func TestLoadCorruptFileReturnsEmptyHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0644))

	h := Load(path)
	require.NotNil(t, h)
	assert.Empty(t, h.Runs)
}
