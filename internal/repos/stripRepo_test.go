package repos_test

import (
	"database/sql"
	"os"
	"testing"

	"github.com/charmbracelet/log"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wheelibin/ledpanel/internal/config"
	"github.com/wheelibin/ledpanel/internal/models"
	"github.com/wheelibin/ledpanel/internal/repos"
)

func newRepo(t *testing.T) *repos.StripRepo {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.FatalLevel})
	repo, err := repos.NewStripRepo(logger, db)
	require.NoError(t, err)
	return repo
}

var configured = []config.StripConfig{
	{Name: "desk", Host: "10.0.0.10"},
	{Name: "shelf", Host: "10.0.0.11"},
}

func Test_Sync(t *testing.T) {

	t.Run("adds configured strips", func(t *testing.T) {
		// arrange
		repo := newRepo(t)

		// act
		err := repo.Sync(configured)

		// assert
		assert.NoError(t, err)
		strips, err := repo.All()
		assert.NoError(t, err)
		assert.Equal(t, []models.Strip{
			{ID: 1, Name: "desk", Host: "10.0.0.10"},
			{ID: 2, Name: "shelf", Host: "10.0.0.11"},
		}, strips)
	})

	t.Run("keeps id and selection of existing hosts and removes stale ones", func(t *testing.T) {
		// arrange
		repo := newRepo(t)
		require.NoError(t, repo.Sync(configured))
		require.NoError(t, repo.SetSelected(2, true))
		require.NoError(t, repo.CacheConfig(1, models.DeviceConfig{LedCount: 10}))

		// act
		err := repo.Sync([]config.StripConfig{
			{Name: "bookshelf", Host: "10.0.0.11"},
			{Name: "tv", Host: "10.0.0.12"},
		})

		// assert
		assert.NoError(t, err)
		strips, _ := repo.All()
		assert.Len(t, strips, 2)
		assert.Equal(t, models.Strip{ID: 2, Name: "bookshelf", Host: "10.0.0.11", Selected: true}, strips[0])
		assert.Equal(t, "tv", strips[1].Name)
		assert.Greater(t, strips[1].ID, 2)
		assert.False(t, strips[1].Selected)
		cached, err := repo.CachedConfig(1)
		assert.NoError(t, err)
		assert.Nil(t, cached)
	})

	t.Run("returns unreadable rows as an error and rolls back", func(t *testing.T) {
		// arrange
		db, err := sql.Open("sqlite3", ":memory:")
		require.NoError(t, err)
		db.SetMaxOpenConns(1)
		t.Cleanup(func() { _ = db.Close() })
		_, err = db.Exec(`CREATE TABLE strip (
      id INTEGER PRIMARY KEY AUTOINCREMENT,
      name TEXT NOT NULL,
      host TEXT UNIQUE,
      selected INTEGER NOT NULL DEFAULT 0
    );
    INSERT INTO strip (name, host) VALUES ('ghost', NULL);`)
		require.NoError(t, err)
		logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.FatalLevel})
		repo, err := repos.NewStripRepo(logger, db)
		require.NoError(t, err)

		// act
		err = repo.Sync(configured)

		// assert
		assert.ErrorContains(t, err, "Error reading strip")
		var count int
		require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM strip").Scan(&count))
		assert.Equal(t, 1, count)
	})
}

func Test_Selection(t *testing.T) {

	t.Run("set selected", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Sync(configured))

		assert.NoError(t, repo.SetSelected(1, true))

		selected, err := repo.Selected()
		assert.NoError(t, err)
		assert.Equal(t, []models.Strip{{ID: 1, Name: "desk", Host: "10.0.0.10", Selected: true}}, selected)
	})

	t.Run("select all and none", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Sync(configured))

		assert.NoError(t, repo.SelectAll())
		selected, _ := repo.Selected()
		assert.Len(t, selected, 2)

		assert.NoError(t, repo.SelectNone())
		selected, _ = repo.Selected()
		assert.Empty(t, selected)
	})

	t.Run("unknown strip", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Sync(configured))

		assert.ErrorIs(t, repo.SetSelected(42, true), repos.ErrStripNotFound)
		_, err := repo.Get(42)
		assert.ErrorIs(t, err, repos.ErrStripNotFound)
	})

	t.Run("get", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Sync(configured))

		strip, err := repo.Get(2)

		assert.NoError(t, err)
		assert.Equal(t, "shelf", strip.Name)
	})
}

func Test_ConfigCache(t *testing.T) {
	// arrange
	repo := newRepo(t)
	require.NoError(t, repo.Sync(configured))
	cfg := models.DeviceConfig{
		Brightness: 128,
		Pins:       []models.PinConfig{{Status: "on", Count: 30}, {Status: "off", Count: 10}},
	}

	// act
	missing, missingErr := repo.CachedConfig(1)
	cacheErr := repo.CacheConfig(1, cfg)
	cached, cachedErr := repo.CachedConfig(1)
	updateErr := repo.CacheConfig(1, models.DeviceConfig{LedCount: 60})
	updated, _ := repo.CachedConfig(1)
	invalidateErr := repo.InvalidateConfig(1)
	invalidated, _ := repo.CachedConfig(1)

	// assert
	assert.NoError(t, missingErr)
	assert.Nil(t, missing)
	assert.NoError(t, cacheErr)
	assert.NoError(t, cachedErr)
	assert.Equal(t, cfg, cached.Config)
	assert.False(t, cached.FetchedAt.IsZero())
	assert.Equal(t, 30, cached.Config.TotalLeds())
	assert.NoError(t, updateErr)
	assert.Equal(t, 60, updated.Config.LedCount)
	assert.NoError(t, invalidateErr)
	assert.Nil(t, invalidated)
}
