package repos

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"
	"github.com/wheelibin/ledpanel/internal/config"
	"github.com/wheelibin/ledpanel/internal/models"
)

var ErrStripNotFound = errors.New("strip not found")

const initSchema = `
  CREATE TABLE IF NOT EXISTS strip (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    host TEXT NOT NULL UNIQUE,
    selected INTEGER NOT NULL DEFAULT 0
  );

  CREATE TABLE IF NOT EXISTS strip_config (
    strip_id INTEGER PRIMARY KEY REFERENCES strip(id) ON DELETE CASCADE,
    config_json TEXT NOT NULL,
    fetched_at TIMESTAMP NOT NULL
  );
`

type StripRepo struct {
	logger *log.Logger
	db     *sql.DB
}

func NewStripRepo(logger *log.Logger, db *sql.DB) (*StripRepo, error) {

	_, err := db.Exec(initSchema)
	if err != nil {
		return nil, fmt.Errorf("Error initialising strip schema: %w", err)
	}

	return &StripRepo{logger: logger, db: db}, nil
}

// Sync makes the registry match the configured strips. Strips keep their id, selection and
// cached config while their host stays configured.
func (r *StripRepo) Sync(strips []config.StripConfig) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("Error syncing strips: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	hosts := []string{}
	for _, s := range strips {
		_, err := tx.Exec(
			`INSERT INTO strip (name, host) VALUES ($1, $2)
       ON CONFLICT(host) DO UPDATE SET name = excluded.name;`,
			s.Name, s.Host,
		)
		if err != nil {
			return fmt.Errorf("Error adding strip (%s): %w", s.Name, err)
		}
		hosts = append(hosts, s.Host)
	}

	rows, err := tx.Query("SELECT id, host FROM strip")
	if err != nil {
		return fmt.Errorf("Error reading strips: %w", err)
	}
	stale := []int{}
	for rows.Next() {
		var (
			id   int
			host string
		)
		if err := rows.Scan(&id, &host); err != nil {
			rows.Close()
			return fmt.Errorf("Error reading strip: %w", err)
		}
		if !lo.Contains(hosts, host) {
			stale = append(stale, id)
		}
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return fmt.Errorf("Error reading strips: %w", err)
	}
	rows.Close()

	for _, id := range stale {
		if _, err := tx.Exec("DELETE FROM strip_config WHERE strip_id = $1", id); err != nil {
			return fmt.Errorf("Error removing config for strip (%d): %w", id, err)
		}
		if _, err := tx.Exec("DELETE FROM strip WHERE id = $1", id); err != nil {
			return fmt.Errorf("Error removing strip (%d): %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("Error syncing strips: %w", err)
	}

	r.logger.Debug("strips synced", "configured", len(strips), "removed", len(stale))
	return nil
}

func (r *StripRepo) All() ([]models.Strip, error) {
	return r.query("SELECT id, name, host, selected FROM strip ORDER BY id")
}

func (r *StripRepo) Selected() ([]models.Strip, error) {
	return r.query("SELECT id, name, host, selected FROM strip WHERE selected = 1 ORDER BY id")
}

func (r *StripRepo) Get(id int) (models.Strip, error) {
	row := r.db.QueryRow("SELECT id, name, host, selected FROM strip WHERE id = $1", id)
	s := models.Strip{}
	err := row.Scan(&s.ID, &s.Name, &s.Host, &s.Selected)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Strip{}, fmt.Errorf("%w: %d", ErrStripNotFound, id)
		}
		return models.Strip{}, fmt.Errorf("Error reading strip (%d): %w", id, err)
	}
	return s, nil
}

func (r *StripRepo) SetSelected(id int, selected bool) error {
	res, err := r.db.Exec("UPDATE strip SET selected = $1 WHERE id = $2", selected, id)
	if err != nil {
		return fmt.Errorf("Error setting strip (%d) selected to %t: %w", id, selected, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %d", ErrStripNotFound, id)
	}
	return nil
}

func (r *StripRepo) SelectAll() error {
	if _, err := r.db.Exec("UPDATE strip SET selected = 1"); err != nil {
		return fmt.Errorf("Error selecting all strips: %w", err)
	}
	return nil
}

func (r *StripRepo) SelectNone() error {
	if _, err := r.db.Exec("UPDATE strip SET selected = 0"); err != nil {
		return fmt.Errorf("Error clearing strip selection: %w", err)
	}
	return nil
}

// CachedConfig returns nil when no config has been cached for the strip
func (r *StripRepo) CachedConfig(id int) (*models.CachedConfig, error) {
	row := r.db.QueryRow("SELECT config_json, fetched_at FROM strip_config WHERE strip_id = $1", id)
	var (
		raw       string
		fetchedAt time.Time
	)
	err := row.Scan(&raw, &fetchedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("Error reading cached config for strip (%d): %w", id, err)
	}

	cfg := models.DeviceConfig{}
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		return nil, fmt.Errorf("Error decoding cached config for strip (%d): %w", id, err)
	}
	return &models.CachedConfig{Config: cfg, FetchedAt: fetchedAt}, nil
}

func (r *StripRepo) CacheConfig(id int, cfg models.DeviceConfig) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("Error encoding config for strip (%d): %w", id, err)
	}
	_, err = r.db.Exec(
		`INSERT INTO strip_config (strip_id, config_json, fetched_at) VALUES ($1, $2, $3)
     ON CONFLICT(strip_id) DO UPDATE SET config_json = excluded.config_json, fetched_at = excluded.fetched_at`,
		id, string(data), time.Now())
	if err != nil {
		return fmt.Errorf("Error caching config for strip (%d): %w", id, err)
	}
	return nil
}

func (r *StripRepo) InvalidateConfig(id int) error {
	if _, err := r.db.Exec("DELETE FROM strip_config WHERE strip_id = $1", id); err != nil {
		return fmt.Errorf("Error invalidating config for strip (%d): %w", id, err)
	}
	return nil
}

func (r *StripRepo) query(q string) ([]models.Strip, error) {
	rows, err := r.db.Query(q)
	if err != nil {
		return nil, fmt.Errorf("Error reading strips: %w", err)
	}
	defer rows.Close()

	strips := []models.Strip{}
	for rows.Next() {
		s := models.Strip{}
		if err := rows.Scan(&s.ID, &s.Name, &s.Host, &s.Selected); err != nil {
			return nil, fmt.Errorf("Error reading strip: %w", err)
		}
		strips = append(strips, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("Error reading strips: %w", err)
	}
	return strips, nil
}
