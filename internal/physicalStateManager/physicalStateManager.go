package physicalstatemanager

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/wheelibin/ledpanel/internal/concurrency"
	"github.com/wheelibin/ledpanel/internal/constants"
	"github.com/wheelibin/ledpanel/internal/device"
	"github.com/wheelibin/ledpanel/internal/models"
)

type stripApiService interface {
	GetConfig(ctx context.Context, host string) (models.DeviceConfig, error)
	SaveConfig(ctx context.Context, host string, cfg models.DeviceConfig) error
	GetScript(ctx context.Context, host string, name string) (string, error)
	SaveScript(ctx context.Context, host string, name string, text string) error
	GetScene(ctx context.Context, host string, name string) (string, error)
	SaveScene(ctx context.Context, host string, name string, text string) error
	SetColor(ctx context.Context, host string, hue int, saturation float64, lightness float64) error
	SetWhite(ctx context.Context, host string, lightness float64) error
	SetOff(ctx context.Context, host string) error
	SendColors(ctx context.Context, host string, frame models.ColorFrame) error
}

type dbAccess interface {
	Selected() ([]models.Strip, error)
	CachedConfig(id int) (*models.CachedConfig, error)
	CacheConfig(id int, cfg models.DeviceConfig) error
	InvalidateConfig(id int) error
}

// PhysicalStateManager pushes state to the strips themselves
type PhysicalStateManager struct {
	logger          *log.Logger
	stripApiService stripApiService
	dbAccess        dbAccess
	throttle        time.Duration
}

func NewPhysicalStateManager(
	logger *log.Logger,
	stripApiService stripApiService,
	dbAccess dbAccess,
	throttle time.Duration,
) *PhysicalStateManager {
	return &PhysicalStateManager{
		logger:          logger,
		stripApiService: stripApiService,
		dbAccess:        dbAccess,
		throttle:        throttle,
	}
}

// SetColor sets every selected strip to a single colour
func (m *PhysicalStateManager) SetColor(ctx context.Context, hue int, saturation float64, lightness float64) error {
	m.logger.Debug("set color", "hue", hue, "saturation", saturation, "lightness", lightness)
	return m.eachSelected(ctx, func(ctx context.Context, s models.Strip) error {
		return m.stripApiService.SetColor(ctx, s.Host, hue, saturation, lightness)
	})
}

func (m *PhysicalStateManager) SetWhite(ctx context.Context, lightness float64) error {
	m.logger.Debug("set white", "lightness", lightness)
	return m.eachSelected(ctx, func(ctx context.Context, s models.Strip) error {
		return m.stripApiService.SetWhite(ctx, s.Host, lightness)
	})
}

func (m *PhysicalStateManager) SetOff(ctx context.Context) error {
	m.logger.Debug("set off")
	return m.eachSelected(ctx, func(ctx context.Context, s models.Strip) error {
		return m.stripApiService.SetOff(ctx, s.Host)
	})
}

func (m *PhysicalStateManager) eachSelected(ctx context.Context, job func(ctx context.Context, s models.Strip) error) error {
	strips, err := m.dbAccess.Selected()
	if err != nil {
		return err
	}
	if len(strips) == 0 {
		m.logger.Warn("no strips selected")
		return nil
	}

	tw := concurrency.NewThrottledWorker(m.throttle, func(ctx context.Context, s models.Strip) error {
		if err := job(ctx, s); err != nil {
			m.logger.Error("strip update failed", "strip", s.Name, "err", err)
			return err
		}
		return nil
	})
	return tw.Run(ctx, strips)
}

// GetConfig returns the cached strip config, reading it from the strip on a miss
func (m *PhysicalStateManager) GetConfig(ctx context.Context, strip models.Strip) (models.DeviceConfig, error) {
	cached, err := m.dbAccess.CachedConfig(strip.ID)
	if err != nil {
		m.logger.Error(err)
	}
	if cached != nil {
		return cached.Config, nil
	}

	cfg, err := m.stripApiService.GetConfig(ctx, strip.Host)
	if err != nil {
		return models.DeviceConfig{}, err
	}
	if err := m.dbAccess.CacheConfig(strip.ID, cfg); err != nil {
		m.logger.Error(err)
	}
	return cfg, nil
}

// LedCount is the number of leds the strip drives, or fallback when it can't be determined
func (m *PhysicalStateManager) LedCount(ctx context.Context, strip models.Strip, fallback int) int {
	cfg, err := m.GetConfig(ctx, strip)
	if err != nil {
		m.logger.Warn("using default led count", "strip", strip.Name, "err", err)
		return fallback
	}
	if n := cfg.TotalLeds(); n > 0 {
		return n
	}
	return fallback
}

func (m *PhysicalStateManager) SaveConfig(ctx context.Context, strip models.Strip, cfg models.DeviceConfig) error {
	if err := m.stripApiService.SaveConfig(ctx, strip.Host, cfg); err != nil {
		return err
	}
	return m.invalidate(strip)
}

func (m *PhysicalStateManager) GetScript(ctx context.Context, strip models.Strip, name string) (string, error) {
	return m.stripApiService.GetScript(ctx, strip.Host, name)
}

func (m *PhysicalStateManager) SaveScript(ctx context.Context, strip models.Strip, name string, text string) error {
	if err := m.stripApiService.SaveScript(ctx, strip.Host, name, text); err != nil {
		return err
	}
	return m.invalidate(strip)
}

func (m *PhysicalStateManager) GetScene(ctx context.Context, strip models.Strip, name string) (string, error) {
	return m.stripApiService.GetScene(ctx, strip.Host, name)
}

func (m *PhysicalStateManager) SaveScene(ctx context.Context, strip models.Strip, name string, text string) error {
	if err := m.stripApiService.SaveScene(ctx, strip.Host, name, text); err != nil {
		return err
	}
	return m.invalidate(strip)
}

// the strip's script and scene lists live in its config, so it has to be read again
func (m *PhysicalStateManager) invalidate(strip models.Strip) error {
	if err := m.dbAccess.InvalidateConfig(strip.ID); err != nil {
		return fmt.Errorf("error invalidating config for strip (%s): %w", strip.Name, err)
	}
	return nil
}

// SendFrame posts per-led colours using the strip's configured brightness and pins
func (m *PhysicalStateManager) SendFrame(ctx context.Context, strip models.Strip, leds []models.RGB) error {
	cfg, err := m.GetConfig(ctx, strip)
	if err != nil {
		m.logger.Warn("sending frame without strip config", "strip", strip.Name, "err", err)
	}
	return m.stripApiService.SendColors(ctx, strip.Host, models.ColorFrame{
		Brightness: cfg.Brightness,
		Pins:       cfg.Pins,
		Leds:       leds,
	})
}

// Animate sends the frame on every tick, rotating it by one led each time the strip accepts it.
// It returns when ctx is done.
func (m *PhysicalStateManager) Animate(ctx context.Context, strip models.Strip, frame []models.RGB, interval time.Duration) error {
	if interval <= 0 {
		interval = constants.AnimateInterval
	}
	leds := append([]models.RGB{}, frame...)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.logger.Debug("animation stopped", "strip", strip.Name)
			return nil
		case <-ticker.C:
			err := m.SendFrame(ctx, strip, leds)
			switch {
			case err == nil:
				leds = Rotate(leds)
			case errors.Is(err, device.ErrBusy):
				m.logger.Debug("strip busy, frame skipped", "strip", strip.Name)
			default:
				m.logger.Error("animation frame failed", "strip", strip.Name, "err", err)
			}
		}
	}
}

// Rotate moves every led one position along the strip, the last wrapping to the start
func Rotate(leds []models.RGB) []models.RGB {
	if len(leds) < 2 {
		return leds
	}
	rotated := make([]models.RGB, len(leds))
	rotated[0] = leds[len(leds)-1]
	copy(rotated[1:], leds[:len(leds)-1])
	return rotated
}
