package panel

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"image"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	_ "github.com/mattn/go-sqlite3"
	"github.com/samber/lo"
	"github.com/wheelibin/ledpanel/internal/colors"
	"github.com/wheelibin/ledpanel/internal/config"
	"github.com/wheelibin/ledpanel/internal/constants"
	"github.com/wheelibin/ledpanel/internal/device"
	"github.com/wheelibin/ledpanel/internal/events"
	"github.com/wheelibin/ledpanel/internal/gradient"
	logicalstatemanager "github.com/wheelibin/ledpanel/internal/logicalStateManager"
	"github.com/wheelibin/ledpanel/internal/models"
	physicalstatemanager "github.com/wheelibin/ledpanel/internal/physicalStateManager"
	"github.com/wheelibin/ledpanel/internal/repos"
	"github.com/wheelibin/ledpanel/internal/scene"
	"github.com/wheelibin/ledpanel/internal/selection"
	"github.com/wheelibin/ledpanel/internal/spectrum"
)

// Panel wires the control panel services together
type Panel struct {
	logger *log.Logger
	cfg    *config.Config
	db     *sql.DB

	Bus         *events.Bus
	Hues        *spectrum.HueResolver
	Colors      *colors.Manager
	Engine      *scene.Engine
	Strips      *repos.StripRepo
	Devices     *device.Pool
	Physical    *physicalstatemanager.PhysicalStateManager
	Logical     *logicalstatemanager.LogicalStateManager
	Selector    *selection.RangeSelector
	FirstSlider *selection.HueSlider
	LastSlider  *selection.HueSlider
}

func New(logger *log.Logger, cfg *config.Config) (*Panel, error) {
	logger.Debug("Panel.New")

	db, err := sql.Open("sqlite3", cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}
	// a second connection to :memory: would see an empty database
	db.SetMaxOpenConns(1)

	stripRepo, err := repos.NewStripRepo(logger, db)
	if err != nil {
		db.Close()
		return nil, err
	}
	if err := stripRepo.Sync(cfg.Strips); err != nil {
		db.Close()
		return nil, err
	}

	bus := events.New()
	hues := spectrum.NewHueResolver(logger, loadSpectrum(logger, cfg))
	colorManager := colors.NewManager(logger, hues, bus)
	engine := scene.NewEngine(logger, gradient.NewInterpolator(logger, hues))
	pool := device.NewPool(logger, &http.Client{Timeout: 10 * time.Second}, cfg.InFlightResetDelay)
	physical := physicalstatemanager.NewPhysicalStateManager(logger, pool, stripRepo, cfg.Throttle)

	previewLedCount := cfg.PreviewLedCount
	if previewLedCount < 1 {
		previewLedCount = constants.DefaultPreviewLedCount
	}
	logical := logicalstatemanager.NewLogicalStateManager(logger, bus, colorManager, engine, physical, previewLedCount)

	p := &Panel{
		logger:      logger,
		cfg:         cfg,
		db:          db,
		Bus:         bus,
		Hues:        hues,
		Colors:      colorManager,
		Engine:      engine,
		Strips:      stripRepo,
		Devices:     pool,
		Physical:    physical,
		Logical:     logical,
		Selector:    selection.NewRangeSelector(logger, colorManager, previewLedCount),
		FirstSlider: selection.NewHueSlider(logger, colorManager, colors.First, hues.Width()),
		LastSlider:  selection.NewHueSlider(logger, colorManager, colors.Last, hues.Width()),
	}

	logical.Start()
	logical.Refresh()

	return p, nil
}

func loadSpectrum(logger *log.Logger, cfg *config.Config) image.Image {
	if cfg.SpectrumImage != "" {
		img, err := spectrum.Load(cfg.SpectrumImage)
		if err == nil {
			return img
		}
		logger.Warn("using generated spectrum", "err", err)
	}
	return spectrum.Rainbow(cfg.SpectrumWidth, constants.DefaultSpectrumHeight)
}

// Run keeps the strip registry in line with the config file until ctx is done
func (p *Panel) Run(ctx context.Context) {
	p.logger.Debug("Panel.Run")

	config.Watch(p.logger, func(cfg *config.Config) {
		if err := p.Resync(ctx, cfg); err != nil {
			p.logger.Error(err)
		}
	})

	<-ctx.Done()
	p.logger.Info("Panel.Run: stop signal received")
}

func (p *Panel) Close() error {
	p.Logical.Stop()
	return p.db.Close()
}

// Resync applies a reloaded config's strips
func (p *Panel) Resync(ctx context.Context, cfg *config.Config) error {
	if err := p.Strips.Sync(cfg.Strips); err != nil {
		return err
	}
	p.cfg = cfg
	return p.updateEditorStrip(ctx)
}

func (p *Panel) Config() *config.Config {
	return p.cfg
}

func (p *Panel) ListStrips() ([]models.Strip, error) {
	return p.Strips.All()
}

func (p *Panel) Strip(id int) (models.Strip, error) {
	return p.Strips.Get(id)
}

// SelectStrips makes ids the selected strips
func (p *Panel) SelectStrips(ctx context.Context, ids []int) error {
	if err := p.Strips.SelectNone(); err != nil {
		return err
	}
	for _, id := range lo.Uniq(ids) {
		if err := p.Strips.SetSelected(id, true); err != nil {
			return err
		}
	}
	return p.updateEditorStrip(ctx)
}

func (p *Panel) ToggleStrip(ctx context.Context, id int) error {
	s, err := p.Strips.Get(id)
	if err != nil {
		return err
	}
	if err := p.Strips.SetSelected(id, !s.Selected); err != nil {
		return err
	}
	return p.updateEditorStrip(ctx)
}

func (p *Panel) SelectAll(ctx context.Context) error {
	if err := p.Strips.SelectAll(); err != nil {
		return err
	}
	return p.updateEditorStrip(ctx)
}

func (p *Panel) SelectNone(ctx context.Context) error {
	if err := p.Strips.SelectNone(); err != nil {
		return err
	}
	return p.updateEditorStrip(ctx)
}

// a single selected strip is the one the scene editor works on
func (p *Panel) updateEditorStrip(ctx context.Context) error {
	selected, err := p.Strips.Selected()
	if err != nil {
		return err
	}

	var strip *models.Strip
	if len(selected) == 1 {
		strip = &selected[0]
	}
	p.Logical.SetStrip(ctx, strip)

	if n := p.Logical.LedCount(); n != p.Selector.Count() {
		p.Selector.Resize(n)
	}
	return nil
}

func (p *Panel) GetConfig(ctx context.Context, id int) (models.DeviceConfig, error) {
	s, err := p.Strips.Get(id)
	if err != nil {
		return models.DeviceConfig{}, err
	}
	return p.Physical.GetConfig(ctx, s)
}

func (p *Panel) SaveConfig(ctx context.Context, id int, cfg models.DeviceConfig) error {
	s, err := p.Strips.Get(id)
	if err != nil {
		return err
	}
	return p.Physical.SaveConfig(ctx, s, cfg)
}

func (p *Panel) GetScript(ctx context.Context, id int, name string) (string, error) {
	s, err := p.Strips.Get(id)
	if err != nil {
		return "", err
	}
	return p.Physical.GetScript(ctx, s, name)
}

func (p *Panel) SaveScript(ctx context.Context, id int, name string, text string) error {
	s, err := p.Strips.Get(id)
	if err != nil {
		return err
	}
	return p.Physical.SaveScript(ctx, s, name, text)
}

func (p *Panel) GetScene(ctx context.Context, id int, name string) (string, error) {
	s, err := p.Strips.Get(id)
	if err != nil {
		return "", err
	}
	return p.Physical.GetScene(ctx, s, name)
}

func (p *Panel) SaveScene(ctx context.Context, id int, name string, text string) error {
	s, err := p.Strips.Get(id)
	if err != nil {
		return err
	}
	return p.Physical.SaveScene(ctx, s, name, text)
}

func (p *Panel) SetColor(ctx context.Context, hue int, saturation float64, lightness float64) error {
	return p.Physical.SetColor(ctx, hue, saturation, lightness)
}

func (p *Panel) SetWhite(ctx context.Context, lightness float64) error {
	return p.Physical.SetWhite(ctx, lightness)
}

func (p *Panel) SetOff(ctx context.Context) error {
	return p.Physical.SetOff(ctx)
}

// Preview evaluates a command list. A ledCount below one uses the editor's current size.
func (p *Panel) Preview(text string, ledCount int, channels models.Channels) ([]models.LED, error) {
	if ledCount < 1 {
		ledCount = p.Logical.LedCount()
	}
	return p.Engine.EvaluateText(text, ledCount, channels)
}

// SendScene renders the command list for the strip and posts it as a single frame
func (p *Panel) SendScene(ctx context.Context, id int, text string) error {
	s, frame, err := p.stripFrame(ctx, id, text)
	if err != nil {
		return err
	}
	return p.Physical.SendFrame(ctx, s, frame)
}

// Animate renders the command list for the strip and rotates it along the strip until ctx is done
func (p *Panel) Animate(ctx context.Context, id int, text string, interval time.Duration) error {
	s, frame, err := p.stripFrame(ctx, id, text)
	if err != nil {
		return err
	}
	return p.Physical.Animate(ctx, s, frame, interval)
}

func (p *Panel) stripFrame(ctx context.Context, id int, text string) (models.Strip, []models.RGB, error) {
	s, err := p.Strips.Get(id)
	if err != nil {
		return models.Strip{}, nil, err
	}
	ledCount := p.Physical.LedCount(ctx, s, p.Logical.LedCount())
	leds, err := p.Engine.EvaluateText(text, ledCount, models.AllChannels())
	if err != nil && len(leds) == 0 {
		return models.Strip{}, nil, errors.Join(errors.New("nothing to send"), err)
	}
	return s, scene.Frame(leds), nil
}
