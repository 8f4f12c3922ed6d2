package logicalstatemanager

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/wheelibin/ledpanel/internal/events"
	"github.com/wheelibin/ledpanel/internal/models"
	"github.com/wheelibin/ledpanel/internal/scene"
)

var ErrNoStrip = errors.New("no strip selected")

type eventBus interface {
	Publish(ev events.Event)
	Subscribe(handler any) func()
}

type colorSource interface {
	Channels() models.Channels
	PendingCommands() []scene.Command
	SetSelectedRange(startPercent *float64, endPercent *float64)
}

type sceneEvaluator interface {
	Evaluate(cmds []scene.Command, ledCount int, channels models.Channels) []models.LED
}

type sceneStore interface {
	GetScene(ctx context.Context, strip models.Strip, name string) (string, error)
	SaveScene(ctx context.Context, strip models.Strip, name string, text string) error
	LedCount(ctx context.Context, strip models.Strip, fallback int) int
}

// LogicalStateManager owns the scene being edited and the preview rendered from it
type LogicalStateManager struct {
	logger          *log.Logger
	bus             eventBus
	colors          colorSource
	evaluator       sceneEvaluator
	sceneStore      sceneStore
	defaultLedCount int

	mu        sync.RWMutex
	strip     *models.Strip
	sceneName string
	sceneText string
	ledCount  int
	preview   []models.LED
	seq       uint64
	shownSeq  uint64
	unsubs    []func()
}

func NewLogicalStateManager(
	logger *log.Logger,
	bus eventBus,
	colors colorSource,
	evaluator sceneEvaluator,
	sceneStore sceneStore,
	defaultLedCount int,
) *LogicalStateManager {
	return &LogicalStateManager{
		logger:          logger,
		bus:             bus,
		colors:          colors,
		evaluator:       evaluator,
		sceneStore:      sceneStore,
		defaultLedCount: defaultLedCount,
		ledCount:        defaultLedCount,
	}
}

// Start re-renders the preview whenever the colours or the selection change
func (m *LogicalStateManager) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.unsubs = append(m.unsubs,
		m.bus.Subscribe(func(events.ColorChanged) { m.Refresh() }),
		m.bus.Subscribe(func(events.SelectionChanged) { m.Refresh() }),
	)
}

func (m *LogicalStateManager) Stop() {
	m.mu.Lock()
	unsubs := m.unsubs
	m.unsubs = nil
	m.mu.Unlock()
	for _, unsub := range unsubs {
		unsub()
	}
}

func (m *LogicalStateManager) Strip() *models.Strip {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.strip
}

func (m *LogicalStateManager) SceneName() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sceneName
}

func (m *LogicalStateManager) SceneText() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sceneText
}

func (m *LogicalStateManager) LedCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.ledCount
}

func (m *LogicalStateManager) Preview() []models.LED {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]models.LED{}, m.preview...)
}

// Frame is the current preview as the rgb values sent to a strip
func (m *LogicalStateManager) Frame() []models.RGB {
	return scene.Frame(m.Preview())
}

func (m *LogicalStateManager) SetSceneName(name string) {
	m.mu.Lock()
	m.sceneName = name
	m.mu.Unlock()
}

func (m *LogicalStateManager) SetSceneText(text string) {
	m.mu.Lock()
	m.sceneText = text
	m.mu.Unlock()
	m.sceneChanged()
}

// AddCommand appends the command as a new line of the scene
func (m *LogicalStateManager) AddCommand(cmd scene.Command) {
	m.AddCommands([]scene.Command{cmd})
}

func (m *LogicalStateManager) AddCommands(cmds []scene.Command) {
	if len(cmds) == 0 {
		return
	}
	m.mu.Lock()
	text := m.sceneText
	if text != "" && !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	m.sceneText = text + scene.Format(cmds)
	m.mu.Unlock()

	m.logger.Debug("commands added", "count", len(cmds))
	m.sceneChanged()
}

// SetStrip makes strip the target of scene loads and saves and sizes the preview to it.
// A nil strip falls back to the default preview size.
func (m *LogicalStateManager) SetStrip(ctx context.Context, strip *models.Strip) {
	ledCount := m.defaultLedCount
	if strip != nil {
		ledCount = m.sceneStore.LedCount(ctx, *strip, m.defaultLedCount)
	}

	m.mu.Lock()
	m.strip = strip
	m.ledCount = ledCount
	m.mu.Unlock()

	if strip != nil {
		m.logger.Info("strip selected", "strip", strip.Name, "leds", ledCount)
		m.bus.Publish(events.StripSelected{Strip: *strip})
	}
	m.Refresh()
}

// LoadScene replaces the scene with the named scene from the strip and clears the selection
func (m *LogicalStateManager) LoadScene(ctx context.Context, name string) error {
	strip := m.Strip()
	if strip == nil {
		return ErrNoStrip
	}

	text, err := m.sceneStore.GetScene(ctx, *strip, name)
	if err != nil {
		m.logger.Error("unable to load scene", "scene", name, "err", err)
		return err
	}

	m.mu.Lock()
	m.sceneName = name
	m.sceneText = text
	m.mu.Unlock()

	m.colors.SetSelectedRange(nil, nil)
	m.sceneChanged()
	return nil
}

// SaveScene writes the scene to the strip, an empty name saves under the current name
func (m *LogicalStateManager) SaveScene(ctx context.Context, name string) error {
	strip := m.Strip()
	if strip == nil {
		return ErrNoStrip
	}

	m.mu.Lock()
	if name == "" {
		name = m.sceneName
	}
	m.sceneName = name
	text := m.sceneText
	m.mu.Unlock()

	if name == "" {
		return errors.New("scene name required")
	}

	if err := m.sceneStore.SaveScene(ctx, *strip, name, text); err != nil {
		m.logger.Error("unable to save scene", "scene", name, "err", err)
		return err
	}
	m.logger.Info("scene saved", "scene", name, "strip", strip.Name)
	return nil
}

// Refresh re-evaluates the scene plus the pending selection and publishes the preview
func (m *LogicalStateManager) Refresh() []models.LED {
	m.mu.Lock()
	m.seq++
	seq := m.seq
	text := m.sceneText
	ledCount := m.ledCount
	m.mu.Unlock()

	cmds, err := scene.Parse(text)
	if err != nil {
		m.logger.Warn("scene has invalid commands", "err", err)
	}
	cmds = append(cmds, m.colors.PendingCommands()...)

	leds := m.evaluator.Evaluate(cmds, ledCount, m.colors.Channels())

	m.mu.Lock()
	if seq > m.shownSeq {
		m.shownSeq = seq
		m.preview = leds
	}
	m.mu.Unlock()

	m.bus.Publish(events.PreviewUpdated{Seq: seq, Scene: text, LedCount: ledCount, Leds: leds})
	return leds
}

func (m *LogicalStateManager) sceneChanged() {
	m.mu.RLock()
	ev := events.SceneChanged{Name: m.sceneName, Text: m.sceneText}
	m.mu.RUnlock()
	m.Refresh()
	m.bus.Publish(ev)
}
