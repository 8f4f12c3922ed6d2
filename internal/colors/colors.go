package colors

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"
	"github.com/wheelibin/ledpanel/internal/constants"
	"github.com/wheelibin/ledpanel/internal/events"
	"github.com/wheelibin/ledpanel/internal/gradient"
	"github.com/wheelibin/ledpanel/internal/models"
	"github.com/wheelibin/ledpanel/internal/scene"
)

var ErrInvalidRange = errors.New("invalid led range")

type hueResolver interface {
	Resolve(deviceHue float64) int
}

type eventPublisher interface {
	Publish(ev events.Event)
}

// Slot identifies one of the two colours a gradient is built from
type Slot int

const (
	First Slot = iota
	Last
)

func (s Slot) String() string {
	if s == Last {
		return "last"
	}
	return "first"
}

type HslColor struct {
	// device-native hue 0-255 as set by the hue slider
	HueRangeValue float64 `json:"hueRangeValue"`
	// resolved html hue 0-359
	HTMLHue    int      `json:"htmlHue"`
	Saturation float64  `json:"saturation"`
	Level      float64  `json:"level"`
	LedPercent *float64 `json:"ledPercent"`
}

// HSL renders the colour as an html hsl() string, disabled channels use their defaults
func (c HslColor) HSL(channels models.Channels) string {
	hue := constants.DefaultHue
	if channels.Hue {
		hue = c.HTMLHue
	}
	saturation := float64(constants.DefaultSaturation)
	if channels.Saturation {
		saturation = c.Saturation
	}
	level := float64(constants.DefaultLevel)
	if channels.Level {
		level = c.Level
	}
	return fmt.Sprintf("hsl(%d,%v%%,%v%%)", hue, saturation, level)
}

// Manager holds the colour selection state of the panel
type Manager struct {
	logger *log.Logger
	hues   hueResolver
	bus    eventPublisher

	mu           sync.RWMutex
	first        HslColor
	last         HslColor
	channels     models.Channels
	gradient     bool
	startPercent *float64
	endPercent   *float64
}

func NewManager(logger *log.Logger, hues hueResolver, bus eventPublisher) *Manager {
	initial := HslColor{
		HueRangeValue: 0,
		HTMLHue:       hues.Resolve(0),
		Saturation:    constants.DefaultSaturation,
		Level:         constants.DefaultLevel,
	}
	return &Manager{
		logger:   logger,
		hues:     hues,
		bus:      bus,
		first:    initial,
		last:     initial,
		channels: models.AllChannels(),
	}
}

func (m *Manager) Color(slot Slot) HslColor {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return *m.color(slot)
}

// EndColor is the last colour in gradient mode, otherwise the first
func (m *Manager) EndColor() HslColor {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.endColor()
}

func (m *Manager) Channels() models.Channels {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.channels
}

func (m *Manager) Gradient() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.gradient
}

func (m *Manager) SelectedRange() (*float64, *float64) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.startPercent, m.endPercent
}

// SetHueRangeValue stores the slider value for the colour and re-resolves its html hue
func (m *Manager) SetHueRangeValue(slot Slot, value float64) {
	if math.IsNaN(value) {
		return
	}
	value = lo.Clamp(value, 0, constants.DeviceHueMax)
	hue := m.hues.Resolve(value)

	m.mu.Lock()
	c := m.color(slot)
	c.HueRangeValue = value
	c.HTMLHue = hue
	m.mu.Unlock()

	m.logger.Debug("hue changed", "slot", slot, "value", value, "htmlHue", hue)
	m.changed()
}

func (m *Manager) SetSaturation(slot Slot, value float64) {
	m.mu.Lock()
	m.color(slot).Saturation = lo.Clamp(value, 0, 100)
	m.mu.Unlock()
	m.changed()
}

func (m *Manager) SetLevel(slot Slot, value float64) {
	m.mu.Lock()
	m.color(slot).Level = lo.Clamp(value, 0, 100)
	m.mu.Unlock()
	m.changed()
}

func (m *Manager) SetChannels(channels models.Channels) {
	m.mu.Lock()
	m.channels = channels
	m.mu.Unlock()
	m.changed()
}

func (m *Manager) ToggleChannel(ch gradient.Channel) {
	m.mu.Lock()
	switch ch {
	case gradient.Hue:
		m.channels.Hue = !m.channels.Hue
	case gradient.Saturation:
		m.channels.Saturation = !m.channels.Saturation
	case gradient.Level:
		m.channels.Level = !m.channels.Level
	}
	m.mu.Unlock()
	m.changed()
}

func (m *Manager) SetGradient(on bool) {
	m.mu.Lock()
	m.gradient = on
	m.mu.Unlock()
	m.changed()
}

func (m *Manager) ToggleGradient() {
	m.mu.Lock()
	m.gradient = !m.gradient
	m.mu.Unlock()
	m.changed()
}

// SetSelectedRange stores the committed selection, nil bounds clear it
func (m *Manager) SetSelectedRange(startPercent *float64, endPercent *float64) {
	m.mu.Lock()
	m.startPercent = startPercent
	m.endPercent = endPercent
	m.first.LedPercent = startPercent
	m.last.LedPercent = endPercent
	m.mu.Unlock()

	m.bus.Publish(events.SelectionChanged{StartPercent: startPercent, EndPercent: endPercent})
}

func (m *Manager) HueCommand() (scene.Command, error) {
	return m.command(gradient.Hue)
}

func (m *Manager) SaturationCommand() (scene.Command, error) {
	return m.command(gradient.Saturation)
}

func (m *Manager) LevelCommand() (scene.Command, error) {
	return m.command(gradient.Level)
}

// HSLCommands builds one command per enabled channel over the selected range
func (m *Manager) HSLCommands() ([]scene.Command, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.hasRange() {
		m.logger.Warn("no commands created, select a range first")
		return nil, ErrInvalidRange
	}
	return m.enabledCommands(), nil
}

// PendingCommands are the commands the current selection would add, nil without a selection
func (m *Manager) PendingCommands() []scene.Command {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.hasRange() {
		return nil
	}
	return m.enabledCommands()
}

func (m *Manager) command(ch gradient.Channel) (scene.Command, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.hasRange() {
		m.logger.Warn("no command created, select a range first", "channel", ch)
		return scene.Command{}, ErrInvalidRange
	}
	return m.commandFor(ch), nil
}

// callers hold the lock
func (m *Manager) enabledCommands() []scene.Command {
	cmds := []scene.Command{}
	if m.channels.Hue {
		cmds = append(cmds, m.commandFor(gradient.Hue))
	}
	if m.channels.Saturation {
		cmds = append(cmds, m.commandFor(gradient.Saturation))
	}
	if m.channels.Level {
		cmds = append(cmds, m.commandFor(gradient.Level))
	}
	return cmds
}

func (m *Manager) commandFor(ch gradient.Channel) scene.Command {
	start, end := m.first, m.endColor()
	var startValue, endValue float64
	switch ch {
	case gradient.Hue:
		startValue, endValue = start.HueRangeValue, end.HueRangeValue
	case gradient.Saturation:
		startValue, endValue = start.Saturation, end.Saturation
	default:
		startValue, endValue = start.Level, end.Level
	}
	return scene.NewCommand(ch, *m.startPercent, *m.endPercent, startValue, endValue)
}

func (m *Manager) hasRange() bool {
	return m.startPercent != nil && m.endPercent != nil && !math.IsNaN(*m.startPercent) && !math.IsNaN(*m.endPercent)
}

func (m *Manager) color(slot Slot) *HslColor {
	if slot == Last {
		return &m.last
	}
	return &m.first
}

func (m *Manager) endColor() HslColor {
	if m.gradient {
		return m.last
	}
	return m.first
}

func (m *Manager) changed() {
	m.mu.RLock()
	ev := events.ColorChanged{
		Hue:        m.channels.Hue,
		Saturation: m.channels.Saturation,
		Level:      m.channels.Level,
		Gradient:   m.gradient,
	}
	m.mu.RUnlock()
	m.bus.Publish(ev)
}
