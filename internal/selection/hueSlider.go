package selection

import (
	"math"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"
	"github.com/wheelibin/ledpanel/internal/colors"
	"github.com/wheelibin/ledpanel/internal/constants"
)

type hueSetter interface {
	SetHueRangeValue(slot colors.Slot, value float64)
}

// HueSlider picks a device hue by position along the reference spectrum
type HueSlider struct {
	logger *log.Logger
	colors hueSetter
	slot   colors.Slot
	width  int

	mu       sync.RWMutex
	position float64
}

func NewHueSlider(logger *log.Logger, colors hueSetter, slot colors.Slot, width int) *HueSlider {
	if width < 1 {
		width = constants.DefaultSpectrumWidth
	}
	return &HueSlider{logger: logger, colors: colors, slot: slot, width: width}
}

func (s *HueSlider) Slot() colors.Slot {
	return s.slot
}

func (s *HueSlider) Width() int {
	return s.width
}

func (s *HueSlider) Position() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.position
}

func (s *HueSlider) Press(x float64) {
	s.logger.Debug("slider pressed", "slot", s.slot, "x", x)
}

// Drag moves the slider to x and updates the bound colour's hue
func (s *HueSlider) Drag(x float64) {
	if math.IsNaN(x) {
		return
	}
	x = lo.Clamp(x, 0, float64(s.width-1))

	s.mu.Lock()
	s.position = x
	s.mu.Unlock()

	s.colors.SetHueRangeValue(s.slot, s.Value(x))
}

func (s *HueSlider) Release(x float64) {
	s.logger.Debug("slider released", "slot", s.slot, "x", x)
}

// Value converts a slider position to a device hue, round(x*255/width)
func (s *HueSlider) Value(x float64) float64 {
	return math.Round(x * constants.DeviceHueMax / float64(s.width))
}
