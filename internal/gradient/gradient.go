package gradient

import (
	"math"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"
	"github.com/wheelibin/ledpanel/internal/constants"
	"github.com/wheelibin/ledpanel/internal/models"
)

type Channel int

const (
	Hue Channel = iota
	Saturation
	Level
)

func (c Channel) String() string {
	switch c {
	case Hue:
		return "hue"
	case Saturation:
		return "saturation"
	case Level:
		return "level"
	}
	return "unknown"
}

// Kind is the single letter used for the channel in command lists
func (c Channel) Kind() string {
	switch c {
	case Hue:
		return constants.CommandKindHue
	case Saturation:
		return constants.CommandKindSaturation
	case Level:
		return constants.CommandKindLevel
	}
	return ""
}

func ChannelForKind(kind string) (Channel, bool) {
	switch kind {
	case constants.CommandKindHue:
		return Hue, true
	case constants.CommandKindSaturation:
		return Saturation, true
	case constants.CommandKindLevel:
		return Level, true
	}
	return 0, false
}

// a linear interpolation of one colour channel
type Gradient struct {
	Channel    Channel
	StartValue float64
	EndValue   float64
}

// writes a channel value into an led
type Setter func(led *models.LED, value float64)

type hueResolver interface {
	Resolve(deviceHue float64) int
}

type Interpolator struct {
	logger *log.Logger
	hues   hueResolver
}

func NewInterpolator(logger *log.Logger, hues hueResolver) *Interpolator {
	return &Interpolator{logger: logger, hues: hues}
}

// Setter selects the led field written for a channel, hue values are resolved through the spectrum
func (i *Interpolator) Setter(ch Channel) Setter {
	switch ch {
	case Hue:
		return func(led *models.LED, value float64) {
			deviceHue := value
			hue := i.hues.Resolve(value)
			led.DeviceHue = &deviceHue
			led.Hue = &hue
		}
	case Saturation:
		return func(led *models.LED, value float64) {
			v := value
			led.Saturation = &v
		}
	default:
		return func(led *models.LED, value float64) {
			v := value
			led.Level = &v
		}
	}
}

// ValueAt returns the interpolated value for index within the span startIndex..endIndex
func ValueAt(g Gradient, startIndex int, endIndex int, index int) float64 {
	if startIndex == endIndex || index == startIndex {
		return g.StartValue
	}
	if index == endIndex {
		return g.EndValue
	}
	progress := float64(index-startIndex) / float64(endIndex-startIndex)
	return g.StartValue + (g.EndValue-g.StartValue)*progress
}

// PercentToIndex maps a percentage of the strip to an led index (not clamped)
func PercentToIndex(percent float64, count int) int {
	return int(math.Floor(percent * float64(count) / 100))
}

// ApplyIndexes writes the gradient into leds between both indexes inclusive and returns the
// number of leds written. Invalid input aborts without writing anything.
func (i *Interpolator) ApplyIndexes(leds []models.LED, g Gradient, startIndex int, endIndex int) int {
	if len(leds) == 0 {
		i.logger.Warn("gradient not applied, no leds", "channel", g.Channel)
		return 0
	}
	if invalid(g.StartValue) || invalid(g.EndValue) {
		i.logger.Warn("gradient not applied, invalid value", "channel", g.Channel, "start", g.StartValue, "end", g.EndValue)
		return 0
	}

	startIndex = lo.Clamp(startIndex, 0, len(leds)-1)
	endIndex = lo.Clamp(endIndex, 0, len(leds)-1)

	from, to := startIndex, endIndex
	if from > to {
		from, to = to, from
	}

	set := i.Setter(g.Channel)
	written := 0
	for idx := from; idx <= to; idx++ {
		set(&leds[idx], ValueAt(g, startIndex, endIndex, idx))
		written++
	}
	return written
}

// ApplyPercent applies the gradient over a range given as percentages of the strip
func (i *Interpolator) ApplyPercent(leds []models.LED, g Gradient, startPercent float64, endPercent float64) int {
	if invalid(startPercent) || invalid(endPercent) {
		i.logger.Warn("gradient not applied, invalid range", "channel", g.Channel, "start", startPercent, "end", endPercent)
		return 0
	}
	startPercent = lo.Clamp(startPercent, 0, 100)
	endPercent = lo.Clamp(endPercent, 0, 100)
	count := len(leds)
	return i.ApplyIndexes(leds, g, PercentToIndex(startPercent, count), PercentToIndex(endPercent, count))
}

func invalid(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
