package gradient_test

import (
	"math"
	"os"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/wheelibin/ledpanel/internal/gradient"
	"github.com/wheelibin/ledpanel/internal/models"
	"github.com/wheelibin/ledpanel/internal/spectrum"
)

func newInterpolator() *gradient.Interpolator {
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.FatalLevel})
	return gradient.NewInterpolator(logger, spectrum.NewHueResolver(logger, spectrum.Rainbow(256, 10)))
}

func written(leds []models.LED) int {
	n := 0
	for _, l := range leds {
		if l.Touched() {
			n++
		}
	}
	return n
}

func Test_ValueAt(t *testing.T) {

	g := gradient.Gradient{Channel: gradient.Level, StartValue: 10, EndValue: 90}

	tests := []struct {
		name     string
		start    int
		end      int
		index    int
		expected float64
	}{
		{name: "start index gets the start value", start: 0, end: 8, index: 0, expected: 10},
		{name: "end index gets the end value", start: 0, end: 8, index: 8, expected: 90},
		{name: "midpoint", start: 0, end: 8, index: 4, expected: 50},
		{name: "reversed span starts at the start index", start: 8, end: 0, index: 8, expected: 10},
		{name: "reversed span ends at the end index", start: 8, end: 0, index: 0, expected: 90},
		{name: "zero length span gets the start value", start: 3, end: 3, index: 3, expected: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, gradient.ValueAt(g, tt.start, tt.end, tt.index), 1e-9)
		})
	}
}

func Test_PercentToIndex(t *testing.T) {

	tests := []struct {
		percent  float64
		count    int
		expected int
	}{
		{0, 101, 0},
		{10, 101, 10},
		{50, 101, 50},
		{100, 101, 101},
		{33, 10, 3},
		{99.9, 10, 9},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, gradient.PercentToIndex(tt.percent, tt.count), "percent %v of %v", tt.percent, tt.count)
	}
}

func Test_ApplyIndexes(t *testing.T) {

	t.Run("writes one value per led in the span, strictly increasing", func(t *testing.T) {
		// arrange
		leds := make([]models.LED, 20)
		g := gradient.Gradient{Channel: gradient.Saturation, StartValue: 0, EndValue: 100}

		// act
		n := newInterpolator().ApplyIndexes(leds, g, 5, 15)

		// assert
		assert.Equal(t, 11, n)
		assert.Equal(t, 11, written(leds))
		assert.Equal(t, 0.0, *leds[5].Saturation)
		assert.Equal(t, 100.0, *leds[15].Saturation)
		for i := 6; i <= 15; i++ {
			assert.Greater(t, *leds[i].Saturation, *leds[i-1].Saturation)
		}
		assert.Nil(t, leds[4].Saturation)
		assert.Nil(t, leds[16].Saturation)
	})

	t.Run("reversed span runs from end value back to start value", func(t *testing.T) {
		// arrange
		leds := make([]models.LED, 10)
		g := gradient.Gradient{Channel: gradient.Level, StartValue: 0, EndValue: 90}

		// act
		n := newInterpolator().ApplyIndexes(leds, g, 9, 0)

		// assert
		assert.Equal(t, 10, n)
		assert.Equal(t, 0.0, *leds[9].Level)
		assert.Equal(t, 90.0, *leds[0].Level)
		for i := 1; i < 10; i++ {
			assert.Less(t, *leds[i].Level, *leds[i-1].Level)
		}
	})

	t.Run("zero length span writes the start value once", func(t *testing.T) {
		leds := make([]models.LED, 5)
		g := gradient.Gradient{Channel: gradient.Level, StartValue: 30, EndValue: 60}

		n := newInterpolator().ApplyIndexes(leds, g, 2, 2)

		assert.Equal(t, 1, n)
		assert.Equal(t, 30.0, *leds[2].Level)
	})

	t.Run("indexes are clamped to the array", func(t *testing.T) {
		leds := make([]models.LED, 5)
		g := gradient.Gradient{Channel: gradient.Level, StartValue: 0, EndValue: 40}

		n := newInterpolator().ApplyIndexes(leds, g, -3, 50)

		assert.Equal(t, 5, n)
		assert.Equal(t, 0.0, *leds[0].Level)
		assert.Equal(t, 40.0, *leds[4].Level)
	})

	t.Run("hue values are resolved through the spectrum", func(t *testing.T) {
		leds := make([]models.LED, 2)
		g := gradient.Gradient{Channel: gradient.Hue, StartValue: 0, EndValue: 127.5}

		newInterpolator().ApplyIndexes(leds, g, 0, 1)

		assert.Equal(t, 127.5, *leds[1].DeviceHue)
		assert.Equal(t, 180, *leds[1].Hue)
		assert.Equal(t, 0, *leds[0].Hue)
		assert.Nil(t, leds[0].Saturation)
	})

	t.Run("invalid input writes nothing", func(t *testing.T) {
		tests := []struct {
			name string
			leds []models.LED
			g    gradient.Gradient
		}{
			{name: "no leds", leds: []models.LED{}, g: gradient.Gradient{Channel: gradient.Level, StartValue: 0, EndValue: 1}},
			{name: "NaN start", leds: make([]models.LED, 3), g: gradient.Gradient{Channel: gradient.Level, StartValue: math.NaN(), EndValue: 1}},
			{name: "NaN end", leds: make([]models.LED, 3), g: gradient.Gradient{Channel: gradient.Level, StartValue: 0, EndValue: math.NaN()}},
			{name: "infinite value", leds: make([]models.LED, 3), g: gradient.Gradient{Channel: gradient.Level, StartValue: math.Inf(1), EndValue: 1}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				assert.NotPanics(t, func() {
					n := newInterpolator().ApplyIndexes(tt.leds, tt.g, 0, 2)
					assert.Equal(t, 0, n)
					assert.Equal(t, 0, written(tt.leds))
				})
			})
		}
	})
}

func Test_ApplyPercent(t *testing.T) {

	t.Run("full range covers every led", func(t *testing.T) {
		leds := make([]models.LED, 101)
		g := gradient.Gradient{Channel: gradient.Level, StartValue: 0, EndValue: 100}

		n := newInterpolator().ApplyPercent(leds, g, 0, 100)

		assert.Equal(t, 101, n)
		assert.Equal(t, 100.0, *leds[100].Level)
		assert.InDelta(t, 50.0, *leds[50].Level, 1e-9)
	})

	t.Run("percentages map with floor", func(t *testing.T) {
		leds := make([]models.LED, 101)
		g := gradient.Gradient{Channel: gradient.Level, StartValue: 0, EndValue: 100}

		n := newInterpolator().ApplyPercent(leds, g, 0, 10)

		assert.Equal(t, 11, n)
		assert.Equal(t, 100.0, *leds[10].Level)
		assert.Nil(t, leds[11].Level)
	})

	t.Run("NaN range writes nothing", func(t *testing.T) {
		leds := make([]models.LED, 10)
		g := gradient.Gradient{Channel: gradient.Level, StartValue: 0, EndValue: 100}

		n := newInterpolator().ApplyPercent(leds, g, math.NaN(), 10)

		assert.Equal(t, 0, n)
		assert.Equal(t, 0, written(leds))
	})
}

func Test_ChannelForKind(t *testing.T) {
	for _, ch := range []gradient.Channel{gradient.Hue, gradient.Saturation, gradient.Level} {
		got, ok := gradient.ChannelForKind(ch.Kind())
		assert.True(t, ok)
		assert.Equal(t, ch, got)
	}

	_, ok := gradient.ChannelForKind("x")
	assert.False(t, ok)
}
