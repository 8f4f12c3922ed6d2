package scene

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/samber/lo"
	"github.com/wheelibin/ledpanel/internal/constants"
	"github.com/wheelibin/ledpanel/internal/gradient"
	"github.com/wheelibin/ledpanel/internal/metrics"
	"github.com/wheelibin/ledpanel/internal/models"
)

type Engine struct {
	logger       *log.Logger
	interpolator *gradient.Interpolator
}

func NewEngine(logger *log.Logger, interpolator *gradient.Interpolator) *Engine {
	return &Engine{logger: logger, interpolator: interpolator}
}

// Blank allocates an led array with every channel unset
func Blank(ledCount int) []models.LED {
	if ledCount < 0 {
		ledCount = 0
	}
	return make([]models.LED, ledCount)
}

// Apply runs the commands over leds in order, later commands overwrite earlier ones
func (e *Engine) Apply(leds []models.LED, cmds []Command) {
	for _, c := range cmds {
		written := e.interpolator.ApplyPercent(leds, c.Gradient(), c.Start, c.End)
		e.logger.Debug("applied command", "command", c.String(), "written", written)
	}
}

// Evaluate builds the preview for a command list over a strip of ledCount leds
func (e *Engine) Evaluate(cmds []Command, ledCount int, channels models.Channels) []models.LED {
	metrics.SceneEvaluated()
	leds := Blank(ledCount)
	e.Apply(leds, cmds)
	Render(leds, channels)
	return leds
}

// EvaluateText parses and evaluates a command list, parse problems are logged and returned
// alongside the preview built from the valid commands
func (e *Engine) EvaluateText(text string, ledCount int, channels models.Channels) ([]models.LED, error) {
	cmds, err := Parse(text)
	if err != nil {
		e.logger.Warn("skipped invalid commands", "err", err)
	}
	return e.Evaluate(cmds, ledCount, channels), err
}

// Render derives each led's display colour from the enabled channels
func Render(leds []models.LED, channels models.Channels) {
	for i := range leds {
		led := &leds[i]

		if !led.Touched() {
			led.HTMLColor = "hsl(0,0%,0%)"
			led.Hex = "#000000"
			led.RGB = models.RGB{}
			continue
		}

		hue := constants.DefaultHue
		if channels.Hue && led.Hue != nil {
			hue = *led.Hue
		}
		saturation := float64(constants.DefaultSaturation)
		if channels.Saturation && led.Saturation != nil {
			saturation = lo.Clamp(*led.Saturation, 0, 100)
		}
		level := float64(constants.DefaultLevel)
		if channels.Level && led.Level != nil {
			level = lo.Clamp(*led.Level, 0, 100)
		}

		led.HTMLColor = fmt.Sprintf("hsl(%d,%s%%,%s%%)", hue, formatNumber(saturation), formatNumber(level))

		c := colorful.Hsl(float64(hue), saturation/100, level/100).Clamped()
		r, g, b := c.RGB255()
		led.Hex = c.Hex()
		led.RGB = models.RGB{R: r, G: g, B: b}
	}
}

// Frame extracts the rgb values sent to a strip
func Frame(leds []models.LED) []models.RGB {
	return lo.Map(leds, func(led models.LED, _ int) models.RGB {
		return led.RGB
	})
}
