package scene

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/wheelibin/ledpanel/internal/constants"
	"github.com/wheelibin/ledpanel/internal/gradient"
)

var (
	ErrMalformedCommand = errors.New("malformed command")
	ErrUnknownKind      = errors.New("unknown command kind")
)

// one entry of a command list: kind,start,end,startValue,endValue,zoom,speed;
// start and end are percentages of the strip
type Command struct {
	Channel    gradient.Channel
	Start      float64
	End        float64
	StartValue float64
	EndValue   float64
	Zoom       float64
	Speed      float64
}

func NewCommand(ch gradient.Channel, start float64, end float64, startValue float64, endValue float64) Command {
	return Command{
		Channel:    ch,
		Start:      start,
		End:        end,
		StartValue: startValue,
		EndValue:   endValue,
		Zoom:       constants.DefaultZoom,
		Speed:      constants.DefaultSpeed,
	}
}

func (c Command) Gradient() gradient.Gradient {
	return gradient.Gradient{Channel: c.Channel, StartValue: c.StartValue, EndValue: c.EndValue}
}

func (c Command) String() string {
	fields := []string{
		c.Channel.Kind(),
		formatNumber(c.Start),
		formatNumber(c.End),
		formatNumber(c.StartValue),
		formatNumber(c.EndValue),
		formatNumber(c.Zoom),
		formatNumber(c.Speed),
	}
	return strings.Join(fields, ",") + ";"
}

// Format serializes commands one per line
func Format(cmds []Command) string {
	var sb strings.Builder
	for _, c := range cmds {
		sb.WriteString(c.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

// Parse reads a command list. Bad entries are skipped and reported in the returned error,
// the commands that could be read are always returned.
func Parse(text string) ([]Command, error) {
	cmds := []Command{}
	var errs []error

	for n, entry := range strings.Split(text, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		parts := strings.Split(entry, ",")
		if len(parts) < 2 {
			errs = append(errs, fmt.Errorf("command %d (%q): %w", n+1, entry, ErrMalformedCommand))
			continue
		}

		kind := strings.TrimSpace(parts[0])
		ch, ok := gradient.ChannelForKind(kind)
		if !ok {
			errs = append(errs, fmt.Errorf("command %d (%q): %w", n+1, kind, ErrUnknownKind))
			continue
		}

		cmds = append(cmds, Command{
			Channel:    ch,
			Start:      field(parts, 1, math.NaN()),
			End:        field(parts, 2, math.NaN()),
			StartValue: field(parts, 3, math.NaN()),
			EndValue:   field(parts, 4, math.NaN()),
			Zoom:       field(parts, 5, constants.DefaultZoom),
			Speed:      field(parts, 6, constants.DefaultSpeed),
		})
	}

	return cmds, errors.Join(errs...)
}

func field(parts []string, idx int, fallback float64) float64 {
	if idx >= len(parts) {
		return fallback
	}
	raw := strings.TrimSpace(parts[idx])
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
