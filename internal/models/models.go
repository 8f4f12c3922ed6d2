package models

import (
	"time"

	"github.com/samber/lo"
	"github.com/wheelibin/ledpanel/internal/constants"
)

// a single addressable LED device exposed over HTTP
type Strip struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Host string `json:"host"`

	// whether the strip is part of the current panel selection
	Selected bool `json:"selected"`
}

type PinConfig struct {
	Number  int    `json:"number,omitempty"`
	Status  string `json:"status"`
	Count   int    `json:"count"`
	Reverse bool   `json:"reverse,omitempty"`
}

// configuration as reported by the strip at /api/config
type DeviceConfig struct {
	LedCount   int         `json:"led_count,omitempty"`
	Hostname   string      `json:"hostname,omitempty"`
	IPAddr     string      `json:"ip_addr,omitempty"`
	Brightness int         `json:"brightness,omitempty"`
	Pins       []PinConfig `json:"pins,omitempty"`
	Scenes     []string    `json:"scenes,omitempty"`
	Scripts    []string    `json:"scripts,omitempty"`
}

// TotalLeds returns the configured led count, falling back to the sum of active pins
func (c DeviceConfig) TotalLeds() int {
	if c.LedCount > 0 {
		return c.LedCount
	}
	return lo.SumBy(c.Pins, func(p PinConfig) int {
		if p.Status == constants.PinStatusOff {
			return 0
		}
		return p.Count
	})
}

type CachedConfig struct {
	Config    DeviceConfig
	FetchedAt time.Time
}

type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// one element of the preview array, channels are nil until a command writes them
type LED struct {
	DeviceHue  *float64 `json:"deviceHue,omitempty"`
	Hue        *int     `json:"hue,omitempty"`
	Saturation *float64 `json:"saturation,omitempty"`
	Level      *float64 `json:"level,omitempty"`

	HTMLColor string `json:"htmlColor"`
	Hex       string `json:"hex"`
	RGB       RGB    `json:"rgb"`
}

func (l LED) Touched() bool {
	return l.Hue != nil || l.Saturation != nil || l.Level != nil
}

// which colour channels take part in rendering
type Channels struct {
	Hue        bool `json:"hue"`
	Saturation bool `json:"saturation"`
	Level      bool `json:"level"`
}

func AllChannels() Channels {
	return Channels{Hue: true, Saturation: true, Level: true}
}

// the body POSTed to /api/colors
type ColorFrame struct {
	Brightness int         `json:"brightness"`
	Pins       []PinConfig `json:"pins"`
	Leds       []RGB       `json:"leds"`
}
