package events

import "github.com/wheelibin/ledpanel/internal/models"

// Event type constants for kelindar/event.
const (
	TypeColorChanged uint32 = iota + 1
	TypeSelectionChanged
	TypeSceneChanged
	TypePreviewUpdated
	TypeStripSelected
)

// Event interface required by kelindar/event.
type Event interface {
	Type() uint32
}

// ColorChanged is published whenever the first/last colour, a channel flag or the gradient flag changes.
type ColorChanged struct {
	Hue        bool `json:"hue"`
	Saturation bool `json:"saturation"`
	Level      bool `json:"level"`
	Gradient   bool `json:"gradient"`
}

func (e ColorChanged) Type() uint32 { return TypeColorChanged }

// SelectionChanged carries the committed range as percentages, nil when the selection was cleared.
type SelectionChanged struct {
	StartPercent *float64 `json:"startPercent"`
	EndPercent   *float64 `json:"endPercent"`
}

func (e SelectionChanged) Type() uint32 { return TypeSelectionChanged }

type SceneChanged struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

func (e SceneChanged) Type() uint32 { return TypeSceneChanged }

// PreviewUpdated carries a rendered preview, Seq grows with every render
type PreviewUpdated struct {
	Seq      uint64       `json:"seq"`
	Scene    string       `json:"scene"`
	LedCount int          `json:"ledCount"`
	Leds     []models.LED `json:"leds"`
}

func (e PreviewUpdated) Type() uint32 { return TypePreviewUpdated }

type StripSelected struct {
	Strip models.Strip `json:"strip"`
}

func (e StripSelected) Type() uint32 { return TypeStripSelected }
