package panel_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wheelibin/ledpanel/internal/colors"
	"github.com/wheelibin/ledpanel/internal/config"
	"github.com/wheelibin/ledpanel/internal/models"
	"github.com/wheelibin/ledpanel/internal/panel"
	"github.com/wheelibin/ledpanel/internal/repos"
)

// fakeStrip serves the strip http api from memory
type fakeStrip struct {
	mu       sync.Mutex
	requests []string
	frames   []models.ColorFrame
	scenes   map[string]string
}

func (f *fakeStrip) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, r.Method+" "+r.URL.Path)

	body, _ := io.ReadAll(r.Body)
	switch {
	case r.URL.Path == "/api/config":
		_, _ = w.Write([]byte(`{"result":true,"data":{"brightness":180,"pins":[{"status":"on","count":5}]}}`))
	case r.URL.Path == "/api/colors":
		frame := models.ColorFrame{}
		_ = json.Unmarshal(body, &frame)
		f.frames = append(f.frames, frame)
	case len(r.URL.Path) > len("/api/scene/") && r.URL.Path[:len("/api/scene/")] == "/api/scene/":
		name := r.URL.Path[len("/api/scene/"):]
		if r.Method == http.MethodPost {
			f.scenes[name] = string(body)
			return
		}
		text, ok := f.scenes[name]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(text))
	}
}

func (f *fakeStrip) seen(request string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.requests {
		if r == request {
			return true
		}
	}
	return false
}

func newPanel(t *testing.T) (*panel.Panel, *fakeStrip) {
	strip := &fakeStrip{scenes: map[string]string{}}
	srv := httptest.NewServer(strip)
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		Strips:             []config.StripConfig{{Name: "desk", Host: srv.URL}},
		SpectrumWidth:      256,
		PreviewLedCount:    101,
		InFlightResetDelay: time.Second,
		Throttle:           time.Millisecond,
		Database:           ":memory:",
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.FatalLevel})
	p, err := panel.New(logger, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close() })
	return p, strip
}

func Test_Panel(t *testing.T) {

	t.Run("selecting a single strip sizes the editor to it", func(t *testing.T) {
		// arrange
		p, _ := newPanel(t)
		assert.Equal(t, 101, p.Logical.LedCount())

		// act
		err := p.SelectStrips(context.Background(), []int{1, 1})

		// assert
		assert.NoError(t, err)
		assert.Equal(t, 5, p.Logical.LedCount())
		assert.Equal(t, 5, p.Selector.Count())
		assert.Equal(t, "desk", p.Logical.Strip().Name)

		assert.NoError(t, p.SelectNone(context.Background()))
		assert.Nil(t, p.Logical.Strip())
		assert.Equal(t, 101, p.Logical.LedCount())
	})

	t.Run("std commands go to the selected strips", func(t *testing.T) {
		p, strip := newPanel(t)
		require.NoError(t, p.SelectAll(context.Background()))

		assert.NoError(t, p.SetColor(context.Background(), 120, 100, 50))
		assert.NoError(t, p.SetOff(context.Background()))

		assert.True(t, strip.seen("GET /api/std/color"))
		assert.True(t, strip.seen("GET /api/std/off"))
	})

	t.Run("send scene posts a frame sized to the strip", func(t *testing.T) {
		// arrange
		p, strip := newPanel(t)

		// act
		err := p.SendScene(context.Background(), 1, "s,0,100,100,100;\nl,0,100,50,50;")

		// assert
		assert.NoError(t, err)
		strip.mu.Lock()
		defer strip.mu.Unlock()
		require.Len(t, strip.frames, 1)
		assert.Equal(t, 180, strip.frames[0].Brightness)
		assert.Len(t, strip.frames[0].Leds, 5)
		assert.Equal(t, models.RGB{R: 255}, strip.frames[0].Leds[0])
	})

	t.Run("scenes round trip through the strip", func(t *testing.T) {
		p, _ := newPanel(t)
		require.NoError(t, p.SelectStrips(context.Background(), []int{1}))

		p.Logical.SetSceneText("h,0,100,0,255,1,0;\n")
		assert.NoError(t, p.Logical.SaveScene(context.Background(), "rainbow"))
		p.Logical.SetSceneText("")
		assert.NoError(t, p.Logical.LoadScene(context.Background(), "rainbow"))

		assert.Equal(t, "h,0,100,0,255,1,0;\n", p.Logical.SceneText())
		text, err := p.GetScene(context.Background(), 1, "rainbow")
		assert.NoError(t, err)
		assert.Equal(t, "h,0,100,0,255,1,0;\n", text)
	})

	t.Run("a drag selection shows in the preview", func(t *testing.T) {
		// arrange
		p, _ := newPanel(t)
		require.NoError(t, p.SelectStrips(context.Background(), []int{1}))
		p.Colors.SetLevel(colors.First, 20)

		// act
		p.Selector.Press(0)
		p.Selector.Drag(2)
		p.Selector.Release()

		// assert
		assert.Eventually(t, func() bool {
			preview := p.Logical.Preview()
			return len(preview) == 5 && preview[2].Level != nil && *preview[2].Level == 20 && preview[3].Level == nil
		}, time.Second, 10*time.Millisecond)
	})

	t.Run("preview defaults to the editor size", func(t *testing.T) {
		p, _ := newPanel(t)

		leds, err := p.Preview("h,0,100,0,255;", 0, models.AllChannels())

		assert.NoError(t, err)
		assert.Len(t, leds, 101)
	})

	t.Run("resync drops strips removed from the config", func(t *testing.T) {
		p, _ := newPanel(t)

		err := p.Resync(context.Background(), &config.Config{})

		assert.NoError(t, err)
		strips, _ := p.ListStrips()
		assert.Empty(t, strips)
		_, err = p.Strip(1)
		assert.ErrorIs(t, err, repos.ErrStripNotFound)
	})
}
