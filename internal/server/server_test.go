package server_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wheelibin/ledpanel/internal/device"
	"github.com/wheelibin/ledpanel/internal/events"
	"github.com/wheelibin/ledpanel/internal/models"
	"github.com/wheelibin/ledpanel/internal/repos"
	"github.com/wheelibin/ledpanel/internal/server"
	"github.com/wheelibin/ledpanel/mocks"
)

var strips = []models.Strip{
	{ID: 1, Name: "desk", Host: "10.0.0.10", Selected: true},
	{ID: 2, Name: "shelf", Host: "10.0.0.11"},
}

func newAPI(t *testing.T) (humatest.TestAPI, *mocks.MockServerPanelService) {
	_, api := humatest.New(t)
	panel := mocks.NewMockServerPanelService(t)
	server.RegisterRoutes(api, panel)
	return api, panel
}

func Test_ListStrips(t *testing.T) {
	// arrange
	api, panel := newAPI(t)
	panel.On("ListStrips").Return(strips, nil)

	// act
	resp := api.Get("/api/strips")

	// assert
	assert.Equal(t, http.StatusOK, resp.Code)
	body := server.StripsResponse{}.Body
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, strips, body.Strips)
}

func Test_SelectStrips(t *testing.T) {

	t.Run("by id", func(t *testing.T) {
		api, panel := newAPI(t)
		panel.On("SelectStrips", mock.Anything, []int{2}).Return(nil).Once()
		panel.On("ListStrips").Return(strips, nil)

		resp := api.Post("/api/strips/selection", map[string]any{"mode": "ids", "ids": []int{2}})

		assert.Equal(t, http.StatusOK, resp.Code)
	})

	t.Run("all", func(t *testing.T) {
		api, panel := newAPI(t)
		panel.On("SelectAll", mock.Anything).Return(nil).Once()
		panel.On("ListStrips").Return(strips, nil)

		resp := api.Post("/api/strips/selection", map[string]any{"mode": "all"})

		assert.Equal(t, http.StatusOK, resp.Code)
	})

	t.Run("none", func(t *testing.T) {
		api, panel := newAPI(t)
		panel.On("SelectNone", mock.Anything).Return(nil).Once()
		panel.On("ListStrips").Return([]models.Strip{}, nil)

		resp := api.Post("/api/strips/selection", map[string]any{"mode": "none"})

		assert.Equal(t, http.StatusOK, resp.Code)
	})

	t.Run("unknown strip", func(t *testing.T) {
		api, panel := newAPI(t)
		panel.On("SelectStrips", mock.Anything, []int{9}).Return(fmt.Errorf("%w: 9", repos.ErrStripNotFound))

		resp := api.Post("/api/strips/selection", map[string]any{"mode": "ids", "ids": []int{9}})

		assert.Equal(t, http.StatusNotFound, resp.Code)
	})

	t.Run("unknown mode is rejected", func(t *testing.T) {
		api, _ := newAPI(t)

		resp := api.Post("/api/strips/selection", map[string]any{"mode": "some"})

		assert.GreaterOrEqual(t, resp.Code, 400)
		assert.Less(t, resp.Code, 500)
	})
}

func Test_ErrorMapping(t *testing.T) {

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "strip not in registry", err: repos.ErrStripNotFound, expected: http.StatusNotFound},
		{name: "missing on the strip", err: device.ErrNotFound, expected: http.StatusNotFound},
		{name: "strip busy", err: fmt.Errorf("saving: %w", device.ErrBusy), expected: http.StatusConflict},
		{name: "strip failure", err: errors.New("connection refused"), expected: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// arrange
			api, panel := newAPI(t)
			panel.On("GetConfig", mock.Anything, 1).Return(models.DeviceConfig{}, tt.err)

			// act
			resp := api.Get("/api/strips/1/config")

			// assert
			assert.Equal(t, tt.expected, resp.Code)
		})
	}
}

func Test_Scenes(t *testing.T) {

	t.Run("get returns the scene text", func(t *testing.T) {
		api, panel := newAPI(t)
		panel.On("GetScene", mock.Anything, 1, "sunset").Return("h,0,100,0,255,1,0;", nil)

		resp := api.Get("/api/strips/1/scenes/sunset")

		assert.Equal(t, http.StatusOK, resp.Code)
		assert.Equal(t, "h,0,100,0,255,1,0;", resp.Body.String())
		assert.Equal(t, "text/plain", resp.Header().Get("Content-Type"))
	})

	t.Run("save passes the raw body", func(t *testing.T) {
		api, panel := newAPI(t)
		panel.On("SaveScene", mock.Anything, 1, "sunset", "l,0,100,10,10;").Return(nil).Once()

		resp := api.Post("/api/strips/1/scenes/sunset", "Content-Type: text/plain", strings.NewReader("l,0,100,10,10;"))

		assert.Less(t, resp.Code, 300)
	})

	t.Run("save script on a busy strip", func(t *testing.T) {
		api, panel := newAPI(t)
		panel.On("SaveScript", mock.Anything, 2, "main", "x").Return(device.ErrBusy)

		resp := api.Post("/api/strips/2/scripts/main", "Content-Type: text/plain", strings.NewReader("x"))

		assert.Equal(t, http.StatusConflict, resp.Code)
	})
}

func Test_Std(t *testing.T) {

	t.Run("color", func(t *testing.T) {
		api, panel := newAPI(t)
		panel.On("SetColor", mock.Anything, 240, 100.0, 50.0).Return(nil).Once()

		resp := api.Post("/api/std/color", map[string]any{"hue": 240, "saturation": 100, "lightness": 50})

		assert.Less(t, resp.Code, 300)
	})

	t.Run("color out of range", func(t *testing.T) {
		api, _ := newAPI(t)

		resp := api.Post("/api/std/color", map[string]any{"hue": 400, "saturation": 100, "lightness": 50})

		assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	})

	t.Run("white", func(t *testing.T) {
		api, panel := newAPI(t)
		panel.On("SetWhite", mock.Anything, 30.0).Return(nil).Once()

		resp := api.Post("/api/std/white", map[string]any{"lightness": 30})

		assert.Less(t, resp.Code, 300)
	})

	t.Run("off", func(t *testing.T) {
		api, panel := newAPI(t)
		panel.On("SetOff", mock.Anything).Return(nil).Once()

		resp := api.Post("/api/std/off")

		assert.Less(t, resp.Code, 300)
	})
}

func Test_Preview(t *testing.T) {

	t.Run("defaults to every channel", func(t *testing.T) {
		// arrange
		api, panel := newAPI(t)
		leds := []models.LED{{HTMLColor: "hsl(0,0%,0%)", Hex: "#000000"}}
		panel.On("Preview", "junk;", 1, models.AllChannels()).Return(leds, errors.New("malformed command (junk)"))

		// act
		resp := api.Post("/api/preview", map[string]any{"scene": "junk;", "ledCount": 1})

		// assert
		assert.Equal(t, http.StatusOK, resp.Code)
		body := server.PreviewResponse{}.Body
		assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
		assert.Equal(t, leds, body.Leds)
		assert.Equal(t, "malformed command (junk)", body.Errors)
	})

	t.Run("honours the channels", func(t *testing.T) {
		api, panel := newAPI(t)
		channels := models.Channels{Level: true}
		panel.On("Preview", "l,0,100,5,5;", 0, channels).Return([]models.LED{}, nil)

		resp := api.Post("/api/preview", map[string]any{"scene": "l,0,100,5,5;", "channels": channels})

		assert.Equal(t, http.StatusOK, resp.Code)
	})
}

func Test_Server(t *testing.T) {
	// arrange
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.FatalLevel})
	panel := mocks.NewMockServerPanelService(t)
	panel.On("ListStrips").Return(strips, nil)
	bus := events.New()
	s := server.NewServer(logger, panel, bus)
	t.Cleanup(func() {
		// t.Context() is already cancelled when cleanups run; mirror that without the go1.24 API
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_ = s.Stop(ctx)
	})

	tests := []struct {
		name     string
		path     string
		expected int
	}{
		{name: "api", path: "/api/strips", expected: http.StatusOK},
		{name: "metrics", path: "/metrics", expected: http.StatusOK},
		{name: "openapi", path: "/openapi.json", expected: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// act
			rec := httptest.NewRecorder()
			s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			// assert
			assert.Equal(t, tt.expected, rec.Code)
		})
	}
}
