package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	sse "github.com/r3labs/sse/v2"
	"github.com/wheelibin/ledpanel/internal/constants"
	"github.com/wheelibin/ledpanel/internal/device"
	"github.com/wheelibin/ledpanel/internal/events"
	"github.com/wheelibin/ledpanel/internal/models"
	"github.com/wheelibin/ledpanel/internal/repos"
)

type panelService interface {
	ListStrips() ([]models.Strip, error)
	SelectStrips(ctx context.Context, ids []int) error
	SelectAll(ctx context.Context) error
	SelectNone(ctx context.Context) error
	GetConfig(ctx context.Context, id int) (models.DeviceConfig, error)
	SaveConfig(ctx context.Context, id int, cfg models.DeviceConfig) error
	GetScript(ctx context.Context, id int, name string) (string, error)
	SaveScript(ctx context.Context, id int, name string, text string) error
	GetScene(ctx context.Context, id int, name string) (string, error)
	SaveScene(ctx context.Context, id int, name string, text string) error
	SetColor(ctx context.Context, hue int, saturation float64, lightness float64) error
	SetWhite(ctx context.Context, lightness float64) error
	SetOff(ctx context.Context) error
	Preview(text string, ledCount int, channels models.Channels) ([]models.LED, error)
}

type eventSubscriber interface {
	Subscribe(handler any) func()
}

// Server exposes the panel over a huma api with a preview event stream and metrics
type Server struct {
	logger     *log.Logger
	panel      panelService
	api        huma.API
	mux        *http.ServeMux
	events     *sse.Server
	httpServer *http.Server
	unsubs     []func()
}

func NewServer(logger *log.Logger, panel panelService, bus eventSubscriber) *Server {
	mux := http.NewServeMux()

	config := huma.DefaultConfig("ledpanel API", "1.0.0")
	config.Info.Description = "Control panel for networked LED strips"
	config.Servers = []*huma.Server{}
	api := humago.New(mux, config)

	s := &Server{
		logger: logger,
		panel:  panel,
		api:    api,
		mux:    mux,
		events: sse.New(),
	}

	s.events.AutoReplay = false
	s.events.CreateStream(constants.StreamPreview)
	s.events.CreateStream(constants.StreamScene)
	s.unsubs = []func(){
		bus.Subscribe(func(e events.PreviewUpdated) { s.publish(constants.StreamPreview, e) }),
		bus.Subscribe(func(e events.SceneChanged) { s.publish(constants.StreamScene, e) }),
	}

	mux.Handle("GET /events", s.events)
	mux.Handle("GET /metrics", promhttp.Handler())

	RegisterRoutes(api, panel)

	return s
}

func (s *Server) publish(stream string, e events.Event) {
	data, err := json.Marshal(e)
	if err != nil {
		s.logger.Error("unable to encode event", "stream", stream, "err", err)
		return
	}
	s.events.Publish(stream, &sse.Event{Data: data})
}

func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) API() huma.API {
	return s.api
}

// Start serves until the server is stopped
func (s *Server) Start(addr string) error {
	s.logger.Info("Starting ledpanel API server", "addr", addr)
	s.logger.Info("OpenAPI documentation available", "url", "http://"+addr+"/docs")

	s.httpServer = &http.Server{
		Addr:    addr,
		Handler: s.mux,
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping API server")
	for _, unsub := range s.unsubs {
		unsub()
	}
	s.events.Close()
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// toHumaError maps panel errors to http statuses
func toHumaError(msg string, err error) error {
	switch {
	case errors.Is(err, repos.ErrStripNotFound), errors.Is(err, device.ErrNotFound):
		return huma.Error404NotFound(msg, err)
	case errors.Is(err, device.ErrBusy):
		return huma.Error409Conflict(msg, err)
	default:
		return huma.Error502BadGateway(msg, err)
	}
}
