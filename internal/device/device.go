package device

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/wheelibin/ledpanel/internal/constants"
	"github.com/wheelibin/ledpanel/internal/metrics"
	"github.com/wheelibin/ledpanel/internal/models"
)

var (
	// a POST was attempted while another one to the same strip is outstanding
	ErrBusy             = errors.New("strip busy")
	ErrNotFound         = errors.New("not found on strip")
	ErrUnexpectedStatus = errors.New("unexpected status from strip")
)

// Client talks to the http api of a single strip
type Client struct {
	logger     *log.Logger
	host       string
	http       *http.Client
	resetDelay time.Duration

	inFlight     atomic.Bool
	resetPending atomic.Bool
}

func NewClient(logger *log.Logger, host string, httpClient *http.Client, resetDelay time.Duration) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	if resetDelay <= 0 {
		resetDelay = constants.InFlightResetDelay
	}
	return &Client{
		logger:     logger.With("host", host),
		host:       host,
		http:       httpClient,
		resetDelay: resetDelay,
	}
}

func (c *Client) Host() string {
	return c.host
}

type envelope struct {
	Result *bool           `json:"result"`
	Data   json.RawMessage `json:"data"`
}

// GetConfig reads the strip config, accepting either the raw object or the {"result","data"} envelope.
// A body that cannot be decoded gives an empty config.
func (c *Client) GetConfig(ctx context.Context) (models.DeviceConfig, error) {
	body, err := c.get(ctx, "config", "/api/config")
	if err != nil {
		return models.DeviceConfig{}, fmt.Errorf("error reading config from strip (%s): %w", c.host, err)
	}
	return c.decodeConfig(body), nil
}

func (c *Client) decodeConfig(body []byte) models.DeviceConfig {
	cfg := models.DeviceConfig{}

	env := envelope{}
	if err := json.Unmarshal(body, &env); err == nil && env.Result != nil && len(env.Data) > 0 {
		body = env.Data
	}

	if err := json.Unmarshal(body, &cfg); err != nil {
		c.logger.Error("unable to parse strip config", "err", err)
		return models.DeviceConfig{}
	}
	return cfg
}

func (c *Client) SaveConfig(ctx context.Context, cfg models.DeviceConfig) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}
	if _, err := c.post(ctx, "config", "/api/config", "application/json", data); err != nil {
		return fmt.Errorf("error saving config to strip (%s): %w", c.host, err)
	}
	return nil
}

func (c *Client) GetScript(ctx context.Context, name string) (string, error) {
	body, err := c.get(ctx, "script", "/api/script/"+url.PathEscape(name))
	if err != nil {
		return "", fmt.Errorf("error reading script (%s) from strip (%s): %w", name, c.host, err)
	}
	return string(body), nil
}

func (c *Client) SaveScript(ctx context.Context, name string, text string) error {
	if _, err := c.post(ctx, "script", "/api/script/"+url.PathEscape(name), "text/plain", []byte(text)); err != nil {
		return fmt.Errorf("error saving script (%s) to strip (%s): %w", name, c.host, err)
	}
	return nil
}

func (c *Client) GetScene(ctx context.Context, name string) (string, error) {
	body, err := c.get(ctx, "scene", "/api/scene/"+url.PathEscape(name))
	if err != nil {
		return "", fmt.Errorf("error reading scene (%s) from strip (%s): %w", name, c.host, err)
	}
	return string(body), nil
}

func (c *Client) SaveScene(ctx context.Context, name string, text string) error {
	if _, err := c.post(ctx, "scene", "/api/scene/"+url.PathEscape(name), "text/plain", []byte(text)); err != nil {
		return fmt.Errorf("error saving scene (%s) to strip (%s): %w", name, c.host, err)
	}
	return nil
}

func (c *Client) SetColor(ctx context.Context, hue int, saturation float64, lightness float64) error {
	q := url.Values{}
	q.Set("hue", fmt.Sprint(hue))
	q.Set("saturation", fmt.Sprint(saturation))
	q.Set("lightness", fmt.Sprint(lightness))
	if _, err := c.get(ctx, "std/color", "/api/std/color?"+q.Encode()); err != nil {
		return fmt.Errorf("error setting color on strip (%s): %w", c.host, err)
	}
	return nil
}

func (c *Client) SetWhite(ctx context.Context, lightness float64) error {
	q := url.Values{}
	q.Set("lightness", fmt.Sprint(lightness))
	if _, err := c.get(ctx, "std/white", "/api/std/white?"+q.Encode()); err != nil {
		return fmt.Errorf("error setting white on strip (%s): %w", c.host, err)
	}
	return nil
}

func (c *Client) SetOff(ctx context.Context) error {
	if _, err := c.get(ctx, "std/off", "/api/std/off"); err != nil {
		return fmt.Errorf("error turning off strip (%s): %w", c.host, err)
	}
	return nil
}

// SendColors posts a per-led rgb frame
func (c *Client) SendColors(ctx context.Context, frame models.ColorFrame) error {
	data, err := json.Marshal(frame)
	if err != nil {
		return fmt.Errorf("error encoding color frame: %w", err)
	}
	if _, err := c.post(ctx, "colors", "/api/colors", "text/plain", data); err != nil {
		return fmt.Errorf("error sending colors to strip (%s): %w", c.host, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, endpoint string, path string) ([]byte, error) {
	return c.makeRequest(ctx, http.MethodGet, endpoint, path, "", nil)
}

// post refuses to run while another post to the strip is outstanding. A flag left set
// (e.g. by a request that never returned) is cleared after resetDelay.
func (c *Client) post(ctx context.Context, endpoint string, path string, contentType string, body []byte) ([]byte, error) {
	if !c.inFlight.CompareAndSwap(false, true) {
		c.logger.Error("too fast", "endpoint", endpoint)
		metrics.DeviceBusy(c.host)
		if c.resetPending.CompareAndSwap(false, true) {
			time.AfterFunc(c.resetDelay, func() {
				c.inFlight.Store(false)
				c.resetPending.Store(false)
			})
		}
		return nil, ErrBusy
	}
	defer c.inFlight.Store(false)

	return c.makeRequest(ctx, http.MethodPost, endpoint, path, contentType, body)
}

func (c *Client) makeRequest(ctx context.Context, verb string, endpoint string, path string, contentType string, body []byte) ([]byte, error) {

	req, err := http.NewRequestWithContext(ctx, verb, c.baseURL()+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error(err)
		metrics.DeviceRequest(verb, endpoint, "error")
		return nil, err
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.DeviceRequest(verb, endpoint, "error")
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		metrics.DeviceRequest(verb, endpoint, "ok")
		return responseBody, nil
	case resp.StatusCode == http.StatusNotFound:
		metrics.DeviceRequest(verb, endpoint, "not_found")
		return nil, ErrNotFound
	default:
		c.logger.Error("error making strip api call", "path", path, "status", resp.Status)
		metrics.DeviceRequest(verb, endpoint, "error")
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}
}

func (c *Client) baseURL() string {
	if strings.Contains(c.host, "://") {
		return strings.TrimSuffix(c.host, "/")
	}
	return "http://" + strings.TrimSuffix(c.host, "/")
}

// Pool hands out one client per host so the in-flight guard is shared by every caller
type Pool struct {
	logger     *log.Logger
	http       *http.Client
	resetDelay time.Duration

	mu      sync.Mutex
	clients map[string]*Client
}

func NewPool(logger *log.Logger, httpClient *http.Client, resetDelay time.Duration) *Pool {
	return &Pool{logger: logger, http: httpClient, resetDelay: resetDelay, clients: map[string]*Client{}}
}

func (p *Pool) Client(host string) *Client {
	p.mu.Lock()
	defer p.mu.Unlock()
	c, ok := p.clients[host]
	if !ok {
		c = NewClient(p.logger, host, p.http, p.resetDelay)
		p.clients[host] = c
	}
	return c
}

func (p *Pool) GetConfig(ctx context.Context, host string) (models.DeviceConfig, error) {
	return p.Client(host).GetConfig(ctx)
}

func (p *Pool) SaveConfig(ctx context.Context, host string, cfg models.DeviceConfig) error {
	return p.Client(host).SaveConfig(ctx, cfg)
}

func (p *Pool) GetScript(ctx context.Context, host string, name string) (string, error) {
	return p.Client(host).GetScript(ctx, name)
}

func (p *Pool) SaveScript(ctx context.Context, host string, name string, text string) error {
	return p.Client(host).SaveScript(ctx, name, text)
}

func (p *Pool) GetScene(ctx context.Context, host string, name string) (string, error) {
	return p.Client(host).GetScene(ctx, name)
}

func (p *Pool) SaveScene(ctx context.Context, host string, name string, text string) error {
	return p.Client(host).SaveScene(ctx, name, text)
}

func (p *Pool) SetColor(ctx context.Context, host string, hue int, saturation float64, lightness float64) error {
	return p.Client(host).SetColor(ctx, hue, saturation, lightness)
}

func (p *Pool) SetWhite(ctx context.Context, host string, lightness float64) error {
	return p.Client(host).SetWhite(ctx, lightness)
}

func (p *Pool) SetOff(ctx context.Context, host string) error {
	return p.Client(host).SetOff(ctx)
}

func (p *Pool) SendColors(ctx context.Context, host string, frame models.ColorFrame) error {
	return p.Client(host).SendColors(ctx, frame)
}
