package spectrum

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/wheelibin/ledpanel/internal/constants"
	"github.com/wheelibin/ledpanel/internal/metrics"
)

// HueResolver maps device-native hue values (0-255) to html hues (0-359) by sampling a
// reference spectrum image. Results are memoized per raw value.
type HueResolver struct {
	logger *log.Logger
	image  image.Image

	mu    sync.Mutex
	cache map[float64]int
}

func NewHueResolver(logger *log.Logger, img image.Image) *HueResolver {
	return &HueResolver{logger: logger, image: img, cache: map[float64]int{}}
}

// Load decodes a png, jpeg or gif reference image
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening spectrum image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("error decoding spectrum image (%s): %w", path, err)
	}
	return img, nil
}

// Rainbow builds a horizontal hsv spectrum, used when no reference image is configured
func Rainbow(width int, height int) image.Image {
	if width < 1 {
		width = constants.DefaultSpectrumWidth
	}
	if height < 1 {
		height = constants.DefaultSpectrumHeight
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		c := colorful.Hsv(360*float64(x)/float64(width), 1, 1)
		for y := 0; y < height; y++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func (r *HueResolver) Image() image.Image {
	return r.image
}

func (r *HueResolver) Width() int {
	return r.image.Bounds().Dx()
}

// Resolve returns the html hue for a device hue
func (r *HueResolver) Resolve(deviceHue float64) int {
	if math.IsNaN(deviceHue) {
		return constants.DefaultHue
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if hue, found := r.cache[deviceHue]; found {
		metrics.HueCacheHit()
		return hue
	}
	metrics.HueCacheMiss()

	hue := r.sample(deviceHue)
	r.cache[deviceHue] = hue
	r.logger.Debug("resolved device hue", "deviceHue", deviceHue, "hue", hue)
	return hue
}

func (r *HueResolver) sample(deviceHue float64) int {
	bounds := r.image.Bounds()
	width := bounds.Dx()
	if width == 0 {
		return constants.DefaultHue
	}

	offset := int(float64(width) * deviceHue / constants.DeviceHueMax)
	if offset < 0 {
		offset = 0
	}
	if offset > width-1 {
		offset = width - 1
	}

	c, ok := colorful.MakeColor(r.image.At(bounds.Min.X+offset, bounds.Min.Y+bounds.Dy()/2))
	if !ok {
		// fully transparent pixel
		return constants.DefaultHue
	}
	h, _, _ := c.Hsv()
	return int(math.Round(h)) % 360
}
