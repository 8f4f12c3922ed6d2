package spectrum_test

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/wheelibin/ledpanel/internal/spectrum"
)

func newLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{Level: log.FatalLevel})
}

func Test_Resolve(t *testing.T) {

	tests := []struct {
		name      string
		deviceHue float64
		minHue    int
		maxHue    int
	}{
		{name: "start of the spectrum is red", deviceHue: 0, minHue: 0, maxHue: 0},
		{name: "middle of the spectrum is cyan", deviceHue: 127.5, minHue: 180, maxHue: 180},
		{name: "end of the spectrum is clamped to the last pixel", deviceHue: 255, minHue: 355, maxHue: 359},
		{name: "values past the end are clamped", deviceHue: 1000, minHue: 355, maxHue: 359},
		{name: "negative values are clamped to the first pixel", deviceHue: -20, minHue: 0, maxHue: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// arrange
			r := spectrum.NewHueResolver(newLogger(), spectrum.Rainbow(256, 10))

			// act
			hue := r.Resolve(tt.deviceHue)

			// assert
			assert.GreaterOrEqual(t, hue, tt.minHue)
			assert.LessOrEqual(t, hue, tt.maxHue)
		})
	}

	t.Run("NaN resolves to the default hue", func(t *testing.T) {
		r := spectrum.NewHueResolver(newLogger(), spectrum.Rainbow(256, 10))
		assert.Equal(t, 0, r.Resolve(math.NaN()))
	})

	t.Run("results are memoized even if the image changes", func(t *testing.T) {
		// arrange
		img := spectrum.Rainbow(256, 10).(*image.RGBA)
		r := spectrum.NewHueResolver(newLogger(), img)
		first := r.Resolve(100)

		// act
		for x := 0; x < 256; x++ {
			for y := 0; y < 10; y++ {
				img.Set(x, y, color.RGBA{R: 255, A: 255})
			}
		}
		second := r.Resolve(100)

		// assert
		assert.NotEqual(t, 0, first)
		assert.Equal(t, first, second)
		assert.Equal(t, 0, r.Resolve(101))
	})

	t.Run("transparent pixels resolve to the default hue", func(t *testing.T) {
		r := spectrum.NewHueResolver(newLogger(), image.NewRGBA(image.Rect(0, 0, 10, 10)))
		assert.Equal(t, 0, r.Resolve(50))
	})

	t.Run("is safe for concurrent use", func(t *testing.T) {
		// arrange
		r := spectrum.NewHueResolver(newLogger(), spectrum.Rainbow(256, 10))
		results := make([]int, 50)
		var wg sync.WaitGroup

		// act
		for i := range results {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i] = r.Resolve(127.5)
			}(i)
		}
		wg.Wait()

		// assert
		for _, hue := range results {
			assert.Equal(t, 180, hue)
		}
	})
}

func Test_Rainbow(t *testing.T) {

	t.Run("uses the requested size", func(t *testing.T) {
		img := spectrum.Rainbow(64, 3)
		assert.Equal(t, 64, img.Bounds().Dx())
		assert.Equal(t, 3, img.Bounds().Dy())
	})

	t.Run("falls back to default size", func(t *testing.T) {
		img := spectrum.Rainbow(0, 0)
		assert.Equal(t, 256, img.Bounds().Dx())
		assert.Equal(t, 100, img.Bounds().Dy())
	})
}

func Test_Load(t *testing.T) {

	t.Run("decodes a png", func(t *testing.T) {
		// arrange
		path := filepath.Join(t.TempDir(), "spectrum.png")
		f, err := os.Create(path)
		assert.NoError(t, err)
		assert.NoError(t, png.Encode(f, spectrum.Rainbow(32, 4)))
		f.Close()

		// act
		img, err := spectrum.Load(path)

		// assert
		assert.NoError(t, err)
		assert.Equal(t, 32, img.Bounds().Dx())
	})

	t.Run("returns an error for a missing file", func(t *testing.T) {
		_, err := spectrum.Load(filepath.Join(t.TempDir(), "missing.png"))
		assert.Error(t, err)
	})

	t.Run("returns an error for a file that isn't an image", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "spectrum.png")
		assert.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))

		_, err := spectrum.Load(path)

		assert.Error(t, err)
	})
}
