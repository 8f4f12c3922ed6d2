package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/wheelibin/ledpanel/internal/models"
)

func Test_PreviewMessage(t *testing.T) {

	t.Run("an older render does not replace a newer one", func(t *testing.T) {
		// arrange
		newer := []models.LED{{HTMLColor: "hsl(0,100%,50%)"}}
		older := []models.LED{{HTMLColor: "hsl(0,0%,0%)"}}
		var m tea.Model = Model{editor: textarea.New()}

		// act
		m, _ = m.Update(previewMessage{Seq: 2, LedCount: 1, Leds: newer})
		m, _ = m.Update(previewMessage{Seq: 1, LedCount: 1, Leds: older})

		// assert
		assert.Equal(t, newer, m.(Model).leds)
		assert.Equal(t, uint64(2), m.(Model).ledsSeq)
	})
}
