package selection

import (
	"math"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"
)

type rangeReceiver interface {
	SetSelectedRange(startPercent *float64, endPercent *float64)
}

// RangeSelector tracks a press/drag/release selection over the preview swatches
type RangeSelector struct {
	logger   *log.Logger
	receiver rangeReceiver

	mu       sync.RWMutex
	count    int
	start    *int
	end      *int
	selected []bool
}

func NewRangeSelector(logger *log.Logger, receiver rangeReceiver, count int) *RangeSelector {
	s := &RangeSelector{logger: logger, receiver: receiver}
	s.Resize(count)
	return s
}

// Resize changes the number of swatches, dropping any selection
func (s *RangeSelector) Resize(count int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.count = max(count, 0)
	s.start = nil
	s.end = nil
	s.selected = make([]bool, s.count)
}

func (s *RangeSelector) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.count
}

// Percent is the strip position of swatch index, round(i/(N-1)*100)
func (s *RangeSelector) Percent(index int) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.percent(index)
}

func (s *RangeSelector) Press(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.count == 0 {
		return
	}
	idx := s.clamp(index)
	s.start = &idx
	s.end = nil
	s.logger.Debug("selection pressed", "index", idx)
}

func (s *RangeSelector) Drag(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.count == 0 {
		return
	}
	idx := s.clamp(index)
	if s.start == nil {
		s.start = &idx
	} else {
		s.end = &idx
	}
	s.mark()
}

// Release commits the current selection and hands its percentages to the receiver
func (s *RangeSelector) Release() {
	s.commit()
}

func (s *RangeSelector) SelectAll() {
	s.mu.Lock()
	if s.count > 0 {
		first, last := 0, s.count-1
		s.start = &first
		s.end = &last
	}
	s.mu.Unlock()
	s.commit()
}

func (s *RangeSelector) Clear() {
	s.mu.Lock()
	s.start = nil
	s.end = nil
	s.mu.Unlock()
	s.commit()
}

func (s *RangeSelector) IsSelected(index int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if index < 0 || index >= s.count {
		return false
	}
	return s.selected[index]
}

// Range returns the selected swatch indexes in the order they were picked
func (s *RangeSelector) Range() (*int, *int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.start, s.end
}

func (s *RangeSelector) commit() {
	s.mu.Lock()
	var startPercent, endPercent *float64
	if s.start == nil || s.end == nil {
		s.selected = make([]bool, s.count)
	} else {
		s.mark()
		sp := s.percent(min(*s.start, *s.end))
		ep := s.percent(max(*s.start, *s.end))
		startPercent, endPercent = &sp, &ep
	}
	s.mu.Unlock()

	s.logger.Debug("selection committed", "start", startPercent, "end", endPercent)
	s.receiver.SetSelectedRange(startPercent, endPercent)
}

// callers hold the lock
func (s *RangeSelector) mark() {
	s.selected = make([]bool, s.count)
	if s.start == nil || s.end == nil {
		return
	}
	from, to := *s.start, *s.end
	if from > to {
		from, to = to, from
	}
	for i := from; i <= to; i++ {
		s.selected[i] = true
	}
}

func (s *RangeSelector) percent(index int) float64 {
	if s.count <= 1 {
		return 0
	}
	return math.Round(float64(index) / float64(s.count-1) * 100)
}

func (s *RangeSelector) clamp(index int) int {
	return lo.Clamp(index, 0, s.count-1)
}
