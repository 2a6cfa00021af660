package tui

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// shimmerTickMsg drives the highlight sweep animation.
type shimmerTickMsg struct{}

// ShimmerState animates a highlight band sweeping across the selected
// row's title. The sweep advances one step per rendered frame and wraps
// once it runs past the end of the text.
type ShimmerState struct {
	position float64
	speed    float64
	band     float64
	interval time.Duration
	active   bool
}

// NewShimmerState creates a shimmer with the default sweep settings.
func NewShimmerState() *ShimmerState {
	return &ShimmerState{
		position: -2,
		speed:    0.6,
		band:     4,
		interval: 50 * time.Millisecond,
		active:   true,
	}
}

// GetTickInterval returns how often the animation should be re-rendered.
func (s *ShimmerState) GetTickInterval() time.Duration {
	return s.interval
}

// ShouldTick reports whether the animation is running.
func (s *ShimmerState) ShouldTick() bool {
	return s.active
}

// Reset restarts the sweep from the left edge.
func (s *ShimmerState) Reset() {
	s.position = -2
}

// SetActive starts or pauses the animation.
func (s *ShimmerState) SetActive(active bool) {
	s.active = active
	if active {
		s.Reset()
	}
}

// RenderShimmerText renders text with the moving highlight band, advancing
// the sweep position as a side effect.
func (s *ShimmerState) RenderShimmerText(text, baseColor, highlightColor string) string {
	base := lipgloss.NewStyle().Foreground(lipgloss.Color(baseColor))
	if !s.active || text == "" {
		return base.Render(text)
	}

	runes := []rune(text)
	s.position += s.speed
	if s.position > float64(len(runes))+s.band {
		s.position = -s.band
	}

	highlight := lipgloss.NewStyle().
		Foreground(lipgloss.Color(highlightColor)).
		Bold(true)

	var b strings.Builder
	for i, r := range runes {
		if math.Abs(float64(i)-s.position) <= s.band/2 {
			b.WriteString(highlight.Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}
	return b.String()
}
