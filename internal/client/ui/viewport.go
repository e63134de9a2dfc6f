package ui

import (
	"golang.org/x/term"
)

const (
	// DefaultScrollThreshold расстояние до конца контента (в строках), при котором грузится следующая страница
	DefaultScrollThreshold = 3
	// DefaultViewportHeight высота окна, если терминал недоступен
	DefaultViewportHeight = 20
)

// Viewport is the visible window over rendered content.
type Viewport struct {
	Height    int // видимых строк
	Offset    int // первая видимая строка
	Threshold int // строк до конца, считающихся "около конца"
}

// NewViewport creates a viewport at the top of the content
func NewViewport(height, threshold int) Viewport {
	if height <= 0 {
		height = DefaultViewportHeight
	}
	if threshold < 0 {
		threshold = DefaultScrollThreshold
	}
	return Viewport{Height: height, Threshold: threshold}
}

// ScrollBy moves the window by n lines, clamped to the content
func (v *Viewport) ScrollBy(n, contentHeight int) {
	v.Offset += n
	v.clamp(contentHeight)
}

// ScrollToTop moves the window to the first line
func (v *Viewport) ScrollToTop() {
	v.Offset = 0
}

// NearBottom reports whether the bottom edge of the window is within
// Threshold lines of the end of the content.
func (v Viewport) NearBottom(contentHeight int) bool {
	return v.Offset+v.Height >= contentHeight-v.Threshold
}

// Window returns the visible line range [start, end) for the content
func (v Viewport) Window(contentHeight int) (int, int) {
	v.clamp(contentHeight)
	end := v.Offset + v.Height
	if end > contentHeight {
		end = contentHeight
	}
	return v.Offset, end
}

func (v *Viewport) clamp(contentHeight int) {
	maxOffset := contentHeight - v.Height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if v.Offset > maxOffset {
		v.Offset = maxOffset
	}
	if v.Offset < 0 {
		v.Offset = 0
	}
}

// TerminalHeight возвращает высоту терминала для fd за вычетом строки ввода.
// Если fd не терминал, возвращается fallback.
func TerminalHeight(fd int, fallback int) int {
	if !term.IsTerminal(fd) {
		return fallback
	}

	_, height, err := term.GetSize(fd)
	if err != nil || height < 2 {
		return fallback
	}

	return height - 1
}
