// Package ui отображает записи в терминале.
// Рендерер только проецирует переданные записи и никогда не изменяет данные.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/iudanet/postkeeper/internal/models"
)

// Renderer holds the currently displayed content and writes it to out.
type Renderer struct {
	out   io.Writer
	lines []string
}

// NewRenderer creates a renderer writing to out
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// Render replaces the displayed content with one block per post
// and returns the content height in lines.
func (r *Renderer) Render(posts []models.Post) int {
	lines := make([]string, 0, len(posts)*4)
	for _, p := range posts {
		lines = append(lines, postBlock(p)...)
	}
	r.lines = lines
	return len(lines)
}

// Clear empties the displayed content
func (r *Renderer) Clear() {
	r.lines = nil
}

// Height returns the content height in lines
func (r *Renderer) Height() int {
	return len(r.lines)
}

// Lines returns a copy of the displayed content
func (r *Renderer) Lines() []string {
	out := make([]string, len(r.lines))
	copy(out, r.lines)
	return out
}

// Draw writes the part of the content visible through v
func (r *Renderer) Draw(v Viewport) error {
	start, end := v.Window(len(r.lines))
	return r.write(r.lines[start:end])
}

// DrawAll writes the whole content
func (r *Renderer) DrawAll() error {
	return r.write(r.lines)
}

func (r *Renderer) write(lines []string) error {
	if len(lines) == 0 {
		_, err := fmt.Fprintln(r.out, "No posts.")
		return err
	}

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	_, err := io.WriteString(r.out, b.String())
	return err
}

// Заголовок занимает ровно одну строку блока
var titleLineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

var bodyLineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// postBlock форматирует запись: заголовок, текст и действия edit/delete
func postBlock(p models.Post) []string {
	block := []string{fmt.Sprintf("#%d %s", p.ID, titleLineBreaks.Replace(p.Title))}
	for _, line := range strings.Split(bodyLineBreaks.Replace(p.Body), "\n") {
		block = append(block, "    "+line)
	}
	block = append(block,
		fmt.Sprintf("    [e %d] edit  [d %d] delete", p.ID, p.ID),
		"",
	)
	return block
}
