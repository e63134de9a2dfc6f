package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/postkeeper/internal/models"
)

func TestRenderer_Render(t *testing.T) {
	var out bytes.Buffer
	r := NewRenderer(&out)

	height := r.Render([]models.Post{
		{ID: 1, Title: "First", Body: "one"},
		{ID: 2, Title: "Second", Body: "line a\nline b"},
	})

	assert.Equal(t, 9, height)
	assert.Equal(t, height, r.Height())
	assert.Equal(t, []string{
		"#1 First",
		"    one",
		"    [e 1] edit  [d 1] delete",
		"",
		"#2 Second",
		"    line a",
		"    line b",
		"    [e 2] edit  [d 2] delete",
		"",
	}, r.Lines())

	// Рендер ничего не пишет до Draw
	assert.Empty(t, out.String())
}

func TestRenderer_Render_LineBreaks(t *testing.T) {
	tests := []struct {
		name       string
		post       models.Post
		wantHeight int
		wantLines  []string
	}{
		{
			name:       "newline in title",
			post:       models.Post{ID: 7, Title: "Shopping\nlist", Body: "milk"},
			wantHeight: 4,
			wantLines:  []string{"#7 Shopping list", "    milk", "    [e 7] edit  [d 7] delete", ""},
		},
		{
			name:       "crlf in title",
			post:       models.Post{ID: 8, Title: "a\r\nb\rc", Body: "x"},
			wantHeight: 4,
			wantLines:  []string{"#8 a b c", "    x", "    [e 8] edit  [d 8] delete", ""},
		},
		{
			name:       "crlf in body",
			post:       models.Post{ID: 9, Title: "t", Body: "one\r\ntwo\rthree"},
			wantHeight: 6,
			wantLines:  []string{"#9 t", "    one", "    two", "    three", "    [e 9] edit  [d 9] delete", ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRenderer(&bytes.Buffer{})

			height := r.Render([]models.Post{tt.post})

			assert.Equal(t, tt.wantHeight, height)
			assert.Equal(t, tt.wantLines, r.Lines())
			// ни одна строка не содержит перевода строки, иначе высота неверна
			for _, line := range r.Lines() {
				assert.NotContains(t, line, "\n")
				assert.NotContains(t, line, "\r")
			}
		})
	}
}

func TestRenderer_RenderReplacesContent(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{})

	r.Render([]models.Post{{ID: 1, Title: "a", Body: "b"}, {ID: 2, Title: "c", Body: "d"}})
	r.Render([]models.Post{{ID: 3, Title: "e", Body: "f"}})

	lines := r.Lines()
	require.Len(t, lines, 4)
	assert.Equal(t, "#3 e", lines[0])
}

func TestRenderer_Clear(t *testing.T) {
	var out bytes.Buffer
	r := NewRenderer(&out)

	r.Render([]models.Post{{ID: 1, Title: "a", Body: "b"}})
	r.Clear()
	assert.Equal(t, 0, r.Height())

	require.NoError(t, r.DrawAll())
	assert.Equal(t, "No posts.\n", out.String())
}

func TestRenderer_Draw(t *testing.T) {
	var out bytes.Buffer
	r := NewRenderer(&out)

	r.Render([]models.Post{
		{ID: 1, Title: "First", Body: "one"},
		{ID: 2, Title: "Second", Body: "two"},
	})

	v := Viewport{Height: 3, Offset: 4}
	require.NoError(t, r.Draw(v))
	assert.Equal(t, "#2 Second\n    two\n    [e 2] edit  [d 2] delete\n", out.String())
}

func TestRenderer_DrawAll(t *testing.T) {
	var out bytes.Buffer
	r := NewRenderer(&out)

	r.Render([]models.Post{{ID: 5, Title: "Only", Body: "post"}})
	require.NoError(t, r.DrawAll())
	assert.Contains(t, out.String(), "#5 Only\n")
	assert.Contains(t, out.String(), "[e 5] edit  [d 5] delete")
}
