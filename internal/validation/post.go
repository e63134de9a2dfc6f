package validation

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBlankField возвращается, если обязательное поле формы пустое
var ErrBlankField = errors.New("field cannot be blank")

// PostInput содержит значения полей формы после обрезки пробелов
type PostInput struct {
	Title string
	Body  string
}

// ValidatePost проверяет, что заголовок и текст записи не пустые.
// Пробелы по краям отбрасываются до проверки, очищенные значения
// возвращаются вызывающему коду.
func ValidatePost(title, body string) (PostInput, error) {
	input := PostInput{
		Title: strings.TrimSpace(title),
		Body:  strings.TrimSpace(body),
	}

	if input.Title == "" {
		return input, fmt.Errorf("title: %w", ErrBlankField)
	}

	if input.Body == "" {
		return input, fmt.Errorf("body: %w", ErrBlankField)
	}

	return input, nil
}
