package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePost(t *testing.T) {
	tests := []struct {
		name      string
		title     string
		body      string
		wantTitle string
		wantBody  string
		errMsg    string
		wantErr   bool
	}{
		{
			name:      "valid input",
			title:     "Title",
			body:      "Body",
			wantTitle: "Title",
			wantBody:  "Body",
		},
		{
			name:      "valid input with surrounding spaces",
			title:     "  Title \t",
			body:      "\nBody  ",
			wantTitle: "Title",
			wantBody:  "Body",
		},
		{
			name:    "invalid - empty title",
			title:   "",
			body:    "Body",
			wantErr: true,
			errMsg:  "title: field cannot be blank",
		},
		{
			name:    "invalid - whitespace title",
			title:   "   ",
			body:    "Body",
			wantErr: true,
			errMsg:  "title: field cannot be blank",
		},
		{
			name:    "invalid - blank body",
			title:   "Title",
			body:    " \n ",
			wantErr: true,
			errMsg:  "body: field cannot be blank",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input, err := ValidatePost(tt.title, tt.body)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrBlankField)
				assert.Equal(t, tt.errMsg, err.Error())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantTitle, input.Title)
			assert.Equal(t, tt.wantBody, input.Body)
		})
	}
}
