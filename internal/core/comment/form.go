package comment

import (
	"strings"

	"blogicum/internal/core/validation"

	"github.com/microcosm-cc/bluemonday"
)

var textPolicy = bluemonday.UGCPolicy()

type Form struct {
	Text string `json:"text" validate:"required"`
}

// Validate returns the sanitised comment text.
func (f Form) Validate() (string, error) {
	f.Text = strings.TrimSpace(textPolicy.Sanitize(f.Text))
	if err := validation.Struct(f).Err(); err != nil {
		return "", err
	}
	return f.Text, nil
}
