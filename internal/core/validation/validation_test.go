package validation

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Username string `json:"username" validate:"required,max=10,username"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name  string
		input signup
		want  map[string]string
	}{
		{
			name:  "valid",
			input: signup{Username: "leo_t", Password: "long-enough"},
			want:  map[string]string{},
		},
		{
			name:  "missing fields",
			input: signup{},
			want: map[string]string{
				"username": "This field is required.",
				"password": "This field is required.",
			},
		},
		{
			name:  "too long and too short",
			input: signup{Username: "abcdefghijk", Password: "short"},
			want: map[string]string{
				"username": "Ensure this value has at most 10 characters.",
				"password": "Ensure this value has at least 8 characters.",
			},
		},
		{
			name:  "bad username and email",
			input: signup{Username: "a b", Email: "nope", Password: "long-enough"},
			want: map[string]string{
				"username": "Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters.",
				"email":    "Enter a valid email address.",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Struct(tt.input)
			require.Len(t, errs, len(tt.want))
			for field, msg := range tt.want {
				assert.Equal(t, []string{msg}, errs[field], field)
			}
		})
	}
}

func TestErrors(t *testing.T) {
	errs := Errors{}
	assert.NoError(t, errs.Err())

	errs.Add("title", "This field is required.")
	errs.Add("text", "This field is required.")
	assert.True(t, errs.Has("title"))
	assert.False(t, errs.Has("pub_date"))
	assert.Equal(t, "validation failed: text: This field is required.; title: This field is required.", errs.Error())

	wrapped := fmt.Errorf("creating post: %w", errs.Err())
	got, ok := As(wrapped)
	require.True(t, ok)
	assert.Equal(t, errs, got)

	_, ok = As(errors.New("boom"))
	assert.False(t, ok)
}
