package post

import (
	"strings"
	"time"

	"blogicum/internal/core/validation"

	"github.com/gofrs/uuid"
	"github.com/microcosm-cc/bluemonday"
)

// pubDateLayouts are tried in order when parsing the pub_date field.
var pubDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

var textPolicy = bluemonday.UGCPolicy()

// Form is the client-editable part of a post. Author and publication flag
// are never taken from the client.
type Form struct {
	Title      string `json:"title" validate:"required,max=256"`
	Text       string `json:"text" validate:"required"`
	PubDate    string `json:"pub_date"`
	CategoryID string `json:"category_id" validate:"omitempty,uuid"`
	LocationID string `json:"location_id" validate:"omitempty,uuid"`
}

// Input is a validated Form.
type Input struct {
	Title      string
	Text       string
	PubDate    *time.Time
	CategoryID *uuid.UUID
	LocationID *uuid.UUID
}

// Validate checks the form and converts it into an Input. The location is
// used for pub_date values that carry no zone.
func (f Form) Validate(loc *time.Location) (*Input, error) {
	f.Title = strings.TrimSpace(f.Title)
	f.Text = strings.TrimSpace(textPolicy.Sanitize(f.Text))
	f.PubDate = strings.TrimSpace(f.PubDate)

	errs := validation.Struct(f)

	in := &Input{Title: f.Title, Text: f.Text}
	if f.PubDate != "" {
		t, ok := parsePubDate(f.PubDate, loc)
		if !ok {
			errs.Add("pub_date", "Enter a valid date/time.")
		} else {
			in.PubDate = &t
		}
	}
	if !errs.Has("category_id") && f.CategoryID != "" {
		id := uuid.FromStringOrNil(f.CategoryID)
		in.CategoryID = &id
	}
	if !errs.Has("location_id") && f.LocationID != "" {
		id := uuid.FromStringOrNil(f.LocationID)
		in.LocationID = &id
	}

	if err := errs.Err(); err != nil {
		return nil, err
	}
	return in, nil
}

func parsePubDate(s string, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range pubDateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
