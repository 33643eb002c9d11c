// Package content defines the post front-matter schema, its closed
// category and tag vocabularies, and the loader that reads posts from disk.
package content

import (
	"fmt"
	"strings"
	"time"
)

// Record is a post's validated front matter.
type Record struct {
	Title            string   `json:"title" yaml:"title"`
	Date             string   `json:"date" yaml:"date"`
	Description      string   `json:"description,omitempty" yaml:"description,omitempty"`
	Category         Category `json:"category" yaml:"category"`
	Tags             []Tag    `json:"tags" yaml:"tags"`
	LegacyCategories []string `json:"categories" yaml:"categories"`
	Thumbnail        string   `json:"thumbnail,omitempty" yaml:"thumbnail,omitempty"`
	Featured         bool     `json:"featured" yaml:"featured"`
	Draft            bool     `json:"draft" yaml:"draft"`
}

// FieldError is a single front-matter field that failed validation.
type FieldError struct {
	Field  string
	Value  any
	Reason string
}

func (e FieldError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("%s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("%s: %s (got %#v)", e.Field, e.Reason, e.Value)
}

// ValidationError collects every field that failed in one record.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Error()
	}
	return "invalid front matter: " + strings.Join(msgs, "; ")
}

func (e *ValidationError) add(field string, value any, reason string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Value: value, Reason: reason})
}

// CoerceBool normalises a boolean-like front-matter value. Booleans pass
// through; strings are true only when they equal "true" ignoring case, so
// any other string reads as false. A missing value is false.
func CoerceBool(v any) (bool, error) {
	switch b := v.(type) {
	case nil:
		return false, nil
	case bool:
		return b, nil
	case string:
		return strings.EqualFold(b, "true"), nil
	}
	return false, fmt.Errorf("expected boolean or string, got %T", v)
}

// NewRecord validates raw front matter and builds a Record from it.
// Every failing field is reported in the returned *ValidationError.
func NewRecord(fm map[string]any) (*Record, error) {
	verr := &ValidationError{}
	r := &Record{
		Category:         DefaultCategory,
		Tags:             []Tag{},
		LegacyCategories: []string{},
	}

	if v, ok := fm["title"]; !ok || v == nil {
		verr.add("title", nil, "required")
	} else if s, ok := v.(string); ok {
		r.Title = s
	} else {
		verr.add("title", v, "must be a string")
	}

	switch v := fm["date"].(type) {
	case nil:
		verr.add("date", nil, "required")
	case string:
		r.Date = v
	case time.Time:
		// unquoted YAML timestamps
		if v.Hour() == 0 && v.Minute() == 0 && v.Second() == 0 && v.Nanosecond() == 0 {
			r.Date = v.Format("2006-01-02")
		} else {
			r.Date = v.Format(time.RFC3339)
		}
	default:
		verr.add("date", v, "must be a string")
	}

	r.Description = optionalString(verr, fm, "description")
	r.Thumbnail = optionalString(verr, fm, "thumbnail")

	if v, ok := fm["category"]; ok && v != nil {
		s, isStr := v.(string)
		if !isStr {
			verr.add("category", v, "must be a string")
		} else if c, err := ParseCategory(s); err != nil {
			verr.add("category", s, "not a known category")
		} else {
			r.Category = c
		}
	}

	eachString(verr, fm, "tags", func(i int, s string) {
		t, err := ParseTag(s)
		if err != nil {
			verr.add(fmt.Sprintf("tags[%d]", i), s, "not a known tag")
			return
		}
		r.Tags = append(r.Tags, t)
	})

	eachString(verr, fm, "categories", func(_ int, s string) {
		r.LegacyCategories = append(r.LegacyCategories, s)
	})

	for _, field := range []struct {
		name string
		dst  *bool
	}{
		{"featured", &r.Featured},
		{"draft", &r.Draft},
	} {
		b, err := CoerceBool(fm[field.name])
		if err != nil {
			verr.add(field.name, fm[field.name], err.Error())
			continue
		}
		*field.dst = b
	}

	if len(verr.Fields) > 0 {
		return nil, verr
	}
	return r, nil
}

func optionalString(verr *ValidationError, fm map[string]any, key string) string {
	v, ok := fm[key]
	if !ok || v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		verr.add(key, v, "must be a string")
	}
	return s
}

// eachString calls fn with every string of an optional list, passing the
// element's index in the source list. YAML decoders hand lists back as
// []any, so each element is checked.
func eachString(verr *ValidationError, fm map[string]any, key string, fn func(i int, s string)) {
	v, ok := fm[key]
	if !ok || v == nil {
		return
	}

	switch list := v.(type) {
	case []string:
		for i, s := range list {
			fn(i, s)
		}
	case []any:
		for i, el := range list {
			s, ok := el.(string)
			if !ok {
				verr.add(fmt.Sprintf("%s[%d]", key, i), el, "must be a string")
				continue
			}
			fn(i, s)
		}
	default:
		verr.add(key, v, "must be a list of strings")
	}
}
