package search

import (
	"net/url"
	"strconv"
	"time"

	"github.com/pbrandao-dev/bookshelf-api/internal/validator"
)

var dateLayouts = []string{"2006-01-02", time.RFC3339}

// ParseFilter reads the advanced search query parameters into a Filter.
// An absent parameter skips its dimension entirely; a parameter that is
// present but empty or unparsable records a validation error on v, and
// the caller must answer 400 before the filter reaches storage.
func ParseFilter(qs url.Values, v *validator.Validator) Filter {
	var f Filter

	if qs.Has("title") {
		title := qs.Get("title")
		if title == "" {
			v.AddError("title", "must not be empty")
		} else {
			f.Title = &title
		}
	}

	f.MinPrice = parseFloat(qs, "minPrice", v)
	f.MaxPrice = parseFloat(qs, "maxPrice", v)
	f.MinPages = parseInt(qs, "minPages", v)
	f.MaxPages = parseInt(qs, "maxPages", v)

	if genres, ok := qs["genre"]; ok {
		for _, g := range genres {
			if g == "" {
				v.AddError("genre", "must not be empty")
				continue
			}
			f.Genres = append(f.Genres, g)
		}
	}

	if qs.Has("fromDate") {
		raw := qs.Get("fromDate")
		parsed := false
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, raw); err == nil {
				f.FromDate = &t
				parsed = true
				break
			}
		}
		if !parsed {
			v.AddError("fromDate", "must be a valid ISO 8601 date")
		}
	}

	return f
}

func parseFloat(qs url.Values, key string, v *validator.Validator) *float64 {
	if !qs.Has(key) {
		return nil
	}
	value, err := strconv.ParseFloat(qs.Get(key), 64)
	if err != nil {
		v.AddError(key, "must be a number")
		return nil
	}
	return &value
}

func parseInt(qs url.Values, key string, v *validator.Validator) *int {
	if !qs.Has(key) {
		return nil
	}
	value, err := strconv.Atoi(qs.Get(key))
	if err != nil {
		v.AddError(key, "must be an integer")
		return nil
	}
	return &value
}
