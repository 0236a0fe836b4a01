package entity

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Bookmark is a named shortcut shown as a toolbar button.
type Bookmark struct {
	Label       string
	URL         string
	Description string
}

var ErrInvalidBookmark = errors.New("invalid bookmark")

// Validate checks that the bookmark has a label and an absolute URL.
func (b Bookmark) Validate() error {
	if strings.TrimSpace(b.Label) == "" {
		return fmt.Errorf("%w: empty label", ErrInvalidBookmark)
	}
	if !IsNavigableURL(b.URL) {
		return fmt.Errorf("%w: %q has no usable url %q", ErrInvalidBookmark, b.Label, b.URL)
	}
	return nil
}

// Tooltip returns the description, falling back to the URL.
func (b Bookmark) Tooltip() string {
	if b.Description != "" {
		return b.Description
	}
	return b.URL
}

// IsNavigableURL reports whether raw parses as an absolute URL a web view
// can load. about: and file: URLs have no host and are accepted.
func IsNavigableURL(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" {
		return false
	}
	switch u.Scheme {
	case "about", "file", "data":
		return true
	}
	return u.Host != ""
}
