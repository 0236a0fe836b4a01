package entity

import (
	"net/url"
	"strings"
)

// LoadOutcome classifies a finished page load.
type LoadOutcome int

const (
	LoadSucceeded LoadOutcome = iota
	LoadStartPageUnreachable
	LoadOtherPageUnreachable
)

func (o LoadOutcome) String() string {
	switch o {
	case LoadSucceeded:
		return "success"
	case LoadStartPageUnreachable:
		return "start-page-unreachable"
	case LoadOtherPageUnreachable:
		return "other-page-unreachable"
	default:
		return "unknown"
	}
}

// NeedsSubstitute reports whether the outcome replaces the page content.
func (o LoadOutcome) NeedsSubstitute() bool {
	return o != LoadSucceeded
}

// ClassifyLoad decides which page to show after a load finished.
// A failed load whose host matches the start URL's host means the kiosk
// cannot reach its own home, which is treated as a network outage.
func ClassifyLoad(ok bool, failingURL, startURL string) LoadOutcome {
	if ok {
		return LoadSucceeded
	}
	if SameHost(failingURL, startURL) {
		return LoadStartPageUnreachable
	}
	return LoadOtherPageUnreachable
}

// SameHost compares the host parts of two URLs case-insensitively.
// URLs without a host never match.
func SameHost(a, b string) bool {
	ha := hostOf(a)
	if ha == "" {
		return false
	}
	return ha == hostOf(b)
}

func hostOf(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Hostname())
}
