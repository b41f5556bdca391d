package timeutil

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// locationCache stores cached timezone locations for performance.
var locationCache sync.Map

// Layouts used across the API.
const (
	DateLayout          = "2006-01-02"
	ClockLayout         = "15:04"
	LocalDateTimeLayout = "2006-01-02T15:04:05"
)

// GetLocation returns a cached timezone location.
// It caches the result for subsequent calls with the same name.
func GetLocation(name string) (*time.Location, error) {
	if loc, ok := locationCache.Load(name); ok {
		return loc.(*time.Location), nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", name, err)
	}

	locationCache.Store(name, loc)
	return loc, nil
}

// ResolveLocation is GetLocation with "" and "Local" meaning the process
// timezone.
func ResolveLocation(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, "local") {
		return time.Local, nil
	}
	return GetLocation(name)
}

// FormatDate formats a time as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatClock formats a time as HH:MM.
func FormatClock(t time.Time) string {
	return t.Format(ClockLayout)
}

// FormatLocalDateTime formats the wall clock of t without an offset, the
// way flight providers publish schedule times. The zero time yields "".
func FormatLocalDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(LocalDateTimeLayout)
}

// ClearLocationCache clears the cached timezone locations.
// This is primarily useful for testing.
func ClearLocationCache() {
	locationCache.Range(func(key, _ interface{}) bool {
		locationCache.Delete(key)
		return true
	})
}
