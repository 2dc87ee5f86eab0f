package server

import (
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
)

// parseOptionalTime accepts RFC3339 or a bare date. endOfDay pushes a
// bare date to 23:59:59 so inclusive range filters behave.
func parseOptionalTime(value string, endOfDay bool) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, nil
	}

	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Second)
	}
	return &t, nil
}

func parseSnowflake(value string) (snowflake.ID, error) {
	return snowflake.ParseString(strings.TrimSpace(value))
}
