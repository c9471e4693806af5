package entity

import (
	"time"

	"github.com/pkg/errors"
)

// FormatConfig is per-table display and parse configuration, read-only for
// the life of the table.
type FormatConfig struct {
	// TimeZone is an IANA zone name, blank for the process-local zone
	TimeZone string `yaml:"timezone,omitempty"`
	// ForceTZ displays date values in TimeZone regardless of their own zone
	ForceTZ bool `yaml:"forcetz,omitempty"`
	// DateFormat and DateTimeFormat are Go reference-time layouts
	DateFormat     string `yaml:"dateformat,omitempty"`
	DateTimeFormat string `yaml:"datetimeformat,omitempty"`
	// NumberFormat is an fmt verb such as "%.2f", blank for default rendering
	NumberFormat string `yaml:"numberformat,omitempty"`
}

// Location resolves the configured time zone.
func (cfg FormatConfig) Location() (loc *time.Location, err error) {

	if cfg.TimeZone == "" {
		return time.Local, nil
	}

	loc, err = time.LoadLocation(cfg.TimeZone)
	err = errors.Wrapf(err, "failed to load time zone %s", cfg.TimeZone)
	return
}
