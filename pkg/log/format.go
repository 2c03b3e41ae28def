package log

import (
	"strings"

	"github.com/gruntwork-io/tagexpr/internal/errors"
	"github.com/sirupsen/logrus"
)

// Format names accepted by ParseFormat.
const (
	TextFormat = "text"
	JSONFormat = "json"
)

// ParseFormat returns the logrus formatter for the named format.
// The text format honours disableColors.
func ParseFormat(name string, disableColors bool) (logrus.Formatter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case TextFormat, "":
		return &logrus.TextFormatter{
			DisableTimestamp: true,
			DisableColors:    disableColors,
			ForceColors:      !disableColors,
		}, nil
	case JSONFormat:
		return &logrus.JSONFormatter{}, nil
	}

	return nil, errors.Errorf("invalid log format %q, supported formats: %s, %s", name, TextFormat, JSONFormat)
}
