package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/conn-castle/pricebook/internal/messages"
)

var validLogLevels = map[string]struct{}{
	"debug": {},
	"info":  {},
	"warn":  {},
	"error": {},
}

// Validate ensures the config is complete and consistent.
func (c *Config) Validate(path string) error {
	src := c.Source
	if strings.TrimSpace(src.Dir) != "" && strings.TrimSpace(src.URL) != "" {
		return fmt.Errorf(messages.ConfigSourceBothFmt, path)
	}
	if strings.TrimSpace(src.Dir) == "" && strings.TrimSpace(src.URL) == "" {
		return fmt.Errorf(messages.ConfigSourceMissingFmt, path)
	}
	if src.URL != "" {
		parsed, err := url.Parse(src.URL)
		if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
			return fmt.Errorf(messages.ConfigSourceURLInvalidFmt, path, src.URL)
		}
	}
	if src.TimeoutSeconds < 0 {
		return fmt.Errorf(messages.ConfigTimeoutInvalidFmt, path, src.TimeoutSeconds)
	}
	if _, ok := validLogLevels[strings.ToLower(c.Log.Level)]; !ok {
		return fmt.Errorf(messages.ConfigLogLevelInvalidFmt, path, c.Log.Level)
	}
	return nil
}
