package config

import (
	"fmt"
	"strings"

	urlutil "github.com/law-makers/statsguru/internal/utils/url"
)

func validate(c *Config) error {
	if c.HTTPTimeout < 0 {
		return fmt.Errorf("http timeout must be >= 0")
	}
	if c.PageDelay < 0 {
		return fmt.Errorf("page delay must be >= 0")
	}
	if c.OutputPath == "" {
		return fmt.Errorf("output path is required")
	}
	if strings.Count(c.URLTemplate, "%d") != 1 || strings.Count(c.URLTemplate, "%") != 1 {
		return fmt.Errorf("url template must contain exactly one %%d verb")
	}
	if err := urlutil.ValidateURL(fmt.Sprintf(c.URLTemplate, 1)); err != nil {
		return err
	}
	if c.Proxy != "" {
		if err := urlutil.ValidateProxy(c.Proxy); err != nil {
			return err
		}
	}
	return nil
}
