package config

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/aalvaropc/rolodex/internal/domain"
)

// MapConfig applies the values present in y on top of domain.DefaultConfig.
// Every invalid field is reported, not just the first one.
func MapConfig(path string, y YAMLConfig) (domain.Config, error) {
	cfg := domain.DefaultConfig()
	var errs *multierror.Error

	if out := strings.ToLower(strings.TrimSpace(y.Rolodex.Output)); out != "" {
		format, err := ParseOutputFormat(out)
		if err != nil {
			errs = multierror.Append(errs, fieldError("rolodex.output", err.Error()))
		} else {
			cfg.Output = format
		}
	}

	if v := y.Rolodex.Parser.RejectUnknownPrefixes; v != nil {
		cfg.Parser.RejectUnknownPrefixes = *v
	}

	lg := y.Rolodex.Logging
	if lg.Debug != nil {
		cfg.Logging.Debug = *lg.Debug
	}
	if lg.MaxSizeMB != nil {
		if *lg.MaxSizeMB <= 0 {
			errs = multierror.Append(errs, fieldError("rolodex.logging.max_size_mb", "must be greater than 0"))
		} else {
			cfg.Logging.MaxSizeMB = *lg.MaxSizeMB
		}
	}
	if lg.MaxBackups != nil {
		if *lg.MaxBackups < 0 {
			errs = multierror.Append(errs, fieldError("rolodex.logging.max_backups", "must not be negative"))
		} else {
			cfg.Logging.MaxBackups = *lg.MaxBackups
		}
	}

	if err := errs.ErrorOrNil(); err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "config.map",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err),
		}
	}
	return cfg, nil
}

// ParseOutputFormat accepts "yaml" or "json", in any case.
func ParseOutputFormat(s string) (domain.OutputFormat, error) {
	switch f := domain.OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case domain.OutputYAML, domain.OutputJSON:
		return f, nil
	}
	return "", fmt.Errorf("unsupported output format %q (want yaml or json)", s)
}

func fieldError(field, msg string) error {
	return fmt.Errorf("field %s: %s", field, msg)
}
