package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validatePubChem(); err != nil {
		return err
	}
	if err := c.validateWikidata(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.Paths.Workset == "" {
		return errors.New("paths.workset must be set")
	}
	if c.Paths.Output == "" {
		return errors.New("paths.output must be set")
	}
	if c.Paths.Export == "" {
		return errors.New("paths.export must be set")
	}
	if c.Batch.CacheLookups && c.Paths.CacheFile == "" {
		return errors.New("paths.cache_file must be set when batch.cache_lookups is true")
	}
	return nil
}

func (c *Config) validatePubChem() error {
	if _, err := url.ParseRequestURI(c.PubChem.BaseURL); err != nil {
		return fmt.Errorf("pubchem.base_url is not a valid URL: %w", err)
	}
	return nil
}

func (c *Config) validateWikidata() error {
	if _, err := url.ParseRequestURI(c.Wikidata.SPARQLURL); err != nil {
		return fmt.Errorf("wikidata.sparql_url is not a valid URL: %w", err)
	}
	if _, err := url.ParseRequestURI(c.Wikidata.EntityURL); err != nil {
		return fmt.Errorf("wikidata.entity_url is not a valid URL: %w", err)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
