package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizePubChem()
	c.normalizeWikidata()
	c.normalizeBatch()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	if value, ok := os.LookupEnv("ALKALOID_WORKSET"); ok && strings.TrimSpace(value) != "" {
		c.Paths.Workset = value
	}

	var err error
	if c.Paths.Workset, err = expandPath(c.Paths.Workset); err != nil {
		return fmt.Errorf("paths.workset: %w", err)
	}
	if c.Paths.Output, err = expandPath(c.Paths.Output); err != nil {
		return fmt.Errorf("paths.output: %w", err)
	}
	if c.Paths.Export, err = expandPath(c.Paths.Export); err != nil {
		return fmt.Errorf("paths.export: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if c.Paths.CacheFile, err = expandPath(c.Paths.CacheFile); err != nil {
		return fmt.Errorf("paths.cache_file: %w", err)
	}
	return nil
}

func (c *Config) normalizePubChem() {
	c.PubChem.BaseURL = strings.TrimRight(strings.TrimSpace(c.PubChem.BaseURL), "/")
	if c.PubChem.BaseURL == "" {
		c.PubChem.BaseURL = defaultPubChemBaseURL
	}
	if c.PubChem.TimeoutSeconds <= 0 {
		c.PubChem.TimeoutSeconds = defaultPubChemTimeout
	}
	if c.PubChem.MinIntervalMS <= 0 {
		c.PubChem.MinIntervalMS = defaultPubChemInterval
	}
}

func (c *Config) normalizeWikidata() {
	c.Wikidata.SPARQLURL = strings.TrimSpace(c.Wikidata.SPARQLURL)
	if c.Wikidata.SPARQLURL == "" {
		c.Wikidata.SPARQLURL = defaultSPARQLURL
	}
	c.Wikidata.EntityURL = strings.TrimRight(strings.TrimSpace(c.Wikidata.EntityURL), "/")
	if c.Wikidata.EntityURL == "" {
		c.Wikidata.EntityURL = defaultEntityURL
	}
	if strings.TrimSpace(c.Wikidata.UserAgent) == "" {
		c.Wikidata.UserAgent = defaultWikidataUserAgent
	}
	if c.Wikidata.TimeoutSeconds <= 0 {
		c.Wikidata.TimeoutSeconds = defaultWikidataTimeout
	}
	if c.Wikidata.MinIntervalMS <= 0 {
		c.Wikidata.MinIntervalMS = defaultWikidataInterval
	}
}

func (c *Config) normalizeBatch() {
	if c.Batch.MaxItems < 0 {
		c.Batch.MaxItems = 0
	}
	if c.Batch.ItemDelayMS < 0 {
		c.Batch.ItemDelayMS = 0
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
}
