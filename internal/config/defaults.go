package config

const (
	defaultWorksetPath         = "~/.local/share/alkaloid/workset.csv"
	defaultOutputPath          = "~/.local/share/alkaloid/compounds.txt"
	defaultExportPath          = "~/.local/share/alkaloid/compounds.csv"
	defaultLogDir              = "~/.local/share/alkaloid/logs"
	defaultCacheFile           = "~/.local/share/alkaloid/cache/lookups.db"
	defaultPubChemBaseURL      = "https://pubchem.ncbi.nlm.nih.gov/rest/pug"
	defaultPubChemTimeout      = 10
	defaultPubChemInterval     = 200
	defaultSPARQLURL           = "https://query.wikidata.org/sparql"
	defaultEntityURL           = "https://www.wikidata.org/wiki/Special:EntityData"
	defaultWikidataUserAgent   = "alkaloid/dev (batch compound enrichment)"
	defaultWikidataTimeout     = 30
	defaultWikidataInterval    = 300
	defaultItemDelayMS         = 200
	defaultLogFormat           = "console"
	defaultLogLevel            = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			Workset:   defaultWorksetPath,
			Output:    defaultOutputPath,
			Export:    defaultExportPath,
			LogDir:    defaultLogDir,
			CacheFile: defaultCacheFile,
		},
		PubChem: PubChem{
			BaseURL:        defaultPubChemBaseURL,
			TimeoutSeconds: defaultPubChemTimeout,
			MinIntervalMS:  defaultPubChemInterval,
		},
		Wikidata: Wikidata{
			SPARQLURL:      defaultSPARQLURL,
			EntityURL:      defaultEntityURL,
			UserAgent:      defaultWikidataUserAgent,
			TimeoutSeconds: defaultWikidataTimeout,
			MinIntervalMS:  defaultWikidataInterval,
		},
		Batch: Batch{
			ItemDelayMS:  defaultItemDelayMS,
			CacheLookups: true,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
