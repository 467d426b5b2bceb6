package smilescache

import (
	"context"
	"log/slog"

	"alkaloid/internal/logging"
	"alkaloid/internal/services/pubchem"
)

const (
	nsInChIKey = "inchikey"
	nsName     = "name"
)

// WrapFetcher layers the cache over a PubChem fetcher. Hits skip the network
// entirely; cache faults degrade to a plain fetch rather than failing the
// lookup.
func WrapFetcher(inner pubchem.Fetcher, cache *Cache, logger *slog.Logger) pubchem.Fetcher {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &cachedFetcher{
		inner:  inner,
		cache:  cache,
		logger: logging.NewComponentLogger(logger, "smilescache"),
	}
}

type cachedFetcher struct {
	inner  pubchem.Fetcher
	cache  *Cache
	logger *slog.Logger
}

var _ pubchem.Fetcher = (*cachedFetcher)(nil)

func (f *cachedFetcher) SMILESByInChIKey(ctx context.Context, inchiKey string) (string, error) {
	return f.lookup(ctx, nsInChIKey, inchiKey, f.inner.SMILESByInChIKey)
}

func (f *cachedFetcher) SMILESByName(ctx context.Context, name string) (string, error) {
	return f.lookup(ctx, nsName, name, f.inner.SMILESByName)
}

func (f *cachedFetcher) lookup(ctx context.Context, namespace, identifier string, fetch func(context.Context, string) (string, error)) (string, error) {
	if smiles, ok, err := f.cache.Get(ctx, namespace, identifier); err != nil {
		f.logger.Warn("cache read failed",
			logging.String("namespace", namespace),
			logging.Error(err))
	} else if ok {
		return smiles, nil
	}

	smiles, err := fetch(ctx, identifier)
	if err != nil {
		return "", err
	}
	if err := f.cache.Put(ctx, namespace, identifier, smiles); err != nil {
		f.logger.Warn("cache write failed",
			logging.String("namespace", namespace),
			logging.Error(err))
	}
	return smiles, nil
}
