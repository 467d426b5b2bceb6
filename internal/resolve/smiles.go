package resolve

import (
	"context"
	"strings"

	"alkaloid/internal/services/pubchem"
	"alkaloid/internal/workset"
)

// HasStereochemistry reports whether a SMILES string carries stereochemical
// markup: chiral centers (@) or double-bond geometry (/ and \).
func HasStereochemistry(smiles string) bool {
	return strings.ContainsAny(smiles, `@/\`)
}

// ClassifySMILES grades a SMILES value: stereo-aware is FULL, flat is
// DEGRADED, empty is UNRESOLVED.
func ClassifySMILES(smiles string) Tier {
	smiles = strings.TrimSpace(smiles)
	switch {
	case smiles == "":
		return TierUnresolved
	case HasStereochemistry(smiles):
		return TierFull
	default:
		return TierDegraded
	}
}

// PubChemSources returns the ordered chain for SMILES resolution: the
// high-specificity InChIKey lookup first, the name search second. Both talk
// to the same logical source; the name attempt only improves things when the
// InChIKey attempt came back flat or empty.
func PubChemSources(fetcher pubchem.Fetcher) []Source {
	return []Source{
		smilesSource{
			name:       "pubchem-inchikey",
			applicable: func(item workset.Item) bool { return item.InChIKey != "" },
			lookup: func(ctx context.Context, item workset.Item) (string, error) {
				return fetcher.SMILESByInChIKey(ctx, item.InChIKey)
			},
		},
		smilesSource{
			name:       "pubchem-name",
			applicable: func(item workset.Item) bool { return item.PrimarySynonym() != "" },
			lookup: func(ctx context.Context, item workset.Item) (string, error) {
				return fetcher.SMILESByName(ctx, item.PrimarySynonym())
			},
		},
	}
}

type smilesSource struct {
	name       string
	applicable func(workset.Item) bool
	lookup     func(context.Context, workset.Item) (string, error)
}

func (s smilesSource) Name() string { return s.name }

func (s smilesSource) Applicable(item workset.Item) bool { return s.applicable(item) }

func (s smilesSource) Lookup(ctx context.Context, item workset.Item) (string, error) {
	return s.lookup(ctx, item)
}

func (s smilesSource) Classify(value string) Tier { return ClassifySMILES(value) }
