package aggregate

// Entry is one compound/reference row, either raw from a lookup source or
// deduplicated.
type Entry struct {
	Label     string
	SMILES    string
	InChIKey  string
	Title     string
	DOI       string
	Published string
}

type compositeKey struct {
	label string
	title string
	doi   string
}

// Deduplicate returns the unique entries in first-seen order. Inputs are not
// modified; two entries are the same when their (label, title, DOI) keys
// match exactly.
func Deduplicate(entries []Entry) []Entry {
	if len(entries) == 0 {
		return nil
	}

	seen := make(map[compositeKey]struct{}, len(entries))
	unique := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		key := compositeKey{label: entry.Label, title: entry.Title, doi: entry.DOI}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, entry)
	}
	return unique
}

// CountLabels returns how many distinct labels appear in the entries.
func CountLabels(entries []Entry) int {
	labels := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		labels[entry.Label] = struct{}{}
	}
	return len(labels)
}
