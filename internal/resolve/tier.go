package resolve

// Tier classifies how complete a resolved identifier is. Higher values
// outrank lower ones.
type Tier int

const (
	// TierUnresolved means no source produced a usable value.
	TierUnresolved Tier = iota
	// TierDegraded means a value was found but without the detail that
	// would make it canonical (a flat SMILES, for this domain).
	TierDegraded
	// TierFull means the value carries full structural detail and the chain
	// can stop looking.
	TierFull
)

func (t Tier) String() string {
	switch t {
	case TierFull:
		return "full"
	case TierDegraded:
		return "degraded"
	default:
		return "unresolved"
	}
}

// Result is the outcome of resolving one work item. Value is non-empty
// exactly when Tier is not TierUnresolved. Source names the lookup source
// that produced the value.
type Result struct {
	Value  string
	Tier   Tier
	Source string
}
