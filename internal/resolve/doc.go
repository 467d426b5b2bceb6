// Package resolve implements the fallback resolution chain that picks the
// best available canonical identifier for a work item.
//
// Sources are consulted in a fixed order. A FULL-tier answer ends the chain
// immediately; DEGRADED answers are remembered while later sources get a
// chance to do better; source failures contribute nothing. Resolve never
// returns an error: the worst outcome is an UNRESOLVED result with an empty
// value.
package resolve
