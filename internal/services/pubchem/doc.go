// Package pubchem wraps the PubChem PUG REST compound property API.
//
// The Client fetches isomeric SMILES either by InChIKey or by compound name.
// Not-found and transient failures surface as distinct sentinel errors so the
// fallback resolver can treat both as "no contribution" while logs stay
// truthful about which one happened.
package pubchem
