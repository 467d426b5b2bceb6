// Package wikidata queries the LOTUS natural-products data hosted on
// Wikidata.
//
// Two endpoints are involved: the SPARQL service for compound occurrence
// statements and their provenance references, and the EntityData JSON API for
// turning a reference QID into DOI, title, and publication date.
package wikidata
