package models

// MarkerFilter represents the selection parameters of the marker and
// statistics endpoints.
type MarkerFilter struct {
	Element string   `form:"element"` // element symbol; defaults to the first catalog entry
	Types   []string `form:"types"`   // selected sample types; repeated or comma-separated
}
