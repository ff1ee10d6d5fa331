// Package manifest handles the shared pak manifest (common_flowstate.json)
// that registers every packaged asset by type and path. New material entries
// are inserted by raw text patching so that the rest of the file — including
// hand-edited formatting repak tolerates but a JSON round-trip would not —
// stays byte-for-byte intact. A structured read-only view is provided for
// listing.
package manifest
