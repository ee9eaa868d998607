// Package project layers track semantics over the rpp document model: it
// extracts per-track views (volume, pan, mute/solo, effect chains,
// automation envelopes), compares tracks field by field, and copies subsets
// of settings between tracks by splicing subtrees.
//
// A Project owns one parsed document. TrackViews are non-owning views that
// keep a handle on their tree node; mutating through CopySettings is the
// only sanctioned way to change the document after load, and it keeps the
// cached view fields in step with the tree.
package project
