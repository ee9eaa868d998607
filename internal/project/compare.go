package project

import (
	"math"
	"slices"
)

// FloatTolerance is the absolute difference below which volume and pan
// values (and envelope point values) are considered equal.
const FloatTolerance = 0.001

// Diff is one field that differs between two compared tracks.
type Diff struct {
	Field string
	Left  any
	Right any
}

// CompareTracks reports every field that differs between two track views, in
// a stable order. It is pure: neither track is touched.
//
// Strings and bools compare by equality, volume and pan with FloatTolerance.
// Effect chains compare as the ordered list of effect names only. Envelopes
// compare presence first; when both sides have one, the active flag, point
// count, and first/last point values each contribute their own entry.
// Parameter envelope lists compare as the ordered names of active envelopes.
func CompareTracks(left, right *TrackView) []Diff {
	var diffs []Diff
	add := func(field string, l, r any) {
		diffs = append(diffs, Diff{Field: field, Left: l, Right: r})
	}

	if left.Name != right.Name {
		add("name", left.Name, right.Name)
	}
	if !floatsClose(left.Volume, right.Volume) {
		add("volume", left.Volume, right.Volume)
	}
	if !floatsClose(left.Pan, right.Pan) {
		add("pan", left.Pan, right.Pan)
	}
	if left.Mute != right.Mute {
		add("mute", left.Mute, right.Mute)
	}
	if left.Solo != right.Solo {
		add("solo", left.Solo, right.Solo)
	}

	leftFX := left.EffectNames()
	rightFX := right.EffectNames()
	if !slices.Equal(leftFX, rightFX) {
		add("effects", leftFX, rightFX)
	}

	diffs = append(diffs, compareEnvelope("volume_envelope", left.VolumeEnvelope, right.VolumeEnvelope)...)
	diffs = append(diffs, compareEnvelope("pan_envelope", left.PanEnvelope, right.PanEnvelope)...)

	leftParams := activeEnvelopeNames(left.ParameterEnvelopes)
	rightParams := activeEnvelopeNames(right.ParameterEnvelopes)
	if !slices.Equal(leftParams, rightParams) {
		add("parameter_envelopes", leftParams, rightParams)
	}

	return diffs
}

func compareEnvelope(field string, left, right *Envelope) []Diff {
	switch {
	case left == nil && right == nil:
		return nil
	case left == nil || right == nil:
		return []Diff{{Field: field, Left: envelopePresence(left), Right: envelopePresence(right)}}
	}

	var diffs []Diff
	if left.Active != right.Active {
		diffs = append(diffs, Diff{Field: field + "_active", Left: left.Active, Right: right.Active})
	}
	if len(left.Points) != len(right.Points) {
		diffs = append(diffs, Diff{Field: field + "_points", Left: len(left.Points), Right: len(right.Points)})
	}
	if len(left.Points) > 0 && len(right.Points) > 0 {
		if !floatsClose(left.Points[0].Value, right.Points[0].Value) {
			diffs = append(diffs, Diff{Field: field + "_first_value", Left: left.Points[0].Value, Right: right.Points[0].Value})
		}
		last, rlast := left.Points[len(left.Points)-1], right.Points[len(right.Points)-1]
		if !floatsClose(last.Value, rlast.Value) {
			diffs = append(diffs, Diff{Field: field + "_last_value", Left: last.Value, Right: rlast.Value})
		}
	}
	return diffs
}

func envelopePresence(env *Envelope) string {
	if env == nil {
		return "absent"
	}
	return "present"
}

func activeEnvelopeNames(envelopes []Envelope) []string {
	var names []string
	for _, env := range envelopes {
		if env.Active {
			names = append(names, env.DisplayName)
		}
	}
	return names
}

func floatsClose(a, b float64) bool {
	return math.Abs(a-b) <= FloatTolerance
}
