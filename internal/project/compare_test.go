package project_test

import (
	"testing"

	"rppedit/internal/project"
)

func diffFields(diffs []project.Diff) []string {
	fields := make([]string, len(diffs))
	for i, d := range diffs {
		fields[i] = d.Field
	}
	return fields
}

func findDiff(t *testing.T, diffs []project.Diff, field string) project.Diff {
	t.Helper()
	for _, d := range diffs {
		if d.Field == field {
			return d
		}
	}
	t.Fatalf("diff %q not reported; got %v", field, diffFields(diffs))
	return project.Diff{}
}

func TestCompareReflexive(t *testing.T) {
	p := mustParse(t, demoProject)
	for _, track := range p.Tracks() {
		if diffs := project.CompareTracks(track, track); len(diffs) != 0 {
			t.Fatalf("compare(%s, itself) reported %v", track.Name, diffFields(diffs))
		}
	}
}

func TestCompareSymmetryWithSwap(t *testing.T) {
	p := mustParse(t, demoProject)
	lead := trackNamed(t, p, "Lead Vox")
	drums := trackNamed(t, p, "Drums")

	forward := project.CompareTracks(lead, drums)
	backward := project.CompareTracks(drums, lead)
	if len(forward) == 0 {
		t.Fatal("expected differences between distinct tracks")
	}
	if len(forward) != len(backward) {
		t.Fatalf("asymmetric diff count: %d vs %d", len(forward), len(backward))
	}
	for i := range forward {
		if forward[i].Field != backward[i].Field {
			t.Fatalf("field order differs: %q vs %q", forward[i].Field, backward[i].Field)
		}
		if !valuesEqual(forward[i].Left, backward[i].Right) || !valuesEqual(forward[i].Right, backward[i].Left) {
			t.Fatalf("left/right not swapped for %q: %+v vs %+v", forward[i].Field, forward[i], backward[i])
		}
	}
}

func valuesEqual(a, b any) bool {
	as, aok := a.([]string)
	bs, bok := b.([]string)
	if aok && bok {
		if len(as) != len(bs) {
			return false
		}
		for i := range as {
			if as[i] != bs[i] {
				return false
			}
		}
		return true
	}
	return a == b
}

func TestCompareToleranceBoundary(t *testing.T) {
	base := &project.TrackView{Name: "A", Volume: 1.0}
	within := &project.TrackView{Name: "A", Volume: 1.0009}
	beyond := &project.TrackView{Name: "A", Volume: 1.0011}

	if diffs := project.CompareTracks(base, within); len(diffs) != 0 {
		t.Fatalf("0.0009 should be within tolerance: %v", diffFields(diffs))
	}
	diffs := project.CompareTracks(base, beyond)
	d := findDiff(t, diffs, "volume")
	if d.Left != 1.0 || d.Right != 1.0011 {
		t.Fatalf("volume diff values: %+v", d)
	}
}

func TestCompareScalarFields(t *testing.T) {
	left := &project.TrackView{Name: "A", Volume: 1, Pan: -0.5, Mute: true}
	right := &project.TrackView{Name: "B", Volume: 1, Pan: 0.5, Solo: true}

	diffs := project.CompareTracks(left, right)
	findDiff(t, diffs, "name")
	findDiff(t, diffs, "pan")
	findDiff(t, diffs, "mute")
	findDiff(t, diffs, "solo")
	if len(diffs) != 4 {
		t.Fatalf("unexpected extra diffs: %v", diffFields(diffs))
	}
}

func TestCompareEffectsByNameSequence(t *testing.T) {
	p1 := mustParse(t, demoProject)
	p2 := mustParse(t, demoProject)
	lead := trackNamed(t, p1, "Lead Vox")
	drums := trackNamed(t, p2, "Drums")

	diffs := project.CompareTracks(lead, drums)
	d := findDiff(t, diffs, "effects")
	leftNames, ok := d.Left.([]string)
	if !ok || len(leftNames) != 2 {
		t.Fatalf("effects diff left side: %+v", d.Left)
	}
	rightNames, ok := d.Right.([]string)
	if !ok || len(rightNames) != 0 {
		t.Fatalf("effects diff right side: %+v", d.Right)
	}
}

func TestCompareEnvelopePresence(t *testing.T) {
	withEnv := &project.TrackView{Name: "A", Volume: 1, VolumeEnvelope: &project.Envelope{Kind: project.EnvelopeVolume, Active: true}}
	without := &project.TrackView{Name: "A", Volume: 1}

	diffs := project.CompareTracks(withEnv, without)
	d := findDiff(t, diffs, "volume_envelope")
	if d.Left != "present" || d.Right != "absent" {
		t.Fatalf("presence diff: %+v", d)
	}
	if len(diffs) != 1 {
		t.Fatalf("presence difference should be a single entry: %v", diffFields(diffs))
	}
}

func TestCompareEnvelopeDetails(t *testing.T) {
	left := &project.TrackView{Name: "A", Volume: 1, VolumeEnvelope: &project.Envelope{
		Kind:   project.EnvelopeVolume,
		Active: true,
		Points: []project.EnvelopePoint{{Time: 0, Value: 0.5}, {Time: 1, Value: 0.9}},
	}}
	right := &project.TrackView{Name: "A", Volume: 1, VolumeEnvelope: &project.Envelope{
		Kind:   project.EnvelopeVolume,
		Active: false,
		Points: []project.EnvelopePoint{{Time: 0, Value: 0.7}},
	}}

	diffs := project.CompareTracks(left, right)
	findDiff(t, diffs, "volume_envelope_active")
	findDiff(t, diffs, "volume_envelope_points")
	findDiff(t, diffs, "volume_envelope_first_value")
	findDiff(t, diffs, "volume_envelope_last_value")
	if len(diffs) != 4 {
		t.Fatalf("unexpected diffs: %v", diffFields(diffs))
	}
}

func TestCompareParameterEnvelopesByActiveNames(t *testing.T) {
	left := &project.TrackView{Name: "A", Volume: 1, ParameterEnvelopes: []project.Envelope{
		{Kind: project.EnvelopeParameter, DisplayName: "Wet", Active: true},
		{Kind: project.EnvelopeParameter, DisplayName: "Dry", Active: false},
	}}
	right := &project.TrackView{Name: "A", Volume: 1, ParameterEnvelopes: []project.Envelope{
		{Kind: project.EnvelopeParameter, DisplayName: "Dry", Active: false},
	}}

	diffs := project.CompareTracks(left, right)
	d := findDiff(t, diffs, "parameter_envelopes")
	leftNames := d.Left.([]string)
	if len(leftNames) != 1 || leftNames[0] != "Wet" {
		t.Fatalf("active names left: %v", leftNames)
	}
	if rightNames := d.Right.([]string); len(rightNames) != 0 {
		t.Fatalf("active names right: %v", rightNames)
	}

	// Inactive-only lists on both sides compare equal.
	right.ParameterEnvelopes = append(right.ParameterEnvelopes, project.Envelope{
		Kind: project.EnvelopeParameter, DisplayName: "Wet", Active: true,
	})
	if diffs := project.CompareTracks(left, right); len(diffs) != 0 {
		t.Fatalf("matching active sets should not differ: %v", diffFields(diffs))
	}
}
