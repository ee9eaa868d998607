package project

import (
	"fmt"

	"rppedit/internal/rpp"
)

// MasterTrackID is the sentinel track ID of the master pseudo-track.
const MasterTrackID = "MASTER"

// Defaults applied when a track omits the corresponding statement.
const (
	DefaultTrackName = "Untitled Track"
	DefaultVolume    = 1.0
	DefaultPan       = 0.0
	DefaultTempo     = 120.0
)

// EffectKind distinguishes plugin formats in an effect chain.
type EffectKind string

const (
	EffectVST EffectKind = "VST"
	EffectJS  EffectKind = "JS"
)

// EffectInfo describes one effect in a chain. Position within the containing
// slice is the processing order.
type EffectInfo struct {
	Kind       EffectKind
	Name       string
	PluginFile string

	node *rpp.Node
}

// Node returns the tree node backing this effect.
func (e EffectInfo) Node() *rpp.Node { return e.node }

// EnvelopeKind names the automation target of an envelope.
type EnvelopeKind string

const (
	EnvelopeVolume    EnvelopeKind = "volume"
	EnvelopePan       EnvelopeKind = "pan"
	EnvelopeParameter EnvelopeKind = "parameter"
)

// EnvelopePoint is one automation point.
type EnvelopePoint struct {
	Time      float64
	Value     float64
	CurveType int
	Tension   float64
	Selected  bool
}

// Envelope is an automation curve attached to a track or an effect
// parameter.
type Envelope struct {
	Kind        EnvelopeKind
	DisplayName string
	GUID        string
	Active      bool
	Visible     bool
	Armed       bool
	Points      []EnvelopePoint

	// ParamDescriptor keeps the raw descriptor token of parameter
	// envelopes, e.g. "1:Wet_Amount".
	ParamDescriptor string

	node *rpp.Node
}

// Node returns the tree node backing this envelope.
func (e *Envelope) Node() *rpp.Node {
	if e == nil {
		return nil
	}
	return e.node
}

// TrackView is the extracted, non-owning view of one track. It is rebuilt
// wholesale on load; CopySettings patches the cached fields it touches so
// view and tree never diverge silently.
type TrackView struct {
	TrackID  string
	Name     string
	Volume   float64
	Pan      float64
	Mute     bool
	Solo     bool
	IsMaster bool

	Effects            []EffectInfo
	VolumeEnvelope     *Envelope
	PanEnvelope        *Envelope
	ParameterEnvelopes []Envelope

	// node is the owning TRACK block, or the project root for the master
	// pseudo-track.
	node *rpp.Node
}

// Node returns the tree node backing this track.
func (t *TrackView) Node() *rpp.Node {
	if t == nil {
		return nil
	}
	return t.node
}

// EffectNames returns the ordered effect names, the unit of effect-chain
// comparison.
func (t *TrackView) EffectNames() []string {
	names := make([]string, len(t.Effects))
	for i, fx := range t.Effects {
		names[i] = fx.Name
	}
	return names
}

func (t *TrackView) String() string {
	prefix := "Track"
	if t.IsMaster {
		prefix = "Master"
	}
	return fmt.Sprintf("%s %q (Vol: %.2f, Pan: %.2f)", prefix, t.Name, t.Volume, t.Pan)
}
