package project

import (
	"log/slog"
	"strconv"
	"strings"

	"rppedit/internal/rpp"
)

// extractTracks distills every track in the document into TrackViews, master
// first, then regular tracks in document order. A track whose fields blow up
// is dropped with a diagnostic instead of failing the whole load.
func extractTracks(root *rpp.Node, logger *slog.Logger) []*TrackView {
	var tracks []*TrackView

	if master := extractMaster(root, logger); master != nil {
		tracks = append(tracks, master)
	}
	for _, node := range root.FindAllDescendants("TRACK") {
		if view := extractTrack(node, logger); view != nil {
			tracks = append(tracks, view)
		}
	}
	return tracks
}

func extractMaster(root *rpp.Node, logger *slog.Logger) (view *TrackView) {
	defer func() {
		if r := recover(); r != nil {
			logger.Warn("skipping master track", "error", r)
			view = nil
		}
	}()

	// The master track has no TRACK block; its settings live as leaves at
	// the project root.
	masterVol := root.FindChild("MASTER_VOLUME")
	view = &TrackView{
		TrackID:  MasterTrackID,
		Name:     "Master",
		Volume:   attrFloat(masterVol, 0, DefaultVolume),
		Pan:      attrFloat(masterVol, 1, DefaultPan),
		Mute:     attrBool(root.FindChild("MASTERMUTESOLO"), 0, false),
		IsMaster: true,
		node:     root,
	}

	fxList := root.FindChild("MASTERFXLIST")
	view.Effects = extractEffects(fxList)
	view.VolumeEnvelope = extractEnvelope(root.FindChild("VOLENV2"), EnvelopeVolume, logger)
	view.PanEnvelope = extractEnvelope(root.FindChild("PANENV2"), EnvelopePan, logger)
	view.ParameterEnvelopes = extractParameterEnvelopes(fxList, logger)
	return view
}

func extractTrack(node *rpp.Node, logger *slog.Logger) (view *TrackView) {
	defer func() {
		if r := recover(); r != nil {
			logger.Warn("skipping malformed track", "track_id", node.Attr(0), "error", r)
			view = nil
		}
	}()

	trackID := node.Attr(0)
	if trackID == "" {
		trackID = "Unknown"
	}

	name := DefaultTrackName
	if nameNode := node.FindChild("NAME"); nameNode != nil {
		name = nameNode.Attr(0)
	}

	volpan := node.FindChild("VOLPAN")
	view = &TrackView{
		TrackID: trackID,
		Name:    name,
		Volume:  attrFloat(volpan, 0, DefaultVolume),
		Pan:     attrFloat(volpan, 1, DefaultPan),
		Mute:    attrBool(node.FindChild("MUTESOLO"), 0, false),
		Solo:    attrBool(node.FindChild("MUTESOLO"), 1, false),
		node:    node,
	}

	chain := node.FindChild("FXCHAIN")
	view.Effects = extractEffects(chain)
	view.VolumeEnvelope = extractEnvelope(node.FindChild("VOLENV2"), EnvelopeVolume, logger)
	view.PanEnvelope = extractEnvelope(node.FindChild("PANENV2"), EnvelopePan, logger)
	view.ParameterEnvelopes = extractParameterEnvelopes(chain, logger)
	return view
}

// extractEffects walks the direct children of an FXCHAIN or MASTERFXLIST
// block in order. Only VST and JS entries become effects; anything else in
// the chain (SHOW, LASTSEL, FXID lines) is skipped.
func extractEffects(chain *rpp.Node) []EffectInfo {
	if chain == nil {
		return nil
	}
	var effects []EffectInfo
	for _, child := range chain.Children {
		switch child.Tag {
		case "VST":
			if child.AttrCount() < 2 {
				continue
			}
			effects = append(effects, EffectInfo{
				Kind:       EffectVST,
				Name:       child.Attr(1),
				PluginFile: child.Attr(2),
				node:       child,
			})
		case "JS":
			name := ""
			switch {
			case child.AttrCount() >= 2 && child.Attr(1) != "":
				name = child.Attr(1)
			case child.AttrCount() >= 1:
				// Blank display name: fall back to the script path.
				name = child.Attr(0)
			default:
				continue
			}
			effects = append(effects, EffectInfo{
				Kind: EffectJS,
				Name: name,
				node: child,
			})
		}
	}
	return effects
}

func extractParameterEnvelopes(chain *rpp.Node, logger *slog.Logger) []Envelope {
	if chain == nil {
		return nil
	}
	var envelopes []Envelope
	for _, node := range chain.FindAllDescendants("PARMENV") {
		if env := extractEnvelope(node, EnvelopeParameter, logger); env != nil {
			envelopes = append(envelopes, *env)
		}
	}
	return envelopes
}

func extractEnvelope(node *rpp.Node, kind EnvelopeKind, logger *slog.Logger) *Envelope {
	if node == nil {
		return nil
	}
	env := &Envelope{
		Kind:    kind,
		GUID:    strings.Trim(node.FindChild("EGUID").Attr(0), "{}"),
		Active:  attrBool(node.FindChild("ACT"), 0, false),
		Visible: attrBool(node.FindChild("VIS"), 0, false),
		Armed:   attrBool(node.FindChild("ARM"), 0, false),
		node:    node,
	}

	switch kind {
	case EnvelopeVolume:
		env.DisplayName = "Volume"
	case EnvelopePan:
		env.DisplayName = "Pan"
	case EnvelopeParameter:
		env.ParamDescriptor = node.Attr(0)
		env.DisplayName = envelopeDisplayName(node)
	}

	for _, pt := range node.FindAllChildren("PT") {
		timeVal, err := strconv.ParseFloat(pt.Attr(0), 64)
		if err != nil {
			logger.Debug("skipping malformed envelope point", "envelope", env.DisplayName, "value", pt.Attr(0))
			continue
		}
		value, err := strconv.ParseFloat(pt.Attr(1), 64)
		if err != nil {
			logger.Debug("skipping malformed envelope point", "envelope", env.DisplayName, "value", pt.Attr(1))
			continue
		}
		env.Points = append(env.Points, EnvelopePoint{
			Time:      timeVal,
			Value:     value,
			CurveType: attrInt(pt, 2, 0),
			Tension:   attrFloat(pt, 3, 0),
			Selected:  attrBool(pt, 4, false),
		})
	}
	return env
}

// envelopeDisplayName derives a readable name for a parameter envelope from
// its descriptor, e.g. "2:Wet_Amount" becomes "Wet Amount". A quoted
// attribute, when present, wins verbatim.
func envelopeDisplayName(node *rpp.Node) string {
	for i := 0; i < node.AttrCount(); i++ {
		if node.AttrQuoted(i) && node.Attr(i) != "" {
			return node.Attr(i)
		}
	}
	descriptor := node.Attr(0)
	if idx := strings.Index(descriptor, ":"); idx >= 0 {
		descriptor = descriptor[idx+1:]
	}
	return strings.ReplaceAll(descriptor, "_", " ")
}

// attrFloat, attrInt, and attrBool centralize the parse-with-default rule:
// absent node, missing attribute, or an unparseable value all yield the
// default instead of failing extraction.

func attrFloat(n *rpp.Node, idx int, def float64) float64 {
	s := n.Attr(idx)
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return v
}

func attrInt(n *rpp.Node, idx int, def int) int {
	s := n.Attr(idx)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

func attrBool(n *rpp.Node, idx int, def bool) bool {
	s := n.Attr(idx)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v != 0
}
