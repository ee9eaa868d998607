package project

import (
	"strconv"

	"rppedit/internal/rpp"
)

// CopyOptions selects which settings CopySettings transfers. The zero value
// copies nothing.
type CopyOptions struct {
	Volume    bool
	Pan       bool
	Effects   bool
	Envelopes bool

	// FreshGUIDs mints new FXID/EGUID identities on cloned subtrees so the
	// copies are not byte-identical twins of the source objects. Off by
	// default: the plain clone matches what REAPER round-trips.
	FreshGUIDs bool
}

// envelopeTags are the direct-child blocks the envelope splice replaces.
var envelopeTags = []string{"VOLENV2", "PANENV2", "PARMENV"}

// CopySettings transfers the selected settings from source onto target,
// mutating target's tree node and cached fields in place. The source is
// never touched. Each sub-setting is best-effort: when the structural block
// it needs is missing on either side, that sub-setting is skipped without
// corrupting the rest.
func (p *Project) CopySettings(source, target *TrackView, opts CopyOptions) {
	if source == nil || target == nil || source == target {
		return
	}
	if opts.Volume || opts.Pan {
		copyVolumePan(source, target, opts)
	}
	if opts.Effects {
		copyEffects(source, target, opts)
	}
	if opts.Envelopes {
		p.copyEnvelopes(source, target, opts)
	}
	p.modified = true
}

func copyVolumePan(source, target *TrackView, opts CopyOptions) {
	leaf := volumeLeaf(target)
	if leaf == nil {
		return
	}
	if opts.Volume {
		leaf.SetAttr(0, formatFloat(source.Volume))
		target.Volume = source.Volume
	}
	if opts.Pan {
		leaf.SetAttr(1, formatFloat(source.Pan))
		target.Pan = source.Pan
	}
}

// volumeLeaf resolves the leaf holding volume/pan for a track: VOLPAN on
// regular tracks, MASTER_VOLUME at the project root for the master.
func volumeLeaf(track *TrackView) *rpp.Node {
	if track.IsMaster {
		return track.node.FindChild("MASTER_VOLUME")
	}
	return track.node.FindChild("VOLPAN")
}

// copyEffects swaps the target's whole effect-chain block for a deep clone
// of the source's. Chains are spliced wholesale rather than merged entry by
// entry: their internal ordering and cross-references only survive a
// subtree swap. Master and regular tracks keep identical inner structure
// under different tags, so crossing kinds only renames the cloned block.
func copyEffects(source, target *TrackView, opts CopyOptions) {
	srcChain := chainBlock(source)
	if srcChain == nil {
		return
	}

	clone := srcChain.Clone()
	targetTag := chainTag(target)
	if clone.Tag != targetTag {
		clone.Retag(targetTag)
	}
	if opts.FreshGUIDs {
		mintGUIDs(clone)
	}

	if existing := target.node.FindChild(targetTag); existing != nil {
		target.node.ReplaceChild(existing, clone)
	} else {
		target.node.InsertChildAfter("MAINSEND", clone)
	}

	target.Effects = extractEffects(clone)
}

func chainBlock(track *TrackView) *rpp.Node {
	return track.node.FindChild(chainTag(track))
}

func chainTag(track *TrackView) string {
	if track.IsMaster {
		return "MASTERFXLIST"
	}
	return "FXCHAIN"
}

// copyEnvelopes drops every envelope block directly under the target and
// clones the source's over, in source order.
func (p *Project) copyEnvelopes(source, target *TrackView, opts CopyOptions) {
	var clones []*rpp.Node
	for _, child := range source.node.Children {
		switch child.Tag {
		case "VOLENV2", "PANENV2", "PARMENV":
			clones = append(clones, child.Clone())
		}
	}
	if len(clones) == 0 && target.node.FindChild("VOLENV2") == nil &&
		target.node.FindChild("PANENV2") == nil && target.node.FindChild("PARMENV") == nil {
		return
	}

	target.node.RemoveChildren(envelopeTags...)
	target.VolumeEnvelope = nil
	target.PanEnvelope = nil
	target.ParameterEnvelopes = nil

	logger := p.logger
	for _, clone := range clones {
		if opts.FreshGUIDs {
			mintGUIDs(clone)
		}
		target.node.AppendChild(clone)
		switch clone.Tag {
		case "VOLENV2":
			target.VolumeEnvelope = extractEnvelope(clone, EnvelopeVolume, logger)
		case "PANENV2":
			target.PanEnvelope = extractEnvelope(clone, EnvelopePan, logger)
		case "PARMENV":
			if env := extractEnvelope(clone, EnvelopeParameter, logger); env != nil {
				target.ParameterEnvelopes = append(target.ParameterEnvelopes, *env)
			}
		}
	}
}

// mintGUIDs rewrites FXID and EGUID identities throughout a cloned subtree.
func mintGUIDs(node *rpp.Node) {
	for _, leaf := range node.FindAllDescendants("FXID") {
		leaf.SetAttr(0, rpp.NewGUID())
	}
	for _, leaf := range node.FindAllDescendants("EGUID") {
		leaf.SetAttr(0, rpp.NewGUID())
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
