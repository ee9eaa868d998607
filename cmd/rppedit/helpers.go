package main

import (
	"fmt"
	"strconv"
	"strings"

	"rppedit/internal/project"
	"rppedit/internal/textutil"
)

// trackSelector holds the shared --track/--id/--master selection flags.
type trackSelector struct {
	name   string
	id     string
	master bool
}

func (s *trackSelector) resolve(p *project.Project, label string) (*project.TrackView, error) {
	switch {
	case s.master:
		if track := p.FindTrackByID(project.MasterTrackID); track != nil {
			return track, nil
		}
		return nil, fmt.Errorf("%s: no master track found", label)
	case s.id != "":
		if track := p.FindTrackByID(s.id); track != nil {
			return track, nil
		}
		return nil, fmt.Errorf("%s: no track with id %q", label, s.id)
	case s.name != "":
		return findTrackByName(p, s.name, label)
	default:
		return nil, fmt.Errorf("%s: select a track with --track, --id, or --master", label)
	}
}

// findTrackByName prefers an exact match, then retries with normalized,
// case-folded names so shell-quoted arguments still land.
func findTrackByName(p *project.Project, name, label string) (*project.TrackView, error) {
	if track := p.FindTrackByName(name); track != nil {
		return track, nil
	}
	want := textutil.NormalizeName(name)
	for _, track := range p.Tracks() {
		if textutil.FoldEqual(textutil.NormalizeName(track.Name), want) {
			return track, nil
		}
	}
	return nil, fmt.Errorf("%s: no track named %q", label, name)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatBool(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func formatValue(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case bool:
		return formatBool(value)
	case float64:
		return formatFloat(value)
	case int:
		return strconv.Itoa(value)
	case []string:
		if len(value) == 0 {
			return "(none)"
		}
		return strings.Join(value, " -> ")
	default:
		return fmt.Sprintf("%v", value)
	}
}
