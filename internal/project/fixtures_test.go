package project_test

import (
	"fmt"
	"strings"
	"testing"

	"rppedit/internal/project"
)

const demoProject = `<REAPER_PROJECT 0.1 "7.22/linux-x86_64" 1719232023
  RIPPLE 0
  TEMPO 96 4 4
  MASTER_VOLUME 0.8 -0.1 -1 -1 1
  MASTERMUTESOLO 1
  <MASTERFXLIST
    SHOW 0
    <VST "VST: ReaComp (Cockos)" reacomp.dll 0 "" 1919247213
      776t3g==
    >
    <PARMENV 1:Thresh_dB 0 1 0.5
      EGUID {AAAA0000-0000-4000-8000-000000000001}
      ACT 1 -1
      VIS 1 1 1
      ARM 0
      PT 0 0.25 0 0 0
      PT 4 0.5 0 0 0
    >
  >
  <TRACK {11111111-74A2-4C42-8B37-3A1254C1F2A1}
    NAME "Lead Vox"
    VOLPAN 0.5 0.25 -1 -1 1
    MUTESOLO 1 1 0
    MAINSEND 1 0
    <FXCHAIN
      SHOW 0
      <VST "VST: ReaEQ (Cockos)" reaeq.dll 0 "" 1919247729
        AAAAPwAAAD8=
      >
      <JS loser/waveShapingDstr ""
      >
      <PARMENV 2:Wet_Amount 0 1 0.5
        EGUID {BBBB0000-0000-4000-8000-000000000002}
        ACT 1 -1
        VIS 1 1 1
        ARM 0
        PT 0 0.5 0 0 0
        PT 2 0.75 0 0 1
      >
    >
    <VOLENV2
      EGUID {CCCC0000-0000-4000-8000-000000000003}
      ACT 1 -1
      VIS 1 1 1
      ARM 0
      PT 0 0.5 0 0 0
      PT 2 0.75 0 0 1
    >
  >
  <TRACK {22222222-74A2-4C42-8B37-3A1254C1F2A2}
    NAME Drums
    VOLPAN 1 0 -1 -1 1
    MUTESOLO 0 0 0
    MAINSEND 1 0
  >
>
`

const bareTrackProject = `<REAPER_PROJECT 0.1 "7.22/linux-x86_64" 1719232023
  MASTER_VOLUME 1 0 -1 -1 1
  <TRACK
    MAINSEND 1 0
  >
>
`

func mustParse(t *testing.T, text string) *project.Project {
	t.Helper()
	p, err := project.Parse([]byte(text), nil)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	return p
}

func trackNamed(t *testing.T, p *project.Project, name string) *project.TrackView {
	t.Helper()
	track := p.FindTrackByName(name)
	if track == nil {
		t.Fatalf("track %q not found", name)
	}
	return track
}

func master(t *testing.T, p *project.Project) *project.TrackView {
	t.Helper()
	track := p.FindTrackByID(project.MasterTrackID)
	if track == nil {
		t.Fatal("master track not found")
	}
	return track
}

// manyTracksProject builds a project with n regular tracks.
func manyTracksProject(n int) string {
	var sb strings.Builder
	sb.WriteString("<REAPER_PROJECT 0.1 \"7.22/linux-x86_64\" 1719232023\n")
	sb.WriteString("  MASTER_VOLUME 1 0 -1 -1 1\n")
	for i := 0; i < n; i++ {
		fmt.Fprintf(&sb, "  <TRACK {00000000-0000-4000-8000-%012d}\n", i)
		fmt.Fprintf(&sb, "    NAME \"Track %d\"\n", i+1)
		sb.WriteString("    VOLPAN 1 0 -1 -1 1\n")
		sb.WriteString("    MUTESOLO 0 0 0\n")
		sb.WriteString("  >\n")
	}
	sb.WriteString(">\n")
	return sb.String()
}
