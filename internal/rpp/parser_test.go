package rpp_test

import (
	"errors"
	"strings"
	"testing"

	"rppedit/internal/rpp"
)

const sampleProject = `<REAPER_PROJECT 0.1 "7.22/linux-x86_64" 1719232023
  RIPPLE 0
  GROUPOVERRIDE 0 0 0
  TEMPO 120 4 4
  MASTER_VOLUME 0.8 -0.1 -1 -1 1
  MASTERMUTESOLO 0
  <MASTERFXLIST
    SHOW 0
    <VST "VST: ReaComp (Cockos)" reacomp.dll 0 "" 1919247213<56535472656163> ""
      aG9sYSBtdW5kbyBob2xhIG11bmRvIQ==
      776t3g==
    >
  >
  <TRACK {B55AFE1D-74A2-4C42-8B37-3A1254C1F2A1}
    NAME "Lead Vox"
    VOLPAN 1 0 -1 -1 1
    MUTESOLO 0 0 0
    MAINSEND 1 0
    <FXCHAIN
      SHOW 0
      <VST "VST: ReaEQ (Cockos)" reaeq.dll 0 "" 1919247729<56535472656165> ""
        AAAAPwAAAD8AAAA/
      >
      <JS loser/waveShapingDstr ""
      >
    >
    <VOLENV2
      EGUID {1A2B3C4D-9E8F-4A5B-8C7D-000000000001}
      ACT 1 -1
      VIS 1 1 1
      ARM 0
      PT 0 0.5 0 0 0
      PT 2 0.75 0 0 1
    >
  >
>
`

func TestParseBuildsTree(t *testing.T) {
	root, err := rpp.ParseString(sampleProject)
	if err != nil {
		t.Fatalf("ParseString returned error: %v", err)
	}
	if root.Tag != "REAPER_PROJECT" {
		t.Fatalf("root tag: got %q want REAPER_PROJECT", root.Tag)
	}
	if got := root.Attr(0); got != "0.1" {
		t.Fatalf("root version attr: got %q want 0.1", got)
	}
	if got := root.Attr(1); got != "7.22/linux-x86_64" {
		t.Fatalf("root reaper version attr: got %q", got)
	}

	track := root.FindChild("TRACK")
	if track == nil {
		t.Fatal("expected TRACK child")
	}
	if !track.Block {
		t.Fatal("TRACK should be a block")
	}
	if got := track.Attr(0); got != "{B55AFE1D-74A2-4C42-8B37-3A1254C1F2A1}" {
		t.Fatalf("track guid: got %q", got)
	}

	name := track.FindChild("NAME")
	if name == nil || name.Block {
		t.Fatalf("expected NAME leaf, got %+v", name)
	}
	if got := name.Attr(0); got != "Lead Vox" {
		t.Fatalf("name attr: got %q want %q", got, "Lead Vox")
	}
	if !name.AttrQuoted(0) {
		t.Fatal("NAME value should be marked quoted")
	}

	volpan := track.FindChild("VOLPAN")
	if got := volpan.AttrCount(); got != 5 {
		t.Fatalf("VOLPAN attr count: got %d want 5", got)
	}
}

func TestParseInlineOpaqueToken(t *testing.T) {
	root, err := rpp.ParseString(sampleProject)
	if err != nil {
		t.Fatalf("ParseString returned error: %v", err)
	}
	vst := root.FindChild("MASTERFXLIST").FindChild("VST")
	if vst == nil {
		t.Fatal("expected VST block in MASTERFXLIST")
	}
	// The inline <...> run sticks to its preceding token instead of opening
	// a nested block.
	if got := vst.Attr(4); got != "1919247213<56535472656163>" {
		t.Fatalf("opaque token: got %q", got)
	}
	if len(vst.FindAllChildren("56535472656163")) != 0 {
		t.Fatal("inline run must not become a child block")
	}
}

func TestParseBlobLinesKeptInOrder(t *testing.T) {
	root, err := rpp.ParseString(sampleProject)
	if err != nil {
		t.Fatalf("ParseString returned error: %v", err)
	}
	vst := root.FindChild("MASTERFXLIST").FindChild("VST")
	if got := len(vst.Children); got != 2 {
		t.Fatalf("blob line count: got %d want 2", got)
	}
	if got := vst.Children[0].Tag; got != "aG9sYSBtdW5kbyBob2xhIG11bmRvIQ==" {
		t.Fatalf("first blob line: got %q", got)
	}
	if got := vst.Children[1].Tag; got != "776t3g==" {
		t.Fatalf("second blob line: got %q", got)
	}
}

func TestParseNormalizesLineEndings(t *testing.T) {
	crlf := strings.ReplaceAll(sampleProject, "\n", "\r\n")
	fromCRLF, err := rpp.ParseString(crlf)
	if err != nil {
		t.Fatalf("ParseString(crlf) returned error: %v", err)
	}
	fromLF, err := rpp.ParseString(sampleProject)
	if err != nil {
		t.Fatalf("ParseString(lf) returned error: %v", err)
	}
	if !rpp.Equal(fromCRLF, fromLF) {
		t.Fatal("CRLF input should parse to the same tree as LF input")
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"blank only", "\n\n  \n"},
		{"unclosed block", "<REAPER_PROJECT 0.1\n  RIPPLE 0\n"},
		{"stray close", "<REAPER_PROJECT 0.1\n>\n>\n"},
		{"attribute outside block", "NAME hello\n"},
		{"content after root", "<REAPER_PROJECT 0.1\n>\n<REAPER_PROJECT 0.1\n>\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := rpp.ParseString(tc.input)
			if err == nil {
				t.Fatal("expected ParseError, got nil")
			}
			var parseErr *rpp.ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("expected *ParseError, got %T: %v", err, err)
			}
		})
	}
}

func TestParseQuotedTokens(t *testing.T) {
	input := "<REAPER_PROJECT 0.1\n" +
		"  NAME 'He said \"hi\"'\n" +
		"  LABEL `mixed \"double\" and 'single'`\n" +
		"  EMPTY \"\"\n" +
		">\n"
	root, err := rpp.ParseString(input)
	if err != nil {
		t.Fatalf("ParseString returned error: %v", err)
	}
	if got := root.FindChild("NAME").Attr(0); got != `He said "hi"` {
		t.Fatalf("single-quoted token: got %q", got)
	}
	if got := root.FindChild("LABEL").Attr(0); got != `mixed "double" and 'single'` {
		t.Fatalf("backtick token: got %q", got)
	}
	empty := root.FindChild("EMPTY")
	if empty.AttrCount() != 1 || empty.Attr(0) != "" {
		t.Fatalf("empty quoted token: got %d attrs, first %q", empty.AttrCount(), empty.Attr(0))
	}
}
