package project

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/gofrs/flock"

	"rppedit/internal/fileutil"
	"rppedit/internal/logging"
	"rppedit/internal/rpp"
)

// ErrNoPath is returned by Save when the project was parsed from memory and
// no destination path was given.
var ErrNoPath = errors.New("no save path available")

// Project ties one loaded document to its extracted track views. It is not
// safe for concurrent use; each loaded file is an independent, exclusively
// owned tree.
type Project struct {
	path     string
	root     *rpp.Node
	tracks   []*TrackView
	logger   *slog.Logger
	modified bool
}

// Load reads, parses, and extracts a project file. A nil logger disables
// diagnostics. On any failure nothing is returned: there is no partially
// loaded project.
func Load(path string, logger *slog.Logger) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read project %s: %w", path, err)
	}
	p, err := Parse(data, logger)
	if err != nil {
		return nil, fmt.Errorf("load project %s: %w", path, err)
	}
	p.path = path
	return p, nil
}

// Parse builds a project from in-memory bytes. Such a project has no save
// path until Save is called with one.
func Parse(data []byte, logger *slog.Logger) (*Project, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	root, err := rpp.Parse(data)
	if err != nil {
		return nil, err
	}
	return &Project{
		root:   root,
		tracks: extractTracks(root, logger),
		logger: logger,
	}, nil
}

// Path returns the file the project was loaded from, or "" for in-memory
// projects.
func (p *Project) Path() string { return p.path }

// Root exposes the document root for callers that need raw tree access.
func (p *Project) Root() *rpp.Node { return p.root }

// Modified reports whether CopySettings has changed the document since load.
func (p *Project) Modified() bool { return p.modified }

// Tracks returns the extracted track views, master first, then regular
// tracks in document order.
func (p *Project) Tracks() []*TrackView { return p.tracks }

// FindTrackByName returns the first track with exactly the given name.
func (p *Project) FindTrackByName(name string) *TrackView {
	for _, track := range p.tracks {
		if track.Name == name {
			return track
		}
	}
	return nil
}

// FindTrackByID returns the track with the given ID ("MASTER" selects the
// master track).
func (p *Project) FindTrackByID(id string) *TrackView {
	for _, track := range p.tracks {
		if track.TrackID == id {
			return track
		}
	}
	return nil
}

// Serialize renders the current document, including any splices, to project
// text.
func (p *Project) Serialize() []byte {
	return rpp.Serialize(p.root)
}

// Save writes the document to path, or to the original load path when path
// is empty. A sidecar lock guards against two writers racing on the same
// file, and the write itself goes through a temp-file rename.
func (p *Project) Save(path string) error {
	if path == "" {
		path = p.path
	}
	if path == "" {
		return ErrNoPath
	}

	lock := flock.New(path + ".lock")
	ok, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("lock %s: %w", path, err)
	}
	if !ok {
		return fmt.Errorf("save %s: another process holds the lock", path)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	if err := fileutil.WriteFileAtomic(path, p.Serialize(), 0o644); err != nil {
		return fmt.Errorf("save project %s: %w", path, err)
	}
	p.path = path
	p.modified = false
	p.logger.Info("project saved", "path", path, "tracks", len(p.tracks))
	return nil
}

// ProjectInfo summarizes a loaded project.
type ProjectInfo struct {
	Version          string  `json:"version"`
	ReaperVersion    string  `json:"reaper_version"`
	TrackCount       int     `json:"track_count"`
	TotalTrackCount  int     `json:"total_track_count"`
	HasMasterEffects bool    `json:"has_master_effects"`
	Tempo            float64 `json:"tempo"`
}

// Info reports project-level attributes. TrackCount excludes the master
// pseudo-track; TotalTrackCount includes it.
func (p *Project) Info() ProjectInfo {
	info := ProjectInfo{
		Version:       "Unknown",
		ReaperVersion: "Unknown",
		Tempo:         DefaultTempo,
	}
	if v := p.root.Attr(0); v != "" {
		info.Version = v
	}
	if v := p.root.Attr(1); v != "" {
		info.ReaperVersion = v
	}
	for _, track := range p.tracks {
		if track.IsMaster {
			info.TotalTrackCount++
			info.HasMasterEffects = len(track.Effects) > 0
			continue
		}
		info.TrackCount++
		info.TotalTrackCount++
	}
	if tempo := p.root.FindDescendant("TEMPO"); tempo != nil {
		info.Tempo = attrFloat(tempo, 0, DefaultTempo)
	}
	return info
}
