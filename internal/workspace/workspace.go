// Package workspace ties a zone file, its persisted change log and the
// configuration together for one command run.
package workspace

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoPowerDNS-Admin/zonechange/internal/changelog"
	"github.com/GoPowerDNS-Admin/zonechange/internal/config"
	"github.com/GoPowerDNS-Admin/zonechange/internal/db"
	"github.com/GoPowerDNS-Admin/zonechange/internal/db/controller/changeset"
	"github.com/GoPowerDNS-Admin/zonechange/internal/engine"
	"github.com/GoPowerDNS-Admin/zonechange/internal/zone"
)

var (
	// ErrNoChangeStore is returned when a change log must be persisted but
	// neither a change log file nor a change set name is configured.
	ErrNoChangeStore = errors.New("no change log file or change set given")

	// ErrAmbiguousChangeStore is returned when both a change log file and a
	// change set name are given.
	ErrAmbiguousChangeStore = errors.New("change log file and change set are mutually exclusive")
)

// Options selects the zone and the change log store of a workspace.
type Options struct {
	ZonePath    string // flat zone, or JSON zone when the extension is .json
	ChangesPath string // change log file, .yaml/.yml or JSON
	ChangeSet   string // change set name in the configured database
}

// Workspace represents the zone and change log a command works on.
type Workspace struct {
	cfg    *config.Config
	opts   Options
	db     *gorm.DB
	engine *engine.Engine
}

// New loads the zone and the persisted change log described by opts.
func New(cfg *config.Config, opts Options) (*Workspace, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	if opts.ChangesPath != "" && opts.ChangeSet != "" {
		return nil, ErrAmbiguousChangeStore
	}

	w := &Workspace{cfg: cfg, opts: opts}

	e, err := w.loadZone()
	if err != nil {
		log.Warn().Err(err).Str("zone", opts.ZonePath).Msg("can't load zone")
		return nil, err
	}

	changes, err := w.loadChanges()
	if err != nil {
		return nil, err
	}

	w.engine = e.ImportChanges(changes)

	log.Debug().
		Str("zone", opts.ZonePath).
		Str("origin", e.Current().Origin).
		Int("changes", len(changes)).
		Msg("workspace loaded")

	return w, nil
}

// Engine returns the engine holding the zone and its staged changes.
func (w *Workspace) Engine() *engine.Engine {
	return w.engine
}

// DB returns the change set store, opening it on first use.
func (w *Workspace) DB() (*gorm.DB, error) {
	if w.db != nil {
		return w.db, nil
	}

	conn, err := db.Open(w.cfg)
	if err != nil {
		return nil, err
	}

	w.db = conn

	return w.db, nil
}

// Save persists the staged change log to the configured store.
func (w *Workspace) Save() error {
	changes := w.engine.DumpChanges()

	switch {
	case w.opts.ChangeSet != "":
		conn, err := w.DB()
		if err != nil {
			return err
		}

		cs, err := changeset.Save(conn, w.opts.ChangeSet, w.zoneName(), changes)
		if err != nil {
			return errors.Wrapf(err, "failed to save change set %s", w.opts.ChangeSet)
		}

		log.Info().Str("changeset", cs.Name).Str("uuid", cs.UUID).Int("changes", len(changes)).Msg("change set saved")
	case w.opts.ChangesPath != "":
		if err := changelog.WriteFile(w.opts.ChangesPath, changes); err != nil {
			return err
		}

		log.Info().Str("file", w.opts.ChangesPath).Int("changes", len(changes)).Msg("change log saved")
	default:
		return ErrNoChangeStore
	}

	return nil
}

// Apply replays the staged changes and renders the resulting zone. The zone
// is written to out when it is not empty. The persisted change log is
// cleared only after the zone was written to out, and never with keep.
func (w *Workspace) Apply(out string, keep bool) (string, error) {
	ops := len(w.engine.DumpOperations())
	w.engine.ApplyChanges(true)

	content, err := w.engine.GenerateZone(out)
	if err != nil {
		return "", err
	}

	log.Info().Int("ops", ops).Str("out", out).Msg("changes applied")

	if keep || out == "" || !w.hasStore() {
		return content, nil
	}

	w.engine.Reset()

	return content, w.Save()
}

func (w *Workspace) hasStore() bool {
	return w.opts.ChangeSet != "" || w.opts.ChangesPath != ""
}

func (w *Workspace) engineOptions() []engine.Option {
	return []engine.Option{engine.WithOrigin(w.cfg.Zone.Origin)}
}

func (w *Workspace) loadZone() (*engine.Engine, error) {
	path := w.opts.ZonePath

	if path == "" {
		s := zone.NewSnapshot(w.cfg.Zone.Origin)
		s.TTL = w.cfg.Zone.TTL

		return engine.New(s, w.engineOptions()...), nil
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		return engine.LoadJSONZoneFile(path, w.engineOptions()...)
	}

	return engine.LoadFlatZoneFile(path, w.engineOptions()...)
}

func (w *Workspace) loadChanges() ([]engine.Change, error) {
	switch {
	case w.opts.ChangeSet != "":
		conn, err := w.DB()
		if err != nil {
			return nil, err
		}

		cs, err := changeset.Get(conn, w.opts.ChangeSet)
		if errors.Is(err, changeset.ErrChangeSetNotFound) {
			return []engine.Change{}, nil
		}

		if err != nil {
			return nil, errors.Wrapf(err, "failed to load change set %s", w.opts.ChangeSet)
		}

		return changeset.Changes(cs)
	case w.opts.ChangesPath != "":
		return changelog.ReadFile(w.opts.ChangesPath)
	default:
		return []engine.Change{}, nil
	}
}

func (w *Workspace) zoneName() string {
	if w.opts.ZonePath != "" {
		return w.opts.ZonePath
	}

	return w.cfg.Zone.Origin
}
