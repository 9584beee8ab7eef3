// Package changelog persists staged change logs as JSON or YAML documents
// so a log built by one process can be applied by another.
package changelog

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/GoPowerDNS-Admin/zonechange/internal/engine"
)

// Format is a change log serialization format.
type Format string

const (
	// FormatJSON encodes the log as an indented JSON array.
	FormatJSON Format = "json"

	// FormatYAML encodes the log as a YAML sequence.
	FormatYAML Format = "yaml"

	fileMode = 0o600
)

// ErrUnsupportedFormat is returned for formats other than json and yaml.
var ErrUnsupportedFormat = errors.New("unsupported change log format")

// FormatOf picks the format from the file extension; anything but .yaml and .yml is JSON.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Encode writes changes to w.
func Encode(w io.Writer, changes []engine.Change, format Format) error {
	if changes == nil {
		changes = []engine.Change{}
	}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return errors.Wrap(enc.Encode(changes), "failed to encode json change log")
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2) //nolint:mnd

		if err := enc.Encode(changes); err != nil {
			return errors.Wrap(err, "failed to encode yaml change log")
		}

		return errors.Wrap(enc.Close(), "failed to encode yaml change log")
	default:
		return errors.Wrapf(ErrUnsupportedFormat, "%q", format)
	}
}

// Decode reads a change log from r. Empty input yields an empty log.
func Decode(r io.Reader, format Format) ([]engine.Change, error) {
	var changes []engine.Change

	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&changes); err != nil && !errors.Is(err, io.EOF) {
			return nil, errors.Wrap(err, "failed to decode json change log")
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&changes); err != nil && !errors.Is(err, io.EOF) {
			return nil, errors.Wrap(err, "failed to decode yaml change log")
		}
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%q", format)
	}

	if changes == nil {
		changes = []engine.Change{}
	}

	return changes, nil
}

// ReadFile loads the change log stored at path. A missing file is an empty log.
func ReadFile(path string) ([]engine.Change, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []engine.Change{}, nil
		}

		return nil, errors.Wrapf(err, "failed to open change log %s", path)
	}
	defer f.Close()

	return Decode(f, FormatOf(path))
}

// WriteFile stores changes at path, replacing any previous content.
func WriteFile(path string, changes []engine.Change) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, fileMode)
	if err != nil {
		return errors.Wrapf(err, "failed to open change log %s", path)
	}

	if err := Encode(f, changes, FormatOf(path)); err != nil {
		_ = f.Close()
		return err
	}

	return errors.Wrapf(f.Close(), "failed to close change log %s", path)
}
