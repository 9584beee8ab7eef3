package engine

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/GoPowerDNS-Admin/zonechange/internal/uniuri"
	"github.com/GoPowerDNS-Admin/zonechange/internal/zone/codec"
)

const (
	zoneFileMode = 0o644
	tmpSuffixLen = 8
)

// LoadJSONZoneFile returns an engine for the JSON zone stored at path.
func LoadJSONZoneFile(path string, opts ...Option) (*Engine, error) {
	content, err := readZoneFile(path)
	if err != nil {
		return nil, err
	}

	return LoadJSONZoneString(content, opts...)
}

// LoadJSONZoneString returns an engine for a JSON zone object. Content that
// is not a JSON object is parsed as a flat zone.
func LoadJSONZoneString(content string, opts ...Option) (*Engine, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil, ErrZoneEmpty
	}

	if !strings.HasPrefix(trimmed, "{") && trimmed != "null" {
		return LoadFlatZoneString(content, opts...)
	}

	s, err := codec.ParseJSON([]byte(content))
	if err != nil {
		return nil, errors.Wrapf(ErrZoneUnparseable, "%v", err)
	}

	return New(s, opts...), nil
}

// LoadFlatZoneFile returns an engine for the flat (RFC 1035) zone stored at path.
func LoadFlatZoneFile(path string, opts ...Option) (*Engine, error) {
	content, err := readZoneFile(path)
	if err != nil {
		return nil, err
	}

	return LoadFlatZoneString(content, opts...)
}

// LoadFlatZoneString returns an engine for flat (RFC 1035) zone content.
func LoadFlatZoneString(content string, opts ...Option) (*Engine, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrZoneEmpty
	}

	o := newOptions(opts)

	s, err := codec.ParseFlat(content, o.origin)
	if err != nil {
		return nil, errors.Wrapf(ErrZoneUnparseable, "%v", err)
	}

	return New(s, opts...), nil
}

// GenerateZone renders the current snapshot as a flat zone, or as a JSON zone
// object when path ends in .json. When path is not empty the content is also
// written there. The file is replaced atomically.
func (e *Engine) GenerateZone(path string) (string, error) {
	var (
		out string
		err error
	)

	if strings.EqualFold(filepath.Ext(path), ".json") {
		var b []byte
		b, err = codec.GenerateJSON(e.current)
		out = string(b)
	} else {
		out, err = codec.GenerateFlat(e.current)
	}

	if err != nil {
		return "", errors.Wrap(err, "failed to generate zone")
	}

	if path != "" {
		if err := writeZoneFile(path, out); err != nil {
			return "", err
		}
	}

	return out, nil
}

func writeZoneFile(path, content string) error {
	tmp := path + ".tmp-" + uniuri.NewLen(tmpSuffixLen)

	if err := os.WriteFile(tmp, []byte(content), zoneFileMode); err != nil {
		return errors.Wrapf(err, "failed to write zone file %s", path)
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return errors.Wrapf(err, "failed to write zone file %s", path)
	}

	return nil
}

func readZoneFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", errors.Wrapf(ErrZoneFileNotFound, "%s", path)
		}

		return "", errors.Wrapf(err, "failed to read zone file %s", path)
	}

	if len(content) == 0 {
		return "", errors.Wrapf(ErrZoneEmpty, "%s", path)
	}

	return string(content), nil
}
