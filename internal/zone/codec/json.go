package codec

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/GoPowerDNS-Admin/zonechange/internal/zone"
)

const (
	keyOrigin = "$origin"
	keyTTL    = "$ttl"
)

// ParseJSON parses a zone object of the form
// {"$origin": ..., "$ttl": ..., "soa": {...}, "<type>": [records...]}.
// Keys that are not record types are ignored.
func ParseJSON(data []byte) (*zone.Snapshot, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyZone
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "failed to decode json zone")
	}

	if raw == nil {
		return nil, ErrNotAZone
	}

	s := zone.NewSnapshot("")

	for key, msg := range raw {
		var err error

		switch key {
		case keyOrigin:
			err = json.Unmarshal(msg, &s.Origin)
		case keyTTL:
			err = json.Unmarshal(msg, &s.TTL)
		case zone.TypeSOA.String():
			s.SOA = &zone.SOA{}
			err = json.Unmarshal(msg, s.SOA)
		default:
			t, perr := zone.ParseType(key)
			if perr != nil {
				log.Debug().Str("key", key).Msg("ignoring unknown json zone key")
				continue
			}

			var records []zone.Record

			err = json.Unmarshal(msg, &records)
			s.Records[t] = records
		}

		if err != nil {
			return nil, errors.Wrapf(err, "failed to decode json zone key %q", key)
		}
	}

	return s, nil
}

// GenerateJSON renders s as an indented zone object.
func GenerateJSON(s *zone.Snapshot) ([]byte, error) {
	out := make(map[string]any, len(s.Records)+3) //nolint:mnd

	if s.Origin != "" {
		out[keyOrigin] = s.Origin
	}

	if s.TTL != 0 {
		out[keyTTL] = s.TTL
	}

	if s.SOA != nil {
		out[zone.TypeSOA.String()] = s.SOA
	}

	for t, records := range s.Records {
		if t == zone.TypeSOA {
			continue
		}

		out[t.String()] = records
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode json zone")
	}

	return data, nil
}
