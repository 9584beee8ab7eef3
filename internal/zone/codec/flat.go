// Package codec converts zone snapshots to and from their flat (RFC 1035)
// and JSON representations.
package codec

import (
	"bufio"
	"net"
	"strconv"
	"strings"

	"github.com/miekg/dns"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/GoPowerDNS-Admin/zonechange/internal/zone"
)

const (
	apex = "@"

	// DefaultTTL is used for generated records when neither the record nor
	// the snapshot define a TTL.
	DefaultTTL = 3600
)

// ParseFlat parses flat zone file content. A $ORIGIN directive in text takes
// precedence over origin. Owner names and targets below the origin are
// stored relative to it, the apex as "@". Record types the snapshot does not
// model are skipped.
func ParseFlat(text, origin string) (*zone.Snapshot, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyZone
	}

	if o := directive(text, "$ORIGIN"); o != "" {
		origin = o
	}

	if origin != "" {
		origin = dns.Fqdn(origin)
	}

	zp := dns.NewZoneParser(strings.NewReader(text), origin, "")

	var rrs []dns.RR
	for rr, ok := zp.Next(); ok; rr, ok = zp.Next() {
		rrs = append(rrs, rr)
	}

	if err := zp.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to parse flat zone")
	}

	s := zone.NewSnapshot(origin)

	if ttl, err := strconv.ParseUint(directive(text, "$TTL"), 10, 32); err == nil {
		s.TTL = uint32(ttl)
	}

	// without any origin the apex is the SOA owner
	if s.Origin == "" {
		for _, rr := range rrs {
			if soa, ok := rr.(*dns.SOA); ok {
				s.Origin = soa.Hdr.Name
				break
			}
		}
	}

	for _, rr := range rrs {
		if soa, ok := rr.(*dns.SOA); ok {
			s.SOA = &zone.SOA{
				Name:    relative(soa.Hdr.Name, s.Origin),
				TTL:     recordTTL(soa.Hdr.Ttl, s.TTL),
				MName:   soa.Ns,
				RName:   soa.Mbox,
				Serial:  soa.Serial,
				Refresh: soa.Refresh,
				Retry:   soa.Retry,
				Expire:  soa.Expire,
				Minimum: soa.Minttl,
			}

			continue
		}

		t, r, ok := fromRR(rr, s.Origin)
		if !ok {
			log.Debug().Str("rr", rr.String()).Msg("skipping unsupported record type")
			continue
		}

		r.TTL = recordTTL(rr.Header().Ttl, s.TTL)
		s.Records[t] = append(s.Records[t], r)
	}

	return s, nil
}

// GenerateFlat renders s as flat zone file content.
func GenerateFlat(s *zone.Snapshot) (string, error) {
	var (
		b   strings.Builder
		ttl = s.TTL
	)

	if ttl == 0 {
		ttl = DefaultTTL
	}

	if s.Origin != "" {
		b.WriteString("$ORIGIN " + dns.Fqdn(s.Origin) + "\n")
	}

	b.WriteString("$TTL " + strconv.FormatUint(uint64(ttl), 10) + "\n")

	if s.SOA != nil {
		soa := &dns.SOA{
			Hdr: dns.RR_Header{
				Name:   absolute(s.SOA.Name, s.Origin),
				Rrtype: dns.TypeSOA,
				Class:  dns.ClassINET,
				Ttl:    orDefault(s.SOA.TTL, ttl),
			},
			Ns:      absolute(s.SOA.MName, s.Origin),
			Mbox:    absolute(s.SOA.RName, s.Origin),
			Serial:  s.SOA.Serial,
			Refresh: s.SOA.Refresh,
			Retry:   s.SOA.Retry,
			Expire:  s.SOA.Expire,
			Minttl:  s.SOA.Minimum,
		}

		b.WriteString("\n; SOA Record\n" + soa.String() + "\n")
	}

	for _, t := range zone.Types() {
		records := s.Get(t)
		if t == zone.TypeSOA || len(records) == 0 {
			continue
		}

		b.WriteString("\n; " + strings.ToUpper(t.String()) + " Records\n")

		for _, r := range records {
			rr, err := toRR(t, r, s.Origin, orDefault(r.TTL, ttl))
			if err != nil {
				return "", err
			}

			b.WriteString(rr.String() + "\n")
		}
	}

	return b.String(), nil
}

func fromRR(rr dns.RR, origin string) (zone.Type, zone.Record, bool) {
	r := zone.Record{Name: relative(rr.Header().Name, origin)}

	switch v := rr.(type) {
	case *dns.A:
		r.IP = v.A.String()
		return zone.TypeA, r, true
	case *dns.AAAA:
		r.IP = v.AAAA.String()
		return zone.TypeAAAA, r, true
	case *dns.CNAME:
		r.Alias = relative(v.Target, origin)
		return zone.TypeCNAME, r, true
	case *dns.NS:
		r.Host = relative(v.Ns, origin)
		return zone.TypeNS, r, true
	case *dns.PTR:
		r.Host = relative(v.Ptr, origin)
		return zone.TypePTR, r, true
	case *dns.MX:
		r.Host = relative(v.Mx, origin)
		r.Preference = v.Preference
		return zone.TypeMX, r, true
	case *dns.TXT:
		r.Txt = strings.Join(v.Txt, "")
		return zone.TypeTXT, r, true
	case *dns.SRV:
		r.Target = relative(v.Target, origin)
		r.Priority = v.Priority
		r.Weight = v.Weight
		r.Port = v.Port
		return zone.TypeSRV, r, true
	case *dns.CAA:
		r.Flags = v.Flag
		r.Tag = v.Tag
		r.Value = v.Value
		return zone.TypeCAA, r, true
	default:
		return "", zone.Record{}, false
	}
}

func toRR(t zone.Type, r zone.Record, origin string, ttl uint32) (dns.RR, error) {
	hdr := dns.RR_Header{Name: absolute(r.Name, origin), Class: dns.ClassINET, Ttl: ttl}

	switch t {
	case zone.TypeA:
		ip := net.ParseIP(r.IP).To4()
		if ip == nil {
			return nil, errors.Wrapf(ErrBadRecord, "a record %q has invalid ip %q", r.Name, r.IP)
		}

		hdr.Rrtype = dns.TypeA

		return &dns.A{Hdr: hdr, A: ip}, nil
	case zone.TypeAAAA:
		ip := net.ParseIP(r.IP)
		if ip == nil || ip.To4() != nil {
			return nil, errors.Wrapf(ErrBadRecord, "aaaa record %q has invalid ip %q", r.Name, r.IP)
		}

		hdr.Rrtype = dns.TypeAAAA

		return &dns.AAAA{Hdr: hdr, AAAA: ip}, nil
	case zone.TypeCNAME:
		hdr.Rrtype = dns.TypeCNAME
		return &dns.CNAME{Hdr: hdr, Target: absolute(r.Alias, origin)}, nil
	case zone.TypeNS:
		hdr.Rrtype = dns.TypeNS
		return &dns.NS{Hdr: hdr, Ns: absolute(r.Host, origin)}, nil
	case zone.TypePTR:
		hdr.Rrtype = dns.TypePTR
		return &dns.PTR{Hdr: hdr, Ptr: absolute(r.Host, origin)}, nil
	case zone.TypeMX:
		hdr.Rrtype = dns.TypeMX
		return &dns.MX{Hdr: hdr, Preference: r.Preference, Mx: absolute(r.Host, origin)}, nil
	case zone.TypeTXT:
		hdr.Rrtype = dns.TypeTXT
		return &dns.TXT{Hdr: hdr, Txt: []string{r.Txt}}, nil
	case zone.TypeSRV:
		hdr.Rrtype = dns.TypeSRV

		return &dns.SRV{
			Hdr:      hdr,
			Priority: r.Priority,
			Weight:   r.Weight,
			Port:     r.Port,
			Target:   absolute(r.Target, origin),
		}, nil
	case zone.TypeCAA:
		hdr.Rrtype = dns.TypeCAA
		return &dns.CAA{Hdr: hdr, Flag: r.Flags, Tag: r.Tag, Value: r.Value}, nil
	case zone.TypeSOA:
		return nil, errors.Wrap(ErrBadRecord, "soa is not a record list")
	default:
		return nil, errors.Wrapf(ErrBadRecord, "unsupported record type %q", t)
	}
}

// relative strips origin from name. The origin itself becomes "@".
func relative(name, origin string) string {
	if origin == "" || origin == "." {
		return name
	}

	if strings.EqualFold(name, origin) {
		return apex
	}

	if strings.HasSuffix(strings.ToLower(name), "."+strings.ToLower(origin)) {
		return name[:len(name)-len(origin)-1]
	}

	return name
}

// absolute qualifies name below origin.
func absolute(name, origin string) string {
	if origin == "" {
		origin = "."
	}

	origin = dns.Fqdn(origin)

	switch {
	case name == "" || name == apex:
		return origin
	case dns.IsFqdn(name):
		return name
	case origin == ".":
		return dns.Fqdn(name)
	default:
		return name + "." + origin
	}
}

func recordTTL(ttl, zoneTTL uint32) uint32 {
	if ttl == zoneTTL {
		return 0
	}

	return ttl
}

func orDefault(v, def uint32) uint32 {
	if v == 0 {
		return def
	}

	return v
}

// directive returns the argument of the first occurrence of a $-directive.
func directive(text, name string) string {
	s := bufio.NewScanner(strings.NewReader(text))
	for s.Scan() {
		fields := strings.Fields(s.Text())
		if len(fields) >= 2 && strings.EqualFold(fields[0], name) { //nolint:mnd
			return fields[1]
		}
	}

	return ""
}
