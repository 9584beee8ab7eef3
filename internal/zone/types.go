// Package zone models a DNS zone as typed collections of records.
//
// A Snapshot groups Records by Type. Record identity inside a type and name
// group is the content of the type's value field (see ValueOf); records carry
// no separate ID.
package zone

import (
	"strings"

	"github.com/pkg/errors"
)

// Type is a DNS record type as used in zone snapshots and change logs.
type Type string

const (
	// TypeA is an IPv4 address record.
	TypeA Type = "a"
	// TypeAAAA is an IPv6 address record.
	TypeAAAA Type = "aaaa"
	// TypeCNAME is a canonical name record.
	TypeCNAME Type = "cname"
	// TypeNS is a name server record.
	TypeNS Type = "ns"
	// TypeTXT is a text record.
	TypeTXT Type = "txt"
	// TypePTR is a pointer record.
	TypePTR Type = "ptr"
	// TypeCAA is a certification authority authorization record.
	TypeCAA Type = "caa"
	// TypeSOA is the start of authority record.
	TypeSOA Type = "soa"
	// TypeMX is a mail exchange record.
	TypeMX Type = "mx"
	// TypeSRV is a service locator record.
	TypeSRV Type = "srv"
)

// ErrUnknownType is returned by ParseType for names outside the known set.
var ErrUnknownType = errors.New("unknown record type")

// Types lists every known record type in output order.
func Types() []Type {
	return []Type{TypeNS, TypeMX, TypeA, TypeAAAA, TypeCNAME, TypeTXT, TypePTR, TypeSRV, TypeCAA, TypeSOA}
}

// ParseType converts a case-insensitive type name into a Type.
func ParseType(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))

	switch t {
	case TypeA, TypeAAAA, TypeCNAME, TypeNS, TypeTXT, TypePTR, TypeCAA, TypeSOA, TypeMX, TypeSRV:
		return t, nil
	default:
		return "", errors.Wrapf(ErrUnknownType, "%q", s)
	}
}

// String implements fmt.Stringer.
func (t Type) String() string {
	return string(t)
}

// Descriptor holds the cardinality rules of a record type.
type Descriptor struct {
	Type Type

	// MultipleRecords reports whether records of this type may exist under distinct names.
	MultipleRecords bool

	// MultipleValuesPerKey reports whether several records may share one name.
	MultipleValuesPerKey bool
}

// Describe returns the descriptor of t. Types without cardinality rules
// (mx, srv) report false.
func Describe(t Type) (Descriptor, bool) {
	switch t {
	case TypeA, TypeAAAA, TypeNS, TypeTXT, TypeCAA:
		return Descriptor{Type: t, MultipleRecords: true, MultipleValuesPerKey: true}, true
	case TypeCNAME, TypePTR:
		return Descriptor{Type: t, MultipleRecords: true, MultipleValuesPerKey: false}, true
	case TypeSOA:
		return Descriptor{Type: t, MultipleRecords: false, MultipleValuesPerKey: false}, true
	case TypeMX, TypeSRV:
		return Descriptor{}, false
	default:
		return Descriptor{}, false
	}
}

// ValueOf extracts the identifying value of r for type t: ip for a, alias for
// cname, txt for txt, host for ns, ptr and mx, target for srv. The second
// result is false when t has no value field.
func ValueOf(t Type, r Record) (string, bool) {
	switch t {
	case TypeA:
		return r.IP, true
	case TypeCNAME:
		return r.Alias, true
	case TypeTXT:
		return r.Txt, true
	case TypeNS, TypePTR, TypeMX:
		return r.Host, true
	case TypeSRV:
		return r.Target, true
	case TypeAAAA, TypeCAA, TypeSOA:
		return "", false
	default:
		return "", false
	}
}
