package zone

// Record is one resource record as named fields. Only the fields relevant to
// its type are set. In a removal operation Value carries the value to match.
type Record struct {
	Name string `json:"name"                 yaml:"name"`
	TTL  uint32 `json:"ttl,omitempty"        yaml:"ttl,omitempty"`

	IP     string `json:"ip,omitempty"     yaml:"ip,omitempty"`     // a, aaaa
	Alias  string `json:"alias,omitempty"  yaml:"alias,omitempty"`  // cname
	Host   string `json:"host,omitempty"   yaml:"host,omitempty"`   // ns, ptr, mx
	Txt    string `json:"txt,omitempty"    yaml:"txt,omitempty"`    // txt
	Target string `json:"target,omitempty" yaml:"target,omitempty"` // srv

	Preference uint16 `json:"preference,omitempty" yaml:"preference,omitempty"` // mx
	Priority   uint16 `json:"priority,omitempty"   yaml:"priority,omitempty"`   // srv
	Weight     uint16 `json:"weight,omitempty"     yaml:"weight,omitempty"`     // srv
	Port       uint16 `json:"port,omitempty"       yaml:"port,omitempty"`       // srv
	Flags      uint8  `json:"flags,omitempty"      yaml:"flags,omitempty"`      // caa
	Tag        string `json:"tag,omitempty"        yaml:"tag,omitempty"`        // caa

	// Value is the caa value, or the match key of a removal operation.
	Value string `json:"value,omitempty" yaml:"value,omitempty"`
}

// HasValue reports whether a removal record restricts the match to one value.
// It is only meaningful on removal operation records: a caa record also
// stores its value in Value, so HasValue is true for any caa record.
func (r Record) HasValue() bool {
	return r.Value != ""
}

// NameOnly returns a record carrying only the name of r.
func (r Record) NameOnly() Record {
	return Record{Name: r.Name}
}

// NewRecord returns a record of type t with value stored in the field that
// type uses (see ValueOf). aaaa values go to IP and caa values to Value.
func NewRecord(t Type, name, value string, ttl uint32) Record {
	r := Record{Name: name, TTL: ttl}

	switch t {
	case TypeA, TypeAAAA:
		r.IP = value
	case TypeCNAME:
		r.Alias = value
	case TypeTXT:
		r.Txt = value
	case TypeNS, TypePTR, TypeMX:
		r.Host = value
	case TypeSRV:
		r.Target = value
	case TypeCAA, TypeSOA:
		r.Value = value
	}

	return r
}
