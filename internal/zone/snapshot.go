package zone

// SOA is the start of authority of a zone. It is carried through the
// snapshot for output only; changes never target it.
type SOA struct {
	Name    string `json:"name,omitempty" yaml:"name,omitempty"`
	TTL     uint32 `json:"ttl,omitempty"  yaml:"ttl,omitempty"`
	MName   string `json:"mname"          yaml:"mname"`
	RName   string `json:"rname"          yaml:"rname"`
	Serial  uint32 `json:"serial"         yaml:"serial"`
	Refresh uint32 `json:"refresh"        yaml:"refresh"`
	Retry   uint32 `json:"retry"          yaml:"retry"`
	Expire  uint32 `json:"expire"         yaml:"expire"`
	Minimum uint32 `json:"minimum"        yaml:"minimum"`
}

// Snapshot maps record types to ordered record sequences.
type Snapshot struct {
	Origin  string
	TTL     uint32
	SOA     *SOA
	Records map[Type][]Record
}

// NewSnapshot returns an empty snapshot for origin.
func NewSnapshot(origin string) *Snapshot {
	return &Snapshot{
		Origin:  origin,
		Records: make(map[Type][]Record),
	}
}

// Get returns the records of type t. The returned slice must not be modified.
func (s *Snapshot) Get(t Type) []Record {
	if s == nil || s.Records == nil {
		return nil
	}

	return s.Records[t]
}

// Has reports whether the snapshot holds a record list for t.
func (s *Snapshot) Has(t Type) bool {
	if s == nil || s.Records == nil {
		return false
	}

	_, ok := s.Records[t]

	return ok
}

// Clone returns a copy of s whose record slices can be changed without
// affecting s.
func (s *Snapshot) Clone() *Snapshot {
	if s == nil {
		return NewSnapshot("")
	}

	out := &Snapshot{
		Origin:  s.Origin,
		TTL:     s.TTL,
		Records: make(map[Type][]Record, len(s.Records)),
	}

	if s.SOA != nil {
		soa := *s.SOA
		out.SOA = &soa
	}

	for t, records := range s.Records {
		out.Records[t] = append(make([]Record, 0, len(records)), records...)
	}

	return out
}

// Len returns the number of records across all types.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}

	var n int
	for _, records := range s.Records {
		n += len(records)
	}

	return n
}
