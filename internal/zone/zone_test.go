package zone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseType(t *testing.T) {
	tests := []struct {
		in      string
		want    Type
		wantErr bool
	}{
		{"a", TypeA, false},
		{"A", TypeA, false},
		{" CNAME ", TypeCNAME, false},
		{"srv", TypeSRV, false},
		{"loc", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseType(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownType)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		recordType     Type
		known          bool
		multipleValues bool
		multipleNames  bool
	}{
		{TypeA, true, true, true},
		{TypeCNAME, true, false, true},
		{TypeAAAA, true, true, true},
		{TypeNS, true, true, true},
		{TypeTXT, true, true, true},
		{TypePTR, true, false, true},
		{TypeCAA, true, true, true},
		{TypeSOA, true, false, false},
		{TypeMX, false, false, false},
		{TypeSRV, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.recordType.String(), func(t *testing.T) {
			d, ok := Describe(tt.recordType)
			assert.Equal(t, tt.known, ok)
			assert.Equal(t, tt.multipleValues, d.MultipleValuesPerKey)
			assert.Equal(t, tt.multipleNames, d.MultipleRecords)
		})
	}
}

func TestValueOf(t *testing.T) {
	r := Record{
		Name:   "x",
		IP:     "1.2.3.4",
		Alias:  "alias",
		Host:   "host",
		Txt:    "txt",
		Target: "target",
	}

	tests := []struct {
		recordType Type
		want       string
		ok         bool
	}{
		{TypeA, "1.2.3.4", true},
		{TypeCNAME, "alias", true},
		{TypeTXT, "txt", true},
		{TypeNS, "host", true},
		{TypePTR, "host", true},
		{TypeMX, "host", true},
		{TypeSRV, "target", true},
		{TypeAAAA, "", false},
		{TypeCAA, "", false},
		{Type("bogus"), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.recordType.String(), func(t *testing.T) {
			got, ok := ValueOf(tt.recordType, r)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSnapshotClone(t *testing.T) {
	s := NewSnapshot("example.com.")
	s.SOA = &SOA{MName: "ns1", Serial: 1}
	s.Records[TypeA] = []Record{{Name: "www", IP: "1.1.1.1"}}

	c := s.Clone()
	c.Records[TypeA][0].IP = "2.2.2.2"
	c.Records[TypeA] = append(c.Records[TypeA], Record{Name: "api", IP: "3.3.3.3"})
	c.SOA.Serial = 2

	assert.Equal(t, "1.1.1.1", s.Records[TypeA][0].IP)
	assert.Len(t, s.Records[TypeA], 1)
	assert.Equal(t, uint32(1), s.SOA.Serial)
	assert.Equal(t, 2, c.Len())
}

func TestSnapshotNil(t *testing.T) {
	var s *Snapshot

	assert.Nil(t, s.Get(TypeA))
	assert.False(t, s.Has(TypeA))
	assert.Equal(t, 0, s.Len())
	assert.NotNil(t, s.Clone().Records)
}

func TestNewRecord(t *testing.T) {
	for _, tt := range []Type{TypeA, TypeCNAME, TypeTXT, TypeNS, TypePTR, TypeMX, TypeSRV} {
		r := NewRecord(tt, "www", "v", 60)
		got, ok := ValueOf(tt, r)
		require.True(t, ok, tt)
		assert.Equal(t, "v", got, tt)
		assert.Equal(t, uint32(60), r.TTL)
	}

	assert.Equal(t, "::1", NewRecord(TypeAAAA, "@", "::1", 0).IP)
	assert.Equal(t, "letsencrypt.org", NewRecord(TypeCAA, "@", "letsencrypt.org", 0).Value)
}
