package semcommit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name   string
		input  []Severity
		want   Severity
		wantOK bool
	}{
		{"empty", nil, NoSeverity, false},
		{"patch and minor", []Severity{Patch, Minor}, Minor, true},
		{"all three", []Severity{Minor, Major, Patch}, Major, true},
		{"patches only", []Severity{Patch, Patch, Patch}, Patch, true},
		{"major first", []Severity{Major, Patch}, Major, true},
		{"minor repeated", []Severity{Minor, Patch, Minor}, Minor, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Resolve(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveOrderIndependent(t *testing.T) {
	a, _ := Resolve([]Severity{Patch, Minor, Major})
	b, _ := Resolve([]Severity{Major, Minor, Patch})
	assert.Equal(t, a, b)
}

func TestSeverityString(t *testing.T) {
	for _, s := range []Severity{Major, Minor, Patch} {
		parsed, err := ParseSeverity(s.String())
		assert.NoError(t, err)
		assert.Equal(t, s, parsed)
	}
	assert.Equal(t, "none", NoSeverity.String())

	_, err := ParseSeverity("fix")
	assert.Error(t, err)
}
