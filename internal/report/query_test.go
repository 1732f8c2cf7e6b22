package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/hylite/internal/hylite"
	"github.com/dshills/hylite/internal/parser"
	"github.com/dshills/hylite/pkg/types"
)

func names(src hylite.Source) []string {
	var out []string
	for _, e := range Entries(src) {
		out = append(out, e.Name)
	}
	return out
}

func TestQuery_Apply(t *testing.T) {
	set := hylite.NewSet()
	loc := types.Location{File: "f.c", Line: 1}
	parser.Parse("hylite net-retry: todo perf", loc, set)
	parser.Parse("hylite net-dial: todo", loc, set)
	parser.Parse("hylite disk: perf", loc, set)
	parser.Parse("hylite: todo", loc, set)

	tests := []struct {
		name  string
		query Query
		want  []string
	}{
		{"empty query shows all", Query{}, []string{"disk", "net-dial", "net-retry", "_Anon-1"}},
		{"exact name", Query{Name: "net-dial"}, []string{"net-dial"}},
		{"name pattern", Query{Name: "/^net-/"}, []string{"net-dial", "net-retry"}},
		{"group", Query{Groups: []string{"di"}}, []string{"disk"}},
		{"several groups", Query{Groups: []string{"disk", "net-r"}}, []string{"disk", "net-retry"}},
		{"attribute", Query{Attributes: []string{"todo"}}, []string{"net-dial", "net-retry", "_Anon-1"}},
		{"missing attribute", Query{Attributes: []string{"nope"}}, nil},
		{"chained", Query{Groups: []string{"net"}, Attributes: []string{"perf"}}, []string{"net-retry"}},
		{"chain with no survivors", Query{Name: "disk", Attributes: []string{"todo"}}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := tt.query.Apply(set)
			require.NoError(t, err)
			assert.Equal(t, tt.want, names(src))
		})
	}
}

func TestQuery_EmptyReturnsSet(t *testing.T) {
	set := hylite.NewSet()

	src, err := Query{}.Apply(set)
	require.NoError(t, err)

	assert.True(t, Query{}.Empty())
	assert.Same(t, set, src)
}

func TestQuery_BadPattern(t *testing.T) {
	_, err := Query{Name: "/(unclosed/"}.Apply(hylite.NewSet())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid name pattern")
}

func TestNamePattern(t *testing.T) {
	tests := []struct {
		in        string
		isPattern bool
	}{
		{"plain", false},
		{"/", false},
		{"/x", false},
		{"//", true},
		{"/a.b/", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, isPattern, err := namePattern(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.isPattern, isPattern)
		})
	}
}
