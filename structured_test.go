package braces_test

import (
	"testing"

	"github.com/bjaus/braces"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type server struct {
	Name  string   `json:"name" yaml:"name"`
	Ports []int    `json:"ports" yaml:"ports"`
	Tags  []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

func TestJSON(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		v    any
		kind braces.Kind
		want string
	}{
		"compact object": {
			v:    server{Name: "web", Ports: []int{80, 443}},
			want: `{"name":"web","ports":[80,443]}`,
		},
		"indented object": {
			v:    server{Name: "web", Ports: []int{80}},
			kind: braces.KindDebug,
			want: "{\n  \"name\": \"web\",\n  \"ports\": [\n    80\n  ]\n}",
		},
		"html not escaped": {
			v:    "<b>&</b>",
			want: `"<b>&</b>"`,
		},
		"null": {
			v:    nil,
			want: "null",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := braces.Render(braces.JSON(tt.v), braces.Specifier{Kind: tt.kind})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJSONUnsupportedValue(t *testing.T) {
	t.Parallel()
	_, err := braces.Format("{}", braces.JSON(make(chan int)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "argument 0")
}

func TestYAML(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		v    any
		kind braces.Kind
		want string
	}{
		"scalar": {
			v:    42,
			want: "42",
		},
		"flat map": {
			v:    map[string]int{"a": 1, "b": 2},
			want: "a: 1\nb: 2",
		},
		"default indent": {
			v:    map[string]map[string]int{"outer": {"inner": 1}},
			want: "outer:\n    inner: 1",
		},
		"debug indent": {
			v:    map[string]map[string]int{"outer": {"inner": 1}},
			kind: braces.KindDebug,
			want: "outer:\n  inner: 1",
		},
		"struct tags": {
			v:    server{Name: "db", Ports: []int{5432}},
			kind: braces.KindDebug,
			want: "name: db\nports:\n  - 5432",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := braces.Render(braces.YAML(tt.v), braces.Specifier{Kind: tt.kind})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStructuredInFormat(t *testing.T) {
	t.Parallel()
	got, err := braces.Format("config:\n{D}\nsummary: {}", braces.YAML(map[string]bool{"debug": true}), braces.JSON([]string{"a"}))
	require.NoError(t, err)
	assert.Equal(t, "config:\ndebug: true\nsummary: [\"a\"]", got)
}
