package dict

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{name: "unique list kept as is", in: []string{"a", "b", "c"}, want: []string{"a", "b", "c"}},
		{name: "first occurrence wins", in: []string{"a", "b", "a", "c", "b"}, want: []string{"a", "b", "c"}},
		{name: "single element", in: []string{"a"}, want: []string{"a"}},
		{name: "nil stays nil", in: nil, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, dedup(tt.in))
		})
	}
}
