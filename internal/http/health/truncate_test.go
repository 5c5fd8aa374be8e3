package health

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{name: "Short", in: "connection refused", n: 50, want: "connection refused"},
		{name: "Exact", in: "abcde", n: 5, want: "abcde"},
		{name: "Cut", in: "abcdef", n: 3, want: "abc"},
		{name: "MultiByteBoundary", in: "ligação recusada", n: 4, want: "liga"},
		{name: "CutInsideRune", in: "açúcar", n: 2, want: "aç"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.in, tt.n)

			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}
