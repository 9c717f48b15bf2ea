package calendar

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	for _, kind := range Kinds {
		parsed, err := ParseKind(string(kind))
		require.NoError(t, err)
		require.Equal(t, kind, parsed)
	}

	_, err := ParseKind("post")
	require.ErrorContains(t, err, "unknown entity kind")
}
