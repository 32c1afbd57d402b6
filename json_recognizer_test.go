package splitstream

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func feedAllJSON(t *testing.T, r *jsonRecognizer, input string) []signal {
	t.Helper()
	sigs := make([]signal, 0, len(input))
	for i := 0; i < len(input); i++ {
		sig, err := r.feed(input[i])
		require.NoError(t, err)
		sigs = append(sigs, sig)
	}
	return sigs
}

func TestJSONRecognizerObjectBoundaries(t *testing.T) {
	r := newJSONRecognizer(0)
	sigs := feedAllJSON(t, r, `{"a":1}`)
	require.Equal(t, sigBoundary, sigs[0])
	require.Equal(t, sigEnded, sigs[len(sigs)-1])
}

func TestJSONRecognizerBraceInsideStringIsInert(t *testing.T) {
	r := newJSONRecognizer(0)
	sigs := feedAllJSON(t, r, `{"a}":3}`)
	// only the real closing brace (last byte) ends the document
	for i, s := range sigs[:len(sigs)-1] {
		require.NotEqual(t, sigEnded, s, "byte %d (%q) ended early", i, `{"a}":3}`[i])
	}
	require.Equal(t, sigEnded, sigs[len(sigs)-1])
}

func TestJSONRecognizerEscapedQuoteDoesNotCloseString(t *testing.T) {
	r := newJSONRecognizer(0)
	sigs := feedAllJSON(t, r, `{"b\"}":3}`)
	require.Equal(t, sigEnded, sigs[len(sigs)-1])
	for i, s := range sigs[:len(sigs)-1] {
		require.NotEqual(t, sigEnded, s, "byte %d ended early", i)
	}
}

func TestJSONRecognizerBareTopLevelNumberEndsOnRewind(t *testing.T) {
	r := newJSONRecognizer(0)
	sigs := feedAllJSON(t, r, "42,")
	require.Equal(t, sigBoundary, sigs[0])
	require.Equal(t, sigMore, sigs[1])
	require.Equal(t, sigEndedRewind, sigs[2])
}

func TestJSONRecognizerBareTopLevelLiteral(t *testing.T) {
	r := newJSONRecognizer(0)
	sigs := feedAllJSON(t, r, "true")
	require.Equal(t, sigBoundary, sigs[0])
	require.Equal(t, []signal{sigMore, sigMore, sigEnded}, sigs[1:])
}

func TestJSONRecognizerBareTopLevelString(t *testing.T) {
	r := newJSONRecognizer(0)
	sigs := feedAllJSON(t, r, `"hi"`)
	require.Equal(t, sigBoundary, sigs[0])
	require.Equal(t, sigEnded, sigs[len(sigs)-1])
}

func TestJSONRecognizerStartDepthExtractsArrayElements(t *testing.T) {
	r := newJSONRecognizer(1)
	input := `[{"a":1},{"b":2}]`
	sigs := feedAllJSON(t, r, input)
	// '[' opens the wrapper array at depth 0 -> skip, not a boundary
	require.Equal(t, sigSkip, sigs[0])
	// the first '{' (index 1) starts the first extracted element
	require.Equal(t, sigBoundary, sigs[1])
	// the final ']' closes the wrapper, at depth 0 again -> skip
	require.Equal(t, sigSkip, sigs[len(sigs)-1])
}
