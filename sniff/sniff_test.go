package sniff

import (
	"strings"
	"testing"

	"github.com/rickardp/splitstream"
	"github.com/stretchr/testify/require"
)

func TestDetectPreambleXML(t *testing.T) {
	format, preamble, err := DetectPreamble(strings.NewReader("  <root/>"))
	require.NoError(t, err)
	require.Equal(t, splitstream.XML, format)
	require.Equal(t, "  <", string(preamble))
}

func TestDetectPreambleJSONObject(t *testing.T) {
	format, preamble, err := DetectPreamble(strings.NewReader(`{"a":1}`))
	require.NoError(t, err)
	require.Equal(t, splitstream.JSON, format)
	require.Equal(t, "{", string(preamble))
}

func TestDetectPreambleJSONBareNumber(t *testing.T) {
	format, _, err := DetectPreamble(strings.NewReader("42"))
	require.NoError(t, err)
	require.Equal(t, splitstream.JSON, format)
}

func TestDetectPreambleUBJSON(t *testing.T) {
	format, preamble, err := DetectPreamble(strings.NewReader("U\x01"))
	require.NoError(t, err)
	require.Equal(t, splitstream.UBJSON, format)
	require.Equal(t, "U", string(preamble))
}

func TestDetectPreambleEmptyStream(t *testing.T) {
	_, _, err := DetectPreamble(strings.NewReader(""))
	require.ErrorIs(t, err, ErrEmptyStream)
}

func TestDetectPreambleUnrecognized(t *testing.T) {
	_, _, err := DetectPreamble(strings.NewReader("~not a thing"))
	require.ErrorIs(t, err, ErrUnrecognizedFormat)
}

func TestDetectPreambleResumesCorrectly(t *testing.T) {
	input := `{"a":1}{"b":2}`
	r := strings.NewReader(input)
	format, preamble, err := DetectPreamble(r)
	require.NoError(t, err)

	s, err := splitstream.New(r, splitstream.Config{Format: format, Preamble: preamble})
	require.NoError(t, err)

	var docs []string
	for s.Scan() {
		docs = append(docs, string(s.Bytes()))
	}
	require.NoError(t, s.Err())
	require.Equal(t, []string{`{"a":1}`, `{"b":2}`}, docs)
}
