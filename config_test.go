package numfmt

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/tinywasm/numfmt/internal/testutils/assert"
	"github.com/tinywasm/numfmt/internal/testutils/require"
)

const formatsYAML = `
formats:
  ledger:
    separator: "'"
    minus_sign: "(-)"
  lakh:
    base: hi_IN
    decimal: ","
  plain:
    base: fr
    grouping: posix
  swiss:
    base: de-CH
    grouping: indian
    separator: " "
    infinity: "unendlich"
    nan: "keine Zahl"
    plus_sign: "+"
`

func TestLoadFormats(t *testing.T) {
	formats, err := LoadFormats(strings.NewReader(formatsYAML))
	require.NoError(t, err)
	require.Len(t, formats, 4)

	var b Buffer

	ledger := formats["ledger"]
	WriteInt(&b, -1234567, ledger)
	assert.Equal(t, "(-)1'234'567", b.String())

	lakh := formats["lakh"]
	assert.Equal(t, Indian, lakh.Grouping())
	b.WriteFloat64(1234567.5, lakh)
	assert.Equal(t, "12,34,567,5", b.String())

	plain := formats["plain"]
	b.WriteFloat64(1234567.5, plain)
	assert.Equal(t, "1234567,5", b.String())

	swiss := formats["swiss"]
	assert.Equal(t, "unendlich", swiss.Infinity())
	assert.Equal(t, "keine Zahl", swiss.NaN())
	WriteUint(&b, uint32(1234567), swiss)
	assert.Equal(t, "12 34 567", b.String())
}

func TestLoadFormatsEmptyDocument(t *testing.T) {
	formats, err := LoadFormats(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, formats)
}

func TestLoadFormatsErrors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		kind error
	}{
		{"syntax", "formats: [", ErrConfig},
		{"unknown field", "formats:\n  x:\n    colour: red\n", ErrConfig},
		{"unknown grouping", "formats:\n  x:\n    grouping: tribal\n", ErrConfig},
		{"unknown base", "formats:\n  x:\n    base: xx\n", ErrInvalidLocale},
		{"bad base", "formats:\n  x:\n    base: '--'\n", ErrParseLocale},
		{"long separator", "formats:\n  x:\n    separator: '123456789'\n", ErrCapacity},
	}
	for _, c := range cases {
		_, err := LoadFormats(strings.NewReader(c.doc))
		require.Error(t, err, c.name)
		assert.ErrorIs(t, err, ErrConfig, c.name)
		assert.ErrorIs(t, err, c.kind, c.name)
	}
}

func TestLoadFormatsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "formats.yaml")
	require.NoError(t, os.WriteFile(path, []byte(formatsYAML), 0o644))

	formats, err := LoadFormatsFile(path)
	require.NoError(t, err)
	assert.Len(t, formats, 4)

	_, err = LoadFormatsFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, ErrConfig)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestGroupingYAML(t *testing.T) {
	out, err := yaml.Marshal(map[string]Grouping{"g": Indian})
	require.NoError(t, err)
	assert.Equal(t, "g: indian\n", string(out))

	var back map[string]Grouping
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, Indian, back["g"])
}
