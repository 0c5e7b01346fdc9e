package numfmt

import (
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// FormatsConfig is the top-level structure of a formats document:
//
//	formats:
//	  ledger:
//	    base: en
//	    separator: "'"
//	    grouping: standard
type FormatsConfig struct {
	Formats map[string]FormatConfig `yaml:"formats"`
}

// FormatConfig describes one named policy. Base names the locale whose
// symbols fill the unset fields; it defaults to en.
type FormatConfig struct {
	Base      string    `yaml:"base"`
	Decimal   *string   `yaml:"decimal"`
	Grouping  *Grouping `yaml:"grouping"`
	Infinity  *string   `yaml:"infinity"`
	MinusSign *string   `yaml:"minus_sign"`
	NaN       *string   `yaml:"nan"`
	PlusSign  *string   `yaml:"plus_sign"`
	Separator *string   `yaml:"separator"`
}

// UnmarshalYAML reads a grouping by name.
func (g *Grouping) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseGrouping(s)
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// MarshalYAML writes a grouping by name.
func (g Grouping) MarshalYAML() (any, error) {
	return g.String(), nil
}

// Build resolves the base locale and validates the result.
func (c FormatConfig) Build() (CustomFormat, error) {
	base := EN
	if c.Base != "" {
		l, err := ParseLocale(c.Base)
		if err != nil {
			return CustomFormat{}, err
		}
		base = l
	}
	b := NewBuilder().Format(base)
	if c.Decimal != nil {
		b.Decimal(*c.Decimal)
	}
	if c.Grouping != nil {
		b.Grouping(*c.Grouping)
	}
	if c.Infinity != nil {
		b.Infinity(*c.Infinity)
	}
	if c.MinusSign != nil {
		b.MinusSign(*c.MinusSign)
	}
	if c.NaN != nil {
		b.NaN(*c.NaN)
	}
	if c.PlusSign != nil {
		b.PlusSign(*c.PlusSign)
	}
	if c.Separator != nil {
		b.Separator(*c.Separator)
	}
	return b.Build()
}

// LoadFormats decodes a formats document and builds every entry. Any
// invalid entry fails the whole load with an error naming it.
func LoadFormats(r io.Reader) (map[string]CustomFormat, error) {
	var cfg FormatsConfig
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return nil, wrapError(ErrKindConfig, err, "decode formats")
	}
	out := make(map[string]CustomFormat, len(cfg.Formats))
	for name, fc := range cfg.Formats {
		f, err := fc.Build()
		if err != nil {
			return nil, wrapError(ErrKindConfig, err, "format %q", name)
		}
		out[name] = f
	}
	return out, nil
}

// LoadFormatsFile reads and decodes the formats document at path.
func LoadFormatsFile(path string) (map[string]CustomFormat, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, wrapError(ErrKindConfig, err, "read formats config")
	}
	defer f.Close()
	return LoadFormats(f)
}
