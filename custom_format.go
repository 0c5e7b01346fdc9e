package numfmt

// CustomFormat is a Format with caller-chosen symbols. Build one with a
// Builder so that every string is checked against its limit.
type CustomFormat struct {
	decimal   string
	grouping  Grouping
	infinity  string
	minusSign string
	nan       string
	plusSign  string
	separator string
}

// Decimal and the getters below implement Format.
func (c CustomFormat) Decimal() string    { return c.decimal }
func (c CustomFormat) Grouping() Grouping { return c.grouping }
func (c CustomFormat) Infinity() string   { return c.infinity }
func (c CustomFormat) MinusSign() string  { return c.minusSign }
func (c CustomFormat) NaN() string        { return c.nan }
func (c CustomFormat) PlusSign() string   { return c.plusSign }
func (c CustomFormat) Separator() string  { return c.separator }

// Builder returns a Builder seeded with c.
func (c CustomFormat) Builder() *Builder {
	return &Builder{f: c}
}

// Builder assembles a CustomFormat. Setters never fail; Build validates.
type Builder struct {
	f CustomFormat
}

// NewBuilder returns a Builder seeded with the EN symbols.
func NewBuilder() *Builder {
	return new(Builder).Format(EN)
}

// Format copies every symbol of f into the builder.
func (b *Builder) Format(f Format) *Builder {
	b.f = CustomFormat{
		decimal:   f.Decimal(),
		grouping:  f.Grouping(),
		infinity:  f.Infinity(),
		minusSign: f.MinusSign(),
		nan:       f.NaN(),
		plusSign:  f.PlusSign(),
		separator: f.Separator(),
	}
	return b
}

// Decimal sets the decimal point.
func (b *Builder) Decimal(s string) *Builder {
	b.f.decimal = s
	return b
}

// Grouping sets the grouping style.
func (b *Builder) Grouping(g Grouping) *Builder {
	b.f.grouping = g
	return b
}

// Infinity sets the text written for infinity.
func (b *Builder) Infinity(s string) *Builder {
	b.f.infinity = s
	return b
}

// MinusSign sets the minus sign.
func (b *Builder) MinusSign(s string) *Builder {
	b.f.minusSign = s
	return b
}

// NaN sets the text written for NaN.
func (b *Builder) NaN(s string) *Builder {
	b.f.nan = s
	return b
}

// PlusSign sets the plus sign.
func (b *Builder) PlusSign(s string) *Builder {
	b.f.plusSign = s
	return b
}

// Separator sets the grouping separator.
func (b *Builder) Separator(s string) *Builder {
	b.f.separator = s
	return b
}

// Build checks every string against its Max*Len limit and the grouping
// against the known styles. The first violation is returned as an
// ErrCapacity or ErrConfig error.
func (b *Builder) Build() (CustomFormat, error) {
	f := b.f
	checks := [...]struct {
		field string
		value string
		limit int
	}{
		{"decimal", f.decimal, MaxDecimalLen},
		{"infinity", f.infinity, MaxInfinityLen},
		{"minus sign", f.minusSign, MaxMinusSignLen},
		{"nan", f.nan, MaxNaNLen},
		{"plus sign", f.plusSign, MaxPlusSignLen},
		{"separator", f.separator, MaxSeparatorLen},
	}
	for _, c := range checks {
		if err := checkLen(c.field, c.value, c.limit); err != nil {
			return CustomFormat{}, err
		}
	}
	if f.grouping > Indian {
		return CustomFormat{}, newError(ErrKindConfig, "unknown grouping %d", int(f.grouping))
	}
	return f, nil
}
