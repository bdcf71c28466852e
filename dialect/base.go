package dialect

import (
	"errors"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/syssam/persist"
	"github.com/syssam/persist/schema"
)

const (
	notNull      = "not null"
	primaryKey   = "primary key"
	generatedBy  = "generated by default as "
	autoIncrease = "auto_increment"
)

// GenerationFunc renders the key-generation clause of a generated id column.
// An empty result renders no clause.
type GenerationFunc func(g schema.GenerationType) string

// GeneratedByDefault renders "generated by default as <strategy>", with the
// strategy name lower-cased.
func GeneratedByDefault(g schema.GenerationType) string {
	// Casers are stateful and must not be shared between goroutines.
	return generatedBy + cases.Lower(language.Und).String(g.String())
}

// AutoIncrement renders "auto_increment" for every strategy.
func AutoIncrement(schema.GenerationType) string {
	return autoIncrease
}

// NoGeneration renders no generation clause.
func NoGeneration(schema.GenerationType) string {
	return ""
}

// Base is the shared Dialect implementation. Concrete dialects configure it
// with their type table and options instead of overriding methods.
type Base struct {
	name       string
	types      *TypeTable
	tokens     Tokens
	generation GenerationFunc
	escape     Escaper
}

// Option configures a Base dialect.
type Option func(*Base)

// WithTokens sets the structural tokens of the dialect.
func WithTokens(t Tokens) Option {
	return func(b *Base) {
		b.tokens = t
	}
}

// WithGeneration sets the generation clause renderer.
// Default is GeneratedByDefault.
func WithGeneration(fn GenerationFunc) Option {
	return func(b *Base) {
		b.generation = fn
	}
}

// WithEscaper sets the string literal escaper.
// Default is EscapeQuotes.
func WithEscaper(esc Escaper) Option {
	return func(b *Base) {
		b.escape = esc
	}
}

// New returns a Base dialect with the given name and type table.
func New(name string, types *TypeTable, opts ...Option) *Base {
	b := &Base{
		name:       name,
		types:      types,
		tokens:     DefaultTokens(),
		generation: GeneratedByDefault,
		escape:     EscapeQuotes,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Name implements the Dialect interface.
func (b *Base) Name() string { return b.name }

// Tokens implements the Dialect interface.
func (b *Base) Tokens() Tokens { return b.tokens }

// Types returns the type mapping table of the dialect.
func (b *Base) Types() *TypeTable { return b.types }

// ColumnClause implements the Dialect interface. The clause is assembled as
// name, type (with extension for variable-width types), generation clause
// for generated ids, "not null" when required and a trailing separator.
func (b *Base) ColumnClause(c *schema.EntityColumn) (string, error) {
	ct, err := b.types.Resolve(c.Type())
	if err != nil {
		var ute *persist.UnsupportedTypeError
		if errors.As(err, &ute) {
			ute.Column = c.Name
		}
		return "", err
	}
	var sb strings.Builder
	sb.WriteString(c.Name)
	sb.WriteString(b.tokens.Space)
	sb.WriteString(ct.Render(c))
	if c.ID && c.Generated() {
		if clause := b.generation(c.Generation); clause != "" {
			sb.WriteString(b.tokens.Space)
			sb.WriteString(clause)
		}
	}
	if requiresNotNull(c) {
		sb.WriteString(b.tokens.Space)
		sb.WriteString(notNull)
	}
	sb.WriteString(b.tokens.Separator())
	return sb.String(), nil
}

// requiresNotNull reports if "not null" is rendered for the column: either a
// manually assigned primary key, or an explicit non-nullable constraint. The
// two checks are independent; a generated id only gets "not null" through
// the explicit constraint.
func requiresNotNull(c *schema.EntityColumn) bool {
	return (c.ID && !c.Generated()) || c.NotNull()
}

// PrimaryKeyClause implements the Dialect interface.
func (b *Base) PrimaryKeyClause(c *schema.EntityColumn) string {
	return primaryKey + b.tokens.Space + b.tokens.OpenParen + c.Name + b.tokens.CloseParen
}

// Literal implements the Dialect interface.
func (b *Base) Literal(c *schema.EntityColumn, v any) (string, error) {
	if v == nil {
		return b.tokens.Null, nil
	}
	lit, err := FormatLiteral(c, v, b.escape)
	if err != nil {
		var ute *persist.UnsupportedTypeError
		if errors.As(err, &ute) {
			ute.Dialect, ute.Column = b.name, c.Name
		}
		return "", err
	}
	return lit, nil
}

var _ Dialect = (*Base)(nil)
