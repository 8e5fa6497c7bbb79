// Package output renders scenario previews and projection tables.
package output

import (
	"sort"
	"strings"

	"github.com/rgehrsitz/rpgo-intake/internal/domain"
	"github.com/shopspring/decimal"
)

// Formatter renders a preview in one output format.
type Formatter interface {
	Name() string
	Format(p *domain.Preview) ([]byte, error)
}

// FormatterFunc adapts a function to the Formatter interface.
type FormatterFunc struct {
	ID string
	F  func(p *domain.Preview) ([]byte, error)
}

func (f FormatterFunc) Name() string { return f.ID }

func (f FormatterFunc) Format(p *domain.Preview) ([]byte, error) { return f.F(p) }

var formatters = map[string]Formatter{}

var aliases = map[string]string{
	"text":    "console",
	"summary": "console",
	"grid":    "table",
}

func register(f Formatter) { formatters[f.Name()] = f }

func init() {
	register(ConsoleFormatter{})
	register(TableFormatter{})
	register(CSVFormatter{})
	register(JSONFormatter{})
}

// GetFormatterByName returns the formatter registered under name or one of
// its aliases, or nil.
func GetFormatterByName(name string) Formatter {
	name = strings.ToLower(strings.TrimSpace(name))
	if target, ok := aliases[name]; ok {
		name = target
	}
	return formatters[name]
}

// AvailableFormatterNames lists the registered formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(formatters))
	for n := range formatters {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases lists the accepted aliases.
func AvailableFormatAliases() []string {
	out := make([]string, 0, len(aliases))
	for a := range aliases {
		out = append(out, a)
	}
	sort.Strings(out)
	return out
}

// FormatCurrency formats a decimal as currency
func FormatCurrency(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

// FormatPercentage formats a decimal as percentage
func FormatPercentage(amount decimal.Decimal) string {
	return amount.StringFixed(2) + "%"
}

func fieldList(fields []domain.Field) string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}
