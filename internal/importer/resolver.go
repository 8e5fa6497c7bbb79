package importer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Section is the part of the sheet a row was read under.
type Section int

const (
	SectionNone Section = iota
	SectionBalance
	SectionAllocation
)

func (s Section) String() string {
	switch s {
	case SectionBalance:
		return "balance"
	case SectionAllocation:
		return "allocation"
	default:
		return "none"
	}
}

var (
	balanceKeywords    = []string{"balance", "by fund", "current balance"}
	allocationKeywords = []string{"allocation", "future contribution", "in percentages"}
)

// RowEntry is one labeled sheet row, captured with the section active when
// it was read. Value is the trimmed text of the value cell; Raw keeps the
// cell as read, a float64 for numeric cells and a string otherwise.
type RowEntry struct {
	Row     int
	Key     string
	Label   string
	Value   string
	Raw     any
	Section Section
}

// BuildEntries folds text-only sheet rows into RowEntries.
func BuildEntries(rows [][]string) []RowEntry {
	return BuildCellEntries(textCells(rows))
}

// BuildCellEntries folds sheet rows into RowEntries. The section carried
// forward changes whenever a label mentions a balance or allocation keyword;
// the allocation check runs last and wins when both match.
func BuildCellEntries(rows [][]any) []RowEntry {
	entries := make([]RowEntry, 0, len(rows))
	section := SectionNone

	for i, row := range rows {
		labelCol := firstNonEmpty(row, 0)
		if labelCol < 0 {
			continue
		}
		label := strings.TrimSpace(cellText(row[labelCol]))
		key := NormalizeLabel(label)

		if containsAny(key, balanceKeywords) {
			section = SectionBalance
		}
		if containsAny(key, allocationKeywords) {
			section = SectionAllocation
		}

		entry := RowEntry{
			Row:     i + 1,
			Key:     key,
			Label:   label,
			Section: section,
		}
		if valueCol := firstNonEmpty(row, labelCol+1); valueCol >= 0 {
			entry.Raw = row[valueCol]
			entry.Value = strings.TrimSpace(cellText(row[valueCol]))
			if text, ok := entry.Raw.(string); ok {
				entry.Raw = strings.TrimSpace(text)
			}
		}
		entries = append(entries, entry)
	}
	return entries
}

func textCells(rows [][]string) [][]any {
	out := make([][]any, len(rows))
	for i, row := range rows {
		out[i] = make([]any, len(row))
		for j, c := range row {
			out[i][j] = c
		}
	}
	return out
}

func firstNonEmpty(row []any, from int) int {
	for i := from; i < len(row); i++ {
		if strings.TrimSpace(cellText(row[i])) != "" {
			return i
		}
	}
	return -1
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// Resolver answers label lookups over one import's entries. It holds no state
// beyond the entries it was built from, so each import gets its own.
type Resolver struct {
	entries []RowEntry
}

// NewResolver builds a Resolver from text-only sheet rows.
func NewResolver(rows [][]string) *Resolver {
	return &Resolver{entries: BuildEntries(rows)}
}

// NewCellResolver builds a Resolver from typed sheet cells.
func NewCellResolver(rows [][]any) *Resolver {
	return &Resolver{entries: BuildCellEntries(rows)}
}

// Entries returns the captured rows.
func (r *Resolver) Entries() []RowEntry {
	return r.entries
}

// Find returns the value of the first row whose label equals label.
func (r *Resolver) Find(label string) (string, bool) {
	e, ok := r.FindEntry(label)
	return e.Value, ok
}

// FindEntry is Find returning the whole row.
func (r *Resolver) FindEntry(label string) (RowEntry, bool) {
	q := NormalizeLabel(label)
	for _, e := range r.entries {
		if e.Key == q {
			return e, true
		}
	}
	return RowEntry{}, false
}

// FindPartial returns the value of the first row whose label contains label.
func (r *Resolver) FindPartial(label string) (string, bool) {
	e, ok := r.FindPartialEntry(label)
	return e.Value, ok
}

// FindPartialEntry is FindPartial returning the whole row.
func (r *Resolver) FindPartialEntry(label string) (RowEntry, bool) {
	q := NormalizeLabel(label)
	if q == "" {
		return RowEntry{}, false
	}
	for _, e := range r.entries {
		if strings.Contains(e.Key, q) {
			return e, true
		}
	}
	return RowEntry{}, false
}

// FindFund resolves a fund row that may appear under both the balance and the
// allocation sections. Context-correct matches are preferred; without one, a
// label that is unique in the whole sheet is accepted.
func (r *Resolver) FindFund(letter string, section Section) (string, bool) {
	e, ok := r.FindFundEntry(letter, section)
	return e.Value, ok
}

// FindFundEntry is FindFund returning the whole row.
func (r *Resolver) FindFundEntry(letter string, section Section) (RowEntry, bool) {
	q := NormalizeLabel(letter)
	if q == "" {
		return RowEntry{}, false
	}
	exact := func(e RowEntry) bool { return e.Key == q }
	prefix := func(e RowEntry) bool { return hasWordPrefix(e.Key, q) }

	if e, ok := r.first(exact, section); ok {
		return e, true
	}
	if e, ok := r.first(prefix, section); ok {
		return e, true
	}
	if e, ok := r.only(exact); ok {
		return e, true
	}
	return r.only(prefix)
}

func (r *Resolver) first(match func(RowEntry) bool, section Section) (RowEntry, bool) {
	for _, e := range r.entries {
		if e.Section == section && match(e) {
			return e, true
		}
	}
	return RowEntry{}, false
}

func (r *Resolver) only(match func(RowEntry) bool) (RowEntry, bool) {
	var found RowEntry
	n := 0
	for _, e := range r.entries {
		if match(e) {
			found = e
			n++
		}
	}
	if n != 1 {
		return RowEntry{}, false
	}
	return found, true
}

// hasWordPrefix reports whether key starts with q and q is not merely the
// start of a longer word: "c fund" matches "c", "current balance" does not.
func hasWordPrefix(key, q string) bool {
	if !strings.HasPrefix(key, q) {
		return false
	}
	if len(key) == len(q) {
		return true
	}
	next, _ := utf8.DecodeRuneInString(key[len(q):])
	return !unicode.IsLetter(next) && !unicode.IsDigit(next)
}
