// Package airport provides the airport autocomplete directory backed by an
// embedded table of major airports.
package airport

import (
	_ "embed"
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/flight-search/flight-result-engine/internal/domain"
)

// MaxResults caps the number of airports one search returns.
const MaxResults = 15

// MinQueryLength is the shortest keyword that triggers a search.
const MinQueryLength = 2

// Match scores, highest first.
const (
	scoreExactCode     = 100
	scoreCodePrefix    = 90
	scoreExactCity     = 85
	scoreCityPrefix    = 80
	scoreCityContains  = 60
	scoreCountryPrefix = 50
	scoreNameContains  = 40
	scoreCodeContains  = 30
)

//go:embed airports.csv
var airportsCSV string

// foldPool holds transformer chains that fold case and strip accents so
// "zurich" finds "Zürich".
var foldPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFD,
			cases.Fold(),
			runes.Remove(runes.In(unicode.Mn)),
			norm.NFC,
		)
	},
}

func fold(s string) string {
	tr := foldPool.Get().(transform.Transformer)
	defer foldPool.Put(tr)

	tr.Reset()
	out, _, err := transform.String(tr, strings.TrimSpace(s))
	if err != nil {
		return strings.ToLower(strings.TrimSpace(s))
	}
	return out
}

type entry struct {
	airport domain.Airport
	code    string
	name    string
	city    string
	country string
}

// Directory answers airport lookups. It is immutable and safe for
// concurrent use.
type Directory struct {
	entries []entry
	byCode  map[string]domain.Airport
}

// NewDirectory builds a directory over airports in the given order.
func NewDirectory(airports []domain.Airport) *Directory {
	d := &Directory{
		entries: make([]entry, 0, len(airports)),
		byCode:  make(map[string]domain.Airport, len(airports)),
	}
	for _, a := range airports {
		d.entries = append(d.entries, entry{
			airport: a,
			code:    fold(a.Code),
			name:    fold(a.Name),
			city:    fold(a.City),
			country: fold(a.Country),
		})
		d.byCode[strings.ToUpper(a.Code)] = a
	}
	return d
}

// LoadDefault builds the directory from the embedded airport table.
func LoadDefault() (*Directory, error) {
	airports, err := parseCSV(strings.NewReader(airportsCSV))
	if err != nil {
		return nil, fmt.Errorf("load embedded airports: %w", err)
	}
	return NewDirectory(airports), nil
}

// Len returns the number of airports in the directory.
func (d *Directory) Len() int {
	return len(d.entries)
}

// Lookup returns the airport with the given IATA code.
func (d *Directory) Lookup(code string) (domain.Airport, bool) {
	a, ok := d.byCode[strings.ToUpper(strings.TrimSpace(code))]
	return a, ok
}

// Search returns up to MaxResults airports matching keyword, best match
// first. Matching ignores case and accents. Keywords shorter than
// MinQueryLength return nothing.
func (d *Directory) Search(keyword string) []domain.Airport {
	query := fold(keyword)
	if utf8.RuneCountInString(query) < MinQueryLength {
		return []domain.Airport{}
	}

	type scored struct {
		airport domain.Airport
		score   int
	}

	matches := make([]scored, 0)
	for _, e := range d.entries {
		if s := e.score(query); s > 0 {
			matches = append(matches, scored{airport: e.airport, score: s})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	if len(matches) > MaxResults {
		matches = matches[:MaxResults]
	}

	result := make([]domain.Airport, len(matches))
	for i, m := range matches {
		result[i] = m.airport
	}
	return result
}

// score returns the best rule an entry matches; the first rule wins.
func (e entry) score(query string) int {
	switch {
	case e.code == query:
		return scoreExactCode
	case strings.HasPrefix(e.code, query):
		return scoreCodePrefix
	case e.city == query:
		return scoreExactCity
	case strings.HasPrefix(e.city, query):
		return scoreCityPrefix
	case strings.Contains(e.city, query):
		return scoreCityContains
	case strings.HasPrefix(e.country, query):
		return scoreCountryPrefix
	case strings.Contains(e.name, query):
		return scoreNameContains
	case strings.Contains(e.code, query):
		return scoreCodeContains
	default:
		return 0
	}
}

// parseCSV reads "code,name,city,country" rows after a header line.
func parseCSV(r io.Reader) ([]domain.Airport, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 4

	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	var airports []domain.Airport
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		airports = append(airports, domain.Airport{
			Code:    rec[0],
			Name:    rec[1],
			City:    rec[2],
			Country: rec[3],
		})
	}
	return airports, nil
}
