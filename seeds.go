package passx

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/projectdiscovery/gologger"
)

// Field tags attached to seeds, used for provenance and for
// special handling of the birth year
const (
	FieldFirstName = "first"
	FieldLastName  = "last"
	FieldNickname  = "nick"
	FieldBirthYear = "birth"
	FieldPetName   = "pet"
	FieldCompany   = "company"
	FieldExtra     = "extra"
)

// Fields holds the raw personal-data inputs for one generation run.
// Every field is optional, an empty value simply contributes no seeds.
type Fields struct {
	FirstName string
	LastName  string
	Nickname  string
	BirthYear string
	PetName   string
	Company   string
	// Extra contains free-form additional words (hobby, street, team ...)
	Extra []string
}

// Seed is a single normalized personal-data token
type Seed struct {
	Raw   string // value as entered (whitespace trimmed)
	Norm  string // lowercased form
	Field string // source field tag
}

// CollectSeeds normalizes the given fields into seed tokens.
// Empty fields are skipped, ordering follows field declaration order
// so that output stays reproducible for identical inputs.
func CollectSeeds(fields Fields) []Seed {
	type entry struct {
		tag   string
		value string
	}
	entries := []entry{
		{FieldFirstName, fields.FirstName},
		{FieldLastName, fields.LastName},
		{FieldNickname, fields.Nickname},
		{FieldBirthYear, fields.BirthYear},
		{FieldPetName, fields.PetName},
		{FieldCompany, fields.Company},
	}
	for _, w := range fields.Extra {
		entries = append(entries, entry{FieldExtra, w})
	}
	var seeds []Seed
	for _, e := range entries {
		value := strings.TrimSpace(e.value)
		if value == "" {
			continue
		}
		seeds = append(seeds, Seed{
			Raw:   value,
			Norm:  strings.ToLower(value),
			Field: e.tag,
		})
	}
	return seeds
}

// Values returns the raw non-empty field values, used as extra user
// inputs for the strength estimator.
func (f Fields) Values() []string {
	var values []string
	for _, s := range CollectSeeds(f) {
		values = append(values, s.Raw)
	}
	return values
}

// birthYear parses the birth-year seed if present. A non-numeric value
// is treated as absent with a warning since it cannot seed a year window.
func birthYear(seeds []Seed) (int, bool) {
	for _, s := range seeds {
		if s.Field != FieldBirthYear {
			continue
		}
		year, err := strconv.Atoi(s.Norm)
		if err != nil {
			gologger.Warning().Msgf("birth year %q is not numeric, skipping year variations", s.Raw)
			return 0, false
		}
		return year, true
	}
	return 0, false
}

// capitalize uppercases the first rune and lowercases the rest
func capitalize(word string) string {
	runes := []rune(word)
	if len(runes) == 0 {
		return word
	}
	runes[0] = unicode.ToUpper(runes[0])
	for i := 1; i < len(runes); i++ {
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}

// reverse returns the rune-wise reversed word
func reverse(word string) string {
	runes := []rune(word)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
