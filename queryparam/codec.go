// Package queryparam converts between the discovery filter state and the
// flat parameter map carried by a shareable URL. Decoding repairs malformed
// input instead of rejecting it: invalid elements are dropped, out-of-domain
// bounds fall back to defaults, and the caller is told whether the original
// map needs a corrective redirect.
package queryparam

import (
	"html"
	"net/url"
	"strconv"
	"strings"

	"whey/domain"

	"github.com/microcosm-cc/bluemonday"
)

// MaxQueryLength caps the free-text filter, in runes.
const MaxQueryLength = 100

// Wire keys of the shareable parameter surface.
const (
	KeyFlavor      = "flavor"
	KeyProteinType = "type"
	KeyForm        = "form"
	KeyPackage     = "package"
	KeyProteinMin  = "protein_min"
	KeyProteinMax  = "protein_max"
	KeyCalorieMin  = "calorie_min"
	KeyCalorieMax  = "calorie_max"
	KeyCarbMin     = "carb_min"
	KeyCarbMax     = "carb_max"
	KeySugarMin    = "sugar_min"
	KeySugarMax    = "sugar_max"
	KeyQuery       = "q"
	KeySort        = "sort"
	KeyOrder       = "order"
)

// ParseResult is the outcome of decoding a raw parameter map.
//
// CleanedParams is the minimal canonical map that represents the same
// resolved state. When HasInvalidParams is true the caller must replace the
// current location with one built from CleanedParams before rendering;
// re-decoding CleanedParams always yields HasInvalidParams == false, so the
// corrective redirect cannot loop.
type ParseResult struct {
	Filters          domain.FilterState
	SortBy           domain.SortBy
	SortOrder        domain.SortOrder
	HasInvalidParams bool
	CleanedParams    url.Values
}

// Codec encodes and decodes filter/sort state against a fixed set of
// range domains and category vocabularies.
type Codec struct {
	domains   domain.FilterDomains
	sanitizer *bluemonday.Policy
}

func NewCodec(domains domain.FilterDomains) *Codec {
	return &Codec{
		domains:   domains,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

func (c *Codec) Domains() domain.FilterDomains {
	return c.domains
}

// Parse decodes a raw parameter map into fully resolved filter and sort
// state. Unknown keys are ignored; they carry no state and are not echoed.
func (c *Codec) Parse(raw url.Values) ParseResult {
	result := ParseResult{
		Filters:       domain.DefaultFilterState(c.domains),
		SortBy:        domain.DefaultSortBy,
		SortOrder:     domain.DefaultSortOrder,
		CleanedParams: url.Values{},
	}
	invalid := false

	result.Filters.Flavors = c.parseCodes(raw, KeyFlavor, domain.FlavorCodes, &invalid, result.CleanedParams)
	result.Filters.ProteinTypes = c.parseCodes(raw, KeyProteinType, domain.ProteinTypeCodes, &invalid, result.CleanedParams)
	result.Filters.Forms = c.parseCodes(raw, KeyForm, domain.FormCodes, &invalid, result.CleanedParams)
	result.Filters.PackageTypes = c.parseCodes(raw, KeyPackage, domain.PackageTypeCodes, &invalid, result.CleanedParams)

	// Package types are only meaningful while the powder form is selected.
	if len(result.Filters.PackageTypes) > 0 && !domain.IsValidCode(result.Filters.Forms, domain.FormPowder) {
		result.Filters.PackageTypes = nil
		result.CleanedParams.Del(KeyPackage)
		invalid = true
	}

	result.Filters.ProteinRange = c.parseRange(raw, KeyProteinMin, KeyProteinMax, c.domains.Protein, &invalid, result.CleanedParams)
	result.Filters.CaloriesRange = c.parseRange(raw, KeyCalorieMin, KeyCalorieMax, c.domains.Calories, &invalid, result.CleanedParams)
	result.Filters.CarbsRange = c.parseRange(raw, KeyCarbMin, KeyCarbMax, c.domains.Carbs, &invalid, result.CleanedParams)
	result.Filters.SugarRange = c.parseRange(raw, KeySugarMin, KeySugarMax, c.domains.Sugar, &invalid, result.CleanedParams)

	result.Filters.SearchQuery = c.parseQuery(raw, &invalid, result.CleanedParams)
	result.SortBy, result.SortOrder = c.parseSort(raw, &invalid, result.CleanedParams)

	result.HasInvalidParams = invalid
	return result
}

// parseCodes validates every element of a repeatable multi-select parameter
// against its vocabulary. Valid elements are kept, invalid ones and
// duplicates are dropped and flagged.
func (c *Codec) parseCodes(raw url.Values, key string, vocabulary []string, invalid *bool, cleaned url.Values) []string {
	values, ok := raw[key]
	if !ok {
		return nil
	}

	var kept []string
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		if !domain.IsValidCode(vocabulary, v) || seen[v] {
			*invalid = true
			continue
		}
		seen[v] = true
		kept = append(kept, v)
	}

	if len(kept) > 0 {
		cleaned[key] = append([]string(nil), kept...)
	} else if len(values) > 0 {
		// Key was present but nothing survived validation.
		*invalid = true
	}
	return kept
}

// parseRange resolves one closed interval from its two bound parameters.
// A bound that fails to parse or escapes the domain falls back to the
// default bound. If the repaired bounds cross, the whole interval resets
// to the domain.
func (c *Codec) parseRange(raw url.Values, minKey, maxKey string, dom domain.RangeDomain, invalid *bool, cleaned url.Values) domain.IntRange {
	r := dom.Full()
	minRaw, minOK := c.parseBound(raw, minKey, dom, dom.Min, invalid)
	maxRaw, maxOK := c.parseBound(raw, maxKey, dom, dom.Max, invalid)
	if minOK {
		r.Min = minRaw.value
	}
	if maxOK {
		r.Max = maxRaw.value
	}

	if r.Min > r.Max {
		*invalid = true
		return dom.Full()
	}

	// Asymmetric canonicalization: a bound equal to its default stays
	// invisible in the cleaned map.
	if minOK && r.Min != dom.Min {
		cleaned.Set(minKey, minRaw.echo)
	}
	if maxOK && r.Max != dom.Max {
		cleaned.Set(maxKey, maxRaw.echo)
	}
	return r
}

type parsedBound struct {
	value int
	echo  string
}

func (c *Codec) parseBound(raw url.Values, key string, dom domain.RangeDomain, fallback int, invalid *bool) (parsedBound, bool) {
	if !raw.Has(key) {
		return parsedBound{}, false
	}
	s := raw.Get(key)
	v, err := strconv.Atoi(s)
	if err != nil || !dom.Contains(v) {
		*invalid = true
		return parsedBound{value: fallback, echo: strconv.Itoa(fallback)}, true
	}
	return parsedBound{value: v, echo: s}, true
}

// parseQuery strips markup, trims, and truncates the free-text filter.
// Sanitized output is unescaped back to plain text so that repeated passes
// are stable.
func (c *Codec) parseQuery(raw url.Values, invalid *bool, cleaned url.Values) string {
	if !raw.Has(KeyQuery) {
		return ""
	}
	original := raw.Get(KeyQuery)
	q := c.sanitizeQuery(original)

	if q != original {
		*invalid = true
	}
	if q != "" {
		cleaned.Set(KeyQuery, q)
	} else if original != "" {
		*invalid = true
	}
	return q
}

// sanitizeQuery runs strip-trim-truncate to a fixed point. A single pass is
// not enough: unescaping a sanitized value can reintroduce markup
// ("&lt;script&gt;" becomes "<script>"), and truncation can expose trailing
// whitespace. The cleaned value must survive a re-decode unchanged or the
// corrective redirect would loop.
func (c *Codec) sanitizeQuery(s string) string {
	for i := 0; i < 8; i++ {
		next := html.UnescapeString(c.sanitizer.Sanitize(s))
		next = strings.TrimSpace(next)
		if runes := []rune(next); len(runes) > MaxQueryLength {
			next = strings.TrimSpace(string(runes[:MaxQueryLength]))
		}
		if next == s {
			break
		}
		s = next
	}
	return s
}

func (c *Codec) parseSort(raw url.Values, invalid *bool, cleaned url.Values) (domain.SortBy, domain.SortOrder) {
	sortBy := domain.DefaultSortBy
	sortOrder := domain.DefaultSortOrder

	if raw.Has(KeySort) {
		if s := raw.Get(KeySort); domain.ValidSortBy(s) {
			sortBy = domain.SortBy(s)
		} else {
			*invalid = true
		}
	}
	if raw.Has(KeyOrder) {
		if s := raw.Get(KeyOrder); domain.ValidSortOrder(s) {
			sortOrder = domain.SortOrder(s)
		} else {
			*invalid = true
		}
	}

	if sortBy != domain.DefaultSortBy {
		cleaned.Set(KeySort, string(sortBy))
	}
	if sortOrder != domain.DefaultSortOrder {
		cleaned.Set(KeyOrder, string(sortOrder))
	}
	return sortBy, sortOrder
}

// Encode produces the minimal parameter map for a resolved state. It is the
// left inverse of Parse's canonicalization: Parse(Encode(s)).CleanedParams
// equals Encode(s) for every reachable state, and the default state encodes
// to an empty map.
func (c *Codec) Encode(filters domain.FilterState, sortBy domain.SortBy, sortOrder domain.SortOrder) url.Values {
	params := url.Values{}

	encodeCodes(params, KeyFlavor, filters.Flavors)
	encodeCodes(params, KeyProteinType, filters.ProteinTypes)
	encodeCodes(params, KeyForm, filters.Forms)
	encodeCodes(params, KeyPackage, filters.PackageTypes)

	encodeRange(params, KeyProteinMin, KeyProteinMax, filters.ProteinRange, c.domains.Protein)
	encodeRange(params, KeyCalorieMin, KeyCalorieMax, filters.CaloriesRange, c.domains.Calories)
	encodeRange(params, KeyCarbMin, KeyCarbMax, filters.CarbsRange, c.domains.Carbs)
	encodeRange(params, KeySugarMin, KeySugarMax, filters.SugarRange, c.domains.Sugar)

	if filters.SearchQuery != "" {
		params.Set(KeyQuery, filters.SearchQuery)
	}
	if sortBy != domain.DefaultSortBy {
		params.Set(KeySort, string(sortBy))
	}
	if sortOrder != domain.DefaultSortOrder {
		params.Set(KeyOrder, string(sortOrder))
	}
	return params
}

func encodeCodes(params url.Values, key string, codes []string) {
	if len(codes) == 0 {
		return
	}
	params[key] = append([]string(nil), codes...)
}

func encodeRange(params url.Values, minKey, maxKey string, r domain.IntRange, dom domain.RangeDomain) {
	if r.Min != dom.Min {
		params.Set(minKey, strconv.Itoa(r.Min))
	}
	if r.Max != dom.Max {
		params.Set(maxKey, strconv.Itoa(r.Max))
	}
}
