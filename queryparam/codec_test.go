package queryparam

import (
	"net/url"
	"strings"
	"testing"

	"whey/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCodec() *Codec {
	return NewCodec(domain.DefaultFilterDomains())
}

func TestCodec_Parse_Defaults(t *testing.T) {
	codec := testCodec()

	tests := []struct {
		name string
		raw  url.Values
	}{
		{
			name: "empty map",
			raw:  url.Values{},
		},
		{
			name: "unknown keys are ignored",
			raw:  url.Values{"utm_source": {"newsletter"}, "page": {"3"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := codec.Parse(tt.raw)

			assert.False(t, result.HasInvalidParams)
			assert.Empty(t, result.CleanedParams)
			assert.True(t, result.Filters.IsDefault(codec.Domains()))
			assert.Equal(t, domain.DefaultSortBy, result.SortBy)
			assert.Equal(t, domain.DefaultSortOrder, result.SortOrder)
		})
	}
}

func TestCodec_Parse_MultiSelect(t *testing.T) {
	codec := testCodec()

	tests := []struct {
		name        string
		raw         url.Values
		wantFlavors []string
		wantInvalid bool
		wantCleaned url.Values
	}{
		{
			name:        "valid elements pass through",
			raw:         url.Values{KeyFlavor: {"chocolate", "vanilla"}},
			wantFlavors: []string{"chocolate", "vanilla"},
			wantInvalid: false,
			wantCleaned: url.Values{KeyFlavor: {"chocolate", "vanilla"}},
		},
		{
			name:        "invalid element dropped, valid kept",
			raw:         url.Values{KeyFlavor: {"chocolate", "plutonium"}},
			wantFlavors: []string{"chocolate"},
			wantInvalid: true,
			wantCleaned: url.Values{KeyFlavor: {"chocolate"}},
		},
		{
			name:        "all elements invalid",
			raw:         url.Values{KeyFlavor: {"plutonium"}},
			wantFlavors: nil,
			wantInvalid: true,
			wantCleaned: url.Values{},
		},
		{
			name:        "duplicates collapse and flag",
			raw:         url.Values{KeyFlavor: {"chocolate", "chocolate"}},
			wantFlavors: []string{"chocolate"},
			wantInvalid: true,
			wantCleaned: url.Values{KeyFlavor: {"chocolate"}},
		},
		{
			name:        "case matters",
			raw:         url.Values{KeyFlavor: {"Chocolate"}},
			wantFlavors: nil,
			wantInvalid: true,
			wantCleaned: url.Values{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := codec.Parse(tt.raw)

			assert.Equal(t, tt.wantFlavors, result.Filters.Flavors)
			assert.Equal(t, tt.wantInvalid, result.HasInvalidParams)
			assert.Equal(t, tt.wantCleaned, result.CleanedParams)
		})
	}
}

func TestCodec_Parse_PackageRequiresPowderForm(t *testing.T) {
	codec := testCodec()

	tests := []struct {
		name         string
		raw          url.Values
		wantPackages []string
		wantInvalid  bool
	}{
		{
			name:         "package with powder form survives",
			raw:          url.Values{KeyForm: {"powder"}, KeyPackage: {"tub"}},
			wantPackages: []string{"tub"},
			wantInvalid:  false,
		},
		{
			name:         "package without any form is dropped",
			raw:          url.Values{KeyPackage: {"tub"}},
			wantPackages: nil,
			wantInvalid:  true,
		},
		{
			name:         "package with non-powder form is dropped",
			raw:          url.Values{KeyForm: {"bar"}, KeyPackage: {"tub"}},
			wantPackages: nil,
			wantInvalid:  true,
		},
		{
			name:         "powder among several forms keeps packages",
			raw:          url.Values{KeyForm: {"bar", "powder"}, KeyPackage: {"pouch", "stick"}},
			wantPackages: []string{"pouch", "stick"},
			wantInvalid:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := codec.Parse(tt.raw)

			assert.Equal(t, tt.wantPackages, result.Filters.PackageTypes)
			assert.Equal(t, tt.wantInvalid, result.HasInvalidParams)
			if tt.wantInvalid {
				assert.NotContains(t, result.CleanedParams, KeyPackage)
			}
		})
	}
}

func TestCodec_Parse_Ranges(t *testing.T) {
	codec := testCodec()
	proteinDomain := codec.Domains().Protein

	tests := []struct {
		name        string
		raw         url.Values
		wantRange   domain.IntRange
		wantInvalid bool
		wantCleaned url.Values
	}{
		{
			name:        "bounds inside domain pass through",
			raw:         url.Values{KeyProteinMin: {"10"}, KeyProteinMax: {"30"}},
			wantRange:   domain.IntRange{Min: 10, Max: 30},
			wantInvalid: false,
			wantCleaned: url.Values{KeyProteinMin: {"10"}, KeyProteinMax: {"30"}},
		},
		{
			name:        "max above domain falls back to domain max",
			raw:         url.Values{KeyProteinMax: {"9999"}},
			wantRange:   proteinDomain.Full(),
			wantInvalid: true,
			wantCleaned: url.Values{},
		},
		{
			name:        "min below domain falls back to domain min",
			raw:         url.Values{KeyProteinMin: {"-5"}},
			wantRange:   proteinDomain.Full(),
			wantInvalid: true,
			wantCleaned: url.Values{},
		},
		{
			name:        "non-numeric bound falls back",
			raw:         url.Values{KeyProteinMin: {"abc"}},
			wantRange:   proteinDomain.Full(),
			wantInvalid: true,
			wantCleaned: url.Values{},
		},
		{
			name:        "crossed bounds reset the whole interval",
			raw:         url.Values{KeyProteinMin: {"30"}, KeyProteinMax: {"10"}},
			wantRange:   proteinDomain.Full(),
			wantInvalid: true,
			wantCleaned: url.Values{},
		},
		{
			name:        "bound equal to default is not echoed",
			raw:         url.Values{KeyProteinMin: {"0"}, KeyProteinMax: {"25"}},
			wantRange:   domain.IntRange{Min: 0, Max: 25},
			wantInvalid: false,
			wantCleaned: url.Values{KeyProteinMax: {"25"}},
		},
		{
			name:        "degenerate single-value interval is valid",
			raw:         url.Values{KeyProteinMin: {"20"}, KeyProteinMax: {"20"}},
			wantRange:   domain.IntRange{Min: 20, Max: 20},
			wantInvalid: false,
			wantCleaned: url.Values{KeyProteinMin: {"20"}, KeyProteinMax: {"20"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := codec.Parse(tt.raw)

			assert.Equal(t, tt.wantRange, result.Filters.ProteinRange)
			assert.Equal(t, tt.wantInvalid, result.HasInvalidParams)
			assert.Equal(t, tt.wantCleaned, result.CleanedParams)
		})
	}
}

func TestCodec_Parse_SearchQuery(t *testing.T) {
	codec := testCodec()

	tests := []struct {
		name        string
		rawQuery    string
		wantQuery   string
		wantInvalid bool
	}{
		{
			name:        "plain text passes through",
			rawQuery:    "chocolate isolate",
			wantQuery:   "chocolate isolate",
			wantInvalid: false,
		},
		{
			name:        "surrounding whitespace is trimmed",
			rawQuery:    "  vanilla  ",
			wantQuery:   "vanilla",
			wantInvalid: true,
		},
		{
			name:        "markup is stripped, text kept",
			rawQuery:    "protein <b>blend</b>",
			wantQuery:   "protein blend",
			wantInvalid: true,
		},
		{
			name:        "script element vanishes entirely",
			rawQuery:    "<script>alert(1)</script>",
			wantQuery:   "",
			wantInvalid: true,
		},
		{
			name:        "escaped markup cannot smuggle tags through",
			rawQuery:    "&lt;script&gt;alert(1)&lt;/script&gt;",
			wantQuery:   "",
			wantInvalid: true,
		},
		{
			name:        "overlong input truncates to the rune cap",
			rawQuery:    strings.Repeat("a", 150),
			wantQuery:   strings.Repeat("a", MaxQueryLength),
			wantInvalid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := codec.Parse(url.Values{KeyQuery: {tt.rawQuery}})

			assert.Equal(t, tt.wantQuery, result.Filters.SearchQuery)
			assert.Equal(t, tt.wantInvalid, result.HasInvalidParams)
			if tt.wantQuery == "" {
				assert.NotContains(t, result.CleanedParams, KeyQuery)
			} else {
				assert.Equal(t, tt.wantQuery, result.CleanedParams.Get(KeyQuery))
			}
		})
	}
}

func TestCodec_Parse_Sort(t *testing.T) {
	codec := testCodec()

	tests := []struct {
		name        string
		raw         url.Values
		wantSortBy  domain.SortBy
		wantOrder   domain.SortOrder
		wantInvalid bool
		wantCleaned url.Values
	}{
		{
			name:        "valid sort echoes only non-defaults",
			raw:         url.Values{KeySort: {"protein"}, KeyOrder: {"desc"}},
			wantSortBy:  domain.SortByProtein,
			wantOrder:   domain.SortOrderDesc,
			wantInvalid: false,
			wantCleaned: url.Values{KeySort: {"protein"}},
		},
		{
			name:        "unknown sort column falls back",
			raw:         url.Values{KeySort: {"relevance"}},
			wantSortBy:  domain.DefaultSortBy,
			wantOrder:   domain.DefaultSortOrder,
			wantInvalid: true,
			wantCleaned: url.Values{},
		},
		{
			name:        "unknown order falls back, sort kept",
			raw:         url.Values{KeySort: {"name"}, KeyOrder: {"sideways"}},
			wantSortBy:  domain.SortByName,
			wantOrder:   domain.DefaultSortOrder,
			wantInvalid: true,
			wantCleaned: url.Values{KeySort: {"name"}},
		},
		{
			name:        "ascending order on default column is echoed",
			raw:         url.Values{KeyOrder: {"asc"}},
			wantSortBy:  domain.DefaultSortBy,
			wantOrder:   domain.SortOrderAsc,
			wantInvalid: false,
			wantCleaned: url.Values{KeyOrder: {"asc"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := codec.Parse(tt.raw)

			assert.Equal(t, tt.wantSortBy, result.SortBy)
			assert.Equal(t, tt.wantOrder, result.SortOrder)
			assert.Equal(t, tt.wantInvalid, result.HasInvalidParams)
			assert.Equal(t, tt.wantCleaned, result.CleanedParams)
		})
	}
}

// Re-decoding a cleaned map must be stable, otherwise the corrective
// redirect would loop forever.
func TestCodec_Parse_CleanedMapIsStable(t *testing.T) {
	codec := testCodec()

	inputs := []url.Values{
		{KeyFlavor: {"chocolate", "plutonium"}},
		{KeyPackage: {"tub"}},
		{KeyForm: {"bar"}, KeyPackage: {"tub", "pouch"}},
		{KeyProteinMax: {"9999"}, KeyCalorieMin: {"-1"}},
		{KeyProteinMin: {"30"}, KeyProteinMax: {"10"}},
		{KeyQuery: {"  <b>whey</b>  "}},
		{KeyQuery: {"&lt;script&gt;alert(1)&lt;/script&gt;"}},
		{KeySort: {"relevance"}, KeyOrder: {"asc"}},
		{
			KeyFlavor:     {"matcha", "matcha", "vanilla"},
			KeyForm:       {"powder"},
			KeyPackage:    {"tub"},
			KeyProteinMin: {"20"},
			KeySugarMax:   {"500"},
			KeyQuery:      {" isolate "},
			KeySort:       {"calories"},
		},
	}

	for _, raw := range inputs {
		t.Run(raw.Encode(), func(t *testing.T) {
			first := codec.Parse(raw)
			require.True(t, first.HasInvalidParams)

			second := codec.Parse(first.CleanedParams)
			assert.False(t, second.HasInvalidParams)
			assert.Equal(t, first.CleanedParams, second.CleanedParams)
			assert.Equal(t, first.Filters, second.Filters)
			assert.Equal(t, first.SortBy, second.SortBy)
			assert.Equal(t, first.SortOrder, second.SortOrder)
		})
	}
}

func TestCodec_Encode_DefaultStateIsEmpty(t *testing.T) {
	codec := testCodec()

	params := codec.Encode(domain.DefaultFilterState(codec.Domains()), domain.DefaultSortBy, domain.DefaultSortOrder)

	assert.Empty(t, params)
}

func TestCodec_EncodeParseRoundTrip(t *testing.T) {
	codec := testCodec()

	states := []struct {
		name      string
		filters   domain.FilterState
		sortBy    domain.SortBy
		sortOrder domain.SortOrder
	}{
		{
			name: "multi-select and ranges",
			filters: func() domain.FilterState {
				f := domain.DefaultFilterState(codec.Domains())
				f.Flavors = []string{"chocolate", "matcha"}
				f.ProteinTypes = []string{"wpi"}
				f.ProteinRange = domain.IntRange{Min: 20, Max: 35}
				return f
			}(),
			sortBy:    domain.SortByProtein,
			sortOrder: domain.SortOrderAsc,
		},
		{
			name: "powder form with packages and query",
			filters: func() domain.FilterState {
				f := domain.DefaultFilterState(codec.Domains())
				f.Forms = []string{"powder"}
				f.PackageTypes = []string{"tub", "pouch"}
				f.SearchQuery = "unflavored isolate"
				return f
			}(),
			sortBy:    domain.DefaultSortBy,
			sortOrder: domain.DefaultSortOrder,
		},
	}

	for _, tt := range states {
		t.Run(tt.name, func(t *testing.T) {
			encoded := codec.Encode(tt.filters, tt.sortBy, tt.sortOrder)
			result := codec.Parse(encoded)

			assert.False(t, result.HasInvalidParams)
			assert.Equal(t, tt.filters, result.Filters)
			assert.Equal(t, tt.sortBy, result.SortBy)
			assert.Equal(t, tt.sortOrder, result.SortOrder)
			assert.Equal(t, encoded, result.CleanedParams)
		})
	}
}

// Narrower configured domains change what counts as out-of-range.
func TestCodec_Parse_CustomDomains(t *testing.T) {
	domains := domain.DefaultFilterDomains()
	domains.Protein = domain.RangeDomain{Min: 15, Max: 30}
	codec := NewCodec(domains)

	result := codec.Parse(url.Values{KeyProteinMin: {"10"}, KeyProteinMax: {"25"}})

	assert.True(t, result.HasInvalidParams)
	assert.Equal(t, domain.IntRange{Min: 15, Max: 25}, result.Filters.ProteinRange)
	assert.Equal(t, url.Values{KeyProteinMax: {"25"}}, result.CleanedParams)
}
