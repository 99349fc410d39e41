package domain

// IntRange is a closed interval over integer nutrition values.
type IntRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// RangeDomain is the absolute bound for one nutrition range filter.
// A FilterState range must always satisfy Domain.Min <= Min <= Max <= Domain.Max.
type RangeDomain struct {
	Min int
	Max int
}

// Contains reports whether v falls inside the domain.
func (d RangeDomain) Contains(v int) bool {
	return v >= d.Min && v <= d.Max
}

// Full returns the widest range the domain allows.
func (d RangeDomain) Full() IntRange {
	return IntRange{Min: d.Min, Max: d.Max}
}

// FilterDomains carries the configured absolute bounds for every range filter.
type FilterDomains struct {
	Protein  RangeDomain
	Calories RangeDomain
	Carbs    RangeDomain
	Sugar    RangeDomain
}

// DefaultFilterDomains returns the production bounds for the supplement catalog.
func DefaultFilterDomains() FilterDomains {
	return FilterDomains{
		Protein:  RangeDomain{Min: 0, Max: 40},
		Calories: RangeDomain{Min: 0, Max: 500},
		Carbs:    RangeDomain{Min: 0, Max: 50},
		Sugar:    RangeDomain{Min: 0, Max: 30},
	}
}

// FilterState is the canonical representation of all discovery constraints.
// Each user action replaces the whole state; fields are never mutated in place.
type FilterState struct {
	Flavors       []string `json:"flavors"`
	ProteinTypes  []string `json:"protein_types"`
	Forms         []string `json:"forms"`
	PackageTypes  []string `json:"package_types"`
	ProteinRange  IntRange `json:"protein_range"`
	CaloriesRange IntRange `json:"calories_range"`
	CarbsRange    IntRange `json:"carbs_range"`
	SugarRange    IntRange `json:"sugar_range"`
	SearchQuery   string   `json:"search_query,omitempty"`
}

// DefaultFilterState returns the unconstrained state: every range at its
// domain, every multi-select empty, no search query.
func DefaultFilterState(domains FilterDomains) FilterState {
	return FilterState{
		ProteinRange:  domains.Protein.Full(),
		CaloriesRange: domains.Calories.Full(),
		CarbsRange:    domains.Carbs.Full(),
		SugarRange:    domains.Sugar.Full(),
	}
}

// IsDefault reports whether the state imposes no constraint at all.
// A default state must serialize to an empty parameter map.
func (f FilterState) IsDefault(domains FilterDomains) bool {
	return len(f.Flavors) == 0 &&
		len(f.ProteinTypes) == 0 &&
		len(f.Forms) == 0 &&
		len(f.PackageTypes) == 0 &&
		f.ProteinRange == domains.Protein.Full() &&
		f.CaloriesRange == domains.Calories.Full() &&
		f.CarbsRange == domains.Carbs.Full() &&
		f.SugarRange == domains.Sugar.Full() &&
		f.SearchQuery == ""
}

// ApplyFormChange replaces Forms and enforces the one cross-field rule:
// package types are only meaningful while the powder form is selected, so
// removing it clears PackageTypes. Every caller that can change Forms must
// go through this, not just the primary filter UI path.
func (f FilterState) ApplyFormChange(newForms []string) FilterState {
	next := f
	next.Forms = append([]string(nil), newForms...)
	if !containsCode(next.Forms, FormPowder) {
		next.PackageTypes = nil
	}
	return next
}

func containsCode(codes []string, code string) bool {
	for _, c := range codes {
		if c == code {
			return true
		}
	}
	return false
}
