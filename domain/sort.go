package domain

// SortBy is the ranking key for discovery results.
type SortBy string

const (
	SortByFavoritesCount SortBy = "favorites_count"
	SortByProtein        SortBy = "protein"
	SortByCalories       SortBy = "calories"
	SortByName           SortBy = "name"
)

// SortOrder is the ranking direction.
type SortOrder string

const (
	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"
)

const (
	DefaultSortBy    = SortByFavoritesCount
	DefaultSortOrder = SortOrderDesc
)

// ValidSortBy reports whether s is one of the four ranking keys.
func ValidSortBy(s string) bool {
	switch SortBy(s) {
	case SortByFavoritesCount, SortByProtein, SortByCalories, SortByName:
		return true
	}
	return false
}

// ValidSortOrder reports whether s is a ranking direction.
func ValidSortOrder(s string) bool {
	return SortOrder(s) == SortOrderAsc || SortOrder(s) == SortOrderDesc
}
