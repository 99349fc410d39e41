package domain

// Category codes accepted by the discovery filters. Codes arriving in a
// shareable URL are validated against these before they reach a query.

const FormPowder = "powder"

var (
	FlavorCodes = []string{
		"chocolate",
		"vanilla",
		"strawberry",
		"banana",
		"matcha",
		"coffee",
		"unflavored",
	}

	ProteinTypeCodes = []string{
		"whey",
		"wpi",
		"casein",
		"soy",
		"pea",
		"egg",
	}

	FormCodes = []string{
		FormPowder,
		"bar",
		"drink",
		"capsule",
	}

	PackageTypeCodes = []string{
		"pouch",
		"tub",
		"stick",
		"box",
	}
)

// IsValidCode reports whether code belongs to the given vocabulary.
func IsValidCode(vocabulary []string, code string) bool {
	for _, v := range vocabulary {
		if v == code {
			return true
		}
	}
	return false
}
