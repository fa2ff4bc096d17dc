package ledger

// Preference is a single named setting for the installation.
type Preference struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

const (
	// PrefCompanyName is printed on report headers when set.
	PrefCompanyName = "company_name"
	// PrefDefaultPricePerKg pre-fills the intake price, as a decimal
	// reais string like "12.50".
	PrefDefaultPricePerKg = "default_price_per_kg"
)

var knownPreferences = map[string]bool{
	PrefCompanyName:       true,
	PrefDefaultPricePerKg: true,
}

// KnownPreference reports whether name is a recognized preference.
func KnownPreference(name string) bool {
	return knownPreferences[name]
}
