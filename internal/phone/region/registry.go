// Package region provides the static registry of country-scoped parsing
// variants. The registry is built once at startup from the numbering-plan
// library's supported-region set; lookups never construct implementations
// dynamically.
package region

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// Region identifies one country-scoped numbering plan.
type Region struct {
	// Code is the uppercase ISO 3166-1 alpha-2 region code, e.g. "ID".
	Code string
	// CallingCode is the country calling code, e.g. 62.
	CallingCode int
}

// Registry maps 2-letter region codes to their numbering plans.
type Registry struct {
	regions map[string]Region
}

// NewRegistry builds the registry from the library's supported regions.
func NewRegistry() *Registry {
	supported := phonenumbers.GetSupportedRegions()
	regions := make(map[string]Region, len(supported))
	for code := range supported {
		regions[code] = Region{
			Code:        code,
			CallingCode: phonenumbers.GetCountryCodeForRegion(code),
		}
	}
	return &Registry{regions: regions}
}

// Lookup resolves a 2-letter region code, case-insensitively.
func (r *Registry) Lookup(code string) (Region, bool) {
	region, ok := r.regions[strings.ToUpper(code)]
	return region, ok
}

// Count reports how many regions the registry holds.
func (r *Registry) Count() int {
	return len(r.regions)
}
