package place

import (
	"strings"

	"github.com/cailurus/hearth/internal/types"
)

// buildDisplayName composes "settlement, region, country" from a provider
// result. Each component runs through the script-variant selector, empty
// components are dropped, and a region identical to the settlement is dropped
// too (Nominatim reports municipalities like Beijing as their own state).
// When nothing structured survives, the provider's raw display_name is used.
func buildDisplayName(result types.NominatimResult) string {
	addr := result.Address

	settlement := result.Name
	if settlement == "" {
		for _, candidate := range []string{addr.City, addr.Town, addr.Village, addr.County} {
			if candidate != "" {
				settlement = candidate
				break
			}
		}
	}
	settlement = selectPreferredVariant(settlement)

	region := addr.State
	if region == "" {
		region = addr.Province
	}
	region = selectPreferredVariant(region)

	country := selectPreferredVariant(addr.Country)

	parts := make([]string, 0, 3)
	if settlement != "" {
		parts = append(parts, settlement)
	}
	if region != "" && region != settlement {
		parts = append(parts, region)
	}
	if country != "" {
		parts = append(parts, country)
	}

	if len(parts) == 0 {
		return result.DisplayName
	}
	return strings.Join(parts, ", ")
}
