package place

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cailurus/hearth/internal/types"
)

func TestBuildDisplayName(t *testing.T) {
	t.Run("composes settlement, region, country", func(t *testing.T) {
		result := types.NominatimResult{
			Name: "Porto",
			Address: types.NominatimAddress{
				State:   "Norte",
				Country: "Portugal",
			},
		}
		assert.Equal(t, "Porto, Norte, Portugal", buildDisplayName(result))
	})

	t.Run("drops region identical to settlement", func(t *testing.T) {
		result := types.NominatimResult{
			Name: "北京",
			Address: types.NominatimAddress{
				State:   "北京",
				Country: "中国",
			},
		}
		assert.Equal(t, "北京, 中国", buildDisplayName(result))
	})

	t.Run("falls back through city, town, village, county", func(t *testing.T) {
		result := types.NominatimResult{
			Address: types.NominatimAddress{
				Village: "Alte",
				County:  "Loulé",
				Country: "Portugal",
			},
		}
		assert.Equal(t, "Alte, Portugal", buildDisplayName(result))
	})

	t.Run("uses province when state is empty", func(t *testing.T) {
		result := types.NominatimResult{
			Name: "Brindisi",
			Address: types.NominatimAddress{
				Province: "Puglia",
				Country:  "Italia",
			},
		}
		assert.Equal(t, "Brindisi, Puglia, Italia", buildDisplayName(result))
	})

	t.Run("applies variant selection to each component", func(t *testing.T) {
		result := types.NominatimResult{
			Name: "东京;東京",
			Address: types.NominatimAddress{
				Country: "日本/Japan",
			},
		}
		assert.Equal(t, "东京, 日本", buildDisplayName(result))
	})

	t.Run("settlement and country duplication is kept", func(t *testing.T) {
		result := types.NominatimResult{
			Name: "Singapore",
			Address: types.NominatimAddress{
				Country: "Singapore",
			},
		}
		assert.Equal(t, "Singapore, Singapore", buildDisplayName(result))
	})

	t.Run("falls back to raw display_name when nothing structured survives", func(t *testing.T) {
		result := types.NominatimResult{
			DisplayName: "Somewhere, Far Away",
		}
		assert.Equal(t, "Somewhere, Far Away", buildDisplayName(result))
	})
}
