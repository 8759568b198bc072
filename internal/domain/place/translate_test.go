package place

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslateChineseCity(t *testing.T) {
	t.Run("known cities map to search tokens", func(t *testing.T) {
		assert.Equal(t, "beijing", translateChineseCity("北京"))
		assert.Equal(t, "hong kong", translateChineseCity("香港"))
		assert.Equal(t, "new york", translateChineseCity("纽约"))
	})

	t.Run("unknown names pass through unchanged", func(t *testing.T) {
		assert.Equal(t, "未知城市XYZ", translateChineseCity("未知城市XYZ"))
		// Compound or partial names are not matched.
		assert.Equal(t, "北京市", translateChineseCity("北京市"))
	})
}

func TestContainsHan(t *testing.T) {
	assert.True(t, containsHan("北京"))
	assert.True(t, containsHan("Beijing 北京"))
	assert.False(t, containsHan("Beijing"))
	assert.False(t, containsHan("Москва"))
	assert.False(t, containsHan(""))
}
