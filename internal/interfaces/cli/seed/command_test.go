package seed

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStores(t *testing.T) {
	input := `
stores:
  - id: "02"
    name: Bandırma Köroğlu
    code: BND
  - id: "03"
    name: Biga HYS
    is_active: false
`
	stores, err := parseStores(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, stores, 2)

	assert.Equal(t, "02", stores[0].ID)
	assert.Equal(t, "Bandırma Köroğlu", stores[0].Name)
	assert.Equal(t, "BND", stores[0].Code)
	assert.Nil(t, stores[0].IsActive)

	require.NotNil(t, stores[1].IsActive)
	assert.False(t, *stores[1].IsActive)
}

func TestParseStores_Errors(t *testing.T) {
	tests := map[string]string{
		"empty":       "",
		"no stores":   "stores: []\n",
		"unknown key": "stores:\n  - id: \"02\"\n    nme: typo\n",
		"not yaml":    "stores: [\n",
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := parseStores(strings.NewReader(input))
			assert.Error(t, err)
		})
	}
}
