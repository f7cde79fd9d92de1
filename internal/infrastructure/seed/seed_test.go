package seed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Despensa-api/internal/infrastructure/seed"
)

func TestDefaultMealTypes(t *testing.T) {
	names, err := seed.DefaultMealTypes()
	require.NoError(t, err)
	assert.Equal(t, []string{"Breakfast", "Lunch", "Dinner"}, names)
}

func TestParseMealTypes_DescartaVaciosYRepetidos(t *testing.T) {
	names, err := seed.ParseMealTypes([]byte(`
meal_types:
  - name: Desayuno
  - name: "  "
  - name: desayuno
  - name: Once
`))
	require.NoError(t, err)
	assert.Equal(t, []string{"Desayuno", "Once"}, names)
}

func TestParseMealTypes_Errores(t *testing.T) {
	_, err := seed.ParseMealTypes([]byte("meal_types: ["))
	assert.Error(t, err)

	_, err = seed.ParseMealTypes([]byte("meal_types: []"))
	assert.Error(t, err)
}
