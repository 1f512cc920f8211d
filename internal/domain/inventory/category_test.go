package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jcastro/gastro-ops/internal/domain/entity"
	"github.com/jcastro/gastro-ops/internal/domain/inventory"
)

// La heurística debe clasificar por subcadenas del nombre, sin importar mayúsculas.
func TestInferCategory_PorPalabraClave(t *testing.T) {
	cases := []struct {
		name     string
		expected string
	}{
		{"Weißbier 0,5L", entity.CategoryBeveragesAlcoholic},
		{"Rotwein Tempranillo", entity.CategoryBeveragesAlcoholic},
		{"Orangensaft", entity.CategoryBeveragesNonAlcoholic},
		{"Mineralwasser still", entity.CategoryBeveragesNonAlcoholic},
		{"Kaffeebohnen 1kg", entity.CategoryBeveragesNonAlcoholic},
		{"Obstkorb gemischt", entity.CategoryFoodFresh},
		{"Gemüse der Saison", entity.CategoryFoodFresh},
		{"Weizenmehl Typ 405", entity.CategoryFoodDry},
		{"Basmatireis", entity.CategoryFoodDry},
		{"Vanilleeis 5L", entity.CategoryFoodFrozen},
		{"Tiefkühlpizza", entity.CategoryFoodFrozen},
		{"Dessertbecher Schoko", entity.CategoryFoodPrepared},
		{"Servietten weiß", entity.CategorySupplies},
		{"", entity.CategorySupplies},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.expected, inventory.InferCategory(tc.name), "nombre: %q", tc.name)
	}
}

// La primera categoría que coincida gana (orden estable de evaluación).
func TestInferCategory_OrdenEstable(t *testing.T) {
	// "Eistee" contiene "eis" (congelados) y "tee" (bebidas sin alcohol);
	// congelados se evalúa después de bebidas, por lo que gana bebidas.
	assert.Equal(t, entity.CategoryBeveragesNonAlcoholic, inventory.InferCategory("Eistee Zitrone"))
}
