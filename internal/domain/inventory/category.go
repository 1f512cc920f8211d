// Package inventory contiene servicios de dominio del inventario.
package inventory

import (
	"strings"

	"github.com/jcastro/gastro-ops/internal/domain/entity"
)

// Palabras clave (en alemán, idioma de los nombres de artículos del negocio)
// por categoría. Se evalúan en orden; la primera coincidencia gana.
var categoryKeywords = []struct {
	category string
	words    []string
}{
	{entity.CategoryBeveragesAlcoholic, []string{"bier", "wein", "schnaps"}},
	{entity.CategoryBeveragesNonAlcoholic, []string{"saft", "wasser", "kaffee", "tee"}},
	{entity.CategoryFoodFresh, []string{"obst", "gemüse", "salat"}},
	{entity.CategoryFoodDry, []string{"mehl", "zucker", "reis", "nudel"}},
	{entity.CategoryFoodFrozen, []string{"eis", "tiefkühl", "gefrier"}},
	{entity.CategoryFoodPrepared, []string{"fertig", "zubereitet", "dessert"}},
}

// InferCategory asigna una categoría por heurística de palabras clave sobre el
// nombre del artículo. Se aplica una única vez, al crear el artículo sin
// categoría explícita; nunca se re-infiere después (política determinista).
// Sin coincidencias devuelve "supplies".
func InferCategory(name string) string {
	lower := strings.ToLower(name)
	for _, kw := range categoryKeywords {
		for _, w := range kw.words {
			if strings.Contains(lower, w) {
				return kw.category
			}
		}
	}
	return entity.CategorySupplies
}
