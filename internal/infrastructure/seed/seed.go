// Package seed expone los catálogos iniciales embebidos en el binario.
package seed

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default_meal_types.yaml
var defaultMealTypesYAML []byte

type mealTypeCatalog struct {
	MealTypes []struct {
		Name string `yaml:"name"`
	} `yaml:"meal_types"`
}

// DefaultMealTypes devuelve los nombres de los tipos de comida por defecto, en orden.
func DefaultMealTypes() ([]string, error) {
	return ParseMealTypes(defaultMealTypesYAML)
}

// ParseMealTypes lee un catálogo de tipos de comida en YAML.
// Descarta nombres vacíos y repetidos (sin distinguir mayúsculas).
func ParseMealTypes(data []byte) ([]string, error) {
	var catalog mealTypeCatalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("leer catálogo de tipos de comida: %w", err)
	}
	seen := make(map[string]bool, len(catalog.MealTypes))
	names := make([]string, 0, len(catalog.MealTypes))
	for _, mt := range catalog.MealTypes {
		name := strings.TrimSpace(mt.Name)
		key := strings.ToLower(name)
		if name == "" || seen[key] {
			continue
		}
		seen[key] = true
		names = append(names, name)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("catálogo de tipos de comida vacío")
	}
	return names, nil
}
