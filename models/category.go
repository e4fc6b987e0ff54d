package models

import (
	"strings"

	"github.com/go-playground/validator"
)

type Category string

const (
	Tops        Category = "tops"
	Bottoms     Category = "bottoms"
	Footwear    Category = "footwear"
	Outerwear   Category = "outerwear"
	Dresses     Category = "dresses"
	Suits       Category = "suits"
	Accessories Category = "accessories"
)

// legacy closet clothing types map onto categories
var categoryAliases = map[string]Category{
	"top":       Tops,
	"bottom":    Bottoms,
	"shoes":     Footwear,
	"accessory": Accessories,
	"dress":     Dresses,
	"suit":      Suits,
	"jacket":    Outerwear,
	"coat":      Outerwear,
}

func (c *Category) Scan(value interface{}) error {
	*c = ParseCategory(value.(string))
	return nil
}

func (c Category) Value() (string, error) {
	return string(c), nil
}

func (c Category) Valid() bool {
	switch c {
	case Tops, Bottoms, Footwear, Outerwear, Dresses, Suits, Accessories:
		return true
	}
	return false
}

// ParseCategory accepts canonical names and the short aliases used by the mobile app.
// Unknown values are kept as-is so they never match a template slot.
func ParseCategory(value string) Category {
	value = strings.ToLower(strings.TrimSpace(value))
	if alias, ok := categoryAliases[value]; ok {
		return alias
	}
	return Category(value)
}

func ValidateCategory(fl validator.FieldLevel) bool {
	return ParseCategory(fl.Field().String()).Valid()
}
