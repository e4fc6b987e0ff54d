package models

import (
	"strings"

	"github.com/go-playground/validator"
)

type Formality string

const (
	Athletic    Formality = "athletic"
	Casual      Formality = "casual"
	SmartCasual Formality = "smartCasual"
	Business    Formality = "business"
	Party       Formality = "party"
	Formal      Formality = "formal"
)

func (f *Formality) Scan(value interface{}) error {
	*f = Formality(value.(string))
	return nil
}

func (f Formality) Value() (string, error) {
	return string(f), nil
}

// Rank orders tiers for compatibility distance. Business and party share a rank,
// unknown tiers rank as casual.
func (f Formality) Rank() int {
	switch f {
	case Athletic:
		return 0
	case SmartCasual:
		return 2
	case Business, Party:
		return 3
	case Formal:
		return 4
	}
	return 1
}

var formalityAliases = map[string]Formality{
	"smart_casual": SmartCasual,
	"smart casual": SmartCasual,
	"smartcasual":  SmartCasual,
	"sport":        Athletic,
	"sporty":       Athletic,
}

func lookupFormality(value string) (Formality, bool) {
	value = strings.TrimSpace(value)
	for _, f := range []Formality{Athletic, Casual, SmartCasual, Business, Party, Formal} {
		if strings.EqualFold(string(f), value) {
			return f, true
		}
	}
	f, ok := formalityAliases[strings.ToLower(value)]
	return f, ok
}

// ParseFormality falls back to casual for anything it does not recognise.
func ParseFormality(value string) Formality {
	if f, ok := lookupFormality(value); ok {
		return f
	}
	return Casual
}

func ValidateFormality(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, ok := lookupFormality(value)
	return ok
}
