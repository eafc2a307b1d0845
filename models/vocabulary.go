package models

import "strings"

// FareClass is the cabin a ticket is sold in.
type FareClass string

const (
	Economy  FareClass = "economy"
	Business FareClass = "business"
	First    FareClass = "first"
)

// FareClasses is also the order in which messages are scanned for a class.
var FareClasses = []FareClass{Economy, Business, First}

// ParseFareClass accepts any casing and surrounding whitespace.
func ParseFareClass(s string) (FareClass, bool) {
	c := FareClass(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range FareClasses {
		if c == known {
			return c, true
		}
	}
	return "", false
}

// MealOption is a tag from the controlled meal vocabulary.
type MealOption string

const (
	MealVegetarian    MealOption = "vegetarian"
	MealNonVegetarian MealOption = "non-vegetarian"
	MealVegan         MealOption = "vegan"
	MealHalal         MealOption = "halal"
	MealKosher        MealOption = "kosher"
	MealDiabetic      MealOption = "diabetic"
	MealGlutenFree    MealOption = "gluten-free"
	MealLowSodium     MealOption = "low-sodium"
	MealLowFat        MealOption = "low-fat"
)

// MealVocabulary groups meal tags the way the airline menus do.
type MealVocabulary struct {
	Regular []MealOption `json:"regular"`
	Special []MealOption `json:"special"`
}

// All returns regular options followed by special ones.
func (v MealVocabulary) All() []MealOption {
	all := make([]MealOption, 0, len(v.Regular)+len(v.Special))
	all = append(all, v.Regular...)
	return append(all, v.Special...)
}

type SeatLocation string

const (
	SeatWindow SeatLocation = "window"
	SeatAisle  SeatLocation = "aisle"
	SeatMiddle SeatLocation = "middle"
)

type SeatSection string

const (
	SectionFront  SeatSection = "front"
	SectionMiddle SeatSection = "middle"
	SectionBack   SeatSection = "back"
)

type SeatSpecial string

const (
	SeatExtraLegroom         SeatSpecial = "extra legroom"
	SeatBassinet             SeatSpecial = "bassinet"
	SeatWheelchairAccessible SeatSpecial = "wheelchair accessible"
)

// SeatVocabulary lists every seat tag a passenger can ask for.
type SeatVocabulary struct {
	Location []SeatLocation `json:"location"`
	Section  []SeatSection  `json:"section"`
	Special  []SeatSpecial  `json:"special"`
}

// Terms flattens the vocabulary into display strings.
func (v SeatVocabulary) Terms() []string {
	terms := make([]string, 0, len(v.Location)+len(v.Section)+len(v.Special))
	for _, l := range v.Location {
		terms = append(terms, string(l))
	}
	for _, s := range v.Section {
		terms = append(terms, string(s))
	}
	for _, s := range v.Special {
		terms = append(terms, string(s))
	}
	return terms
}

// SeatPreferences is the structured seat request stored with a booking.
type SeatPreferences struct {
	Location SeatLocation  `bson:"location,omitempty" json:"location,omitempty"`
	Section  SeatSection   `bson:"section,omitempty" json:"section,omitempty"`
	Special  []SeatSpecial `bson:"special,omitempty" json:"special,omitempty"`
}

func (p SeatPreferences) IsZero() bool {
	return p.Location == "" && p.Section == "" && len(p.Special) == 0
}

func (p SeatPreferences) clone() SeatPreferences {
	out := p
	if p.Special != nil {
		out.Special = append([]SeatSpecial(nil), p.Special...)
	}
	return out
}
