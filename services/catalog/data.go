package catalog

import "flightly/models"

var mealVocabulary = models.MealVocabulary{
	Regular: []models.MealOption{
		models.MealVegetarian, models.MealNonVegetarian, models.MealVegan, models.MealHalal, models.MealKosher,
	},
	Special: []models.MealOption{
		models.MealDiabetic, models.MealGlutenFree, models.MealLowSodium, models.MealLowFat,
	},
}

var seatVocabulary = models.SeatVocabulary{
	Location: []models.SeatLocation{models.SeatWindow, models.SeatAisle, models.SeatMiddle},
	Section:  []models.SeatSection{models.SectionFront, models.SectionMiddle, models.SectionBack},
	Special:  []models.SeatSpecial{models.SeatExtraLegroom, models.SeatBassinet, models.SeatWheelchairAccessible},
}

// Per-class seats available on every initialised day.
var classCapacity = map[models.FareClass]int{
	models.Economy:  100,
	models.Business: 20,
	models.First:    10,
}

var (
	baggageEconomy  = "1 checked bag, 1 carry-on"
	baggageBusiness = "2 checked bags, 1 carry-on"
	baggageFirst    = "3 checked bags, 2 carry-ons"
)

// route builds the three fares of a destination that share everything but price and baggage.
func route(airline, currency, duration, flightType string, stops int, departure, arrival []string, economy, business, first int) map[models.FareClass]models.Fare {
	fare := func(price int, baggage string) models.Fare {
		return models.Fare{
			Price:             price,
			Currency:          currency,
			Duration:          duration,
			Airline:           airline,
			Baggage:           baggage,
			FlightType:        flightType,
			Stops:             stops,
			DepartureAirports: departure,
			ArrivalAirports:   arrival,
		}
	}
	return map[models.FareClass]models.Fare{
		models.Economy:  fare(economy, baggageEconomy),
		models.Business: fare(business, baggageBusiness),
		models.First:    fare(first, baggageFirst),
	}
}

// defaultEntries is in registration order; destination matching depends on it.
func defaultEntries() []models.CatalogEntry {
	return []models.CatalogEntry{
		{
			Destination: "london",
			SourceCity:  "New York",
			Fares: route("British Airways", "GBP", "8h 15m", "non-stop", 0,
				[]string{"Heathrow", "Gatwick"}, []string{"London Heathrow"},
				799, 2399, 4999),
			MealService:       true,
			SpecialAssistance: []string{"wheelchair", "medical oxygen", "special meals"},
			SeatConfig: map[models.FareClass]models.SeatLayout{
				models.Economy:  {Rows: "20-50", Layout: "3-3-3"},
				models.Business: {Rows: "10-19", Layout: "2-2-2"},
				models.First:    {Rows: "1-9", Layout: "1-2-1"},
			},
		},
		{
			Destination: "paris",
			SourceCity:  "Los Angeles",
			Fares: route("Air France", "EUR", "6h 30m", "non-stop", 0,
				[]string{"Charles de Gaulle", "Orly"}, []string{"Charles de Gaulle"},
				899, 2699, 5399),
		},
		{
			Destination: "tokyo",
			SourceCity:  "San Francisco",
			Fares: route("ANA", "JPY", "12h 50m", "non-stop", 0,
				[]string{"Narita", "Haneda"}, []string{"Narita"},
				1400, 4200, 8400),
		},
		{
			Destination: "berlin",
			SourceCity:  "Chicago",
			Fares: route("Lufthansa", "EUR", "8h 0m", "non-stop", 0,
				[]string{"Berlin Tegel", "Berlin Schönefeld"}, []string{"Berlin Tegel"},
				499, 1499, 2999),
		},
		{
			Destination: "mumbai",
			SourceCity:  "Dubai",
			Fares: route("Emirates", "INR", "9h 30m", "one-stop", 1,
				[]string{"Chhatrapati Shivaji International"}, []string{"Chhatrapati Shivaji International"},
				1999, 2499, 3999),
		},
	}
}
