// Package entity contains the core business objects of the project.
package entity

import "strings"

// LocationCategory is the display affordance of a candidate. It never drives business logic.
type LocationCategory string

const (
	CategoryRestaurant   LocationCategory = "restaurant"
	CategoryRetailStore  LocationCategory = "retail_store"
	CategoryBank         LocationCategory = "bank"
	CategoryHospital     LocationCategory = "hospital"
	CategorySchool       LocationCategory = "school"
	CategoryHotel        LocationCategory = "hotel"
	CategoryGasStation   LocationCategory = "gas_station"
	CategoryCafe         LocationCategory = "cafe"
	CategoryAirport      LocationCategory = "airport"
	CategoryResidential  LocationCategory = "residential"
	CategoryShoppingMall LocationCategory = "shopping_mall"
	CategoryPark         LocationCategory = "park"
	CategoryGym          LocationCategory = "gym"
	CategoryDefault      LocationCategory = "default"
)

// categoryAliases maps provider vocabulary onto the closed category set.
var categoryAliases = map[string]LocationCategory{
	"restaurant":      CategoryRestaurant,
	"fast_food":       CategoryRestaurant,
	"food":            CategoryRestaurant,
	"retail_store":    CategoryRetailStore,
	"shop":            CategoryRetailStore,
	"shopping":        CategoryRetailStore,
	"store":           CategoryRetailStore,
	"supermarket":     CategoryRetailStore,
	"bank":            CategoryBank,
	"atm":             CategoryBank,
	"hospital":        CategoryHospital,
	"clinic":          CategoryHospital,
	"school":          CategorySchool,
	"university":      CategorySchool,
	"college":         CategorySchool,
	"hotel":           CategoryHotel,
	"lodging":         CategoryHotel,
	"motel":           CategoryHotel,
	"gas_station":     CategoryGasStation,
	"fuel":            CategoryGasStation,
	"cafe":            CategoryCafe,
	"coffee":          CategoryCafe,
	"coffee_shop":     CategoryCafe,
	"airport":         CategoryAirport,
	"aerodrome":       CategoryAirport,
	"residential":     CategoryResidential,
	"address":         CategoryResidential,
	"house":           CategoryResidential,
	"apartments":      CategoryResidential,
	"shopping_mall":   CategoryShoppingMall,
	"mall":            CategoryShoppingMall,
	"shopping_centre": CategoryShoppingMall,
	"park":            CategoryPark,
	"garden":          CategoryPark,
	"gym":             CategoryGym,
	"fitness_centre":  CategoryGym,
	"fitness":         CategoryGym,
}

// ParseCategory normalizes a provider category. Unknown or empty values map to CategoryDefault.
func ParseCategory(raw string) LocationCategory {
	key := strings.ToLower(strings.TrimSpace(raw))
	key = strings.NewReplacer(" ", "_", "-", "_").Replace(key)
	if category, ok := categoryAliases[key]; ok {
		return category
	}

	return CategoryDefault
}

// FirstCategory returns the first raw value that maps onto a known category.
func FirstCategory(raws ...string) LocationCategory {
	for _, raw := range raws {
		if category := ParseCategory(raw); category != CategoryDefault {
			return category
		}
	}

	return CategoryDefault
}

// String returns the string representation of the LocationCategory.
func (c LocationCategory) String() string {
	return string(c)
}

// IsValid checks if the LocationCategory is a member of the closed set.
func (c LocationCategory) IsValid() bool {
	switch c {
	case CategoryRestaurant, CategoryRetailStore, CategoryBank, CategoryHospital, CategorySchool,
		CategoryHotel, CategoryGasStation, CategoryCafe, CategoryAirport, CategoryResidential,
		CategoryShoppingMall, CategoryPark, CategoryGym, CategoryDefault:
		return true
	default:
		return false
	}
}
