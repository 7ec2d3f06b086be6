package geography

import (
	"strings"

	"github.com/shoppy/backend/internal/domain/shared"
)

// ParseCountry resolves a country from its canonical code or display name
func ParseCountry(value string) (Country, error) {
	for _, country := range Countries() {
		if matchesCode(string(country), country.DisplayName(), value) {
			return country, nil
		}
	}
	return "", shared.NewDomainError("NOT_FOUND", "Country not found")
}

// ParseCity resolves a city from its canonical code or display name
func ParseCity(value string) (City, error) {
	for city := range cityStates {
		if matchesCode(string(city), city.DisplayName(), value) {
			return city, nil
		}
	}
	return "", shared.NewDomainError("NOT_FOUND", "City not found")
}

// ParseState resolves a state from its canonical code or display name
func ParseState(value string) (State, error) {
	for state := range stateZipCodes {
		if matchesCode(string(state), state.DisplayName(), value) {
			return state, nil
		}
	}
	return "", shared.NewDomainError("NOT_FOUND", "State not found")
}

func matchesCode(code, display, value string) bool {
	return strings.EqualFold(code, value) || strings.EqualFold(display, value)
}

// ValidateLocation checks the containment chain country -> city -> state -> zip.
// Each violation is reported against the narrowest failing link.
func ValidateLocation(country Country, city City, state State, zipCode string) error {
	if !country.HasCity(city) {
		return shared.NewDomainError("NOT_FOUND", "City is not part of the provided Country")
	}
	if !city.HasState(state) {
		return shared.NewDomainError("NOT_FOUND", "State is not part of the provided City")
	}
	if !state.HasZipCode(zipCode) {
		return shared.NewDomainError("NOT_FOUND", "Zip-code is not part of the provided State")
	}
	return nil
}
