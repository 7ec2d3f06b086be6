package geography

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Country is a supported delivery country
type Country string

const (
	CountryDominicanRepublic Country = "DOMINICAN_REPUBLIC"
	CountryLithuania         Country = "LITHUANIA"
)

// City is a supported delivery city
type City string

const (
	CityLaRomana          City = "LA_ROMANA"
	CitySanPedroDeMacoris City = "SAN_PEDRO_DE_MACORIS"
	CityMariampole        City = "MARIAMPOLE"
)

// State is a supported delivery state (district within a city)
type State string

const (
	StateLaRomana          State = "LA_ROMANA"
	StateVillaHermosa      State = "VILLA_HERMOSA"
	StateSanPedroDeMacoris State = "SAN_PEDRO_DE_MACORIS"
	StateConsuelo          State = "CONSUELO"
	StateMariampole        State = "MARIAMPOLE"
)

// Reference data: country -> cities -> states -> zip codes.
var (
	countryCities = map[Country][]City{
		CountryDominicanRepublic: {CityLaRomana, CitySanPedroDeMacoris},
		CountryLithuania:         {CityMariampole},
	}

	cityStates = map[City][]State{
		CityLaRomana:          {StateLaRomana, StateVillaHermosa},
		CitySanPedroDeMacoris: {StateConsuelo, StateSanPedroDeMacoris},
		CityMariampole:        {StateMariampole},
	}

	stateZipCodes = map[State][]string{
		StateLaRomana:          {"22000"},
		StateVillaHermosa:      {"22000"},
		StateSanPedroDeMacoris: {"23000"},
		StateConsuelo:          {"23000"},
		StateMariampole:        {"68001"},
	}

	// Display names that the generic title-casing below would get wrong.
	displayNames = map[string]string{
		"SAN_PEDRO_DE_MACORIS": "San Pedro de Macoris",
	}
)

// Countries returns all supported countries in a stable order
func Countries() []Country {
	return []Country{CountryDominicanRepublic, CountryLithuania}
}

// IsValid checks whether the country is part of the reference data
func (c Country) IsValid() bool {
	_, ok := countryCities[c]
	return ok
}

// String returns the canonical code of the country
func (c Country) String() string {
	return string(c)
}

// DisplayName returns the human-readable country name
func (c Country) DisplayName() string {
	return displayName(string(c))
}

// Cities returns the cities belonging to the country
func (c Country) Cities() []City {
	return countryCities[c]
}

// HasCity checks whether the city belongs to the country
func (c Country) HasCity(city City) bool {
	for _, candidate := range countryCities[c] {
		if candidate == city {
			return true
		}
	}
	return false
}

// IsValid checks whether the city is part of the reference data
func (c City) IsValid() bool {
	_, ok := cityStates[c]
	return ok
}

// String returns the canonical code of the city
func (c City) String() string {
	return string(c)
}

// DisplayName returns the human-readable city name
func (c City) DisplayName() string {
	return displayName(string(c))
}

// States returns the states belonging to the city
func (c City) States() []State {
	return cityStates[c]
}

// HasState checks whether the state belongs to the city
func (c City) HasState(state State) bool {
	for _, candidate := range cityStates[c] {
		if candidate == state {
			return true
		}
	}
	return false
}

// IsValid checks whether the state is part of the reference data
func (s State) IsValid() bool {
	_, ok := stateZipCodes[s]
	return ok
}

// String returns the canonical code of the state
func (s State) String() string {
	return string(s)
}

// DisplayName returns the human-readable state name
func (s State) DisplayName() string {
	return displayName(string(s))
}

// ZipCodes returns the zip codes belonging to the state
func (s State) ZipCodes() []string {
	return stateZipCodes[s]
}

// HasZipCode checks whether the zip code belongs to the state
func (s State) HasZipCode(zipCode string) bool {
	for _, candidate := range stateZipCodes[s] {
		if candidate == zipCode {
			return true
		}
	}
	return false
}

var titleCaser = cases.Title(language.English)

// displayName renders a canonical code as a human-readable name,
// preferring the explicit override table for irregular names.
func displayName(code string) string {
	if name, ok := displayNames[code]; ok {
		return name
	}
	return titleCaser.String(strings.ToLower(strings.ReplaceAll(code, "_", " ")))
}
