package geography

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountryCityContainment(t *testing.T) {
	tests := []struct {
		name    string
		country Country
		city    City
		want    bool
	}{
		{"la romana in dominican republic", CountryDominicanRepublic, CityLaRomana, true},
		{"san pedro in dominican republic", CountryDominicanRepublic, CitySanPedroDeMacoris, true},
		{"mariampole in lithuania", CountryLithuania, CityMariampole, true},
		{"mariampole not in dominican republic", CountryDominicanRepublic, CityMariampole, false},
		{"la romana not in lithuania", CountryLithuania, CityLaRomana, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.country.HasCity(tt.city))
		})
	}
}

func TestStateZipCodes(t *testing.T) {
	assert.True(t, StateLaRomana.HasZipCode("22000"))
	assert.True(t, StateVillaHermosa.HasZipCode("22000"))
	assert.True(t, StateConsuelo.HasZipCode("23000"))
	assert.True(t, StateMariampole.HasZipCode("68001"))
	assert.False(t, StateMariampole.HasZipCode("22000"))
}

func TestValidateLocation(t *testing.T) {
	tests := []struct {
		name    string
		country Country
		city    City
		state   State
		zipCode string
		wantErr string
	}{
		{
			name:    "valid dominican address",
			country: CountryDominicanRepublic,
			city:    CityLaRomana,
			state:   StateVillaHermosa,
			zipCode: "22000",
		},
		{
			name:    "valid lithuanian address",
			country: CountryLithuania,
			city:    CityMariampole,
			state:   StateMariampole,
			zipCode: "68001",
		},
		{
			name:    "city outside country",
			country: CountryLithuania,
			city:    CityLaRomana,
			state:   StateLaRomana,
			zipCode: "22000",
			wantErr: "City is not part of the provided Country",
		},
		{
			name:    "state outside city",
			country: CountryDominicanRepublic,
			city:    CityLaRomana,
			state:   StateConsuelo,
			zipCode: "23000",
			wantErr: "State is not part of the provided City",
		},
		{
			name:    "zip outside state",
			country: CountryDominicanRepublic,
			city:    CityLaRomana,
			state:   StateLaRomana,
			zipCode: "99999",
			wantErr: "Zip-code is not part of the provided State",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLocation(tt.country, tt.city, tt.state, tt.zipCode)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestParseCountry(t *testing.T) {
	country, err := ParseCountry("DOMINICAN_REPUBLIC")
	require.NoError(t, err)
	assert.Equal(t, CountryDominicanRepublic, country)

	country, err = ParseCountry("Dominican Republic")
	require.NoError(t, err)
	assert.Equal(t, CountryDominicanRepublic, country)

	_, err = ParseCountry("ATLANTIS")
	assert.EqualError(t, err, "Country not found")
}

func TestDisplayNames(t *testing.T) {
	assert.Equal(t, "Dominican Republic", CountryDominicanRepublic.DisplayName())
	assert.Equal(t, "Lithuania", CountryLithuania.DisplayName())
	assert.Equal(t, "San Pedro de Macoris", CitySanPedroDeMacoris.DisplayName())
	assert.Equal(t, "Villa Hermosa", StateVillaHermosa.DisplayName())
}
