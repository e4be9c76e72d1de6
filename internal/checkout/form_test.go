package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() Form {
	f := NewForm()
	f.FirstName = "Maria"
	f.LastName = "Borg"
	f.Phone = "+35679000000"
	f.Address1 = "1 Republic Street"
	f.City = "Valletta"
	f.Zip = "VLT1111"
	return f
}

func TestNewForm_Defaults(t *testing.T) {
	f := NewForm()
	assert.Equal(t, "MT", f.Country)
	assert.Equal(t, DeliveryShip, f.Delivery)
}

func TestForm_Valid(t *testing.T) {
	f := validForm()
	assert.True(t, f.Valid())
	assert.Empty(t, f.MissingFields())
}

func TestForm_MissingFields(t *testing.T) {
	f := NewForm()
	missing := f.MissingFields()

	assert.ElementsMatch(t, []string{
		"first name", "last name", "phone", "address line 1", "city", "zip",
	}, missing)
	assert.False(t, f.Valid())
}

func TestForm_BlankValuesCountAsMissing(t *testing.T) {
	f := validForm()
	f.City = "   "
	assert.Contains(t, f.MissingFields(), "city")
}

func TestForm_OptionalFieldsDontAffectValidity(t *testing.T) {
	f := validForm()
	f.Company = ""
	f.VAT = ""
	f.Address2 = ""
	f.State = ""
	assert.True(t, f.Valid())
}

func TestForm_SetCountryResetsState(t *testing.T) {
	f := NewForm()
	f.State = "GO"

	f.SetCountry("IT")

	assert.Equal(t, "IT", f.Country)
	assert.Empty(t, f.State)
}

func TestForm_AvailableStates(t *testing.T) {
	f := NewForm()
	states := f.AvailableStates()
	require.NotEmpty(t, states)
	assert.Equal(t, "Malta", states[0].Name)

	f.SetCountry("NL")
	states = f.AvailableStates()
	require.Len(t, states, 10)
	assert.Equal(t, "North Holland", states[0].Name)

	f.SetCountry("XX")
	assert.Empty(t, f.AvailableStates())
}

func TestCountryByCode(t *testing.T) {
	c, ok := CountryByCode("DE")
	require.True(t, ok)
	assert.Equal(t, "Germany", c.Name)

	_, ok = CountryByCode("US")
	assert.False(t, ok)
}
