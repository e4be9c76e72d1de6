// Package checkout holds the checkout form model, its validation rules, and
// the shipping destination data.
package checkout

import "strings"

// Delivery methods selectable on the checkout form.
const (
	DeliveryShip   = "ship"
	DeliveryPickup = "pickup"
)

// Form is the billing/shipping form filled in on the checkout screen.
type Form struct {
	FirstName       string
	LastName        string
	Company         string
	VAT             string
	Phone           string
	Country         string
	State           string
	Address1        string
	Address2        string
	City            string
	Zip             string
	Delivery        string
	ShipToDifferent bool
}

// NewForm returns a form with the screen's defaults: Malta, ship delivery.
func NewForm() Form {
	return Form{
		Country:  "MT",
		Delivery: DeliveryShip,
	}
}

// SetCountry changes the destination country and resets the selected state,
// since state codes only make sense within their country.
func (f *Form) SetCountry(code string) {
	f.Country = code
	f.State = ""
}

// AvailableStates lists the regions of the currently selected country.
func (f *Form) AvailableStates() []State {
	c, ok := CountryByCode(f.Country)
	if !ok {
		return nil
	}
	return c.States
}

// MissingFields reports which required fields are empty or blank.
func (f *Form) MissingFields() []string {
	required := []struct {
		name  string
		value string
	}{
		{"first name", f.FirstName},
		{"last name", f.LastName},
		{"phone", f.Phone},
		{"address line 1", f.Address1},
		{"city", f.City},
		{"zip", f.Zip},
	}

	var missing []string
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.name)
		}
	}
	return missing
}

// Valid reports whether every required field is filled in.
func (f *Form) Valid() bool {
	return len(f.MissingFields()) == 0
}
