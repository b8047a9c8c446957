package models

import (
	"strings"

	dErrors "promissa/pkg/domain-errors"
)

// Address is the structured value behind an address field.
type Address struct {
	Street     string `json:"street"`
	Unit       string `json:"unit,omitempty"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	Province   string `json:"province,omitempty"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// Countries whose addresses carry a mandatory region line. The region label
// differs (state vs province) but the validation shape is the same.
var stateCountries = map[string]bool{
	"US": true,
}

var provinceCountries = map[string]bool{
	"CA": true,
}

// Normalize trims whitespace and upper-cases the country code.
func (a *Address) Normalize() {
	a.Street = strings.TrimSpace(a.Street)
	a.Unit = strings.TrimSpace(a.Unit)
	a.City = strings.TrimSpace(a.City)
	a.State = strings.TrimSpace(a.State)
	a.Province = strings.TrimSpace(a.Province)
	a.PostalCode = strings.TrimSpace(a.PostalCode)
	a.Country = strings.ToUpper(strings.TrimSpace(a.Country))
}

// Validate enforces the address invariants: street, city, postal code, and
// country are always required; a state is required exactly for US addresses
// and a province exactly for Canadian ones.
func (a Address) Validate() error {
	if a.Street == "" {
		return dErrors.New(dErrors.CodeInvalidAnswer, "street is required")
	}
	if a.City == "" {
		return dErrors.New(dErrors.CodeInvalidAnswer, "city is required")
	}
	if a.PostalCode == "" {
		return dErrors.New(dErrors.CodeInvalidAnswer, "postal code is required")
	}
	if a.Country == "" {
		return dErrors.New(dErrors.CodeInvalidAnswer, "country is required")
	}
	if stateCountries[a.Country] && a.State == "" {
		return dErrors.New(dErrors.CodeInvalidAnswer, "state is required for this country")
	}
	if !stateCountries[a.Country] && a.State != "" {
		return dErrors.New(dErrors.CodeInvalidAnswer, "state applies only to US addresses")
	}
	if provinceCountries[a.Country] && a.Province == "" {
		return dErrors.New(dErrors.CodeInvalidAnswer, "province is required for this country")
	}
	if !provinceCountries[a.Country] && a.Province != "" {
		return dErrors.New(dErrors.CodeInvalidAnswer, "province applies only to Canadian addresses")
	}
	return nil
}
