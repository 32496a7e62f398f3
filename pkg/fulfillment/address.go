package fulfillment

import "strings"

// Address is a structured shipping address. Fields are not validated.
type Address struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Address1  string `json:"address1,omitempty"`
	Address2  string `json:"address2,omitempty"`
	City      string `json:"city,omitempty"`
	Region    string `json:"region,omitempty"`
	Postal    string `json:"postal,omitempty"`
	Country   string `json:"country,omitempty"`
}

// Lines returns the display lines of the address in order: name (when
// either part is present), address1, address2 (when non-empty),
// "city, region postal" and country.
func (a Address) Lines() []string {
	lines := make([]string, 0, 5)

	if a.FirstName != "" || a.LastName != "" {
		lines = append(lines, strings.TrimSpace(a.FirstName+" "+a.LastName))
	}

	lines = append(lines, a.Address1)

	if a.Address2 != "" {
		lines = append(lines, a.Address2)
	}

	lines = append(lines,
		a.City+", "+a.Region+" "+a.Postal,
		a.Country,
	)

	return lines
}
