package models

type Counterpart struct {
	ID        string              `json:"id"`
	Type      string              `json:"type"` // organization | individual
	Name      string              `json:"name"`
	FirstName string              `json:"first_name,omitempty"`
	LastName  string              `json:"last_name,omitempty"`
	Email     string              `json:"email"`
	Phone     string              `json:"phone,omitempty"`
	Address   *CounterpartAddress `json:"address,omitempty"`
}

type CounterpartAddress struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

type CreateCounterpartRequest struct {
	Type      string              `json:"type"`
	Name      string              `json:"name"`
	FirstName string              `json:"first_name,omitempty"`
	LastName  string              `json:"last_name,omitempty"`
	Email     string              `json:"email"`
	Phone     string              `json:"phone,omitempty"`
	Address   *CounterpartAddress `json:"address,omitempty"`
}

type UpdateCounterpartRequest struct {
	Name    string              `json:"name,omitempty"`
	Email   string              `json:"email,omitempty"`
	Phone   string              `json:"phone,omitempty"`
	Address *CounterpartAddress `json:"address,omitempty"`
}
