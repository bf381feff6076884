package domain

type Address struct {
	Street     string
	City       string
	State      string
	PostalCode string
	Country    string
}

// Valid reports whether every field meets its minimum length.
func (a Address) Valid() bool {
	return len(a.Street) >= 5 &&
		len(a.City) >= 2 &&
		len(a.State) >= 2 &&
		len(a.PostalCode) >= 5 &&
		len(a.Country) >= 2
}
