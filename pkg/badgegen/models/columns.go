package models

// Columns names the header cells holding each attendee field.
type Columns struct {
	FirstName string `json:"first_name" yaml:"first_name"`
	FullName  string `json:"full_name" yaml:"full_name"`
	Company   string `json:"company" yaml:"company"`
	LastName  string `json:"lastname" yaml:"lastname"`
}

// DefaultColumns returns the column names of the standard registration export.
func DefaultColumns() Columns {
	return Columns{
		FirstName: "NAME",
		FullName:  "FULL NAME",
		Company:   "COMPANY",
		LastName:  "LASTNAME",
	}
}
