package domain

// Employee is a roster entry. Roster order is kept by the repository
// (position column), not on the struct.
type Employee struct {
	ID   string
	Name string
}
