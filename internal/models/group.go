package models

// Person is a participant in a group.
type Person struct {
	// ID is the stable identifier (UUID format when assigned by the store).
	ID string

	// Name is the display name. It is not guaranteed to be unique.
	Name string
}

// Group represents a reusable set of people who share expenses.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string

	// Name is the display name of the group (e.g., "Japan Trip").
	Name string

	// Members is the ordered list of people in this group.
	// Balances are only computed for members.
	Members []Person

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64
}

// HasMember reports whether a person with the given ID belongs to the group.
func (g *Group) HasMember(id string) bool {
	for _, m := range g.Members {
		if m.ID == id {
			return true
		}
	}
	return false
}
