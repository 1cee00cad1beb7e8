package donors

// Donor es quien dona. Name funciona como clave natural para el alta
// implícita al donar, pero no es único en la base.
type Donor struct {
	ID          int64
	Name        string
	ContactInfo string
}
