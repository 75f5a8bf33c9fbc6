package entity

import "time"

// Customer representa a un cliente del comercio.
// El RUT no es único: se admiten registros repetidos, por ejemplo para
// boletas a nombre de empresa.
type Customer struct {
	ID           string
	RUT          string // formato XXXXXXXX-X
	FirstNames   string
	PaternalName string
	MaternalName string
	Phone        string
	Email        string
	Address      string
	CommuneID    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
