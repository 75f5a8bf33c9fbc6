package entity

import "time"

// Commerce representa el comercio o establecimiento comercial dueño de la cadena.
// LegalName (razón social) es único en el sistema.
type Commerce struct {
	ID        string
	Name      string // nombre de fantasía
	LegalName string // razón social, único
	Email     string
	Phone     string // formato +56912345678
	CreatedAt time.Time
	UpdatedAt time.Time
}
