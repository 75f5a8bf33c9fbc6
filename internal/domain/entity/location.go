package entity

// Region representa una región geográfica para direcciones.
type Region struct {
	ID   string
	Name string
}

// Commune representa una comuna; pertenece a una región que no puede
// eliminarse mientras tenga comunas asociadas.
type Commune struct {
	ID       string
	Name     string
	RegionID string
}
