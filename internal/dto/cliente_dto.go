package dto

type CrearClienteRequest struct {
	Appynom       string `json:"appynom" validate:"required,max=200"`
	DNI           string `json:"dni" validate:"required,max=20"`
	Direccion     string `json:"direccion" validate:"max=255"`
	Telefono      string `json:"telefono" validate:"max=50"`
	RelaLocalidad int    `json:"relalocalidad" validate:"required,gt=0"`
	Condicion     int    `json:"condicion" validate:"omitempty,oneof=0 1"`
}

type ActualizarClienteRequest struct {
	Appynom       *string `json:"appynom" validate:"omitempty,max=200"`
	DNI           *string `json:"dni" validate:"omitempty,max=20"`
	Direccion     *string `json:"direccion" validate:"omitempty,max=255"`
	Telefono      *string `json:"telefono" validate:"omitempty,max=50"`
	RelaLocalidad *int    `json:"relalocalidad" validate:"omitempty,gt=0"`
	Condicion     *int    `json:"condicion" validate:"omitempty,oneof=0 1"`
}

// ClienteFilter agrupa los parámetros de búsqueda del listado.
type ClienteFilter struct {
	Busqueda  string // matchea appynom o dni (ILIKE)
	Localidad int    // 0 = todas
	Page      int
	Limit     int
}
