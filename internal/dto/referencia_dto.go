package dto

type CrearLocalidadRequest struct {
	Nombre string `json:"nombre" validate:"required,max=100"`
}

type CrearProductoRequest struct {
	Descripcion string `json:"descripcion" validate:"required,max=200"`
}

type ActualizarProductoRequest struct {
	Descripcion *string `json:"descripcion" validate:"omitempty,max=200"`
	Estado      *int    `json:"estado" validate:"omitempty,oneof=0 1"`
}

type CrearVendedorRequest struct {
	ApellidoNombre string `json:"apellidonombre" validate:"required,max=200"`
	DNI            string `json:"dni" validate:"max=20"`
	Telefono       string `json:"telefono" validate:"max=50"`
}

type ActualizarVendedorRequest struct {
	ApellidoNombre *string `json:"apellidonombre" validate:"omitempty,max=200"`
	DNI            *string `json:"dni" validate:"omitempty,max=20"`
	Telefono       *string `json:"telefono" validate:"omitempty,max=50"`
	Estado         *int    `json:"estado" validate:"omitempty,oneof=0 1"`
}
