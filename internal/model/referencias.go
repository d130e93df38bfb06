package model

// Tablas de referencia: localidades, productos y vendedores.

type Localidad struct {
	IDLocalidad int    `gorm:"column:idlocalidad;primaryKey;autoIncrement" json:"idlocalidad"`
	Nombre      string `gorm:"column:nombre;not null" json:"nombre"`
}

func (Localidad) TableName() string { return "localidad" }

type Producto struct {
	IDProducto  int    `gorm:"column:idproducto;primaryKey;autoIncrement" json:"idproducto"`
	Descripcion string `gorm:"column:descripcion;not null" json:"descripcion"`
	Estado      int    `gorm:"column:estado;not null;default:1" json:"estado"`
}

func (Producto) TableName() string { return "producto" }

type Vendedor struct {
	IDVendedor      int    `gorm:"column:idvendedor;primaryKey;autoIncrement" json:"idvendedor"`
	ApellidoNombre  string `gorm:"column:apellidonombre;not null" json:"apellidonombre"`
	DNI             string `gorm:"column:dni" json:"dni"`
	Telefono        string `gorm:"column:telefono" json:"telefono"`
	Estado          int    `gorm:"column:estado;not null;default:1" json:"estado"`
}

func (Vendedor) TableName() string { return "vendedor" }
