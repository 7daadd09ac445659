package domain

// ProductoDto is the product shape exposed across the data-access
// boundary. Imagen is an inline data URI; Tipo and Marca carry the
// joined reference names.
type ProductoDto struct {
	IDProducto  int64   `json:"idProducto"`
	Nombre      string  `json:"nombre"`
	Descripcion *string `json:"descripcion,omitempty"`
	Precio      float64 `json:"precio"`
	Cantidad    int64   `json:"cantidad"`
	Imagen      *string `json:"imagen,omitempty"`
	Estado      string  `json:"estado"`
	IDMarca     *int64  `json:"idMarca,omitempty"`
	IDTipo      *int64  `json:"idTipo,omitempty"`
	Tipo        *string `json:"tipo,omitempty"`
	Marca       *string `json:"marca,omitempty"`
}

// ToProductoDto converts a persisted product to its transfer shape.
func ToProductoDto(p *Producto) ProductoDto {
	dto := ProductoDto{
		IDProducto:  p.IDProducto,
		Nombre:      p.Nombre,
		Descripcion: p.Descripcion,
		Precio:      p.Precio,
		Cantidad:    p.Cantidad,
		Imagen:      ImageDataURI(p.Imagen),
		Estado:      p.Estado,
		IDMarca:     p.IDMarca,
		IDTipo:      p.IDTipo,
	}
	if p.Tipo != nil {
		dto.Tipo = &p.Tipo.Nombre
	}
	if p.Marca != nil {
		dto.Marca = &p.Marca.Nombre
	}
	return dto
}
