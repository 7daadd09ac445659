package domain

import "time"

type Resena struct {
	IDResena    int64     `gorm:"column:id_resena;primaryKey"`
	IDProducto  int64     `gorm:"column:id_producto;index"`
	IDUsuario   string    `gorm:"column:id_usuario;index"`
	Puntuacion  float64   `gorm:"column:puntuacion"`
	Comentario  *string   `gorm:"column:comentario"`
	FechaResena time.Time `gorm:"column:fecha_resena"`
}

func (Resena) TableName() string { return "resenas" }

// ResenaDto aggregates a product's reviews into count and mean score.
type ResenaDto struct {
	NumeroResenas      int     `json:"numeroResenas"`
	PuntuacionPromedio float64 `json:"puntuacionPromedio"`
}
