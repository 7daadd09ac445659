package domain

import "time"

const (
	EstadoActivo   = "ACTIVO"
	EstadoInactivo = "INACTIVO"
)

// Appointment types offered by the store.
const (
	TipoSpa            = "Spa"
	TipoVeterinaria    = "Veterinaria"
	TipoAdiestramiento = "Adiestramiento"
	TipoPsicologia     = "Psicologia"
	TipoFisioterapia   = "Fisioterapia"
)

type Cita struct {
	IDCita        int64     `gorm:"column:id_cita;primaryKey"`
	TipoCita      string    `gorm:"column:tipo_cita"`
	NombreMascota string    `gorm:"column:nombre_mascota"`
	TipoMascota   string    `gorm:"column:tipo_mascota"`
	FechaHoraCita time.Time `gorm:"column:fecha_hora_cita"`
	Estado        string    `gorm:"column:estado;default:ACTIVO"`
	Observaciones *string   `gorm:"column:observaciones"`
	IDUsuario     *string   `gorm:"column:id_usuario;index"`
	IDPaciente    *int64    `gorm:"column:id_paciente"`
}

func (Cita) TableName() string { return "citas" }
