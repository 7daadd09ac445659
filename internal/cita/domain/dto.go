package domain

import "time"

type BookingDto struct {
	IDCita        int64     `json:"idCita"`
	TipoCita      string    `json:"tipoCita"`
	NombreMascota string    `json:"nombreMascota"`
	TipoMascota   string    `json:"tipoMascota"`
	FechaHoraCita time.Time `json:"fechaHoraCita"`
	Estado        string    `json:"estado"`
	Observaciones *string   `json:"observaciones"`
	IDUsuario     *string   `json:"idUsuario"`
	IDPaciente    *int64    `json:"idPaciente,omitempty"`
}

func ToBookingDto(c *Cita) BookingDto {
	return BookingDto{
		IDCita:        c.IDCita,
		TipoCita:      c.TipoCita,
		NombreMascota: c.NombreMascota,
		TipoMascota:   c.TipoMascota,
		FechaHoraCita: c.FechaHoraCita,
		Estado:        c.Estado,
		Observaciones: c.Observaciones,
		IDUsuario:     c.IDUsuario,
		IDPaciente:    c.IDPaciente,
	}
}
