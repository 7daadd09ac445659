package cita

import (
	"github.com/zulem090/animal-style/internal/cita/repository"
	"github.com/zulem090/animal-style/internal/cita/service"
	"go.uber.org/fx"
)

var Module = fx.Module("cita.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
