package usuario

import (
	"github.com/zulem090/animal-style/internal/usuario/repository"
	"github.com/zulem090/animal-style/internal/usuario/service"
	"go.uber.org/fx"
)

var Module = fx.Module("usuario.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
