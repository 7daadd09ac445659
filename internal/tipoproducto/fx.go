package tipoproducto

import (
	"github.com/zulem090/animal-style/internal/tipoproducto/repository"
	"github.com/zulem090/animal-style/internal/tipoproducto/service"
	"go.uber.org/fx"
)

var Module = fx.Module("tipoproducto.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
