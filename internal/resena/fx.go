package resena

import (
	"github.com/zulem090/animal-style/internal/resena/repository"
	"github.com/zulem090/animal-style/internal/resena/service"
	"go.uber.org/fx"
)

var Module = fx.Module("resena.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
