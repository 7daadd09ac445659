package marca

import (
	"github.com/zulem090/animal-style/internal/marca/repository"
	"github.com/zulem090/animal-style/internal/marca/service"
	"go.uber.org/fx"
)

var Module = fx.Module("marca.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
