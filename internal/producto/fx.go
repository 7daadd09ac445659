package producto

import (
	"github.com/zulem090/animal-style/internal/producto/repository"
	"github.com/zulem090/animal-style/internal/producto/service"
	"go.uber.org/fx"
)

var Module = fx.Module("producto.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
