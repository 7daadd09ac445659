package auth

import (
	"github.com/zulem090/animal-style/internal/auth/repository"
	"github.com/zulem090/animal-style/internal/auth/service"
	"github.com/zulem090/animal-style/internal/auth/session"
	"go.uber.org/fx"
)

var Module = fx.Module("auth.service",
	fx.Provide(repository.ProvideSessionRepository),
	fx.Provide(session.NewManager),
	fx.Provide(service.New),
)
