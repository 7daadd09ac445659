package migration

import (
	authdomain "github.com/zulem090/animal-style/internal/auth/domain"
	citadomain "github.com/zulem090/animal-style/internal/cita/domain"
	"github.com/zulem090/animal-style/internal/config"
	marcadomain "github.com/zulem090/animal-style/internal/marca/domain"
	productodomain "github.com/zulem090/animal-style/internal/producto/domain"
	resenadomain "github.com/zulem090/animal-style/internal/resena/domain"
	tipodomain "github.com/zulem090/animal-style/internal/tipoproducto/domain"
	usuariodomain "github.com/zulem090/animal-style/internal/usuario/domain"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		if cfg.DBType != "postgres" {
			// sqlite is only used for local development, the schema
			// comes straight from the models there.
			return conn.AutoMigrate(
				&usuariodomain.User{},
				&authdomain.Session{},
				&tipodomain.TipoProducto{},
				&marcadomain.Marca{},
				&productodomain.Producto{},
				&citadomain.Cita{},
				&resenadomain.Resena{},
			)
		}

		sqlDB, err := conn.DB()
		if err != nil {
			return err
		}
		return RunMigrations(sqlDB)
	}),
)
