package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/zulem090/animal-style/internal/auth"
	authdomain "github.com/zulem090/animal-style/internal/auth/domain"
	"github.com/zulem090/animal-style/internal/auth/session"
	"github.com/zulem090/animal-style/internal/cita"
	citadomain "github.com/zulem090/animal-style/internal/cita/domain"
	"github.com/zulem090/animal-style/internal/config"
	"github.com/zulem090/animal-style/internal/marca"
	marcadomain "github.com/zulem090/animal-style/internal/marca/domain"
	"github.com/zulem090/animal-style/internal/producto"
	productodomain "github.com/zulem090/animal-style/internal/producto/domain"
	"github.com/zulem090/animal-style/internal/resena"
	resenadomain "github.com/zulem090/animal-style/internal/resena/domain"
	"github.com/zulem090/animal-style/internal/search"
	"github.com/zulem090/animal-style/internal/seed"
	"github.com/zulem090/animal-style/internal/tipoproducto"
	tipodomain "github.com/zulem090/animal-style/internal/tipoproducto/domain"
	"github.com/zulem090/animal-style/internal/usuario"
	usuariodomain "github.com/zulem090/animal-style/internal/usuario/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	fx.Provide(NewHTTPMetrics),
	fx.Provide(registerGin),
	auth.Module,
	producto.Module,
	cita.Module,
	marca.Module,
	tipoproducto.Module,
	usuario.Module,
	resena.Module,
	search.Module,
	seed.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(cfg config.Config, log *zap.Logger, metrics *HTTPMetrics) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(log))
	r.Use(MetricsMiddleware(metrics))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"POST", "GET", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(cfg config.Config, log *zap.Logger, metrics *HTTPMetrics) *gin.Engine {
	return NewEngine(cfg, log, metrics)
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine      *gin.Engine
	cfg         config.Config
	log         *zap.Logger
	tuning      *config.TuningHolder
	sessions    *session.Manager
	authSvc     authdomain.Service
	productoSvc productodomain.Service
	citaSvc     citadomain.Service
	marcaSvc    marcadomain.Service
	tipoSvc     tipodomain.Service
	usuarioSvc  usuariodomain.Service
	resenaSvc   resenadomain.Service
	searcher    search.Searcher
	seeder      *seed.Service
}

type ServerParams struct {
	fx.In

	Gin         *gin.Engine
	Cfg         config.Config
	Log         *zap.Logger
	Tuning      *config.TuningHolder
	Sessions    *session.Manager
	AuthSvc     authdomain.Service
	ProductoSvc productodomain.Service
	CitaSvc     citadomain.Service
	MarcaSvc    marcadomain.Service
	TipoSvc     tipodomain.Service
	UsuarioSvc  usuariodomain.Service
	ResenaSvc   resenadomain.Service
	Searcher    search.Searcher
	Seeder      *seed.Service
}

func NewServer(p ServerParams) *Server {
	s := &Server{
		engine:      p.Gin,
		cfg:         p.Cfg,
		log:         p.Log.Named("server"),
		tuning:      p.Tuning,
		sessions:    p.Sessions,
		authSvc:     p.AuthSvc,
		productoSvc: p.ProductoSvc,
		citaSvc:     p.CitaSvc,
		marcaSvc:    p.MarcaSvc,
		tipoSvc:     p.TipoSvc,
		usuarioSvc:  p.UsuarioSvc,
		resenaSvc:   p.ResenaSvc,
		searcher:    p.Searcher,
		seeder:      p.Seeder,
	}

	s.registerAuthRoutes()
	s.registerProductRoutes()
	s.registerBookingRoutes()
	s.registerCatalogRoutes()
	s.registerUserRoutes()
	s.registerSeedRoutes()

	return s
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAuthRoutes() {
	authGroup := s.engine.Group("/api/auth")

	authGroup.POST("/register", s.Register)
	authGroup.POST("/login", s.Login)
	authGroup.POST("/logout", s.Logout)
}

func (s *Server) registerProductRoutes() {
	products := s.engine.Group("/api/products")

	products.GET("", s.OptionalAuth(), s.ListProducts)
	products.GET("/:id", s.OptionalAuth(), s.GetProduct)
	products.GET("/:id/resenas", s.GetProductResenas)

	products.POST("", s.AuthRequired(), RequireAdmin(), s.CreateProduct)
	products.PUT("/:id", s.AuthRequired(), RequireAdmin(), s.UpdateProduct)
	products.DELETE("/:id", s.AuthRequired(), RequireAdmin(), s.DeleteProduct)
	products.POST("/:id/activate", s.AuthRequired(), RequireAdmin(), s.ActivateProduct)
	products.POST("/:id/deactivate", s.AuthRequired(), RequireAdmin(), s.DeactivateProduct)

	s.engine.GET("/api/search/products", s.OptionalAuth(), s.SearchPreview)
}

func (s *Server) registerBookingRoutes() {
	citas := s.engine.Group("/api/citas", s.AuthRequired())

	citas.GET("", s.ListBookings)
	citas.GET("/:id", s.GetBooking)
	citas.POST("", s.CreateBooking)
	citas.PUT("/:id", s.UpdateBooking)
	citas.DELETE("/:id", s.DeleteBooking)
}

func (s *Server) registerCatalogRoutes() {
	s.engine.GET("/api/marcas", s.ListMarcas)
	s.engine.GET("/api/tiposproducto", s.ListTiposProducto)
}

func (s *Server) registerUserRoutes() {
	s.engine.PUT("/api/users/personal-info", s.AuthRequired(), s.UpdatePersonalInfo)
}

func (s *Server) registerSeedRoutes() {
	s.engine.GET("/api/seed", s.RunSeed)
	s.engine.GET("/api/seed2", s.RunDemoSeed)
}
