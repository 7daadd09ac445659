// Package seed wipes and repopulates the store with fixture data. It
// backs the dev-only /api/seed and /api/seed2 routes.
package seed

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/bwmarrin/snowflake"
	authdomain "github.com/zulem090/animal-style/internal/auth/domain"
	citadomain "github.com/zulem090/animal-style/internal/cita/domain"
	marcadomain "github.com/zulem090/animal-style/internal/marca/domain"
	productodomain "github.com/zulem090/animal-style/internal/producto/domain"
	resenadomain "github.com/zulem090/animal-style/internal/resena/domain"
	tipodomain "github.com/zulem090/animal-style/internal/tipoproducto/domain"
	"github.com/zulem090/animal-style/internal/usercontext"
	usuariodomain "github.com/zulem090/animal-style/internal/usuario/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB         *gorm.DB
	Log        *zap.Logger
	GenID      *snowflake.Node
	AuthSvc    authdomain.Service
	MarcaRepo  marcadomain.Repository
	TipoRepo   tipodomain.Repository
	ResenaRepo resenadomain.Repository
}

type Service struct {
	db         *gorm.DB
	log        *zap.Logger
	genID      *snowflake.Node
	authSvc    authdomain.Service
	marcaRepo  marcadomain.Repository
	tipoRepo   tipodomain.Repository
	resenaRepo resenadomain.Repository
}

func New(p Params) *Service {
	return &Service{
		db:         p.DB,
		log:        p.Log.Named("seed"),
		genID:      p.GenID,
		authSvc:    p.AuthSvc,
		marcaRepo:  p.MarcaRepo,
		tipoRepo:   p.TipoRepo,
		resenaRepo: p.ResenaRepo,
	}
}

// Review scores are drawn from a distribution skewed heavily toward 5.
var puntuacionPool = []float64{
	4, 4.5, 5, 4, 4.5, 5, 4, 4.5, 5, 4, 4.5, 5, 4, 4.5, 5, 4, 4.5, 5, 4, 4.5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
}

var rolePool = []string{
	usercontext.RoleAdmin, usercontext.RoleAdmin, usercontext.RoleAdmin,
	usercontext.RoleAdmin, usercontext.RoleAdmin, usercontext.RoleAdmin,
	usercontext.RoleAdmin,
	usercontext.RoleUser, usercontext.RoleUser, usercontext.RoleUser,
}

var estadoPool = []string{
	productodomain.EstadoActivo, productodomain.EstadoActivo,
	productodomain.EstadoActivo, productodomain.EstadoActivo,
	productodomain.EstadoActivo, productodomain.EstadoActivo,
	productodomain.EstadoActivo,
	productodomain.EstadoInactivo, productodomain.EstadoInactivo,
	productodomain.EstadoInactivo, productodomain.EstadoInactivo,
}

var firstNames = []string{
	"Camila", "Santiago", "Valentina", "Mateo", "Isabella", "Sebastián",
	"Mariana", "Samuel", "Daniela", "Nicolás", "Gabriela", "Alejandro",
}

var lastNames = []string{
	"García", "Rodríguez", "Martínez", "López", "González", "Hernández",
	"Pérez", "Sánchez", "Ramírez", "Torres", "Flores", "Rivera",
}

var productWords = []string{
	"Collar", "Rascador", "Pelota", "Arnés", "Snack", "Juguete", "Cama",
	"Comedero", "Arena", "Shampoo", "Correa", "Transportadora",
}

// Run wipes the store and loads the fixed catalog: four product types,
// eight brands, four showcase products, fifty generated accounts plus
// the two well-known ones, and a review per user per product.
func (s *Service) Run(ctx context.Context) error {
	if err := s.wipe(ctx); err != nil {
		return err
	}

	tipos := []tipodomain.TipoProducto{
		{IDTipoProducto: 1, Nombre: "Juguete"},
		{IDTipoProducto: 2, Nombre: "Comida"},
		{IDTipoProducto: 3, Nombre: "Gimnasios"},
		{IDTipoProducto: 4, Nombre: "Camas"},
	}
	for i := range tipos {
		if err := s.tipoRepo.Create(ctx, s.db, &tipos[i]); err != nil {
			return err
		}
	}

	marcas := []marcadomain.Marca{
		{IDMarca: 1, Nombre: "Dogchow"},
		{IDMarca: 2, Nombre: "Hills"},
		{IDMarca: 3, Nombre: "Besties"},
		{IDMarca: 4, Nombre: "Pro Plan"},
		{IDMarca: 5, Nombre: "Guamba"},
		{IDMarca: 6, Nombre: "Equilibrio"},
		{IDMarca: 7, Nombre: "Inaba Premium"},
		{IDMarca: 8, Nombre: "Agility Gold"},
	}
	for i := range marcas {
		if err := s.marcaRepo.Create(ctx, s.db, &marcas[i]); err != nil {
			return err
		}
	}

	productos := fixedProductos(s.genID)
	if err := s.db.WithContext(ctx).Create(&productos).Error; err != nil {
		return err
	}

	if err := s.createGeneratedUsers(ctx, 50); err != nil {
		return err
	}

	admin := authdomain.SignUpRequest{
		Nombre: "Juan", Apellido: strPtr("Perez"), Cedula: int64Ptr(1000000),
		Email: "admin@mail.com", Usuario: "admin", Password: "123",
		Telefono: int64Ptr(3000000000),
	}
	if _, err := s.authSvc.SignUp(ctx, admin); err != nil {
		return err
	}
	// the showcase admin account gets its real role directly
	if err := s.db.WithContext(ctx).
		Model(&usuariodomain.User{}).
		Where("email = ?", "admin@mail.com").
		Update("role", usercontext.RoleAdmin).Error; err != nil {
		return err
	}

	regular := authdomain.SignUpRequest{
		Nombre: "Andrés", Apellido: strPtr("Posada"), Cedula: int64Ptr(1000001),
		Email: "user@mail.com", Usuario: "user", Password: "123",
		Telefono: int64Ptr(3000000001),
	}
	if _, err := s.authSvc.SignUp(ctx, regular); err != nil {
		return err
	}

	if err := s.createResenas(ctx); err != nil {
		return err
	}

	s.log.Info("seed completed")
	return nil
}

// RunDemo loads a larger generated catalog: twenty brands and types,
// twenty products with mixed statuses, fifty accounts, and reviews.
func (s *Service) RunDemo(ctx context.Context) error {
	if err := s.wipe(ctx); err != nil {
		return err
	}

	for i := 0; i < 20; i++ {
		word := productWords[rand.Intn(len(productWords))]
		tipo := tipodomain.TipoProducto{
			IDTipoProducto: int64(i + 1),
			Nombre:         fmt.Sprintf("%s %d", word, i+1),
		}
		if err := s.tipoRepo.Create(ctx, s.db, &tipo); err != nil {
			return err
		}
		marca := marcadomain.Marca{
			IDMarca: int64(i + 1),
			Nombre:  fmt.Sprintf("Marca %s %d", word, i+1),
		}
		if err := s.marcaRepo.Create(ctx, s.db, &marca); err != nil {
			return err
		}
	}

	productos := make([]productodomain.Producto, 0, 20)
	for i := 0; i < 20; i++ {
		idTipo := int64(rand.Intn(20) + 1)
		idMarca := int64(rand.Intn(20) + 1)
		productos = append(productos, productodomain.Producto{
			IDProducto:  int64(i + 1),
			Nombre:      fmt.Sprintf("%s %d", productWords[rand.Intn(len(productWords))], i+1),
			Descripcion: strPtr("Producto de demostración para el catálogo."),
			Precio:      float64(rand.Intn(999500) + 500),
			Cantidad:    int64(rand.Intn(2000) + 1),
			Estado:      estadoPool[rand.Intn(len(estadoPool))],
			Imagen:      placeholderSVG(i),
			IDTipo:      &idTipo,
			IDMarca:     &idMarca,
		})
	}
	if err := s.db.WithContext(ctx).Create(&productos).Error; err != nil {
		return err
	}

	if err := s.createGeneratedUsers(ctx, 50); err != nil {
		return err
	}

	if err := s.createResenas(ctx); err != nil {
		return err
	}

	s.log.Info("demo seed completed")
	return nil
}

func (s *Service) wipe(ctx context.Context) error {
	tables := []any{
		&resenadomain.Resena{},
		&citadomain.Cita{},
		&productodomain.Producto{},
		&marcadomain.Marca{},
		&tipodomain.TipoProducto{},
		&authdomain.Session{},
		&usuariodomain.User{},
	}
	for _, table := range tables {
		if err := s.db.WithContext(ctx).Where("1 = 1").Delete(table).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) createGeneratedUsers(ctx context.Context, count int) error {
	// one hash shared across generated accounts; they all use "123"
	hashed, err := bcrypt.GenerateFromPassword([]byte("123"), 10)
	if err != nil {
		return err
	}

	users := make([]usuariodomain.User, 0, count)
	for i := 0; i < count; i++ {
		nombre := firstNames[rand.Intn(len(firstNames))]
		apellido := lastNames[rand.Intn(len(lastNames))]

		usuario := fmt.Sprintf("%s%d", nombre, i+1)
		role := rolePool[rand.Intn(len(rolePool))]
		if i == 0 {
			usuario = "user1"
			role = usercontext.RoleAdmin
		}

		telefono := int64(3000000000 + rand.Intn(9099999))
		users = append(users, usuariodomain.User{
			ID:        fmt.Sprintf("seed-user-%d", i+1),
			Nombre:    nombre,
			Apellido:  &apellido,
			Cedula:    int64(1000000000 + rand.Intn(999999999)),
			Email:     fmt.Sprintf("%d@m.com", i+1),
			Usuario:   usuario,
			Telefono:  &telefono,
			Password:  string(hashed),
			Role:      role,
			Direccion: strPtr(fmt.Sprintf("Calle %d #%d-%d", rand.Intn(150)+1, rand.Intn(90)+1, rand.Intn(90)+1)),
		})
	}

	return s.db.WithContext(ctx).Create(&users).Error
}

func (s *Service) createResenas(ctx context.Context) error {
	var userIDs []string
	if err := s.db.WithContext(ctx).Model(&usuariodomain.User{}).Pluck("id", &userIDs).Error; err != nil {
		return err
	}
	var productIDs []int64
	if err := s.db.WithContext(ctx).Model(&productodomain.Producto{}).Pluck("id_producto", &productIDs).Error; err != nil {
		return err
	}

	from := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	resenas := make([]resenadomain.Resena, 0, len(userIDs)*len(productIDs))
	for _, userID := range userIDs {
		for _, productID := range productIDs {
			fecha := from.Add(time.Duration(rand.Int63n(int64(to.Sub(from)))))
			resenas = append(resenas, resenadomain.Resena{
				IDResena:    s.genID.Generate().Int64(),
				IDProducto:  productID,
				IDUsuario:   userID,
				Puntuacion:  puntuacionPool[rand.Intn(len(puntuacionPool))],
				Comentario:  strPtr("Muy buen producto, a mi mascota le encantó."),
				FechaResena: fecha,
			})
		}
	}

	return s.resenaRepo.CreateMany(ctx, s.db, resenas)
}

func fixedProductos(genID *snowflake.Node) []productodomain.Producto {
	churuDesc := "¡Estos sabrosos snacks para gatos se hacen con atún silvestre o pollo criado en granjas puro y natural! Disponibles en nueve variedades deliciosas, los Churu® Purés tienen el alto contenido de humedad necesario para la salud de los felinos."
	equilibrioDesc := "Equilibrio Gato Adulto Castrado +7 Años 1.5 Kg es un alimento completo para gatos mayores de 7 años. Combina ingredientes que colaboran al control del peso, previene la acumulación de pelotas de pelo en el tracto digestivo, auxilia en el mantenimiento de la salud del tracto urinario."
	camaDesc := "Gracias a su forma redonda, la cama para perros tipo donut de alta calidad es ideal para las mascotas a las que les encanta acurrucarse. El borde elevado de esta cama para perros crea una sensación de seguridad y proporciona soporte para la cabeza y el cuello."
	agilityDesc := "Agility Gold - Pouch Trozos De Cordero Cachorro contiene 70% de carne y 30% de salsa en forma de trozos, con todos los nutrientes que requieren los perros para su óptima nutrición."

	marca := func(id int64) *int64 { return &id }
	tipo := func(id int64) *int64 { return &id }

	return []productodomain.Producto{
		{
			IDProducto: genID.Generate().Int64(), Nombre: "Churu inaba",
			Descripcion: &churuDesc, Precio: 24000, Cantidad: 90,
			Estado: productodomain.EstadoActivo, Imagen: placeholderSVG(0),
			IDMarca: marca(7), IDTipo: tipo(2),
		},
		{
			IDProducto: genID.Generate().Int64(), Nombre: "Equilibrio Gato Adulto Castrado +7 Años 1.5 Kg",
			Descripcion: &equilibrioDesc, Precio: 90000, Cantidad: 70,
			Estado: productodomain.EstadoActivo, Imagen: placeholderSVG(1),
			IDMarca: marca(6), IDTipo: tipo(2),
		},
		{
			IDProducto: genID.Generate().Int64(), Nombre: "Cama para perro antiestrés tipo Donut",
			Descripcion: &camaDesc, Precio: 120000, Cantidad: 100,
			Estado: productodomain.EstadoActivo, Imagen: placeholderSVG(2),
			IDMarca: marca(5), IDTipo: tipo(4),
		},
		{
			IDProducto: genID.Generate().Int64(), Nombre: "Agility Gold Pouch Trozos De Cordero Cachorro",
			Descripcion: &agilityDesc, Precio: 6000, Cantidad: 40,
			Estado: productodomain.EstadoActivo, Imagen: placeholderSVG(3),
			IDMarca: marca(8), IDTipo: tipo(2),
		},
	}
}

var svgColors = []string{"#8a2be2", "#2e8b57", "#cd5c5c", "#4682b4", "#daa520"}

func placeholderSVG(i int) []byte {
	color := svgColors[i%len(svgColors)]
	return []byte(fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" width="640" height="480"><rect width="640" height="480" fill="%s"/></svg>`,
		color,
	))
}

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }
