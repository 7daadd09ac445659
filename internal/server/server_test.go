package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	authdomain "github.com/zulem090/animal-style/internal/auth/domain"
	authrepo "github.com/zulem090/animal-style/internal/auth/repository"
	authservice "github.com/zulem090/animal-style/internal/auth/service"
	"github.com/zulem090/animal-style/internal/auth/session"
	citadomain "github.com/zulem090/animal-style/internal/cita/domain"
	citarepo "github.com/zulem090/animal-style/internal/cita/repository"
	citaservice "github.com/zulem090/animal-style/internal/cita/service"
	"github.com/zulem090/animal-style/internal/config"
	marcadomain "github.com/zulem090/animal-style/internal/marca/domain"
	marcarepo "github.com/zulem090/animal-style/internal/marca/repository"
	marcaservice "github.com/zulem090/animal-style/internal/marca/service"
	productodomain "github.com/zulem090/animal-style/internal/producto/domain"
	productorepo "github.com/zulem090/animal-style/internal/producto/repository"
	productoservice "github.com/zulem090/animal-style/internal/producto/service"
	resenadomain "github.com/zulem090/animal-style/internal/resena/domain"
	resenarepo "github.com/zulem090/animal-style/internal/resena/repository"
	resenaservice "github.com/zulem090/animal-style/internal/resena/service"
	"github.com/zulem090/animal-style/internal/search"
	"github.com/zulem090/animal-style/internal/seed"
	tipodomain "github.com/zulem090/animal-style/internal/tipoproducto/domain"
	tiporepo "github.com/zulem090/animal-style/internal/tipoproducto/repository"
	tiposervice "github.com/zulem090/animal-style/internal/tipoproducto/service"
	"github.com/zulem090/animal-style/internal/usercontext"
	usuariodomain "github.com/zulem090/animal-style/internal/usuario/domain"
	usuariorepo "github.com/zulem090/animal-style/internal/usuario/repository"
	usuarioservice "github.com/zulem090/animal-style/internal/usuario/service"
	"github.com/zulem090/animal-style/pkg/db"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestServer(t *testing.T) (*Server, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbConn, err := db.NewTest()
	require.NoError(t, err)
	require.NoError(t, dbConn.AutoMigrate(
		&usuariodomain.User{},
		&authdomain.Session{},
		&tipodomain.TipoProducto{},
		&marcadomain.Marca{},
		&productodomain.Producto{},
		&citadomain.Cita{},
		&resenadomain.Resena{},
	))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	cfg := config.Config{
		Environment:     "test",
		AuthTokenSecret: "test-secret",
		CORSOrigins:     []string{"http://localhost:3000"},
	}
	tuning := config.NewStaticTuningHolder(config.DefaultTuning())
	log := zap.NewNop()

	authSvc := authservice.New(authservice.Params{
		Cfg: cfg, DB: dbConn, Log: log, GenID: node, Tuning: tuning,
		UserRepo: usuariorepo.Provide(), SessionRepo: authrepo.ProvideSessionRepository(),
	})
	productoSvc := productoservice.New(productoservice.Params{
		DB: dbConn, Log: log, GenID: node, Repo: productorepo.Provide(),
	})
	citaSvc := citaservice.New(citaservice.Params{
		DB: dbConn, Log: log, GenID: node, Repo: citarepo.Provide(), Tuning: tuning,
	})
	marcaSvc := marcaservice.New(marcaservice.Params{DB: dbConn, Log: log, Repo: marcarepo.Provide()})
	tipoSvc := tiposervice.New(tiposervice.Params{DB: dbConn, Log: log, Repo: tiporepo.Provide()})
	usuarioSvc := usuarioservice.New(usuarioservice.Params{DB: dbConn, Log: log, Repo: usuariorepo.Provide()})
	resenaSvc := resenaservice.New(resenaservice.Params{DB: dbConn, Log: log, Repo: resenarepo.Provide()})
	seeder := seed.New(seed.Params{
		DB: dbConn, Log: log, GenID: node, AuthSvc: authSvc,
		MarcaRepo: marcarepo.Provide(), TipoRepo: tiporepo.Provide(),
		ResenaRepo: resenarepo.Provide(),
	})

	engine := NewEngine(cfg, log, newHTTPMetrics(prometheus.NewRegistry()))
	srv := NewServer(ServerParams{
		Gin: engine, Cfg: cfg, Log: log, Tuning: tuning,
		Sessions: session.NewManager(cfg), AuthSvc: authSvc,
		ProductoSvc: productoSvc, CitaSvc: citaSvc, MarcaSvc: marcaSvc,
		TipoSvc: tipoSvc, UsuarioSvc: usuarioSvc, ResenaSvc: resenaSvc,
		Searcher: search.NewProductSearcher(productoSvc), Seeder: seeder,
	})
	return srv, dbConn
}

func doJSON(t *testing.T, srv *Server, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	srv.Engine().ServeHTTP(w, req)
	return w
}

func registerAndLogin(t *testing.T, srv *Server, dbConn *gorm.DB, usuario, email string, admin bool) *http.Cookie {
	t.Helper()

	w := doJSON(t, srv, http.MethodPost, "/api/auth/register", map[string]any{
		"nombre":   "Test",
		"cedula":   123456,
		"email":    email,
		"usuario":  usuario,
		"password": "123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	if admin {
		require.NoError(t, dbConn.Model(&usuariodomain.User{}).
			Where("email = ?", email).
			Update("role", usercontext.RoleAdmin).Error)
	}

	w = doJSON(t, srv, http.MethodPost, "/api/auth/login", map[string]any{
		"usuario":  usuario,
		"password": "123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == session.DefaultCookieName {
			return cookie
		}
	}
	t.Fatal("no session cookie set")
	return nil
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doJSON(t, srv, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRegisterLoginLogout(t *testing.T) {
	srv, dbConn := newTestServer(t)

	cookie := registerAndLogin(t, srv, dbConn, "juan", "juan@mail.com", false)

	w := doJSON(t, srv, http.MethodPost, "/api/auth/logout", nil, cookie)
	assert.Equal(t, http.StatusOK, w.Code)

	// the revoked session no longer authenticates
	w = doJSON(t, srv, http.MethodGet, "/api/citas", nil, cookie)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginWrongPasswordUnauthorized(t *testing.T) {
	srv, dbConn := newTestServer(t)
	registerAndLogin(t, srv, dbConn, "juan", "juan@mail.com", false)

	w := doJSON(t, srv, http.MethodPost, "/api/auth/login", map[string]any{
		"usuario":  "juan",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProductMutationRequiresAdmin(t *testing.T) {
	srv, dbConn := newTestServer(t)

	userCookie := registerAndLogin(t, srv, dbConn, "user", "user@mail.com", false)
	adminCookie := registerAndLogin(t, srv, dbConn, "admin", "admin@mail.com", true)

	payload := map[string]any{"nombre": "Churu inaba", "precio": 24000, "cantidad": 90}

	w := doJSON(t, srv, http.MethodPost, "/api/products", payload)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, srv, http.MethodPost, "/api/products", payload, userCookie)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, srv, http.MethodPost, "/api/products", payload, adminCookie)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestListProductsVisibility(t *testing.T) {
	srv, dbConn := newTestServer(t)
	adminCookie := registerAndLogin(t, srv, dbConn, "admin", "admin@mail.com", true)

	w := doJSON(t, srv, http.MethodPost, "/api/products", map[string]any{
		"nombre": "Churu inaba", "precio": 24000, "cantidad": 90,
	}, adminCookie)
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Data productodomain.ProductoDto `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, srv, http.MethodPost,
		fmt.Sprintf("/api/products/%d/deactivate", created.Data.IDProducto), nil, adminCookie)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// anonymous callers never see inactive products
	w = doJSON(t, srv, http.MethodGet, "/api/products", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var anon struct {
		Data []productodomain.ProductoDto `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &anon))
	assert.Empty(t, anon.Data)

	w = doJSON(t, srv, http.MethodGet, "/api/products", nil, adminCookie)
	require.Equal(t, http.StatusOK, w.Code)
	var all struct {
		Data []productodomain.ProductoDto `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	assert.Len(t, all.Data, 1)
}

func TestListProductsOffsetValidation(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doJSON(t, srv, http.MethodGet, "/api/products?offset=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "offset must be a number")
}

func TestGetProductNotFound(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doJSON(t, srv, http.MethodGet, "/api/products/42", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "No product with id 42 found")
}

func TestDuplicateRegisterConflict(t *testing.T) {
	srv, dbConn := newTestServer(t)
	registerAndLogin(t, srv, dbConn, "juan", "juan@mail.com", false)

	w := doJSON(t, srv, http.MethodPost, "/api/auth/register", map[string]any{
		"nombre":   "Otro",
		"cedula":   999,
		"email":    "juan@mail.com",
		"usuario":  "otro",
		"password": "123",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "ya existe en el sistema")
}

func TestBookingsRequireAuthAndFilterOwner(t *testing.T) {
	srv, dbConn := newTestServer(t)

	w := doJSON(t, srv, http.MethodGet, "/api/citas", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	aCookie := registerAndLogin(t, srv, dbConn, "ana", "ana@mail.com", false)
	bCookie := registerAndLogin(t, srv, dbConn, "beto", "beto@mail.com", false)

	var ana usuariodomain.User
	require.NoError(t, dbConn.Where("usuario = ?", "ana").First(&ana).Error)

	w = doJSON(t, srv, http.MethodPost, "/api/citas", map[string]any{
		"tipoCita":      "Spa",
		"nombreMascota": "Rocky",
		"tipoMascota":   "Canino",
		"fechaHoraCita": nowPlusDays(7),
		"idUsuario":     ana.ID,
	}, aCookie)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var own struct {
		Data []citadomain.BookingDto `json:"data"`
	}
	w = doJSON(t, srv, http.MethodGet, "/api/citas", nil, aCookie)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &own))
	assert.Len(t, own.Data, 1)

	var other struct {
		Data []citadomain.BookingDto `json:"data"`
	}
	w = doJSON(t, srv, http.MethodGet, "/api/citas", nil, bCookie)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &other))
	assert.Empty(t, other.Data)
}

func TestSearchPreviewMinChars(t *testing.T) {
	srv, dbConn := newTestServer(t)
	adminCookie := registerAndLogin(t, srv, dbConn, "admin", "admin@mail.com", true)

	w := doJSON(t, srv, http.MethodPost, "/api/products", map[string]any{
		"nombre": "Churu inaba", "precio": 24000, "cantidad": 90,
	}, adminCookie)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, srv, http.MethodGet, "/api/search/products?nombre=c", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var short struct {
		Data []search.Item `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &short))
	assert.Empty(t, short.Data)

	// term matches the stored casing; name matching is case-sensitive
	w = doJSON(t, srv, http.MethodGet, "/api/search/products?nombre=Chu", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var found struct {
		Data []search.Item `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &found))
	require.Len(t, found.Data, 1)
	assert.Equal(t, "Churu inaba", found.Data[0].Nombre)
}

func TestSeedEndpoint(t *testing.T) {
	srv, dbConn := newTestServer(t)

	w := doJSON(t, srv, http.MethodGet, "/api/seed", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "Ejecutado")

	var productCount int64
	require.NoError(t, dbConn.Model(&productodomain.Producto{}).Count(&productCount).Error)
	assert.Equal(t, int64(4), productCount)

	var userCount int64
	require.NoError(t, dbConn.Model(&usuariodomain.User{}).Count(&userCount).Error)
	assert.Equal(t, int64(52), userCount)

	// seeded credentials work
	w = doJSON(t, srv, http.MethodPost, "/api/auth/login", map[string]any{
		"usuario":  "admin",
		"password": "123",
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSeedHiddenInProduction(t *testing.T) {
	srv, _ := newTestServer(t)
	srv.cfg.Environment = "production"

	w := doJSON(t, srv, http.MethodGet, "/api/seed", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func nowPlusDays(days int) string {
	return time.Now().AddDate(0, 0, days).Format(time.RFC3339)
}
