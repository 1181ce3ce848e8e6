package router

import (
	"context"
	"net/http"
	"net/netip"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/crypto/bcrypt"

	_ "pick-your-pup/docs"
	"pick-your-pup/internal/adapters/auth/passwords"
	"pick-your-pup/internal/adapters/auth/tokens"
	mem "pick-your-pup/internal/adapters/storage/memory"
	pg "pick-your-pup/internal/adapters/storage/postgres"
	"pick-your-pup/internal/adapters/storage/seed"
	"pick-your-pup/internal/domain/cart"
	"pick-your-pup/internal/domain/catalog"
	"pick-your-pup/internal/domain/contact"
	"pick-your-pup/internal/domain/orders"
	"pick-your-pup/internal/domain/search"
	"pick-your-pup/internal/domain/users"
	"pick-your-pup/internal/middleware"
	"pick-your-pup/internal/platform/config"
	"pick-your-pup/internal/platform/httpjson"
	"pick-your-pup/internal/platform/logger"
	"pick-your-pup/internal/platform/metrics"
	"pick-your-pup/internal/ports/auth"
)

type Options struct {
	Logger  logger.Logger
	Metrics *metrics.Metrics

	// Opcional: si viene, usa Postgres. Si no, in-memory (Memory o uno nuevo con el catálogo de ejemplo).
	DB     *sqlx.DB
	Memory *mem.Store

	// Si son nil se usa un JWT con config.DevJWTSecret.
	Verifier auth.AuthVerifier
	Issuer   auth.TokenIssuer
	Hasher   users.PasswordHasher

	AllowedOrigins []string

	// Sólo desde estos peers se respeta X-Forwarded-For / X-Real-IP (afecta el rate limit).
	TrustedProxies []netip.Prefix
	AuthRatePerSec float64
	AuthRateBurst  int

	// Puede ser nil (sin reenvío de mensajes de contacto).
	ContactForwarder contact.Forwarder

	// Directorio del frontend; vacío => no se sirven estáticos.
	StaticDir string
}

// stores agrupa los repos de un backend; catalog y cart cubren además los
// puertos que necesita orders.
type stores struct {
	users   users.Repository
	catalog interface {
		catalog.Repository
		orders.PuppyReserver
	}
	cart interface {
		cart.Repository
		orders.CartClearer
	}
	orders  orders.Repository
	search  search.Repository
	contact contact.Repository
	tx      orders.TxManager
	ping    func(ctx context.Context) error
}

func postgresStores(db *sqlx.DB) stores {
	return stores{
		users:   pg.NewUsersRepo(db),
		catalog: pg.NewCatalogRepo(db),
		cart:    pg.NewCartRepo(db),
		orders:  pg.NewOrdersRepo(db),
		search:  pg.NewSearchRepo(db),
		contact: pg.NewContactRepo(db),
		tx:      pg.NewTxManager(db),
		ping:    db.PingContext,
	}
}

func memoryStores(s *mem.Store) stores {
	return stores{
		users:   mem.NewUsersRepo(s),
		catalog: mem.NewCatalogRepo(s),
		cart:    mem.NewCartRepo(s),
		orders:  mem.NewOrdersRepo(s),
		search:  mem.NewSearchRepo(s),
		contact: mem.NewContactRepo(s),
		tx:      s,
		ping:    func(context.Context) error { return nil },
	}
}

func (o *Options) defaults() {
	if o.Logger == nil {
		o.Logger = logger.Nop()
	}
	if o.Metrics == nil {
		o.Metrics = metrics.New()
	}
	if o.Verifier == nil || o.Issuer == nil {
		j, _ := tokens.NewJWT(config.DevJWTSecret, 24*time.Hour)
		if o.Verifier == nil {
			o.Verifier = j
		}
		if o.Issuer == nil {
			o.Issuer = j
		}
	}
	if o.Hasher == nil {
		o.Hasher = passwords.NewBcrypt(bcrypt.DefaultCost)
	}
	if len(o.AllowedOrigins) == 0 {
		o.AllowedOrigins = []string{"*"}
	}
	if o.AuthRatePerSec <= 0 {
		o.AuthRatePerSec = 5
	}
	if o.AuthRateBurst <= 0 {
		o.AuthRateBurst = 10
	}
}

func NewRouter(opts Options) http.Handler {
	opts.defaults()
	log := opts.Logger

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.TrustedRealIP(opts.TrustedProxies))
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Metrics(opts.Metrics))
	r.Use(middleware.CORS(opts.AllowedOrigins))
	r.Use(middleware.Recover(log))

	r.NotFound(notFound)
	r.MethodNotAllowed(methodNotAllowed)

	var st stores
	if opts.DB != nil {
		st = postgresStores(opts.DB)
	} else {
		store := opts.Memory
		if store == nil {
			store = mem.NewStore()
			if _, err := store.SeedCatalog(context.Background(), seed.Puppies(), seed.Products()); err != nil {
				log.Error("seed memory store", map[string]any{"err": err})
			}
		}
		st = memoryStores(store)
	}

	r.Get("/health", healthHandler(st.ping))
	r.Handle("/metrics", opts.Metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Services por módulo
	usersSvc := users.NewService(st.users, opts.Hasher, opts.Issuer)
	catalogSvc := catalog.NewService(st.catalog)
	cartSvc := cart.NewService(st.cart)
	ordersSvc := orders.NewService(st.orders, st.catalog, st.cart, st.tx)
	searchSvc := search.NewService(st.search)
	contactSvc := contact.NewService(st.contact, opts.ContactForwarder, log)

	requireAuth := middleware.RequireAuth(opts.Verifier, opts.Metrics)
	throttle := middleware.NewRateLimiter(opts.AuthRatePerSec, opts.AuthRateBurst).Handler

	// Rutas por módulo
	r.Route("/api", func(api chi.Router) {
		api.NotFound(notFound)
		api.MethodNotAllowed(methodNotAllowed)

		users.RegisterRoutes(api, usersSvc, requireAuth, throttle, opts.Metrics)
		catalog.RegisterRoutes(api, catalogSvc)
		cart.RegisterRoutes(api, cartSvc, requireAuth)
		orders.RegisterRoutes(api, ordersSvc, requireAuth, opts.Metrics)
		search.RegisterRoutes(api, searchSvc)
		contact.RegisterRoutes(api, contactSvc, opts.Metrics)
	})

	if dir := strings.TrimSpace(opts.StaticDir); dir != "" {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			r.Handle("/*", http.FileServer(http.Dir(dir)))
		} else {
			log.Warn("static dir not usable, skipping", map[string]any{"dir": dir, "err": err})
		}
	}

	return r
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	httpjson.Error(w, http.StatusNotFound, "Endpoint not found")
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	httpjson.Error(w, http.StatusMethodNotAllowed, "Method not allowed")
}

type healthResponse struct {
	Status string `json:"status"`
}

func healthHandler(ping func(ctx context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := ping(ctx); err != nil {
			logger.FromContext(r.Context(), nil).Warn("health check failed", map[string]any{"err": err})
			httpjson.Write(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable"})
			return
		}
		httpjson.Write(w, http.StatusOK, healthResponse{Status: "ok"})
	}
}
