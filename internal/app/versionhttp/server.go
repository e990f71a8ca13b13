package versionhttp

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/sir_venger/questionnaire/internal/metrics"
	"github.com/sir_venger/questionnaire/internal/usecase/versionsvc"
	"github.com/sir_venger/questionnaire/pkg/versionproto"
)

const defaultMaxBodyBytes = 10 << 20

// Options: параметры HTTP-слоя, не относящиеся к хранилищу.
type Options struct {
	FrontendDir  string
	MaxBodyBytes int64
	Metrics      *metrics.Metrics
	Logger       *zap.Logger
}

// Server serves the questionnaire versions API and the static frontend.
type Server struct {
	svc          versionsvc.Service
	frontendDir  string
	maxBodyBytes int64
	metrics      *metrics.Metrics
	log          *zap.Logger
}

// New создаёт HTTP-обработчик поверх сервиса версий.
func New(svc versionsvc.Service, opts Options) http.Handler {
	srv := &Server{
		svc:          svc,
		frontendDir:  opts.FrontendDir,
		maxBodyBytes: opts.MaxBodyBytes,
		metrics:      opts.Metrics,
		log:          opts.Logger,
	}
	if srv.maxBodyBytes <= 0 {
		srv.maxBodyBytes = defaultMaxBodyBytes
	}
	if srv.log == nil {
		srv.log = zap.NewNop()
	}

	return srv.routes()
}

// routes регистрирует API, служебные эндпоинты и раздачу фронтенда.
func (a *Server) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(requestLogger(a.log))
	// metrics снаружи Recoverer, чтобы 500 после паники тоже учитывался.
	if a.metrics != nil {
		r.Use(a.metrics.Middleware)
	}
	r.Use(middleware.Recoverer)
	if a.metrics != nil {
		r.Method(http.MethodGet, versionproto.PathMetrics, a.metrics.Handler())
	}

	r.Get(versionproto.PathHealth, a.health)

	r.Get(versionproto.PathLatestVersion, a.latestVersion)
	r.Post(versionproto.PathSaveVersion, a.saveVersion)
	r.Post(versionproto.PathSubmit, a.submit)
	r.Post(versionproto.PathReset, a.reset)

	r.Post(versionproto.PathAdminGC, a.gcOnce)

	// Наличие фронтенда проверяется один раз при старте.
	if dirExists(a.frontendDir) {
		static := a.staticHandler()
		r.Get("/", static)
		r.Head("/", static)
		r.NotFound(static)
	} else {
		a.log.Warn("frontend dir is missing", zap.String("frontend_dir", a.frontendDir))
		r.Get("/", a.frontendMissing)
	}

	return r
}
