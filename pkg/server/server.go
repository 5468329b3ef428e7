package server

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/arthur-debert/docprint/pkg/config"
	"github.com/arthur-debert/docprint/pkg/docnode"
	"github.com/arthur-debert/docprint/pkg/errors"
	"github.com/arthur-debert/docprint/pkg/loader"
	"github.com/arthur-debert/docprint/pkg/logging"
	"github.com/arthur-debert/docprint/pkg/printer"
	"github.com/arthur-debert/docprint/pkg/styles"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"
)

// MaxBodyBytes caps the size of a submitted document
const MaxBodyBytes = 10 << 20

var (
	validate      = validator.New()
	schemaDecoder = schema.NewDecoder()
)

func init() {
	schemaDecoder.IgnoreUnknownKeys(true)
}

// RenderParams are the query parameters of POST /render. Unset values fall
// back to the server's configuration.
type RenderParams struct {
	Color   string `schema:"color" validate:"omitempty,oneof=auto always never"`
	Private *bool  `schema:"private"`
	Filter  string `schema:"filter"`
	Format  string `schema:"format" validate:"omitempty,oneof=auto json yaml"`
}

// Server is the HTTP front end of the renderer
type Server struct {
	router  chi.Router
	cfg     config.Config
	theme   *styles.Theme
	maxBody int64
}

// New creates a server rendering with cfg's defaults. A nil theme means
// styles.Default().
func New(cfg config.Config, theme *styles.Theme) *Server {
	if theme == nil {
		theme = styles.Default()
	}
	s := &Server{cfg: cfg, theme: theme, maxBody: MaxBodyBytes}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger)

	r.Get("/health", s.handleHealth)
	r.Post("/render", s.handleRender)

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var params RenderParams
	if err := schemaDecoder.Decode(&params, r.URL.Query()); err != nil {
		jsonError(w, errors.Wrap(err, errors.ErrInvalidInput, "invalid query parameters"))
		return
	}
	if err := validate.Struct(&params); err != nil {
		jsonError(w, errors.Wrap(err, errors.ErrInvalidInput, "invalid query parameters"))
		return
	}

	formatName := s.cfg.Format
	if params.Format != "" {
		formatName = params.Format
	}
	format, err := loader.ParseFormat(formatName)
	if err != nil {
		jsonError(w, errors.Wrap(err, errors.ErrUnsupportedFormat, "invalid input format"))
		return
	}

	body := http.MaxBytesReader(w, r.Body, s.maxBody)
	nodes, err := loader.Decode(body, format, "request")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			err = errors.Newf(errors.ErrPayloadTooLarge, "request body exceeds %d bytes", tooLarge.Limit)
		}
		jsonError(w, err)
		return
	}

	if params.Filter != "" {
		nodes = docnode.FindByName(nodes, params.Filter)
		if len(nodes) == 0 {
			jsonError(w, errors.Newf(errors.ErrNotFound, "no node named %q", params.Filter))
			return
		}
	}

	includePrivate := s.cfg.Private
	if params.Private != nil {
		includePrivate = *params.Private
	}

	// Responses never go to a terminal, so auto means plain text
	useColor := s.cfg.Color == "always"
	if params.Color != "" {
		useColor = params.Color == "always"
	}

	p := printer.New(nodes, printer.Options{
		UseColor:       useColor,
		IncludePrivate: includePrivate,
		Theme:          s.theme,
	})

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if err := p.Print(w); err != nil {
		logger := logging.GetLogger("server")
		logger.Warn().Err(err).Msg("Failed to write render response")
	}
}

// statusFor maps error codes to HTTP statuses
func statusFor(code errors.ErrorCode) int {
	switch code {
	case errors.ErrInvalidInput, errors.ErrDecode, errors.ErrUnsupportedFormat, errors.ErrFileAccess:
		return http.StatusBadRequest
	case errors.ErrNotFound:
		return http.StatusNotFound
	case errors.ErrPayloadTooLarge:
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

func jsonError(w http.ResponseWriter, err error) {
	code := errors.GetErrorCode(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusFor(code))
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error": err.Error(),
		"code":  string(code),
	})
}
