package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/go-playground/validator/v10"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
	"go-fx-widget/convert"
	"go-fx-widget/domain"
	"go-fx-widget/rates"
	"go-fx-widget/widget"
	"net/http"
)

// Server dependencies for HTTP Server functions
type Server struct {
	widget  *widget.Widget
	session *widget.Session
	table   *rates.Table
	metrics http.Handler
	logger  log.Logger

	validate *validator.Validate
	router   *httprouter.Router
	handler  http.Handler
}

// Options optional Server settings
type Options struct {
	// AllowedOrigins for cross-origin browser requests. Empty disables CORS headers.
	AllowedOrigins []string

	// Metrics served on /metrics when set
	Metrics http.Handler

	Logger log.Logger
}

// NewServer builds a Server exposing one widget session
func NewServer(w *widget.Widget, session *widget.Session, table *rates.Table, opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = log.NewNopLogger()
	}

	server := &Server{
		widget:   w,
		session:  session,
		table:    table,
		metrics:  opts.Metrics,
		logger:   logger,
		validate: validator.New(),
		router:   httprouter.New(),
	}
	err := server.validate.RegisterValidation("currency", func(fl validator.FieldLevel) bool {
		return table.Supports(domain.Currency(fl.Field().String()))
	})
	if err != nil {
		panic(fmt.Sprintf("http: registering currency validation: %v", err))
	}
	server.routes()

	server.handler = server.router
	if len(opts.AllowedOrigins) > 0 {
		server.handler = cors.New(cors.Options{
			AllowedOrigins: opts.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
			AllowedHeaders: []string{"Content-Type"},
		}).Handler(server.router)
	}
	return server
}

func (s *Server) routes() {
	s.router.GET("/api/currencies", s.currencies())
	s.router.GET("/api/state", s.state())
	s.router.POST("/api/convert", s.convert())
	s.router.POST("/api/swap", s.swap())
	s.router.PUT("/api/pair", s.pair())
	s.router.GET("/api/history", s.history())
	s.router.DELETE("/api/history", s.clearHistory())
	if s.metrics != nil {
		s.router.Handler(http.MethodGet, "/metrics", s.metrics)
	}
}

func (s *Server) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(rw, r)
}

// currencies lists the supported currencies with display metadata
func (s *Server) currencies() httprouter.Handle {
	return func(rw http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		s.writeJSON(rw, http.StatusOK, s.table.Catalog())
	}
}

// state returns the whole widget state
func (s *Server) state() httprouter.Handle {
	return func(rw http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		s.writeJSON(rw, http.StatusOK, newStateResponse(s.session.State()))
	}
}

// convert produces HTTP handler for currency conversions
func (s *Server) convert() httprouter.Handle {

	// request for unmarshalling JSON requests posted by clients.
	// Currencies default to the session's current pair.
	type request struct {
		Amount       amountInput     `json:"amount"`
		FromCurrency domain.Currency `json:"fromCurrency" validate:"omitempty,currency"`
		ToCurrency   domain.Currency `json:"toCurrency" validate:"omitempty,currency"`
	}

	// response for marshalling JSON responses to return to clients
	type response struct {
		Exchange     domain.Rate     `json:"exchange"`
		Amount       domain.Amount   `json:"amount"`
		Original     domain.Amount   `json:"original"`
		FromCurrency domain.Currency `json:"fromCurrency"`
		ToCurrency   domain.Currency `json:"toCurrency"`
		Symbol       string          `json:"symbol"`
	}

	return func(rw http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		var req request
		if !s.decode(rw, r, &req) {
			return
		}

		state, err := s.session.Apply(r.Context(), func(ctx context.Context, st widget.State) (widget.State, error) {
			if req.FromCurrency != "" && req.FromCurrency != st.From {
				st = s.widget.SelectFrom(st, req.FromCurrency)
			}
			if req.ToCurrency != "" && req.ToCurrency != st.To {
				st = s.widget.SelectTo(st, req.ToCurrency)
			}
			st = s.widget.SetAmount(st, string(req.Amount))
			return s.widget.Convert(ctx, st)
		})
		switch {
		case errors.Is(err, convert.ErrInvalidAmount):
			s.writeError(rw, http.StatusBadRequest, "invalid amount")
			return
		case errors.Is(err, widget.ErrConversionUnavailable):
			s.writeError(rw, http.StatusServiceUnavailable, "conversion unavailable")
			return
		case err != nil:
			level.Error(s.logger).Log("msg", "conversion failed", "err", err)
			s.writeError(rw, http.StatusInternalServerError, "failed conversion")
			return
		}

		last := state.History.Items()[0]
		s.writeJSON(rw, http.StatusOK, response{
			Exchange:     state.Result.Rate,
			Amount:       state.Result.Amount,
			Original:     last.SourceAmount,
			FromCurrency: state.From,
			ToCurrency:   state.To,
			Symbol:       rates.Symbol(state.To),
		})
	}
}

// swap exchanges the selected currencies
func (s *Server) swap() httprouter.Handle {
	return func(rw http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		state, _ := s.session.Apply(r.Context(), func(_ context.Context, st widget.State) (widget.State, error) {
			return s.widget.Swap(st), nil
		})
		s.writeJSON(rw, http.StatusOK, newStateResponse(state))
	}
}

// pair selects both currencies at once
func (s *Server) pair() httprouter.Handle {
	type request struct {
		FromCurrency domain.Currency `json:"fromCurrency" validate:"required,currency"`
		ToCurrency   domain.Currency `json:"toCurrency" validate:"required,currency"`
	}

	return func(rw http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		var req request
		if !s.decode(rw, r, &req) {
			return
		}
		state, _ := s.session.Apply(r.Context(), func(_ context.Context, st widget.State) (widget.State, error) {
			st = s.widget.SelectFrom(st, req.FromCurrency)
			return s.widget.SelectTo(st, req.ToCurrency), nil
		})
		s.writeJSON(rw, http.StatusOK, newStateResponse(state))
	}
}

// history lists past conversions, newest first
func (s *Server) history() httprouter.Handle {
	return func(rw http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		s.writeJSON(rw, http.StatusOK, newHistoryResponse(s.session.State().History.Items()))
	}
}

// clearHistory empties the history
func (s *Server) clearHistory() httprouter.Handle {
	return func(rw http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		_, _ = s.session.Apply(r.Context(), func(_ context.Context, st widget.State) (widget.State, error) {
			return s.widget.ClearHistory(st), nil
		})
		rw.WriteHeader(http.StatusNoContent)
	}
}

// decode reads and validates a JSON body, writing a 400 response on failure
func (s *Server) decode(rw http.ResponseWriter, r *http.Request, v interface{}) bool {
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.writeError(rw, http.StatusBadRequest, "invalid json")
		return false
	}
	if err := s.validate.Struct(v); err != nil {
		s.writeError(rw, http.StatusBadRequest, validationMessage(err))
		return false
	}
	return true
}

// validationMessage tells a missing field apart from an unsupported currency
func validationMessage(err error) string {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) {
		for _, fe := range errs {
			if fe.Tag() == "required" {
				return "missing currency"
			}
		}
	}
	return "unsupported currency"
}

// writeJSON encodes v before writing anything, so an encoding failure becomes a 500
func (s *Server) writeJSON(rw http.ResponseWriter, status int, v interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		level.Error(s.logger).Log("msg", "failed json encoding", "err", err)
		buf.Reset()
		buf.WriteString(`{"error":"failed json encoding"}` + "\n")
		status = http.StatusInternalServerError
	}
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(status)
	_, _ = rw.Write(buf.Bytes())
}

func (s *Server) writeError(rw http.ResponseWriter, status int, msg string) {
	s.writeJSON(rw, status, map[string]string{"error": msg})
}
