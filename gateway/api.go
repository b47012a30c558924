package gateway

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/alovak/paystack-gateway/gateway/models"
	"github.com/alovak/paystack-gateway/internal/amount"
	"github.com/alovak/paystack-gateway/internal/middleware"
	"github.com/alovak/paystack-gateway/internal/paystack"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"
)

const homeBanner = "Implementing paystack api"

// API is a HTTP API for the gateway service
type API struct {
	gateway       *Service
	logger        *slog.Logger
	customers     bool
	forwardErrors bool
}

func NewAPI(gateway *Service, cfg *Config, logger *slog.Logger) *API {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &API{
		gateway:       gateway,
		logger:        logger,
		customers:     cfg.CustomersEnabled,
		forwardErrors: cfg.ForwardUpstreamErrors,
	}
}

func (a *API) AppendRoutes(r chi.Router) {
	r.NotFound(middleware.NotFound)
	r.MethodNotAllowed(middleware.NotFound)

	r.Get("/", a.home)
	r.Get("/-/live", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	r.Route("/transaction", func(r chi.Router) {
		r.Post("/initialize", a.initializeTransaction)
		r.Get("/verify", a.verifyTransaction)
		if a.customers {
			r.Post("/create-customer", a.createCustomer)
			r.Get("/customers", a.listCustomers)
		}
	})
}

func (a *API) home(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, homeBanner)
}

// initializeTransaction handles POST /transaction/initialize?id=2&quantity=3
func (a *API) initializeTransaction(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	id, err := amount.ParseProductID(q.Get("id"))
	if err != nil {
		middleware.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	quantity, err := amount.ParseQuantity(q.Get("quantity"))
	if err != nil {
		middleware.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	body, err := a.gateway.InitializeTransaction(r.Context(), models.ChargeRequest{
		ProductID: id,
		Quantity:  quantity,
	})
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeUpstreamBody(w, body)
}

func (a *API) verifyTransaction(w http.ResponseWriter, r *http.Request) {
	body, err := a.gateway.VerifyTransaction(r.Context(), r.URL.Query().Get("reference"))
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeUpstreamBody(w, body)
}

// createCustomer forwards {"first_name","last_name","email"} as received.
// An empty body is forwarded as an empty customer. encoding/json is used
// here because it hands an explicit null to json.RawMessage instead of
// dropping it.
func (a *API) createCustomer(w http.ResponseWriter, r *http.Request) {
	customer := models.Customer{}
	err := json.NewDecoder(r.Body).Decode(&customer)
	if err != nil && !errors.Is(err, io.EOF) {
		middleware.WriteJSONError(w, http.StatusBadRequest, "malformed customer body: "+err.Error())
		return
	}

	body, err := a.gateway.CreateCustomer(r.Context(), customer)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	// upstream answers 200 or 201; callers always get 200
	writeUpstreamBody(w, body)
}

func (a *API) listCustomers(w http.ResponseWriter, r *http.Request) {
	body, err := a.gateway.ListCustomers(r.Context())
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeUpstreamBody(w, body)
}

func writeUpstreamBody(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

// writeError is the single place gateway errors become HTTP responses.
func (a *API) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if se, ok := paystack.AsStatusError(err); ok {
		a.logger.Error("upstream rejected request",
			slog.String("op", se.Op),
			slog.Int("status", se.StatusCode),
			slog.String("path", r.URL.Path),
		)
		if a.forwardErrors && len(se.Body) > 0 {
			ctype := se.ContentType
			if ctype == "" {
				ctype = "application/json; charset=utf-8"
			}
			w.Header().Set("Content-Type", ctype)
			w.WriteHeader(se.StatusCode)
			w.Write(se.Body)
			return
		}
		http.Error(w, se.Error(), se.StatusCode)
		return
	}

	switch {
	case errors.Is(err, ErrNotFound):
		middleware.WriteJSONError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvalidInput):
		middleware.WriteJSONError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, paystack.ErrResponseTooLarge):
		a.logger.Error("upstream response too large", slog.String("path", r.URL.Path), slog.Any("err", err))
		http.Error(w, paystack.ErrResponseTooLarge.Error(), http.StatusBadGateway)
	case errors.Is(err, paystack.ErrUpstreamUnavailable):
		a.logger.Error("upstream unavailable", slog.String("path", r.URL.Path), slog.Any("err", err))
		http.Error(w, paystack.ErrUpstreamUnavailable.Error(), http.StatusBadGateway)
	default:
		a.logger.Error("handling request", slog.String("path", r.URL.Path), slog.Any("err", err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
