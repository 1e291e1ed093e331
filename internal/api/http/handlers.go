package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"estate-console/internal/backend"
	"estate-console/internal/config"
	"estate-console/internal/domain"
	"estate-console/internal/pagination"
	"estate-console/internal/service"
	"estate-console/internal/store"
)

// ConsoleHandler serves the read surface over the cached estate data.
type ConsoleHandler struct {
	property  service.PropertyService
	admins    service.AdminService
	contracts service.ContractService
	state     *store.Store
	feed      *pagination.Pager[domain.Apartment]
	pageSize  int
}

// NewConsoleHandler creates the handler set for the console API.
func NewConsoleHandler(property service.PropertyService, admins service.AdminService, contracts service.ContractService, state *store.Store, cfg *config.Config) *ConsoleHandler {
	h := &ConsoleHandler{
		property:  property,
		admins:    admins,
		contracts: contracts,
		state:     state,
		feed:      pagination.NewPager[domain.Apartment](cfg.Pager.PageSize, time.Duration(cfg.Pager.LoadDelayMS)*time.Millisecond),
		pageSize:  cfg.Pager.PageSize,
	}
	h.feed.Reset(state.Property.Apartments())
	return h
}

type pagedResponse struct {
	Items      any  `json:"items"`
	Page       int  `json:"page"`
	PageSize   int  `json:"page_size"`
	TotalPages int  `json:"total_pages"`
	TotalItems int  `json:"total_items"`
	HasNext    bool `json:"has_next"`
}

// HandleHealth reports liveness.
func (h *ConsoleHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// HandleListApartments returns one page of cached rental apartments. Query
// params: page (1-based), page_size.
func (h *ConsoleHandler) HandleListApartments(w http.ResponseWriter, r *http.Request) {
	apartments := h.state.Property.Apartments()
	writePaged(w, r, apartments, h.pageSize)
}

type feedResponse struct {
	Items      any  `json:"items"`
	Page       int  `json:"page"`
	TotalPages int  `json:"total_pages"`
	HasMore    bool `json:"has_more"`
	Loaded     bool `json:"loaded"`
}

func (h *ConsoleHandler) writeFeed(w http.ResponseWriter, loaded bool) {
	writeJSON(w, http.StatusOK, feedResponse{
		Items:      h.feed.Displayed(),
		Page:       h.feed.CurrentPage(),
		TotalPages: h.feed.TotalPages(),
		HasMore:    h.feed.HasMore(),
		Loaded:     loaded,
	})
}

// HandleApartmentFeed returns the cumulative apartment window: pages 1..n of
// the cached list, as loaded so far.
func (h *ConsoleHandler) HandleApartmentFeed(w http.ResponseWriter, r *http.Request) {
	h.writeFeed(w, false)
}

// HandleApartmentFeedMore grows the feed window by one page. Calls made while
// a load is in flight or once the list is exhausted report loaded=false and
// leave the window unchanged.
func (h *ConsoleHandler) HandleApartmentFeedMore(w http.ResponseWriter, r *http.Request) {
	h.writeFeed(w, h.feed.LoadMore())
}

// HandleApartmentFeedReset reloads the feed source from the cache and rewinds
// to the first page.
func (h *ConsoleHandler) HandleApartmentFeedReset(w http.ResponseWriter, r *http.Request) {
	h.feed.Reset(h.state.Property.Apartments())
	h.writeFeed(w, false)
}

// HandleGetApartment returns one cached rental apartment by id.
func (h *ConsoleHandler) HandleGetApartment(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	apartment, ok := h.state.Property.Apartment(id)
	if !ok {
		writeError(w, http.StatusNotFound, "apartment not found")
		return
	}
	writeJSON(w, http.StatusOK, apartment)
}

// HandleApartmentWhatsApp returns the share link for a rental apartment.
func (h *ConsoleHandler) HandleApartmentWhatsApp(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	url, err := h.property.WhatsAppLink(r.Context(), id)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}

// HandleListSales returns one page of cached sale listings.
func (h *ConsoleHandler) HandleListSales(w http.ResponseWriter, r *http.Request) {
	writePaged(w, r, h.state.Property.Sales(), h.pageSize)
}

// HandleListAdmins returns one page of cached admin accounts.
func (h *ConsoleHandler) HandleListAdmins(w http.ResponseWriter, r *http.Request) {
	writePaged(w, r, h.state.Admins.All(), h.pageSize)
}

// HandleListContracts returns one page of cached rental contracts.
func (h *ConsoleHandler) HandleListContracts(w http.ResponseWriter, r *http.Request) {
	writePaged(w, r, h.state.Contracts.All(), h.pageSize)
}

// HandleListPayments returns the payment history for one contract.
func (h *ConsoleHandler) HandleListPayments(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	payments, err := h.contracts.Payments(r.Context(), id)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, payments)
}

// HandleListAlerts returns the current renewal alerts, high priority first.
func (h *ConsoleHandler) HandleListAlerts(w http.ResponseWriter, r *http.Request) {
	items := h.property.RenewalAlerts(time.Now())
	writeJSON(w, http.StatusOK, items)
}

// HandleRefresh refetches every cached collection from the backend. Unlike
// the scheduled job, failures here surface to the caller instead of being
// logged, so the response status reflects whether the cache is fresh.
func (h *ConsoleHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	if _, err := h.property.RefreshApartments(r.Context()); err != nil {
		writeBackendError(w, err)
		return
	}
	if _, err := h.property.RefreshSales(r.Context()); err != nil {
		writeBackendError(w, err)
		return
	}
	if _, err := h.admins.Refresh(r.Context()); err != nil {
		writeBackendError(w, err)
		return
	}
	if _, err := h.contracts.Refresh(r.Context()); err != nil {
		writeBackendError(w, err)
		return
	}
	h.feed.Reset(h.state.Property.Apartments())
	writeJSON(w, http.StatusOK, map[string]string{"status": "refreshed"})
}

// RegisterRoutes registers the console API endpoints.
func RegisterRoutes(router *mux.Router, h *ConsoleHandler) {
	router.HandleFunc("/healthz", h.HandleHealth).Methods("GET")
	router.HandleFunc("/api/apartments", h.HandleListApartments).Methods("GET")
	router.HandleFunc("/api/apartments/feed", h.HandleApartmentFeed).Methods("GET")
	router.HandleFunc("/api/apartments/feed/more", h.HandleApartmentFeedMore).Methods("POST")
	router.HandleFunc("/api/apartments/feed/reset", h.HandleApartmentFeedReset).Methods("POST")
	router.HandleFunc("/api/apartments/{id}", h.HandleGetApartment).Methods("GET")
	router.HandleFunc("/api/apartments/{id}/whatsapp", h.HandleApartmentWhatsApp).Methods("GET")
	router.HandleFunc("/api/sales", h.HandleListSales).Methods("GET")
	router.HandleFunc("/api/admins", h.HandleListAdmins).Methods("GET")
	router.HandleFunc("/api/contracts", h.HandleListContracts).Methods("GET")
	router.HandleFunc("/api/contracts/{id}/payments", h.HandleListPayments).Methods("GET")
	router.HandleFunc("/api/alerts", h.HandleListAlerts).Methods("GET")
	router.HandleFunc("/api/refresh", h.HandleRefresh).Methods("POST")
}

// writePaged windows items per the page/page_size query params and writes the
// standard paged envelope.
func writePaged[T any](w http.ResponseWriter, r *http.Request, items []T, defaultPageSize int) {
	pageSize := queryInt(r, "page_size", defaultPageSize)
	window := pagination.NewWindow[T](pageSize)
	window.SetItems(items)
	window.GoTo(queryInt(r, "page", 1))

	writeJSON(w, http.StatusOK, pagedResponse{
		Items:      window.Page(),
		Page:       window.CurrentPage(),
		PageSize:   pageSize,
		TotalPages: window.TotalPages(),
		TotalItems: len(items),
		HasNext:    window.HasNext(),
	})
}

func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeBackendError maps a typed backend failure onto the console response,
// preserving the upstream status when one exists.
func writeBackendError(w http.ResponseWriter, err error) {
	if be, ok := backend.AsError(err); ok {
		status := be.Status
		if status == 0 {
			status = http.StatusBadGateway
		}
		writeJSON(w, status, map[string]any{
			"error":  be.Error(),
			"kind":   string(be.Kind),
			"fields": be.Fields,
		})
		return
	}
	writeError(w, http.StatusInternalServerError, err.Error())
}
