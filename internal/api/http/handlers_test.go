package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estate-console/internal/backend"
	"estate-console/internal/config"
	"estate-console/internal/domain"
	"estate-console/internal/service"
	"estate-console/internal/session"
	"estate-console/internal/store"
)

func newTestRouter(t *testing.T, backendHandler http.Handler) (*mux.Router, *store.Store) {
	t.Helper()
	if backendHandler == nil {
		backendHandler = http.NewServeMux()
	}
	server := httptest.NewServer(backendHandler)
	t.Cleanup(server.Close)

	tokens := session.NewMemoryStore()
	require.NoError(t, tokens.Save("test-token"))

	cfg := &config.Config{}
	cfg.Pager.PageSize = 10

	client := backend.New(server.URL, tokens, backend.WithRetries(1, 0))
	state := store.New()
	propertySvc := service.NewPropertyService(client, state)
	adminSvc := service.NewAdminService(client, state)
	contractSvc := service.NewContractService(client, state)
	authSvc := service.NewAuthService(client, tokens, state)

	router := mux.NewRouter()
	RegisterRoutes(router, NewConsoleHandler(propertySvc, adminSvc, contractSvc, state, cfg))
	RegisterAuthRoutes(router, NewAuthHandler(authSvc))
	return router, state
}

func doRequest(t *testing.T, router *mux.Router, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestHealth(t *testing.T) {
	router, _ := newTestRouter(t, nil)
	rec := doRequest(t, router, http.MethodGet, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())
}

func TestListApartmentsPaging(t *testing.T) {
	router, state := newTestRouter(t, nil)

	apartments := make([]domain.Apartment, 25)
	for i := range apartments {
		apartments[i] = domain.Apartment{ID: fmt.Sprintf("a%02d", i+1)}
	}
	state.Property.SetApartments(apartments)

	t.Run("default first page", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/api/apartments")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Items      []domain.Apartment `json:"items"`
			Page       int                `json:"page"`
			TotalPages int                `json:"total_pages"`
			TotalItems int                `json:"total_items"`
			HasNext    bool               `json:"has_next"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Len(t, resp.Items, 10)
		assert.Equal(t, 1, resp.Page)
		assert.Equal(t, 3, resp.TotalPages)
		assert.Equal(t, 25, resp.TotalItems)
		assert.True(t, resp.HasNext)
	})

	t.Run("last page is short", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/api/apartments?page=3")
		var resp struct {
			Items   []domain.Apartment `json:"items"`
			HasNext bool               `json:"has_next"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Len(t, resp.Items, 5)
		assert.False(t, resp.HasNext)
	})

	t.Run("page size override", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/api/apartments?page_size=25")
		var resp struct {
			Items      []domain.Apartment `json:"items"`
			TotalPages int                `json:"total_pages"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Len(t, resp.Items, 25)
		assert.Equal(t, 1, resp.TotalPages)
	})

	t.Run("out of range page is clamped", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/api/apartments?page=99")
		var resp struct {
			Page int `json:"page"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 3, resp.Page)
	})
}

func TestApartmentFeed(t *testing.T) {
	router, state := newTestRouter(t, nil)

	apartments := make([]domain.Apartment, 25)
	for i := range apartments {
		apartments[i] = domain.Apartment{ID: fmt.Sprintf("a%02d", i+1)}
	}
	state.Property.SetApartments(apartments)

	type feed struct {
		Items      []domain.Apartment `json:"items"`
		Page       int                `json:"page"`
		TotalPages int                `json:"total_pages"`
		HasMore    bool               `json:"has_more"`
		Loaded     bool               `json:"loaded"`
	}
	getFeed := func(t *testing.T, method, target string) feed {
		t.Helper()
		rec := doRequest(t, router, method, target)
		require.Equal(t, http.StatusOK, rec.Code)
		var f feed
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &f))
		return f
	}

	t.Run("reset picks up the cached source", func(t *testing.T) {
		f := getFeed(t, http.MethodPost, "/api/apartments/feed/reset")
		assert.Len(t, f.Items, 10)
		assert.Equal(t, 1, f.Page)
		assert.Equal(t, 3, f.TotalPages)
		assert.True(t, f.HasMore)
	})

	t.Run("window accumulates one page per load", func(t *testing.T) {
		f := getFeed(t, http.MethodPost, "/api/apartments/feed/more")
		assert.True(t, f.Loaded)
		assert.Len(t, f.Items, 20)
		assert.Equal(t, "a01", f.Items[0].ID)

		f = getFeed(t, http.MethodPost, "/api/apartments/feed/more")
		assert.True(t, f.Loaded)
		assert.Len(t, f.Items, 25)
		assert.False(t, f.HasMore)
	})

	t.Run("exhausted feed rejects further loads", func(t *testing.T) {
		f := getFeed(t, http.MethodPost, "/api/apartments/feed/more")
		assert.False(t, f.Loaded)
		assert.Len(t, f.Items, 25)
	})

	t.Run("get returns the window without growing it", func(t *testing.T) {
		f := getFeed(t, http.MethodGet, "/api/apartments/feed")
		assert.False(t, f.Loaded)
		assert.Len(t, f.Items, 25)
		assert.Equal(t, 3, f.Page)
	})

	t.Run("reset rewinds to the first page", func(t *testing.T) {
		f := getFeed(t, http.MethodPost, "/api/apartments/feed/reset")
		assert.Len(t, f.Items, 10)
		assert.Equal(t, 1, f.Page)
	})
}

func TestGetApartment(t *testing.T) {
	router, state := newTestRouter(t, nil)
	state.Property.SetApartments([]domain.Apartment{{ID: "a1", Name: "Building"}})

	rec := doRequest(t, router, http.MethodGet, "/api/apartments/a1")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/api/apartments/missing")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListAlerts(t *testing.T) {
	router, state := newTestRouter(t, nil)
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	state.Property.SetApartments([]domain.Apartment{
		{
			ID: "a1", Name: "Building",
			Studios: []domain.Studio{
				{ID: "s1", Rental: &domain.Rental{IsRented: true, EndDate: tomorrow}},
			},
		},
	})

	rec := doRequest(t, router, http.MethodGet, "/api/alerts")
	require.Equal(t, http.StatusOK, rec.Code)

	var out []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out, 1)
	assert.Equal(t, "s1", out[0]["studio_id"])
	assert.Equal(t, "expiring-soon", out[0]["status"])
}

func TestBackendErrorsPassThrough(t *testing.T) {
	backendMux := http.NewServeMux()
	backendMux.HandleFunc("/apartments/rent/a1/whatsapp", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail": "Apartment not found"}`))
	})

	router, _ := newTestRouter(t, backendMux)
	rec := doRequest(t, router, http.MethodGet, "/api/apartments/a1/whatsapp")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Apartment not found", resp["error"])
	assert.Equal(t, "not_found", resp["kind"])
}

func TestRefresh(t *testing.T) {
	t.Run("backend failure surfaces to the caller", func(t *testing.T) {
		backendMux := http.NewServeMux()
		backendMux.HandleFunc("/apartments/rent", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		router, _ := newTestRouter(t, backendMux)
		rec := doRequest(t, router, http.MethodPost, "/api/refresh")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "server", resp["kind"])
	})

	t.Run("refresh reloads the cache and the feed", func(t *testing.T) {
		backendMux := http.NewServeMux()
		backendMux.HandleFunc("/apartments/rent", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"id": "a1", "name": "Building", "location": "maadi"}]`))
		})
		backendMux.HandleFunc("/apartments/sale", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[]`))
		})
		backendMux.HandleFunc("/admins/", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[]`))
		})
		backendMux.HandleFunc("/rental-contracts/", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[]`))
		})

		router, state := newTestRouter(t, backendMux)
		rec := doRequest(t, router, http.MethodPost, "/api/refresh")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status": "refreshed"}`, rec.Body.String())
		assert.Len(t, state.Property.Apartments(), 1)

		feedRec := doRequest(t, router, http.MethodGet, "/api/apartments/feed")
		var f struct {
			Items []domain.Apartment `json:"items"`
		}
		require.NoError(t, json.Unmarshal(feedRec.Body.Bytes(), &f))
		require.Len(t, f.Items, 1)
		assert.Equal(t, "a1", f.Items[0].ID)
	})
}

func TestLoginRoute(t *testing.T) {
	backendMux := http.NewServeMux()
	backendMux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"access_token": "tok", "token_type": "bearer"}`))
	})
	backendMux.HandleFunc("/admins/me", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": "1", "full_name": "Admin", "email": "a@b.c", "role": "studio_rental"}`))
	})

	router, _ := newTestRouter(t, backendMux)

	t.Run("missing credentials", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("valid login returns the admin", func(t *testing.T) {
		rec := httptest.NewRecorder()
		body := `{"email": "a@b.c", "password": "pw"}`
		req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(body))
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var admin domain.Admin
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &admin))
		assert.Equal(t, "a@b.c", admin.Email)
		assert.Equal(t, domain.AdminRoleStudioRental, admin.Role)
	})
}
