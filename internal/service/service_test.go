package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estate-console/internal/backend"
	"estate-console/internal/domain"
	"estate-console/internal/session"
	"estate-console/internal/store"
)

type fixture struct {
	client *backend.Client
	tokens *session.MemoryStore
	state  *store.Store
}

func newFixture(t *testing.T, handler http.Handler) *fixture {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	tokens := session.NewMemoryStore()
	require.NoError(t, tokens.Save("test-token"))

	return &fixture{
		client: backend.New(server.URL, tokens, backend.WithRetries(1, 0)),
		tokens: tokens,
		state:  store.New(),
	}
}

func writeBody(w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(body)
}

func TestAuthServiceLogin(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeBody(w, map[string]string{"access_token": "fresh-token", "token_type": "bearer"})
	})
	mux.HandleFunc("/admins/me", func(w http.ResponseWriter, r *http.Request) {
		writeBody(w, map[string]any{
			"id": "1", "full_name": "Root Admin",
			"email": "root@example.com", "role": "super_admin", "is_active": true,
		})
	})

	f := newFixture(t, mux)
	svc := NewAuthService(f.client, f.tokens, f.state)

	admin, err := svc.Login(context.Background(), "root@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "Root Admin", admin.FullName)
	assert.Equal(t, domain.AdminRoleSuperAdmin, admin.Role)

	token, err := f.tokens.Load()
	require.NoError(t, err)
	assert.Equal(t, "fresh-token", token)

	// A super admin login also establishes the master admin session.
	master, ok := f.state.Session.MasterAdmin()
	require.True(t, ok)
	assert.Equal(t, "root@example.com", master.Email)
	assert.NotEmpty(t, master.SessionID)

	require.NoError(t, svc.Logout(context.Background()))
	_, err = f.tokens.Load()
	assert.ErrorIs(t, err, session.ErrNoToken)
	_, ok = f.state.Session.CurrentAdmin()
	assert.False(t, ok)
}

func TestAuthServiceCreateMasterAdmin(t *testing.T) {
	t.Run("existing master admin is terminal", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/auth/check-master-admin", func(w http.ResponseWriter, r *http.Request) {
			writeBody(w, map[string]bool{"exists": true})
		})

		f := newFixture(t, mux)
		svc := NewAuthService(f.client, f.tokens, f.state)

		err := svc.CreateMasterAdmin(context.Background(), domain.Admin{
			Email: "root@example.com",
			Phone: "01012345678",
		}, "pw")
		require.Error(t, err)
		assert.True(t, backend.IsKind(err, backend.KindConflict))
	})

	t.Run("creation forces the super admin role", func(t *testing.T) {
		var gotRole string
		mux := http.NewServeMux()
		mux.HandleFunc("/auth/check-master-admin", func(w http.ResponseWriter, r *http.Request) {
			writeBody(w, map[string]bool{"exists": false})
		})
		mux.HandleFunc("/auth/create-master-admin", func(w http.ResponseWriter, r *http.Request) {
			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			gotRole, _ = body["role"].(string)
			w.WriteHeader(http.StatusCreated)
		})

		f := newFixture(t, mux)
		svc := NewAuthService(f.client, f.tokens, f.state)

		err := svc.CreateMasterAdmin(context.Background(), domain.Admin{
			Email: "root@example.com",
			Phone: "01012345678",
		}, "pw")
		require.NoError(t, err)
		assert.Equal(t, "super_admin", gotRole)
	})
}

func TestAdminServiceCreate(t *testing.T) {
	t.Run("cached duplicate is rejected before the network call", func(t *testing.T) {
		var calls int
		mux := http.NewServeMux()
		mux.HandleFunc("/admins/", func(w http.ResponseWriter, r *http.Request) {
			calls++
			writeBody(w, map[string]any{"id": "9"})
		})

		f := newFixture(t, mux)
		f.state.Admins.Set([]domain.Admin{
			{ID: "1", Email: "taken@example.com", FullName: "Existing"},
		})
		svc := NewAdminService(f.client, f.state)

		_, err := svc.Create(context.Background(), domain.Admin{
			Email: "Taken@Example.com",
			Phone: "01012345678",
			Role:  domain.AdminRoleStudioRental,
		}, "pw")
		require.Error(t, err)

		be, ok := backend.AsError(err)
		require.True(t, ok)
		assert.Equal(t, backend.KindConflict, be.Kind)
		require.Len(t, be.Fields, 1)
		assert.Equal(t, "email", be.Fields[0].Field)
		assert.Equal(t, 0, calls)
	})

	t.Run("backend conflict resyncs the cache", func(t *testing.T) {
		listCalls := 0
		mux := http.NewServeMux()
		mux.HandleFunc("/admins/", func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodGet {
				listCalls++
				writeBody(w, []map[string]any{
					{"id": "5", "email": "sniped@example.com", "full_name": "Sniper"},
				})
				return
			}
			w.WriteHeader(http.StatusConflict)
			writeBody(w, map[string]string{"detail": "Email already registered"})
		})

		f := newFixture(t, mux)
		svc := NewAdminService(f.client, f.state)

		_, err := svc.Create(context.Background(), domain.Admin{
			Email: "sniped@example.com",
			Phone: "01012345678",
			Role:  domain.AdminRoleApartmentSale,
		}, "pw")
		require.Error(t, err)
		assert.True(t, backend.IsKind(err, backend.KindConflict))
		assert.Equal(t, 1, listCalls)

		// The resynced cache now catches the duplicate locally.
		_, _, found := f.state.Admins.FindDuplicate("sniped@example.com", "", "")
		assert.True(t, found)
	})

	t.Run("successful create lands in the cache", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/admins/", func(w http.ResponseWriter, r *http.Request) {
			writeBody(w, map[string]any{
				"id": "7", "email": "new@example.com",
				"full_name": "New Admin", "role": "studio_rental", "is_active": true,
			})
		})

		f := newFixture(t, mux)
		svc := NewAdminService(f.client, f.state)

		admin, err := svc.Create(context.Background(), domain.Admin{
			Email: "new@example.com",
			Phone: "01012345678",
			Role:  domain.AdminRoleStudioRental,
		}, "pw")
		require.NoError(t, err)
		assert.Equal(t, "7", admin.ID)

		cached := f.state.Admins.All()
		require.Len(t, cached, 1)
		assert.Equal(t, "new@example.com", cached[0].Email)
	})
}

func TestPropertyService(t *testing.T) {
	t.Run("refresh populates the cache with normalized data", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/apartments/rent", func(w http.ResponseWriter, r *http.Request) {
			writeBody(w, []map[string]any{
				{
					"id": 3, "title": "Legacy Tower", "location": "El Maadi",
					"price": 9000,
					"apartment_parts": []map[string]any{
						{"id": "s1", "unit_number": "A", "status": "vacant"},
					},
				},
			})
		})

		f := newFixture(t, mux)
		svc := NewPropertyService(f.client, f.state)

		apartments, err := svc.RefreshApartments(context.Background())
		require.NoError(t, err)
		require.Len(t, apartments, 1)
		assert.Equal(t, "Legacy Tower", apartments[0].Name)
		assert.Equal(t, domain.LocationMaadi, apartments[0].Location)

		cached, ok := f.state.Property.Apartment("3")
		require.True(t, ok)
		require.Len(t, cached.Studios, 1)
		assert.Equal(t, "A", cached.Studios[0].Title)
		assert.True(t, cached.Studios[0].IsAvailable)
	})

	t.Run("delete removes from cache only after backend confirms", func(t *testing.T) {
		deleteOK := false
		mux := http.NewServeMux()
		mux.HandleFunc("/apartments/rent/a1", func(w http.ResponseWriter, r *http.Request) {
			if !deleteOK {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.WriteHeader(http.StatusNoContent)
		})

		f := newFixture(t, mux)
		f.state.Property.SetApartments([]domain.Apartment{{ID: "a1"}})
		svc := NewPropertyService(f.client, f.state)

		err := svc.DeleteApartment(context.Background(), "a1")
		require.Error(t, err)
		_, ok := f.state.Property.Apartment("a1")
		assert.True(t, ok, "failed delete must not touch the cache")

		deleteOK = true
		require.NoError(t, svc.DeleteApartment(context.Background(), "a1"))
		_, ok = f.state.Property.Apartment("a1")
		assert.False(t, ok)
	})

	t.Run("invalid studio never reaches the backend", func(t *testing.T) {
		var calls int
		f := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
		}))
		svc := NewPropertyService(f.client, f.state)

		_, err := svc.CreateStudio(context.Background(), "a1", domain.Studio{
			Bathrooms: "luxury",
			Furnished: domain.FurnishedYes,
			Balcony:   domain.BalconyNo,
			Status:    domain.PartStatusAvailable,
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "studio data validation failed")
		assert.Equal(t, 0, calls)
	})

	t.Run("renewal alerts come from the cache", func(t *testing.T) {
		f := newFixture(t, http.NewServeMux())
		now := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
		f.state.Property.SetApartments([]domain.Apartment{
			{
				ID: "a1", Name: "Building",
				Studios: []domain.Studio{
					{
						ID: "s1",
						Rental: &domain.Rental{
							IsRented: true,
							EndDate:  now.AddDate(0, 0, 1).Format("2006-01-02"),
						},
					},
				},
			},
		})
		svc := NewPropertyService(f.client, f.state)

		out := svc.RenewalAlerts(now)
		require.Len(t, out, 1)
		assert.Equal(t, "s1", out[0].StudioID)
		assert.Equal(t, "high", out[0].Priority)
	})
}

func TestContractService(t *testing.T) {
	t.Run("renew updates the cached contract", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/rental-contracts/c1/renew", func(w http.ResponseWriter, r *http.Request) {
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			writeBody(w, map[string]any{
				"id": "c1", "contract_number": "RC-001",
				"end_date": body["end_date"], "monthly_rent": body["monthly_rent"],
				"status": "active",
			})
		})

		f := newFixture(t, mux)
		f.state.Contracts.Set([]domain.RentalContract{{ID: "c1", EndDate: "2026-03-31"}})
		svc := NewContractService(f.client, f.state)

		contract, err := svc.Renew(context.Background(), "c1", "2027-03-31", "5000")
		require.NoError(t, err)
		assert.Equal(t, "2027-03-31", contract.EndDate)
		assert.Equal(t, "5000", contract.MonthlyRent)

		cached, ok := f.state.Contracts.Get("c1")
		require.True(t, ok)
		assert.Equal(t, "2027-03-31", cached.EndDate)
	})

	t.Run("record payment resyncs the contract totals", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/rental-contracts/c1/payments", func(w http.ResponseWriter, r *http.Request) {
			writeBody(w, map[string]any{"id": "p1", "contract_id": "c1", "amount": "1000"})
		})
		mux.HandleFunc("/rental-contracts/c1", func(w http.ResponseWriter, r *http.Request) {
			writeBody(w, map[string]any{
				"id": "c1", "status": "active",
				"total_paid": "1000", "remaining_balance": "4000",
			})
		})

		f := newFixture(t, mux)
		svc := NewContractService(f.client, f.state)

		payment, err := svc.RecordPayment(context.Background(), "c1", domain.ContractPayment{Amount: "1000"})
		require.NoError(t, err)
		assert.Equal(t, "p1", payment.ID)

		cached, ok := f.state.Contracts.Get("c1")
		require.True(t, ok)
		assert.Equal(t, "1000", cached.TotalPaid)
		assert.Equal(t, "4000", cached.RemainingBalance)
	})

	t.Run("get serves from cache without a network call", func(t *testing.T) {
		var calls int
		f := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
		}))
		f.state.Contracts.Set([]domain.RentalContract{{ID: "c1", ContractNumber: "RC-001"}})
		svc := NewContractService(f.client, f.state)

		contract, err := svc.Get(context.Background(), "c1")
		require.NoError(t, err)
		assert.Equal(t, "RC-001", contract.ContractNumber)
		assert.Equal(t, 0, calls)
	})
}
