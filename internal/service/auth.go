package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"estate-console/internal/backend"
	"estate-console/internal/domain"
	"estate-console/internal/logger"
	"estate-console/internal/session"
	"estate-console/internal/store"
	"estate-console/internal/transform"
)

type authService struct {
	client *backend.Client
	tokens session.TokenStore
	state  *store.Store
}

func NewAuthService(client *backend.Client, tokens session.TokenStore, state *store.Store) AuthService {
	return &authService{client: client, tokens: tokens, state: state}
}

func (s *authService) Login(ctx context.Context, email, password string) (*domain.Admin, error) {
	resp, err := s.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if err := s.tokens.Save(resp.AccessToken); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	admin, err := s.client.GetCurrentAdmin(ctx)
	if err != nil {
		// The token is saved and valid; profile fetch failing is not fatal
		// for the session, but the caller gets no identity to show.
		logger.Warn("Logged in but failed to load admin profile", "error", err)
		return nil, err
	}

	current := transform.AdminFromAPI(*admin)
	s.state.Session.SetCurrentAdmin(&current)
	if current.Role == domain.AdminRoleSuperAdmin {
		s.state.Session.SetMasterAdmin(&domain.MasterAdmin{
			ID:        current.ID,
			Email:     current.Email,
			FullName:  current.FullName,
			Phone:     current.Phone,
			Role:      current.Role,
			LoginTime: time.Now().UTC().Format(time.RFC3339),
			SessionID: uuid.NewString(),
		})
	}
	logger.Info("Admin logged in", "email", current.Email, "role", current.Role)
	return &current, nil
}

func (s *authService) Logout(ctx context.Context) error {
	s.state.Session.Clear()
	if err := s.tokens.Clear(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	logger.Info("Admin logged out")
	return nil
}

func (s *authService) CheckMasterAdmin(ctx context.Context) (bool, error) {
	return s.client.CheckMasterAdmin(ctx)
}

// CreateMasterAdmin performs first-time setup. The existence check gates the
// call; an "already exists" conflict from the backend is terminal and must
// not be retried.
func (s *authService) CreateMasterAdmin(ctx context.Context, admin domain.Admin, password string) error {
	exists, err := s.client.CheckMasterAdmin(ctx)
	if err != nil {
		return err
	}
	if exists {
		return &backend.Error{Kind: backend.KindConflict, Message: "Master admin account already exists"}
	}

	admin.Role = domain.AdminRoleSuperAdmin
	dto, err := transform.AdminToAPI(admin)
	if err != nil {
		return err
	}
	return s.client.CreateMasterAdmin(ctx, dto, password)
}

func (s *authService) CurrentAdmin(ctx context.Context) (*domain.Admin, error) {
	if cached, ok := s.state.Session.CurrentAdmin(); ok {
		return &cached, nil
	}
	dto, err := s.client.GetCurrentAdmin(ctx)
	if err != nil {
		return nil, err
	}
	current := transform.AdminFromAPI(*dto)
	s.state.Session.SetCurrentAdmin(&current)
	return &current, nil
}
