package service

import (
	"context"
	"fmt"

	"estate-console/internal/backend"
	"estate-console/internal/domain"
	"estate-console/internal/logger"
	"estate-console/internal/store"
	"estate-console/internal/transform"
)

type adminService struct {
	client *backend.Client
	state  *store.Store
}

func NewAdminService(client *backend.Client, state *store.Store) AdminService {
	return &adminService{client: client, state: state}
}

// Refresh reloads the admin account cache from the backend.
func (s *adminService) Refresh(ctx context.Context) ([]domain.Admin, error) {
	dtos, err := s.client.ListAdmins(ctx)
	if err != nil {
		return nil, err
	}
	admins := make([]domain.Admin, 0, len(dtos))
	for _, dto := range dtos {
		admins = append(admins, transform.AdminFromAPI(dto))
	}
	s.state.Admins.Set(admins)
	return admins, nil
}

// Create adds an admin account. The cache pre-check catches obvious duplicate
// emails or phones before the network call; the backend's own uniqueness
// check stays authoritative because the cache can be stale.
func (s *adminService) Create(ctx context.Context, a domain.Admin, password string) (*domain.Admin, error) {
	if field, match, found := s.state.Admins.FindDuplicate(a.Email, a.Phone, ""); found {
		return nil, &backend.Error{
			Kind:    backend.KindConflict,
			Message: fmt.Sprintf("An admin with this %s already exists (%s)", field, match.FullName),
			Fields:  []backend.FieldError{{Field: field, Message: "already in use"}},
		}
	}

	dto, err := transform.AdminToAPI(a)
	if err != nil {
		return nil, err
	}
	created, err := s.client.CreateAdmin(ctx, dto, password)
	if err != nil {
		// The backend rejected a duplicate the stale cache missed; resync
		// so the next pre-check sees it.
		if backend.IsKind(err, backend.KindConflict) || backend.IsKind(err, backend.KindValidation) {
			if _, refreshErr := s.Refresh(ctx); refreshErr != nil {
				logger.Warn("Failed to resync admins after conflict", "error", refreshErr)
			}
		}
		return nil, err
	}

	admin := transform.AdminFromAPI(*created)
	s.state.Admins.Upsert(admin)
	logger.Info("Created admin account", "email", admin.Email, "role", admin.Role)
	return &admin, nil
}

func (s *adminService) Update(ctx context.Context, a domain.Admin) (*domain.Admin, error) {
	if field, match, found := s.state.Admins.FindDuplicate(a.Email, a.Phone, a.ID); found {
		return nil, &backend.Error{
			Kind:    backend.KindConflict,
			Message: fmt.Sprintf("An admin with this %s already exists (%s)", field, match.FullName),
			Fields:  []backend.FieldError{{Field: field, Message: "already in use"}},
		}
	}

	dto, err := transform.AdminToAPI(a)
	if err != nil {
		return nil, err
	}
	updated, err := s.client.UpdateAdmin(ctx, a.ID, dto)
	if err != nil {
		return nil, err
	}
	admin := transform.AdminFromAPI(*updated)
	s.state.Admins.Upsert(admin)
	return &admin, nil
}

// Delete removes an admin account after the caller has confirmed. The cache
// entry goes only after the backend confirms.
func (s *adminService) Delete(ctx context.Context, id string) error {
	if err := s.client.DeleteAdmin(ctx, id); err != nil {
		return err
	}
	s.state.Admins.Remove(id)
	logger.Info("Deleted admin account", "id", id)
	return nil
}
