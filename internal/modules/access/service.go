package access

import (
	"context"
	"log"

	"tablebook/internal/domain"
)

// PermissionStore is implemented by repository.PermissionRepository.
type PermissionStore interface {
	Allowed(ctx context.Context, role, entity, operation string) (bool, error)
	Grants(ctx context.Context, role string) (map[string][]string, error)
}

// Service is the authorization collaborator the rest of the app queries by
// (entity, operation). It is deliberately boolean: a denial is not an error,
// the affordance is simply withheld.
type Service struct {
	perms PermissionStore
}

func NewService(perms PermissionStore) *Service {
	return &Service{perms: perms}
}

// Can reports whether the role holds the permission. Lookup failures are
// logged and treated as denials so a broken permission table never widens
// access.
func (s *Service) Can(ctx context.Context, role, entity, operation string) bool {
	allowed, err := s.perms.Allowed(ctx, role, entity, operation)
	if err != nil {
		log.Printf("access_check_failed role=%s entity=%s operation=%s error=%v", role, entity, operation, err)
		return false
	}
	return allowed
}

func (s *Service) Grants(ctx context.Context, role string) (map[string][]string, error) {
	return s.perms.Grants(ctx, role)
}

// ValidOperation guards the query surface against arbitrary operation names.
func ValidOperation(op string) bool {
	switch op {
	case domain.OpCreate, domain.OpRead, domain.OpUpdate, domain.OpDelete:
		return true
	}
	return false
}
