package access

import (
	"gorm.io/gorm"

	"tablebook/internal/domain"
)

var allOps = []string{domain.OpCreate, domain.OpRead, domain.OpUpdate, domain.OpDelete}

// SeedDefaults ensures the three built-in roles and their permission grids
// exist. Idempotent; cmd/seed and the test suites both run it.
func SeedDefaults(db *gorm.DB) error {
	admin, err := ensureRole(db, domain.RoleAdmin, "Full access to every entity")
	if err != nil {
		return err
	}
	for _, entity := range domain.EntityNames {
		for _, op := range allOps {
			if err := ensurePermission(db, admin.ID, entity, op); err != nil {
				return err
			}
		}
	}

	owner, err := ensureRole(db, domain.RoleRestaurantOwner, "Manages own restaurants, hours, tables and reservations")
	if err != nil {
		return err
	}
	for _, entity := range []string{"restaurant", "operating_hour", "table_layout", "reservation"} {
		for _, op := range allOps {
			if err := ensurePermission(db, owner.ID, entity, op); err != nil {
				return err
			}
		}
	}
	for _, entity := range []string{"user", "customer_preference"} {
		if err := ensurePermission(db, owner.ID, entity, domain.OpRead); err != nil {
			return err
		}
	}

	customer, err := ensureRole(db, domain.RoleCustomer, "Books tables and manages own preferences")
	if err != nil {
		return err
	}
	for _, entity := range []string{"reservation", "customer_preference"} {
		for _, op := range allOps {
			if err := ensurePermission(db, customer.ID, entity, op); err != nil {
				return err
			}
		}
	}
	for _, entity := range []string{"restaurant", "operating_hour", "table_layout", "user"} {
		if err := ensurePermission(db, customer.ID, entity, domain.OpRead); err != nil {
			return err
		}
	}

	return nil
}

func ensureRole(db *gorm.DB, name, description string) (*domain.Role, error) {
	role := domain.Role{Name: name, Description: description}
	err := db.Where(domain.Role{Name: name}).FirstOrCreate(&role).Error
	return &role, err
}

func ensurePermission(db *gorm.DB, roleID uint, entity, operation string) error {
	perm := domain.RolePermission{RoleID: roleID, Entity: entity, Operation: operation}
	return db.Where(perm).FirstOrCreate(&perm).Error
}
