package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// PermissionRepository answers role/entity/operation lookups for the access
// service. It reads the tables gorm migrates, but runs over sqlx: the checks
// sit on every request and want plain SQL, not model hydration.
type PermissionRepository struct {
	db *sqlx.DB
}

func NewPermissionRepository(db *sqlx.DB) *PermissionRepository {
	return &PermissionRepository{db: db}
}

func (r *PermissionRepository) Allowed(ctx context.Context, role, entity, operation string) (bool, error) {
	query := r.db.Rebind(`
SELECT COUNT(1)
FROM role_permissions rp
JOIN roles ro ON ro.id = rp.role_id
WHERE ro.name = ? AND rp.entity = ? AND rp.operation = ?
`)

	var n int
	if err := r.db.GetContext(ctx, &n, query, role, entity, operation); err != nil {
		return false, err
	}
	return n > 0, nil
}

// Grants lists every entity/operation pair a role holds, for the access
// endpoint's bulk form.
func (r *PermissionRepository) Grants(ctx context.Context, role string) (map[string][]string, error) {
	query := r.db.Rebind(`
SELECT rp.entity, rp.operation
FROM role_permissions rp
JOIN roles ro ON ro.id = rp.role_id
WHERE ro.name = ?
ORDER BY rp.entity, rp.operation
`)

	rows, err := r.db.QueryxContext(ctx, query, role)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	grants := make(map[string][]string)
	for rows.Next() {
		var entity, operation string
		if err := rows.Scan(&entity, &operation); err != nil {
			return nil, err
		}
		grants[entity] = append(grants[entity], operation)
	}
	return grants, rows.Err()
}
