package domain

import "time"

// Operations understood by the access-control tables.
const (
	OpCreate = "create"
	OpRead   = "read"
	OpUpdate = "update"
	OpDelete = "delete"
)

// EntityNames lists every access-controlled entity, including the shared
// user entity.
var EntityNames = []string{
	"restaurant",
	"operating_hour",
	"table_layout",
	"reservation",
	"customer_preference",
	"user",
}

// Role and RolePermission back the authorization checks. These are internal
// config tables, keyed by small serials rather than UUIDs.
type Role struct {
	ID          uint             `gorm:"primaryKey" json:"id"`
	Name        string           `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Description string           `gorm:"size:255" json:"description,omitempty"`
	Permissions []RolePermission `gorm:"foreignKey:RoleID;constraint:OnDelete:CASCADE" json:"permissions,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
}

type RolePermission struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	RoleID    uint   `gorm:"not null;uniqueIndex:idx_role_entity_op" json:"role_id"`
	Entity    string `gorm:"size:100;not null;uniqueIndex:idx_role_entity_op" json:"entity"`
	Operation string `gorm:"size:32;not null;uniqueIndex:idx_role_entity_op" json:"operation"`
}
