package models

import "time"

// AuditFields contains common audit fields for database models.
type AuditFields struct {
	CreatedAt time.Time `db:"created_at"`
	CreatedBy string    `db:"created_by"`
}
