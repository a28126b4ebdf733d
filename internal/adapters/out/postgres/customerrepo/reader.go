// Package customerrepo provides the read-only customer lookups the order
// core consumes. Customer CRUD belongs to another service; this adapter
// only answers existence checks against the shared customers table.
package customerrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"pos/internal/core/domain/model/kernel"
)

// GormCustomerReader implements ports.CustomerReader using GORM.
type GormCustomerReader struct {
	db *gorm.DB
}

// NewGormCustomerReader creates a new GORM customer reader.
func NewGormCustomerReader(db *gorm.DB) *GormCustomerReader {
	return &GormCustomerReader{db: db}
}

// Exists reports whether the customer exists within the tenant.
func (r *GormCustomerReader) Exists(ctx context.Context, tenantID, customerID kernel.UUID) (bool, error) {
	if err := errors.Join(tenantID.Validate(), customerID.Validate()); err != nil {
		return false, err
	}

	var exists bool
	row := r.db.WithContext(ctx).Raw(`
		SELECT EXISTS (
			SELECT 1 FROM customers WHERE tenant_id = ? AND id = ?
		)
	`, tenantID.Bytes(), customerID.Bytes()).Row()
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
