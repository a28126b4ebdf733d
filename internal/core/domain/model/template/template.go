// Package template contains the OrderTemplate aggregate: a named, reusable
// seed of line items, payment terms, and tags used to stamp out new orders.
// A template is owned by a tenant and may optionally be tied to a customer.
package template

import (
	"errors"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/errs"
)

// ErrTemplateIsNotConstructed is returned when a Template instance was not
// created through NewTemplate or RestoreTemplate.
var ErrTemplateIsNotConstructed = errors.New("Template must be created via NewTemplate or RestoreTemplate")

// Template is a reusable order seed. Items are stored fully derived, so
// stamping out an order does not recompute per-item amounts, only the
// order-level totals.
type Template struct {
	id           kernel.UUID
	tenantID     kernel.UUID
	customerID   *kernel.UUID
	name         string
	items        []order.Item
	paymentTerms order.PaymentTerms
	tags         []string

	isConstructed bool
}

// NewTemplate creates a validated order template. The customer binding is
// optional; items must be non-empty and constructed via order.NewItem.
func NewTemplate(
	id kernel.UUID,
	tenantID kernel.UUID,
	customerID *kernel.UUID,
	name string,
	items []order.Item,
	paymentTerms order.PaymentTerms,
	tags []string,
) (*Template, error) {
	if err := errors.Join(id.Validate(), tenantID.Validate()); err != nil {
		return nil, err
	}
	if customerID != nil {
		if err := customerID.Validate(); err != nil {
			return nil, err
		}
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("template name")
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("template items")
	}
	if err := paymentTerms.Validate(); err != nil {
		return nil, err
	}

	t := &Template{
		id:            id,
		tenantID:      tenantID,
		customerID:    customerID,
		name:          name,
		items:         make([]order.Item, len(items)),
		paymentTerms:  paymentTerms,
		tags:          append([]string(nil), tags...),
		isConstructed: true,
	}
	copy(t.items, items)
	return t, nil
}

// RestoreTemplate reconstructs a Template aggregate from persisted state.
func RestoreTemplate(
	id kernel.UUID,
	tenantID kernel.UUID,
	customerID *kernel.UUID,
	name string,
	items []order.Item,
	paymentTerms order.PaymentTerms,
	tags []string,
) (*Template, error) {
	return NewTemplate(id, tenantID, customerID, name, items, paymentTerms, tags)
}

// Validate ensures the Template was properly constructed.
func (t *Template) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTemplateIsNotConstructed
	}
	return nil
}

// ID returns the template's unique identifier.
func (t *Template) ID() kernel.UUID { return t.id }

// TenantID returns the owning tenant's identifier.
func (t *Template) TenantID() kernel.UUID { return t.tenantID }

// CustomerID returns the optional customer binding, nil when unbound.
func (t *Template) CustomerID() *kernel.UUID { return t.customerID }

// Name returns the template's display name.
func (t *Template) Name() string { return t.name }

// Items returns a copy of the template's seed line items.
func (t *Template) Items() []order.Item {
	items := make([]order.Item, len(t.items))
	copy(items, t.items)
	return items
}

// PaymentTerms returns the seed payment terms.
func (t *Template) PaymentTerms() order.PaymentTerms { return t.paymentTerms }

// Tags returns a copy of the template's tags.
func (t *Template) Tags() []string {
	return append([]string(nil), t.tags...)
}
