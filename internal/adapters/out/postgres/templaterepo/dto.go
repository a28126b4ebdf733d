// Package templaterepo provides data transfer objects and mapping
// functions for order template persistence. Seed items and payment terms
// reuse the jsonb document shapes of the order repository, so a template
// row and the orders stamped from it stay byte-compatible.
package templaterepo

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"pos/internal/adapters/out/postgres/orderrepo"
	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/template"
)

// TemplateDTO represents the database structure for persisting templates.
type TemplateDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TenantID     uuid.UUID  `gorm:"type:uuid;index"`
	CustomerID   *uuid.UUID `gorm:"type:uuid"`
	Name         string
	Items        []byte         `gorm:"type:jsonb"`
	PaymentTerms []byte         `gorm:"type:jsonb"`
	Tags         pq.StringArray `gorm:"type:text[]"`
}

// TableName specifies the database table name for template entities.
func (TemplateDTO) TableName() string {
	return "order_templates"
}

// fromDomain converts a template aggregate to its database representation.
func fromDomain(aggregate *template.Template) (TemplateDTO, error) {
	items, err := json.Marshal(orderrepo.NewItemDocuments(aggregate.Items()))
	if err != nil {
		return TemplateDTO{}, err
	}
	terms, err := json.Marshal(orderrepo.NewPaymentTermsDocument(aggregate.PaymentTerms()))
	if err != nil {
		return TemplateDTO{}, err
	}

	var customerID *uuid.UUID
	if id := aggregate.CustomerID(); id != nil {
		raw := id.Bytes()
		customerID = &raw
	}

	return TemplateDTO{
		ID:           aggregate.ID().Bytes(),
		TenantID:     aggregate.TenantID().Bytes(),
		CustomerID:   customerID,
		Name:         aggregate.Name(),
		Items:        items,
		PaymentTerms: terms,
		Tags:         pq.StringArray(aggregate.Tags()),
	}, nil
}

// toDomain converts a database DTO back into a template aggregate.
func toDomain(dto TemplateDTO) (*template.Template, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	tenantID, err := kernel.UUIDFromBytes(dto.TenantID[:])
	if err != nil {
		return nil, err
	}

	var customerID *kernel.UUID
	if dto.CustomerID != nil {
		cID, customerErr := kernel.UUIDFromBytes((*dto.CustomerID)[:])
		if customerErr != nil {
			return nil, customerErr
		}
		customerID = &cID
	}

	var itemDocs []orderrepo.ItemDocument
	if err = json.Unmarshal(dto.Items, &itemDocs); err != nil {
		return nil, err
	}

	var termsDoc orderrepo.PaymentTermsDocument
	if err = json.Unmarshal(dto.PaymentTerms, &termsDoc); err != nil {
		return nil, err
	}
	terms, err := orderrepo.PaymentTermsFromDocument(termsDoc)
	if err != nil {
		return nil, err
	}

	return template.RestoreTemplate(
		id, tenantID, customerID, dto.Name,
		orderrepo.ItemsFromDocuments(itemDocs), terms, dto.Tags,
	)
}
