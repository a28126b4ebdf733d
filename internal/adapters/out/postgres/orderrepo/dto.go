// Package orderrepo provides data transfer objects and mapping functions
// for order persistence. Scalar and money fields live in typed columns for
// efficient filtering; the owned collections (items, history, terms,
// payments, approval, recurrence) are embedded jsonb documents, since they
// are only ever read and written through the aggregate.
package orderrepo

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID    uuid.UUID `gorm:"type:uuid;index:idx_orders_tenant;index:idx_orders_tenant_number,unique"`
	CustomerID  uuid.UUID `gorm:"type:uuid;index"`
	UserID      uuid.UUID `gorm:"type:uuid"`
	OrderNumber string    `gorm:"index:idx_orders_tenant_number,unique"`

	Items          []byte          `gorm:"type:jsonb"`
	Subtotal       decimal.Decimal `gorm:"type:numeric(14,2)"`
	DiscountAmount decimal.Decimal `gorm:"type:numeric(14,2)"`
	TaxAmount      decimal.Decimal `gorm:"type:numeric(14,2)"`
	ShippingAmount decimal.Decimal `gorm:"type:numeric(14,2)"`
	TotalAmount    decimal.Decimal `gorm:"type:numeric(14,2)"`

	Status        string `gorm:"index"`
	Priority      string
	StatusHistory []byte `gorm:"type:jsonb"`

	PaymentStatus   string
	PaymentTerms    []byte `gorm:"type:jsonb"`
	DueDate         time.Time
	PaidAmount      decimal.Decimal `gorm:"type:numeric(14,2)"`
	RemainingAmount decimal.Decimal `gorm:"type:numeric(14,2)"`
	Payments        []byte          `gorm:"type:jsonb"`

	Approval  []byte `gorm:"type:jsonb"`
	Recurring []byte `gorm:"type:jsonb"`

	OrderDate            time.Time
	ExpectedDeliveryDate *time.Time
	ActualDeliveryDate   *time.Time
	Notes                string
	ShippingAddress      string
	Version              int
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderNumberCounterDTO is the per-tenant, per-day sequence row behind
// order number allocation.
type OrderNumberCounterDTO struct {
	TenantID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Day      time.Time `gorm:"type:date;primaryKey"`
	Counter  int
}

// TableName specifies the database table name for order number counters.
func (OrderNumberCounterDTO) TableName() string {
	return "order_number_counters"
}

// ItemDocument is the jsonb shape of one line item. Shared with the
// template repository, which stores the same seed items.
type ItemDocument struct {
	ProductID       kernel.UUID     `json:"product_id"`
	Name            string          `json:"name"`
	SKU             string          `json:"sku"`
	Quantity        int             `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	TaxPercent      decimal.Decimal `json:"tax_percent"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	DiscountAmount  decimal.Decimal `json:"discount_amount"`
	TaxAmount       decimal.Decimal `json:"tax_amount"`
	Total           decimal.Decimal `json:"total"`
}

type statusHistoryDocument struct {
	Status    string      `json:"status"`
	ChangedBy kernel.UUID `json:"changed_by"`
	Reason    string      `json:"reason"`
	Notes     string      `json:"notes"`
	Timestamp time.Time   `json:"timestamp"`
}

type installmentDocument struct {
	Amount     decimal.Decimal `json:"amount"`
	DueDate    time.Time       `json:"due_date"`
	Status     string          `json:"status"`
	PaidAmount decimal.Decimal `json:"paid_amount"`
	PaidDate   *time.Time      `json:"paid_date,omitempty"`
}

// PaymentTermsDocument is the jsonb shape of a terms selection. Shared
// with the template repository.
type PaymentTermsDocument struct {
	Type            string                `json:"type"`
	NetDays         int                   `json:"net_days"`
	DiscountPercent decimal.Decimal       `json:"discount_percent"`
	DiscountDays    int                   `json:"discount_days"`
	Installments    []installmentDocument `json:"installments,omitempty"`
}

type approvalStepDocument struct {
	Step           int             `json:"step"`
	Role           string          `json:"role"`
	RequiredAmount decimal.Decimal `json:"required_amount"`
	Status         string          `json:"status"`
	ApproverID     *kernel.UUID    `json:"approver_id,omitempty"`
	Comments       string          `json:"comments"`
	DecidedAt      *time.Time      `json:"decided_at,omitempty"`
}

type approvalDocument struct {
	Status      string                 `json:"status"`
	CurrentStep int                    `json:"current_step"`
	TotalSteps  int                    `json:"total_steps"`
	Steps       []approvalStepDocument `json:"steps"`
}

type recurringDocument struct {
	Enabled           bool       `json:"enabled"`
	Frequency         string     `json:"frequency"`
	Interval          int        `json:"interval"`
	NextOrderDate     time.Time  `json:"next_order_date"`
	EndDate           *time.Time `json:"end_date,omitempty"`
	MaxOccurrences    int        `json:"max_occurrences"`
	CurrentOccurrence int        `json:"current_occurrence"`
	AutoApprove       bool       `json:"auto_approve"`
}

type paymentDocument struct {
	Amount     decimal.Decimal `json:"amount"`
	Method     string          `json:"method"`
	ReceivedBy kernel.UUID     `json:"received_by"`
	Notes      string          `json:"notes"`
	ReceivedAt time.Time       `json:"received_at"`
}

// NewItemDocuments converts domain items into their jsonb document form.
func NewItemDocuments(items []order.Item) []ItemDocument {
	docs := make([]ItemDocument, 0, len(items))
	for _, item := range items {
		docs = append(docs, ItemDocument{
			ProductID:       item.ProductID,
			Name:            item.Name,
			SKU:             item.SKU,
			Quantity:        item.Quantity,
			UnitPrice:       item.UnitPrice,
			DiscountPercent: item.DiscountPercent,
			TaxPercent:      item.TaxPercent,
			Subtotal:        item.Subtotal,
			DiscountAmount:  item.DiscountAmount,
			TaxAmount:       item.TaxAmount,
			Total:           item.Total,
		})
	}
	return docs
}

// ItemsFromDocuments restores domain items from their jsonb document form.
// Stored derived amounts are trusted as written.
func ItemsFromDocuments(docs []ItemDocument) []order.Item {
	items := make([]order.Item, 0, len(docs))
	for _, doc := range docs {
		items = append(items, order.Item{
			ProductID:       doc.ProductID,
			Name:            doc.Name,
			SKU:             doc.SKU,
			Quantity:        doc.Quantity,
			UnitPrice:       doc.UnitPrice,
			DiscountPercent: doc.DiscountPercent,
			TaxPercent:      doc.TaxPercent,
			Subtotal:        doc.Subtotal,
			DiscountAmount:  doc.DiscountAmount,
			TaxAmount:       doc.TaxAmount,
			Total:           doc.Total,
		})
	}
	return items
}

// NewPaymentTermsDocument converts domain terms into their jsonb form.
func NewPaymentTermsDocument(terms order.PaymentTerms) PaymentTermsDocument {
	doc := PaymentTermsDocument{
		Type:            terms.Type.String(),
		NetDays:         terms.NetDays,
		DiscountPercent: terms.DiscountPercent,
		DiscountDays:    terms.DiscountDays,
	}
	for _, inst := range terms.Installments {
		doc.Installments = append(doc.Installments, installmentDocument{
			Amount:     inst.Amount,
			DueDate:    inst.DueDate,
			Status:     inst.Status.String(),
			PaidAmount: inst.PaidAmount,
			PaidDate:   inst.PaidDate,
		})
	}
	return doc
}

// PaymentTermsFromDocument restores domain terms from their jsonb form.
func PaymentTermsFromDocument(doc PaymentTermsDocument) (order.PaymentTerms, error) {
	termsType, err := order.ParsePaymentTermsType(doc.Type)
	if err != nil {
		return order.PaymentTerms{}, err
	}

	terms := order.PaymentTerms{
		Type:            termsType,
		NetDays:         doc.NetDays,
		DiscountPercent: doc.DiscountPercent,
		DiscountDays:    doc.DiscountDays,
	}
	for _, inst := range doc.Installments {
		status, statusErr := order.ParseInstallmentStatus(inst.Status)
		if statusErr != nil {
			return order.PaymentTerms{}, statusErr
		}
		terms.Installments = append(terms.Installments, order.Installment{
			Amount:     inst.Amount,
			DueDate:    inst.DueDate,
			Status:     status,
			PaidAmount: inst.PaidAmount,
			PaidDate:   inst.PaidDate,
		})
	}
	return terms, nil
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	items, err := json.Marshal(NewItemDocuments(aggregate.Items()))
	if err != nil {
		return OrderDTO{}, err
	}

	historyDocs := make([]statusHistoryDocument, 0, len(aggregate.StatusHistory()))
	for _, entry := range aggregate.StatusHistory() {
		historyDocs = append(historyDocs, statusHistoryDocument{
			Status:    entry.Status.String(),
			ChangedBy: entry.ChangedBy,
			Reason:    entry.Reason,
			Notes:     entry.Notes,
			Timestamp: entry.Timestamp,
		})
	}
	history, err := json.Marshal(historyDocs)
	if err != nil {
		return OrderDTO{}, err
	}

	terms, err := json.Marshal(NewPaymentTermsDocument(aggregate.PaymentTerms()))
	if err != nil {
		return OrderDTO{}, err
	}

	paymentDocs := make([]paymentDocument, 0, len(aggregate.Payments()))
	for _, payment := range aggregate.Payments() {
		paymentDocs = append(paymentDocs, paymentDocument{
			Amount:     payment.Amount,
			Method:     payment.Method.String(),
			ReceivedBy: payment.ReceivedBy,
			Notes:      payment.Notes,
			ReceivedAt: payment.ReceivedAt,
		})
	}
	payments, err := json.Marshal(paymentDocs)
	if err != nil {
		return OrderDTO{}, err
	}

	var approval []byte
	if workflow := aggregate.ApprovalWorkflow(); workflow != nil {
		doc := approvalDocument{
			Status:      workflow.Status.String(),
			CurrentStep: workflow.CurrentStep,
			TotalSteps:  workflow.TotalSteps,
		}
		for _, step := range workflow.Steps {
			doc.Steps = append(doc.Steps, approvalStepDocument{
				Step:           step.Step,
				Role:           step.Role.String(),
				RequiredAmount: step.RequiredAmount,
				Status:         step.Status.String(),
				ApproverID:     step.ApproverID,
				Comments:       step.Comments,
				DecidedAt:      step.DecidedAt,
			})
		}
		if approval, err = json.Marshal(doc); err != nil {
			return OrderDTO{}, err
		}
	}

	var recurring []byte
	if cfg := aggregate.Recurring(); cfg != nil {
		doc := recurringDocument{
			Enabled:           cfg.Enabled,
			Frequency:         cfg.Frequency.String(),
			Interval:          cfg.Interval,
			NextOrderDate:     cfg.NextOrderDate,
			EndDate:           cfg.EndDate,
			MaxOccurrences:    cfg.MaxOccurrences,
			CurrentOccurrence: cfg.CurrentOccurrence,
			AutoApprove:       cfg.AutoApprove,
		}
		if recurring, err = json.Marshal(doc); err != nil {
			return OrderDTO{}, err
		}
	}

	return OrderDTO{
		ID:                   aggregate.ID().Bytes(),
		TenantID:             aggregate.TenantID().Bytes(),
		CustomerID:           aggregate.CustomerID().Bytes(),
		UserID:               aggregate.UserID().Bytes(),
		OrderNumber:          aggregate.OrderNumber(),
		Items:                items,
		Subtotal:             aggregate.Subtotal(),
		DiscountAmount:       aggregate.DiscountAmount(),
		TaxAmount:            aggregate.TaxAmount(),
		ShippingAmount:       aggregate.ShippingAmount(),
		TotalAmount:          aggregate.TotalAmount(),
		Status:               aggregate.Status().String(),
		Priority:             aggregate.Priority().String(),
		StatusHistory:        history,
		PaymentStatus:        aggregate.PaymentStatus().String(),
		PaymentTerms:         terms,
		DueDate:              aggregate.DueDate(),
		PaidAmount:           aggregate.PaidAmount(),
		RemainingAmount:      aggregate.RemainingAmount(),
		Payments:             payments,
		Approval:             approval,
		Recurring:            recurring,
		OrderDate:            aggregate.OrderDate(),
		ExpectedDeliveryDate: aggregate.ExpectedDeliveryDate(),
		ActualDeliveryDate:   aggregate.ActualDeliveryDate(),
		Notes:                aggregate.Notes(),
		ShippingAddress:      aggregate.ShippingAddress(),
		Version:              aggregate.Version(),
	}, nil
}

// toDomain converts a database DTO back into an order aggregate via
// RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	tenantID, err := kernel.UUIDFromBytes(dto.TenantID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	priority, err := order.ParsePriority(dto.Priority)
	if err != nil {
		return nil, err
	}
	paymentStatus, err := order.ParsePaymentStatus(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	var itemDocs []ItemDocument
	if err = json.Unmarshal(dto.Items, &itemDocs); err != nil {
		return nil, err
	}

	var historyDocs []statusHistoryDocument
	if err = json.Unmarshal(dto.StatusHistory, &historyDocs); err != nil {
		return nil, err
	}
	history := make([]order.StatusHistoryEntry, 0, len(historyDocs))
	for _, doc := range historyDocs {
		entryStatus, statusErr := order.ParseStatus(doc.Status)
		if statusErr != nil {
			return nil, statusErr
		}
		history = append(history, order.StatusHistoryEntry{
			Status:    entryStatus,
			ChangedBy: doc.ChangedBy,
			Reason:    doc.Reason,
			Notes:     doc.Notes,
			Timestamp: doc.Timestamp,
		})
	}

	var termsDoc PaymentTermsDocument
	if err = json.Unmarshal(dto.PaymentTerms, &termsDoc); err != nil {
		return nil, err
	}
	terms, err := PaymentTermsFromDocument(termsDoc)
	if err != nil {
		return nil, err
	}

	var paymentDocs []paymentDocument
	if err = json.Unmarshal(dto.Payments, &paymentDocs); err != nil {
		return nil, err
	}
	payments := make([]order.PaymentRecord, 0, len(paymentDocs))
	for _, doc := range paymentDocs {
		method, methodErr := order.ParsePaymentMethod(doc.Method)
		if methodErr != nil {
			return nil, methodErr
		}
		payments = append(payments, order.PaymentRecord{
			Amount:     doc.Amount,
			Method:     method,
			ReceivedBy: doc.ReceivedBy,
			Notes:      doc.Notes,
			ReceivedAt: doc.ReceivedAt,
		})
	}

	var approval *order.ApprovalWorkflow
	if dto.Approval != nil {
		var doc approvalDocument
		if err = json.Unmarshal(dto.Approval, &doc); err != nil {
			return nil, err
		}
		workflowStatus, statusErr := order.ParseApprovalStatus(doc.Status)
		if statusErr != nil {
			return nil, statusErr
		}
		approval = &order.ApprovalWorkflow{
			Status:      workflowStatus,
			CurrentStep: doc.CurrentStep,
			TotalSteps:  doc.TotalSteps,
		}
		for _, stepDoc := range doc.Steps {
			role, roleErr := order.ParseApproverRole(stepDoc.Role)
			if roleErr != nil {
				return nil, roleErr
			}
			stepStatus, stepErr := order.ParseApprovalStatus(stepDoc.Status)
			if stepErr != nil {
				return nil, stepErr
			}
			approval.Steps = append(approval.Steps, order.ApprovalStep{
				Step:           stepDoc.Step,
				Role:           role,
				RequiredAmount: stepDoc.RequiredAmount,
				Status:         stepStatus,
				ApproverID:     stepDoc.ApproverID,
				Comments:       stepDoc.Comments,
				DecidedAt:      stepDoc.DecidedAt,
			})
		}
	}

	var recurring *order.RecurringConfig
	if dto.Recurring != nil {
		var doc recurringDocument
		if err = json.Unmarshal(dto.Recurring, &doc); err != nil {
			return nil, err
		}
		frequency, freqErr := order.ParseFrequency(doc.Frequency)
		if freqErr != nil {
			return nil, freqErr
		}
		recurring = &order.RecurringConfig{
			Enabled:           doc.Enabled,
			Frequency:         frequency,
			Interval:          doc.Interval,
			NextOrderDate:     doc.NextOrderDate,
			EndDate:           doc.EndDate,
			MaxOccurrences:    doc.MaxOccurrences,
			CurrentOccurrence: doc.CurrentOccurrence,
			AutoApprove:       doc.AutoApprove,
		}
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:                   id,
		TenantID:             tenantID,
		CustomerID:           customerID,
		UserID:               userID,
		OrderNumber:          dto.OrderNumber,
		Items:                ItemsFromDocuments(itemDocs),
		Subtotal:             dto.Subtotal,
		DiscountAmount:       dto.DiscountAmount,
		TaxAmount:            dto.TaxAmount,
		ShippingAmount:       dto.ShippingAmount,
		TotalAmount:          dto.TotalAmount,
		Status:               status,
		Priority:             priority,
		StatusHistory:        history,
		PaymentStatus:        paymentStatus,
		PaymentTerms:         terms,
		DueDate:              dto.DueDate,
		PaidAmount:           dto.PaidAmount,
		RemainingAmount:      dto.RemainingAmount,
		Payments:             payments,
		Approval:             approval,
		Recurring:            recurring,
		OrderDate:            dto.OrderDate,
		ExpectedDeliveryDate: dto.ExpectedDeliveryDate,
		ActualDeliveryDate:   dto.ActualDeliveryDate,
		Notes:                dto.Notes,
		ShippingAddress:      dto.ShippingAddress,
		Version:              dto.Version,
	})
}
