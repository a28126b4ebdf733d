package template_test

import (
	"testing"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/core/domain/model/template"
	"pos/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validItems(t *testing.T) []order.Item {
	t.Helper()
	item, err := order.NewItem(
		kernel.NewUUID(), "Espresso beans 1kg", "SKU-001", 2,
		decimal.NewFromInt(10), decimal.NewFromInt(10), decimal.NewFromInt(5))
	require.NoError(t, err)
	return []order.Item{item}
}

func TestNewTemplate(t *testing.T) {
	templateID := kernel.NewUUID()
	tenantID := kernel.NewUUID()
	customerID := kernel.NewUUID()

	t.Run("should create valid template with all valid parameters", func(t *testing.T) {
		items := validItems(t)

		tpl, err := template.NewTemplate(
			templateID, tenantID, &customerID, "Weekly restock",
			items, order.DefaultPaymentTerms(), []string{"weekly", "beans"})

		require.NoError(t, err)
		require.NoError(t, tpl.Validate())
		assert.True(t, tpl.ID().IsEqual(templateID))
		assert.True(t, tpl.TenantID().IsEqual(tenantID))
		require.NotNil(t, tpl.CustomerID())
		assert.True(t, tpl.CustomerID().IsEqual(customerID))
		assert.Equal(t, "Weekly restock", tpl.Name())
		assert.Equal(t, items, tpl.Items())
		assert.Equal(t, order.PaymentTermsNetDays, tpl.PaymentTerms().Type)
		assert.Equal(t, []string{"weekly", "beans"}, tpl.Tags())
	})

	t.Run("should allow template without customer binding", func(t *testing.T) {
		tpl, err := template.NewTemplate(
			templateID, tenantID, nil, "Weekly restock",
			validItems(t), order.DefaultPaymentTerms(), nil)

		require.NoError(t, err)
		assert.Nil(t, tpl.CustomerID())
		assert.Empty(t, tpl.Tags())
	})

	t.Run("should fail with unconstructed template ID", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := template.NewTemplate(
			invalidID, tenantID, nil, "Weekly restock",
			validItems(t), order.DefaultPaymentTerms(), nil)

		require.Error(t, err)
	})

	t.Run("should fail with unconstructed tenant ID", func(t *testing.T) {
		var invalidTenant kernel.UUID

		_, err := template.NewTemplate(
			templateID, invalidTenant, nil, "Weekly restock",
			validItems(t), order.DefaultPaymentTerms(), nil)

		require.Error(t, err)
	})

	t.Run("should fail with unconstructed customer binding", func(t *testing.T) {
		var invalidCustomer kernel.UUID

		_, err := template.NewTemplate(
			templateID, tenantID, &invalidCustomer, "Weekly restock",
			validItems(t), order.DefaultPaymentTerms(), nil)

		require.Error(t, err)
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := template.NewTemplate(
			templateID, tenantID, nil, "",
			validItems(t), order.DefaultPaymentTerms(), nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "template name")
	})

	t.Run("should fail without items", func(t *testing.T) {
		_, err := template.NewTemplate(
			templateID, tenantID, nil, "Weekly restock",
			nil, order.DefaultPaymentTerms(), nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "template items")
	})

	t.Run("should fail with invalid payment terms", func(t *testing.T) {
		terms := order.PaymentTerms{Type: order.PaymentTermsNetDays, NetDays: -1}

		_, err := template.NewTemplate(
			templateID, tenantID, nil, "Weekly restock",
			validItems(t), terms, nil)

		require.Error(t, err)
	})

	t.Run("should copy items and tags defensively", func(t *testing.T) {
		items := validItems(t)
		tags := []string{"weekly"}

		tpl, err := template.NewTemplate(
			templateID, tenantID, nil, "Weekly restock",
			items, order.DefaultPaymentTerms(), tags)
		require.NoError(t, err)

		tags[0] = "mutated"
		assert.Equal(t, []string{"weekly"}, tpl.Tags())

		returned := tpl.Items()
		returned[0].Name = "mutated"
		assert.Equal(t, "Espresso beans 1kg", tpl.Items()[0].Name)
	})
}

func TestTemplate_Validate(t *testing.T) {
	t.Run("should fail validation for nil template", func(t *testing.T) {
		var tpl *template.Template

		assert.Equal(t, template.ErrTemplateIsNotConstructed, tpl.Validate())
	})

	t.Run("should fail validation for zero value template", func(t *testing.T) {
		var tpl template.Template

		assert.Equal(t, template.ErrTemplateIsNotConstructed, tpl.Validate())
	})
}

func TestRestoreTemplate(t *testing.T) {
	t.Run("should rehydrate a persisted template", func(t *testing.T) {
		templateID := kernel.NewUUID()
		tenantID := kernel.NewUUID()

		tpl, err := template.RestoreTemplate(
			templateID, tenantID, nil, "Monthly supplies",
			validItems(t), order.DefaultPaymentTerms(), []string{"monthly"})

		require.NoError(t, err)
		require.NoError(t, tpl.Validate())
		assert.Equal(t, "Monthly supplies", tpl.Name())
	})
}
