package service

import (
	"context"
	"testing"

	"github.com/devItaloAraujo/i-bar-vendas/internal/dto"
	"github.com/devItaloAraujo/i-bar-vendas/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAndListTables(t *testing.T) {
	ctx := context.Background()
	svc := NewTableService(newMemTableRepo())

	mesa, err := svc.OpenTable(ctx, "Mesa 5")
	require.NoError(t, err)
	assert.NotEmpty(t, mesa.ID)
	assert.Equal(t, "Mesa 5", mesa.Name)
	assert.Empty(t, mesa.Orders)

	_, err = svc.OpenTable(ctx, "João")
	require.NoError(t, err)

	tables, err := svc.ListOpenTables(ctx)
	require.NoError(t, err)
	assert.Len(t, tables, 2)
}

func TestGetTableMissingReturnsNil(t *testing.T) {
	ctx := context.Background()
	svc := NewTableService(newMemTableRepo())

	got, err := svc.GetTable(ctx, uuid.NewString())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestAddOrderAppendsDuplicateLines(t *testing.T) {
	// Ordering the same product twice yields two independent line items.
	ctx := context.Background()
	svc := NewTableService(newMemTableRepo())

	mesa, err := svc.OpenTable(ctx, "Mesa 2")
	require.NoError(t, err)

	req := dto.AddOrderRequest{Description: "Brahma", Amount: decimal.NewFromInt(10), Date: "2026-08-30"}
	first, err := svc.AddOrder(ctx, mesa.ID, req)
	require.NoError(t, err)
	second, err := svc.AddOrder(ctx, mesa.ID, req)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	got, err := svc.GetTable(ctx, mesa.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Len(t, got.Orders, 2)
	assert.True(t, got.Total().Equal(decimal.NewFromInt(20)))
}

func TestAddOrderDefaultsQuantity(t *testing.T) {
	ctx := context.Background()
	svc := NewTableService(newMemTableRepo())

	mesa, _ := svc.OpenTable(ctx, "Mesa 1")
	order, err := svc.AddOrder(ctx, mesa.ID, dto.AddOrderRequest{Description: "Cachaça", Amount: decimal.NewFromInt(3)})
	require.NoError(t, err)
	assert.Equal(t, 1, order.Quantity)
}

func TestUpdateOrder(t *testing.T) {
	ctx := context.Background()
	svc := NewTableService(newMemTableRepo())

	mesa, _ := svc.OpenTable(ctx, "Mesa 3")
	order, err := svc.AddOrder(ctx, mesa.ID, dto.AddOrderRequest{
		Description: "Suco de laranja", Amount: decimal.NewFromInt(8), Quantity: 1,
	})
	require.NoError(t, err)

	qty := 3
	amount := decimal.NewFromInt(24)
	require.NoError(t, svc.UpdateOrder(ctx, mesa.ID, order.ID, dto.UpdateOrderRequest{Quantity: &qty, Amount: &amount}))

	got, _ := svc.GetTable(ctx, mesa.ID)
	require.Len(t, got.Orders, 1)
	assert.Equal(t, 3, got.Orders[0].Quantity)
	assert.True(t, got.Orders[0].Amount.Equal(amount))
}

func TestUpdateOrderWrongTableIsNoop(t *testing.T) {
	ctx := context.Background()
	svc := NewTableService(newMemTableRepo())

	mesaA, _ := svc.OpenTable(ctx, "Mesa A")
	mesaB, _ := svc.OpenTable(ctx, "Mesa B")
	order, _ := svc.AddOrder(ctx, mesaA.ID, dto.AddOrderRequest{Description: "Brahma", Amount: decimal.NewFromInt(10)})

	qty := 9
	require.NoError(t, svc.UpdateOrder(ctx, mesaB.ID, order.ID, dto.UpdateOrderRequest{Quantity: &qty}))

	got, _ := svc.GetTable(ctx, mesaA.ID)
	assert.Equal(t, 1, got.Orders[0].Quantity, "order owned by another table must be untouched")
}

func TestRemoveOrder(t *testing.T) {
	ctx := context.Background()
	svc := NewTableService(newMemTableRepo())

	mesa, _ := svc.OpenTable(ctx, "Mesa 4")
	order, _ := svc.AddOrder(ctx, mesa.ID, dto.AddOrderRequest{Description: "Brahma", Amount: decimal.NewFromInt(10)})

	require.NoError(t, svc.RemoveOrder(ctx, mesa.ID, order.ID))
	got, _ := svc.GetTable(ctx, mesa.ID)
	assert.Empty(t, got.Orders)

	// Deleting again is a no-op.
	assert.NoError(t, svc.RemoveOrder(ctx, mesa.ID, order.ID))
}

func TestDeleteTableRemovesOrders(t *testing.T) {
	ctx := context.Background()
	repo := newMemTableRepo()
	svc := NewTableService(repo)

	mesa, _ := svc.OpenTable(ctx, "Mesa 6")
	_, err := svc.AddOrder(ctx, mesa.ID, dto.AddOrderRequest{Description: "Brahma", Amount: decimal.NewFromInt(10)})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTable(ctx, mesa.ID))

	got, err := svc.GetTable(ctx, mesa.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
	orders, _ := repo.ListOrdersByTable(ctx, mesa.ID)
	assert.Empty(t, orders, "no orphaned orders after table deletion")
}

func TestLegacyQuantitySuffixNormalizedOnRead(t *testing.T) {
	ctx := context.Background()
	repo := newMemTableRepo()
	svc := NewTableService(repo)

	mesa, _ := svc.OpenTable(ctx, "Mesa 8")
	legacy := model.TableOrder{
		ID: uuid.NewString(), TableID: mesa.ID,
		Description: "Suco de laranja x3", Amount: decimal.NewFromInt(24), Date: "2026-08-31",
	}
	require.NoError(t, repo.CreateOrder(ctx, &legacy))

	got, err := svc.GetTable(ctx, mesa.ID)
	require.NoError(t, err)
	require.Len(t, got.Orders, 1)
	assert.Equal(t, "Suco de laranja", got.Orders[0].Description)
	assert.Equal(t, 3, got.Orders[0].Quantity)
}

func TestRenameTable(t *testing.T) {
	ctx := context.Background()
	svc := NewTableService(newMemTableRepo())

	mesa, _ := svc.OpenTable(ctx, "Mesa 7")
	require.NoError(t, svc.RenameTable(ctx, mesa.ID, "Carlos"))

	got, _ := svc.GetTable(ctx, mesa.ID)
	assert.Equal(t, "Carlos", got.Name)

	assert.NoError(t, svc.RenameTable(ctx, uuid.NewString(), "Ghost"))
}
