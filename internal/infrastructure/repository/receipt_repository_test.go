package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sskhi1/pos-system/internal/domain/entity"
	"github.com/sskhi1/pos-system/internal/domain/enum"
	"github.com/sskhi1/pos-system/pkg/apperror"
)

func TestReceiptRepository_Create(t *testing.T) {
	db := newTestDB(t)
	repo := NewReceiptRepository(db, enum.PricingModeCurrent)
	ctx := context.Background()

	receipt, err := repo.Create(ctx)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, receipt.ID)
	assert.Equal(t, enum.ReceiptStatusOpen, receipt.Status)
	assert.Equal(t, int64(0), receipt.Total)
	assert.Empty(t, receipt.Items)

	stored, err := repo.GetByID(ctx, receipt.ID)
	require.NoError(t, err)
	assert.Equal(t, receipt.ID, stored.ID)
	assert.Equal(t, enum.ReceiptStatusOpen, stored.Status)
}

func TestReceiptRepository_AddProduct_MergesRepeatAdds(t *testing.T) {
	db := newTestDB(t)
	repo := NewReceiptRepository(db, enum.PricingModeCurrent)
	ctx := context.Background()

	product := createTestProduct(t, db, "cola", 1050) // 10.50
	receipt, err := repo.Create(ctx)
	require.NoError(t, err)

	updated, err := repo.AddProduct(ctx, receipt.ID, product.ID, 2)
	require.NoError(t, err)
	require.Len(t, updated.Items, 1)
	assert.Equal(t, 2, updated.Items[0].Quantity)
	assert.Equal(t, int64(2100), updated.Items[0].Total)
	assert.Equal(t, int64(2100), updated.Total)

	updated, err = repo.AddProduct(ctx, receipt.ID, product.ID, 2)
	require.NoError(t, err)
	require.Len(t, updated.Items, 1, "repeat add must merge into one line item")
	assert.Equal(t, 4, updated.Items[0].Quantity)
	assert.Equal(t, int64(4200), updated.Items[0].Total)
	assert.Equal(t, int64(4200), updated.Total)

	report := currentReport(t, db)
	assert.Equal(t, int64(4200), report.Revenue, "revenue accrues per add")
	assert.Equal(t, int64(0), report.NReceipts)
}

func TestReceiptRepository_AddProduct_TwoProducts(t *testing.T) {
	db := newTestDB(t)
	repo := NewReceiptRepository(db, enum.PricingModeCurrent)
	ctx := context.Background()

	cola := createTestProduct(t, db, "cola", 1050)
	bread := createTestProduct(t, db, "bread", 300)
	receipt, err := repo.Create(ctx)
	require.NoError(t, err)

	_, err = repo.AddProduct(ctx, receipt.ID, cola.ID, 1)
	require.NoError(t, err)
	updated, err := repo.AddProduct(ctx, receipt.ID, bread.ID, 3)
	require.NoError(t, err)

	assert.Len(t, updated.Items, 2)
	assert.Equal(t, int64(1050+900), updated.Total)
	assert.Equal(t, int64(1950), currentReport(t, db).Revenue)
}

func TestReceiptRepository_AddProduct_UnknownReceipt(t *testing.T) {
	db := newTestDB(t)
	repo := NewReceiptRepository(db, enum.PricingModeCurrent)
	ctx := context.Background()

	product := createTestProduct(t, db, "cola", 1050)

	_, err := repo.AddProduct(ctx, uuid.New(), product.ID, 2)
	assert.True(t, apperror.IsDoesNotExist(err))

	report := currentReport(t, db)
	assert.Equal(t, int64(0), report.Revenue, "failed add must not accrue revenue")
}

func TestReceiptRepository_AddProduct_UnknownProduct(t *testing.T) {
	db := newTestDB(t)
	repo := NewReceiptRepository(db, enum.PricingModeCurrent)
	ctx := context.Background()

	receipt, err := repo.Create(ctx)
	require.NoError(t, err)

	unknownID := uuid.New()
	_, err = repo.AddProduct(ctx, receipt.ID, unknownID, 2)
	assert.True(t, apperror.IsParameterDoesNotExist(err),
		"missing product is a parameter error, distinct from missing receipt")
	assert.Contains(t, err.Error(), unknownID.String())

	stored, err := repo.GetByID(ctx, receipt.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Items)
	assert.Equal(t, int64(0), stored.Total)
}

func TestReceiptRepository_AddProduct_ClosedReceiptRejected(t *testing.T) {
	db := newTestDB(t)
	repo := NewReceiptRepository(db, enum.PricingModeCurrent)
	ctx := context.Background()

	product := createTestProduct(t, db, "cola", 1050)
	receipt, err := repo.Create(ctx)
	require.NoError(t, err)
	require.NoError(t, repo.Close(ctx, receipt.ID))

	_, err = repo.AddProduct(ctx, receipt.ID, product.ID, 1)
	assert.True(t, apperror.IsReceiptClosed(err))

	report := currentReport(t, db)
	assert.Equal(t, int64(0), report.Revenue)
}

func TestReceiptRepository_AddProduct_CurrentModePriceDrift(t *testing.T) {
	db := newTestDB(t)
	repo := NewReceiptRepository(db, enum.PricingModeCurrent)
	ctx := context.Background()

	product := createTestProduct(t, db, "cola", 1050)
	receipt, err := repo.Create(ctx)
	require.NoError(t, err)

	_, err = repo.AddProduct(ctx, receipt.ID, product.ID, 2)
	require.NoError(t, err)

	// Catalog price changes between the two adds.
	require.NoError(t, db.Model(&entity.Product{}).
		Where("id = ?", product.ID).
		Update("price", 2000).Error)

	updated, err := repo.AddProduct(ctx, receipt.ID, product.ID, 2)
	require.NoError(t, err)

	// Receipt total is an accumulator of price-at-add amounts, while the
	// merged line is repriced entirely at the current catalog price.
	assert.Equal(t, int64(2100+4000), updated.Total)
	require.Len(t, updated.Items, 1)
	assert.Equal(t, 4, updated.Items[0].Quantity)
	assert.Equal(t, int64(2000), updated.Items[0].UnitPrice)
	assert.Equal(t, int64(8000), updated.Items[0].Total)

	assert.Equal(t, int64(6100), currentReport(t, db).Revenue)
}

func TestReceiptRepository_AddProduct_SnapshotModePinsPrice(t *testing.T) {
	db := newTestDB(t)
	repo := NewReceiptRepository(db, enum.PricingModeSnapshot)
	ctx := context.Background()

	product := createTestProduct(t, db, "cola", 1050)
	receipt, err := repo.Create(ctx)
	require.NoError(t, err)

	_, err = repo.AddProduct(ctx, receipt.ID, product.ID, 2)
	require.NoError(t, err)

	require.NoError(t, db.Model(&entity.Product{}).
		Where("id = ?", product.ID).
		Update("price", 2000).Error)

	updated, err := repo.AddProduct(ctx, receipt.ID, product.ID, 2)
	require.NoError(t, err)

	require.Len(t, updated.Items, 1)
	assert.Equal(t, int64(1050), updated.Items[0].UnitPrice, "snapshot mode keeps the first-add price")
	assert.Equal(t, int64(4200), updated.Items[0].Total)
	assert.Equal(t, int64(4200), updated.Total)
	assert.Equal(t, int64(4200), currentReport(t, db).Revenue)
}

func TestReceiptRepository_GetByID_CurrentModeRepricesLines(t *testing.T) {
	db := newTestDB(t)
	repo := NewReceiptRepository(db, enum.PricingModeCurrent)
	ctx := context.Background()

	product := createTestProduct(t, db, "cola", 1050)
	receipt, err := repo.Create(ctx)
	require.NoError(t, err)
	_, err = repo.AddProduct(ctx, receipt.ID, product.ID, 2)
	require.NoError(t, err)

	require.NoError(t, db.Model(&entity.Product{}).
		Where("id = ?", product.ID).
		Update("price", 500).Error)

	stored, err := repo.GetByID(ctx, receipt.ID)
	require.NoError(t, err)
	require.Len(t, stored.Items, 1)
	assert.Equal(t, int64(500), stored.Items[0].UnitPrice, "reads reflect the live catalog price")
	assert.Equal(t, int64(1000), stored.Items[0].Total)
	assert.Equal(t, int64(2100), stored.Total, "the stored receipt total does not get resummed")
}

func TestReceiptRepository_GetByID_UnknownReceipt(t *testing.T) {
	db := newTestDB(t)
	repo := NewReceiptRepository(db, enum.PricingModeCurrent)

	_, err := repo.GetByID(context.Background(), uuid.New())
	assert.True(t, apperror.IsDoesNotExist(err))
}

func TestReceiptRepository_Close(t *testing.T) {
	db := newTestDB(t)
	repo := NewReceiptRepository(db, enum.PricingModeCurrent)
	ctx := context.Background()

	receipt, err := repo.Create(ctx)
	require.NoError(t, err)

	require.NoError(t, repo.Close(ctx, receipt.ID))

	stored, err := repo.GetByID(ctx, receipt.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.ReceiptStatusClosed, stored.Status)
	assert.Equal(t, int64(1), currentReport(t, db).NReceipts)
}

func TestReceiptRepository_Close_IsIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewReceiptRepository(db, enum.PricingModeCurrent)
	ctx := context.Background()

	receipt, err := repo.Create(ctx)
	require.NoError(t, err)

	require.NoError(t, repo.Close(ctx, receipt.ID))
	require.NoError(t, repo.Close(ctx, receipt.ID))

	assert.Equal(t, int64(1), currentReport(t, db).NReceipts,
		"re-closing must not double-count the receipt")
}

func TestReceiptRepository_Close_UnknownReceipt(t *testing.T) {
	db := newTestDB(t)
	repo := NewReceiptRepository(db, enum.PricingModeCurrent)

	err := repo.Close(context.Background(), uuid.New())
	assert.True(t, apperror.IsDoesNotExist(err))
	assert.Equal(t, int64(0), currentReport(t, db).NReceipts)
}

func TestReceiptRepository_Delete_OpenReceipt(t *testing.T) {
	db := newTestDB(t)
	repo := NewReceiptRepository(db, enum.PricingModeCurrent)
	ctx := context.Background()

	product := createTestProduct(t, db, "cola", 1050)
	receipt, err := repo.Create(ctx)
	require.NoError(t, err)
	_, err = repo.AddProduct(ctx, receipt.ID, product.ID, 2)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, receipt.ID))

	_, err = repo.GetByID(ctx, receipt.ID)
	assert.True(t, apperror.IsDoesNotExist(err))

	var itemCount int64
	require.NoError(t, db.Model(&entity.ReceiptItem{}).
		Where("receipt_id = ?", receipt.ID).
		Count(&itemCount).Error)
	assert.Equal(t, int64(0), itemCount, "deleting a receipt deletes its items")

	assert.Equal(t, int64(2100), currentReport(t, db).Revenue,
		"revenue recognized at add time is not reversed by delete")
}

func TestReceiptRepository_Delete_ClosedReceiptRejected(t *testing.T) {
	db := newTestDB(t)
	repo := NewReceiptRepository(db, enum.PricingModeCurrent)
	ctx := context.Background()

	receipt, err := repo.Create(ctx)
	require.NoError(t, err)
	require.NoError(t, repo.Close(ctx, receipt.ID))

	err = repo.Delete(ctx, receipt.ID)
	assert.True(t, apperror.IsReceiptClosed(err))

	stored, getErr := repo.GetByID(ctx, receipt.ID)
	require.NoError(t, getErr)
	assert.Equal(t, enum.ReceiptStatusClosed, stored.Status)
	assert.Equal(t, int64(1), currentReport(t, db).NReceipts)
}

func TestReceiptRepository_Delete_UnknownReceipt(t *testing.T) {
	db := newTestDB(t)
	repo := NewReceiptRepository(db, enum.PricingModeCurrent)

	err := repo.Delete(context.Background(), uuid.New())
	assert.True(t, apperror.IsDoesNotExist(err))
}

func TestReceiptRepository_RevenueAccruesAcrossReceipts(t *testing.T) {
	db := newTestDB(t)
	repo := NewReceiptRepository(db, enum.PricingModeCurrent)
	ctx := context.Background()

	product := createTestProduct(t, db, "cola", 1050)

	first, err := repo.Create(ctx)
	require.NoError(t, err)
	second, err := repo.Create(ctx)
	require.NoError(t, err)

	_, err = repo.AddProduct(ctx, first.ID, product.ID, 1)
	require.NoError(t, err)
	_, err = repo.AddProduct(ctx, second.ID, product.ID, 3)
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, first.ID))
	require.NoError(t, repo.Close(ctx, second.ID))

	report := currentReport(t, db)
	assert.Equal(t, int64(1050*4), report.Revenue,
		"revenue counts every add regardless of later deletes or closes")
	assert.Equal(t, int64(1), report.NReceipts)
}

// Full lifecycle: create, add twice, close, delete rejected.
func TestReceiptRepository_Lifecycle(t *testing.T) {
	db := newTestDB(t)
	repo := NewReceiptRepository(db, enum.PricingModeCurrent)
	ctx := context.Background()

	product := createTestProduct(t, db, "cola", 1050)

	receipt, err := repo.Create(ctx)
	require.NoError(t, err)

	updated, err := repo.AddProduct(ctx, receipt.ID, product.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2100), updated.Total)
	assert.Equal(t, int64(2100), updated.Items[0].Total)

	updated, err = repo.AddProduct(ctx, receipt.ID, product.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Items[0].Quantity)
	assert.Equal(t, int64(4200), updated.Items[0].Total)
	assert.Equal(t, int64(4200), updated.Total)

	require.NoError(t, repo.Close(ctx, receipt.ID))
	assert.Equal(t, int64(1), currentReport(t, db).NReceipts)

	err = repo.Delete(ctx, receipt.ID)
	assert.True(t, apperror.IsReceiptClosed(err))
}
