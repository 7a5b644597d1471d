package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sskhi1/pos-system/internal/domain/entity"
	"github.com/sskhi1/pos-system/internal/domain/enum"
	domainRepo "github.com/sskhi1/pos-system/internal/domain/repository"
	"github.com/sskhi1/pos-system/pkg/apperror"
	"gorm.io/gorm"
)

type receiptRepository struct {
	db          *gorm.DB
	pricingMode enum.PricingMode
}

// NewReceiptRepository creates a new receipt repository
func NewReceiptRepository(db *gorm.DB, pricingMode enum.PricingMode) domainRepo.ReceiptRepository {
	return &receiptRepository{db: db, pricingMode: pricingMode}
}

func (r *receiptRepository) Create(ctx context.Context) (*entity.Receipt, error) {
	receipt := &entity.Receipt{
		Status: enum.ReceiptStatusOpen,
		Total:  0,
		Items:  []entity.ReceiptItem{},
	}
	if err := r.db.WithContext(ctx).Create(receipt).Error; err != nil {
		return nil, err
	}
	return receipt, nil
}

// AddProduct merges the quantity into the receipt's line item for the
// product, grows the receipt total by quantity x resolved price, and
// recognizes the same amount as revenue. The whole read-modify-write
// sequence, report update included, commits as one transaction.
func (r *receiptRepository) AddProduct(ctx context.Context, receiptID, productID uuid.UUID, quantity int) (*entity.Receipt, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var receipt entity.Receipt
		if err := tx.First(&receipt, "id = ?", receiptID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NewDoesNotExistError("Receipt", receiptID)
			}
			return err
		}
		if receipt.Status.IsClosed() {
			return apperror.NewReceiptClosedError(receiptID)
		}

		var product entity.Product
		if err := tx.First(&product, "id = ?", productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NewParameterDoesNotExistError("Product", productID)
			}
			return err
		}

		var item entity.ReceiptItem
		err := tx.First(&item, "receipt_id = ? AND product_id = ?", receiptID, productID).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			item = entity.ReceiptItem{
				ReceiptID: receiptID,
				ProductID: productID,
				Quantity:  quantity,
				UnitPrice: product.Price,
				Total:     product.Price * int64(quantity),
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			// Merge keeps the stored unit price from the first add; only the
			// quantity grows. The stored total is refreshed at the resolved
			// price, so in current mode price drift between adds is absorbed
			// into the merged line's total.
			price := r.resolvePrice(&item, &product)
			item.Quantity += quantity
			item.Total = price * int64(item.Quantity)
			if err := tx.Model(&entity.ReceiptItem{}).
				Where("id = ?", item.ID).
				Updates(map[string]any{
					"quantity": item.Quantity,
					"total":    item.Total,
				}).Error; err != nil {
				return err
			}
		}

		// The receipt total and the report revenue both grow by the amount
		// of this add, priced at add time. Expression updates keep racing
		// adds on other receipts from losing report increments.
		amount := r.resolvePrice(&item, &product) * int64(quantity)
		if err := tx.Model(&entity.Receipt{}).
			Where("id = ?", receiptID).
			Update("total", gorm.Expr("total + ?", amount)).Error; err != nil {
			return err
		}
		if err := addToSalesReport(tx, "revenue", amount); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, receiptID)
}

// resolvePrice picks the line price for an add: the live catalog price in
// current mode, the pinned first-add price in snapshot mode.
func (r *receiptRepository) resolvePrice(item *entity.ReceiptItem, product *entity.Product) int64 {
	if r.pricingMode == enum.PricingModeSnapshot && item.ID != uuid.Nil {
		return item.UnitPrice
	}
	return product.Price
}

func (r *receiptRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	var receipt entity.Receipt
	err := r.db.WithContext(ctx).
		Preload("Items.Product").
		First(&receipt, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NewDoesNotExistError("Receipt", id)
	}
	if err != nil {
		return nil, err
	}

	if r.pricingMode == enum.PricingModeCurrent {
		// Line prices and totals are views over the current catalog price;
		// a catalog price change shows up on the next read. Products gone
		// from the catalog keep their last written price.
		for i := range receipt.Items {
			item := &receipt.Items[i]
			if item.Product.ID == uuid.Nil {
				continue
			}
			item.UnitPrice = item.Product.Price
			item.Total = item.Product.Price * int64(item.Quantity)
		}
	}
	return &receipt, nil
}

func (r *receiptRepository) Close(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var receipt entity.Receipt
		if err := tx.First(&receipt, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NewDoesNotExistError("Receipt", id)
			}
			return err
		}

		// Guarded transition: a receipt is counted on the report exactly
		// once, on its open->closed transition. Re-closing is a no-op.
		res := tx.Model(&entity.Receipt{}).
			Where("id = ? AND status <> ?", id, enum.ReceiptStatusClosed).
			Update("status", enum.ReceiptStatusClosed)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		return addToSalesReport(tx, "n_receipts", 1)
	})
}

func (r *receiptRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var receipt entity.Receipt
		if err := tx.First(&receipt, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NewDoesNotExistError("Receipt", id)
			}
			return err
		}
		if receipt.Status.IsClosed() {
			return apperror.NewReceiptClosedError(id)
		}

		if err := tx.Delete(&entity.ReceiptItem{}, "receipt_id = ?", id).Error; err != nil {
			return err
		}
		// Revenue recognized at add time stays on the report.
		return tx.Delete(&entity.Receipt{}, "id = ?", id).Error
	})
}

// addToSalesReport increments one counter of the singleton report row
// inside the caller's transaction, creating the zero row if absent.
func addToSalesReport(tx *gorm.DB, column string, delta int64) error {
	report := entity.SalesReport{ID: entity.SalesReportID}
	if err := tx.Where(entity.SalesReport{ID: entity.SalesReportID}).FirstOrCreate(&report).Error; err != nil {
		return err
	}
	return tx.Model(&entity.SalesReport{}).
		Where("id = ?", entity.SalesReportID).
		Update(column, gorm.Expr(column+" + ?", delta)).Error
}
