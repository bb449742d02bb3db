package postgres

import (
	"context"

	"cookify/internal/domain/entity"
	domainerrors "cookify/internal/domain/errors"
	"cookify/internal/domain/repository"
	"cookify/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// Create persists a new order together with its line items.
// The items ride along on the association so the whole aggregate lands in
// one INSERT batch under the caller's transaction.
func (repo *orderRepository) Create(ctx context.Context, order *entity.MasterOrder) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("order references unknown user, chef, address or coupon")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required order information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt
	for i, itemM := range orderM.Items {
		order.Items[i].ID = itemM.ID
		order.Items[i].OrderID = itemM.OrderID
	}

	return nil
}

// FindByID retrieves an order with its items by unique ID.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MasterOrder, error) {
	var orderM model.MasterOrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// FindByUser retrieves all orders placed by a user, newest first.
func (repo *orderRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.MasterOrder, error) {
	var orderModels []*model.MasterOrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders by user")
	}

	orders := make([]*entity.MasterOrder, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// FindByChef retrieves all orders assigned to a chef, newest first.
func (repo *orderRepository) FindByChef(ctx context.Context, chefID uuid.UUID) ([]*entity.MasterOrder, error) {
	var orderModels []*model.MasterOrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("chef_id = ?", chefID).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders by chef")
	}

	orders := make([]*entity.MasterOrder, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// Update persists status and timestamp changes of an existing order.
// Line items are immutable after placement and are never touched here.
func (repo *orderRepository) Update(ctx context.Context, order *entity.MasterOrder) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MasterOrderModel{}).
		Where("id = ?", order.ID).
		Updates(map[string]any{
			"status":             string(order.Status),
			"estimated_delivery": order.EstimatedDelivery,
			"actual_delivery":    order.ActualDelivery,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update order")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// CountByUser returns how many orders reference the user.
func (repo *orderRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.MasterOrderModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count orders by user")
	}

	return count, nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM MasterOrderModel to a domain MasterOrder entity.
func toOrderDomain(data *model.MasterOrderModel) *entity.MasterOrder {
	if data == nil {
		return nil
	}

	items := make([]*entity.OrderItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		items = append(items, toOrderItemDomain(itemM))
	}

	return &entity.MasterOrder{
		ID:                  data.ID,
		UserID:              data.UserID,
		ChefID:              data.ChefID,
		AddressID:           data.AddressID,
		CouponID:            data.CouponID,
		Status:              entity.OrderStatus(data.Status),
		TotalAmount:         data.TotalAmount,
		DiscountAmount:      data.DiscountAmount,
		FinalAmount:         data.FinalAmount,
		SpecialInstructions: data.SpecialInstructions,
		EstimatedDelivery:   data.EstimatedDelivery,
		ActualDelivery:      data.ActualDelivery,
		Items:               items,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}

// toOrderItemDomain converts a GORM OrderItemModel to a domain OrderItem entity.
func toOrderItemDomain(data *model.OrderItemModel) *entity.OrderItem {
	if data == nil {
		return nil
	}

	return &entity.OrderItem{
		ID:         data.ID,
		OrderID:    data.OrderID,
		RecipeID:   data.RecipeID,
		Quantity:   data.Quantity,
		UnitPrice:  data.UnitPrice,
		TotalPrice: data.TotalPrice,
	}
}

// fromOrderDomain converts a domain MasterOrder entity to a GORM MasterOrderModel.
func fromOrderDomain(data *entity.MasterOrder) *model.MasterOrderModel {
	if data == nil {
		return nil
	}

	items := make([]*model.OrderItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, &model.OrderItemModel{
			ID:         item.ID,
			OrderID:    item.OrderID,
			RecipeID:   item.RecipeID,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			TotalPrice: item.TotalPrice,
		})
	}

	return &model.MasterOrderModel{
		ID:                  data.ID,
		UserID:              data.UserID,
		ChefID:              data.ChefID,
		AddressID:           data.AddressID,
		CouponID:            data.CouponID,
		Status:              string(data.Status),
		TotalAmount:         data.TotalAmount,
		DiscountAmount:      data.DiscountAmount,
		FinalAmount:         data.FinalAmount,
		SpecialInstructions: data.SpecialInstructions,
		EstimatedDelivery:   data.EstimatedDelivery,
		ActualDelivery:      data.ActualDelivery,
		Items:               items,
	}
}
