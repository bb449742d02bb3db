package impl

import (
	"context"
	"log/slog"
	"math"
	"time"

	"cookify/config"
	deliverycontext "cookify/internal/delivery/context"
	"cookify/internal/domain/entity"
	domainerrors "cookify/internal/domain/errors"
	"cookify/internal/domain/repository"
	"cookify/internal/domain/service"
	"cookify/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface. It owns the monetary
// invariant final = total - discount and the order state machine.
type orderService struct {
	txManager   repository.TransactionManager
	orderRepo   repository.OrderRepository
	publisher   service.EventPublisher
	maxItems    int
	maxQuantity int
	logger      *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	maxItems, maxQuantity := 0, 0
	if params.Config != nil && params.Config.Ordering != nil {
		maxItems = params.Config.Ordering.MaxItemsPerOrder
		maxQuantity = params.Config.Ordering.MaxQuantityPerItem
	}

	return &orderService{
		txManager:   params.TxManager,
		orderRepo:   params.OrderRepo,
		publisher:   params.Publisher,
		maxItems:    maxItems,
		maxQuantity: maxQuantity,
		logger:      params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PlaceOrder prices the items, optionally redeems a coupon, and persists the
// order with its line items in one transaction.
func (srv *orderService) PlaceOrder(ctx context.Context, userID uuid.UUID, input *usecase.PlaceOrderInput) (*entity.MasterOrder, error) {
	srv.log(ctx).Info("Placing order", slog.Any("userID", userID), slog.Int("items", len(input.Items)))

	if err := srv.validateItemLimits(input.Items); err != nil {
		return nil, err
	}

	var placedOrder *entity.MasterOrder
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := srv.checkDeliveryAddress(ctx, repoFactory, userID, input.AddressID); err != nil {
			return err
		}

		chefID, items, subtotal, err := srv.priceOrderItems(ctx, repoFactory, input.Items)
		if err != nil {
			return err
		}

		couponID, discount, err := srv.redeemCoupon(ctx, repoFactory, input.CouponCode, subtotal)
		if err != nil {
			return err
		}

		newOrder := &entity.MasterOrder{
			UserID:              userID,
			ChefID:              chefID,
			AddressID:           input.AddressID,
			CouponID:            couponID,
			Status:              entity.StatusPending,
			TotalAmount:         subtotal,
			DiscountAmount:      discount,
			FinalAmount:         roundMoney(subtotal - discount),
			SpecialInstructions: input.SpecialInstructions,
			Items:               items,
		}

		if err := repoFactory.NewOrderRepository().Create(ctx, newOrder); err != nil {
			return errors.Wrap(err, "failed to create order")
		}
		placedOrder = newOrder

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute order placement transaction", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute order placement transaction")
	}

	srv.publishOrderEvent(ctx, placedOrder, "")
	srv.log(ctx).Debug("Order placed", slog.Any("orderID", placedOrder.ID), slog.Float64("finalAmount", placedOrder.FinalAmount))

	return placedOrder, nil
}

func (srv *orderService) validateItemLimits(items []usecase.OrderItemInput) error {
	if len(items) == 0 {
		return errors.Wrap(domainerrors.ErrEmptyOrder, "order must contain at least one item")
	}
	if srv.maxItems > 0 && len(items) > srv.maxItems {
		return errors.Wrap(domainerrors.ErrValidationFailed, "too many distinct items in order")
	}
	for _, item := range items {
		if item.Quantity <= 0 {
			return errors.Wrap(domainerrors.ErrValidationFailed, "item quantity must be positive")
		}
		if srv.maxQuantity > 0 && item.Quantity > srv.maxQuantity {
			return errors.Wrap(domainerrors.ErrValidationFailed, "item quantity exceeds the allowed maximum")
		}
	}

	return nil
}

// checkDeliveryAddress verifies the address exists and belongs to the customer.
func (srv *orderService) checkDeliveryAddress(ctx context.Context, repoFactory repository.RepositoryFactory, userID, addressID uuid.UUID) error {
	address, err := repoFactory.NewAddressRepository().FindByID(ctx, addressID)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return errors.Wrap(domainerrors.ErrAddressNotFound, "delivery address not found")
		}

		return errors.Wrap(err, "failed to find delivery address")
	}
	if address.UserID != userID {
		return errors.Wrap(domainerrors.ErrAddressOwnershipViolation, "delivery address does not belong to user")
	}

	return nil
}

// priceOrderItems loads the recipes, checks availability and single-chef
// membership, and snapshots unit prices into line items.
func (srv *orderService) priceOrderItems(ctx context.Context, repoFactory repository.RepositoryFactory, inputs []usecase.OrderItemInput) (uuid.UUID, []*entity.OrderItem, float64, error) {
	recipeIDs := make([]uuid.UUID, 0, len(inputs))
	for _, item := range inputs {
		recipeIDs = append(recipeIDs, item.RecipeID)
	}

	recipes, err := repoFactory.NewRecipeRepository().FindByIDs(ctx, recipeIDs)
	if err != nil {
		return uuid.Nil, nil, 0, errors.Wrap(err, "failed to load recipes for pricing")
	}

	recipesByID := make(map[uuid.UUID]*entity.Recipe, len(recipes))
	for _, recipe := range recipes {
		recipesByID[recipe.ID] = recipe
	}

	var chefID uuid.UUID
	items := make([]*entity.OrderItem, 0, len(inputs))
	var subtotal float64

	for _, item := range inputs {
		recipe, ok := recipesByID[item.RecipeID]
		if !ok {
			return uuid.Nil, nil, 0, errors.Wrap(domainerrors.ErrRecipeNotFound, "ordered recipe not found")
		}
		if !recipe.IsAvailable {
			return uuid.Nil, nil, 0, errors.Wrap(domainerrors.ErrRecipeUnavailable, "ordered recipe is not available")
		}

		if chefID == uuid.Nil {
			chefID = recipe.ChefID
		} else if chefID != recipe.ChefID {
			return uuid.Nil, nil, 0, errors.Wrap(domainerrors.ErrMixedChefOrder, "all items must come from the same chef")
		}

		lineTotal := roundMoney(recipe.Price * float64(item.Quantity))
		items = append(items, &entity.OrderItem{
			RecipeID:   recipe.ID,
			Quantity:   item.Quantity,
			UnitPrice:  recipe.Price,
			TotalPrice: lineTotal,
		})
		subtotal += lineTotal
	}

	return chefID, items, roundMoney(subtotal), nil
}

// redeemCoupon validates the coupon against the subtotal and consumes one
// usage slot with a guarded update, all inside the placement transaction.
func (srv *orderService) redeemCoupon(ctx context.Context, repoFactory repository.RepositoryFactory, code string, subtotal float64) (*uuid.UUID, float64, error) {
	if code == "" {
		return nil, 0, nil
	}

	couponRepo := repoFactory.NewCouponRepository()

	coupon, err := couponRepo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrCouponNotFound) {
			return nil, 0, errors.Wrap(domainerrors.ErrCouponNotFound, "coupon not found")
		}

		return nil, 0, errors.Wrap(err, "failed to find coupon by code")
	}

	if err := coupon.ValidateFor(time.Now(), subtotal); err != nil {
		return nil, 0, wrapCouponValidation(err)
	}

	if err := couponRepo.IncrementUsage(ctx, coupon.ID); err != nil {
		if errors.Is(err, repository.ErrCouponUsageExceeded) {
			return nil, 0, errors.Wrap(domainerrors.ErrCouponExhausted, "coupon usage limit reached")
		}

		return nil, 0, errors.Wrap(err, "failed to increment coupon usage")
	}

	return &coupon.ID, coupon.Discount(subtotal), nil
}

// GetOrder retrieves an order visible to the actor.
func (srv *orderService) GetOrder(ctx context.Context, actor usecase.OrderActor, orderID uuid.UUID) (*entity.MasterOrder, error) {
	order, err := srv.loadVisibleOrder(ctx, actor, orderID)
	if err != nil {
		srv.log(ctx).Warn("Failed to get order", slog.Any("orderID", orderID), slog.Any("error", err))

		return nil, err
	}

	return order, nil
}

// ListUserOrders returns the customer's own orders, newest first.
func (srv *orderService) ListUserOrders(ctx context.Context, userID uuid.UUID) ([]*entity.MasterOrder, error) {
	// Single query operation - use direct repository instance
	orders, err := srv.orderRepo.FindByUser(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list user orders", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list user orders")
	}

	return orders, nil
}

// ListChefOrders returns orders assigned to the chef, newest first.
func (srv *orderService) ListChefOrders(ctx context.Context, chefID uuid.UUID) ([]*entity.MasterOrder, error) {
	orders, err := srv.orderRepo.FindByChef(ctx, chefID)
	if err != nil {
		srv.log(ctx).Error("Failed to list chef orders", slog.Any("chefID", chefID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list chef orders")
	}

	return orders, nil
}

// UpdateOrderStatus performs a validated single-step state transition.
func (srv *orderService) UpdateOrderStatus(ctx context.Context, actor usecase.OrderActor, orderID uuid.UUID, input *usecase.UpdateOrderStatusInput) (*entity.MasterOrder, error) {
	srv.log(ctx).Info("Updating order status", slog.Any("orderID", orderID), slog.String("status", input.Status))

	targetStatus := entity.OrderStatus(input.Status)
	if !targetStatus.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown order status")
	}

	var updatedOrder *entity.MasterOrder
	var prevStatus entity.OrderStatus

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()

		order, err := orderRepo.FindByID(ctx, orderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
			}

			return errors.Wrap(err, "failed to find order")
		}

		if err := srv.checkTransitionPermission(actor, order, targetStatus); err != nil {
			return err
		}

		if !order.Status.CanTransitionTo(targetStatus) {
			return errors.Wrap(
				domainerrors.ErrInvalidStatusTransition.WithDetails(string(order.Status)+" -> "+string(targetStatus)),
				"invalid order status transition",
			)
		}

		prevStatus = order.Status
		order.Status = targetStatus

		if input.EstimatedDelivery != nil {
			order.EstimatedDelivery = input.EstimatedDelivery
		}

		if targetStatus == entity.StatusDelivered {
			now := time.Now()
			order.ActualDelivery = &now

			// The chef's order count and earnings move with the delivery,
			// in the same transaction.
			chefRepo := repoFactory.NewChefRepository()
			if err := chefRepo.AddDeliveredOrder(ctx, order.ChefID, order.FinalAmount); err != nil {
				return errors.Wrap(err, "failed to update chef delivery aggregates")
			}
		}

		if err := orderRepo.Update(ctx, order); err != nil {
			return errors.Wrap(err, "failed to update order status")
		}
		updatedOrder = order

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute order status transaction", slog.Any("orderID", orderID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute order status transaction")
	}

	srv.publishOrderEvent(ctx, updatedOrder, prevStatus)
	srv.log(ctx).Debug("Order status updated", slog.Any("orderID", orderID), slog.String("status", string(updatedOrder.Status)))

	return updatedOrder, nil
}

// CancelOrder cancels a non-terminal order on behalf of the customer.
func (srv *orderService) CancelOrder(ctx context.Context, actor usecase.OrderActor, orderID uuid.UUID) (*entity.MasterOrder, error) {
	srv.log(ctx).Info("Cancelling order", slog.Any("orderID", orderID), slog.Any("userID", actor.UserID))

	var cancelledOrder *entity.MasterOrder
	var prevStatus entity.OrderStatus

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()

		order, err := orderRepo.FindByID(ctx, orderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
			}

			return errors.Wrap(err, "failed to find order")
		}

		if order.UserID != actor.UserID && !actor.Roles.Contains(entity.RoleAdmin) {
			return errors.Wrap(domainerrors.ErrOrderOwnershipViolation, "order does not belong to user")
		}

		if !order.Status.CanTransitionTo(entity.StatusCancelled) {
			return errors.Wrap(
				domainerrors.ErrInvalidStatusTransition.WithDetails(string(order.Status)+" -> "+string(entity.StatusCancelled)),
				"order can no longer be cancelled",
			)
		}

		prevStatus = order.Status
		order.Status = entity.StatusCancelled

		if err := orderRepo.Update(ctx, order); err != nil {
			return errors.Wrap(err, "failed to cancel order")
		}
		cancelledOrder = order

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute order cancellation transaction", slog.Any("orderID", orderID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute order cancellation transaction")
	}

	srv.publishOrderEvent(ctx, cancelledOrder, prevStatus)

	return cancelledOrder, nil
}

// checkTransitionPermission enforces who may drive which transition: chefs
// move their own orders forward, customers may only cancel, admins may do both.
func (srv *orderService) checkTransitionPermission(actor usecase.OrderActor, order *entity.MasterOrder, target entity.OrderStatus) error {
	if actor.Roles.Contains(entity.RoleAdmin) {
		return nil
	}

	if target == entity.StatusCancelled {
		if order.UserID == actor.UserID || order.ChefID == actor.UserID {
			return nil
		}

		return errors.Wrap(domainerrors.ErrOrderOwnershipViolation, "order does not belong to user")
	}

	if !actor.Roles.Contains(entity.RoleChef) || order.ChefID != actor.UserID {
		return errors.Wrap(domainerrors.ErrForbidden, "only the assigned chef may advance the order")
	}

	return nil
}

// loadVisibleOrder fetches the order and verifies the actor may see it.
func (srv *orderService) loadVisibleOrder(ctx context.Context, actor usecase.OrderActor, orderID uuid.UUID) (*entity.MasterOrder, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	if order.UserID != actor.UserID && order.ChefID != actor.UserID && !actor.Roles.Contains(entity.RoleAdmin) {
		return nil, errors.Wrap(domainerrors.ErrOrderOwnershipViolation, "order does not belong to user")
	}

	return order, nil
}

// publishOrderEvent emits an order lifecycle event. Publishing is best effort:
// a failure is logged but never rolls back the committed transaction.
func (srv *orderService) publishOrderEvent(ctx context.Context, order *entity.MasterOrder, prevStatus entity.OrderStatus) {
	event := &service.OrderEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		OrderID:     order.ID.String(),
		UserID:      order.UserID.String(),
		ChefID:      order.ChefID.String(),
		Status:      string(order.Status),
		PrevStatus:  string(prevStatus),
		FinalAmount: order.FinalAmount,
		OccurredAt:  time.Now().UTC().Format(time.RFC3339),
	}

	if err := srv.publisher.PublishOrderEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish order event", slog.Any("orderID", order.ID), slog.Any("error", err))
	}
}

// roundMoney rounds a monetary amount to two decimal places.
func roundMoney(amount float64) float64 {
	return math.Round(amount*100) / 100
}
