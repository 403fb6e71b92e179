package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rentique/rental-service/internal/config"
	"github.com/rentique/rental-service/internal/entities"
	"github.com/rentique/rental-service/pkg/trm"
	"github.com/rentique/rental-service/pkg/utils"

	"github.com/google/uuid"
)

type OrderRepo interface {
	CreateOrder(ctx context.Context, o entities.Order) error
	GetOrderByUID(ctx context.Context, orderUID string) (entities.Order, error)
	// GetOrderForUpdate must lock the row for the enclosing transaction.
	GetOrderForUpdate(ctx context.Context, orderUID string) (entities.Order, error)
	UpdateOrderStatus(ctx context.Context, orderUID string, status entities.OrderStatus) error
	ListRecentOrders(ctx context.Context, count int) ([]entities.Order, error)
}

type ShopRepo interface {
	CreateShop(ctx context.Context, s entities.Shop) error
	GetShopByID(ctx context.Context, shopID string) (entities.Shop, error)
	UpdateShopApproval(ctx context.Context, s entities.Shop) error
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Del(key string)
}

type Notifier interface {
	OrderEvent(ctx context.Context, order entities.Order, ev Event) (bool, error)
}

type RentalItemInput struct {
	GarmentID   string
	Name        string
	Size        string
	PricePerDay int
	Days        int
}

type CreateOrderInput struct {
	CustomerID string
	ShopID     string
	// Paid marks single-step checkout where payment is confirmed upfront.
	Paid  bool
	Items []RentalItemInput
}

// orderService is the only mutation path for an order's status. Every
// transition flows through it so side effects are never missed.
type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	shops     ShopRepo
	notifier  Notifier
	cache     Cache
	billing   config.Billing
}

func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	repo OrderRepo,
	shops ShopRepo,
	notifier Notifier,
	cache Cache,
	billing config.Billing,
) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repo:      repo,
		shops:     shops,
		notifier:  notifier,
		cache:     cache,
		billing:   billing,
	}
}

// CreateOrder persists a new order with its financial breakdown computed
// once, then emits the creation events. An order created already PAID
// produces two notifications in the same logical operation.
func (s *orderService) CreateOrder(ctx context.Context, input CreateOrderInput) (entities.Order, error) {
	shop, err := s.shops.GetShopByID(ctx, input.ShopID)
	if err != nil {
		return entities.Order{}, err
	}
	if shop.Status != entities.ShopApproved {
		return entities.Order{}, entities.ErrShopNotApproved
	}

	order := s.buildOrder(input)

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.repo.CreateOrder(ctx, order)
	})
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.InfoContext(ctx, "order created",
		slog.String("order_uid", order.OrderUID),
		slog.String("status", string(order.Status)),
	)
	transitionsTotal.WithLabelValues(string(order.Status)).Inc()

	s.dispatch(ctx, order, ClassifyCreation(order))
	return order, nil
}

// Transition applies a status change as a transactional read-modify-write:
// the row is locked, the old status captured, the new status written.
// Events are classified against that single consistent snapshot and
// dispatched after commit; a failed dispatch never rolls back or fails
// the transition.
func (s *orderService) Transition(ctx context.Context, orderUID, newStatus string, actor entities.Actor) (entities.Order, error) {
	status, err := entities.ParseOrderStatus(newStatus)
	if err != nil {
		return entities.Order{}, err
	}

	var (
		order     entities.Order
		oldStatus entities.OrderStatus
		changed   bool
	)

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err = s.repo.GetOrderForUpdate(ctx, orderUID)
		if err != nil {
			return err
		}

		if err := s.authorize(ctx, order, status, actor); err != nil {
			return err
		}

		oldStatus = order.Status
		if oldStatus == status {
			return nil
		}

		// Closed orders stay closed. A replayed payment confirmation must
		// not resurrect a cancelled or returned order.
		if oldStatus.Terminal() && !allowedFromTerminal(oldStatus, status, actor) {
			return fmt.Errorf("%w: %s", entities.ErrOrderClosed, oldStatus)
		}

		if err := s.repo.UpdateOrderStatus(ctx, orderUID, status); err != nil {
			return err
		}
		changed = true
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}

	if !changed {
		return order, nil
	}

	order.Status = status
	s.cache.Del(orderUID)

	s.logger.InfoContext(ctx, "order status changed",
		slog.String("order_uid", orderUID),
		slog.String("from", string(oldStatus)),
		slog.String("to", string(status)),
		slog.String("actor", actor.UserID),
	)
	transitionsTotal.WithLabelValues(string(status)).Inc()

	s.dispatch(ctx, order, ClassifyTransition(order, oldStatus, status))
	return order, nil
}

// ConfirmPayment is the payment-gateway entry point.
func (s *orderService) ConfirmPayment(ctx context.Context, orderUID string) error {
	system := entities.Actor{UserID: "payment-gateway", Role: entities.RoleSystem}
	_, err := s.Transition(ctx, orderUID, string(entities.StatusPaid), system)
	return err
}

func (s *orderService) GetOrderByUID(ctx context.Context, orderUID string) (entities.Order, error) {
	if data, ok := s.cache.Get(orderUID); ok {
		var order entities.Order
		if err := order.Unmarshal(data); err == nil {
			return order, nil
		}
		// Poisoned entry, fall through to the repo.
		s.cache.Del(orderUID)
	}

	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.repo.GetOrderByUID(ctx, orderUID)
		return err
	}
	cfg := utils.RetryConfig{
		InitialDelay: 100 * time.Millisecond,
		MaxAttempts:  5,
		Multiplier:   2,
	}
	if err := utils.Retry(cfg, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}

	if data, err := order.Marshal(); err == nil {
		s.cache.Set(orderUID, data)
	}
	return order, nil
}

// WarmUpCache preloads the most recently touched orders so a restart does
// not start with a cold cache.
func (s *orderService) WarmUpCache(ctx context.Context, count int) error {
	orders, err := s.repo.ListRecentOrders(ctx, count)
	if err != nil {
		return fmt.Errorf("failed to warm up cache: %w", err)
	}

	for _, order := range orders {
		data, err := order.Marshal()
		if err != nil {
			return fmt.Errorf("failed to marshal order %s: %w", order.OrderUID, err)
		}
		s.cache.Set(order.OrderUID, data)
	}

	s.logger.Info("cache warmed up", slog.Int("orders", len(orders)))
	return nil
}

// allowedFromTerminal permits the cancel and dispute paths out of a closed
// order plus explicit admin overrides. Everything else is rejected, the
// system actor included, so a replayed payment confirmation can never
// reopen an order.
func allowedFromTerminal(oldStatus, newStatus entities.OrderStatus, actor entities.Actor) bool {
	if actor.Role == entities.RoleAdmin {
		return true
	}
	if oldStatus == entities.StatusDamaged && newStatus == entities.StatusCancelled {
		return true
	}
	// A returned garment can still be disputed by the shop.
	return oldStatus == entities.StatusReturned && newStatus == entities.StatusDamaged
}

func (s *orderService) authorize(ctx context.Context, order entities.Order, newStatus entities.OrderStatus, actor entities.Actor) error {
	if actor.IsAdmin() {
		return nil
	}

	switch actor.Role {
	case entities.RoleShop:
		shop, err := s.shops.GetShopByID(ctx, order.ShopID)
		if err != nil {
			return err
		}
		if shop.OwnerID != actor.UserID {
			return entities.ErrForbidden
		}
		return nil
	case entities.RoleCustomer:
		// Customers may only cancel their own orders.
		if actor.UserID == order.CustomerID && newStatus == entities.StatusCancelled {
			return nil
		}
	}
	return entities.ErrForbidden
}

func (s *orderService) dispatch(ctx context.Context, order entities.Order, events []Event) {
	for _, ev := range events {
		if _, err := s.notifier.OrderEvent(ctx, order, ev); err != nil {
			s.logger.ErrorContext(ctx, "failed to dispatch notification",
				slog.String("order_uid", order.OrderUID),
				slog.String("event", ev.Code),
				slog.Any("error", err),
			)
		}
	}
}

func (s *orderService) buildOrder(input CreateOrderInput) entities.Order {
	now := time.Now()

	items := make([]entities.RentalItem, 0, len(input.Items))
	grandTotal := 0
	for _, it := range input.Items {
		total := it.PricePerDay * it.Days
		grandTotal += total
		items = append(items, entities.RentalItem{
			GarmentID:   it.GarmentID,
			Name:        it.Name,
			Size:        it.Size,
			PricePerDay: it.PricePerDay,
			Days:        it.Days,
			Total:       total,
		})
	}

	commission := grandTotal * s.billing.CommissionBps / 10000
	vat := grandTotal * s.billing.VATBps / 10000

	status := entities.StatusNew
	if input.Paid {
		status = entities.StatusPaid
	}

	return entities.Order{
		OrderUID:       uuid.NewString(),
		CustomerID:     input.CustomerID,
		ShopID:         input.ShopID,
		Status:         status,
		Items:          items,
		GrandTotal:     grandTotal,
		Commission:     commission,
		VAT:            vat,
		NetIncome:      grandTotal - commission - vat,
		CommissionRate: s.billing.CommissionBps,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
