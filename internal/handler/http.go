package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/rentique/rental-service/internal/entities"
	"github.com/rentique/rental-service/internal/service"
	"github.com/rentique/rental-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

const defaultNotificationLimit = 50

// Identity headers are injected by the gateway after authentication.
const (
	headerUserID   = "X-User-Id"
	headerUserRole = "X-User-Role"
)

type OrderService interface {
	CreateOrder(ctx context.Context, input service.CreateOrderInput) (entities.Order, error)
	GetOrderByUID(ctx context.Context, orderUID string) (entities.Order, error)
	Transition(ctx context.Context, orderUID, newStatus string, actor entities.Actor) (entities.Order, error)
}

type ShopService interface {
	Register(ctx context.Context, input service.RegisterShopInput) (entities.Shop, error)
	Approve(ctx context.Context, shopID string, admin entities.Actor) (entities.Shop, error)
	Reject(ctx context.Context, shopID, reason string, admin entities.Actor) (entities.Shop, error)
	GetShopByID(ctx context.Context, shopID string) (entities.Shop, error)
}

type ReportService interface {
	FileReport(ctx context.Context, input service.FileReportInput, actor entities.Actor) (entities.DamageReport, error)
	Decide(ctx context.Context, reportID, decision, note string, admin entities.Actor) (entities.DamageReport, error)
}

type NotificationService interface {
	List(ctx context.Context, actor entities.Actor, limit int) ([]entities.Notification, error)
	MarkRead(ctx context.Context, actor entities.Actor, id string) error
	ShopEvent(ctx context.Context, shopID string, typ entities.NotificationType, code, subjectID, title, message string) (bool, error)
	CustomerEvent(ctx context.Context, ev service.CustomerEvent) (bool, error)
}

type HTTPHandler struct {
	logger        *slog.Logger
	validate      *validator.Validate
	orders        OrderService
	shops         ShopService
	reports       ReportService
	notifications NotificationService
}

func NewHTTPHandler(logger *slog.Logger, orders OrderService, shops ShopService, reports ReportService, notifications NotificationService) *HTTPHandler {
	return &HTTPHandler{
		logger:        logger.With(slog.String("handler", "http")),
		validate:      validator.New(),
		orders:        orders,
		shops:         shops,
		reports:       reports,
		notifications: notifications,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Post("/orders", h.CreateOrder)
	r.Get("/orders/{order_uid}", h.GetOrderByUID)
	r.Post("/orders/{order_uid}/status", h.TransitionOrder)
	r.Post("/orders/{order_uid}/review", h.ReviewOrder)

	r.Post("/shops", h.RegisterShop)
	r.Get("/shops/{shop_id}", h.GetShopByID)
	r.Post("/shops/{shop_id}/approve", h.ApproveShop)
	r.Post("/shops/{shop_id}/reject", h.RejectShop)

	r.Post("/reports", h.FileReport)
	r.Post("/reports/{report_id}/decision", h.DecideReport)

	r.Get("/notifications", h.ListNotifications)
	r.Post("/notifications/{notification_id}/read", h.MarkNotificationRead)

	r.Post("/chat/{thread_id}/events", h.ChatEvent)
}

// CreateOrder places a rental order.
// @Summary      Place a rental order
// @Tags         orders
// @Accept       json
// @Param        order  body  CreateOrderRequest  true  "Order payload"
// @Success      201  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      409  {object}  utils.ErrorResponse "Shop is not approved"
// @Router       /orders [post]
func (h *HTTPHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid json body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.orders.CreateOrder(ctx, CreateOrderJSONToInput(req))
	if err != nil {
		h.writeDomainError(ctx, w, err, "failed to create order")
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

// GetOrderByUID returns an order by its UID.
// @Summary      Get order by UID
// @Tags         orders
// @Param        order_uid  path  string  true  "Order UID"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse "Order not found"
// @Router       /orders/{order_uid} [get]
func (h *HTTPHandler) GetOrderByUID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderUID := chi.URLParam(r, "order_uid")

	if err := h.validate.Var(orderUID, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.orders.GetOrderByUID(ctx, orderUID)
	if err != nil {
		h.writeDomainError(ctx, w, err, "failed to get order")
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// TransitionOrder changes the status of an order.
// @Summary      Change order status
// @Tags         orders
// @Accept       json
// @Param        order_uid  path  string             true  "Order UID"
// @Param        body       body  TransitionRequest  true  "Target status"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ErrorResponse "Unknown status"
// @Failure      403  {object}  utils.ErrorResponse "Actor not allowed"
// @Router       /orders/{order_uid}/status [post]
func (h *HTTPHandler) TransitionOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderUID := chi.URLParam(r, "order_uid")

	var req TransitionRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid json body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.orders.Transition(ctx, orderUID, req.Status, actorFromRequest(r))
	if err != nil {
		h.writeDomainError(ctx, w, err, "failed to transition order")
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// ReviewOrder accepts a customer review and notifies the shop.
// @Summary      Leave a review for a rented garment
// @Tags         reviews
// @Accept       json
// @Param        order_uid  path  string         true  "Order UID"
// @Param        body       body  ReviewRequest  true  "Review payload"
// @Success      202
// @Router       /orders/{order_uid}/review [post]
func (h *HTTPHandler) ReviewOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderUID := chi.URLParam(r, "order_uid")

	var req ReviewRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid json body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.orders.GetOrderByUID(ctx, orderUID)
	if err != nil {
		h.writeDomainError(ctx, w, err, "failed to get order for review")
		return
	}

	actor := actorFromRequest(r)
	if actor.UserID != order.CustomerID {
		utils.WriteError(w, "forbidden", http.StatusForbidden)
		return
	}

	if _, err := h.notifications.ShopEvent(ctx, order.ShopID, entities.NotificationReview,
		service.EventReviewNew, orderUID, "New review", "A customer left a review on one of your orders"); err != nil {
		h.logger.ErrorContext(ctx, "failed to dispatch review notification", slog.Any("error", err))
	}

	w.WriteHeader(http.StatusAccepted)
}

// RegisterShop creates a shop pending admin approval.
// @Summary      Register a shop (pending approval)
// @Tags         shops
// @Accept       json
// @Param        body  body  RegisterShopRequest  true  "Shop payload"
// @Success      201  {object}  Shop
// @Router       /shops [post]
func (h *HTTPHandler) RegisterShop(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req RegisterShopRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid json body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	shop, err := h.shops.Register(ctx, service.RegisterShopInput{
		OwnerID: actorFromRequest(r).UserID,
		Name:    req.Name,
	})
	if err != nil {
		h.writeDomainError(ctx, w, err, "failed to register shop")
		return
	}

	utils.WriteJSON(w, ShopEntityToJSON(shop), http.StatusCreated)
}

// GetShopByID returns a shop.
// @Summary      Get shop by ID
// @Tags         shops
// @Param        shop_id  path  string  true  "Shop ID"
// @Success      200  {object}  Shop
// @Failure      404  {object}  utils.ErrorResponse "Shop not found"
// @Router       /shops/{shop_id} [get]
func (h *HTTPHandler) GetShopByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	shopID := chi.URLParam(r, "shop_id")

	shop, err := h.shops.GetShopByID(ctx, shopID)
	if err != nil {
		h.writeDomainError(ctx, w, err, "failed to get shop")
		return
	}

	utils.WriteJSON(w, ShopEntityToJSON(shop), http.StatusOK)
}

// ApproveShop approves a pending shop.
// @Summary      Approve a pending shop
// @Tags         shops
// @Param        shop_id  path  string  true  "Shop ID"
// @Success      200  {object}  Shop
// @Failure      403  {object}  utils.ErrorResponse "Admin only"
// @Router       /shops/{shop_id}/approve [post]
func (h *HTTPHandler) ApproveShop(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	shopID := chi.URLParam(r, "shop_id")

	shop, err := h.shops.Approve(ctx, shopID, actorFromRequest(r))
	if err != nil {
		h.writeDomainError(ctx, w, err, "failed to approve shop")
		return
	}

	utils.WriteJSON(w, ShopEntityToJSON(shop), http.StatusOK)
}

// RejectShop rejects a pending shop.
// @Summary      Reject a pending shop
// @Tags         shops
// @Accept       json
// @Param        shop_id  path  string             true  "Shop ID"
// @Param        body     body  RejectShopRequest  true  "Rejection reason"
// @Success      200  {object}  Shop
// @Failure      403  {object}  utils.ErrorResponse "Admin only"
// @Router       /shops/{shop_id}/reject [post]
func (h *HTTPHandler) RejectShop(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	shopID := chi.URLParam(r, "shop_id")

	var req RejectShopRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid json body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	shop, err := h.shops.Reject(ctx, shopID, req.Reason, actorFromRequest(r))
	if err != nil {
		h.writeDomainError(ctx, w, err, "failed to reject shop")
		return
	}

	utils.WriteJSON(w, ShopEntityToJSON(shop), http.StatusOK)
}

// FileReport files a damage dispute against an order.
// @Summary      File a damage report
// @Tags         reports
// @Accept       json
// @Param        body  body  FileReportRequest  true  "Report payload"
// @Success      201  {object}  DamageReport
// @Failure      409  {object}  utils.ErrorResponse "Open report already exists"
// @Router       /reports [post]
func (h *HTTPHandler) FileReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req FileReportRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid json body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	report, err := h.reports.FileReport(ctx, service.FileReportInput{
		ShopID:      req.ShopID,
		OrderUID:    req.OrderUID,
		Category:    req.Category,
		Description: req.Description,
		EvidenceURL: req.EvidenceURL,
	}, actorFromRequest(r))
	if err != nil {
		h.writeDomainError(ctx, w, err, "failed to file report")
		return
	}

	utils.WriteJSON(w, ReportEntityToJSON(report), http.StatusCreated)
}

// DecideReport records the admin verdict on a report.
// @Summary      Decide a damage report
// @Tags         reports
// @Accept       json
// @Param        report_id  path  string               true  "Report ID"
// @Param        body       body  DecideReportRequest  true  "Decision"
// @Success      200  {object}  DamageReport
// @Failure      403  {object}  utils.ErrorResponse "Admin only"
// @Router       /reports/{report_id}/decision [post]
func (h *HTTPHandler) DecideReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reportID := chi.URLParam(r, "report_id")

	var req DecideReportRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid json body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	report, err := h.reports.Decide(ctx, reportID, req.Decision, req.Note, actorFromRequest(r))
	if err != nil {
		h.writeDomainError(ctx, w, err, "failed to decide report")
		return
	}

	utils.WriteJSON(w, ReportEntityToJSON(report), http.StatusOK)
}

// ListNotifications returns the current user's notifications.
// @Summary      List notifications of the current user
// @Tags         notifications
// @Success      200  {array}  Notification
// @Router       /notifications [get]
func (h *HTTPHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	notifications, err := h.notifications.List(ctx, actorFromRequest(r), defaultNotificationLimit)
	if err != nil {
		h.writeDomainError(ctx, w, err, "failed to list notifications")
		return
	}

	result := make([]Notification, 0, len(notifications))
	for _, n := range notifications {
		result = append(result, NotificationEntityToJSON(n))
	}
	utils.WriteJSON(w, result, http.StatusOK)
}

// MarkNotificationRead toggles the read flag.
// @Summary      Mark a notification as read
// @Tags         notifications
// @Param        notification_id  path  string  true  "Notification ID"
// @Success      204
// @Failure      404  {object}  utils.ErrorResponse "Notification not found"
// @Router       /notifications/{notification_id}/read [post]
func (h *HTTPHandler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "notification_id")

	if err := h.notifications.MarkRead(ctx, actorFromRequest(r), id); err != nil {
		h.writeDomainError(ctx, w, err, "failed to mark notification read")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ChatEvent relays an event from the external chat service.
// @Summary      Relay a chat event into a customer notification
// @Tags         notifications
// @Accept       json
// @Param        thread_id  path  string            true  "Chat thread ID"
// @Param        body       body  ChatEventRequest  true  "Chat event"
// @Success      202
// @Router       /chat/{thread_id}/events [post]
func (h *HTTPHandler) ChatEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	threadID := chi.URLParam(r, "thread_id")

	var req ChatEventRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid json body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	if _, err := h.notifications.CustomerEvent(ctx, service.CustomerEvent{
		RecipientID: req.RecipientID,
		Type:        entities.NotificationChat,
		Code:        service.EventChatMessage,
		SubjectID:   req.MessageID,
		Title:       "New message",
		Message:     req.Preview,
		ThreadID:    threadID,
	}); err != nil {
		h.logger.ErrorContext(ctx, "failed to dispatch chat notification", slog.Any("error", err))
	}

	w.WriteHeader(http.StatusAccepted)
}

func (h *HTTPHandler) writeDomainError(ctx context.Context, w http.ResponseWriter, err error, logMsg string) {
	switch {
	case errors.Is(err, entities.ErrOrderNotFound),
		errors.Is(err, entities.ErrShopNotFound),
		errors.Is(err, entities.ErrReportNotFound),
		errors.Is(err, entities.ErrNotificationNotFound):
		utils.WriteError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, entities.ErrInvalidStatus),
		errors.Is(err, entities.ErrInvalidDecision):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, entities.ErrForbidden):
		utils.WriteError(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, entities.ErrDuplicateReport),
		errors.Is(err, entities.ErrReportDecided),
		errors.Is(err, entities.ErrOrderClosed),
		errors.Is(err, entities.ErrShopNotApproved):
		utils.WriteError(w, err.Error(), http.StatusConflict)
	default:
		h.logger.ErrorContext(ctx, logMsg, slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}

func actorFromRequest(r *http.Request) entities.Actor {
	return entities.Actor{
		UserID: r.Header.Get(headerUserID),
		Role:   entities.Role(r.Header.Get(headerUserRole)),
	}
}
