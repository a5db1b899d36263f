package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/SergeyBogomolovv/food-dispatch/internal/entities"
	"github.com/SergeyBogomolovv/food-dispatch/internal/middleware"
	"github.com/SergeyBogomolovv/food-dispatch/internal/service"
	"github.com/SergeyBogomolovv/food-dispatch/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderService interface {
	QuoteCheckout(ctx context.Context, actor entities.Actor, in service.CheckoutInput) (service.Quote, error)
	CreateOrder(ctx context.Context, actor entities.Actor, in service.CheckoutInput) (entities.Order, error)
	GetOrder(ctx context.Context, actor entities.Actor, id string) (entities.Order, error)
	ListOrders(ctx context.Context, actor entities.Actor, filter entities.OrderFilter) ([]entities.Order, error)
	CancelOrder(ctx context.Context, actor entities.Actor, id string) (entities.Order, error)
	UpdateStatus(ctx context.Context, actor entities.Actor, id string, to entities.OrderStatus) (entities.Order, error)
	ReverseGeocode(ctx context.Context, coords entities.Coordinates) (entities.Address, error)
}

type DispatchService interface {
	ListClaimable(ctx context.Context, actor entities.Actor) ([]entities.Order, error)
	Claim(ctx context.Context, actor entities.Actor, orderID string) (entities.Assignment, error)
	Reject(ctx context.Context, actor entities.Actor, assignmentID string) (entities.Assignment, error)
	MarkPickedUp(ctx context.Context, actor entities.Actor, assignmentID string, loc *entities.Coordinates) (entities.Assignment, error)
	MarkDelivered(ctx context.Context, actor entities.Actor, assignmentID string) (entities.Assignment, error)
	GetAssignment(ctx context.Context, actor entities.Actor, id string) (entities.Assignment, error)
	UpsertDriverProfile(ctx context.Context, actor entities.Actor, city string, available bool) (entities.Driver, error)
	GetDriverProfile(ctx context.Context, actor entities.Actor) (entities.Driver, error)
}

type ChannelService interface {
	PushLocation(ctx context.Context, actor entities.Actor, orderID string, coords entities.Coordinates) (time.Duration, error)
	GetLocation(ctx context.Context, actor entities.Actor, orderID string) (*entities.DriverLocation, error)
	SendMessage(ctx context.Context, actor entities.Actor, orderID string, in service.MessageInput) (entities.Message, bool, error)
	ListMessages(ctx context.Context, actor entities.Actor, orderID string, after *time.Time, limit int) ([]entities.Message, error)
	RequestCall(ctx context.Context, actor entities.Actor, orderID string) (entities.CallSignal, error)
	PendingCalls(ctx context.Context, actor entities.Actor) ([]entities.CallSignal, error)
	DismissCall(ctx context.Context, actor entities.Actor, callID string) error
}

type Subscriber interface {
	Serve(w http.ResponseWriter, r *http.Request, topics []string) error
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	orders   OrderService
	dispatch DispatchService
	channel  ChannelService
	hub      Subscriber
}

func NewHTTPHandler(logger *slog.Logger, orders OrderService, dispatch DispatchService, channel ChannelService, hub Subscriber) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validator.New(),
		orders:   orders,
		dispatch: dispatch,
		channel:  channel,
		hub:      hub,
	}
}

// Init регистрирует маршруты. Роутер должен быть закрыт middleware.Auth.
func (h *HTTPHandler) Init(r chi.Router) {
	r.Post("/checkout/quote", h.QuoteCheckout)
	r.Get("/geocode/reverse", h.ReverseGeocode)

	r.Route("/orders", func(r chi.Router) {
		r.Post("/", h.CreateOrder)
		r.Get("/", h.ListOrders)

		r.Route("/{order_id}", func(r chi.Router) {
			r.Get("/", h.GetOrder)
			r.Patch("/status", h.UpdateStatus)
			r.Post("/cancel", h.CancelOrder)

			r.Put("/location", h.PushLocation)
			r.Get("/location", h.GetLocation)
			r.Post("/messages", h.SendMessage)
			r.Get("/messages", h.ListMessages)
			r.Post("/calls", h.RequestCall)
		})
	})

	r.Get("/dispatch/orders", h.ListClaimable)
	r.Post("/dispatch/orders/{order_id}/claim", h.Claim)

	r.Route("/assignments/{assignment_id}", func(r chi.Router) {
		r.Get("/", h.GetAssignment)
		r.Post("/reject", h.Reject)
		r.Post("/pickup", h.MarkPickedUp)
		r.Post("/deliver", h.MarkDelivered)
	})

	r.Route("/drivers/me", func(r chi.Router) {
		r.Get("/", h.GetDriverProfile)
		r.Put("/", h.UpsertDriverProfile)
		r.Get("/calls", h.PendingCalls)
		r.Delete("/calls/{call_id}", h.DismissCall)
	})

	r.Get("/ws", h.Subscribe)
}

// actor достаёт вызывающего из контекста. Без него отвечает 401.
func (h *HTTPHandler) actor(w http.ResponseWriter, r *http.Request) (entities.Actor, bool) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		utils.WriteErrorCode(w, "unauthorized", utils.CodeUnauthorized, http.StatusUnauthorized)
	}
	return actor, ok
}

func (h *HTTPHandler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := utils.DecodeBody(w, r, v); err != nil {
		utils.WriteValidationError(w, err)
		return false
	}
	if err := h.validate.Struct(v); err != nil {
		utils.WriteValidationError(w, err)
		return false
	}
	return true
}

// writeServiceError переводит доменные ошибки в HTTP ответ.
func (h *HTTPHandler) writeServiceError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	ctx := r.Context()

	switch {
	case errors.Is(err, entities.ErrValidation):
		domainErrors.WithLabelValues(utils.CodeValidation).Inc()
		utils.WriteErrorCode(w, err.Error(), utils.CodeValidation, http.StatusBadRequest)

	case errors.Is(err, entities.ErrAlreadyClaimed):
		domainErrors.WithLabelValues(utils.CodeAlreadyClaimed).Inc()
		utils.WriteErrorCode(w, "order no longer available", utils.CodeAlreadyClaimed, http.StatusConflict)

	case errors.Is(err, entities.ErrInvalidTransition):
		domainErrors.WithLabelValues(utils.CodeInvalidTransition).Inc()
		h.logger.InfoContext(ctx, msg, slog.Any("error", err), slog.String("path", r.URL.Path))
		utils.WriteErrorCode(w, "cannot update order", utils.CodeInvalidTransition, http.StatusConflict)

	case errors.Is(err, entities.ErrForbidden):
		domainErrors.WithLabelValues(utils.CodeForbidden).Inc()
		h.logger.WarnContext(ctx, msg, slog.Any("error", err), slog.String("path", r.URL.Path))
		utils.WriteErrorCode(w, "forbidden", utils.CodeForbidden, http.StatusForbidden)

	case errors.Is(err, entities.ErrNotFound):
		domainErrors.WithLabelValues(utils.CodeNotFound).Inc()
		utils.WriteErrorCode(w, notFoundMessage(err), utils.CodeNotFound, http.StatusNotFound)

	case errors.Is(err, entities.ErrUpstreamUnavailable):
		domainErrors.WithLabelValues(utils.CodeUpstreamUnavailable).Inc()
		h.logger.WarnContext(ctx, msg, slog.Any("error", err))
		utils.WriteErrorCode(w, "service temporarily unavailable", utils.CodeUpstreamUnavailable, http.StatusServiceUnavailable)

	default:
		h.logger.ErrorContext(ctx, msg, slog.Any("error", err), slog.String("path", r.URL.Path))
		utils.WriteErrorCode(w, "internal server error", utils.CodeInternal, http.StatusInternalServerError)
	}
}

var notFoundErrors = []error{
	entities.ErrOrderNotFound,
	entities.ErrAssignmentNotFound,
	entities.ErrDriverNotFound,
	entities.ErrPromoNotFound,
	entities.ErrCallNotFound,
	entities.ErrMessageNotFound,
}

func notFoundMessage(err error) string {
	for _, target := range notFoundErrors {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return entities.ErrNotFound.Error()
}
