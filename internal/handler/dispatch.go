package handler

import (
	"errors"
	"net/http"

	"github.com/SergeyBogomolovv/food-dispatch/internal/entities"
	"github.com/SergeyBogomolovv/food-dispatch/pkg/utils"
	"github.com/go-chi/chi/v5"
)

// ListClaimable возвращает заказы, доступные курьеру.
// @Summary      Доступные заказы
// @Description  Подтверждённые и готовые заказы в городе курьера без активного назначения
// @Tags         dispatch
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Order
// @Failure      403  {object}  utils.ErrorResponse "Только для курьеров"
// @Router       /dispatch/orders [get]
func (h *HTTPHandler) ListClaimable(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	orders, err := h.dispatch.ListClaimable(r.Context(), actor)
	if err != nil {
		h.writeServiceError(w, r, "failed to list claimable orders", err)
		return
	}

	utils.WriteJSON(w, OrdersEntityToJSON(orders), http.StatusOK)
}

// Claim закрепляет заказ за курьером.
// @Summary      Взять заказ
// @Description  Побеждает первый курьер. Остальные получают 409 already_claimed.
// @Tags         dispatch
// @Security     BearerAuth
// @Produce      json
// @Param        order_id  path      string  true  "Идентификатор заказа"
// @Success      201  {object}  Assignment
// @Failure      403  {object}  utils.ErrorResponse "Курьер недоступен или из другого города"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Заказ уже занят"
// @Router       /dispatch/orders/{order_id}/claim [post]
func (h *HTTPHandler) Claim(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	a, err := h.dispatch.Claim(r.Context(), actor, chi.URLParam(r, "order_id"))
	switch {
	case err == nil:
		claimsTotal.WithLabelValues("won").Inc()
	case errors.Is(err, entities.ErrAlreadyClaimed):
		claimsTotal.WithLabelValues("lost").Inc()
	default:
		claimsTotal.WithLabelValues("failed").Inc()
	}
	if err != nil {
		h.writeServiceError(w, r, "failed to claim order", err)
		return
	}

	utils.WriteJSON(w, AssignmentEntityToJSON(a), http.StatusCreated)
}

// GetAssignment возвращает назначение.
// @Summary      Получить назначение
// @Tags         dispatch
// @Security     BearerAuth
// @Produce      json
// @Param        assignment_id  path      string  true  "Идентификатор назначения"
// @Success      200  {object}  Assignment
// @Failure      403  {object}  utils.ErrorResponse "Доступ запрещён"
// @Failure      404  {object}  utils.ErrorResponse "Назначение не найдено"
// @Router       /assignments/{assignment_id} [get]
func (h *HTTPHandler) GetAssignment(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	a, err := h.dispatch.GetAssignment(r.Context(), actor, chi.URLParam(r, "assignment_id"))
	if err != nil {
		h.writeServiceError(w, r, "failed to get assignment", err)
		return
	}

	utils.WriteJSON(w, AssignmentEntityToJSON(a), http.StatusOK)
}

// Reject возвращает заказ в пул.
// @Summary      Отказаться от заказа
// @Tags         dispatch
// @Security     BearerAuth
// @Produce      json
// @Param        assignment_id  path      string  true  "Идентификатор назначения"
// @Success      200  {object}  Assignment
// @Failure      403  {object}  utils.ErrorResponse "Чужое назначение"
// @Failure      409  {object}  utils.ErrorResponse "Заказ уже забран"
// @Router       /assignments/{assignment_id}/reject [post]
func (h *HTTPHandler) Reject(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	a, err := h.dispatch.Reject(r.Context(), actor, chi.URLParam(r, "assignment_id"))
	if err != nil {
		h.writeServiceError(w, r, "failed to reject assignment", err)
		return
	}

	utils.WriteJSON(w, AssignmentEntityToJSON(a), http.StatusOK)
}

// MarkPickedUp отмечает забор заказа из ресторана.
// @Summary      Заказ забран
// @Tags         dispatch
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        assignment_id  path      string         true   "Идентификатор назначения"
// @Param        request        body      PickupRequest  false  "Текущая позиция курьера"
// @Success      200  {object}  Assignment
// @Failure      403  {object}  utils.ErrorResponse "Чужое назначение"
// @Failure      409  {object}  utils.ErrorResponse "Недопустимый переход"
// @Router       /assignments/{assignment_id}/pickup [post]
func (h *HTTPHandler) MarkPickedUp(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	// тело необязательное
	var req PickupRequest
	if r.ContentLength != 0 && !h.decode(w, r, &req) {
		return
	}

	a, err := h.dispatch.MarkPickedUp(r.Context(), actor, chi.URLParam(r, "assignment_id"), CoordinatesJSONToEntity(req.Location))
	if err != nil {
		h.writeServiceError(w, r, "failed to mark picked up", err)
		return
	}

	utils.WriteJSON(w, AssignmentEntityToJSON(a), http.StatusOK)
}

// MarkDelivered завершает доставку.
// @Summary      Заказ доставлен
// @Tags         dispatch
// @Security     BearerAuth
// @Produce      json
// @Param        assignment_id  path      string  true  "Идентификатор назначения"
// @Success      200  {object}  Assignment
// @Failure      403  {object}  utils.ErrorResponse "Чужое назначение"
// @Failure      409  {object}  utils.ErrorResponse "Недопустимый переход"
// @Router       /assignments/{assignment_id}/deliver [post]
func (h *HTTPHandler) MarkDelivered(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	a, err := h.dispatch.MarkDelivered(r.Context(), actor, chi.URLParam(r, "assignment_id"))
	if err != nil {
		h.writeServiceError(w, r, "failed to mark delivered", err)
		return
	}

	deliveriesTotal.Inc()
	utils.WriteJSON(w, AssignmentEntityToJSON(a), http.StatusOK)
}

// GetDriverProfile возвращает профиль курьера.
// @Summary      Профиль курьера
// @Tags         drivers
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  Driver
// @Failure      404  {object}  utils.ErrorResponse "Профиль не создан"
// @Router       /drivers/me [get]
func (h *HTTPHandler) GetDriverProfile(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	d, err := h.dispatch.GetDriverProfile(r.Context(), actor)
	if err != nil {
		h.writeServiceError(w, r, "failed to get driver profile", err)
		return
	}

	utils.WriteJSON(w, DriverEntityToJSON(d), http.StatusOK)
}

// UpsertDriverProfile задаёт город и доступность курьера.
// @Summary      Обновить профиль курьера
// @Tags         drivers
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      DriverProfileRequest  true  "Город и доступность"
// @Success      200  {object}  Driver
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      403  {object}  utils.ErrorResponse "Только для курьеров"
// @Router       /drivers/me [put]
func (h *HTTPHandler) UpsertDriverProfile(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	var req DriverProfileRequest
	if !h.decode(w, r, &req) {
		return
	}

	d, err := h.dispatch.UpsertDriverProfile(r.Context(), actor, req.City, *req.Available)
	if err != nil {
		h.writeServiceError(w, r, "failed to update driver profile", err)
		return
	}

	utils.WriteJSON(w, DriverEntityToJSON(d), http.StatusOK)
}
