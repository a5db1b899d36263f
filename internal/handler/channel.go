package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/SergeyBogomolovv/food-dispatch/internal/service"
	"github.com/SergeyBogomolovv/food-dispatch/pkg/utils"
	"github.com/go-chi/chi/v5"
)

// PushLocation принимает позицию курьера в пути.
// @Summary      Передать позицию курьера
// @Description  Ответ говорит, через сколько секунд прислать следующую точку
// @Tags         channel
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        order_id  path      string       true  "Идентификатор заказа"
// @Param        request   body      Coordinates  true  "Позиция"
// @Success      200  {object}  LocationPushResponse
// @Failure      403  {object}  utils.ErrorResponse "Заказ назначен другому курьеру"
// @Failure      409  {object}  utils.ErrorResponse "Заказ ещё не забран"
// @Router       /orders/{order_id}/location [put]
func (h *HTTPHandler) PushLocation(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	var req Coordinates
	if !h.decode(w, r, &req) {
		return
	}

	next, err := h.channel.PushLocation(r.Context(), actor, chi.URLParam(r, "order_id"), *CoordinatesJSONToEntity(&req))
	if err != nil {
		h.writeServiceError(w, r, "failed to push location", err)
		return
	}

	utils.WriteJSON(w, LocationPushResponse{NextUpdateSeconds: int(next / time.Second)}, http.StatusOK)
}

// GetLocation возвращает позицию курьера.
// @Summary      Где курьер
// @Description  204, пока заказ не в пути
// @Tags         channel
// @Security     BearerAuth
// @Produce      json
// @Param        order_id  path      string  true  "Идентификатор заказа"
// @Success      200  {object}  DriverLocation
// @Success      204  "Позиции нет"
// @Failure      403  {object}  utils.ErrorResponse "Доступ запрещён"
// @Router       /orders/{order_id}/location [get]
func (h *HTTPHandler) GetLocation(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	loc, err := h.channel.GetLocation(r.Context(), actor, chi.URLParam(r, "order_id"))
	if err != nil {
		h.writeServiceError(w, r, "failed to get location", err)
		return
	}
	if loc == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	utils.WriteJSON(w, LocationEntityToJSON(*loc), http.StatusOK)
}

// SendMessage отправляет сообщение в чат заказа.
// @Summary      Написать в чат заказа
// @Description  Повтор с тем же id не создаёт дубль и возвращает 200
// @Tags         channel
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        order_id  path      string          true  "Идентификатор заказа"
// @Param        request   body      MessageRequest  true  "Сообщение"
// @Success      201  {object}  Message
// @Success      200  {object}  Message "Повторная отправка"
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      403  {object}  utils.ErrorResponse "Доступ запрещён"
// @Router       /orders/{order_id}/messages [post]
func (h *HTTPHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	var req MessageRequest
	if !h.decode(w, r, &req) {
		return
	}

	msg, created, err := h.channel.SendMessage(r.Context(), actor, chi.URLParam(r, "order_id"),
		service.MessageInput{ID: req.ID, Content: req.Content})
	if err != nil {
		h.writeServiceError(w, r, "failed to send message", err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	utils.WriteJSON(w, MessageEntityToJSON(msg), status)
}

// ListMessages возвращает историю чата.
// @Summary      История чата заказа
// @Tags         channel
// @Security     BearerAuth
// @Produce      json
// @Param        order_id  path      string  true   "Идентификатор заказа"
// @Param        after     query     string  false  "RFC3339, только сообщения новее"
// @Param        limit     query     int     false  "Количество, по умолчанию 50, максимум 200"
// @Success      200  {array}   Message
// @Failure      403  {object}  utils.ErrorResponse "Доступ запрещён"
// @Router       /orders/{order_id}/messages [get]
func (h *HTTPHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()

	var after *time.Time
	if s := q.Get("after"); s != "" {
		t, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			utils.WriteErrorCode(w, "after must be an RFC3339 timestamp", utils.CodeValidation, http.StatusBadRequest)
			return
		}
		after = &t
	}

	var limit int
	if s := q.Get("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			utils.WriteErrorCode(w, "limit must be a non-negative integer", utils.CodeValidation, http.StatusBadRequest)
			return
		}
		limit = v
	}

	msgs, err := h.channel.ListMessages(r.Context(), actor, chi.URLParam(r, "order_id"), after, limit)
	if err != nil {
		h.writeServiceError(w, r, "failed to list messages", err)
		return
	}

	utils.WriteJSON(w, MessagesEntityToJSON(msgs), http.StatusOK)
}

// RequestCall просит курьера перезвонить клиенту.
// @Summary      Запросить звонок курьера
// @Tags         channel
// @Security     BearerAuth
// @Produce      json
// @Param        order_id  path      string  true  "Идентификатор заказа"
// @Success      201  {object}  CallSignal
// @Failure      403  {object}  utils.ErrorResponse "Доступ запрещён"
// @Failure      409  {object}  utils.ErrorResponse "У заказа нет курьера"
// @Failure      503  {object}  utils.ErrorResponse "Хранилище сигналов недоступно"
// @Router       /orders/{order_id}/calls [post]
func (h *HTTPHandler) RequestCall(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	call, err := h.channel.RequestCall(r.Context(), actor, chi.URLParam(r, "order_id"))
	if err != nil {
		h.writeServiceError(w, r, "failed to request call", err)
		return
	}

	utils.WriteJSON(w, CallEntityToJSON(call), http.StatusCreated)
}

// PendingCalls возвращает активные запросы звонков курьеру.
// @Summary      Ожидающие звонки
// @Tags         drivers
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   CallSignal
// @Failure      403  {object}  utils.ErrorResponse "Только для курьеров"
// @Router       /drivers/me/calls [get]
func (h *HTTPHandler) PendingCalls(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	calls, err := h.channel.PendingCalls(r.Context(), actor)
	if err != nil {
		h.writeServiceError(w, r, "failed to list calls", err)
		return
	}

	utils.WriteJSON(w, CallsEntityToJSON(calls), http.StatusOK)
}

// DismissCall снимает запрос звонка.
// @Summary      Закрыть запрос звонка
// @Tags         drivers
// @Security     BearerAuth
// @Param        call_id  path  string  true  "Идентификатор запроса"
// @Success      204
// @Failure      404  {object}  utils.ErrorResponse "Запрос не найден или истёк"
// @Router       /drivers/me/calls/{call_id} [delete]
func (h *HTTPHandler) DismissCall(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	if err := h.channel.DismissCall(r.Context(), actor, chi.URLParam(r, "call_id")); err != nil {
		h.writeServiceError(w, r, "failed to dismiss call", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

