package handler

import (
	"net/http"
	"strconv"

	"github.com/SergeyBogomolovv/food-dispatch/internal/entities"
	"github.com/SergeyBogomolovv/food-dispatch/pkg/utils"
	"github.com/go-chi/chi/v5"
)

// QuoteCheckout считает стоимость корзины без создания заказа.
// @Summary      Расчёт стоимости заказа
// @Description  Возвращает подытог, стоимость доставки, скидку и координаты для карты
// @Tags         checkout
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CheckoutRequest  true  "Корзина и адрес доставки"
// @Success      200  {object}  QuoteResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      403  {object}  utils.ErrorResponse "Доступ запрещён"
// @Failure      503  {object}  utils.ErrorResponse "Сервис акций недоступен"
// @Router       /checkout/quote [post]
func (h *HTTPHandler) QuoteCheckout(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	var req CheckoutRequest
	if !h.decode(w, r, &req) {
		return
	}

	quote, err := h.orders.QuoteCheckout(r.Context(), actor, CheckoutJSONToInput(req))
	if err != nil {
		h.writeServiceError(w, r, "failed to quote checkout", err)
		return
	}

	utils.WriteJSON(w, QuoteToJSON(quote), http.StatusOK)
}

// CreateOrder оформляет заказ.
// @Summary      Оформить заказ
// @Description  Создаёт заказ в статусе pending. Повтор с тем же order_id возвращает уже созданный заказ.
// @Description  Если хранилище недоступно, заказ принимается в локальный буфер (buffered=true, код 202).
// @Tags         orders
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CheckoutRequest  true  "Корзина и адрес доставки"
// @Success      201  {object}  Order
// @Success      202  {object}  Order "Заказ принят в буфер"
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      403  {object}  utils.ErrorResponse "Доступ запрещён"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders [post]
func (h *HTTPHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	var req CheckoutRequest
	if !h.decode(w, r, &req) {
		return
	}

	order, err := h.orders.CreateOrder(r.Context(), actor, CheckoutJSONToInput(req))
	if err != nil {
		h.writeServiceError(w, r, "failed to create order", err)
		return
	}

	status := http.StatusCreated
	if order.Buffered {
		status = http.StatusAccepted
	}
	ordersCreated.WithLabelValues(strconv.FormatBool(order.Buffered)).Inc()
	utils.WriteJSON(w, OrderEntityToJSON(order), status)
}

// ListOrders возвращает заказы, видимые вызывающему.
// @Summary      Список заказов
// @Description  Клиент видит свои заказы, ресторан свои, курьер назначенные ему, админ все
// @Tags         orders
// @Security     BearerAuth
// @Produce      json
// @Param        status         query     string  false  "Фильтр по статусу"
// @Param        restaurant_id  query     string  false  "Фильтр по ресторану (только админ)"
// @Param        customer_id    query     string  false  "Фильтр по клиенту (только админ)"
// @Param        limit          query     int     false  "Количество, по умолчанию 50, максимум 100"
// @Success      200  {array}   Order
// @Failure      400  {object}  utils.ErrorResponse "Ошибка валидации"
// @Router       /orders [get]
func (h *HTTPHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	filter := entities.OrderFilter{
		CustomerID:   q.Get("customer_id"),
		RestaurantID: q.Get("restaurant_id"),
		DriverID:     q.Get("driver_id"),
	}

	if s := q.Get("status"); s != "" {
		status, err := entities.ParseOrderStatus(s)
		if err != nil {
			h.writeServiceError(w, r, "invalid status filter", err)
			return
		}
		filter.Status = status
	}

	if s := q.Get("limit"); s != "" {
		limit, err := strconv.Atoi(s)
		if err != nil || limit < 0 {
			utils.WriteErrorCode(w, "limit must be a non-negative integer", utils.CodeValidation, http.StatusBadRequest)
			return
		}
		filter.Limit = limit
	}

	orders, err := h.orders.ListOrders(r.Context(), actor, filter)
	if err != nil {
		h.writeServiceError(w, r, "failed to list orders", err)
		return
	}

	utils.WriteJSON(w, OrdersEntityToJSON(orders), http.StatusOK)
}

// GetOrder возвращает заказ по ID.
// @Summary      Получить заказ
// @Tags         orders
// @Security     BearerAuth
// @Produce      json
// @Param        order_id  path      string  true  "Идентификатор заказа"
// @Success      200  {object}  Order
// @Failure      403  {object}  utils.ErrorResponse "Доступ запрещён"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/{order_id} [get]
func (h *HTTPHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	order, err := h.orders.GetOrder(r.Context(), actor, chi.URLParam(r, "order_id"))
	if err != nil {
		h.writeServiceError(w, r, "failed to get order", err)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// UpdateStatus переводит заказ в новый статус.
// @Summary      Сменить статус заказа
// @Description  Ресторан подтверждает, готовит и отклоняет заказ. Статусы доставки меняются только через назначения.
// @Tags         orders
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        order_id  path      string               true  "Идентификатор заказа"
// @Param        request   body      UpdateStatusRequest  true  "Новый статус"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      403  {object}  utils.ErrorResponse "Доступ запрещён"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Недопустимый переход"
// @Router       /orders/{order_id}/status [patch]
func (h *HTTPHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if !h.decode(w, r, &req) {
		return
	}

	to, err := entities.ParseOrderStatus(req.Status)
	if err != nil {
		h.writeServiceError(w, r, "invalid status", err)
		return
	}

	order, err := h.orders.UpdateStatus(r.Context(), actor, chi.URLParam(r, "order_id"), to)
	if err != nil {
		h.writeServiceError(w, r, "failed to update order status", err)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// CancelOrder отменяет заказ.
// @Summary      Отменить заказ
// @Description  Доступно клиенту, ресторану и админу до забора заказа курьером
// @Tags         orders
// @Security     BearerAuth
// @Produce      json
// @Param        order_id  path      string  true  "Идентификатор заказа"
// @Success      200  {object}  Order
// @Failure      403  {object}  utils.ErrorResponse "Доступ запрещён"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Заказ уже нельзя отменить"
// @Router       /orders/{order_id}/cancel [post]
func (h *HTTPHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	order, err := h.orders.CancelOrder(r.Context(), actor, chi.URLParam(r, "order_id"))
	if err != nil {
		h.writeServiceError(w, r, "failed to cancel order", err)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// ReverseGeocode превращает точку на карте в адрес.
// @Summary      Адрес по координатам
// @Tags         checkout
// @Security     BearerAuth
// @Produce      json
// @Param        lat  query     number  true  "Широта"
// @Param        lng  query     number  true  "Долгота"
// @Success      200  {object}  Address
// @Failure      400  {object}  utils.ErrorResponse "Ошибка валидации"
// @Failure      503  {object}  utils.ErrorResponse "Геокодер недоступен"
// @Router       /geocode/reverse [get]
func (h *HTTPHandler) ReverseGeocode(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.actor(w, r); !ok {
		return
	}

	coords, ok := parseCoordinates(w, r)
	if !ok {
		return
	}

	addr, err := h.orders.ReverseGeocode(r.Context(), coords)
	if err != nil {
		h.writeServiceError(w, r, "failed to reverse geocode", err)
		return
	}

	utils.WriteJSON(w, AddressEntityToJSON(addr), http.StatusOK)
}

func parseCoordinates(w http.ResponseWriter, r *http.Request) (entities.Coordinates, bool) {
	q := r.URL.Query()
	lat, errLat := strconv.ParseFloat(q.Get("lat"), 64)
	lng, errLng := strconv.ParseFloat(q.Get("lng"), 64)
	if errLat != nil || errLng != nil {
		utils.WriteErrorCode(w, "lat and lng must be numbers", utils.CodeValidation, http.StatusBadRequest)
		return entities.Coordinates{}, false
	}
	return entities.Coordinates{Lat: lat, Lng: lng}, true
}
