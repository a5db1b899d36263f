package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SergeyBogomolovv/food-dispatch/internal/entities"
	"github.com/SergeyBogomolovv/food-dispatch/internal/ws"
	"github.com/SergeyBogomolovv/food-dispatch/pkg/utils"
)

// Subscribe открывает websocket с подсказками об изменениях.
// @Summary      Подписка на события
// @Description  topic повторяется: order:{id}, driver:{id}, city:{name}, restaurant:{id}.
// @Description  Без topic курьер подписывается на свои назначения, ресторан на свои заказы.
// @Description  Токен можно передать в access_token.
// @Tags         ws
// @Security     BearerAuth
// @Param        topic         query  []string  false  "Топики"  collectionFormat(multi)
// @Param        access_token  query  string    false  "JWT, если нельзя передать заголовок"
// @Success      101
// @Failure      400  {object}  utils.ErrorResponse "Неизвестный топик"
// @Failure      403  {object}  utils.ErrorResponse "Нет доступа к топику"
// @Router       /ws [get]
func (h *HTTPHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	requested := r.URL.Query()["topic"]
	if len(requested) == 0 {
		requested = defaultTopics(actor)
	}
	if len(requested) == 0 {
		utils.WriteErrorCode(w, "topic is required", utils.CodeValidation, http.StatusBadRequest)
		return
	}

	topics := make([]string, 0, len(requested))
	for _, raw := range requested {
		topic, err := h.authorizeTopic(r, actor, raw)
		if err != nil {
			h.writeServiceError(w, r, "websocket subscription denied", err)
			return
		}
		topics = append(topics, topic)
	}

	// после Upgrade писать в w уже нельзя
	if err := h.hub.Serve(w, r, topics); err != nil {
		h.logger.WarnContext(r.Context(), "websocket upgrade failed", slog.Any("error", err))
	}
}

func defaultTopics(actor entities.Actor) []string {
	switch actor.Role {
	case entities.RoleDriver:
		return []string{ws.DriverTopic(actor.ID)}
	case entities.RoleRestaurant:
		return []string{ws.RestaurantTopic(actor.RestaurantID)}
	}
	return nil
}

// authorizeTopic проверяет право слушать топик и возвращает его в каноническом виде.
func (h *HTTPHandler) authorizeTopic(r *http.Request, actor entities.Actor, raw string) (string, error) {
	kind, id, ok := strings.Cut(strings.TrimSpace(raw), ":")
	if !ok || id == "" {
		return "", entities.Validationf("malformed topic %q", raw)
	}

	admin := actor.Is(entities.RoleAdmin)

	switch kind {
	case "order":
		// доступ к заказу решает сервис
		if _, err := h.orders.GetOrder(r.Context(), actor, id); err != nil {
			return "", err
		}
		return ws.OrderTopic(id), nil

	case "driver":
		if !admin && !(actor.Is(entities.RoleDriver) && actor.ID == id) {
			return "", fmt.Errorf("%w: topic %s", entities.ErrForbidden, raw)
		}
		return ws.DriverTopic(id), nil

	case "city":
		if !admin && !actor.Is(entities.RoleDriver) {
			return "", fmt.Errorf("%w: topic %s", entities.ErrForbidden, raw)
		}
		return ws.CityTopic(strings.ToLower(id)), nil

	case "restaurant":
		if !admin && !(actor.Is(entities.RoleRestaurant) && actor.RestaurantID == id) {
			return "", fmt.Errorf("%w: topic %s", entities.ErrForbidden, raw)
		}
		return ws.RestaurantTopic(id), nil
	}

	return "", entities.Validationf("unknown topic %q", raw)
}
