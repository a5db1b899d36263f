package handler_test

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/food-dispatch/internal/entities"
	"github.com/SergeyBogomolovv/food-dispatch/internal/handler"
	mocks "github.com/SergeyBogomolovv/food-dispatch/internal/handler/mocks"
	"github.com/SergeyBogomolovv/food-dispatch/internal/middleware"
	"github.com/SergeyBogomolovv/food-dispatch/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	customer = entities.Actor{ID: "customer-1", Role: entities.RoleCustomer}
	driver   = entities.Actor{ID: "driver-1", Role: entities.RoleDriver}
	kitchen  = entities.Actor{ID: "staff-1", Role: entities.RoleRestaurant, RestaurantID: "rest-1"}
)

type handlerMocks struct {
	orders   *mocks.MockOrderService
	dispatch *mocks.MockDispatchService
	channel  *mocks.MockChannelService
	hub      *mocks.MockSubscriber
}

func newRouter(t *testing.T, actor *entities.Actor) (http.Handler, handlerMocks) {
	t.Helper()
	m := handlerMocks{
		orders:   mocks.NewMockOrderService(t),
		dispatch: mocks.NewMockDispatchService(t),
		channel:  mocks.NewMockChannelService(t),
		hub:      mocks.NewMockSubscriber(t),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewHTTPHandler(logger, m.orders, m.dispatch, m.channel, m.hub)

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if actor != nil {
				r = r.WithContext(middleware.WithActor(r.Context(), *actor))
			}
			next.ServeHTTP(w, r)
		})
	})
	h.Init(r)
	return r, m
}

func do(t *testing.T, h http.Handler, method, target, body string) (int, string) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, req)

	res := rr.Result()
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res.StatusCode, string(data)
}

func ptr[T any](v T) *T { return &v }

const checkoutBody = `{
	"restaurant_id": "rest-1",
	"restaurant": {"name": "Dastarkhan", "address": {"text": "Abay 10", "city": "Almaty", "coordinates": {"lat": 43.2383, "lng": 76.9456}}},
	"items": [{"product_id": "p-1", "name": "Plov", "unit_price": 50, "quantity": 2}],
	"delivery_address": {"text": "Dostyk 5", "city": "Almaty"},
	"contact": {"name": "Aigerim", "phone": "+77010000000"},
	"payment_method": "card"
}`

func TestHTTPHandler_GetOrder(t *testing.T) {
	testCases := []struct {
		name         string
		actor        *entities.Actor
		mockBehavior func(m handlerMocks)
		wantStatus   int
		wantBody     string
	}{
		{
			name:  "success",
			actor: &customer,
			mockBehavior: func(m handlerMocks) {
				m.orders.EXPECT().
					GetOrder(mock.Anything, customer, "o-1").
					Return(entities.Order{ID: "o-1", Status: entities.StatusPending}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"id":"o-1"`,
		},
		{
			name:  "not found",
			actor: &customer,
			mockBehavior: func(m handlerMocks) {
				m.orders.EXPECT().
					GetOrder(mock.Anything, customer, "o-1").
					Return(entities.Order{}, fmt.Errorf("load: %w", entities.ErrOrderNotFound)).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
		{
			name:  "forbidden",
			actor: &customer,
			mockBehavior: func(m handlerMocks) {
				m.orders.EXPECT().
					GetOrder(mock.Anything, customer, "o-1").
					Return(entities.Order{}, entities.ErrForbidden).Once()
			},
			wantStatus: http.StatusForbidden,
			wantBody:   `"code":"forbidden"`,
		},
		{
			name:  "internal error",
			actor: &customer,
			mockBehavior: func(m handlerMocks) {
				m.orders.EXPECT().
					GetOrder(mock.Anything, customer, "o-1").
					Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
		{
			name:         "no actor",
			mockBehavior: func(m handlerMocks) {},
			wantStatus:   http.StatusUnauthorized,
			wantBody:     `"code":"unauthorized"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h, m := newRouter(t, tc.actor)
			tc.mockBehavior(m)

			status, body := do(t, h, http.MethodGet, "/orders/o-1", "")

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestHTTPHandler_CreateOrder(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(m handlerMocks)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "created",
			body: checkoutBody,
			mockBehavior: func(m handlerMocks) {
				m.orders.EXPECT().
					CreateOrder(mock.Anything, customer, mock.MatchedBy(func(in service.CheckoutInput) bool {
						return in.RestaurantID == "rest-1" && len(in.Items) == 1 && in.Items[0].Quantity == 2 &&
							in.Restaurant.Address.Coordinates != nil && in.DeliveryAddress.Coordinates == nil &&
							in.PaymentMethod == entities.PaymentCard
					})).
					Return(entities.Order{ID: "o-1", Status: entities.StatusPending, Total: 115}, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"total":115`,
		},
		{
			name: "buffered",
			body: checkoutBody,
			mockBehavior: func(m handlerMocks) {
				m.orders.EXPECT().
					CreateOrder(mock.Anything, customer, mock.Anything).
					Return(entities.Order{ID: "o-1", Buffered: true}, nil).Once()
			},
			wantStatus: http.StatusAccepted,
			wantBody:   `"buffered":true`,
		},
		{
			name:         "no items",
			body:         strings.Replace(checkoutBody, `"quantity": 2`, `"quantity": 0`, 1),
			mockBehavior: func(m handlerMocks) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"Quantity":"gte"`,
		},
		{
			name:         "unit price overflows money column",
			body:         strings.Replace(checkoutBody, `"unit_price": 50`, `"unit_price": 1000000000000`, 1),
			mockBehavior: func(m handlerMocks) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"UnitPrice":"lte"`,
		},
		{
			name:         "bad phone",
			body:         strings.Replace(checkoutBody, `+77010000000`, `8701`, 1),
			mockBehavior: func(m handlerMocks) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"Phone":"e164"`,
		},
		{
			name:         "unknown field",
			body:         `{"foo": 1}`,
			mockBehavior: func(m handlerMocks) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"code":"validation_error"`,
		},
		{
			name: "service validation",
			body: checkoutBody,
			mockBehavior: func(m handlerMocks) {
				m.orders.EXPECT().
					CreateOrder(mock.Anything, customer, mock.Anything).
					Return(entities.Order{}, entities.Validationf("promo X has expired")).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `promo X has expired`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h, m := newRouter(t, &customer)
			tc.mockBehavior(m)

			status, body := do(t, h, http.MethodPost, "/orders", tc.body)

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestHTTPHandler_QuoteCheckout(t *testing.T) {
	h, m := newRouter(t, &customer)
	m.orders.EXPECT().
		QuoteCheckout(mock.Anything, customer, mock.Anything).
		Return(service.Quote{Fallback: true, MapCenter: &entities.Coordinates{Lat: 43.2383, Lng: 76.9456}}, nil).Once()

	status, body := do(t, h, http.MethodPost, "/checkout/quote", checkoutBody)

	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"fallback":true`)
	assert.Contains(t, body, `"map_center":{"lat":43.2383,"lng":76.9456}`)
	assert.NotContains(t, body, `"delivery_coordinates"`)
}

func TestHTTPHandler_UpdateStatus(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(m handlerMocks)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: `{"status": "confirmed"}`,
			mockBehavior: func(m handlerMocks) {
				m.orders.EXPECT().
					UpdateStatus(mock.Anything, kitchen, "o-1", entities.StatusConfirmed).
					Return(entities.Order{ID: "o-1", Status: entities.StatusConfirmed}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"confirmed"`,
		},
		{
			name: "on_way alias",
			body: `{"status": "on_way"}`,
			mockBehavior: func(m handlerMocks) {
				m.orders.EXPECT().
					UpdateStatus(mock.Anything, kitchen, "o-1", entities.StatusPickedUp).
					Return(entities.Order{}, entities.ErrForbidden).Once()
			},
			wantStatus: http.StatusForbidden,
			wantBody:   `"code":"forbidden"`,
		},
		{
			name: "invalid transition",
			body: `{"status": "ready"}`,
			mockBehavior: func(m handlerMocks) {
				m.orders.EXPECT().
					UpdateStatus(mock.Anything, kitchen, "o-1", entities.StatusReady).
					Return(entities.Order{}, entities.ErrInvalidTransition).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"code":"invalid_transition"`,
		},
		{
			name:         "unknown status",
			body:         `{"status": "eaten"}`,
			mockBehavior: func(m handlerMocks) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `unknown order status`,
		},
		{
			name:         "empty",
			body:         `{}`,
			mockBehavior: func(m handlerMocks) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"Status":"required"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h, m := newRouter(t, &kitchen)
			tc.mockBehavior(m)

			status, body := do(t, h, http.MethodPatch, "/orders/o-1/status", tc.body)

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestHTTPHandler_ListOrders(t *testing.T) {
	h, m := newRouter(t, &kitchen)
	m.orders.EXPECT().
		ListOrders(mock.Anything, kitchen, entities.OrderFilter{Status: entities.StatusReady, Limit: 20}).
		Return([]entities.Order{{ID: "o-1"}, {ID: "o-2"}}, nil).Once()

	status, body := do(t, h, http.MethodGet, "/orders?status=ready&limit=20", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"id":"o-2"`)

	status, _ = do(t, h, http.MethodGet, "/orders?limit=abc", "")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestHTTPHandler_Claim(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{name: "won", wantStatus: http.StatusCreated, wantBody: `"driver_id":"driver-1"`},
		{name: "lost", err: entities.ErrAlreadyClaimed, wantStatus: http.StatusConflict, wantBody: `"code":"already_claimed"`},
		{name: "wrong city", err: entities.ErrForbidden, wantStatus: http.StatusForbidden, wantBody: `"code":"forbidden"`},
		{name: "cancelled", err: entities.ErrInvalidTransition, wantStatus: http.StatusConflict, wantBody: `"code":"invalid_transition"`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h, m := newRouter(t, &driver)
			a := entities.Assignment{ID: "a-1", OrderID: "o-1", DriverID: "driver-1", Status: entities.AssignmentAssigned}
			if tc.err != nil {
				a = entities.Assignment{}
			}
			m.dispatch.EXPECT().Claim(mock.Anything, driver, "o-1").Return(a, tc.err).Once()

			status, body := do(t, h, http.MethodPost, "/dispatch/orders/o-1/claim", "")

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestHTTPHandler_MarkPickedUp(t *testing.T) {
	t.Run("without body", func(t *testing.T) {
		h, m := newRouter(t, &driver)
		m.dispatch.EXPECT().
			MarkPickedUp(mock.Anything, driver, "a-1", (*entities.Coordinates)(nil)).
			Return(entities.Assignment{ID: "a-1", Status: entities.AssignmentPickedUp}, nil).Once()

		status, body := do(t, h, http.MethodPost, "/assignments/a-1/pickup", "")
		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, `"status":"picked_up"`)
	})

	t.Run("with location", func(t *testing.T) {
		h, m := newRouter(t, &driver)
		m.dispatch.EXPECT().
			MarkPickedUp(mock.Anything, driver, "a-1", &entities.Coordinates{Lat: 43.25, Lng: 76.94}).
			Return(entities.Assignment{ID: "a-1", Status: entities.AssignmentPickedUp}, nil).Once()

		status, _ := do(t, h, http.MethodPost, "/assignments/a-1/pickup", `{"location": {"lat": 43.25, "lng": 76.94}}`)
		assert.Equal(t, http.StatusOK, status)
	})

	t.Run("bad latitude", func(t *testing.T) {
		h, _ := newRouter(t, &driver)

		status, body := do(t, h, http.MethodPost, "/assignments/a-1/pickup", `{"location": {"lat": 123, "lng": 76.94}}`)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Contains(t, body, `"Lat":"latitude"`)
	})
}

func TestHTTPHandler_MarkDelivered(t *testing.T) {
	h, m := newRouter(t, &driver)
	m.dispatch.EXPECT().MarkDelivered(mock.Anything, driver, "a-1").
		Return(entities.Assignment{ID: "a-1", Status: entities.AssignmentDelivered}, nil).Once()
	m.dispatch.EXPECT().MarkDelivered(mock.Anything, driver, "a-1").
		Return(entities.Assignment{}, entities.ErrInvalidTransition).Once()

	status, _ := do(t, h, http.MethodPost, "/assignments/a-1/deliver", "")
	assert.Equal(t, http.StatusOK, status)

	status, body := do(t, h, http.MethodPost, "/assignments/a-1/deliver", "")
	assert.Equal(t, http.StatusConflict, status)
	assert.Contains(t, body, `"cannot update order"`)
}

func TestHTTPHandler_DriverProfile(t *testing.T) {
	h, m := newRouter(t, &driver)
	m.dispatch.EXPECT().
		UpsertDriverProfile(mock.Anything, driver, "Almaty", false).
		Return(entities.Driver{ID: "driver-1", City: "Almaty"}, nil).Once()
	m.dispatch.EXPECT().
		GetDriverProfile(mock.Anything, driver).
		Return(entities.Driver{}, entities.ErrDriverNotFound).Once()

	status, body := do(t, h, http.MethodPut, "/drivers/me", `{"city": "Almaty", "available": false}`)
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"available":false`)

	// available обязателен, иначе false не отличить от пропуска
	status, _ = do(t, h, http.MethodPut, "/drivers/me", `{"city": "Almaty"}`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = do(t, h, http.MethodGet, "/drivers/me", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Contains(t, body, `"driver not found"`)
}

func TestHTTPHandler_Location(t *testing.T) {
	h, m := newRouter(t, &driver)
	point := entities.Coordinates{Lat: 43.25, Lng: 76.94}
	m.channel.EXPECT().PushLocation(mock.Anything, driver, "o-1", point).Return(15*time.Second, nil).Once()
	m.channel.EXPECT().GetLocation(mock.Anything, driver, "o-1").Return(nil, nil).Once()
	m.channel.EXPECT().GetLocation(mock.Anything, driver, "o-1").
		Return(&entities.DriverLocation{OrderID: "o-1", DriverID: "driver-1", Coordinates: point}, nil).Once()

	status, body := do(t, h, http.MethodPut, "/orders/o-1/location", `{"lat": 43.25, "lng": 76.94}`)
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"next_update_seconds":15`)

	status, _ = do(t, h, http.MethodGet, "/orders/o-1/location", "")
	assert.Equal(t, http.StatusNoContent, status)

	status, body = do(t, h, http.MethodGet, "/orders/o-1/location", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"coordinates":{"lat":43.25,"lng":76.94}`)
}

func TestHTTPHandler_Messages(t *testing.T) {
	const msgID = "9c3f0a1e-5b7d-4e2a-8f6c-0d1e2f3a4b5c"

	testCases := []struct {
		name       string
		body       string
		created    bool
		call       bool
		wantStatus int
	}{
		{name: "created", body: `{"id": "` + msgID + `", "content": "hi"}`, created: true, call: true, wantStatus: http.StatusCreated},
		{name: "replayed", body: `{"id": "` + msgID + `", "content": "hi"}`, call: true, wantStatus: http.StatusOK},
		{name: "bad id", body: `{"id": "1", "content": "hi"}`, wantStatus: http.StatusBadRequest},
		{name: "empty", body: `{"content": ""}`, wantStatus: http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h, m := newRouter(t, &customer)
			if tc.call {
				m.channel.EXPECT().
					SendMessage(mock.Anything, customer, "o-1", service.MessageInput{ID: msgID, Content: "hi"}).
					Return(entities.Message{ID: msgID, Content: "hi", SenderRole: entities.SenderCustomer}, tc.created, nil).Once()
			}

			status, _ := do(t, h, http.MethodPost, "/orders/o-1/messages", tc.body)
			assert.Equal(t, tc.wantStatus, status)
		})
	}

	t.Run("list after", func(t *testing.T) {
		h, m := newRouter(t, &customer)
		after := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
		m.channel.EXPECT().
			ListMessages(mock.Anything, customer, "o-1", mock.MatchedBy(func(ts *time.Time) bool {
				return ts != nil && ts.Equal(after)
			}), 10).
			Return([]entities.Message{{ID: msgID}}, nil).Once()

		status, body := do(t, h, http.MethodGet, "/orders/o-1/messages?after=2026-10-01T12:00:00Z&limit=10", "")
		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, msgID)

		status, _ = do(t, h, http.MethodGet, "/orders/o-1/messages?after=yesterday", "")
		assert.Equal(t, http.StatusBadRequest, status)
	})
}

func TestHTTPHandler_Calls(t *testing.T) {
	t.Run("request", func(t *testing.T) {
		h, m := newRouter(t, &customer)
		m.channel.EXPECT().RequestCall(mock.Anything, customer, "o-1").
			Return(entities.CallSignal{ID: "c-1", DriverID: "driver-1"}, nil).Once()
		m.channel.EXPECT().RequestCall(mock.Anything, customer, "o-1").
			Return(entities.CallSignal{}, fmt.Errorf("%w: redis down", entities.ErrUpstreamUnavailable)).Once()

		status, _ := do(t, h, http.MethodPost, "/orders/o-1/calls", "")
		assert.Equal(t, http.StatusCreated, status)

		status, body := do(t, h, http.MethodPost, "/orders/o-1/calls", "")
		assert.Equal(t, http.StatusServiceUnavailable, status)
		assert.Contains(t, body, `"code":"upstream_unavailable"`)
	})

	t.Run("driver side", func(t *testing.T) {
		h, m := newRouter(t, &driver)
		m.channel.EXPECT().PendingCalls(mock.Anything, driver).
			Return([]entities.CallSignal{{ID: "c-1"}}, nil).Once()
		m.channel.EXPECT().DismissCall(mock.Anything, driver, "c-1").Return(nil).Once()
		m.channel.EXPECT().DismissCall(mock.Anything, driver, "c-1").Return(entities.ErrCallNotFound).Once()

		status, body := do(t, h, http.MethodGet, "/drivers/me/calls", "")
		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, `"id":"c-1"`)

		status, _ = do(t, h, http.MethodDelete, "/drivers/me/calls/c-1", "")
		assert.Equal(t, http.StatusNoContent, status)

		status, body = do(t, h, http.MethodDelete, "/drivers/me/calls/c-1", "")
		assert.Equal(t, http.StatusNotFound, status)
		assert.Contains(t, body, `"call not found"`)
	})
}

func TestHTTPHandler_ReverseGeocode(t *testing.T) {
	h, m := newRouter(t, &customer)
	coords := entities.Coordinates{Lat: 43.25, Lng: 76.94}
	m.orders.EXPECT().ReverseGeocode(mock.Anything, coords).
		Return(entities.Address{Text: "Dostyk 5", City: "Almaty", Coordinates: &coords}, nil).Once()
	m.orders.EXPECT().ReverseGeocode(mock.Anything, coords).
		Return(entities.Address{}, entities.ErrUpstreamUnavailable).Once()

	status, body := do(t, h, http.MethodGet, "/geocode/reverse?lat=43.25&lng=76.94", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"text":"Dostyk 5"`)

	status, _ = do(t, h, http.MethodGet, "/geocode/reverse?lat=43.25&lng=76.94", "")
	assert.Equal(t, http.StatusServiceUnavailable, status)

	status, _ = do(t, h, http.MethodGet, "/geocode/reverse?lat=north", "")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestHTTPHandler_Subscribe(t *testing.T) {
	testCases := []struct {
		name         string
		actor        entities.Actor
		query        string
		mockBehavior func(m handlerMocks)
		wantStatus   int
	}{
		{
			name:  "driver default topic",
			actor: driver,
			mockBehavior: func(m handlerMocks) {
				m.hub.EXPECT().Serve(mock.Anything, mock.Anything, []string{"driver:driver-1"}).Return(nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "driver city pool",
			actor: driver,
			query: "?topic=city:Almaty&topic=driver:driver-1",
			mockBehavior: func(m handlerMocks) {
				m.hub.EXPECT().Serve(mock.Anything, mock.Anything, []string{"city:almaty", "driver:driver-1"}).Return(nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "customer own order",
			actor: customer,
			query: "?topic=order:o-1",
			mockBehavior: func(m handlerMocks) {
				m.orders.EXPECT().GetOrder(mock.Anything, customer, "o-1").Return(entities.Order{ID: "o-1"}, nil).Once()
				m.hub.EXPECT().Serve(mock.Anything, mock.Anything, []string{"order:o-1"}).Return(nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "customer foreign order",
			actor: customer,
			query: "?topic=order:o-2",
			mockBehavior: func(m handlerMocks) {
				m.orders.EXPECT().GetOrder(mock.Anything, customer, "o-2").Return(entities.Order{}, entities.ErrForbidden).Once()
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:         "customer city pool",
			actor:        customer,
			query:        "?topic=city:almaty",
			mockBehavior: func(m handlerMocks) {},
			wantStatus:   http.StatusForbidden,
		},
		{
			name:         "other restaurant",
			actor:        kitchen,
			query:        "?topic=restaurant:rest-2",
			mockBehavior: func(m handlerMocks) {},
			wantStatus:   http.StatusForbidden,
		},
		{
			name:         "customer without topic",
			actor:        customer,
			mockBehavior: func(m handlerMocks) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "unknown topic",
			actor:        driver,
			query:        "?topic=weather:almaty",
			mockBehavior: func(m handlerMocks) {},
			wantStatus:   http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h, m := newRouter(t, ptr(tc.actor))
			tc.mockBehavior(m)

			status, _ := do(t, h, http.MethodGet, "/ws"+tc.query, "")
			assert.Equal(t, tc.wantStatus, status)
		})
	}
}
