// Command order-generator нагружает сервис потоком заказов и пулом
// курьеров, которые соревнуются за каждый из них.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/SergeyBogomolovv/food-dispatch/internal/entities"
	"github.com/SergeyBogomolovv/food-dispatch/internal/middleware"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

const (
	baseURL  = "http://localhost:8080"
	city     = "Almaty"
	drivers  = 5
	interval = 2 * time.Second
)

var restaurants = []string{"rest-1", "rest-2", "rest-3"}

type simulator struct {
	client *http.Client
	secret string
}

func (s *simulator) token(actor entities.Actor) string {
	token, err := middleware.IssueToken(actor, s.secret)
	if err != nil {
		log.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func (s *simulator) do(ctx context.Context, actor entities.Actor, method, path string, body any, out any) (int, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return 0, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, baseURL+path, &buf)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Authorization", "Bearer "+s.token(actor))
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if out != nil && resp.StatusCode < 300 {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, err
		}
	}
	return resp.StatusCode, nil
}

func randomCheckout(restaurantID string) map[string]any {
	return map[string]any{
		"order_id":      uuid.NewString(),
		"restaurant_id": restaurantID,
		"restaurant": map[string]any{
			"name": "Kitchen " + restaurantID,
			"address": map[string]any{
				"text": fmt.Sprintf("Abay %d", rand.Intn(200)), "city": city,
				"coordinates": map[string]float64{"lat": 43.23 + rand.Float64()/50, "lng": 76.94 + rand.Float64()/50},
			},
		},
		"items": []map[string]any{
			{"product_id": "p-" + uuid.NewString()[:8], "name": "Plov", "unit_price": 20 + rand.Intn(30), "quantity": 1 + rand.Intn(3)},
		},
		"delivery_address": map[string]any{
			"text": fmt.Sprintf("Dostyk %d", rand.Intn(300)), "city": city,
			"coordinates": map[string]float64{"lat": 43.20 + rand.Float64()/20, "lng": 76.90 + rand.Float64()/20},
		},
		"contact":        map[string]string{"name": "Customer", "phone": fmt.Sprintf("+7701%07d", rand.Intn(9999999))},
		"payment_method": "card",
	}
}

// placeOrder проводит заказ до ready от имени клиента и ресторана.
func (s *simulator) placeOrder(ctx context.Context) (string, error) {
	restaurantID := restaurants[rand.Intn(len(restaurants))]
	customer := entities.Actor{ID: "customer-" + uuid.NewString()[:8], Role: entities.RoleCustomer}
	kitchen := entities.Actor{ID: "staff-" + restaurantID, Role: entities.RoleRestaurant, RestaurantID: restaurantID}

	var order struct {
		ID string `json:"id"`
	}
	status, err := s.do(ctx, customer, http.MethodPost, "/orders", randomCheckout(restaurantID), &order)
	if err != nil {
		return "", err
	}
	if status != http.StatusCreated {
		return "", fmt.Errorf("checkout returned %d", status)
	}

	for _, next := range []string{"confirmed", "preparing", "ready"} {
		status, err := s.do(ctx, kitchen, http.MethodPatch, "/orders/"+order.ID+"/status", map[string]string{"status": next}, nil)
		if err != nil {
			return "", err
		}
		if status != http.StatusOK {
			return "", fmt.Errorf("status %s returned %d", next, status)
		}
	}
	return order.ID, nil
}

// race отправляет всех курьеров на один заказ, побеждает ровно один.
func (s *simulator) race(ctx context.Context, orderID string) {
	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		winner string
		lost   int
	)
	for i := range drivers {
		driver := entities.Actor{ID: fmt.Sprintf("driver-%d", i), Role: entities.RoleDriver}
		wg.Go(func() {
			var a struct {
				ID string `json:"id"`
			}
			status, err := s.do(ctx, driver, http.MethodPost, "/dispatch/orders/"+orderID+"/claim", nil, &a)
			if err != nil {
				log.Println("claim failed:", err)
				return
			}
			mu.Lock()
			defer mu.Unlock()
			switch status {
			case http.StatusCreated:
				winner = driver.ID
			case http.StatusConflict:
				lost++
			}
		})
	}
	wg.Wait()
	log.Printf("order %s claimed by %q, %d drivers lost", orderID, winner, lost)
}

func (s *simulator) registerDrivers(ctx context.Context) {
	for i := range drivers {
		driver := entities.Actor{ID: fmt.Sprintf("driver-%d", i), Role: entities.RoleDriver}
		status, err := s.do(ctx, driver, http.MethodPut, "/drivers/me", map[string]any{"city": city, "available": true}, nil)
		if err != nil || status != http.StatusOK {
			log.Fatalf("failed to register %s: status %d, %v", driver.ID, status, err)
		}
	}
}

// tail печатает события, которые сервис публикует в kafka.
func tail(ctx context.Context, brokers string) {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{brokers},
		Topic:   "order-events",
		GroupID: "order-generator",
	})
	defer reader.Close()

	for {
		m, err := reader.ReadMessage(ctx)
		if err != nil {
			return
		}
		log.Println("event", string(m.Value))
	}
}

func main() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	sim := &simulator{client: &http.Client{Timeout: 5 * time.Second}, secret: secret}
	sim.registerDrivers(ctx)
	go tail(ctx, "localhost:9092")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			id, err := sim.placeOrder(ctx)
			if err != nil {
				log.Println("failed to place order:", err)
				continue
			}
			sim.race(ctx, id)
		case <-ctx.Done():
			return
		}
	}
}
