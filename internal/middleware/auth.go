package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/SergeyBogomolovv/food-dispatch/internal/entities"
	"github.com/SergeyBogomolovv/food-dispatch/pkg/utils"
	"github.com/golang-jwt/jwt/v5"
)

var errInvalidToken = errors.New("invalid token")

type (
	actorKey struct{}
	slotKey  struct{}
)

type actorSlot struct {
	actor *entities.Actor
}

func withActorSlot(ctx context.Context) context.Context {
	if _, ok := ctx.Value(slotKey{}).(*actorSlot); ok {
		return ctx
	}
	return context.WithValue(ctx, slotKey{}, &actorSlot{})
}

// Claims is the token payload issued by the identity provider.
type Claims struct {
	Role         string `json:"role"`
	RestaurantID string `json:"restaurant_id,omitempty"`
	jwt.RegisteredClaims
}

func WithActor(ctx context.Context, a entities.Actor) context.Context {
	if slot, ok := ctx.Value(slotKey{}).(*actorSlot); ok {
		slot.actor = &a
	}
	return context.WithValue(ctx, actorKey{}, a)
}

func ActorFromContext(ctx context.Context) (entities.Actor, bool) {
	if a, ok := ctx.Value(actorKey{}).(entities.Actor); ok {
		return a, true
	}
	if slot, ok := ctx.Value(slotKey{}).(*actorSlot); ok && slot.actor != nil {
		return *slot.actor, true
	}
	return entities.Actor{}, false
}

// Auth validates the bearer token and stores the actor in the request context.
// Websocket clients cannot set headers from a browser, so the token may come
// in the access_token query parameter as well.
func Auth(secret string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				utils.WriteErrorCode(w, "missing token", utils.CodeUnauthorized, http.StatusUnauthorized)
				return
			}

			actor, err := ParseToken(token, secret)
			if err != nil {
				utils.WriteErrorCode(w, "invalid token", utils.CodeUnauthorized, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
		})
	}
}

func bearerToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		parts := strings.SplitN(h, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return ""
		}
		return strings.TrimSpace(parts[1])
	}
	return r.URL.Query().Get("access_token")
}

// ParseToken validates an HS256 token and maps its claims to an actor.
func ParseToken(token, secret string) (entities.Actor, error) {
	var c Claims
	tok, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return entities.Actor{}, err
	}
	if !tok.Valid {
		return entities.Actor{}, errInvalidToken
	}

	actor := entities.Actor{
		ID:           c.Subject,
		Role:         entities.Role(strings.ToLower(c.Role)),
		RestaurantID: c.RestaurantID,
	}
	if actor.ID == "" || !actor.Role.Valid() {
		return entities.Actor{}, errInvalidToken
	}
	if actor.Is(entities.RoleRestaurant) && actor.RestaurantID == "" {
		return entities.Actor{}, errInvalidToken
	}
	return actor, nil
}

// IssueToken signs claims for an actor. Used by load tools and tests.
func IssueToken(actor entities.Actor, secret string) (string, error) {
	c := Claims{
		Role:         string(actor.Role),
		RestaurantID: actor.RestaurantID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: actor.ID,
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte(secret))
}
