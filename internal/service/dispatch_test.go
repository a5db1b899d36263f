package service_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/food-dispatch/internal/channel"
	"github.com/SergeyBogomolovv/food-dispatch/internal/config"
	"github.com/SergeyBogomolovv/food-dispatch/internal/entities"
	"github.com/SergeyBogomolovv/food-dispatch/internal/service"
	mocks "github.com/SergeyBogomolovv/food-dispatch/internal/service/mocks"
	"github.com/SergeyBogomolovv/food-dispatch/pkg/cache"
	txMocks "github.com/SergeyBogomolovv/food-dispatch/pkg/trm/mocks"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var dispatchCfg = config.Dispatch{ClaimableLimit: 50, AssignmentTimeout: 10 * time.Minute, SweepInterval: time.Second}

type dispatchEnv struct {
	store  *memStore
	live   *channel.Store
	redis  *miniredis.Miniredis
	events *recorder
	orders interface {
		UpdateStatus(ctx context.Context, actor entities.Actor, id string, to entities.OrderStatus) (entities.Order, error)
		CancelOrder(ctx context.Context, actor entities.Actor, id string) (entities.Order, error)
	}
	dispatch interface {
		ListClaimable(ctx context.Context, actor entities.Actor) ([]entities.Order, error)
		Claim(ctx context.Context, actor entities.Actor, orderID string) (entities.Assignment, error)
		Reject(ctx context.Context, actor entities.Actor, assignmentID string) (entities.Assignment, error)
		MarkPickedUp(ctx context.Context, actor entities.Actor, assignmentID string, loc *entities.Coordinates) (entities.Assignment, error)
		MarkDelivered(ctx context.Context, actor entities.Actor, assignmentID string) (entities.Assignment, error)
		GetAssignment(ctx context.Context, actor entities.Actor, id string) (entities.Assignment, error)
		ExpireStaleAssignments(ctx context.Context, olderThan time.Duration) (int, error)
		UpsertDriverProfile(ctx context.Context, actor entities.Actor, city string, available bool) (entities.Driver, error)
		GetDriverProfile(ctx context.Context, actor entities.Actor) (entities.Driver, error)
	}
}

func newDispatchEnv(t *testing.T, opts ...service.Option) dispatchEnv {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	env := dispatchEnv{
		store:  newMemStore(),
		live:   channel.NewStore(rdb, time.Minute, time.Minute),
		redis:  mr,
		events: &recorder{},
	}
	c := cache.NewLRUCache(100, time.Minute)
	env.orders = service.NewOrderService(discardLogger(), passTx{}, env.store, c, fixedGeocoder{}, &memBuffer{}, env.events, fees, opts...)
	env.dispatch = service.NewDispatchService(discardLogger(), passTx{}, env.store, c, env.live, env.events, fees, dispatchCfg, opts...)
	return env
}

func driverActor(id string) entities.Actor {
	return entities.Actor{ID: id, Role: entities.RoleDriver}
}

func (e dispatchEnv) addDriver(id, city string, available bool) entities.Actor {
	e.store.putDriver(entities.Driver{ID: id, City: city, Available: available})
	return driverActor(id)
}

func TestDispatchService_StandardFlow(t *testing.T) {
	env := newDispatchEnv(t)
	ctx := context.Background()
	driver := env.addDriver("driver-1", "almaty", true)
	env.store.putOrder(newTestOrder(t, orderID, entities.StatusReady))

	pool, err := env.dispatch.ListClaimable(ctx, driver)
	require.NoError(t, err)
	require.Len(t, pool, 1)

	a, err := env.dispatch.Claim(ctx, driver, orderID)
	require.NoError(t, err)
	assert.Equal(t, 3.0, a.DriverEarnings)
	assert.Equal(t, entities.AssignmentAssigned, a.Status)
	assert.Equal(t, "Dostyk Ave 5", a.PickupAddress.Text)
	assert.Equal(t, "Abay Ave 10", a.DropoffAddress.Text)
	assert.Equal(t, entities.StatusAssigned, env.store.orders[orderID].Status)

	pool, err = env.dispatch.ListClaimable(ctx, driver)
	require.NoError(t, err)
	assert.Empty(t, pool)

	loc := entities.Coordinates{Lat: 43.25, Lng: 76.94}
	a, err = env.dispatch.MarkPickedUp(ctx, driver, a.ID, &loc)
	require.NoError(t, err)
	assert.Equal(t, entities.AssignmentPickedUp, a.Status)
	assert.NotNil(t, a.PickedUpAt)
	assert.Equal(t, entities.StatusPickedUp, env.store.orders[orderID].Status)
	assert.Equal(t, &loc, env.store.orders[orderID].DriverLocation)
	assert.True(t, env.redis.Exists("order:"+orderID+":driver_location"))

	a, err = env.dispatch.MarkDelivered(ctx, driver, a.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.AssignmentDelivered, a.Status)
	assert.Equal(t, entities.StatusDelivered, env.store.orders[orderID].Status)
	assert.Nil(t, env.store.orders[orderID].DriverLocation)
	assert.False(t, env.redis.Exists("order:"+orderID+":driver_location"))

	profile, err := env.dispatch.GetDriverProfile(ctx, driver)
	require.NoError(t, err)
	assert.Equal(t, 1, profile.CompletedDeliveries)
	assert.Equal(t, 3.0, profile.TotalEarnings)

	assert.Equal(t, 1, env.events.count(entities.EventAssignmentClaimed))
	assert.Equal(t, 1, env.events.count(entities.EventAssignmentPickedUp))
	assert.Equal(t, 1, env.events.count(entities.EventAssignmentDelivered))
}

func TestDispatchService_ConcurrentClaims(t *testing.T) {
	const drivers = 16

	env := newDispatchEnv(t)
	env.store.putOrder(newTestOrder(t, orderID, entities.StatusReady))

	actors := make([]entities.Actor, drivers)
	for i := range actors {
		actors[i] = env.addDriver(fmt.Sprintf("driver-%d", i), "Almaty", true)
	}

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		won     int
		claimed int
		other   []error
	)
	start := make(chan struct{})
	for _, actor := range actors {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := env.dispatch.Claim(context.Background(), actor, orderID)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				won++
			case errors.Is(err, entities.ErrAlreadyClaimed):
				claimed++
			default:
				other = append(other, err)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, 1, won)
	assert.Equal(t, drivers-1, claimed)
	assert.Empty(t, other)
	assert.Equal(t, 1, env.store.activeCount(orderID))
}

func TestDispatchService_ClaimAfterCancel(t *testing.T) {
	env := newDispatchEnv(t)
	ctx := context.Background()
	driver := env.addDriver("driver-1", "Almaty", true)
	env.store.putOrder(newTestOrder(t, orderID, entities.StatusConfirmed))

	_, err := env.orders.CancelOrder(ctx, customer, orderID)
	require.NoError(t, err)

	_, err = env.dispatch.Claim(ctx, driver, orderID)
	assert.ErrorIs(t, err, entities.ErrInvalidTransition)
	assert.NotErrorIs(t, err, entities.ErrAlreadyClaimed)
	assert.Zero(t, env.store.activeCount(orderID))
}

func TestDispatchService_CancelAssignedReleasesDriver(t *testing.T) {
	env := newDispatchEnv(t)
	ctx := context.Background()
	driver := env.addDriver("driver-1", "Almaty", true)
	env.store.putOrder(newTestOrder(t, orderID, entities.StatusReady))

	a, err := env.dispatch.Claim(ctx, driver, orderID)
	require.NoError(t, err)

	order, err := env.orders.CancelOrder(ctx, customer, orderID)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusCancelled, order.Status)

	a, err = env.dispatch.GetAssignment(ctx, driver, a.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.AssignmentRejected, a.Status)
	assert.Equal(t, entities.RejectedOrderCanceled, a.RejectionReason)

	_, err = env.dispatch.MarkPickedUp(ctx, driver, a.ID, nil)
	assert.ErrorIs(t, err, entities.ErrInvalidTransition)
}

func TestDispatchService_RejectThenReclaim(t *testing.T) {
	env := newDispatchEnv(t)
	ctx := context.Background()
	first := env.addDriver("driver-1", "Almaty", true)
	second := env.addDriver("driver-2", "ALMATY", true)
	env.store.putOrder(newTestOrder(t, orderID, entities.StatusReady))

	a, err := env.dispatch.Claim(ctx, first, orderID)
	require.NoError(t, err)

	_, err = env.dispatch.Reject(ctx, second, a.ID)
	assert.ErrorIs(t, err, entities.ErrForbidden)

	rejected, err := env.dispatch.Reject(ctx, first, a.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.AssignmentRejected, rejected.Status)
	assert.Equal(t, entities.RejectedByDriver, rejected.RejectionReason)
	assert.Equal(t, entities.StatusReady, env.store.orders[orderID].Status)

	_, err = env.dispatch.Reject(ctx, first, a.ID)
	assert.ErrorIs(t, err, entities.ErrInvalidTransition)

	pool, err := env.dispatch.ListClaimable(ctx, second)
	require.NoError(t, err)
	require.Len(t, pool, 1)

	b, err := env.dispatch.Claim(ctx, second, orderID)
	require.NoError(t, err)
	assert.Equal(t, second.ID, b.DriverID)
	assert.Equal(t, 1, env.store.activeCount(orderID))
	assert.Equal(t, 1, env.events.count(entities.EventAssignmentRejected))
}

func TestDispatchService_DeliverTwice(t *testing.T) {
	env := newDispatchEnv(t)
	ctx := context.Background()
	driver := env.addDriver("driver-1", "Almaty", true)
	env.store.putOrder(newTestOrder(t, orderID, entities.StatusReady))

	a, err := env.dispatch.Claim(ctx, driver, orderID)
	require.NoError(t, err)

	// доставка без забора заказа
	_, err = env.dispatch.MarkDelivered(ctx, driver, a.ID)
	assert.ErrorIs(t, err, entities.ErrInvalidTransition)

	_, err = env.dispatch.MarkPickedUp(ctx, driver, a.ID, nil)
	require.NoError(t, err)
	_, err = env.dispatch.MarkDelivered(ctx, driver, a.ID)
	require.NoError(t, err)
	_, err = env.dispatch.MarkDelivered(ctx, driver, a.ID)
	assert.ErrorIs(t, err, entities.ErrInvalidTransition)

	profile, err := env.dispatch.GetDriverProfile(ctx, driver)
	require.NoError(t, err)
	assert.Equal(t, 1, profile.CompletedDeliveries)
	assert.Equal(t, 3.0, profile.TotalEarnings)
}

func TestDispatchService_ClaimRules(t *testing.T) {
	testCases := []struct {
		name    string
		setup   func(env dispatchEnv) entities.Actor
		status  entities.OrderStatus
		wantErr error
	}{
		{
			name:    "unregistered driver",
			setup:   func(dispatchEnv) entities.Actor { return driverActor("ghost") },
			status:  entities.StatusReady,
			wantErr: entities.ErrForbidden,
		},
		{
			name:    "unavailable driver",
			setup:   func(env dispatchEnv) entities.Actor { return env.addDriver("driver-1", "Almaty", false) },
			status:  entities.StatusReady,
			wantErr: entities.ErrForbidden,
		},
		{
			name:    "another city",
			setup:   func(env dispatchEnv) entities.Actor { return env.addDriver("driver-1", "Astana", true) },
			status:  entities.StatusReady,
			wantErr: entities.ErrForbidden,
		},
		{
			name:    "not a driver",
			setup:   func(dispatchEnv) entities.Actor { return customer },
			status:  entities.StatusReady,
			wantErr: entities.ErrForbidden,
		},
		{
			name:    "pending order",
			setup:   func(env dispatchEnv) entities.Actor { return env.addDriver("driver-1", "Almaty", true) },
			status:  entities.StatusPending,
			wantErr: entities.ErrInvalidTransition,
		},
		{
			name:    "already picked up",
			setup:   func(env dispatchEnv) entities.Actor { return env.addDriver("driver-1", "Almaty", true) },
			status:  entities.StatusPickedUp,
			wantErr: entities.ErrAlreadyClaimed,
		},
		{
			name:   "confirmed order",
			setup:  func(env dispatchEnv) entities.Actor { return env.addDriver("driver-1", "almaty", true) },
			status: entities.StatusConfirmed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			env := newDispatchEnv(t)
			actor := tc.setup(env)
			env.store.putOrder(newTestOrder(t, orderID, tc.status))

			_, err := env.dispatch.Claim(context.Background(), actor, orderID)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Equal(t, tc.status, env.store.orders[orderID].Status)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, entities.StatusAssigned, env.store.orders[orderID].Status)
		})
	}
}

func TestDispatchService_ListClaimable(t *testing.T) {
	env := newDispatchEnv(t)
	ctx := context.Background()

	ready := newTestOrder(t, orderID, entities.StatusReady)
	elsewhere := newTestOrder(t, otherOrder, entities.StatusReady)
	elsewhere.DeliveryAddress.City = "Astana"
	env.store.putOrder(ready)
	env.store.putOrder(elsewhere)
	env.store.putOrder(newTestOrder(t, "a3c1e5f7-0000-4000-8000-000000000003", entities.StatusPreparing))

	pool, err := env.dispatch.ListClaimable(ctx, env.addDriver("driver-1", "almaty", true))
	require.NoError(t, err)
	require.Len(t, pool, 1)
	assert.Equal(t, orderID, pool[0].ID)

	pool, err = env.dispatch.ListClaimable(ctx, env.addDriver("driver-2", "Almaty", false))
	require.NoError(t, err)
	assert.Empty(t, pool)

	pool, err = env.dispatch.ListClaimable(ctx, driverActor("ghost"))
	require.NoError(t, err)
	assert.Empty(t, pool)

	_, err = env.dispatch.ListClaimable(ctx, customer)
	assert.ErrorIs(t, err, entities.ErrForbidden)
}

func TestDispatchService_ExpireStaleAssignments(t *testing.T) {
	env := newDispatchEnv(t)
	ctx := context.Background()
	driver := env.addDriver("driver-1", "Almaty", true)
	env.store.putOrder(newTestOrder(t, orderID, entities.StatusReady))

	a, err := env.dispatch.Claim(ctx, driver, orderID)
	require.NoError(t, err)

	n, err := env.dispatch.ExpireStaleAssignments(ctx, 10*time.Minute)
	require.NoError(t, err)
	assert.Zero(t, n)

	env.store.patchAssignment(a.ID, func(a *entities.Assignment) {
		a.AssignedAt = a.AssignedAt.Add(-time.Hour)
	})

	n, err = env.dispatch.ExpireStaleAssignments(ctx, 10*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	expired, err := env.dispatch.GetAssignment(ctx, driver, a.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.AssignmentRejected, expired.Status)
	assert.Equal(t, entities.RejectedOnTimeout, expired.RejectionReason)
	assert.Equal(t, entities.StatusReady, env.store.orders[orderID].Status)

	pool, err := env.dispatch.ListClaimable(ctx, driver)
	require.NoError(t, err)
	assert.Len(t, pool, 1)
}

func TestDispatchService_GetAssignment(t *testing.T) {
	env := newDispatchEnv(t)
	ctx := context.Background()
	driver := env.addDriver("driver-1", "Almaty", true)
	env.store.putOrder(newTestOrder(t, orderID, entities.StatusReady))

	a, err := env.dispatch.Claim(ctx, driver, orderID)
	require.NoError(t, err)

	for _, actor := range []entities.Actor{driver, customer, restaurant, admin} {
		_, err := env.dispatch.GetAssignment(ctx, actor, a.ID)
		assert.NoError(t, err, actor.Role)
	}

	_, err = env.dispatch.GetAssignment(ctx, driverActor("driver-2"), a.ID)
	assert.ErrorIs(t, err, entities.ErrForbidden)

	_, err = env.dispatch.GetAssignment(ctx, driver, otherOrder)
	assert.ErrorIs(t, err, entities.ErrAssignmentNotFound)
}

func TestDispatchService_DriverProfile(t *testing.T) {
	env := newDispatchEnv(t)
	ctx := context.Background()
	driver := driverActor("driver-1")

	_, err := env.dispatch.GetDriverProfile(ctx, driver)
	assert.ErrorIs(t, err, entities.ErrDriverNotFound)

	_, err = env.dispatch.UpsertDriverProfile(ctx, driver, "  ", true)
	assert.ErrorIs(t, err, entities.ErrValidation)

	_, err = env.dispatch.UpsertDriverProfile(ctx, customer, "Almaty", true)
	assert.ErrorIs(t, err, entities.ErrForbidden)

	d, err := env.dispatch.UpsertDriverProfile(ctx, driver, " Almaty ", true)
	require.NoError(t, err)
	assert.Equal(t, "Almaty", d.City)
	assert.True(t, d.Available)
}

func TestDispatchService_ClaimUniqueViolation(t *testing.T) {
	store := mocks.NewMockStore(t)
	tx := txMocks.NewMockManager(t)
	passThrough(tx)

	store.EXPECT().GetDriver(mock.Anything, "driver-1").Return(entities.Driver{ID: "driver-1", City: "Almaty", Available: true}, nil)
	store.EXPECT().GetOrder(mock.Anything, orderID).Return(newTestOrder(t, orderID, entities.StatusReady), nil)
	store.EXPECT().UpdateOrderStatus(mock.Anything, orderID, entities.ClaimableStatuses, entities.StatusAssigned).Return(true, nil)
	store.EXPECT().CreateAssignment(mock.Anything, mock.MatchedBy(func(a entities.Assignment) bool {
		return a.OrderID == orderID && a.DriverID == "driver-1" && a.DriverEarnings == 3
	})).Return(entities.ErrAlreadyClaimed)

	svc := service.NewDispatchService(discardLogger(), tx, store, mocks.NewMockCache(t), mocks.NewMockLiveStore(t),
		mocks.NewMockNotifier(t), fees, dispatchCfg)

	_, err := svc.Claim(context.Background(), driverActor("driver-1"), orderID)
	assert.ErrorIs(t, err, entities.ErrAlreadyClaimed)
}

func TestSweeper(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		expirer := mocks.NewMockAssignmentExpirer(t)
		sweeper := service.NewSweeper(discardLogger(), expirer, 0, time.Millisecond)
		assert.NoError(t, sweeper.Start(context.Background()))
	})

	t.Run("runs until cancelled", func(t *testing.T) {
		expirer := mocks.NewMockAssignmentExpirer(t)
		ctx, cancel := context.WithCancel(context.Background())

		var calls int
		expirer.EXPECT().ExpireStaleAssignments(mock.Anything, 10*time.Minute).
			RunAndReturn(func(context.Context, time.Duration) (int, error) {
				calls++
				if calls == 1 {
					return 0, errors.New("db error")
				}
				cancel()
				return 1, nil
			})

		sweeper := service.NewSweeper(discardLogger(), expirer, 10*time.Minute, time.Millisecond)

		done := make(chan error, 1)
		go func() { done <- sweeper.Start(ctx) }()

		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(time.Second):
			t.Fatal("sweeper did not stop")
		}
		assert.GreaterOrEqual(t, calls, 2)
	})
}

type driverActions interface {
	Reject(ctx context.Context, actor entities.Actor, assignmentID string) (entities.Assignment, error)
	MarkPickedUp(ctx context.Context, actor entities.Actor, assignmentID string, loc *entities.Coordinates) (entities.Assignment, error)
}

func TestDispatchService_LocksOrderBeforeAssignment(t *testing.T) {
	assigned := entities.Assignment{ID: "a-1", OrderID: orderID, DriverID: "driver-1", Status: entities.AssignmentAssigned}

	testCases := []struct {
		name   string
		expect func(store *mocks.MockStore) []*mock.Call
		run    func(svc driverActions) error
	}{
		{
			name: "reject",
			expect: func(store *mocks.MockStore) []*mock.Call {
				return []*mock.Call{
					store.EXPECT().UpdateOrderStatus(mock.Anything, orderID, []entities.OrderStatus{entities.StatusAssigned}, entities.StatusReady).
						Return(true, nil).Once(),
					store.EXPECT().TransitionAssignment(mock.Anything, "a-1", entities.AssignmentAssigned, entities.AssignmentRejected, entities.RejectedByDriver).
						Return(true, nil).Once(),
				}
			},
			run: func(svc driverActions) error {
				_, err := svc.Reject(context.Background(), driverActor("driver-1"), "a-1")
				return err
			},
		},
		{
			name: "pick up",
			expect: func(store *mocks.MockStore) []*mock.Call {
				return []*mock.Call{
					store.EXPECT().UpdateOrderStatus(mock.Anything, orderID, []entities.OrderStatus{entities.StatusAssigned}, entities.StatusPickedUp).
						Return(true, nil).Once(),
					store.EXPECT().TransitionAssignment(mock.Anything, "a-1", entities.AssignmentAssigned, entities.AssignmentPickedUp, entities.RejectionReason("")).
						Return(true, nil).Once(),
				}
			},
			run: func(svc driverActions) error {
				_, err := svc.MarkPickedUp(context.Background(), driverActor("driver-1"), "a-1", nil)
				return err
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := mocks.NewMockStore(t)
			cache := mocks.NewMockCache(t)
			events := mocks.NewMockNotifier(t)
			tx := txMocks.NewMockManager(t)
			passThrough(tx)

			store.EXPECT().GetAssignment(mock.Anything, "a-1").Return(assigned, nil)
			store.EXPECT().GetOrder(mock.Anything, orderID).Return(newTestOrder(t, orderID, entities.StatusAssigned), nil)
			cache.EXPECT().Delete("order:" + orderID)
			events.EXPECT().Notify(mock.Anything, mock.Anything).Return(nil)
			mock.InOrder(tc.expect(store)...)

			svc := service.NewDispatchService(discardLogger(), tx, store, cache, mocks.NewMockLiveStore(t), events, fees, dispatchCfg)
			require.NoError(t, tc.run(svc))
		})
	}
}

func TestDispatchService_RejectLeavesAssignmentWhenOrderMoved(t *testing.T) {
	store := mocks.NewMockStore(t)
	tx := txMocks.NewMockManager(t)
	passThrough(tx)

	store.EXPECT().GetAssignment(mock.Anything, "a-1").
		Return(entities.Assignment{ID: "a-1", OrderID: orderID, DriverID: "driver-1", Status: entities.AssignmentAssigned}, nil)
	// заказ уже отменён: назначение не трогается
	store.EXPECT().UpdateOrderStatus(mock.Anything, orderID, []entities.OrderStatus{entities.StatusAssigned}, entities.StatusReady).
		Return(false, nil).Once()

	svc := service.NewDispatchService(discardLogger(), tx, store, mocks.NewMockCache(t), mocks.NewMockLiveStore(t),
		mocks.NewMockNotifier(t), fees, dispatchCfg)

	_, err := svc.Reject(context.Background(), driverActor("driver-1"), "a-1")
	assert.ErrorIs(t, err, entities.ErrInvalidTransition)
	store.AssertNotCalled(t, "TransitionAssignment", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDispatchService_ExpireSkipsMovedOrderWithoutWriting(t *testing.T) {
	store := mocks.NewMockStore(t)
	tx := txMocks.NewMockManager(t)
	passThrough(tx)

	stale := []entities.Assignment{
		{ID: "a-1", OrderID: orderID, DriverID: "driver-1", Status: entities.AssignmentAssigned},
		{ID: "a-2", OrderID: otherOrder, DriverID: "driver-2", Status: entities.AssignmentAssigned},
	}
	store.EXPECT().LockStaleAssignments(mock.Anything, mock.Anything, mock.Anything).Return(stale, nil).Once()
	// первый заказ отменили между выборкой и записью
	store.EXPECT().UpdateOrderStatus(mock.Anything, orderID, []entities.OrderStatus{entities.StatusAssigned}, entities.StatusReady).
		Return(false, nil).Once()
	store.EXPECT().UpdateOrderStatus(mock.Anything, otherOrder, []entities.OrderStatus{entities.StatusAssigned}, entities.StatusReady).
		Return(true, nil).Once()
	store.EXPECT().TransitionAssignment(mock.Anything, "a-2", entities.AssignmentAssigned, entities.AssignmentRejected, entities.RejectedOnTimeout).
		Return(true, nil).Once()

	store.EXPECT().GetAssignment(mock.Anything, "a-2").Return(stale[1], nil)
	store.EXPECT().GetOrder(mock.Anything, otherOrder).Return(newTestOrder(t, otherOrder, entities.StatusReady), nil)
	cache := mocks.NewMockCache(t)
	cache.EXPECT().Delete("order:" + otherOrder)
	events := mocks.NewMockNotifier(t)
	events.EXPECT().Notify(mock.Anything, mock.Anything).Return(nil)

	svc := service.NewDispatchService(discardLogger(), tx, store, cache, mocks.NewMockLiveStore(t), events, fees, dispatchCfg)

	n, err := svc.ExpireStaleAssignments(context.Background(), 10*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	store.AssertNotCalled(t, "TransitionAssignment", mock.Anything, "a-1", mock.Anything, mock.Anything, mock.Anything)
}

func TestDispatchService_ExpireRollsBackWhenAssignmentMoved(t *testing.T) {
	store := mocks.NewMockStore(t)
	tx := txMocks.NewMockManager(t)
	passThrough(tx)

	store.EXPECT().LockStaleAssignments(mock.Anything, mock.Anything, mock.Anything).
		Return([]entities.Assignment{{ID: "a-1", OrderID: orderID, DriverID: "driver-1", Status: entities.AssignmentAssigned}}, nil).Once()
	store.EXPECT().UpdateOrderStatus(mock.Anything, orderID, []entities.OrderStatus{entities.StatusAssigned}, entities.StatusReady).
		Return(true, nil).Once()
	store.EXPECT().TransitionAssignment(mock.Anything, "a-1", entities.AssignmentAssigned, entities.AssignmentRejected, entities.RejectedOnTimeout).
		Return(false, nil).Once()

	svc := service.NewDispatchService(discardLogger(), tx, store, mocks.NewMockCache(t), mocks.NewMockLiveStore(t),
		mocks.NewMockNotifier(t), fees, dispatchCfg)

	// откат всей транзакции: заказ не должен вернуться в пул без назначения
	_, err := svc.ExpireStaleAssignments(context.Background(), 10*time.Minute)
	assert.ErrorIs(t, err, entities.ErrInvalidTransition)
}
