// Package store holds the dashboard's in-memory domain state and the fixed set
// of mutations allowed on it. Every mutation is total: unknown ids are silently
// ignored, and every call is followed by a synchronous notification to all
// subscribers.
package store

import (
	"errors"
	"sync"

	"github.com/yeremiapane/restaurant-dashboard/models"
)

// ErrOrderNotFound is returned by TransitionOrder when no order has the id.
var ErrOrderNotFound = errors.New("order not found")

// Listener is called synchronously after a mutation. It may read the store
// but must not mutate it.
type Listener func(Event)

type Store struct {
	// writeMu serializes a mutation together with its notifications so that
	// listeners observe events in mutation order.
	writeMu sync.Mutex

	mu          sync.RWMutex
	restaurants []models.Restaurant
	categories  []models.Category
	menuItems   []models.MenuItem
	orders      []models.Order
	wasteLogs   []models.WasteLog
	customers   []models.Customer
	currentID   string

	subMu     sync.Mutex
	listeners []subscription
	nextSub   int
}

type subscription struct {
	id int
	fn Listener
}

// New builds a store from seed. The seed is copied; nothing is selected.
func New(seed Seed) *Store {
	s := &Store{}
	s.restaurants = append([]models.Restaurant{}, seed.Restaurants...)
	s.categories = append([]models.Category{}, seed.Categories...)
	s.menuItems = append([]models.MenuItem{}, seed.MenuItems...)
	s.orders = cloneOrders(seed.Orders)
	s.wasteLogs = append([]models.WasteLog{}, seed.WasteLogs...)
	s.customers = append([]models.Customer{}, seed.Customers...)
	return s
}

// Subscribe registers fn and returns a function that removes it.
func (s *Store) Subscribe(fn Listener) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.listeners = append(s.listeners, subscription{id: id, fn: fn})

	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		for i, sub := range s.listeners {
			if sub.id == id {
				s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// SelectRestaurant sets the current restaurant, or clears the selection when
// id matches no restaurant (including "").
func (s *Store) SelectRestaurant(id string) {
	s.mutate(EventRestaurantSelected, id, func() {
		s.currentID = ""
		for _, r := range s.restaurants {
			if r.ID == id {
				s.currentID = r.ID
				return
			}
		}
	})
}

// AddOrder prepends order so that orders stay newest first.
func (s *Store) AddOrder(order models.Order) {
	s.mutate(EventOrderCreated, order.ID, func() {
		s.orders = append([]models.Order{order.Clone()}, s.orders...)
	})
}

// UpdateOrderStatus replaces the status of the matching order. Transition
// legality is the caller's concern.
func (s *Store) UpdateOrderStatus(id string, status models.OrderStatus) {
	s.mutate(EventOrderStatusUpdated, id, func() {
		for i := range s.orders {
			if s.orders[i].ID == id {
				s.orders[i].Status = status
				return
			}
		}
	})
}

// TransitionOrder runs check against the order and, when it passes, sets its
// status to next. Both happen under the write lock, so no other mutation can
// slip in between. A failed check changes nothing and publishes no event.
// check must not call back into the store.
func (s *Store) TransitionOrder(id string, next models.OrderStatus, check func(models.Order) error) (models.Order, error) {
	var updated models.Order
	err := s.mutateChecked(EventOrderStatusUpdated, func() (string, error) {
		for i := range s.orders {
			if s.orders[i].ID != id {
				continue
			}
			if err := check(s.orders[i].Clone()); err != nil {
				return "", err
			}
			s.orders[i].Status = next
			updated = s.orders[i].Clone()
			return id, nil
		}
		return "", ErrOrderNotFound
	})
	return updated, err
}

// PlaceOrder builds an order from the state at the moment of insertion and
// prepends it. An error from build adds nothing and publishes no event.
// build must not call back into the store.
func (s *Store) PlaceOrder(build func(Snapshot) (models.Order, error)) (models.Order, error) {
	var placed models.Order
	err := s.mutateChecked(EventOrderCreated, func() (string, error) {
		order, err := build(s.snapshotLocked())
		if err != nil {
			return "", err
		}
		placed = order.Clone()
		s.orders = append([]models.Order{order.Clone()}, s.orders...)
		return order.ID, nil
	})
	return placed, err
}

// AddMenuItem appends item in insertion order.
func (s *Store) AddMenuItem(item models.MenuItem) {
	s.mutate(EventMenuItemCreated, item.ID, func() {
		s.menuItems = append(s.menuItems, item)
	})
}

func (s *Store) ToggleItemAvailability(id string) {
	s.mutate(EventAvailabilityToggled, id, func() {
		for i := range s.menuItems {
			if s.menuItems[i].ID == id {
				s.menuItems[i].IsAvailable = !s.menuItems[i].IsAvailable
				return
			}
		}
	})
}

func (s *Store) AddWasteLog(log models.WasteLog) {
	s.mutate(EventWasteLogged, log.ID, func() {
		s.wasteLogs = append([]models.WasteLog{log}, s.wasteLogs...)
	})
}

func (s *Store) AddCustomer(customer models.Customer) {
	s.mutate(EventCustomerAdded, customer.ID, func() {
		s.customers = append([]models.Customer{customer}, s.customers...)
	})
}

func (s *Store) mutate(kind EventKind, entityID string, apply func()) {
	_ = s.mutateChecked(kind, func() (string, error) {
		apply()
		return entityID, nil
	})
}

// mutateChecked applies a mutation that may refuse. On refusal the state is
// untouched and listeners are not called.
func (s *Store) mutateChecked(kind EventKind, apply func() (string, error)) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	entityID, err := apply()
	if err != nil {
		s.mu.Unlock()
		return err
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(Event{Kind: kind, EntityID: entityID, Snapshot: snap})
	return nil
}

func (s *Store) notify(ev Event) {
	s.subMu.Lock()
	subs := s.listeners
	s.subMu.Unlock()

	// subscription order
	for _, sub := range subs {
		sub.fn(ev)
	}
}

func cloneOrders(orders []models.Order) []models.Order {
	out := make([]models.Order, len(orders))
	for i, o := range orders {
		out[i] = o.Clone()
	}
	return out
}
