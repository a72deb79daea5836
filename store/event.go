package store

// EventKind names the mutation that produced an Event.
type EventKind string

const (
	EventRestaurantSelected  EventKind = "restaurant_selected"
	EventOrderCreated        EventKind = "order_created"
	EventOrderStatusUpdated  EventKind = "order_status_updated"
	EventMenuItemCreated     EventKind = "menu_item_created"
	EventAvailabilityToggled EventKind = "menu_item_availability_toggled"
	EventWasteLogged         EventKind = "waste_logged"
	EventCustomerAdded       EventKind = "customer_added"
)

// Event is published after each mutation. EntityID is the id passed to (or
// carried by) the mutation, even when it matched nothing.
type Event struct {
	Kind     EventKind
	EntityID string
	Snapshot Snapshot
}

// Entity returns the record the mutation touched as it is after the
// mutation, and the id of the restaurant owning it. For a selection event the
// entity is the current restaurant (nil when cleared). ok is false when the
// id matched nothing.
func (ev Event) Entity() (entity interface{}, restaurantID string, ok bool) {
	snap := ev.Snapshot
	switch ev.Kind {
	case EventRestaurantSelected:
		return snap.CurrentRestaurant, snap.CurrentRestaurantID(), true
	case EventOrderCreated, EventOrderStatusUpdated:
		if o, found := snap.Order(ev.EntityID); found {
			return o, o.RestaurantID, true
		}
	case EventMenuItemCreated, EventAvailabilityToggled:
		if m, found := snap.MenuItem(ev.EntityID); found {
			return m, m.RestaurantID, true
		}
	case EventWasteLogged:
		for _, w := range snap.WasteLogs {
			if w.ID == ev.EntityID {
				return w, w.RestaurantID, true
			}
		}
	case EventCustomerAdded:
		for _, c := range snap.Customers {
			if c.ID == ev.EntityID {
				return c, c.RestaurantID, true
			}
		}
	}
	return nil, "", false
}
