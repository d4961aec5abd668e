package cart

import (
	"sync"
)

// Snapshot is an immutable view of one user's cart state.
type Snapshot struct {
	Items            []LineItem `json:"items"`
	Promo            *Promo     `json:"promo,omitempty"`
	ShippingOverride *float64   `json:"-"`
}

// Store is the shared mutable cart for one user: a state container whose
// only mutation paths are the typed action methods below. Subscribers see
// every change; the optimistic insert of the submission pipeline is
// published before the durable write even starts.
//
// Writes are last-write-wins at line-item granularity, keyed by line-item
// id: submitting the same bundle twice yields two distinct items.
type Store struct {
	mu               sync.RWMutex
	items            []LineItem
	promo            *Promo
	shippingOverride *float64

	subMu   sync.Mutex
	nextSub int
	subs    map[int]func(Snapshot)

	// persist, when set, receives every post-mutation snapshot. Shipping
	// overrides are session-scoped and deliberately not persisted.
	persist func(Snapshot)
}

func NewStore() *Store {
	return &Store{subs: make(map[int]func(Snapshot))}
}

// Subscribe registers fn for every state change and returns an unsubscribe
// func.
func (s *Store) Subscribe(fn func(Snapshot)) func() {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	items := make([]LineItem, len(s.items))
	copy(items, s.items)

	snap := Snapshot{Items: items}
	if s.promo != nil {
		p := *s.promo
		snap.Promo = &p
	}
	if s.shippingOverride != nil {
		v := *s.shippingOverride
		snap.ShippingOverride = &v
	}
	return snap
}

func (s *Store) publish(snap Snapshot) {
	if s.persist != nil {
		s.persist(snap)
	}

	s.subMu.Lock()
	fns := make([]func(Snapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}

// AppendLineItem adds item to the cart. Items are never merged.
func (s *Store) AppendLineItem(item LineItem) {
	s.mu.Lock()
	s.items = append(s.items, item)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.publish(snap)
}

// RemoveLineItem deletes the item with the given id.
func (s *Store) RemoveLineItem(itemID string) bool {
	s.mu.Lock()
	found := false
	kept := s.items[:0]
	for _, item := range s.items {
		if item.ID == itemID {
			found = true
			continue
		}
		kept = append(kept, item)
	}
	s.items = kept
	s.clearPromoIfEmptyLocked()
	snap := s.snapshotLocked()
	s.mu.Unlock()

	if found {
		s.publish(snap)
	}
	return found
}

// SetQuantity updates the quantity of one line item.
func (s *Store) SetQuantity(itemID string, qty int32) bool {
	s.mu.Lock()
	found := false
	for i := range s.items {
		if s.items[i].ID == itemID {
			s.items[i].Quantity = qty
			found = true
			break
		}
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()

	if found {
		s.publish(snap)
	}
	return found
}

// Clear empties the cart and drops the promo with it.
func (s *Store) Clear() {
	s.mu.Lock()
	s.items = nil
	s.promo = nil
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.publish(snap)
}

func (s *Store) SetPromo(p Promo) {
	s.mu.Lock()
	s.promo = &p
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.publish(snap)
}

func (s *Store) ClearPromo() {
	s.mu.Lock()
	s.promo = nil
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.publish(snap)
}

// SetShippingOverride pins the shipping cost chosen on a prior page; nil
// restores threshold-based shipping.
func (s *Store) SetShippingOverride(cost *float64) {
	s.mu.Lock()
	s.shippingOverride = cost
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.publish(snap)
}

// Promo cannot outlive the cart contents.
func (s *Store) clearPromoIfEmptyLocked() {
	if len(s.items) == 0 {
		s.promo = nil
	}
}

// restore seeds the store from persisted state without notifying.
func (s *Store) restore(snap Snapshot) {
	s.mu.Lock()
	s.items = snap.Items
	s.promo = snap.Promo
	s.mu.Unlock()
}
