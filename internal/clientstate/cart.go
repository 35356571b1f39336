package clientstate

import (
	"encoding/json"
	"sync"
)

const cartKey = "cartItems"

// CartItem is a client-only snapshot of a product in the cart. Quantity is
// always a positive integer.
type CartItem struct {
	ProductID int64   `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	ImageURL  string  `json:"imageUrl,omitempty"`
	Quantity  int     `json:"quantity"`
}

// CartStore keeps the cart as one JSON snapshot in storage. Every mutation
// reads, modifies, and rewrites the whole snapshot, then notifies
// subscribers.
type CartStore struct {
	mu        sync.Mutex
	storage   Storage
	broadcast *broadcaster
}

func NewCartStore(storage Storage) *CartStore {
	return &CartStore{
		storage:   storage,
		broadcast: newBroadcaster(),
	}
}

// Subscribe registers fn to run after every cart change. The returned
// function unsubscribes.
func (cs *CartStore) Subscribe(fn func()) func() {
	return cs.broadcast.subscribe(fn)
}

// Items returns the current cart. A malformed or missing snapshot reads as
// an empty cart; items with non-positive quantity are dropped.
func (cs *CartStore) Items() []CartItem {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.read()
}

// Add merges quantity into an existing line for the same product, or appends
// a new one. A non-positive quantity adds a single unit.
func (cs *CartStore) Add(item CartItem) {
	if item.Quantity <= 0 {
		item.Quantity = 1
	}

	cs.mu.Lock()
	items := cs.read()

	merged := false
	for i := range items {
		if items[i].ProductID == item.ProductID {
			items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, item)
	}

	cs.write(items)
	cs.mu.Unlock()

	cs.broadcast.notify()
}

// UpdateQuantity replaces the line's quantity. Zero or negative removes the
// item instead of storing a non-positive value.
func (cs *CartStore) UpdateQuantity(productID int64, quantity int) {
	cs.mu.Lock()
	items := cs.read()

	if quantity <= 0 {
		items = removeItem(items, productID)
	} else {
		for i := range items {
			if items[i].ProductID == productID {
				items[i].Quantity = quantity
				break
			}
		}
	}

	cs.write(items)
	cs.mu.Unlock()

	cs.broadcast.notify()
}

func (cs *CartStore) Remove(productID int64) {
	cs.mu.Lock()
	cs.write(removeItem(cs.read(), productID))
	cs.mu.Unlock()

	cs.broadcast.notify()
}

func (cs *CartStore) Clear() {
	cs.mu.Lock()
	cs.write([]CartItem{})
	cs.mu.Unlock()

	cs.broadcast.notify()
}

func (cs *CartStore) read() []CartItem {
	raw, ok := cs.storage.Get(cartKey)
	if !ok || raw == "" {
		return []CartItem{}
	}

	var parsed []CartItem
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return []CartItem{}
	}

	items := make([]CartItem, 0, len(parsed))
	for _, item := range parsed {
		if item.Quantity > 0 {
			items = append(items, item)
		}
	}
	return items
}

func (cs *CartStore) write(items []CartItem) {
	content, err := json.Marshal(items)
	if err != nil {
		return
	}
	cs.storage.Set(cartKey, string(content))
}

func removeItem(items []CartItem, productID int64) []CartItem {
	filtered := make([]CartItem, 0, len(items))
	for _, item := range items {
		if item.ProductID != productID {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
