package clientstate

import (
	"encoding/json"
	"sync"
)

const currentUserKey = "currentUser"

// CurrentUser is the denormalized account snapshot the UI reads to gate
// seller-only features.
type CurrentUser struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	AccountType string `json:"accountType"`
}

// SessionStore keeps the current user in persistent storage when "remember
// me" is chosen, or in tab-scoped storage otherwise. Reads prefer the
// persistent store.
type SessionStore struct {
	mu         sync.Mutex
	persistent Storage // localStorage analog
	tab        Storage // sessionStorage analog
	broadcast  *broadcaster
}

func NewSessionStore(persistent, tab Storage) *SessionStore {
	return &SessionStore{
		persistent: persistent,
		tab:        tab,
		broadcast:  newBroadcaster(),
	}
}

// Subscribe registers fn to run after every login/logout. The returned
// function unsubscribes.
func (ss *SessionStore) Subscribe(fn func()) func() {
	return ss.broadcast.subscribe(fn)
}

// Login stores the user snapshot in one storage and clears the other, so the
// most recent login wins regardless of the previous remember choice.
func (ss *SessionStore) Login(user CurrentUser, remember bool) {
	content, err := json.Marshal(user)
	if err != nil {
		return
	}

	ss.mu.Lock()
	if remember {
		ss.persistent.Set(currentUserKey, string(content))
		ss.tab.Delete(currentUserKey)
	} else {
		ss.tab.Set(currentUserKey, string(content))
		ss.persistent.Delete(currentUserKey)
	}
	ss.mu.Unlock()

	ss.broadcast.notify()
}

func (ss *SessionStore) Logout() {
	ss.mu.Lock()
	ss.persistent.Delete(currentUserKey)
	ss.tab.Delete(currentUserKey)
	ss.mu.Unlock()

	ss.broadcast.notify()
}

// Current returns the logged-in user, or nil when logged out or when the
// stored snapshot is malformed.
func (ss *SessionStore) Current() *CurrentUser {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	raw, ok := ss.persistent.Get(currentUserKey)
	if !ok {
		raw, ok = ss.tab.Get(currentUserKey)
	}
	if !ok || raw == "" {
		return nil
	}

	var user CurrentUser
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil
	}

	return &user
}
