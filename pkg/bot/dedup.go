package bot

import (
	"strings"
	"sync"
	"time"
)

const (
	// signatureWindow suppresses identical messages replayed in bursts.
	signatureWindow = 2 * time.Second
	// maxRememberedIDs caps the processed message-id ring.
	maxRememberedIDs = 5000
)

// dedup is the per-bot message deduplicator: a short-window signature set
// for replay storms plus a bounded ring of processed message ids.
type dedup struct {
	mu         sync.Mutex
	signatures map[string]time.Time
	ids        map[string]struct{}
	idOrder    []string
}

func newDedup() *dedup {
	return &dedup{
		signatures: make(map[string]time.Time),
		ids:        make(map[string]struct{}),
	}
}

// Seen reports whether the message was already handled and records it.
func (d *dedup) Seen(chatID, author, text, messageID string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := time.Now()

	if messageID != "" {
		if _, dup := d.ids[messageID]; dup {
			return true
		}
		d.ids[messageID] = struct{}{}
		d.idOrder = append(d.idOrder, messageID)
		if len(d.idOrder) > maxRememberedIDs {
			delete(d.ids, d.idOrder[0])
			d.idOrder = d.idOrder[1:]
		}
	}

	sig := chatID + "\x00" + author + "\x00" + strings.ToLower(text)
	if at, ok := d.signatures[sig]; ok && now.Sub(at) < signatureWindow {
		return true
	}
	d.signatures[sig] = now

	// Opportunistic sweep of stale signatures.
	if len(d.signatures) > 256 {
		for k, at := range d.signatures {
			if now.Sub(at) >= signatureWindow {
				delete(d.signatures, k)
			}
		}
	}
	return false
}

// expiringSet is a tiny TTL map used for pending commands, extension hints
// and one-shot reminders.
type expiringSet struct {
	mu    sync.Mutex
	ttl   time.Duration
	items map[string]entryAt
}

type entryAt struct {
	value string
	at    time.Time
}

func newExpiringSet(ttl time.Duration) *expiringSet {
	return &expiringSet{ttl: ttl, items: make(map[string]entryAt)}
}

func (s *expiringSet) Put(key, value string) {
	s.mu.Lock()
	s.items[key] = entryAt{value: value, at: time.Now()}
	s.mu.Unlock()
}

func (s *expiringSet) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.items[key]
	if !ok {
		return "", false
	}
	if time.Since(e.at) > s.ttl {
		delete(s.items, key)
		return "", false
	}
	return e.value, true
}

func (s *expiringSet) Take(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.items[key]
	if !ok {
		return "", false
	}
	delete(s.items, key)
	if time.Since(e.at) > s.ttl {
		return "", false
	}
	return e.value, true
}

func (s *expiringSet) Delete(key string) {
	s.mu.Lock()
	delete(s.items, key)
	s.mu.Unlock()
}
