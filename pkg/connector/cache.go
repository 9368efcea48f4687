// Copyright 2024-2026 Aiku AI

package connector

import (
	"slices"
	"sync"

	"maunium.net/go/mautrix/bridgev2/networkid"

	"github.com/aiku/chatmarkup/pkg/chatmarkup"
)

type cachedParse struct {
	source string
	doc    *chatmarkup.Document
}

// parseCache memoizes parsed documents per message. Entries are evicted in
// insertion order once maxEntries is reached. Zero disables the cache.
type parseCache struct {
	mu         sync.Mutex
	maxEntries int
	entries    map[networkid.MessageID]cachedParse
	order      []networkid.MessageID
}

func newParseCache(maxEntries int) *parseCache {
	return &parseCache{
		maxEntries: maxEntries,
		entries:    make(map[networkid.MessageID]cachedParse),
	}
}

// get returns the cached document for id if it was parsed from source.
func (pc *parseCache) get(id networkid.MessageID, source string) (*chatmarkup.Document, bool) {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	entry, ok := pc.entries[id]
	if !ok || entry.source != source {
		return nil, false
	}
	return entry.doc, true
}

func (pc *parseCache) put(id networkid.MessageID, source string, doc *chatmarkup.Document) {
	if pc.maxEntries <= 0 || id == "" {
		return
	}
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if _, ok := pc.entries[id]; !ok {
		for len(pc.order) >= pc.maxEntries {
			delete(pc.entries, pc.order[0])
			pc.order = pc.order[1:]
		}
		pc.order = append(pc.order, id)
	}
	pc.entries[id] = cachedParse{source: source, doc: doc}
}

func (pc *parseCache) remove(id networkid.MessageID) bool {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if _, ok := pc.entries[id]; !ok {
		return false
	}
	delete(pc.entries, id)
	pc.order = slices.DeleteFunc(pc.order, func(other networkid.MessageID) bool {
		return other == id
	})
	return true
}

func (pc *parseCache) len() int {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	return len(pc.entries)
}
