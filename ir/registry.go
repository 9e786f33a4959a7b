package ir

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// Registry is the decoded, queryable form of one persisted IR stream.
// A Registry is immutable after construction and safe for concurrent
// read-only use by multiple otf.Decode calls.
type Registry struct {
	frame    Frame
	header   []Token
	messages [][]Token

	byTemplate map[int][]int // templateID -> indices into messages, in file order
}

func newRegistry(frame Frame, header []Token, messages [][]Token) *Registry {
	byTemplate := make(map[int][]int, len(messages))
	for i, tokens := range messages {
		if len(tokens) == 0 {
			continue
		}
		id := tokens[0].FieldID
		byTemplate[id] = append(byTemplate[id], i)
	}

	return &Registry{frame: frame, header: header, messages: messages, byTemplate: byTemplate}
}

// Frame returns the decoded FrameCodec header (package/namespace/schema metadata).
func (r *Registry) Frame() Frame { return r.frame }

// Header returns the header composite's own token stream (terminated by its
// END_COMPOSITE token), shared by every message in this registry.
func (r *Registry) Header() []Token { return r.header }

// Messages returns every decoded message's token stream, in file order.
func (r *Registry) Messages() [][]Token { return r.messages }

// Message returns the token stream for templateID, preferring the
// highest-versioned encoding if the schema declares more than one version of
// the same template.
func (r *Registry) Message(templateID int) ([]Token, bool) {
	indices, ok := r.byTemplate[templateID]
	if !ok || len(indices) == 0 {
		return nil, false
	}

	best := indices[0]
	for _, idx := range indices[1:] {
		if r.messages[idx][0].Version > r.messages[best][0].Version {
			best = idx
		}
	}

	return r.messages[best], true
}

// MessageVersion returns the token stream for the exact (templateID, version)
// pair.
func (r *Registry) MessageVersion(templateID, version int) ([]Token, bool) {
	for _, idx := range r.byTemplate[templateID] {
		if r.messages[idx][0].Version == version {
			return r.messages[idx], true
		}
	}

	return nil, false
}

// registryCache collapses concurrent first-loads of the same IR file path
// into a single decode. The synchronisation it provides is for the load
// itself; the resulting Registry is immutable and needs none.
type registryCache struct {
	group singleflight.Group
	mu    sync.RWMutex
	byKey map[string]*Registry
}

func newRegistryCache() *registryCache {
	return &registryCache{byKey: make(map[string]*Registry)}
}

// loadOnce returns the cached Registry for key, calling decode at most once
// even under concurrent callers racing on the same key.
func (c *registryCache) loadOnce(key string, decode func() (*Registry, error)) (*Registry, error) {
	c.mu.RLock()
	if reg, ok := c.byKey[key]; ok {
		c.mu.RUnlock()

		return reg, nil
	}
	c.mu.RUnlock()

	v, err, _ := c.group.Do(key, func() (any, error) {
		c.mu.RLock()
		if reg, ok := c.byKey[key]; ok {
			c.mu.RUnlock()

			return reg, nil
		}
		c.mu.RUnlock()

		reg, err := decode()
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.byKey[key] = reg
		c.mu.Unlock()

		return reg, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*Registry), nil //nolint:forcetypeassert
}

// defaultCache is the process-wide cache LoadFile uses to collapse concurrent
// first-loads of the same path.
var defaultCache = newRegistryCache()
