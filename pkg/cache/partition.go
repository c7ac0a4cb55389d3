package cache

import (
	"context"
	"time"
)

// Partition is a named, typed view over a shared [Store].
// Keys are transparently prefixed with the partition name, so two
// partitions can store the same raw identifier without colliding.
// Each partition binds one payload type T; the type system, not the
// caller, guarantees a Get returns what Set stored.
type Partition[T any] struct {
	store  *Store
	name   string
	prefix string
	ttl    time.Duration
}

// NewPartition creates a typed partition over store with the given name
// and default TTL. The name doubles as the key prefix ("name:") and as
// the partition label in cache hook events.
func NewPartition[T any](store *Store, name string, defaultTTL time.Duration) *Partition[T] {
	return &Partition[T]{
		store:  store,
		name:   name,
		prefix: name + ":",
		ttl:    defaultTTL,
	}
}

// Name returns the partition name.
func (p *Partition[T]) Name() string { return p.name }

// DefaultTTL returns the partition's default TTL.
func (p *Partition[T]) DefaultTTL() time.Duration { return p.ttl }

// Set stores value under key with the partition's default TTL.
// Set never fails: values the store cannot serialize or fit are dropped.
func (p *Partition[T]) Set(ctx context.Context, key string, value T) {
	p.store.set(ctx, p.name, p.prefix+key, value, p.ttl)
}

// SetWithTTL stores value under key with an explicit TTL, overriding the
// partition default. Non-positive TTLs fall back to the default.
func (p *Partition[T]) SetWithTTL(ctx context.Context, key string, value T, ttl time.Duration) {
	if ttl <= 0 {
		ttl = p.ttl
	}
	p.store.set(ctx, p.name, p.prefix+key, value, ttl)
}

// Get returns the value stored under key, if present and unexpired.
func (p *Partition[T]) Get(ctx context.Context, key string) (T, bool) {
	var zero T
	raw, ok := p.store.get(ctx, p.name, p.prefix+key)
	if !ok {
		return zero, false
	}
	v, ok := raw.(T)
	if !ok {
		// A foreign payload under our prefix means a programming error
		// somewhere; treat it as a miss rather than corrupting the caller.
		return zero, false
	}
	return v, true
}

// Has reports whether key is present and unexpired, without returning
// the value.
func (p *Partition[T]) Has(ctx context.Context, key string) bool {
	_, ok := p.store.get(ctx, p.name, p.prefix+key)
	return ok
}

// Delete removes key and reports whether an entry was removed.
func (p *Partition[T]) Delete(key string) bool {
	return p.store.delete(p.prefix + key)
}

// Clear removes all entries in this partition, leaving other partitions
// on the same store untouched.
func (p *Partition[T]) Clear() {
	p.store.clearPrefix(p.prefix)
}

// Stats reports entry count and estimated footprint for this partition.
func (p *Partition[T]) Stats() Stats {
	return p.store.statsPrefix(p.prefix)
}
