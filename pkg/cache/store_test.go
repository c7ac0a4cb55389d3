package cache

import (
	"context"
	"testing"
	"time"
)

func newTestStore(t *testing.T, maxSize int64) *Store {
	t.Helper()
	s, err := New(Config{MaxSizeBytes: maxSize})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return s
}

func TestNew_InvalidConfig(t *testing.T) {
	if _, err := New(Config{MaxSizeBytes: -1}); err == nil {
		t.Fatal("negative budget should be rejected")
	}
}

func TestNew_Defaults(t *testing.T) {
	s := newTestStore(t, 0)
	if s.MaxSizeBytes() != DefaultMaxSizeBytes {
		t.Errorf("got budget %d, want %d", s.MaxSizeBytes(), DefaultMaxSizeBytes)
	}
}

func TestSetGet(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, 0)
	p := NewPartition[string](s, "test", time.Hour)

	p.Set(ctx, "key", "value")

	got, ok := p.Get(ctx, "key")
	if !ok {
		t.Fatal("Get() missed immediately after Set()")
	}
	if got != "value" {
		t.Errorf("got %q, want %q", got, "value")
	}
	if !p.Has(ctx, "key") {
		t.Error("Has() should report the key")
	}
}

func TestGet_Miss(t *testing.T) {
	ctx := context.Background()
	p := NewPartition[string](newTestStore(t, 0), "test", time.Hour)

	if _, ok := p.Get(ctx, "missing"); ok {
		t.Error("Get() should miss for an absent key")
	}
	if p.Has(ctx, "missing") {
		t.Error("Has() should be false for an absent key")
	}
}

func TestExpiry_Lazy(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, 0)
	p := NewPartition[string](s, "test", 10*time.Millisecond)

	p.Set(ctx, "key", "value")
	time.Sleep(20 * time.Millisecond)

	if _, ok := p.Get(ctx, "key"); ok {
		t.Error("Get() should miss after TTL elapsed")
	}
	if p.Has(ctx, "key") {
		t.Error("Has() should be false after TTL elapsed")
	}
	// The expired entry was purged as a side effect of the read.
	if st := s.Stats(); st.Size != 0 {
		t.Errorf("expired entry should be removed, stats: %+v", st)
	}
}

func TestSetWithTTL_Override(t *testing.T) {
	ctx := context.Background()
	p := NewPartition[string](newTestStore(t, 0), "test", 10*time.Millisecond)

	p.SetWithTTL(ctx, "long", "value", time.Hour)
	time.Sleep(20 * time.Millisecond)

	if _, ok := p.Get(ctx, "long"); !ok {
		t.Error("entry with overridden TTL should survive the partition default")
	}
}

func TestSweepOnWrite(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, 0)
	short := NewPartition[string](s, "short", 10*time.Millisecond)
	long := NewPartition[string](s, "long", time.Hour)

	short.Set(ctx, "a", "value")
	short.Set(ctx, "b", "value")
	time.Sleep(20 * time.Millisecond)

	// The next write sweeps expired entries from the whole store.
	long.Set(ctx, "c", "value")

	if st := s.Stats(); st.Size != 1 {
		t.Errorf("got %d live entries, want 1 after sweep", st.Size)
	}
}

func TestEviction_OldestInsertedFirst(t *testing.T) {
	ctx := context.Background()
	// Each "0123456789" string serializes to 12 bytes, estimated cost 24.
	// Budget 60 holds two entries; a third forces eviction of the oldest.
	s := newTestStore(t, 60)
	p := NewPartition[string](s, "t", time.Hour)

	p.Set(ctx, "first", "0123456789")
	time.Sleep(time.Millisecond)
	p.Set(ctx, "second", "0123456789")
	time.Sleep(time.Millisecond)

	// Read the oldest entry: recency of use must NOT save it.
	p.Get(ctx, "first")

	p.Set(ctx, "third", "0123456789")

	if _, ok := p.Get(ctx, "first"); ok {
		t.Error("oldest-inserted entry should have been evicted")
	}
	if _, ok := p.Get(ctx, "second"); !ok {
		t.Error("second entry should survive")
	}
	if _, ok := p.Get(ctx, "third"); !ok {
		t.Error("newly inserted entry should be present")
	}
	if st := s.Stats(); st.EstimatedMemoryUsage > 60 {
		t.Errorf("footprint %d exceeds budget", st.EstimatedMemoryUsage)
	}
}

func TestEviction_CascadesUntilFit(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, 60)
	p := NewPartition[string](s, "t", time.Hour)

	p.Set(ctx, "a", "0123456789")
	time.Sleep(time.Millisecond)
	p.Set(ctx, "b", "0123456789")
	time.Sleep(time.Millisecond)

	// 22-char string: 24 serialized bytes, estimated 48. Evicts both.
	p.Set(ctx, "big", "0123456789012345678901")

	if _, ok := p.Get(ctx, "a"); ok {
		t.Error("entry a should be evicted")
	}
	if _, ok := p.Get(ctx, "b"); ok {
		t.Error("entry b should be evicted")
	}
	if _, ok := p.Get(ctx, "big"); !ok {
		t.Error("big entry should be stored after cascade")
	}
}

func TestSet_RejectsOversizedValue(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, 20)
	p := NewPartition[string](s, "t", time.Hour)

	p.Set(ctx, "small", "ok")
	// 30-char string: far over the 20-byte budget. Rejected outright,
	// existing entries are not evicted to make room.
	p.Set(ctx, "huge", "012345678901234567890123456789")

	if p.Has(ctx, "huge") {
		t.Error("oversized value should never be stored")
	}
	if !p.Has(ctx, "small") {
		t.Error("rejected write should not disturb existing entries")
	}
}

func TestSet_SkipsUnserializableValue(t *testing.T) {
	ctx := context.Background()
	p := NewPartition[any](newTestStore(t, 0), "t", time.Hour)

	p.Set(ctx, "chan", make(chan int)) // json.Marshal cannot encode channels

	if p.Has(ctx, "chan") {
		t.Error("unserializable value should be silently dropped")
	}
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	p := NewPartition[string](newTestStore(t, 0), "t", time.Hour)

	p.Set(ctx, "key", "value")
	if !p.Delete("key") {
		t.Error("Delete should report removal of an existing entry")
	}
	if p.Delete("key") {
		t.Error("Delete should report false for an absent entry")
	}
	if p.Has(ctx, "key") {
		t.Error("deleted entry should be gone")
	}
}

func TestClear_Stats(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, 0)
	p := NewPartition[string](s, "t", time.Hour)

	p.Set(ctx, "a", "value")
	p.Set(ctx, "b", "value")

	st := p.Stats()
	if st.Size != 2 || st.EstimatedMemoryUsage == 0 {
		t.Errorf("unexpected stats before clear: %+v", st)
	}

	p.Clear()

	st = p.Stats()
	if st.Size != 0 || st.EstimatedMemoryUsage != 0 {
		t.Errorf("stats after clear should be zero, got %+v", st)
	}
}

func TestPartitionIsolation(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, 0)
	meta := NewPartition[string](s, "metadata", time.Hour)
	readme := NewPartition[string](s, "readme", time.Hour)

	// Same raw identifier in both partitions.
	meta.Set(ctx, "apple/swift-nio", "meta-payload")
	readme.Set(ctx, "apple/swift-nio", "readme-payload")

	if v, _ := meta.Get(ctx, "apple/swift-nio"); v != "meta-payload" {
		t.Errorf("metadata partition returned %q", v)
	}
	if v, _ := readme.Get(ctx, "apple/swift-nio"); v != "readme-payload" {
		t.Errorf("readme partition returned %q", v)
	}

	// Clearing one partition leaves the other intact.
	meta.Clear()
	if meta.Has(ctx, "apple/swift-nio") {
		t.Error("metadata entry should be cleared")
	}
	if !readme.Has(ctx, "apple/swift-nio") {
		t.Error("readme entry should survive a foreign Clear")
	}
}

func TestStoreClear_AllPartitions(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, 0)
	a := NewPartition[string](s, "a", time.Hour)
	b := NewPartition[string](s, "b", time.Hour)

	a.Set(ctx, "k", "v")
	b.Set(ctx, "k", "v")
	s.Clear()

	if st := s.Stats(); st.Size != 0 {
		t.Errorf("store Clear should drop everything, got %+v", st)
	}
}

func TestBudgetSharedAcrossPartitions(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, 60)
	a := NewPartition[string](s, "a", time.Hour)
	b := NewPartition[string](s, "b", time.Hour)

	a.Set(ctx, "k1", "0123456789")
	time.Sleep(time.Millisecond)
	b.Set(ctx, "k2", "0123456789")
	time.Sleep(time.Millisecond)
	b.Set(ctx, "k3", "0123456789")

	// The oldest entry across the whole store is evicted, regardless of
	// which partition owns it.
	if a.Has(ctx, "k1") {
		t.Error("budget is global: oldest entry in partition a should be evicted")
	}
	if st := s.Stats(); st.EstimatedMemoryUsage > 60 {
		t.Errorf("combined footprint %d exceeds shared budget", st.EstimatedMemoryUsage)
	}
}
