package query

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestKeys(t *testing.T) {
	cases := map[Key]Key{
		AccountList(0):              "account/list",
		AccountList(2021001):        "account/list/2021001",
		AdminPendingList():          "admin/pending-list",
		AdminPendingDetail(7):       "admin/pending-detail/7",
		AdminStatistics():           "admin/statistics",
		AnnouncementReviewList():    "announcement/review-list",
		FeedbackDetail(3):           "feedback/detail/3",
		PostList("campus=ZHAO_HUI"): "post/list/campus=ZHAO_HUI",
		SystemConfig():              "system/config",
	}
	for got, want := range cases {
		if got != want {
			t.Errorf("key = %q, want %q", got, want)
		}
	}
}

func TestCache_FreshHitSkipsFetch(t *testing.T) {
	c := NewCache(0, 0)
	calls := 0
	fetch := func(ctx context.Context) (any, error) {
		calls++
		return calls, nil
	}

	v1, err := c.Get(context.Background(), SystemConfig(), fetch)
	if err != nil || v1 != 1 {
		t.Fatalf("got (%v, %v)", v1, err)
	}
	v2, err := c.Get(context.Background(), SystemConfig(), fetch)
	if err != nil || v2 != 1 {
		t.Errorf("fresh entry should hit cache, got (%v, %v)", v2, err)
	}
	if calls != 1 {
		t.Errorf("fetch ran %d times, want 1", calls)
	}
}

func TestCache_StaleEntryRefetches(t *testing.T) {
	c := NewCache(30*time.Second, 5*time.Minute)
	current := time.Now()
	c.now = func() time.Time { return current }

	calls := 0
	fetch := func(ctx context.Context) (any, error) {
		calls++
		return calls, nil
	}

	_, _ = c.Get(context.Background(), AdminPendingList(), fetch)
	current = current.Add(31 * time.Second)
	v, _ := c.Get(context.Background(), AdminPendingList(), fetch)
	if v != 2 || calls != 2 {
		t.Errorf("stale entry should refetch, got v=%v calls=%d", v, calls)
	}
}

func TestCache_FailureNotCached(t *testing.T) {
	c := NewCache(0, 0)
	calls := 0
	fetch := func(ctx context.Context) (any, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("boom")
		}
		return "ok", nil
	}

	if _, err := c.Get(context.Background(), FeedbackList(), fetch); err == nil {
		t.Fatal("expected error")
	}
	v, err := c.Get(context.Background(), FeedbackList(), fetch)
	if err != nil || v != "ok" {
		t.Errorf("got (%v, %v)", v, err)
	}
}

func TestCache_InvalidateForcesRefetch(t *testing.T) {
	c := NewCache(0, 0)
	calls := 0
	fetch := func(ctx context.Context) (any, error) {
		calls++
		return calls, nil
	}

	_, _ = c.Get(context.Background(), AccountList(0), fetch)
	c.Invalidate(AccountList(0))
	v, _ := c.Get(context.Background(), AccountList(0), fetch)
	if v != 2 {
		t.Errorf("invalidated entry should refetch, got %v", v)
	}
}

func TestCache_InvalidatePrefix(t *testing.T) {
	c := NewCache(0, 0)
	fetch := func(ctx context.Context) (any, error) { return "v", nil }
	_, _ = c.Get(context.Background(), AccountList(0), fetch)
	_, _ = c.Get(context.Background(), AccountList(7), fetch)
	_, _ = c.Get(context.Background(), SystemConfig(), fetch)

	c.InvalidatePrefix("account/")

	calls := 0
	refetch := func(ctx context.Context) (any, error) {
		calls++
		return "v2", nil
	}
	_, _ = c.Get(context.Background(), AccountList(0), refetch)
	_, _ = c.Get(context.Background(), AccountList(7), refetch)
	_, _ = c.Get(context.Background(), SystemConfig(), refetch)
	if calls != 2 {
		t.Errorf("expected 2 refetches after prefix invalidation, got %d", calls)
	}
}

func TestCache_ConcurrentGetsDeduplicate(t *testing.T) {
	c := NewCache(0, 0)
	var calls atomic.Int64
	release := make(chan struct{})
	fetch := func(ctx context.Context) (any, error) {
		calls.Add(1)
		<-release
		return "v", nil
	}

	const workers = 8
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := c.Get(context.Background(), AdminStatistics(), fetch)
			if err != nil || v != "v" {
				t.Errorf("got (%v, %v)", v, err)
			}
		}()
	}
	// 让所有 goroutine 都进到取数路径后再放行
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	if calls.Load() != 1 {
		t.Errorf("fetch ran %d times, want 1 (deduplicated)", calls.Load())
	}
}

func TestCache_GCEvictsExpired(t *testing.T) {
	c := NewCache(30*time.Second, 5*time.Minute)
	current := time.Now()
	c.now = func() time.Time { return current }

	fetch := func(ctx context.Context) (any, error) { return "v", nil }
	_, _ = c.Get(context.Background(), SystemConfig(), fetch)

	current = current.Add(6 * time.Minute)
	c.mu.Lock()
	c.gcLocked()
	remaining := len(c.entries)
	c.mu.Unlock()
	if remaining != 0 {
		t.Errorf("expected gc to evict, %d entries remain", remaining)
	}
}
