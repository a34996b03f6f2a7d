package checkinqueue

import (
	"strconv"
	"sync"
	"testing"

	"github.com/nlog-dbg/dbglog/latch"
	"github.com/nlog-dbg/dbglog/msg"
)

func TestTryPopEmpty(t *testing.T) {
	q := New()
	if _, ok := q.TryPop(); ok {
		t.Fatal("TryPop on empty queue returned ok=true")
	}
}

func TestFIFOOrderSingleProducer(t *testing.T) {
	q := New()
	for _, body := range []string{"a", "b", "c"} {
		q.Push(&msg.Writer{Release: latch.Dummy(), Msg: msg.Std(0, body)})
	}
	for _, want := range []string{"a", "b", "c"} {
		w, ok := q.TryPop()
		if !ok {
			t.Fatalf("expected a Writer for %q", want)
		}
		if w.Msg.Body != want {
			t.Fatalf("got %q, want %q", w.Msg.Body, want)
		}
	}
	if _, ok := q.TryPop(); ok {
		t.Fatal("queue should be drained")
	}
}

func TestConcurrentPushersPreserveEachProducersOrder(t *testing.T) {
	q := New()
	const perProducer = 200
	var wg sync.WaitGroup
	for p := 0; p < 8; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Push(&msg.Writer{Who: strconv.Itoa(p), Release: latch.Dummy(), Msg: msg.Std(0, strconv.Itoa(i))})
			}
		}(p)
	}
	wg.Wait()

	next := make(map[string]int)
	count := 0
	for {
		w, ok := q.TryPop()
		if !ok {
			break
		}
		if want := strconv.Itoa(next[w.Who]); w.Msg.Body != want {
			t.Fatalf("producer %s: got item %q, want %q", w.Who, w.Msg.Body, want)
		}
		next[w.Who]++
		count++
	}
	if count != 8*perProducer {
		t.Fatalf("drained %d items, want %d", count, 8*perProducer)
	}
}
