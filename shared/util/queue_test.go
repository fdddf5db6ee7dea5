package util

import (
	"errors"
	"sync"
	"testing"
)

func TestThreadSafeQueueOrder(t *testing.T) {
	q := NewThreadSafeQueue[string]()
	q.Push("a")
	q.Push("b")

	if v, ok := q.Pop(); !ok || v != "a" {
		t.Fatalf("Pop = %q, %v", v, ok)
	}
	q.Push("c")
	got := q.Drain()
	if len(got) != 2 || got[0] != "b" || got[1] != "c" {
		t.Fatalf("Drain = %v", got)
	}
	if _, ok := q.Pop(); ok {
		t.Error("fila deveria estar vazia")
	}
}

func TestThreadSafeQueueConcurrentPush(t *testing.T) {
	q := NewThreadSafeQueue[int]()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				q.Push(j)
			}
		}()
	}
	wg.Wait()
	if q.Len() != 800 {
		t.Errorf("Len = %d, want 800", q.Len())
	}
}

func TestRingBuffer(t *testing.T) {
	r := NewRingBuffer[int](3)
	if r.Cap() != 4 {
		t.Fatalf("Cap = %d, want 4", r.Cap())
	}
	for i := 0; i < 4; i++ {
		if err := r.Enqueue(i); err != nil {
			t.Fatalf("Enqueue(%d): %v", i, err)
		}
	}
	if err := r.Enqueue(99); !errors.Is(err, ErrRingFull) {
		t.Errorf("err = %v, want ErrRingFull", err)
	}
	for i := 0; i < 4; i++ {
		v, err := r.Dequeue()
		if err != nil || v != i {
			t.Fatalf("Dequeue = %d, %v; want %d", v, err, i)
		}
	}
	if _, err := r.Dequeue(); !errors.Is(err, ErrRingEmpty) {
		t.Errorf("err = %v, want ErrRingEmpty", err)
	}
}
