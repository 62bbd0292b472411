package usecase

import (
	"sync"
	"testing"
)

func TestJobLocks_SerializesAndReleases(t *testing.T) {
	l := newJobLocks()

	var (
		wg      sync.WaitGroup
		counter int
		inside  int
		maxSeen int
		mu      sync.Mutex
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := l.lock("job-1")
			defer unlock()

			mu.Lock()
			inside++
			if inside > maxSeen {
				maxSeen = inside
			}
			mu.Unlock()

			counter++

			mu.Lock()
			inside--
			mu.Unlock()
		}()
	}
	wg.Wait()

	if counter != 50 {
		t.Fatalf("expected 50, got %d", counter)
	}
	if maxSeen != 1 {
		t.Fatalf("expected exclusive access, saw %d holders", maxSeen)
	}
	if l.size() != 0 {
		t.Fatalf("expected locks to be released, got %d", l.size())
	}
}

func TestJobLocks_IndependentIDs(t *testing.T) {
	l := newJobLocks()
	unlockA := l.lock("a")
	done := make(chan struct{})
	go func() {
		unlock := l.lock("b")
		unlock()
		close(done)
	}()
	<-done
	if l.size() != 1 {
		t.Fatalf("expected only a held, got %d", l.size())
	}
	unlockA()
	if l.size() != 0 {
		t.Fatalf("expected 0, got %d", l.size())
	}
}
