package input

import (
	"errors"
	"reflect"
	"sync"
	"testing"
)

func TestParse(t *testing.T) {
	steps, err := Parse("+ - m j esc quit l:960,540 r:1,2.5 c:0,0 . m/l:10,20")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := [][]Event{
		{Press(KeyIncreaseIter)},
		{Press(KeyDecreaseIter)},
		{Press(KeySelectMandelbrot)},
		{Press(KeySelectJulia)},
		{Press(KeyEscape)},
		{QuitEvent()},
		{Click(Primary, 960, 540)},
		{Click(Secondary, 1, 2.5)},
		{Click(Tertiary, 0, 0)},
		nil,
		{Press(KeySelectMandelbrot), Click(Primary, 10, 20)},
	}
	if !reflect.DeepEqual(steps, want) {
		t.Errorf("Parse() =\n%v\nwant\n%v", steps, want)
	}
}

func TestParse_Empty(t *testing.T) {
	steps, err := Parse("   ")
	if err != nil || len(steps) != 0 {
		t.Errorf("Parse(blank) = %v, %v; want empty, nil", steps, err)
	}
}

func TestParse_Errors(t *testing.T) {
	for _, s := range []string{"x", "l:1", "l:a,2", "l:1,b", "q:1,2", "m/zz"} {
		if _, err := Parse(s); !errors.Is(err, ErrSyntax) {
			t.Errorf("Parse(%q) error = %v, want ErrSyntax", s, err)
		}
	}
}

func TestQueue(t *testing.T) {
	q := NewQueue(Press(KeySelectJulia))
	q.Push(Click(Primary, 1, 2), QuitEvent())

	if q.Len() != 3 {
		t.Errorf("Len() = %d, want 3", q.Len())
	}
	got := q.Poll()
	want := []Event{Press(KeySelectJulia), Click(Primary, 1, 2), QuitEvent()}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Poll() = %v, want %v", got, want)
	}
	if got := q.Poll(); len(got) != 0 {
		t.Errorf("second Poll() = %v, want empty", got)
	}
}

func TestQueue_Concurrent(t *testing.T) {
	q := NewQueue()
	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				q.Push(Press(KeyIncreaseIter))
			}
		}()
	}

	total := 0
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	for polling := true; polling; {
		select {
		case <-done:
			polling = false
		default:
		}
		total += len(q.Poll())
	}

	if total != 1000 {
		t.Errorf("polled %d events, want 1000", total)
	}
}

func TestScript(t *testing.T) {
	s := NewScript([]Event{Press(KeySelectJulia)}, nil, []Event{QuitEvent()})
	if s.Remaining() != 3 {
		t.Errorf("Remaining() = %d, want 3", s.Remaining())
	}
	if got := s.Poll(); len(got) != 1 || got[0] != Press(KeySelectJulia) {
		t.Errorf("first Poll() = %v", got)
	}
	if got := s.Poll(); got != nil {
		t.Errorf("idle Poll() = %v, want nil", got)
	}
	if got := s.Poll(); len(got) != 1 || got[0].Kind != Quit {
		t.Errorf("third Poll() = %v", got)
	}
	if got := s.Poll(); got != nil {
		t.Errorf("exhausted Poll() = %v, want nil", got)
	}
}

func TestEventString(t *testing.T) {
	tests := []struct {
		ev   Event
		want string
	}{
		{QuitEvent(), "quit"},
		{Press(KeySelectJulia), "key select-julia"},
		{Click(Secondary, 3, 4.5), "pointer secondary at (3, 4.5)"},
		{Event{}, "none"},
	}
	for _, tt := range tests {
		if got := tt.ev.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

var (
	_ Source = (*Queue)(nil)
	_ Source = (*Script)(nil)
	_ Source = SourceFunc(nil)
)
