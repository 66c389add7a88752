package ledger

import (
	"testing"

	"github.com/mjpad/mjledger/pkg/errutil"
)

func TestHistoryLIFO(t *testing.T) {
	h := NewHistory()
	h.Push(&Entry{RoundId: "a"})
	h.Push(&Entry{RoundId: "b"})

	e, err := h.Pop()
	if err != nil || e.RoundId != "b" {
		t.Fatalf("pop = %v, %v", e, err)
	}
	e, err = h.Pop()
	if err != nil || e.RoundId != "a" {
		t.Fatalf("pop = %v, %v", e, err)
	}
	if _, err = h.Pop(); err != errutil.ErrEmptyHistory {
		t.Fatalf("got %v, want ErrEmptyHistory", err)
	}
	if h.Len() != 0 {
		t.Fatalf("len = %d", h.Len())
	}
}
