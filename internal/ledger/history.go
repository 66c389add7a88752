package ledger

import (
	"github.com/mjpad/mjledger/pkg/constant"
	"github.com/mjpad/mjledger/pkg/errutil"
)

// Entry 撤销一局所需的全部信息, 入栈后不再修改
type Entry struct {
	RoundId        string
	ScoreChanges   Deltas
	PrevDealer     int
	PrevWind       constant.Wind
	PrevRepeat     int
	PrevHandInWind int
}

// History 只追加的撤销栈, 只允许弹出最近一局
type History struct {
	entries []*Entry
}

func NewHistory() *History {
	return &History{}
}

func (h *History) Push(e *Entry) {
	h.entries = append(h.entries, e)
}

func (h *History) Pop() (*Entry, error) {
	if len(h.entries) == 0 {
		return nil, errutil.ErrEmptyHistory
	}
	e := h.entries[len(h.entries)-1]
	h.entries = h.entries[:len(h.entries)-1]
	return e, nil
}

func (h *History) Len() int {
	return len(h.entries)
}
