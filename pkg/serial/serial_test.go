package serial

import "testing"

func TestNextLength(t *testing.T) {
	no := Next(nil)
	if len(no.String()) != serialNoLen {
		t.Fatalf("serial %q length = %d", no, len(no))
	}
	for _, c := range no.String() {
		if c < '0' || c > '9' {
			t.Fatalf("serial %q contains non-digit", no)
		}
	}
}

func TestNextSkipsTaken(t *testing.T) {
	//被占用的号码要跳过
	calls := 0
	no := Next(func(n string) bool {
		calls++
		return calls == 1 //第一次生成的当作已占用
	})
	if no.String() == "" {
		t.Fatal("empty serial")
	}
	if calls < 2 {
		t.Fatalf("exists called %d times, want retry", calls)
	}
}
