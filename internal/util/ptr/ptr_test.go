package ptr

import "testing"

func TestTo(t *testing.T) {
	v := true
	p := To(v)
	v = false

	if p == nil || !*p {
		t.Fatal("To must point at a copy of the value")
	}
}
