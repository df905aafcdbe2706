package code

import (
	"testing"
)

func TestWithDetailsWithDataChain(t *testing.T) {
	c := ErrorInvalidParams.WithDetails("name: required").WithData(map[string]string{"name": "required"})

	// 链式调用后 details 和 data 都要保留
	if !c.HaveDetails() {
		t.Fatal("Expected details to survive WithData")
	}
	if got := c.Details(); len(got) != 1 || got[0] != "name: required" {
		t.Errorf("Details() = %v, want [name: required]", got)
	}
	if !c.HaveData() {
		t.Fatal("Expected data to survive the chain")
	}
	if c.Code() != ErrorInvalidParams.Code() {
		t.Errorf("Code() = %d, want %d", c.Code(), ErrorInvalidParams.Code())
	}
}

func TestWithDetailsDoesNotMutateOriginal(t *testing.T) {
	if ErrorInvalidParams.HaveDetails() {
		t.Fatal("Registered code should carry no details")
	}

	first := ErrorInvalidParams.WithDetails("a")
	second := first.WithDetails("b")

	// 原始注册码不受影响
	if ErrorInvalidParams.HaveDetails() || len(ErrorInvalidParams.Details()) != 0 {
		t.Error("WithDetails mutated the registered code")
	}

	// 副本之间互不共享底层切片
	if got := first.Details(); len(got) != 1 || got[0] != "a" {
		t.Errorf("first.Details() = %v, want [a]", got)
	}
	if got := second.Details(); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("second.Details() = %v, want [a b]", got)
	}
}
