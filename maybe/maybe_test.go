package maybe_test

import (
	"testing"

	. "github.com/npillmayer/comptest/maybe"
)

func TestMaybeSimple(t *testing.T) {
	x := Just(7) // infers type
	y := Nothing[int]()

	var v int
	switch m := x.Match(); m {
	case m.Just(&v):
		t.Logf("Just(%d)", v)
	case m.Nothing():
		t.Logf("Nothing")
	}
	if v != 7 {
		t.Errorf("expected v to be 7, is %#v", v)
	}

	var w int
	switch m := y.Match(); m {
	case m.Just(&w):
		t.Logf("Just(%d)", w)
	case m.Nothing():
		t.Logf("Nothing")
	}
	if w != 0 {
		t.Errorf("expected w to be 0, is %#v", w)
	}
}

func TestMaybeOfSlice(t *testing.T) {
	x := Just([]string{})
	var v []string
	matched := false
	switch m := x.Match(); m {
	case m.Just(&v):
		matched = true
	case m.Nothing():
		t.Error("expected Just([]) not to match Nothing")
	}
	if !matched || v == nil {
		t.Errorf("expected Just([]) to unwrap to an empty, non-nil slice, is %#v", v)
	}
	if _, ok := Nothing[[]string]().Get(); ok {
		t.Error("expected Get() on Nothing to fail")
	}
}

func TestMaybeWithDefault(t *testing.T) {
	x := Just(7)
	xx := x.WithDefault(100)
	if xx != 7 {
		t.Logf("y = %d", xx)
		t.Error("expected Just(7) to have value 7, isn't")
	}

	y := Nothing[int]()
	yy := y.WithDefault(100)
	if yy != 100 {
		t.Logf("y = %d", yy)
		t.Error("expected Nothing to default to 100, isn't")
	}
	if !y.IsNothing() || x.IsNothing() {
		t.Error("expected IsNothing() to tell Just from Nothing")
	}
}

func TestMaybeMap(t *testing.T) {
	x := Just(7)
	xx := x.Map(func(n int) int {
		return n * 2
	})
	if v, _ := xx.Get(); v != 14 {
		t.Logf("x * 2 = %d", v)
		t.Error("expected Just(7).Map(…) to return 14, didn't")
	}

	y := Nothing[int]()
	yy := y.Map(func(n int) int {
		return n * 2
	})
	var w int
	switch m := yy.Match(); m {
	case m.Just(&w):
	case m.Nothing():
		w = 99
	}
	if w != 99 {
		t.Logf("nothing * 2 = %d", w)
		t.Error("expected Nothing.Map(…) to return 99, didn't")
	}
}

func TestMaybeAndThen(t *testing.T) {
	gt0 := func(n int) Maybe[bool] {
		if n > 0 {
			return Just(true)
		}
		return Nothing[bool]()
	}

	gt := AndThen(gt0, Just(7))
	var isGreater bool
	switch m := gt.Match(); m {
	case m.Just(&isGreater):
		t.Logf("ok: 7 > 0")
	case m.Nothing():
		t.Error("expected Just(7) |> andThen(gt0) to be true, isn't")
	}
	if !AndThen(gt0, Just(-1)).IsNothing() {
		t.Error("expected Just(-1) |> andThen(gt0) to be Nothing, isn't")
	}
	if !AndThen(gt0, Nothing[int]()).IsNothing() {
		t.Error("expected Nothing |> andThen(gt0) to be Nothing, isn't")
	}
}
