package factorial

import (
	"errors"
	"math"
	"math/big"
	"os"
	"os/exec"
	"runtime/debug"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/go-leo/tailcall/trampoline"
)

const childEnv = "FACTORIAL_NAIVE_CHILD"

// exact returns n! by a plain loop.
func exact(n int64) *big.Int {
	r := big.NewInt(1)
	for i := int64(2); i <= n; i++ {
		r.Mul(r, big.NewInt(i))
	}
	return r
}

func TestTrampolined(t *testing.T) {
	Convey("Trampolined factorial", t, func() {
		Convey("matches the base cases", func() {
			for _, n := range []int64{0, 1} {
				got, err := Trampolined(n)
				So(err, ShouldBeNil)
				So(got.Int64(), ShouldEqual, int64(1))
			}
		})

		Convey("matches known values", func() {
			got, err := Trampolined(5)
			So(err, ShouldBeNil)
			So(got.Int64(), ShouldEqual, int64(120))

			got, err = Trampolined(10)
			So(err, ShouldBeNil)
			So(got.Int64(), ShouldEqual, int64(3628800))
		})

		Convey("is exact up to 10000", func() {
			want := big.NewInt(1)
			for n := int64(0); n <= 10000; n++ {
				if n > 1 {
					want.Mul(want, big.NewInt(n))
				}
				if n > 300 && n%997 != 0 && n != 10000 {
					continue
				}
				got, err := Trampolined(n)
				So(err, ShouldBeNil)
				So(got.Cmp(want), ShouldEqual, 0)
			}
		})

		Convey("is deterministic", func() {
			first, err := Trampolined(250)
			So(err, ShouldBeNil)
			for i := 0; i < 5; i++ {
				again, err := Trampolined(250)
				So(err, ShouldBeNil)
				So(again.Cmp(first), ShouldEqual, 0)
			}
		})

		Convey("rejects negative input", func() {
			got, err := Trampolined(-1)
			So(err, ShouldEqual, ErrNegative)
			So(got, ShouldBeNil)
		})

		Convey("bounces n-1 times", func() {
			var bounces int
			_, err := Trampolined(50, trampoline.WithObserver(func(_ trampoline.State, b int) {
				bounces = b
			}))
			So(err, ShouldBeNil)
			So(bounces, ShouldEqual, 49)
		})

		Convey("honours step limits", func() {
			_, err := Trampolined(50, trampoline.MaxSteps(10))
			So(errors.Is(err, trampoline.ErrStepLimit), ShouldBeTrue)
		})
	})
}

func TestVariantsAgree(t *testing.T) {
	Convey("All variants agree", t, func() {
		for n := int64(0); n <= 300; n++ {
			want := exact(n)
			for _, f := range []func(int64) (*big.Int, error){Naive, TailRecursive, Thunked} {
				got, err := f(n)
				So(err, ShouldBeNil)
				So(got.Cmp(want), ShouldEqual, 0)
			}
		}
		for _, f := range []func(int64) (*big.Int, error){Naive, TailRecursive, Thunked} {
			_, err := f(-3)
			So(err, ShouldEqual, ErrNegative)
		}
	})
}

func TestOf(t *testing.T) {
	Convey("Of accepts any integer type", t, func() {
		got, err := Of(uint8(5))
		So(err, ShouldBeNil)
		So(got.Int64(), ShouldEqual, int64(120))

		got, err = Of(int32(10))
		So(err, ShouldBeNil)
		So(got.Int64(), ShouldEqual, int64(3628800))

		_, err = Of(int16(-2))
		So(err, ShouldEqual, ErrNegative)

		_, err = Of(uint64(math.MaxUint64))
		So(err, ShouldEqual, ErrTooLarge)
	})
}

func TestStep(t *testing.T) {
	Convey("Step defers until the base case", t, func() {
		b, err := Fact.Base()(State{N: 3, Acc: big.NewInt(1)})
		So(err, ShouldBeNil)
		So(b.Kind(), ShouldEqual, trampoline.KindDeferred)
		s, _ := b.State()
		So(s.N, ShouldEqual, int64(2))
		So(s.Acc.Int64(), ShouldEqual, int64(3))

		b, err = Step(State{N: 1, Acc: big.NewInt(6)})
		So(err, ShouldBeNil)
		v, ok := b.Value()
		So(ok, ShouldBeTrue)
		So(v.Int64(), ShouldEqual, int64(6))
	})

	Convey("A missing accumulator defaults to 1", t, func() {
		got, err := Fact.Call(State{N: 5})
		So(err, ShouldBeNil)
		So(got.Int64(), ShouldEqual, int64(120))

		got, err = Fact.Call(State{N: 0})
		So(err, ShouldBeNil)
		So(got, ShouldNotBeNil)
		So(got.Int64(), ShouldEqual, int64(1))
	})
}

func TestLarge(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 100000! in short mode")
	}
	old := debug.SetMaxStack(1 << 20)
	defer debug.SetMaxStack(old)

	Convey("100000! under a 1 MiB stack", t, func() {
		got, err := Trampolined(100000)
		So(err, ShouldBeNil)
		So(len(got.Text(10)), ShouldEqual, 456574)

		thunked, err := Thunked(100000)
		So(err, ShouldBeNil)
		So(thunked.Cmp(got), ShouldEqual, 0)
	})
}

func TestNaiveExhaustsStack(t *testing.T) {
	if os.Getenv(childEnv) == "1" {
		debug.SetMaxStack(1 << 20)
		_, _ = Naive(100000)
		return
	}

	Convey("Naive recursion overflows a 1 MiB stack", t, func() {
		cmd := exec.Command(os.Args[0], "-test.run=^TestNaiveExhaustsStack$")
		cmd.Env = append(os.Environ(), childEnv+"=1")
		out, err := cmd.CombinedOutput()
		So(err, ShouldNotBeNil)
		So(string(out), ShouldContainSubstring, "stack overflow")
	})
}
