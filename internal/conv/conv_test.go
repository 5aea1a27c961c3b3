package conv

import (
	"math"
	"strconv"
	"testing"
)

// maxUint32 is held in a variable so conversions to int are not
// constant-folded, which would not compile on 32-bit platforms.
var maxUint32 uint64 = math.MaxUint32

func TestIntToUint32(t *testing.T) {
	cases := []int{0, 1, 1 << 20}
	if strconv.IntSize == 64 {
		cases = append(cases, int(maxUint32))
	}
	for _, n := range cases {
		if got := IntToUint32(n); uint64(got) != uint64(n) {
			t.Errorf("IntToUint32(%d) = %d", n, got)
		}
	}
}

func TestIntToUint32_Panics(t *testing.T) {
	cases := []int{-1}
	if strconv.IntSize == 64 {
		cases = append(cases, int(maxUint32+1))
	}
	for _, n := range cases {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("IntToUint32(%d) should panic", n)
				}
			}()
			IntToUint32(n)
		}()
	}
}

func TestSaturateUint32(t *testing.T) {
	v, clamped := SaturateUint32(42)
	if v != 42 || clamped {
		t.Errorf("SaturateUint32(42) = %d, %v", v, clamped)
	}

	if strconv.IntSize == 64 {
		v, clamped = SaturateUint32(int(maxUint32 + 10))
		if v != math.MaxUint32 || !clamped {
			t.Errorf("SaturateUint32(MaxUint32+10) = %d, %v", v, clamped)
		}
	}

	defer func() {
		if recover() == nil {
			t.Error("SaturateUint32(-1) should panic")
		}
	}()
	SaturateUint32(-1)
}
