package random

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"
)

var (
	seed4Bound4096 = []uint32{
		2992, 3717, 3763, 3320, 3762, 892, 2783, 1165, 321, 2041, 101, 3492, 2864, 3273, 3297, 1097,
		619, 2353, 3787, 1722, 3128, 2937, 13, 2184, 3016, 1476, 3916, 1858, 3373, 529, 772, 2640,
		1335, 1681, 3078, 774, 1148, 1847, 942, 2404, 3308, 3015, 3109, 1705, 3200, 1909, 3658, 1571,
		2146, 3201, 210, 3536, 1420, 508, 1966, 2000, 3713, 742, 2336, 2204, 2284, 3441, 2341, 4063,
	}
	seed4Bound4097 = []uint32{
		1130, 3485, 662, 3602, 558, 2973, 2899, 3534, 3023, 2378, 1110, 1529, 3209, 1193, 3207, 610,
		3376, 2053, 1746, 3646, 4088, 2404, 138, 712, 2448, 1359, 1469, 744, 3838, 1962, 282, 3748,
		3875, 3080, 2638, 311, 2934, 1084, 2032, 413, 0, 3776, 3639, 2840, 1359, 1152, 763, 2894,
		1316, 3727, 800, 2731, 2211, 2522, 400, 1092, 3237, 2462, 34, 871, 3906, 3476, 802, 2946,
	}
)

func draw(t *testing.T, r *Random, bound uint32, n int) []uint32 {
	t.Helper()
	out := make([]uint32, n)
	for i := range out {
		v, err := r.NextInt(bound)
		if err != nil {
			t.Fatalf("NextInt(%d) returned error: %v", bound, err)
		}
		out[i] = v
	}
	return out
}

func TestNextIntReferenceSequences(t *testing.T) {
	tests := []struct {
		name  string
		seed  uint64
		bound uint32
		want  []uint32
	}{
		{name: "power of two", seed: 4, bound: 4096, want: seed4Bound4096},
		{name: "non power of two", seed: 4, bound: 4097, want: seed4Bound4097},
		{name: "small bound", seed: 42, bound: 10, want: []uint32{0, 3, 8, 4, 0, 5, 5, 8, 9, 3}},
		{name: "max bound", seed: 42, bound: MaxBound, want: []uint32{1562431130, 117392763, 1467211248}},
		{name: "max signed bound", seed: 7, bound: 0x7fffffff, want: []uint32{1569164236, 1371249164, 1608829485}},
		{name: "bound of one", seed: 7, bound: 1, want: []uint32{0, 0, 0}},
		{name: "rejection heavy", seed: 7, bound: 1<<30 + 1, want: []uint32{20678044, 747989380, 1053566254, 755731200, 259278708}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := draw(t, New(tt.seed), tt.bound, len(tt.want))
			if !slices.Equal(got, tt.want) {
				t.Fatalf("NextInt(%d) from seed %d = %v, want %v", tt.bound, tt.seed, got, tt.want)
			}
		})
	}
}

func TestNextIntRejectionDiffersFromPlainModulo(t *testing.T) {
	const bound = 1<<30 + 1
	r := New(7)
	naive := make([]uint32, 3)
	for i := range naive {
		naive[i] = r.NextBits(31) % bound
	}
	got := draw(t, New(7), bound, 3)
	if slices.Equal(got, naive) {
		t.Fatalf("rejection sampling matched plain modulo: %v", got)
	}
}

func TestNextIntRejectsInvalidBound(t *testing.T) {
	for _, bound := range []uint32{0, MaxBound + 1, 0xffffffff} {
		r := New(4)
		before := r.State()
		_, err := r.NextInt(bound)
		if !errors.Is(err, ErrInvalidBound) {
			t.Fatalf("NextInt(%d) error = %v, want %v", bound, err, ErrInvalidBound)
		}
		if r.State() != before {
			t.Fatalf("NextInt(%d) advanced the generator", bound)
		}
	}
}

func TestNewMasksSeed(t *testing.T) {
	tests := []struct {
		seed uint64
		want uint64
	}{
		{seed: 0, want: 0x5DEECE66D},
		{seed: 0x5DEECE66D, want: 0},
		{seed: 0xffffffffffffffff, want: 0xffffffffffff ^ 0x5DEECE66D},
	}
	for _, tt := range tests {
		if got := New(tt.seed).State(); got != tt.want {
			t.Fatalf("New(%#x).State() = %#x, want %#x", tt.seed, got, tt.want)
		}
	}
}

func TestStateKeepsTopBitsClear(t *testing.T) {
	r := New(0xdeadbeefcafebabe)
	for range 1000 {
		r.NextBits(32)
		if r.State()>>48 != 0 {
			t.Fatalf("state %#x has bits above 48", r.State())
		}
	}
	if got := r.State(); got == 0 {
		t.Fatal("state collapsed to zero")
	}
}

func TestNextBitsStateAfterDraws(t *testing.T) {
	r := New(4)
	draw(t, r, 4097, 1)
	if got := r.State(); got != 205648279924928 {
		t.Fatalf("state after one draw = %d, want 205648279924928", got)
	}
}

func TestNextBitsRange(t *testing.T) {
	r := New(99)
	for bits := uint32(1); bits <= 32; bits++ {
		v := r.NextBits(bits)
		if bits < 32 && v >= 1<<bits {
			t.Fatalf("NextBits(%d) = %d, exceeds %d bits", bits, v, bits)
		}
	}
}

func TestNextBitsPanicsOutsideRange(t *testing.T) {
	for _, bits := range []uint32{0, 33} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("NextBits(%d) did not panic", bits)
				}
			}()
			New(1).NextBits(bits)
		}()
	}
}

func TestReseedReproducesSequence(t *testing.T) {
	r := New(12345)
	first := draw(t, r, 1000, 32)
	r.SetSeed(12345)
	second := draw(t, r, 1000, 32)
	if !slices.Equal(first, second) {
		t.Fatalf("reseeded sequence differs:\n%v\n%v", first, second)
	}
	third := draw(t, New(12345), 1000, 32)
	if !slices.Equal(first, third) {
		t.Fatalf("fresh generator sequence differs:\n%v\n%v", first, third)
	}
}

func TestNextIntIsNotIdempotent(t *testing.T) {
	r := New(4)
	a, _ := r.NextInt(1 << 31)
	b, _ := r.NextInt(1 << 31)
	if a == b {
		t.Fatalf("consecutive draws both returned %d", a)
	}
}

func TestRandomIsRandV2Source(t *testing.T) {
	var src rand.Source = New(42)
	want := New(42).NextLong()
	if got := int64(src.Uint64()); got != want {
		t.Fatalf("Uint64() = %d, want %d", got, want)
	}
	rng := rand.New(New(1))
	if v := rng.IntN(10); v < 0 || v >= 10 {
		t.Fatalf("IntN(10) = %d", v)
	}
}
