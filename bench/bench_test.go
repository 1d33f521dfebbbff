package bench

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-vecbench/internal/cpu"
	"github.com/cwbudde/algo-vecbench/kernel"
)

func config(k kernel.Kind, v kernel.Variant, n, iters, unroll int) Config {
	return Config{Kernel: k, Variant: v, N: n, Iterations: iters, Unroll: unroll}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, kernel.SAXPY, cfg.Kernel)
	assert.Equal(t, kernel.Auto, cfg.Variant)
	assert.Equal(t, 1<<20, cfg.N)
	assert.Equal(t, 10, cfg.Iterations)
	assert.Equal(t, 2, cfg.Unroll)
}

func TestRunCrossVariant(t *testing.T) {
	for _, k := range kernel.Kinds() {
		for _, n := range []int{1000, 1025, 4096} {
			t.Run(fmt.Sprintf("%v/n=%d", k, n), func(t *testing.T) {
				ref, err := Run(config(k, kernel.Scalar, n, 3, 2))
				require.NoError(t, err)
				scale := Validate(config(k, kernel.Scalar, n, 3, 2), ref, DefaultTolerance).Scale

				for _, v := range kernel.Variants() {
					for _, u := range []int{1, 2, 4, 8} {
						res, err := Run(config(k, v, n, 3, u))
						require.NoError(t, err)
						assert.InDelta(t, ref.Checksum, res.Checksum, 1e-4*math.Max(1, scale),
							"variant %v unroll %d", v, u)
					}
				}
			})
		}
	}
}

func TestRunDeterministic(t *testing.T) {
	for _, k := range kernel.Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			cfg := config(k, kernel.Scalar, 5000, 4, 2)
			a, err := Run(cfg)
			require.NoError(t, err)
			b, err := Run(cfg)
			require.NoError(t, err)
			assert.Equal(t, math.Float32bits(a.Checksum), math.Float32bits(b.Checksum))
		})
	}
}

func TestInputs(t *testing.T) {
	x1, y1 := Inputs(100)
	x2, y2 := Inputs(100)
	require.Equal(t, x1, x2)
	require.Equal(t, y1, y2)
	assert.NotEqual(t, x1, y1)

	for i := range x1 {
		assert.True(t, x1[i] >= -1 && x1[i] < 1, "x[%d] = %v", i, x1[i])
		assert.True(t, y1[i] >= -1 && y1[i] < 1, "y[%d] = %v", i, y1[i])
	}

	xs, ys := Inputs(10)
	assert.Equal(t, x1[:10], xs)
	assert.Equal(t, y1[:10], ys)

	x0, y0 := Inputs(0)
	assert.Empty(t, x0)
	assert.Empty(t, y0)
}

func TestRunZeroN(t *testing.T) {
	for _, k := range kernel.Kinds() {
		for _, v := range kernel.Variants() {
			t.Run(fmt.Sprintf("%v/%v", k, v), func(t *testing.T) {
				res, err := Run(config(k, v, 0, 5, 4))
				require.NoError(t, err)
				assert.Equal(t, float32(0), res.Checksum)
			})
		}
	}
}

func TestRunNegativeCountsAreEmpty(t *testing.T) {
	res, err := Run(config(kernel.SAXPY, kernel.Scalar, -5, -1, 2))
	require.NoError(t, err)
	assert.Equal(t, float32(0), res.Checksum)
}

func TestExecuteSaxpyCompounds(t *testing.T) {
	fn, err := resolve(kernel.SAXPY, kernel.Scalar, 2)
	require.NoError(t, err)

	x := []float32{1, 1}
	y := []float32{0, 0}
	res := execute(config(kernel.SAXPY, kernel.Scalar, 2, 3, 2), fn, 1, x, y)

	assert.Equal(t, []float32{3, 3}, y)
	assert.Equal(t, float32(6), res.Checksum)
}

func TestRunSaxpyCompoundsOnSeededInputs(t *testing.T) {
	x, y := Inputs(2)
	for range 3 {
		for i := range y {
			y[i] = float32(Alpha*x[i]) + y[i]
		}
	}

	res, err := Run(config(kernel.SAXPY, kernel.Scalar, 2, 3, 2))
	require.NoError(t, err)
	assert.Equal(t, y[0]+y[1], res.Checksum)

	once, err := Run(config(kernel.SAXPY, kernel.Scalar, 2, 1, 2))
	require.NoError(t, err)
	assert.NotEqual(t, once.Checksum, res.Checksum)
}

func TestRunDotKeepsLastIteration(t *testing.T) {
	x, y := Inputs(777)
	want := kernel.DotScalar(x, y)

	res, err := Run(config(kernel.Dot, kernel.Scalar, 777, 4, 2))
	require.NoError(t, err)
	assert.Equal(t, want, res.Checksum)

	zero, err := Run(config(kernel.Dot, kernel.Scalar, 777, 0, 2))
	require.NoError(t, err)
	assert.Equal(t, float32(0), zero.Checksum)
}

func TestRunUnrollFallback(t *testing.T) {
	want, err := Run(config(kernel.SAXPY, kernel.Manual, 1025, 2, 2))
	require.NoError(t, err)

	for _, u := range []int{3, 0, -1, 100} {
		res, err := Run(config(kernel.SAXPY, kernel.Manual, 1025, 2, u))
		require.NoError(t, err, "unroll %d", u)
		assert.Equal(t, math.Float32bits(want.Checksum), math.Float32bits(res.Checksum), "unroll %d", u)
	}
}

func TestRunReportsImplementation(t *testing.T) {
	res, err := Run(config(kernel.Dot, kernel.Manual, 16, 1, 2))
	require.NoError(t, err)
	assert.Equal(t, kernel.Implementation(), res.Impl)

	res, err = Run(config(kernel.Dot, kernel.Auto, 16, 1, 2))
	require.NoError(t, err)
	assert.Empty(t, res.Impl)
}

func TestResolveBindsManualImplementation(t *testing.T) {
	defer func() {
		cpu.ResetDetection()
		kernel.Refresh()
	}()

	cpu.ForceGeneric()
	kernel.Refresh()
	dot, err := resolve(kernel.Dot, kernel.Manual, 2)
	require.NoError(t, err)
	saxpy, err := resolve(kernel.SAXPY, kernel.Manual, 4)
	require.NoError(t, err)

	// A new selection after resolve does not reach the resolved steps.
	cpu.ResetDetection()
	kernel.Refresh()

	x, y := Inputs(1027)
	assert.Equal(t, math.Float32bits(kernel.DotScalar(x, y)), math.Float32bits(dot(x, y, Alpha)))

	want := append([]float32(nil), y...)
	kernel.SaxpyScalar(want, x, Alpha)
	assert.Zero(t, saxpy(x, y, Alpha))
	assert.Equal(t, want, y)
}

func TestRunUnknownEnumeration(t *testing.T) {
	_, err := Run(config(kernel.Kind(9), kernel.Scalar, 10, 1, 2))
	assert.ErrorIs(t, err, ErrInternal)

	for _, k := range kernel.Kinds() {
		_, err = Run(config(k, kernel.Variant(9), 10, 1, 2))
		assert.ErrorIs(t, err, ErrInternal)
	}
}

func TestGFLOPSFormula(t *testing.T) {
	cfg := config(kernel.SAXPY, kernel.Auto, 1<<16, 20, 2)
	res, err := Run(cfg)
	require.NoError(t, err)
	if res.Seconds <= 0 {
		t.Skip("timer resolution too coarse")
	}
	want := 2 * float64(cfg.N) * float64(cfg.Iterations) / (res.Seconds * 1e9)
	assert.Equal(t, want, res.GFLOPS)
}

func TestGFLOPSDegenerate(t *testing.T) {
	assert.True(t, math.IsInf(GFLOPS(10, 1, 0), 1))
	assert.True(t, math.IsNaN(GFLOPS(0, 1, 0)))
	assert.Equal(t, 0.0, GFLOPS(0, 10, 1))
	assert.Equal(t, 2.0, GFLOPS(1e9, 1, 1))
}

func TestChecksum(t *testing.T) {
	assert.Equal(t, float32(0), Checksum(nil))
	assert.Equal(t, float32(6), Checksum([]float32{1, 2, 3}))
}
