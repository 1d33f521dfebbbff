package bench

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-vecbench/kernel"
)

func TestValidateAcceptsEveryVariant(t *testing.T) {
	for _, k := range kernel.Kinds() {
		for _, v := range kernel.Variants() {
			t.Run(fmt.Sprintf("%v/%v", k, v), func(t *testing.T) {
				cfg := config(k, v, 10000, 5, 4)
				res, err := Run(cfg)
				require.NoError(t, err)

				val := Validate(cfg, res, DefaultTolerance)
				assert.True(t, val.OK, "rel err %v ref %v got %v", val.RelErr, val.Reference, res.Checksum)
				assert.Greater(t, val.Scale, 0.0)
			})
		}
	}
}

func TestValidateRejectsWrongChecksum(t *testing.T) {
	cfg := config(kernel.Dot, kernel.Scalar, 4096, 1, 2)
	res, err := Run(cfg)
	require.NoError(t, err)

	res.Checksum += 500
	val := Validate(cfg, res, DefaultTolerance)
	assert.False(t, val.OK)
	assert.InDelta(t, 500, val.AbsErr, 1)
}

func TestValidateEmpty(t *testing.T) {
	for _, k := range kernel.Kinds() {
		val := Validate(config(k, kernel.Auto, 0, 3, 2), Result{}, DefaultTolerance)
		assert.True(t, val.OK)
		assert.Equal(t, 0.0, val.Reference)
	}
}

func TestValidateSaxpyZeroIterations(t *testing.T) {
	cfg := config(kernel.SAXPY, kernel.Scalar, 300, 0, 2)
	res, err := Run(cfg)
	require.NoError(t, err)

	_, y := Inputs(300)
	assert.Equal(t, Checksum(y), res.Checksum)
	assert.True(t, Validate(cfg, res, DefaultTolerance).OK)
}
