// Package builder_test contains unit tests for the WeightFn implementations
// in the builder package, covering both correct behavior and panic conditions.
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/cyclespace/builder"
)

// TestWeightFnConstructors verifies that WeightFn constructors panic
// on invalid parameters according to their documented contracts.
func TestWeightFnConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		constructor func() builder.WeightFn
	}{
		{"ConstantWeightFn_zero", func() builder.WeightFn { return builder.ConstantWeightFn(0) }},
		{"ConstantWeightFn_negative", func() builder.WeightFn { return builder.ConstantWeightFn(-1) }},
		{"UniformWeightFn_minZero", func() builder.WeightFn { return builder.UniformWeightFn(0, 5) }},
		{"UniformWeightFn_maxLessThanMin", func() builder.WeightFn { return builder.UniformWeightFn(5, 4) }},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Panics(t, func() { tc.constructor() }, tc.name)
		})
	}
}

// TestWeightFnBehavior covers the runtime behavior of each WeightFn:
//   - ConstantWeightFn returns the fixed value.
//   - UniformWeightFn returns min on nil RNG and stays in [min,max] otherwise.
//   - DefaultWeightFn stays in [DefaultMinWeight, DefaultMaxWeight] and hits both ends.
func TestWeightFnBehavior(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))

	wfnConst := builder.ConstantWeightFn(7)
	assert.EqualValues(t, 7, wfnConst(nil))
	assert.EqualValues(t, 7, wfnConst(rng))

	wfnUni := builder.UniformWeightFn(3, 3)
	assert.EqualValues(t, 3, wfnUni(rng))
	assert.EqualValues(t, 3, builder.UniformWeightFn(3, 8)(nil))

	seen := map[int64]bool{}
	for i := 0; i < 2000; i++ {
		w := builder.DefaultWeightFn(rng)
		assert.GreaterOrEqual(t, w, builder.DefaultMinWeight)
		assert.LessOrEqual(t, w, builder.DefaultMaxWeight)
		seen[w] = true
	}
	assert.True(t, seen[builder.DefaultMinWeight], "min weight never drawn")
	assert.True(t, seen[builder.DefaultMaxWeight], "max weight never drawn")
}
