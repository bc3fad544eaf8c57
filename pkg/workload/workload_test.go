package workload

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/x448/float16"
)

func TestGenerate(t *testing.T) {
	t.Run("Zero", func(t *testing.T) {
		v, err := Generate(Zero, 1<<10, 1)
		require.NoError(t, err)
		require.Len(t, v, 1<<10)
		for _, f := range v {
			require.Zero(t, f)
		}
	})

	t.Run("Ramp", func(t *testing.T) {
		v, err := Generate(Ramp, 8, 0)
		require.NoError(t, err)
		require.Equal(t, []float32{0, 1, 2, 3, 4, 5, 6, 7}, v)
	})

	t.Run("RandomIsDeterministic", func(t *testing.T) {
		a, err := Generate(Random, 100, 42)
		require.NoError(t, err)
		b, err := Generate(Random, 100, 42)
		require.NoError(t, err)
		require.Equal(t, a, b)

		c, err := Generate(Random, 100, 43)
		require.NoError(t, err)
		require.NotEqual(t, a, c)

		for _, f := range a {
			require.GreaterOrEqual(t, f, float32(-1))
			require.Less(t, f, float32(1))
		}
	})

	t.Run("HalfIsOnGrid", func(t *testing.T) {
		v, err := Generate(Half, 256, 9)
		require.NoError(t, err)
		for _, f := range v {
			require.Equal(t, f, float16.Fromfloat32(f).Float32())
		}
	})

	t.Run("Errors", func(t *testing.T) {
		_, err := Generate("gaussian", 8, 0)
		require.Error(t, err)
		_, err = Generate(Zero, -1, 0)
		require.Error(t, err)
	})
}

func TestPair(t *testing.T) {
	xs, ys, err := Pair(Random, 64, 5)
	require.NoError(t, err)
	require.Len(t, xs, 64)
	require.Len(t, ys, 64)
	require.NotEqual(t, xs, ys)

	xs, ys, err = Pair(Ramp, 16, 5)
	require.NoError(t, err)
	require.Equal(t, xs, ys)
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds {
		got, err := ParseKind(string(k))
		require.NoError(t, err)
		require.Equal(t, k, got)
	}
	_, err := ParseKind("ZERO")
	require.Error(t, err)
}
