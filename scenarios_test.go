package slidekit_test

import (
	"testing"

	randomdata "github.com/Pallinder/go-randomdata"
	"github.com/stretchr/testify/require"

	"go.llib.dev/slidekit"
)

func TestFrom_EmptySequenceGiven_FirstCallSignalsExhaustion(t *testing.T) {
	t.Parallel()

	i := slidekit.From([]int{})

	require.False(t, i.Next())
	require.False(t, i.Next())
}

func TestFrom_SingleElementGiven_ElementReturnedWithAbsentSuffix(t *testing.T) {
	t.Parallel()

	i := slidekit.From([]int{1})

	require.True(t, i.Next())
	require.Equal(t, 1, i.Value())
	rest, ok := i.Rest()
	require.False(t, ok)
	require.Nil(t, rest)

	require.False(t, i.Next())
}

func TestFrom_TwoElementsGiven_SuffixPresentOnlyOnFirst(t *testing.T) {
	t.Parallel()

	i := slidekit.From([]int{1, 2})

	require.True(t, i.Next())
	require.Equal(t, 1, i.Value())
	rest, ok := i.Rest()
	require.True(t, ok)
	require.Equal(t, []int{2}, rest)

	require.True(t, i.Next())
	require.Equal(t, 2, i.Value())
	rest, ok = i.Rest()
	require.False(t, ok)
	require.Nil(t, rest)

	require.False(t, i.Next())
}

func TestFrom_TenElementsGiven_EachSuffixShrinksTowardsAbsence(t *testing.T) {
	t.Parallel()

	vs := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	i := slidekit.From(vs)

	for k := 1; k <= 10; k++ {
		require.True(t, i.Next())
		require.Equal(t, k, i.Value())
		require.Equal(t, 10-k, i.Len())

		rest, ok := i.Rest()
		if k < 10 {
			require.True(t, ok)
			require.Equal(t, vs[k:], rest)
			require.NotEmpty(t, rest)
		} else {
			require.False(t, ok)
			require.Nil(t, rest)
		}
	}

	require.False(t, i.Next())
}

func TestSlice_StringElementsGiven_SuffixSharesTheBackingStorage(t *testing.T) {
	t.Parallel()

	names := []string{
		randomdata.SillyName(),
		randomdata.SillyName(),
		randomdata.SillyName(),
	}

	i := slidekit.Slice[string](names).Slide()

	require.True(t, i.Next())
	require.Equal(t, names[0], i.Value())
	rest, ok := i.Rest()
	require.True(t, ok)
	require.Equal(t, names[1:], rest)
	require.Same(t, &names[1], &rest[0])
}
