package list

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSimpleIteration(t *testing.T) {
	t.Run("empty list", func(t *testing.T) {
		l := NewList[int]()
		it := NewIterator(l)
		for it.Next() {
			t.Fatal("no cycle for empty list")
		}
		require.False(t, it.Valid())
	})

	t.Run("step iteration", func(t *testing.T) {
		l := newIntList(1, 2, 3)
		it := NewIterator(l)
		require.False(t, it.Valid())
		require.True(t, it.Next())
		require.True(t, it.Valid())
		require.Equal(t, 1, it.Current().Value)
		require.True(t, it.Next())
		require.Equal(t, 2, it.Current().Value)
		require.True(t, it.Next())
		require.Equal(t, 3, it.Current().Value)
		require.False(t, it.Next())
		require.False(t, it.Valid())
	})

	t.Run("consume iteration", func(t *testing.T) {
		testCases := [][]int{
			{1},
			{1, 2, 3},
			{4, 3, 2, 1},
		}
		for _, tc := range testCases {
			l := newIntList(tc...)
			it := NewIterator(l)
			result := []int{}

			for it.Next() {
				result = append(result, it.Current().Value)
				_, err := l.RemoveNode(it.Current())
				require.NoError(t, err)
			}

			require.Equal(t, 0, l.Len())
			require.Equal(t, tc, result)
			requireValidList(t, l)
		}
	})

	t.Run("odd consume iteration", func(t *testing.T) {
		source := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
		expect := []int{1, 3, 5, 7, 9}
		l := newIntList(source...)
		it := l.Iterator()
		result := []int{}
		visited := []int{}
		for it.Next() {
			visited = append(visited, it.Current().Value)
			if it.Current().Value%2 == 1 {
				result = append(result, it.Current().Value)
				_, err := l.RemoveNode(it.Current())
				require.NoError(t, err)
			}
		}
		require.Equal(t, expect, result)
		require.Equal(t, source, visited)
		require.Equal(t, []int{2, 4, 6, 8, 10}, l.Values())
		requireValidList(t, l)
	})

	t.Run("exhausted", func(t *testing.T) {
		l := newIntList(1, 2)
		it := l.Iterator()
		for it.Next() {
		}
		for i := 0; i < 4; i++ {
			require.False(t, it.Next(), "call %d", i)
			require.False(t, it.Valid(), "call %d", i)
			require.Nil(t, it.Current())
		}

		l.Append(3)
		require.False(t, it.Next())
	})

	t.Run("exhausted empty list", func(t *testing.T) {
		l := NewList[int]()
		it := l.Iterator()
		require.False(t, it.Next())
		l.Append(1)
		require.False(t, it.Next())
		require.False(t, it.Valid())
	})

	t.Run("clean", func(t *testing.T) {
		l := newIntList(1, 2, 3)
		it := l.Iterator()
		require.True(t, it.Next())
		require.Equal(t, 1, it.Current().Value)
		l.RemoveAll()
		require.False(t, it.Next())
		l.Append(4)
		require.False(t, it.Next())
	})
}
