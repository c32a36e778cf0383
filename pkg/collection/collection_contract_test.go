package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 两种实现共用的线性表契约测试
var engines = []struct {
	Name string
	New  func() List
}{
	{Name: "array", New: func() List { return NewArrayList(DefaultCapacity) }},
	{Name: "linked", New: func() List { return NewLinkedList() }},
}

func fill(t *testing.T, l List, vals ...Elem) {
	t.Helper()
	for _, v := range vals {
		require.NoError(t, l.Insert(l.Length()+1, v))
	}
}

func TestListScenario(t *testing.T) {
	for _, eng := range engines {
		t.Run(eng.Name, func(t *testing.T) {
			l := eng.New()
			l.Init()
			require.NoError(t, l.Insert(1, 10))
			require.NoError(t, l.Insert(2, 20))
			require.NoError(t, l.Insert(3, 30))
			assert.Equal(t, 3, l.Length())

			e, err := l.Get(2)
			require.NoError(t, err)
			assert.Equal(t, Elem(20), e)

			e, err = l.Delete(2)
			require.NoError(t, err)
			assert.Equal(t, Elem(20), e)
			assert.Equal(t, 2, l.Length())

			e, err = l.Get(2)
			require.NoError(t, err)
			assert.Equal(t, Elem(30), e)
		})
	}
}

func TestListInsertShifts(t *testing.T) {
	tcs := []struct {
		Pos  int
		Want []Elem
	}{
		{Pos: 1, Want: []Elem{99, 1, 2, 3, 4}},
		{Pos: 2, Want: []Elem{1, 99, 2, 3, 4}},
		{Pos: 4, Want: []Elem{1, 2, 3, 99, 4}},
		{Pos: 5, Want: []Elem{1, 2, 3, 4, 99}},
	}

	for _, eng := range engines {
		for _, tc := range tcs {
			l := eng.New()
			fill(t, l, 1, 2, 3, 4)
			require.NoError(t, l.Insert(tc.Pos, 99), eng.Name)

			assert.Equal(t, tc.Want, l.ToSlice(), eng.Name)
			assert.Equal(t, 5, l.Length(), eng.Name)
			got, err := l.Get(tc.Pos)
			require.NoError(t, err, eng.Name)
			assert.Equal(t, Elem(99), got, eng.Name)
		}
	}
}

func TestListDeleteShifts(t *testing.T) {
	tcs := []struct {
		Pos     int
		Removed Elem
		Want    []Elem
	}{
		{Pos: 1, Removed: 1, Want: []Elem{2, 3, 4}},
		{Pos: 2, Removed: 2, Want: []Elem{1, 3, 4}},
		{Pos: 4, Removed: 4, Want: []Elem{1, 2, 3}},
	}

	for _, eng := range engines {
		for _, tc := range tcs {
			l := eng.New()
			fill(t, l, 1, 2, 3, 4)
			e, err := l.Delete(tc.Pos)
			require.NoError(t, err, eng.Name)

			assert.Equal(t, tc.Removed, e, eng.Name)
			assert.Equal(t, tc.Want, l.ToSlice(), eng.Name)
			assert.Equal(t, 3, l.Length(), eng.Name)
		}
	}
}

func TestListBoundaryRejection(t *testing.T) {
	for _, eng := range engines {
		t.Run(eng.Name, func(t *testing.T) {
			l := eng.New()
			fill(t, l, 10, 20, 30)
			before := l.ToSlice()

			_, err := l.Get(0)
			assert.ErrorIs(t, err, ErrOutOfRange)
			_, err = l.Get(4)
			assert.ErrorIs(t, err, ErrOutOfRange)
			_, err = l.Get(-1)
			assert.ErrorIs(t, err, ErrOutOfRange)

			assert.ErrorIs(t, l.Insert(0, 1), ErrOutOfRange)
			assert.ErrorIs(t, l.Insert(5, 1), ErrOutOfRange)

			_, err = l.Delete(0)
			assert.ErrorIs(t, err, ErrOutOfRange)
			_, err = l.Delete(4)
			assert.ErrorIs(t, err, ErrOutOfRange)

			assert.Equal(t, before, l.ToSlice())
			assert.Equal(t, 3, l.Length())
		})
	}
}

func TestListEmpty(t *testing.T) {
	for _, eng := range engines {
		t.Run(eng.Name, func(t *testing.T) {
			l := eng.New()
			assert.True(t, l.IsEmpty())
			assert.Equal(t, 0, l.Length())

			_, err := l.Get(1)
			assert.ErrorIs(t, err, ErrEmpty)
			_, err = l.Get(0)
			assert.ErrorIs(t, err, ErrEmpty)
			_, err = l.Delete(1)
			assert.ErrorIs(t, err, ErrEmpty)
			assert.Equal(t, 0, l.Locate(10))
			assert.Empty(t, l.ToSlice())

			// 空表只能在位置 1 插入
			assert.ErrorIs(t, l.Insert(2, 10), ErrOutOfRange)
			require.NoError(t, l.Insert(1, 10))
			assert.False(t, l.IsEmpty())

			e, err := l.Delete(1)
			require.NoError(t, err)
			assert.Equal(t, Elem(10), e)
			assert.True(t, l.IsEmpty())
		})
	}
}

func TestListLocate(t *testing.T) {
	tcs := []struct {
		Elem Elem
		Pos  int
	}{
		{Elem: 5, Pos: 1},
		{Elem: 7, Pos: 2},
		{Elem: 9, Pos: 4},
		{Elem: 1, Pos: 6},
		{Elem: 42, Pos: 0},
		{Elem: -5, Pos: 0},
	}

	for _, eng := range engines {
		l := eng.New()
		// 7 出现两次，返回最小位置
		fill(t, l, 5, 7, 3, 9, 7, 1)
		for _, tc := range tcs {
			assert.Equal(t, tc.Pos, l.Locate(tc.Elem), "%s locate %d", eng.Name, tc.Elem)
		}
	}
}

func TestListClearIdempotent(t *testing.T) {
	for _, eng := range engines {
		t.Run(eng.Name, func(t *testing.T) {
			l := eng.New()
			fill(t, l, 1, 2, 3)

			l.Clear()
			assert.Equal(t, 0, l.Length())
			l.Clear()
			assert.Equal(t, 0, l.Length())
			assert.True(t, l.IsEmpty())

			require.NoError(t, l.Insert(1, 8))
			assert.Equal(t, []Elem{8}, l.ToSlice())
			assert.ErrorIs(t, l.Insert(3, 9), ErrOutOfRange)
			assert.Equal(t, 0, l.Locate(2))
		})
	}
}

func TestListLengthInvariant(t *testing.T) {
	for _, eng := range engines {
		t.Run(eng.Name, func(t *testing.T) {
			l := eng.New()
			want := []Elem{}
			ops := []struct {
				Insert bool
				Pos    int
				Value  Elem
			}{
				{Insert: true, Pos: 1, Value: 3},
				{Insert: true, Pos: 1, Value: 1},
				{Insert: true, Pos: 2, Value: 2},
				{Insert: true, Pos: 4, Value: 4},
				{Insert: false, Pos: 2},
				{Insert: true, Pos: 3, Value: 5},
				{Insert: false, Pos: 1},
				{Insert: false, Pos: 3},
			}

			for _, op := range ops {
				before := l.Length()
				if op.Insert {
					require.NoError(t, l.Insert(op.Pos, op.Value))
					assert.Equal(t, before+1, l.Length())
					want = append(want[:op.Pos-1], append([]Elem{op.Value}, want[op.Pos-1:]...)...)
				} else {
					e, err := l.Delete(op.Pos)
					require.NoError(t, err)
					assert.Equal(t, before-1, l.Length())
					assert.Equal(t, want[op.Pos-1], e)
					want = append(want[:op.Pos-1], want[op.Pos:]...)
				}
				assert.Equal(t, want, l.ToSlice())
			}
		})
	}
}

func BenchmarkArrayListInsertFront(b *testing.B) {
	l := NewArrayList(1024)
	for i := 0; i < b.N; i++ {
		if l.Length() == l.Capacity() {
			l.Clear()
		}
		_ = l.Insert(1, Elem(i))
	}
}

func BenchmarkLinkedListInsertFront(b *testing.B) {
	l := NewLinkedList()
	for i := 0; i < b.N; i++ {
		if l.Length() == 1024 {
			l.Clear()
		}
		_ = l.Insert(1, Elem(i))
	}
}
