package collection

// 顺序存储的线性表，容量固定
//
// data[0, length) 为有效元素，其余槽位的值没有意义，不可读取。
// 存满后不会扩容，插入返回 ErrFull。
//
// 零值可直接使用，容量为 DefaultCapacity
type ArrayList struct {
	data   []Elem
	length int
}

func NewArrayList(capacity int) *ArrayList {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &ArrayList{data: make([]Elem, capacity)}
}

func (l *ArrayList) lazyInit() {
	if l.data == nil {
		l.data = make([]Elem, DefaultCapacity)
	}
}

// O(1)
func (l *ArrayList) Init() {
	l.lazyInit()
	l.length = 0
}

// O(1)
func (l *ArrayList) IsEmpty() bool {
	return l.length == 0
}

// O(1) 仅重置长度，不擦除槽位
func (l *ArrayList) Clear() {
	l.length = 0
}

// O(1)
func (l *ArrayList) Length() int {
	return l.length
}

// O(1)
func (l *ArrayList) Capacity() int {
	if l.data == nil {
		return DefaultCapacity
	}
	return len(l.data)
}

// O(1)
func (l *ArrayList) Get(pos int) (Elem, error) {
	if l.length == 0 {
		return 0, ErrEmpty
	}
	if pos < 1 || pos > l.length {
		return 0, ErrOutOfRange
	}
	return l.data[pos-1], nil
}

// O(n)
func (l *ArrayList) Locate(e Elem) int {
	for i := 0; i < l.length; i++ {
		if l.data[i] == e {
			return i + 1
		}
	}
	return 0
}

// O(n-pos)
//
// 先校验位置，再校验容量：非法位置总是返回 ErrOutOfRange
func (l *ArrayList) Insert(pos int, e Elem) error {
	if pos < 1 || pos > l.length+1 {
		return ErrOutOfRange
	}
	l.lazyInit()
	if l.length == len(l.data) {
		return ErrFull
	}

	// 从表尾向前逐个后移，避免覆盖尚未移动的元素
	for i := l.length; i >= pos; i-- {
		l.data[i] = l.data[i-1]
	}
	l.data[pos-1] = e
	l.length++
	return nil
}

// O(n-pos)
func (l *ArrayList) Delete(pos int) (Elem, error) {
	if l.length == 0 {
		return 0, ErrEmpty
	}
	if pos < 1 || pos > l.length {
		return 0, ErrOutOfRange
	}

	out := l.data[pos-1]
	for i := pos; i < l.length; i++ {
		l.data[i-1] = l.data[i]
	}
	l.length--
	return out, nil
}

// O(n)
func (l *ArrayList) ToSlice() []Elem {
	out := make([]Elem, l.length)
	copy(out, l.data[:l.length])
	return out
}
