package collection

// 不带头结点的单链表
//
// head 指向第一个节点，从 head 出发恰好经过 length 个节点到达表尾。
// 由于没有头结点，位置 1 的插入和删除需要直接修改 head。
//
// 零值可直接使用，节点数量不受限制
type LinkedList struct {
	head   nodeRef
	length int
	arena  nodeArena
}

type LinkedListOption func(*LinkedList)

// 限制同时存活的节点数量，超出时 Insert 返回 ErrSystem。n <= 0 表示不限制
func WithNodeLimit(n int) LinkedListOption {
	return func(l *LinkedList) {
		if n > 0 {
			l.arena.limit = n
		}
	}
}

func NewLinkedList(opts ...LinkedListOption) *LinkedList {
	l := &LinkedList{}
	for _, opt := range opts {
		if opt != nil {
			opt(l)
		}
	}
	return l
}

// O(n) 释放已有节点后重置为空表
func (l *LinkedList) Init() {
	l.Clear()
}

// O(1)
func (l *LinkedList) IsEmpty() bool {
	return l.length == 0
}

// O(1)
func (l *LinkedList) Length() int {
	return l.length
}

// O(1)
func (l *LinkedList) NodeLimit() int {
	return l.arena.limit
}

// O(1) 当前存活的节点数，总是等于 Length()
func (l *LinkedList) Allocated() int {
	return l.arena.live
}

// O(n) 逐个释放节点
func (l *LinkedList) Clear() {
	released := 0
	for p := l.head; p != nilRef; {
		next := l.arena.node(p).next
		l.arena.release(p)
		p = next
		released++
	}
	if released != l.length {
		panic("collection: linked list length does not match its node chain")
	}
	l.head = nilRef
	l.length = 0
}

// 从 head 出发走 pos-1 步，返回第 pos 个节点。调用方保证 1 <= pos <= length
func (l *LinkedList) nodeAt(pos int) *linkedNode {
	p := l.head
	for i := 1; i < pos; i++ {
		p = l.arena.node(p).next
	}
	return l.arena.node(p)
}

// O(pos)
func (l *LinkedList) Get(pos int) (Elem, error) {
	if l.length == 0 {
		return 0, ErrEmpty
	}
	if pos < 1 || pos > l.length {
		return 0, ErrOutOfRange
	}
	return l.nodeAt(pos).value, nil
}

// O(n)
func (l *LinkedList) Locate(e Elem) int {
	pos := 1
	for p := l.head; p != nilRef; pos++ {
		n := l.arena.node(p)
		if n.value == e {
			return pos
		}
		p = n.next
	}
	return 0
}

// O(pos)
//
// 分配失败时返回 ErrSystem，链表保持不变
func (l *LinkedList) Insert(pos int, e Elem) error {
	if pos < 1 || pos > l.length+1 {
		return ErrOutOfRange
	}
	s, err := l.arena.alloc(e)
	if err != nil {
		return err
	}

	if pos == 1 {
		l.arena.node(s).next = l.head
		l.head = s
	} else {
		prev := l.nodeAt(pos - 1)
		l.arena.node(s).next = prev.next
		prev.next = s
	}
	l.length++
	return nil
}

// O(pos)
func (l *LinkedList) Delete(pos int) (Elem, error) {
	if l.length == 0 {
		return 0, ErrEmpty
	}
	if pos < 1 || pos > l.length {
		return 0, ErrOutOfRange
	}

	var q nodeRef
	if pos == 1 {
		q = l.head
		l.head = l.arena.node(q).next
	} else {
		prev := l.nodeAt(pos - 1)
		q = prev.next
		prev.next = l.arena.node(q).next
	}

	out := l.arena.node(q).value
	l.arena.release(q)
	l.length--
	return out, nil
}

// O(n)
func (l *LinkedList) ToSlice() []Elem {
	out := make([]Elem, 0, l.length)
	for p := l.head; p != nilRef; {
		n := l.arena.node(p)
		out = append(out, n.value)
		p = n.next
	}
	return out
}
