package collection

// 节点引用：nodes 的下标加 1，0 表示空
type nodeRef int

const nilRef nodeRef = 0

type linkedNode struct {
	value Elem
	next  nodeRef
	alive bool
}

// 链表节点的分配器
//
// 节点按下标存放在切片中，释放的槽位进入空闲栈并被优先复用。
// limit > 0 时，存活节点数达到 limit 后分配失败
type nodeArena struct {
	nodes []linkedNode
	free  []nodeRef
	limit int
	live  int
}

// O(1) 均摊
func (a *nodeArena) alloc(value Elem) (nodeRef, error) {
	if a.limit > 0 && a.live >= a.limit {
		return nilRef, ErrSystem
	}

	var ref nodeRef
	if n := len(a.free); n > 0 {
		ref = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		a.nodes = append(a.nodes, linkedNode{})
		ref = nodeRef(len(a.nodes))
	}

	a.nodes[ref-1] = linkedNode{value: value, alive: true}
	a.live++
	return ref, nil
}

// O(1)
func (a *nodeArena) release(ref nodeRef) {
	n := a.node(ref)
	if !n.alive {
		panic("collection: double release of list node")
	}
	*n = linkedNode{}
	a.free = append(a.free, ref)
	a.live--
}

func (a *nodeArena) node(ref nodeRef) *linkedNode {
	return &a.nodes[ref-1]
}
