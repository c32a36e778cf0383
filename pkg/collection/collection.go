package collection

// 线性表元素类型：固定宽度的有符号整数
type Elem = int32

// ArrayList 未指定容量时使用的默认容量
const DefaultCapacity = 20

type Collection interface {
	Length() int
	IsEmpty() bool
	Clear()
}

// 按位置访问的线性表，位置从 1 开始
//
// 位置 1 为第一个元素，位置 Length() 为最后一个元素，
// Length()+1 是唯一合法的尾部插入位置
type List interface {
	Collection

	// 重置为空表
	Init()
	// 返回第 pos 个元素
	Get(pos int) (Elem, error)
	// 返回第一个等于 e 的元素的位置，不存在时返回 0
	Locate(e Elem) int
	// 在第 pos 个位置插入 e
	Insert(pos int, e Elem) error
	// 删除第 pos 个元素并返回其值
	Delete(pos int) (Elem, error)
	// 按顺序返回所有元素的拷贝
	ToSlice() []Elem
}

var (
	_ List = (*ArrayList)(nil)
	_ List = (*LinkedList)(nil)
)
