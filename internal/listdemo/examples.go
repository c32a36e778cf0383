package listdemo

// 内置示例：插入 5 个元素，删除第 3 个，在表头插入 21。
// 顺序表额外与 union 求并集，链表最后清空
func ExampleScript(engine string, union []int32) []Step {
	steps := []Step{
		{Op: OpPrint, Label: "before insert 5 elements:"},
	}
	for i := 1; i <= 5; i++ {
		steps = append(steps, Step{Op: OpInsert, Pos: i, Value: int32(i * 10)})
	}
	steps = append(steps,
		Step{Op: OpPrint, Label: "List after insert 5 elements:"},
		Step{Op: OpDelete, Pos: 3},
		Step{Op: OpPrint, Label: "List after delete element at pos 3 (elem={elem}):"},
		Step{Op: OpInsert, Pos: 1, Value: 21},
		Step{Op: OpPrint, Label: "List after insert 21 at pos 1 :"},
	)

	switch engine {
	case EngineArray:
		if len(union) > 0 {
			steps = append(steps,
				Step{Op: OpUnion, Values: union},
				Step{Op: OpPrint, Label: "After union:"},
			)
		}
	case EngineLinked:
		steps = append(steps, Step{Op: OpClear})
	}
	return steps
}
