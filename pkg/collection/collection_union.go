package collection

// 将 b 中存在而 a 中不存在的元素依次追加到 a 的末尾
//
// 只使用 List 的公开操作。插入失败（如 ErrFull）时立即停止并返回该错误，
// 已追加的元素保留，不回滚。
//
// O(len(a)*len(b))
func Union(a, b List) error {
	n := b.Length()
	for i := 1; i <= n; i++ {
		e, err := b.Get(i)
		if err != nil {
			return err
		}
		if a.Locate(e) != 0 {
			continue
		}
		if err := a.Insert(a.Length()+1, e); err != nil {
			return err
		}
	}
	return nil
}
