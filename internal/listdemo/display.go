package listdemo

import (
	"fmt"
	"io"
	"strings"

	"linearlist/pkg/collection"

	"github.com/pkg/errors"
)

// 打印线性表，只读不修改
//
//	List length: [3]
//	List elements: 10 20 30
func Display(w io.Writer, l collection.List) error {
	n := l.Length()

	var sb strings.Builder
	fmt.Fprintf(&sb, "List length: [%d]\n", n)
	sb.WriteString("List elements: ")
	for i := 1; i <= n; i++ {
		e, err := l.Get(i)
		if err != nil {
			return errors.Wrapf(err, "read position %d of %d", i, n)
		}
		fmt.Fprintf(&sb, "%d ", e)
	}
	sb.WriteString("\n")

	_, err := io.WriteString(w, sb.String())
	return errors.WithStack(err)
}
