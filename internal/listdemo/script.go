package listdemo

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"linearlist/pkg/collection"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const (
	OpInsert = "insert"
	OpDelete = "delete"
	OpGet    = "get"
	OpLocate = "locate"
	OpClear  = "clear"
	OpPrint  = "print"
	OpUnion  = "union"
)

// 脚本执行结果：各状态码出现的次数
type Report struct {
	Engine   string
	Steps    int
	Statuses map[string]int
}

func (r *Report) record(s collection.Status) {
	r.Steps++
	r.Statuses[s.String()]++
}

type scriptRunner struct {
	list    collection.List
	newList func() (collection.List, error)
	w       io.Writer
	last    collection.Elem
	report  *Report
}

// 依次对 l 执行脚本中的调用
//
// 线性表返回的非 OK 状态是正常结果，只记录不中断；
// 未知操作或输出失败时返回错误。newList 用于创建 union 的 B 表
func RunScript(ctx context.Context, engine string, l collection.List, newList func() (collection.List, error), steps []Step, w io.Writer) (*Report, error) {
	r := &scriptRunner{
		list:    l,
		newList: newList,
		w:       w,
		report:  &Report{Engine: engine, Statuses: map[string]int{}},
	}

	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			return r.report, errors.WithStack(err)
		}
		status, err := r.exec(step)
		if err != nil {
			return r.report, errors.Wrapf(err, "step %d (%s)", i+1, step.Op)
		}
		r.report.record(status)

		evt := log.Debug()
		if status != collection.StatusOK {
			evt = log.Warn()
		}
		evt.Str("engine", engine).
			Int("step", i+1).
			Str("op", step.Op).
			Int("pos", step.Pos).
			Int32("value", step.Value).
			Str("status", status.String()).
			Int("length", l.Length()).
			Msg("script step")
	}
	return r.report, nil
}

func (r *scriptRunner) exec(step Step) (collection.Status, error) {
	l := r.list
	switch strings.ToLower(step.Op) {
	case OpInsert:
		return collection.StatusOf(l.Insert(step.Pos, step.Value)), nil

	case OpDelete:
		e, err := l.Delete(step.Pos)
		if err == nil {
			r.last = e
		}
		return collection.StatusOf(err), nil

	case OpGet:
		e, err := l.Get(step.Pos)
		if err != nil {
			return collection.StatusOf(err), nil
		}
		r.last = e
		_, werr := fmt.Fprintf(r.w, "GetElem(%d) = %d\n", step.Pos, e)
		return collection.StatusOK, errors.WithStack(werr)

	case OpLocate:
		_, err := fmt.Fprintf(r.w, "LocateElem(%d) = %d\n", step.Value, l.Locate(step.Value))
		return collection.StatusOK, errors.WithStack(err)

	case OpClear:
		l.Clear()
		return collection.StatusOK, nil

	case OpPrint:
		if step.Label != "" {
			label := strings.ReplaceAll(step.Label, "{elem}", strconv.Itoa(int(r.last)))
			if _, err := fmt.Fprintln(r.w, label); err != nil {
				return collection.StatusOK, errors.WithStack(err)
			}
		}
		return collection.StatusOK, Display(r.w, l)

	case OpUnion:
		b, err := r.newList()
		if err != nil {
			return collection.StatusError, err
		}
		for _, v := range step.Values {
			if err := b.Insert(b.Length()+1, v); err != nil {
				return collection.StatusOf(err), nil
			}
		}
		return collection.StatusOf(collection.Union(l, b)), nil

	default:
		return collection.StatusError, errors.Errorf("unknown op %q", step.Op)
	}
}
