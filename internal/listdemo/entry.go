package listdemo

import (
	"context"
	"fmt"
	"io"

	"linearlist/pkg/collection"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const banner = "========================"

// 对配置中的每个引擎执行脚本，未配置脚本时执行内置示例
func Run(ctx context.Context, c *Config, w io.Writer) ([]*Report, error) {
	reports := []*Report{}
	for _, engine := range c.Engines() {
		newList := func() (collection.List, error) {
			return NewList(engine, c)
		}
		l, err := newList()
		if err != nil {
			return reports, err
		}

		steps := c.Script
		if len(steps) == 0 {
			steps = ExampleScript(engine, c.Union)
		}

		if _, err := fmt.Fprintf(w, "%s\nin %s example:\n", banner, engine); err != nil {
			return reports, errors.WithStack(err)
		}

		report, err := RunScript(ctx, engine, l, newList, steps, w)
		if err != nil {
			return reports, errors.Wrapf(err, "run %s script", engine)
		}
		reports = append(reports, report)

		log.Info().
			Str("engine", engine).
			Int("steps", report.Steps).
			Any("statuses", report.Statuses).
			Int("length", l.Length()).
			Msg("script finished")
	}
	return reports, nil
}
