package collection

import (
	"errors"
	"fmt"
)

var (
	ErrEmpty      = fmt.Errorf("list is empty")
	ErrOutOfRange = fmt.Errorf("position out of range")
	ErrFull       = fmt.Errorf("list is full")
	ErrSystem     = fmt.Errorf("node allocation failed")
)

type Status int8

const (
	StatusOK          Status = 0
	StatusError       Status = 1
	StatusEmpty       Status = 2
	StatusFull        Status = 3
	StatusOutOfRange  Status = 4
	StatusSystemError Status = 5
)

var statusNames = map[Status]string{
	StatusOK:          "OK",
	StatusError:       "ERROR",
	StatusEmpty:       "EMPTY",
	StatusFull:        "FULL",
	StatusOutOfRange:  "OUT_OF_RANGE",
	StatusSystemError: "SYSERR",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return statusNames[StatusError]
}

// 将操作返回的 error 转换为状态码
//
// nil 为 StatusOK，无法识别的错误为 StatusError
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, ErrEmpty):
		return StatusEmpty
	case errors.Is(err, ErrOutOfRange):
		return StatusOutOfRange
	case errors.Is(err, ErrFull):
		return StatusFull
	case errors.Is(err, ErrSystem):
		return StatusSystemError
	default:
		return StatusError
	}
}
