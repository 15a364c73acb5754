package errors

import (
	stderrors "errors"
	"fmt"
)

// LoadError 表示从管理器拉取/解码节点数据失败, Errno 为管理器返回的数字状态码,
// Detail 为管理器侧解析出的文本.
type LoadError struct {
	Errno    int32
	Detail   string
	NotFound bool
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load node data: %s (errno %d)", e.Detail, e.Errno)
}

// ValidationError 表示请求在本地就被拦下, 没有产生任何对管理器的流量.
type ValidationError struct {
	Detail string
}

func (e *ValidationError) Error() string {
	return e.Detail
}

// UpdateError 表示管理器拒绝了一次节点更新.
type UpdateError struct {
	Errno  int32
	Detail string
}

func (e *UpdateError) Error() string {
	return fmt.Sprintf("update node: %s (errno %d)", e.Detail, e.Errno)
}

func NewLoad(errno int32, detail string) *LoadError {
	return &LoadError{Errno: errno, Detail: detail}
}

// NewNotFound 构造"查无此节点/集群"形态的 LoadError.
func NewNotFound(errno int32, detail string) *LoadError {
	return &LoadError{Errno: errno, Detail: detail, NotFound: true}
}

func NewValidation(format string, args ...interface{}) *ValidationError {
	if len(args) > 0 {
		return &ValidationError{Detail: fmt.Sprintf(format, args...)}
	}
	return &ValidationError{Detail: format}
}

func NewUpdate(errno int32, detail string) *UpdateError {
	return &UpdateError{Errno: errno, Detail: detail}
}

// 谓词对包装过的错误链同样生效.

func IsLoad(err error) bool {
	var e *LoadError
	return stderrors.As(err, &e)
}

func IsNotFound(err error) bool {
	var e *LoadError
	return stderrors.As(err, &e) && e.NotFound
}

func IsValidation(err error) bool {
	var e *ValidationError
	return stderrors.As(err, &e)
}

func IsUpdate(err error) bool {
	var e *UpdateError
	return stderrors.As(err, &e)
}
