package flows

import "fmt"

// SchemaViolation 表示输入或输出未通过结构校验，携带出错字段路径
// 校验失败只向调用方传播，绝不静默修正
type SchemaViolation struct {
	Path   string
	Reason string
}

func (e *SchemaViolation) Error() string {
	return fmt.Sprintf("schema violation at %s: %s", e.Path, e.Reason)
}

// UpstreamError 表示生成模型不可达或调用出错，超时按同类处理
// 本层不重试，也不伪造降级文案
type UpstreamError struct {
	Err     error
	Timeout bool
}

func (e *UpstreamError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("upstream timeout: %v", e.Err)
	}
	return fmt.Sprintf("upstream unavailable: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
