package xmgid

import (
	"errors"
	"fmt"
)

// =============================================================================
// 字节布局常量
// =============================================================================

const (
	// Len mgid 的固定字节长度。
	Len = 12

	// TextLen 文本形式（十六进制）的固定字符长度。
	TextLen = Len * 2

	// TimestampLen 时间戳前缀长度，对应字节区间 [0,4)。
	TimestampLen = 4

	// ProcessUniqueLen 进程唯一段长度，对应字节区间 [4,9)。
	ProcessUniqueLen = 5

	// CounterLen 计数器段长度，对应字节区间 [9,12)。
	CounterLen = 3
)

const (
	processUniqueOffset = TimestampLen
	counterOffset       = TimestampLen + ProcessUniqueLen
)

// 三个分段长度之和必须等于 Len，否则数组长度为负，编译失败。
var _ [Len - (TimestampLen + ProcessUniqueLen + CounterLen)]struct{}
var _ [(TimestampLen + ProcessUniqueLen + CounterLen) - Len]struct{}

// =============================================================================
// ID 类型
// =============================================================================

// ID 12 字节的有序标识符，字节布局与 MongoDB ObjectId 相同。
//
// ID 是值类型，可直接比较（==）和拷贝，构造后不可变。
// 所有方法都是纯函数，可被任意数量的 goroutine 并发调用。
type ID [Len]byte

// Nil 全零 ID。
var Nil ID

// IsZero 报告 id 是否为全零。
func (id ID) IsZero() bool {
	return id == Nil
}

// FromBytes 从恰好 Len 字节的切片构造 ID。
//
// 长度不足返回 [ErrTruncated]，超出返回 [ErrMalformed]。
func FromBytes(b []byte) (ID, error) {
	switch {
	case len(b) < Len:
		return Nil, newParseError(KindTruncated, string(b))
	case len(b) > Len:
		return Nil, newParseError(KindMalformed, string(b))
	}
	var id ID
	copy(id[:], b)
	return id, nil
}

// =============================================================================
// 错误定义
// =============================================================================

var (
	// ErrMalformed 文本或二进制输入格式错误（长度不符、非十六进制字符、内嵌 NUL）。
	ErrMalformed = errors.New("xmgid: malformed input")

	// ErrTruncated 线格式输入不足 Len 字节。
	ErrTruncated = errors.New("xmgid: truncated input")
)

// Kind 解析错误类别。
type Kind int

const (
	// KindMalformed 格式错误。
	KindMalformed Kind = iota + 1
	// KindTruncated 输入被截断。
	KindTruncated
)

// String 返回类别名称。
func (k Kind) String() string {
	switch k {
	case KindMalformed:
		return "malformed-input"
	case KindTruncated:
		return "truncated-input"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseError 解析或解码失败时返回的错误，携带原始输入用于诊断。
//
// 可通过 errors.Is(err, ErrMalformed) / errors.Is(err, ErrTruncated) 判断类别。
type ParseError struct {
	Kind  Kind
	Input string
}

func newParseError(kind Kind, input string) *ParseError {
	return &ParseError{Kind: kind, Input: input}
}

// Error 实现 error 接口。
func (e *ParseError) Error() string {
	if e.Kind == KindTruncated {
		return fmt.Sprintf("xmgid: insufficient data for type mgid: need %d bytes, got %d", Len, len(e.Input))
	}
	return fmt.Sprintf("xmgid: invalid input syntax for type mgid: %q", e.Input)
}

// Unwrap 返回类别对应的哨兵错误，使 errors.Is 能够按类别匹配。
func (e *ParseError) Unwrap() error {
	if e.Kind == KindTruncated {
		return ErrTruncated
	}
	return ErrMalformed
}
