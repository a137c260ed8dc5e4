package xmgid

import (
	"bytes"
	"fmt"
)

// Compare 按无符号字节序（下标 0 为最高位）比较 a 和 b。
//
// 返回 -1、0 或 +1。这是 mgid 的权威全序，B-tree 等有序索引、
// 以及排序加速在代理键相同时的回退比较都以它为准。
func Compare(a, b ID) int {
	return bytes.Compare(a[:], b[:])
}

// Compare 是 [Compare] 的方法形式。
func (id ID) Compare(other ID) int {
	return Compare(id, other)
}

// Equal 报告 id == other。
func (id ID) Equal(other ID) bool { return id == other }

// Less 报告 id < other。
func (id ID) Less(other ID) bool { return Compare(id, other) < 0 }

// LessOrEqual 报告 id <= other。
func (id ID) LessOrEqual(other ID) bool { return Compare(id, other) <= 0 }

// Greater 报告 id > other。
func (id ID) Greater(other ID) bool { return Compare(id, other) > 0 }

// GreaterOrEqual 报告 id >= other。
func (id ID) GreaterOrEqual(other ID) bool { return Compare(id, other) >= 0 }

// =============================================================================
// 运算符
// =============================================================================

// Op 宿主数据库暴露的比较运算符。
type Op string

// 支持的运算符。
const (
	OpEq Op = "="
	OpNe Op = "<>"
	OpLt Op = "<"
	OpGt Op = ">"
	OpLe Op = "<="
	OpGe Op = ">="
)

// ParseOp 解析运算符字面量，"!=" 视为 "<>" 的别名。
func ParseOp(s string) (Op, error) {
	switch op := Op(s); op {
	case OpEq, OpNe, OpLt, OpGt, OpLe, OpGe:
		return op, nil
	case "!=":
		return OpNe, nil
	default:
		return "", fmt.Errorf("xmgid: unknown operator %q", s)
	}
}

// Apply 对 a、b 求值运算符。未知运算符返回 false。
func (op Op) Apply(a, b ID) bool {
	c := Compare(a, b)
	switch op {
	case OpEq:
		return c == 0
	case OpNe:
		return c != 0
	case OpLt:
		return c < 0
	case OpGt:
		return c > 0
	case OpLe:
		return c <= 0
	case OpGe:
		return c >= 0
	default:
		return false
	}
}
