package xlog

import (
	"log/slog"
)

// =============================================================================
// 常用属性 Key 常量
// =============================================================================

const (
	// KeyError 错误字段
	KeyError = "error"

	// KeyComponent 组件名称字段
	KeyComponent = "component"

	// KeyMGID mgid 文本字段
	KeyMGID = "mgid"

	// KeyCardinality 基数估计值字段
	KeyCardinality = "cardinality"

	// KeyThreshold 判定阈值字段
	KeyThreshold = "threshold"

	// KeySeen 已缩写的非空值数量字段
	KeySeen = "seen"

	// KeyRows 内存中行数字段
	KeyRows = "rows"
)

// =============================================================================
// 便捷属性构造函数
// =============================================================================

// Err 创建错误属性，err 为 nil 时返回空属性（会被 slog 忽略）。
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}

// Component 创建组件名属性
func Component(name string) slog.Attr {
	return slog.String(KeyComponent, name)
}

// MGID 创建 mgid 属性，接受任意 fmt.Stringer（如 xmgid.ID）。
func MGID(id interface{ String() string }) slog.Attr {
	return slog.String(KeyMGID, id.String())
}

// Cardinality 创建基数估计属性
func Cardinality(v float64) slog.Attr {
	return slog.Float64(KeyCardinality, v)
}

// Threshold 创建阈值属性
func Threshold(v float64) slog.Attr {
	return slog.Float64(KeyThreshold, v)
}

// Seen 创建已处理值数量属性
func Seen(n int64) slog.Attr {
	return slog.Int64(KeySeen, n)
}

// Rows 创建内存行数属性
func Rows(n int) slog.Attr {
	return slog.Int(KeyRows, n)
}
