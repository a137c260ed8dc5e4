package xabbrev

import "errors"

// 配置相关错误。加速器本身的运行路径没有错误：是否放弃缩写键是策略结果，以 bool 返回。
var (
	// ErrInvalidConfig 阈值配置无效。
	ErrInvalidConfig = errors.New("xabbrev: invalid config")

	// ErrUnsupportedFormat 不支持的配置格式。
	ErrUnsupportedFormat = errors.New("xabbrev: unsupported config format")

	// ErrParseFailed 配置解析失败。
	ErrParseFailed = errors.New("xabbrev: failed to parse config")

	// ErrUnmarshalFailed 配置反序列化失败。
	ErrUnmarshalFailed = errors.New("xabbrev: failed to unmarshal config")

	// ErrNilEstimator 估计器工厂返回 nil。
	ErrNilEstimator = errors.New("xabbrev: estimator factory returned nil")
)
