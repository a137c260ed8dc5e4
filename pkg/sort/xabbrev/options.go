package xabbrev

import (
	"go.opentelemetry.io/otel/metric"

	"github.com/kaanatesel/pg-id/pkg/observability/xlog"
)

// options 内部配置结构
type options struct {
	config        Config
	logger        xlog.Logger
	meterProvider metric.MeterProvider
	newEstimator  EstimatorFactory
}

// Option 配置选项函数
type Option func(*options)

func defaultOptions() *options {
	return &options{
		config:       DefaultConfig(),
		logger:       xlog.Discard(),
		newEstimator: NewHyperLogLog,
	}
}

// WithConfig 设置判定阈值。配置在 Begin 中校验。
func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.config = cfg
	}
}

// WithLogger 设置诊断输出。
//
// 三个判定点（停止估计、放弃、继续）以 Debug 级别记录基数、阈值和计数。
// 未设置时不输出。
func WithLogger(logger xlog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMeterProvider 设置 OTel MeterProvider，默认使用全局 provider。
func WithMeterProvider(provider metric.MeterProvider) Option {
	return func(o *options) {
		if provider != nil {
			o.meterProvider = provider
		}
	}
}

// WithEstimator 替换基数估计器实现，默认为 [NewHyperLogLog]。
func WithEstimator(factory EstimatorFactory) Option {
	return func(o *options) {
		if factory != nil {
			o.newEstimator = factory
		}
	}
}
