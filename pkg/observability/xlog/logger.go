package xlog

import (
	"context"
	"log/slog"
	"time"
)

// 编译时接口检查
var (
	_ LoggerWithLevel = (*xlogger)(nil)
	_ Logger          = discard{}
)

// xlogger Logger 接口的实现
type xlogger struct {
	handler  slog.Handler
	levelVar *slog.LevelVar
}

func (l *xlogger) log(ctx context.Context, level slog.Level, msg string, attrs []slog.Attr) {
	if ctx == nil {
		ctx = context.Background()
	}
	if !l.handler.Enabled(ctx, level) {
		return
	}
	r := slog.NewRecord(time.Now(), level, msg, 0)
	r.AddAttrs(attrs...)
	// 日志写入失败不向调用方扩散
	_ = l.handler.Handle(ctx, r)
}

// Debug 记录 Debug 级别日志
func (l *xlogger) Debug(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, slog.LevelDebug, msg, attrs)
}

// Info 记录 Info 级别日志
func (l *xlogger) Info(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, slog.LevelInfo, msg, attrs)
}

// Warn 记录 Warn 级别日志
func (l *xlogger) Warn(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, slog.LevelWarn, msg, attrs)
}

// Error 记录 Error 级别日志
func (l *xlogger) Error(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, slog.LevelError, msg, attrs)
}

// With 返回带额外属性的派生 Logger
func (l *xlogger) With(attrs ...slog.Attr) Logger {
	if len(attrs) == 0 {
		return l
	}
	return &xlogger{
		handler:  l.handler.WithAttrs(attrs),
		levelVar: l.levelVar,
	}
}

// SetLevel 动态设置日志级别
func (l *xlogger) SetLevel(level Level) {
	l.levelVar.Set(slog.Level(level))
}

// GetLevel 获取当前日志级别
func (l *xlogger) GetLevel() Level {
	return Level(l.levelVar.Level())
}

// Enabled 检查指定级别是否启用
func (l *xlogger) Enabled(ctx context.Context, level Level) bool {
	if ctx == nil {
		ctx = context.Background()
	}
	return l.handler.Enabled(ctx, slog.Level(level))
}

// =============================================================================
// Discard
// =============================================================================

// discard 丢弃所有日志。
type discard struct{}

// Discard 返回丢弃所有输出的 Logger，用作未配置诊断输出时的默认值。
func Discard() Logger { return discard{} }

func (discard) Debug(context.Context, string, ...slog.Attr) {}
func (discard) Info(context.Context, string, ...slog.Attr)  {}
func (discard) Warn(context.Context, string, ...slog.Attr)  {}
func (discard) Error(context.Context, string, ...slog.Attr) {}
func (d discard) With(...slog.Attr) Logger                  { return d }
