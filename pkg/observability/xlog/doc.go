// Package xlog 基于 log/slog 的结构化日志。
//
// # 创建 Logger
//
// 使用 Builder 模式，配置错误在 [Builder.Build] 时统一返回：
//
//	logger, cleanup, err := xlog.New().
//	    SetLevelString("debug").
//	    SetFormat("json").
//	    SetRotation("/var/log/mgidctl.log").
//	    Build()
//	if err != nil {
//	    return err
//	}
//	defer cleanup()
//
// [Builder.SetRotation] 把输出切换到 lumberjack 按大小轮转的文件，
// cleanup 负责关闭文件，可重复调用。
//
// # 日志级别
//
// LevelDebug(-4)、LevelInfo(0)、LevelWarn(4)、LevelError(8)。
// [ParseLevel] 从字符串解析；Level 实现 encoding.TextUnmarshaler，可直接由 koanf 解码。
// [Leveler] 支持运行时调整级别，派生 logger 共享父级的 LevelVar。
//
// # 便捷属性
//
// [Err]、[Component]、[MGID]、[Cardinality]、[Threshold]、[Seen]、[Rows]。
//
// # Discard
//
// 库代码以 [Logger] 接收可选的诊断输出，未配置时使用 [Discard]。
package xlog
