// Package xmgid 定义 mgid：12 字节、定长、按字节序有序的标识符类型，
// 用作数据库列类型。字节布局与 MongoDB ObjectId 相同。
//
// # 字节布局
//
//	[0,4)   时间戳前缀
//	[4,9)   进程唯一段
//	[9,12)  计数器段
//
// 三个分段对 Codec/比较/哈希是不透明的，仅 [ID.Decompose] 等字段视图按此切分。
// 本包不生成 ID。
//
// # 外部形式
//
//   - 文本：恰好 24 个十六进制字符，输入大小写不敏感，输出小写
//   - 线格式：原始 12 字节，无长度前缀（帧由传输层负责）
//
// 解析失败只有两类错误，均为 [*ParseError]：
//
//	id, err := xmgid.Parse("0102030405060708090a0b0c")
//	if errors.Is(err, xmgid.ErrMalformed) {
//	    // 长度不对或含非十六进制字符
//	}
//	id, err = xmgid.DecodeWire(buf)
//	if errors.Is(err, xmgid.ErrTruncated) {
//	    // 缓冲区不足 12 字节
//	}
//
// # 比较与哈希
//
// [Compare] 按无符号字节序定义严格全序；[Op] 提供宿主侧的
// =, <>, <, >, <=, >= 运算符。[ID.Hash] 和 [ID.HashExtended] 基于 xxhash，
// 跨进程稳定，可用于持久化哈希索引。
//
// # 并发
//
// ID 是值类型，所有函数和方法都是纯函数，无需同步即可并发调用。
package xmgid
