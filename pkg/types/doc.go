// Package types 提供数据库扩展类型的 Go 实现。
//
// 子包列表：
//   - xmgid: 12 字节 ObjectId 风格标识符，文本/线格式编解码、比较、哈希、字段提取
package types
