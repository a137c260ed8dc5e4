package xmgid

import (
	"errors"
	"io"
)

// =============================================================================
// 十六进制映射
// =============================================================================

const hexDigits = "0123456789abcdef"

// invalidNibble 标记 hexValues 中的非十六进制字符。
const invalidNibble = 0xff

// hexValues ASCII 字符到半字节值的映射，大小写不敏感。
var hexValues = func() [256]byte {
	var t [256]byte
	for i := range t {
		t[i] = invalidNibble
	}
	for i := byte(0); i < 10; i++ {
		t['0'+i] = i
	}
	for i := byte(0); i < 6; i++ {
		t['a'+i] = 10 + i
		t['A'+i] = 10 + i
	}
	return t
}()

// appendHex 以小写十六进制追加 src，每字节先高半字节后低半字节。
func appendHex(dst, src []byte) []byte {
	for _, b := range src {
		dst = append(dst, hexDigits[b>>4], hexDigits[b&0x0f])
	}
	return dst
}

// =============================================================================
// 文本形式
// =============================================================================

// Parse 解析 24 个十六进制字符的文本形式，大小写不敏感。
//
// 长度不等于 24、包含非十六进制字符（含内嵌 NUL）时返回 [*ParseError]，
// 类别为 [KindMalformed]，Input 为原始文本。
func Parse(s string) (ID, error) {
	var id ID
	if len(s) != TextLen {
		return Nil, newParseError(KindMalformed, s)
	}
	for i := range Len {
		hi := hexValues[s[2*i]]
		lo := hexValues[s[2*i+1]]
		if hi == invalidNibble || lo == invalidNibble {
			return Nil, newParseError(KindMalformed, s)
		}
		id[i] = hi<<4 | lo
	}
	return id, nil
}

// ParseBytes 与 Parse 相同，但接受字节切片输入。
func ParseBytes(b []byte) (ID, error) {
	return Parse(string(b))
}

// MustParse 与 Parse 相同，但失败时 panic。适用于常量和测试数据。
func MustParse(s string) ID {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}

// String 返回 24 个小写十六进制字符。
func (id ID) String() string {
	var buf [TextLen]byte
	return string(appendHex(buf[:0], id[:]))
}

// AppendHex 将文本形式追加到 dst 并返回扩展后的切片。
func (id ID) AppendHex(dst []byte) []byte {
	return appendHex(dst, id[:])
}

// =============================================================================
// 线格式
// =============================================================================

// WireBytes 返回线格式：原始 12 字节，无长度前缀。
func (id ID) WireBytes() []byte {
	b := make([]byte, Len)
	copy(b, id[:])
	return b
}

// AppendWire 将线格式追加到 dst。
func (id ID) AppendWire(dst []byte) []byte {
	return append(dst, id[:]...)
}

// DecodeWire 从 src 头部读取 12 字节线格式。
//
// src 可以更长（例如消息缓冲区中后续还有其他字段），只消费前 Len 字节。
// 不足 Len 字节时返回 [KindTruncated] 类别的 [*ParseError]。
func DecodeWire(src []byte) (ID, error) {
	if len(src) < Len {
		return Nil, newParseError(KindTruncated, string(src))
	}
	var id ID
	copy(id[:], src[:Len])
	return id, nil
}

// ReadWire 从 r 中恰好读取 12 字节。
//
// 流在读满之前结束时返回 [KindTruncated]；其他 I/O 错误原样返回。
func ReadWire(r io.Reader) (ID, error) {
	var id ID
	n, err := io.ReadFull(r, id[:])
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return Nil, newParseError(KindTruncated, string(id[:n]))
		}
		return Nil, err
	}
	return id, nil
}

// WriteWire 将线格式写入 w。
func (id ID) WriteWire(w io.Writer) error {
	_, err := w.Write(id[:])
	return err
}
