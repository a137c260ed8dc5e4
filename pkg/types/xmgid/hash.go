package xmgid

import "github.com/cespare/xxhash/v2"

// Hash 返回 12 字节的 32 位哈希，用于哈希索引。
//
// 基于 xxhash64（种子 0）取低 32 位。xxhash 不带进程级随机盐，
// 同一 ID 在不同进程、不同机器上得到相同结果，可用于持久化索引。
func (id ID) Hash() uint32 {
	return uint32(xxhash.Sum64(id[:]))
}

// HashExtended 返回带调用方种子的 64 位哈希，用于可扩展哈希和双重哈希。
//
// 种子为 0 时低 32 位与 [ID.Hash] 相同。
func (id ID) HashExtended(seed int64) uint64 {
	if seed == 0 {
		return xxhash.Sum64(id[:])
	}
	d := xxhash.NewWithSeed(uint64(seed))
	_, _ = d.Write(id[:])
	return d.Sum64()
}
