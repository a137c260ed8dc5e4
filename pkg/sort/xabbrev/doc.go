// Package xabbrev 为 mgid 的外部排序提供缩写键（abbreviated key）加速。
//
// 排序驱动方为每个值取一个 8 字节的代理键，先用廉价的无符号整数比较排序，
// 代理键相同时再用完整的 12 字节比较裁决。代理键只是前缀投影，
// 重复前缀过多时大部分比较都会落到完整比较，缩写反而成为负担。
// xabbrev 用 HyperLogLog 估计代理键的基数，判断是否值得继续。
//
// # 生命周期
//
//	st, err := xabbrev.Begin()            // 排序开始
//	key := st.Abbreviate(id)              // 每个非空值一次
//	if st.ShouldAbort(memtupcount) {      // 驱动方定期询问
//	    // 丢弃代理键，剩余和已缩写的比较全部改用 xabbrev.CompareFull
//	}
//	// 排序结束时直接丢弃 st
//
// # 判定规则
//
// 行数和已缩写值数都不足 MinRows（默认 10000）时不做判定。之后：
//
//	估计基数 > 100000                 停止估计，不放弃
//	估计基数 < seen/2000 + 0.5        放弃缩写
//	其他                              继续估计
//
// 阈值可通过 [Config] 调整（[LoadConfig] 支持 YAML/JSON）。
//
// 放弃只影响性能，不影响结果正确性：最终次序总由完整比较决定。
//
// # 可观测性
//
// [WithLogger] 接收可选的诊断输出；[WithMeterProvider] 上报放弃次数、
// 停止估计次数和基数估计分布。
package xabbrev
