// Package sort 提供外部排序相关的加速组件。
//
// 子包列表：
//   - xabbrev: mgid 缩写键与基于基数估计的放弃判定
package sort
