package xabbrev

import (
	"fmt"

	"github.com/axiomhq/hyperloglog"
)

// Estimator 概率性不同值计数器，内存有界。
//
// 输入是已经哈希过的 64 位值。实现无需并发安全：每次排序独占一个实例。
type Estimator interface {
	// InsertHash 记录一个已哈希的值
	InsertHash(hash uint64)
	// Estimate 返回当前不同值数量的估计
	Estimate() float64
}

// EstimatorFactory 为每次排序创建新的估计器。
type EstimatorFactory func(precision uint8) (Estimator, error)

// hllEstimator 基于 axiomhq/hyperloglog 的默认估计器。
type hllEstimator struct {
	sk *hyperloglog.Sketch
}

// NewHyperLogLog 创建指定精度的 HyperLogLog 估计器。
//
// 小基数时使用稀疏表示，估计接近精确值。
func NewHyperLogLog(precision uint8) (Estimator, error) {
	sk, err := hyperloglog.NewSketch(precision, true)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return &hllEstimator{sk: sk}, nil
}

func (e *hllEstimator) InsertHash(hash uint64) {
	e.sk.InsertHash(hash)
}

func (e *hllEstimator) Estimate() float64 {
	return float64(e.sk.Estimate())
}
