package xabbrev

import (
	"cmp"
	"context"
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/kaanatesel/pg-id/pkg/observability/xlog"
	"github.com/kaanatesel/pg-id/pkg/types/xmgid"
)

// KeyLen 代理键取自 mgid 的前导字节数（一个 64 位字）。
const KeyLen = 8

// =============================================================================
// State
// =============================================================================

// State 单次排序的缩写键估计状态。
//
// 两个状态：估计中（初始）和停止估计（终态，本次排序内不再离开）。
// 放弃缩写由排序驱动方执行，State 只给出判断。
// State 由一次排序独占，不是并发安全的。
type State struct {
	seen       int64
	estimating bool
	card       Estimator

	lastEstimate float64
	aborted      bool

	cfg     Config
	logger  xlog.Logger
	metrics *instruments
}

// Stats 估计状态快照。
type Stats struct {
	// Seen 已缩写的非空值数量
	Seen int64
	// Estimating 是否仍在估计基数
	Estimating bool
	// LastEstimate 最近一次判定时的基数估计，未判定过为 0
	LastEstimate float64
	// Aborted 是否曾返回放弃
	Aborted bool
}

// Begin 在排序开始时创建估计状态：seen=0，estimating=true，空估计器。
func Begin(opts ...Option) (*State, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}

	if err := o.config.Validate(); err != nil {
		return nil, err
	}

	card, err := o.newEstimator(o.config.Precision)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, ErrNilEstimator
	}

	m, err := newInstruments(o.meterProvider)
	if err != nil {
		return nil, fmt.Errorf("xabbrev: %w", err)
	}

	return &State{
		estimating: true,
		card:       card,
		cfg:        o.config,
		logger:     o.logger,
		metrics:    m,
	}, nil
}

// Abbreviate 把 id 转换为代理键，并把代理键送入基数估计。
//
// 代理键是前 8 字节按大端读成的 uint64，因此在任何平台上，代理键的无符号
// 比较都与这 8 字节的字节序比较一致。前 8 字节相同的不同 id 得到相同的代理键，
// 此时由 [xmgid.Compare] 做最终裁决。
func (s *State) Abbreviate(id xmgid.ID) uint64 {
	key := binary.BigEndian.Uint64(id[:KeyLen])
	s.seen++

	if s.estimating {
		fold := uint32(key) ^ uint32(key>>32)
		var buf [4]byte
		binary.BigEndian.PutUint32(buf[:], fold)
		s.card.InsertHash(xxhash.Sum64(buf[:]))
	}

	return key
}

// ShouldAbort 判断是否应放弃缩写键，memtupcount 为排序当前在内存中的行数。
//
// 行数或已缩写值数低于 MinRows、或已停止估计时总是返回 false。否则：
//   - 估计基数 > StopCardinality：停止估计（此后一直返回 false），返回 false
//   - 估计基数 < seen/RowsPerDistinct + Fudge：返回 true，驱动方应丢弃代理键，
//     对剩余和已完成的比较全部改用完整比较
//   - 其余情况返回 false，下次调用继续估计
//
// 我们不关注非缩写数据的基数，因为 mgid 的完整比较没有相等快速路径。
func (s *State) ShouldAbort(memtupcount int) bool {
	if memtupcount < s.cfg.MinRows || s.seen < int64(s.cfg.MinRows) || !s.estimating {
		return false
	}

	ctx := context.Background()
	card := s.card.Estimate()
	s.lastEstimate = card
	s.metrics.recordEstimate(ctx, card)

	// 超过 10 万个不同值时，即使排序数十亿行也大概率能回本，
	// 撤销这么多缩写的代价也不值得。不再计数。
	if card > s.cfg.StopCardinality {
		s.logger.Debug(ctx, "mgid_abbrev: estimation ends",
			xlog.Cardinality(card), xlog.Seen(s.seen), xlog.Rows(memtupcount))
		s.estimating = false
		s.metrics.recordStopped(ctx)
		return false
	}

	threshold := s.cfg.abortThreshold(s.seen)
	if card < threshold {
		s.logger.Debug(ctx, "mgid_abbrev: aborting abbreviation",
			xlog.Cardinality(card), xlog.Threshold(threshold),
			xlog.Seen(s.seen), xlog.Rows(memtupcount))
		s.aborted = true
		s.metrics.recordAbort(ctx)
		return true
	}

	s.logger.Debug(ctx, "mgid_abbrev: cardinality",
		xlog.Cardinality(card), xlog.Seen(s.seen), xlog.Rows(memtupcount))
	return false
}

// SeenCount 返回已缩写的值数量。
func (s *State) SeenCount() int64 { return s.seen }

// Estimating 报告是否仍在估计基数。
func (s *State) Estimating() bool { return s.estimating }

// Stats 返回当前状态快照。
func (s *State) Stats() Stats {
	return Stats{
		Seen:         s.seen,
		Estimating:   s.estimating,
		LastEstimate: s.lastEstimate,
		Aborted:      s.aborted,
	}
}

// =============================================================================
// 比较
// =============================================================================

// CompareAbbrev 代理键的无符号三路比较。
//
// 返回 0 不代表原值相等，驱动方必须再调用 [CompareFull]。
func CompareAbbrev(a, b uint64) int {
	return cmp.Compare(a, b)
}

// CompareFull 权威比较，等同于 [xmgid.Compare]。
func CompareFull(a, b xmgid.ID) int {
	return xmgid.Compare(a, b)
}
