package xabbrev

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// =============================================================================
// 默认阈值
// =============================================================================

const (
	// DefaultMinRows 做出判定前要求的最小行数和最小已缩写值数。
	DefaultMinRows = 10000

	// DefaultStopCardinality 基数估计超过此值后停止估计，且永不放弃缩写。
	DefaultStopCardinality = 100000.0

	// DefaultRowsPerDistinct 目标最小基数：每 2000 个非空输入至少 1 个不同值。
	DefaultRowsPerDistinct = 2000.0

	// DefaultFudge 下限阈值的 0.5 行修正，前 2000 行只有一个缩写值时也能尽早放弃。
	DefaultFudge = 0.5

	// DefaultPrecision HyperLogLog 精度（寄存器数 2^14，标准误差约 0.8%）。
	DefaultPrecision uint8 = 14

	minPrecision uint8 = 4
	maxPrecision uint8 = 18
)

// Config 缩写键放弃判定的阈值配置。
//
// 阈值与草图的误差特性相关；替换估计器实现时可通过配置重新校准。
type Config struct {
	// MinRows 内存行数和已缩写值数都达到此值后才开始判定
	MinRows int `koanf:"min_rows"`
	// StopCardinality 估计基数超过此值时停止估计
	StopCardinality float64 `koanf:"stop_cardinality"`
	// RowsPerDistinct 放弃阈值 = seen/RowsPerDistinct + Fudge
	RowsPerDistinct float64 `koanf:"rows_per_distinct"`
	// Fudge 放弃阈值的常数修正
	Fudge float64 `koanf:"fudge"`
	// Precision 默认 HyperLogLog 估计器的精度，范围 [4,18]
	Precision uint8 `koanf:"precision"`
}

// DefaultConfig 返回默认阈值。
func DefaultConfig() Config {
	return Config{
		MinRows:         DefaultMinRows,
		StopCardinality: DefaultStopCardinality,
		RowsPerDistinct: DefaultRowsPerDistinct,
		Fudge:           DefaultFudge,
		Precision:       DefaultPrecision,
	}
}

// Validate 校验配置。
func (c Config) Validate() error {
	switch {
	case c.MinRows < 0:
		return fmt.Errorf("%w: min_rows must be non-negative, got %d", ErrInvalidConfig, c.MinRows)
	case c.StopCardinality <= 0:
		return fmt.Errorf("%w: stop_cardinality must be positive, got %g", ErrInvalidConfig, c.StopCardinality)
	case c.RowsPerDistinct <= 0:
		return fmt.Errorf("%w: rows_per_distinct must be positive, got %g", ErrInvalidConfig, c.RowsPerDistinct)
	case c.Fudge < 0:
		return fmt.Errorf("%w: fudge must be non-negative, got %g", ErrInvalidConfig, c.Fudge)
	case c.Precision < minPrecision || c.Precision > maxPrecision:
		return fmt.Errorf("%w: precision must be in [%d,%d], got %d",
			ErrInvalidConfig, minPrecision, maxPrecision, c.Precision)
	}
	return nil
}

// abortThreshold 返回 seen 个输入下的最小可接受基数。
func (c Config) abortThreshold(seen int64) float64 {
	return float64(seen)/c.RowsPerDistinct + c.Fudge
}

// =============================================================================
// 加载
// =============================================================================

// Format 配置数据格式。
type Format string

// 支持的配置格式。
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// LoadConfig 从 YAML/JSON 数据加载配置。
//
// path 为配置所在的键路径（如 "abbrev"），为空时读取根。
// 缺失的键保留默认值；结果会经过 Validate。空数据返回默认配置。
func LoadConfig(data []byte, format Format, path string) (Config, error) {
	var parser koanf.Parser
	switch format {
	case FormatYAML:
		parser = yaml.Parser()
	case FormatJSON:
		parser = json.Parser()
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	cfg := DefaultConfig()
	if len(data) == 0 {
		return cfg, nil
	}

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrParseFailed, err)
	}
	if err := k.UnmarshalWithConf(path, &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrUnmarshalFailed, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile 从文件加载配置，根据扩展名（.yaml/.yml/.json）识别格式。
func LoadConfigFile(filename, path string) (Config, error) {
	var format Format
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".yaml", ".yml":
		format = FormatYAML
	case ".json":
		format = FormatJSON
	default:
		return Config{}, fmt.Errorf("%w: unknown extension %q", ErrUnsupportedFormat, ext)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("xabbrev: read config: %w", err)
	}
	return LoadConfig(data, format, path)
}
