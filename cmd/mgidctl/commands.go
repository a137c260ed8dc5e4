package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/kaanatesel/pg-id/pkg/observability/xlog"
	"github.com/kaanatesel/pg-id/pkg/sort/xabbrev"
	"github.com/kaanatesel/pg-id/pkg/types/xmgid"
)

// defaultCheckpoint abbrev 命令每读入多少行询问一次 ShouldAbort。
const defaultCheckpoint = 1000

// 创建所有子命令。
func createCommands() []*cli.Command {
	cmds := []*cli.Command{
		createParseCommand(),
		createFormatCommand(),
		createWireCommand(),
		createFieldsCommand(),
		createHashCommand(),
		createCompareCommand(),
		createAbbrevCommand(),
	}
	for _, c := range cmds {
		c.OnUsageError = onUsageError
	}
	return cmds
}

// =============================================================================
// 编解码
// =============================================================================

func createParseCommand() *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Usage:     "校验 mgid 文本并输出规范形式（小写）",
		ArgsUsage: "<text>...",
		Action: func(_ context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) == 0 {
				return newUsageError("parse: 需要至少一个 mgid")
			}
			w := cmd.Root().Writer
			for _, arg := range args {
				id, err := xmgid.Parse(arg)
				if err != nil {
					return err
				}
				fmt.Fprintln(w, id)
			}
			return nil
		},
	}
}

func createFormatCommand() *cli.Command {
	return &cli.Command{
		Name:      "format",
		Usage:     "读取线格式（连续的 12 字节记录）并逐条输出文本形式",
		ArgsUsage: "[file]",
		Action: func(_ context.Context, cmd *cli.Command) error {
			in, closeIn, err := openInput(cmd)
			if err != nil {
				return err
			}
			defer closeIn()
			return cmdFormat(in, cmd.Root().Writer)
		},
	}
}

// cmdFormat 读取线格式记录直到输入结束。记录边界上的 EOF 是正常结束。
func cmdFormat(r io.Reader, w io.Writer) error {
	br := bufio.NewReader(r)
	for n := 0; ; n++ {
		id, err := xmgid.ReadWire(br)
		if err != nil {
			var pe *xmgid.ParseError
			if errors.As(err, &pe) && pe.Kind == xmgid.KindTruncated && pe.Input == "" {
				return nil
			}
			return fmt.Errorf("record %d: %w", n, err)
		}
		fmt.Fprintln(w, id)
	}
}

func createWireCommand() *cli.Command {
	return &cli.Command{
		Name:      "wire",
		Usage:     "输出 12 字节线格式",
		ArgsUsage: "<text>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "hex",
				Usage: "以空格分隔的十六进制字节输出，便于阅读",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			id, err := parseSingleArg(cmd, "wire")
			if err != nil {
				return err
			}
			w := cmd.Root().Writer
			if cmd.Bool("hex") {
				_, err = fmt.Fprintf(w, "% x\n", id.WireBytes())
				return err
			}
			return id.WriteWire(w)
		},
	}
}

// =============================================================================
// 字段、哈希、比较
// =============================================================================

func createFieldsCommand() *cli.Command {
	return &cli.Command{
		Name:      "fields",
		Usage:     "输出时间戳、进程唯一段、计数器的十六进制视图",
		ArgsUsage: "<text>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "以 JSON 输出",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			id, err := parseSingleArg(cmd, "fields")
			if err != nil {
				return err
			}
			parts := id.Decompose()
			w := cmd.Root().Writer
			if cmd.Bool("json") {
				return json.NewEncoder(w).Encode(parts)
			}
			fmt.Fprintf(w, "timestamp:      %s\n", parts.Timestamp)
			fmt.Fprintf(w, "process_unique: %s\n", parts.ProcessUnique)
			fmt.Fprintf(w, "counter:        %s\n", parts.Counter)
			return nil
		},
	}
}

func createHashCommand() *cli.Command {
	return &cli.Command{
		Name:      "hash",
		Usage:     "输出 32 位哈希与带种子的 64 位哈希",
		ArgsUsage: "<text>",
		Flags: []cli.Flag{
			&cli.Int64Flag{
				Name:  "seed",
				Usage: "HashExtended 的种子",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			id, err := parseSingleArg(cmd, "hash")
			if err != nil {
				return err
			}
			seed := cmd.Int64("seed")
			w := cmd.Root().Writer
			fmt.Fprintf(w, "hash:          %d\n", id.Hash())
			fmt.Fprintf(w, "hash_extended: %d (seed %d)\n", id.HashExtended(seed), seed)
			return nil
		},
	}
}

func createCompareCommand() *cli.Command {
	return &cli.Command{
		Name:      "compare",
		Usage:     "比较两个 mgid；不带运算符时输出 -1/0/1，带运算符时输出 true/false",
		ArgsUsage: "<a> [= | <> | != | < | > | <= | >=] <b>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			return cmdCompare(cmd.Args().Slice(), cmd.Root().Writer)
		},
	}
}

func cmdCompare(args []string, w io.Writer) error {
	var aText, bText, opText string
	switch len(args) {
	case 2:
		aText, bText = args[0], args[1]
	case 3:
		aText, opText, bText = args[0], args[1], args[2]
	default:
		return newUsageError("compare: 需要 2 或 3 个参数，得到 %d 个", len(args))
	}

	a, err := xmgid.Parse(aText)
	if err != nil {
		return err
	}
	b, err := xmgid.Parse(bText)
	if err != nil {
		return err
	}

	if opText == "" {
		fmt.Fprintln(w, xmgid.Compare(a, b))
		return nil
	}

	op, err := xmgid.ParseOp(opText)
	if err != nil {
		return &usageError{msg: err.Error()}
	}
	ok := op.Apply(a, b)
	fmt.Fprintln(w, ok)
	if !ok {
		return &exitError{code: 1}
	}
	return nil
}

// =============================================================================
// 缩写键
// =============================================================================

func createAbbrevCommand() *cli.Command {
	return &cli.Command{
		Name:  "abbrev",
		Usage: "逐行读取 mgid，模拟缩写键排序并报告是否放弃缩写",
		Description: `输入每行一个 mgid 文本，空行忽略。每读入 --checkpoint 行询问一次是否放弃缩写，
放弃后剩余行不再计算代理键，最终排序全部使用完整比较。
--sort 时输出排序结果，否则输出统计信息。`,
		ArgsUsage: "[file]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "阈值配置文件 (.yaml/.yml/.json)",
			},
			&cli.StringFlag{
				Name:  "config-path",
				Usage: "配置文件内的键路径（如 abbrev），为空时读取根",
			},
			&cli.IntFlag{
				Name:  "checkpoint",
				Usage: "每读入多少行询问一次 ShouldAbort",
				Value: defaultCheckpoint,
			},
			&cli.BoolFlag{
				Name:  "sort",
				Usage: "输出排序后的 mgid",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			checkpoint := cmd.Int("checkpoint")
			if checkpoint <= 0 {
				return newUsageError("abbrev: --checkpoint 必须为正数，得到 %d", checkpoint)
			}

			cfg := xabbrev.DefaultConfig()
			if path := cmd.String("config"); path != "" {
				var err error
				if cfg, err = xabbrev.LoadConfigFile(path, cmd.String("config-path")); err != nil {
					return err
				}
			}

			logger, cleanup, err := newLogger(cmd)
			if err != nil {
				return &usageError{msg: err.Error()}
			}
			defer func() { _ = cleanup() }()

			in, closeIn, err := openInput(cmd)
			if err != nil {
				return err
			}
			defer closeIn()

			res, err := cmdAbbrev(ctx, in, cfg, checkpoint, logger.With(xlog.Component("mgidctl")))
			if err != nil {
				return err
			}

			w := cmd.Root().Writer
			if cmd.Bool("sort") {
				for _, id := range res.sorted {
					fmt.Fprintln(w, id)
				}
				return nil
			}
			printAbbrevStats(w, res)
			return nil
		},
	}
}

// abbrevResult abbrev 命令的结果。
type abbrevResult struct {
	rows        int
	abortedAt   int
	stats       xabbrev.Stats
	sorted      []xmgid.ID
	abbreviated bool
}

// row 排序中的一行：代理键与原值。
type row struct {
	key uint64
	id  xmgid.ID
}

// cmdAbbrev 扮演排序驱动方：读取、缩写、定期询问、排序。
func cmdAbbrev(ctx context.Context, r io.Reader, cfg xabbrev.Config, checkpoint int, logger xlog.Logger) (abbrevResult, error) {
	st, err := xabbrev.Begin(xabbrev.WithConfig(cfg), xabbrev.WithLogger(logger))
	if err != nil {
		return abbrevResult{}, err
	}

	var rows []row
	abbrev := true
	abortedAt := 0

	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		if err := ctx.Err(); err != nil {
			return abbrevResult{}, err
		}
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		id, err := xmgid.Parse(text)
		if err != nil {
			return abbrevResult{}, fmt.Errorf("line %d: %w", line, err)
		}

		rw := row{id: id}
		if abbrev {
			rw.key = st.Abbreviate(id)
		}
		rows = append(rows, rw)

		if abbrev && len(rows)%checkpoint == 0 && st.ShouldAbort(len(rows)) {
			abbrev = false
			abortedAt = len(rows)
			logger.Info(ctx, "abbreviated keys abandoned", xlog.Rows(len(rows)), xlog.Seen(st.SeenCount()))
		}
	}
	if err := sc.Err(); err != nil {
		return abbrevResult{}, fmt.Errorf("read input: %w", err)
	}

	if abbrev {
		slices.SortFunc(rows, func(a, b row) int {
			if c := xabbrev.CompareAbbrev(a.key, b.key); c != 0 {
				return c
			}
			return xabbrev.CompareFull(a.id, b.id)
		})
	} else {
		slices.SortFunc(rows, func(a, b row) int {
			return xabbrev.CompareFull(a.id, b.id)
		})
	}

	sorted := make([]xmgid.ID, len(rows))
	for i, rw := range rows {
		sorted[i] = rw.id
	}

	stats := st.Stats()
	logger.Debug(ctx, "sort finished", xlog.Rows(len(rows)), xlog.Seen(stats.Seen),
		xlog.Cardinality(stats.LastEstimate))

	return abbrevResult{
		rows:        len(rows),
		abortedAt:   abortedAt,
		stats:       stats,
		sorted:      sorted,
		abbreviated: abbrev,
	}, nil
}

func printAbbrevStats(w io.Writer, res abbrevResult) {
	fmt.Fprintf(w, "rows:        %d\n", res.rows)
	fmt.Fprintf(w, "seen:        %d\n", res.stats.Seen)
	fmt.Fprintf(w, "estimating:  %t\n", res.stats.Estimating)
	fmt.Fprintf(w, "cardinality: %.0f\n", res.stats.LastEstimate)
	if res.abbreviated {
		fmt.Fprintln(w, "abbreviated: true")
		return
	}
	fmt.Fprintf(w, "abbreviated: false (abandoned at row %d)\n", res.abortedAt)
}

// =============================================================================
// 辅助函数
// =============================================================================

// parseSingleArg 要求恰好一个参数并解析为 mgid。
func parseSingleArg(cmd *cli.Command, name string) (xmgid.ID, error) {
	if cmd.Args().Len() != 1 {
		return xmgid.Nil, newUsageError("%s: 需要恰好一个 mgid，得到 %d 个参数", name, cmd.Args().Len())
	}
	return xmgid.Parse(cmd.Args().First())
}

// openInput 打开第一个参数指定的文件；无参数或参数为 "-" 时使用 stdin。
func openInput(cmd *cli.Command) (io.Reader, func(), error) {
	switch cmd.Args().Len() {
	case 0:
		return cmd.Root().Reader, func() {}, nil
	case 1:
	default:
		return nil, nil, newUsageError("%s: 最多一个输入文件", cmd.Name)
	}

	name := cmd.Args().First()
	if name == "-" {
		return cmd.Root().Reader, func() {}, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}

// newLogger 根据全局 flag 构建 logger。
func newLogger(cmd *cli.Command) (xlog.LoggerWithLevel, func() error, error) {
	b := xlog.New().
		SetOutput(cmd.Root().ErrWriter).
		SetLevelString(cmd.String("log-level")).
		SetFormat(cmd.String("log-format"))
	if file := cmd.String("log-file"); file != "" {
		b = b.SetRotation(file)
	}
	return b.Build()
}
