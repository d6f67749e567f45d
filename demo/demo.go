// Package demo runs every factorial variant and reports each outcome as a JSON line.
//
// Variants that recurse on the Go stack run in a child process with a capped
// stack, since a stack overflow is fatal to the whole process.
package demo

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"os"
	"os/exec"
	"runtime/debug"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/go-leo/tailcall/factorial"
	"github.com/go-leo/tailcall/trampoline"
)

const (
	// ChildEnv selects the variant a child process runs, as "<variant>:<n>:<max-stack>".
	ChildEnv = "TAILCALL_CHILD"

	DefaultN        = 100000
	DefaultMaxStack = 1 << 20
)

const (
	VariantNaive         = "naive"
	VariantTailRecursive = "tail_recursive"
	VariantThunked       = "thunked"
	VariantTrampolined   = "trampolined"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Config configures Run.
type Config struct {
	// N is the factorial argument.
	N int64
	// Recursive also runs the stack-bound variants in a child process.
	Recursive bool
	// MaxStack caps the child's stack in bytes.
	MaxStack int
	Logger   *slog.Logger
}

// Report is the outcome of one variant.
type Report struct {
	Variant string `json:"variant"`
	N       int64  `json:"n"`
	Digits  int    `json:"digits,omitempty"`
	Bounces int    `json:"bounces,omitempty"`
	OK      bool   `json:"ok"`
	Error   string `json:"error,omitempty"`
}

// Run writes one Report per variant to w.
func Run(ctx context.Context, w io.Writer, cfg Config) error {
	if cfg.MaxStack <= 0 {
		cfg.MaxStack = DefaultMaxStack
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	var reports []Report
	if cfg.Recursive {
		for _, variant := range []string{VariantNaive, VariantTailRecursive} {
			reports = append(reports, runChild(ctx, variant, cfg))
		}
	}
	reports = append(reports, runThunked(cfg.N), runTrampolined(ctx, cfg))

	enc := json.NewEncoder(w)
	for _, report := range reports {
		cfg.Logger.Info("variant finished",
			slog.String("variant", report.Variant),
			slog.Int64("n", report.N),
			slog.Bool("ok", report.OK),
		)
		if err := enc.Encode(report); err != nil {
			return err
		}
	}
	return nil
}

func runThunked(n int64) Report {
	result, err := factorial.Thunked(n)
	return newReport(VariantThunked, n, result, err)
}

func runTrampolined(ctx context.Context, cfg Config) Report {
	var bounces int
	result, err := factorial.Trampolined(cfg.N,
		trampoline.Context(ctx),
		trampoline.Logger(cfg.Logger),
		trampoline.WithObserver(func(_ trampoline.State, b int) {
			bounces = b
		}),
	)
	report := newReport(VariantTrampolined, cfg.N, result, err)
	report.Bounces = bounces
	return report
}

func runChild(ctx context.Context, variant string, cfg Config) Report {
	exe, err := os.Executable()
	if err != nil {
		return newReport(variant, cfg.N, nil, err)
	}
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, exe)
	cmd.Env = append(os.Environ(), fmt.Sprintf("%s=%s:%d:%d", ChildEnv, variant, cfg.N, cfg.MaxStack))
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); strings.Contains(msg, "stack overflow") {
			err = ErrStackOverflow
		} else if msg != "" {
			err = fmt.Errorf("%w: %s", err, msg)
		}
		cfg.Logger.Debug("child failed", slog.String("variant", variant), slog.Any("error", err))
		return newReport(variant, cfg.N, nil, err)
	}
	var report Report
	if err := json.Unmarshal(stdout.Bytes(), &report); err != nil {
		return newReport(variant, cfg.N, nil, err)
	}
	return report
}

// ServeChild runs the variant named by ChildEnv and exits.
// It returns without doing anything when ChildEnv is unset.
func ServeChild() {
	spec, ok := os.LookupEnv(ChildEnv)
	if !ok {
		return
	}
	report, err := child(spec)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := json.NewEncoder(os.Stdout).Encode(report); err != nil {
		os.Exit(2)
	}
	os.Exit(0)
}

func child(spec string) (Report, error) {
	parts := strings.Split(spec, ":")
	if len(parts) != 3 {
		return Report{}, fmt.Errorf("%w: %q", ErrChildSpec, spec)
	}
	n, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return Report{}, fmt.Errorf("%w: %v", ErrChildSpec, err)
	}
	maxStack, err := strconv.Atoi(parts[2])
	if err != nil {
		return Report{}, fmt.Errorf("%w: %v", ErrChildSpec, err)
	}
	var f func(int64) (*big.Int, error)
	switch parts[0] {
	case VariantNaive:
		f = factorial.Naive
	case VariantTailRecursive:
		f = factorial.TailRecursive
	default:
		return Report{}, fmt.Errorf("%w: unknown variant %q", ErrChildSpec, parts[0])
	}
	debug.SetMaxStack(maxStack)
	result, err := f(n)
	return newReport(parts[0], n, result, err), nil
}

func newReport(variant string, n int64, result *big.Int, err error) Report {
	report := Report{Variant: variant, N: n, OK: err == nil}
	if err != nil {
		report.Error = err.Error()
		return report
	}
	report.Digits = len(result.Text(10))
	return report
}
