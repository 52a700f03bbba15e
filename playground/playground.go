// Package playground ties the translator and the sandbox together: it
// translates a snippet, runs it, and judges the output against an expected
// answer the way the challenge widget does.
package playground

import (
	"context"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2"
	"github.com/javaplay/javaplay/sandbox"
	"github.com/javaplay/javaplay/transpile"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("javaplay.playground")

// NoOutput is shown in place of an empty program output.
const NoOutput = "(No output)"

const defaultCacheSize = 256

// Outcome is the result of running a snippet. Error holds the text shown
// to the user, prefixed with "Error:", for both translation and runtime
// failures.
type Outcome struct {
	Output string `json:"output"`
	Error  string `json:"error,omitempty"`
}

// Failed reports whether translation or execution failed.
func (o Outcome) Failed() bool {
	return o.Error != ""
}

// Verdict is the judgement of a challenge attempt.
type Verdict struct {
	Passed   bool   `json:"passed"`
	Output   string `json:"output"`
	Expected string `json:"expected"`
	Error    string `json:"error,omitempty"`
}

type Option func(*Service)

// WithTimeout bounds each run. Zero means no limit.
func WithTimeout(d time.Duration) Option {
	return func(s *Service) {
		s.timeout = d
	}
}

// WithCacheSize sets how many translations are kept.
func WithCacheSize(n int) Option {
	return func(s *Service) {
		s.cacheSize = n
	}
}

// Service runs snippets. It is safe for concurrent use: each run gets its
// own runtime, and the translation cache is synchronised.
type Service struct {
	timeout   time.Duration
	cacheSize int
	cache     *lru.Cache[string, transpile.Result]
}

func NewService(opts ...Option) (*Service, error) {
	s := &Service{cacheSize: defaultCacheSize}
	for _, opt := range opts {
		opt(s)
	}
	cache, err := lru.New[string, transpile.Result](s.cacheSize)
	if err != nil {
		return nil, err
	}
	s.cache = cache
	return s, nil
}

// Translate returns the translation of source, from the cache when the same
// source was translated before.
func (s *Service) Translate(source string) transpile.Result {
	if res, ok := s.cache.Get(source); ok {
		return res
	}
	res := transpile.Translate(source)
	s.cache.Add(source, res)
	return res
}

// Execute translates and runs source. A translation failure is reported
// like a runtime error, with no output.
func (s *Service) Execute(ctx context.Context, source string) Outcome {
	tr := s.Translate(source)
	if !tr.OK() {
		log.Infof("translation failed: %v", tr.Err)
		return Outcome{Error: "Error: " + tr.Err.Error()}
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	res := sandbox.RunContext(ctx, tr.Code)
	out := Outcome{Output: res.Output}
	if res.Err != nil {
		out.Error = res.Err.Error()
	}
	return out
}

// Check runs source and compares its normalised output with the
// normalised expected answer. Any error fails the attempt and replaces the
// displayed output.
func (s *Service) Check(ctx context.Context, source, expected string) Verdict {
	out := s.Execute(ctx, source)
	got := Normalize(out.Output)
	want := NormalizeExpected(expected)

	v := Verdict{
		Passed:   !out.Failed() && got == want,
		Output:   got,
		Expected: want,
		Error:    out.Error,
	}
	switch {
	case out.Failed():
		v.Output = out.Error
	case v.Output == "":
		v.Output = NoOutput
	}
	log.Debugf("check passed=%t", v.Passed)
	return v
}

// Normalize converts CRLF line endings and trims surrounding whitespace.
func Normalize(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "\r\n", "\n"))
}

// NormalizeExpected is Normalize for expected answers, which are often
// written with literal `\n` escapes.
func NormalizeExpected(s string) string {
	return Normalize(strings.ReplaceAll(s, `\n`, "\n"))
}
