package cli

import (
	"fmt"
	"strings"
	"time"
)

type printer interface {
	PrintSuccess(msg string, args ...any)
	PrintError(msg string, args ...any)
}

type LocaleCount struct {
	Language string
	Dir      string
	Pages    int
}

// GenerateReport collects the outcome of one generation run and prints it
// once at the end.
type GenerateReport struct {
	out       printer
	startTime time.Time
	counts    []LocaleCount
	failure   error
}

func NewGenerateReport(out printer) *GenerateReport {
	return &GenerateReport{
		out:       out,
		startTime: time.Now(),
	}
}

func (r *GenerateReport) AddLocale(language, dir string, pages int) {
	r.counts = append(r.counts, LocaleCount{Language: language, Dir: dir, Pages: pages})
}

func (r *GenerateReport) Fail(err error) {
	r.failure = err
}

func (r *GenerateReport) Counts() []LocaleCount {
	return r.counts
}

func (r *GenerateReport) Render() {
	if r.failure != nil {
		r.out.PrintError("Generation failed after %s: %v", formatDuration(r.Elapsed()), r.failure)
		return
	}

	for _, c := range r.counts {
		r.out.PrintSuccess("Generated %d %s product pages in %s/", c.Pages, strings.ToUpper(c.Language), c.Dir)
	}
}

// Elapsed is the time since the report was created.
func (r *GenerateReport) Elapsed() time.Duration {
	return time.Since(r.startTime)
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.0fms", float64(d)/float64(time.Millisecond))
	}
	return fmt.Sprintf("%.1fs", float64(d)/float64(time.Second))
}
