package cli

import (
	"fmt"
	"sort"
	"time"
)

type Step struct {
	Name      string
	StartTime time.Time
	EndTime   time.Time
	Success   bool
	Error     string
}

type Problem struct {
	Page    string
	Message string
	Details []string
}

// Report collects the steps and problems of an export or a doctor run
// and prints a summary at the end.
type Report struct {
	out         *Output
	steps       []Step
	warnings    []Problem
	errors      []Problem
	startTime   time.Time
	pageCount   int
	outputDir   string
	hasFailures bool
}

func NewReport(out *Output, outputDir string) *Report {
	return &Report{
		out:       out,
		startTime: time.Now(),
		outputDir: outputDir,
	}
}

func (r *Report) SetPageCount(count int) {
	r.pageCount = count
}

func (r *Report) StartStep(name string) int {
	r.steps = append(r.steps, Step{Name: name, StartTime: time.Now()})
	return len(r.steps) - 1
}

func (r *Report) EndStep(step int, err error) {
	s := &r.steps[step]
	s.EndTime = time.Now()
	s.Success = err == nil
	if err != nil {
		s.Error = err.Error()
		r.hasFailures = true
	}
}

func (r *Report) AddWarning(page, message string, details ...string) {
	r.warnings = append(r.warnings, Problem{Page: page, Message: message, Details: details})
}

func (r *Report) AddError(page, message string, details ...string) {
	r.errors = append(r.errors, Problem{Page: page, Message: message, Details: details})
	r.hasFailures = true
}

func (r *Report) HasFailures() bool {
	return r.hasFailures
}

func (r *Report) Render() {
	duration := time.Since(r.startTime)
	o := r.out

	fmt.Fprintf(o.out, "  "+o.Green("✓ ")+"%d pages\n", r.pageCount)

	for _, step := range r.steps {
		if step.Success {
			if len(r.errors) > 0 || len(r.warnings) > 0 {
				fmt.Fprintf(o.out, "  %s %s\n", o.Green("✓"), step.Name)
			}
			continue
		}
		fmt.Fprintf(o.errOut, "  %s %s: %s\n", o.Red("✗"), step.Name, step.Error)
	}

	if len(r.errors) > 0 {
		fmt.Fprintf(o.errOut, "\n  "+o.Red("✗ ")+"Errors (%d):\n", len(r.errors))
		r.renderProblems(r.errors)
	}
	if len(r.warnings) > 0 {
		fmt.Fprintf(o.out, "\n  "+o.Yellow("⚠ ")+"Warnings (%d):\n", len(r.warnings))
		r.renderProblems(r.warnings)
	}

	if r.hasFailures {
		fmt.Fprintf(o.errOut, "\n  %s\n", o.Red("Failed after "+formatDuration(duration)))
	} else {
		fmt.Fprintf(o.out, "  "+o.Green("✓ ")+"Done in %s\n", formatDuration(duration))
	}

	if r.outputDir != "" {
		fmt.Fprintf(o.out, "\n  %s\n", o.Gray("Output: "+r.outputDir))
	}
}

func (r *Report) renderProblems(problems []Problem) {
	w := r.out.out
	for _, p := range problems {
		fmt.Fprintf(w, "  %s %s\n", r.out.Red("✗"), p.Page)
		fmt.Fprintf(w, "    %s\n", p.Message)
		for _, detail := range deduplicateStrings(p.Details) {
			fmt.Fprintf(w, "      • %s\n", detail)
		}
	}
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.0fms", float64(d)/float64(time.Millisecond))
	}
	return fmt.Sprintf("%.1fs", float64(d)/float64(time.Second))
}

func deduplicateStrings(items []string) []string {
	if len(items) <= 1 {
		return items
	}

	seen := make(map[string]int)
	for _, item := range items {
		seen[item]++
	}

	result := make([]string, 0, len(seen))
	for item, count := range seen {
		if count > 1 {
			result = append(result, fmt.Sprintf("%s (%d occurrences)", item, count))
		} else {
			result = append(result, item)
		}
	}
	sort.Strings(result)

	return result
}
