package eta

import (
	"fmt"
	"strings"
)

// RenderOptions configures the progress line. Zero-valued fields fall
// back to the defaults below. To show the percentage with no decimal
// places, set PercentDigits to a negative value.
type RenderOptions struct {
	// PercentDigits is how many decimal places the percentage shows.
	// Default: 1
	PercentDigits int

	// BarLength is the character width of the bar interior.
	// Default: 10
	BarLength int

	// FilledChar marks the completed part of the bar.
	// Default: '='
	FilledChar rune

	// UnfilledChar marks the remaining part of the bar.
	// Default: ' '
	UnfilledChar rune
}

func (o RenderOptions) withDefaults() RenderOptions {
	switch {
	case o.PercentDigits == 0:
		o.PercentDigits = 1
	case o.PercentDigits < 0:
		o.PercentDigits = 0
	}
	if o.BarLength == 0 {
		o.BarLength = 10
	}
	if o.FilledChar == 0 {
		o.FilledChar = '='
	}
	if o.UnfilledChar == 0 {
		o.UnfilledChar = ' '
	}
	return o
}

// Render returns the one-line textual representation of current
// progress: bar, iteration fraction, percentage, throughput and ETA.
// It is a pure function of the estimator's state.
//
// The filled-tick count is floor(BarLength × fraction) and is not
// clamped: overshooting the total produces a bar wider than BarLength,
// matching the unclamped iteration counter.
func (e *Estimator) Render(opts RenderOptions) string {
	o := opts.withDefaults()

	fraction := float64(e.currentIter) / float64(e.totalIters)
	filled := int(float64(o.BarLength) * fraction)
	unfilled := o.BarLength - filled
	if unfilled < 0 {
		unfilled = 0
	}

	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(strings.Repeat(string(o.FilledChar), filled))
	b.WriteString(strings.Repeat(string(o.UnfilledChar), unfilled))
	b.WriteByte(']')

	fmt.Fprintf(&b, " %d/%d (%.*f%%) %s ETA %s",
		e.currentIter, e.totalIters,
		o.PercentDigits, fraction*100,
		FormatThroughput(e.itersPerSecond),
		FormatDuration(e.eta))
	return b.String()
}

// ShowProgress rewrites the progress line in place on the output
// writer, terminating it with a newline once the final iteration has
// been reported. Call it at most once per Update. The line is rendered
// with the options set via WithRenderOptions, or the defaults.
func (e *Estimator) ShowProgress() {
	end := ""
	if e.currentIter >= e.totalIters {
		end = "\n"
	}
	fmt.Fprintf(e.out, "\r%s%s", e.Render(e.renderOpts), end)
}
