package report

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"
	"time"
)

func WriteTable(r *Report, w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Performance Report: %s (%s) ===\n", r.Experiment, r.Kind)
	if r.Averaging != "" {
		fmt.Fprintf(tw, "Averaging: %s\n", r.Averaging)
	}
	fmt.Fprintln(tw)

	scoreNames := sortedScoreNames(r)
	writeRunTable(tw, r, scoreNames)
	writeAggregatedTable(tw, r, scoreNames)
	writeMatrix(tw, r)

	tw.Flush()
}

func writeRunTable(tw *tabwriter.Writer, r *Report, scoreNames []string) {
	fmt.Fprintf(tw, "Runs (%d)\n\n", len(r.Runs))

	header := []string{"Run", "Instances", "Learning", "Inference mean", "Inference var", "Timed"}
	header = append(header, scoreNames...)
	writeHeader(tw, header)

	for _, e := range r.Runs {
		row := []string{
			e.Name,
			fmt.Sprintf("%d", e.Instances),
			fmtSeconds(e.LearningTime),
			fmtSeconds(e.Inference.Mean),
			fmtFloat(e.Inference.Variance),
			fmt.Sprintf("%d", e.Inference.Count),
		}
		for _, name := range scoreNames {
			row = append(row, fmtScore(e.Scores, name))
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	fmt.Fprintln(tw)
}

func writeAggregatedTable(tw *tabwriter.Writer, r *Report, scoreNames []string) {
	agg := r.Aggregated
	fmt.Fprintf(tw, "Aggregated (%d runs, %d instances)\n\n", agg.RunCount, agg.Instances)

	header := []string{"Statistic", "Count", "Mean", "Variance"}
	writeHeader(tw, header)
	fmt.Fprintf(tw, "learning time\t%d\t%s\t%s\n", agg.Learning.Count, fmtSeconds(agg.Learning.Mean), fmtFloat(agg.Learning.Variance))
	fmt.Fprintf(tw, "inference time\t%d\t%s\t%s\n", agg.Inference.Count, fmtSeconds(agg.Inference.Mean), fmtFloat(agg.Inference.Variance))
	fmt.Fprintln(tw)

	writeHeader(tw, []string{"Score", "Value"})
	for _, name := range scoreNames {
		fmt.Fprintf(tw, "%s\t%s\n", name, fmtScore(agg.Scores, name))
	}
	fmt.Fprintln(tw)
}

func writeMatrix(tw *tabwriter.Writer, r *Report) {
	m := r.Aggregated.Matrix
	if len(m) == 0 {
		return
	}
	fmt.Fprintf(tw, "Pooled contingency matrix (rows: true, columns: predicted)\n\n")

	header := append([]string{""}, r.Classes...)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for i, counts := range m {
		label := fmt.Sprintf("#%d", i)
		if i < len(r.TrueLabels) {
			label = r.TrueLabels[i]
		}
		row := []string{label}
		for _, c := range counts {
			row = append(row, fmt.Sprintf("%d", c))
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	fmt.Fprintln(tw)
}

func writeHeader(tw *tabwriter.Writer, header []string) {
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))
}

func sortedScoreNames(r *Report) []string {
	seen := make(map[string]bool)
	var names []string
	add := func(scores map[string]Float) {
		for name := range scores {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	add(r.Aggregated.Scores)
	for _, e := range r.Runs {
		add(e.Scores)
	}
	slices.Sort(names)
	return names
}

func fmtScore(scores map[string]Float, name string) string {
	v, ok := scores[name]
	if !ok {
		return "N/A"
	}
	return fmtFloat(v)
}

func fmtFloat(f Float) string {
	if f.IsNaN() {
		return "-"
	}
	return fmt.Sprintf("%.4f", float64(f))
}

// fmtSeconds renders a time given in seconds.
func fmtSeconds(f Float) string {
	if f.IsNaN() {
		return "-"
	}
	return fmtDuration(time.Duration(float64(f) * float64(time.Second)))
}

func fmtDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%.1fµs", float64(d.Nanoseconds())/1000)
	}
	if d < time.Second {
		return fmt.Sprintf("%.2fms", float64(d.Microseconds())/1000)
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}
