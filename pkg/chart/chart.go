package chart

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// WriteBar renders a bar chart of labeled counts to an HTML file.
func WriteBar(path, title string, labels []string, values []int) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: title}))

	items := make([]opts.BarData, len(values))
	for i, value := range values {
		items[i] = opts.BarData{Value: value}
	}
	bar.SetXAxis(labels).AddSeries(title, items)

	return render(path, bar)
}

// WritePie renders a pie chart of labeled counts to an HTML file.
func WritePie(path, title string, labels []string, values []int) error {
	pie := charts.NewPie()
	pie.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: title}))

	items := make([]opts.PieData, len(values))
	for i, value := range values {
		items[i] = opts.PieData{Name: labels[i], Value: value}
	}
	pie.AddSeries(title, items)

	return render(path, pie)
}

type renderable interface {
	Render(w io.Writer) error
}

func render(path string, chart renderable) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create chart dir: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()

	if err := chart.Render(file); err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	return nil
}
