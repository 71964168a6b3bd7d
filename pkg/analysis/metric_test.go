package analysis

import "testing"

func TestMetric(t *testing.T) {
	tests := []struct {
		name       string
		metric     Metric
		value      int
		computable bool
		rendered   string
	}{
		{
			name:       "computed count",
			metric:     Count(7),
			value:      7,
			computable: true,
			rendered:   "7",
		},
		{
			name:       "computed zero",
			metric:     Count(0),
			value:      0,
			computable: true,
			rendered:   "0",
		},
		{
			name:     "not computable",
			metric:   NotComputable(),
			value:    0,
			rendered: "n/a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.metric.Value(); got != tt.value {
				t.Errorf("Value() = %d, want %d", got, tt.value)
			}
			if got := tt.metric.Computable(); got != tt.computable {
				t.Errorf("Computable() = %v, want %v", got, tt.computable)
			}
			if got := tt.metric.String(); got != tt.rendered {
				t.Errorf("String() = %q, want %q", got, tt.rendered)
			}
		})
	}
}
