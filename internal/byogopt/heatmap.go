package byogopt

import "hybridretrofit/internal/byog"

// HeatmapAxis is one swept dimension of a sensitivity heatmap.
type HeatmapAxis struct {
	Path string  `json:"path"`
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Step float64 `json:"step"`
}

// HeatmapJob is an OPT-03 request: sweep two decision variables jointly and
// report a KPI at every (x, y) grid point.
type HeatmapJob struct {
	XAxis   HeatmapAxis `json:"x_axis"`
	YAxis   HeatmapAxis `json:"y_axis"`
	ZMetric string      `json:"z_metric"`
}

// HeatmapPoint is one cell of the sensitivity grid. Z is nil if the KPI was
// not present in that point's simulation output.
type HeatmapPoint struct {
	X float64  `json:"x"`
	Y float64  `json:"y"`
	Z *float64 `json:"z"`
}

// HeatmapResult is the full sweep: the axis/metric description plus every
// evaluated grid point, in row-major (y outer, x inner) order.
type HeatmapResult struct {
	Mode    string         `json:"mode"`
	XAxis   HeatmapAxis    `json:"x_axis"`
	YAxis   HeatmapAxis    `json:"y_axis"`
	ZMetric string         `json:"z_metric"`
	Points  []HeatmapPoint `json:"points"`
}

func buildAxisValues(a HeatmapAxis) []float64 {
	return buildGridValues(GridVariable{Min: a.Min, Max: a.Max, Step: a.Step})
}

// DynamicSensitivityHeatmap sweeps x_axis and y_axis jointly, evaluating
// z_metric at every combination.
func DynamicSensitivityHeatmap(base byog.Request, job HeatmapJob) (HeatmapResult, error) {
	basePayload, err := toRawPayload(base)
	if err != nil {
		return HeatmapResult{}, err
	}

	xValues := buildAxisValues(job.XAxis)
	yValues := buildAxisValues(job.YAxis)

	points := make([]HeatmapPoint, 0, len(xValues)*len(yValues))
	for _, y := range yValues {
		for _, x := range xValues {
			candidate := basePayload.clone()
			setNested(candidate, job.XAxis.Path, x)
			setNested(candidate, job.YAxis.Path, y)

			result, err := evaluate(candidate)
			if err != nil {
				return HeatmapResult{}, err
			}
			var z *float64
			if v, ok := kpi(result, job.ZMetric); ok {
				zv := v
				z = &zv
			}
			points = append(points, HeatmapPoint{X: x, Y: y, Z: z})
		}
	}

	return HeatmapResult{
		Mode:    "sensitivity_heatmap",
		XAxis:   job.XAxis,
		YAxis:   job.YAxis,
		ZMetric: job.ZMetric,
		Points:  points,
	}, nil
}
