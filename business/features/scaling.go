package features

// ScalingParams holds per-column min/max fitted on the catalog.
type ScalingParams struct {
	Min Vector
	Max Vector
}

// FitScaling computes column-wise min and max over rows.
func FitScaling(rows []Vector) ScalingParams {
	var p ScalingParams
	if len(rows) == 0 {
		return p
	}

	p.Min = rows[0]
	p.Max = rows[0]
	for _, r := range rows[1:] {
		for i := range Dim {
			if r[i] < p.Min[i] {
				p.Min[i] = r[i]
			}
			if r[i] > p.Max[i] {
				p.Max[i] = r[i]
			}
		}
	}
	return p
}

// Scale maps x into the fitted range. Constant columns scale to 0.
// Values outside the fitted range are not clipped.
func (p ScalingParams) Scale(x Vector) Vector {
	var y Vector
	for i := range Dim {
		span := p.Max[i] - p.Min[i]
		if span <= 0 {
			continue
		}
		y[i] = (x[i] - p.Min[i]) / span
	}
	return y
}

// Unscale inverts Scale. Constant columns map back to their single value.
func (p ScalingParams) Unscale(y Vector) Vector {
	var x Vector
	for i := range Dim {
		span := p.Max[i] - p.Min[i]
		if span <= 0 {
			x[i] = p.Min[i]
			continue
		}
		x[i] = y[i]*span + p.Min[i]
	}
	return x
}
