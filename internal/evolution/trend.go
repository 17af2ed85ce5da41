package evolution

// slopeThreshold separates a real directional trend from noise around flat.
// Slopes within +/- 0.01 per interval classify as stable.
const slopeThreshold = 0.01

// FitSlope computes the ordinary least-squares slope of the series against
// indices 0, 1, 2, ... Returns ok == false when the series has fewer than two
// points, in which case no slope is defined.
func FitSlope(series []float64) (slope float64, ok bool) {
	n := len(series)
	if n < 2 {
		return 0, false
	}

	meanX := float64(n-1) / 2
	var meanY float64
	for _, y := range series {
		meanY += y
	}
	meanY /= float64(n)

	var num, den float64
	for i, y := range series {
		dx := float64(i) - meanX
		num += dx * (y - meanY)
		den += dx * dx
	}
	// den is zero only for n < 2, which was handled above.
	return num / den, true
}

// ClassifyTrend maps a fitted slope onto a direction label.
func ClassifyTrend(slope float64) Trend {
	switch {
	case slope > slopeThreshold:
		return TrendIncreasing
	case slope < -slopeThreshold:
		return TrendDecreasing
	default:
		return TrendStable
	}
}

// EstimateTrend fits a least-squares line over the diversity series and
// classifies its direction. Fewer than two intervals means insufficient
// data: the trend is stable by definition and no slope is computed.
func EstimateTrend(diversity []float64) Trend {
	slope, ok := FitSlope(diversity)
	if !ok {
		return TrendStable
	}
	return ClassifyTrend(slope)
}
