package analytics

import (
	"math"
	"time"

	api "github.com/hiox2004/GapSight/pkg/api/gapsight"
)

// forecastSteps is the number of future weekly points appended to the
// historical series.
const forecastSteps = 4

// Forecast fits an ordinary least squares line over the weekly follower
// series and appends 4 predicted weekly points. Historical points are
// tagged "actual", forecast points "predicted", and a predicted value is
// never negative. Fewer than 2 input points pass through untouched.
func Forecast(points []api.GrowthPoint) []api.TrendPoint {
	out := make([]api.TrendPoint, 0, len(points)+forecastSteps)
	for _, p := range points {
		out = append(out, api.TrendPoint{Date: p.Date, Followers: p.Followers, Type: api.TrendActual})
	}
	if len(points) < 2 {
		return out
	}

	slope, intercept := fitLine(points)

	lastDate, err := time.Parse(dateLayout, points[len(points)-1].Date)
	if err != nil {
		lastDate = time.Now()
	}
	for step := 1; step <= forecastSteps; step++ {
		idx := float64(len(points) - 1 + step)
		value := int(math.Round(intercept + slope*idx))
		if value < 0 {
			value = 0
		}
		out = append(out, api.TrendPoint{
			Date:      lastDate.AddDate(0, 0, 7*step).Format(dateLayout),
			Followers: value,
			Type:      api.TrendPredicted,
		})
	}
	return out
}

// fitLine computes OLS slope and intercept over (index, followers) pairs.
// A zero denominator (all points at one index) yields a flat line.
func fitLine(points []api.GrowthPoint) (slope, intercept float64) {
	n := float64(len(points))
	var sumX, sumY float64
	for i, p := range points {
		sumX += float64(i)
		sumY += float64(p.Followers)
	}
	meanX := sumX / n
	meanY := sumY / n

	var num, den float64
	for i, p := range points {
		dx := float64(i) - meanX
		num += dx * (float64(p.Followers) - meanY)
		den += dx * dx
	}
	if den != 0 {
		slope = num / den
	}
	intercept = meanY - slope*meanX
	return slope, intercept
}
