package render

import (
	"fmt"
	"strconv"
	"time"

	"github.com/hiox2004/GapSight/internal/analytics"
	api "github.com/hiox2004/GapSight/pkg/api/gapsight"
)

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func pageHeader(title string, size float64, now time.Time) []Op {
	return []Op{
		TextOp{X: Margin, Y: Margin, Text: title, Size: size, Color: ColorHeading, Bold: true},
		TextOp{X: PageWidth - Margin, Y: Margin, Text: now.Format("2006-01-02 15:04"), Size: 10, Color: ColorHeading, Align: "right"},
	}
}

// DashboardReport lays out the two-page dashboard report: summary cards
// plus follower growth and content mix on page one, the trend forecast on
// page two. Without a summary the cards show placeholder dashes.
func DashboardReport(now time.Time, summary analytics.Summary, hasSummary bool, growth []api.GrowthPoint, mix []api.ContentTypeStat, trend []api.TrendPoint) []Page {
	fullWidth := PageWidth - 2*Margin

	page1 := Page{}
	page1.Ops = append(page1.Ops, pageHeader("GapSight Dashboard Report", 16, now)...)

	const (
		cardY   = 70.0
		cardH   = 50.0
		cardGap = 8.0
	)
	cardW := (fullWidth - cardGap*3) / 4
	cards := []struct{ title, value string }{
		{"Followers", "—"},
		{"Growth %", "—"},
		{"Avg Engagement", "—"},
		{"Top Content", "—"},
	}
	if hasSummary {
		cards[0].value = strconv.Itoa(summary.FollowerCount)
		cards[1].value = formatFloat(summary.GrowthPct)
		cards[2].value = formatFloat(summary.AvgEngagement)
		cards[3].value = summary.TopContentType
	}
	for i, card := range cards {
		x := Margin + float64(i)*(cardW+cardGap)
		page1.Ops = append(page1.Ops, Panel(x, cardY, cardW, cardH, card.title)...)
		page1.Ops = append(page1.Ops, TextOp{X: x + 10, Y: cardY + cardH - 15, Text: card.value, Size: 11, Color: ColorHeading, Bold: true})
	}

	growthValues := make([]float64, 0, len(growth))
	for _, p := range growth {
		growthValues = append(growthValues, float64(p.Followers))
	}
	page1.Ops = append(page1.Ops, Panel(Margin, 212, fullWidth, 190, "Follower Growth")...)
	page1.Ops = append(page1.Ops, LineChart(Margin, 212, fullWidth, 190, growthValues, ColorIndigo)...)

	mixLabels := make([]string, 0, len(mix))
	mixValues := make([]float64, 0, len(mix))
	for _, ct := range mix {
		mixLabels = append(mixLabels, ct.ContentType)
		mixValues = append(mixValues, float64(ct.Count))
	}
	page1.Ops = append(page1.Ops, Panel(Margin, 432, fullWidth, 190, "Content Mix")...)
	page1.Ops = append(page1.Ops, BarChart(Margin, 432, fullWidth, 190, mixLabels, mixValues, ColorGreen)...)

	page2 := Page{}
	page2.Ops = append(page2.Ops,
		TextOp{X: Margin, Y: Margin, Text: "Trend Prediction", Size: 15, Color: ColorHeading, Bold: true},
		TextOp{X: Margin, Y: Margin + 18, Text: "Historical points plus next 4-week follower forecast", Size: 10, Color: ColorHeading},
	)

	trendValues := make([]float64, 0, len(trend))
	for _, p := range trend {
		trendValues = append(trendValues, float64(p.Followers))
	}
	page2.Ops = append(page2.Ops, Panel(Margin, 112, fullWidth, 460, "Follower Trend Forecast")...)
	page2.Ops = append(page2.Ops, LineChart(Margin, 112, fullWidth, 460, trendValues, ColorAmber)...)

	return []Page{page1, page2}
}

// CompetitorReport lays out the two-page competitor report: follower and
// engagement comparisons on page one, the multi-series growth chart and
// the gap list on page two.
func CompetitorReport(now time.Time, comps []api.ComparisonRow, growth []api.GrowthSeries, gaps []api.ContentGap) []Page {
	fullWidth := PageWidth - 2*Margin

	labels := make([]string, 0, len(comps))
	followerValues := make([]float64, 0, len(comps))
	engagementValues := make([]float64, 0, len(comps))
	for _, row := range comps {
		labels = append(labels, row.Username)
		followerValues = append(followerValues, float64(row.FollowerCount))
		engagementValues = append(engagementValues, row.AvgEngagement)
	}

	page1 := Page{}
	page1.Ops = append(page1.Ops, pageHeader("GapSight Competitor Report", 16, now)...)
	page1.Ops = append(page1.Ops, Panel(Margin, 212, fullWidth, 190, "Follower Comparison")...)
	page1.Ops = append(page1.Ops, BarChart(Margin, 212, fullWidth, 190, labels, followerValues, ColorIndigo)...)
	page1.Ops = append(page1.Ops, Panel(Margin, 432, fullWidth, 190, "Engagement Comparison")...)
	page1.Ops = append(page1.Ops, BarChart(Margin, 432, fullWidth, 190, labels, engagementValues, ColorAmber)...)

	series := make([]Series, 0, len(growth))
	for _, s := range growth {
		values := make([]float64, 0, len(s.Data))
		for _, p := range s.Data {
			values = append(values, float64(p.Followers))
		}
		series = append(series, Series{Name: s.Name, Values: values})
	}

	page2 := Page{}
	page2.Ops = append(page2.Ops,
		TextOp{X: Margin, Y: Margin, Text: "Competitor Growth + Gap Snapshot", Size: 15, Color: ColorHeading, Bold: true},
	)
	page2.Ops = append(page2.Ops, Panel(Margin, 112, fullWidth, 390, "Follower Growth Over Time")...)
	page2.Ops = append(page2.Ops, MultiLineChart(Margin, 112, fullWidth, 390, series)...)

	page2.Ops = append(page2.Ops, Panel(Margin, 532, fullWidth, 180, "Top Content Gaps")...)
	rowY := 562.0
	maxRows := 6
	for i, gap := range gaps {
		if i == maxRows {
			break
		}
		line := fmt.Sprintf("• %s | top: %s | your usage: %d | gap: %d",
			gap.Competitor, gap.TheirTopContent, gap.YourUsage, gap.Gap)
		page2.Ops = append(page2.Ops, TextOp{X: Margin + 12, Y: rowY, Text: line, Size: 9, Color: ColorHeading})
		rowY += 22
	}

	return []Page{page1, page2}
}
