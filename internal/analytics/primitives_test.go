package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hiox2004/GapSight/pkg/models"
)

func TestSafeDivide(t *testing.T) {
	assert.Equal(t, 2.5, SafeDivide(5, 2, 0))
	assert.Equal(t, 0.0, SafeDivide(5, 0, 0))
	assert.Equal(t, 99.0, SafeDivide(5, 0, 99))
}

func TestGrowthPercent(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		baseline float64
		want     float64
	}{
		{"simple growth", 150, 100, 50.0},
		{"decline", 90, 100, -10.0},
		{"zero baseline", 150, 0, 0},
		{"negative baseline", 150, -10, 0},
		{"rounded to one decimal", 110, 3, 3566.7},
		{"flat", 100, 100, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GrowthPercent(tt.current, tt.baseline))
		})
	}
}

func TestSampleWeekly(t *testing.T) {
	series := make([]int, 0, 20)
	for i := 0; i < 20; i++ {
		series = append(series, i)
	}

	sampled := SampleWeekly(series)
	assert.Equal(t, []int{0, 7, 14}, sampled)

	assert.Nil(t, SampleWeekly([]int(nil)))
	assert.Equal(t, []int{42}, SampleWeekly([]int{42}))

	// exactly one point per started week
	for n := 1; n <= 30; n++ {
		assert.Len(t, SampleWeekly(make([]int, n)), (n+6)/7, "n=%d", n)
	}
}

func TestAvgEngagement(t *testing.T) {
	assert.Equal(t, 0.0, AvgEngagement(nil))

	posts := []models.Post{
		{Likes: 10, Comments: 2, Shares: 1},
		{Likes: 5, Comments: 1, Shares: 0},
	}
	// (13 + 6) / 2 = 9.5
	assert.Equal(t, 9.5, AvgEngagement(posts))
}

func TestTopContentType(t *testing.T) {
	assert.Equal(t, "N/A", TopContentType(nil))

	posts := []models.Post{
		{ContentType: models.ContentPost},
		{ContentType: models.ContentReel},
		{ContentType: models.ContentReel},
		{ContentType: models.ContentPost},
	}
	// tie between Post and Reel, first-seen wins
	assert.Equal(t, models.ContentPost, TopContentType(posts))

	posts = append(posts, models.Post{ContentType: models.ContentReel})
	assert.Equal(t, models.ContentReel, TopContentType(posts))

	// blank content type counts as Unknown
	assert.Equal(t, models.ContentUnknown, TopContentType([]models.Post{{ContentType: ""}}))
}
