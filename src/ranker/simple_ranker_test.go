package ranker

import (
	"testing"
	"time"

	"github.com/andrewyi/skillfinder/src/dbstorage/schema"
	"github.com/andrewyi/skillfinder/src/enum"
)

func newTestRanker() *SimpleRanker {
	return &SimpleRanker{now: func() time.Time {
		return time.Unix(1700000000, 0)
	}}
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int64) *int64       { return &v }

func TestRankCapAndOrder(t *testing.T) {
	r := newTestRanker()

	resources := []schema.Resource{
		{URL: "https://a", Type: enum.ResourceTypeArticle},
		{URL: "https://b", Type: enum.ResourceTypeCourse, Price: enum.PriceFree},
		{URL: "https://c", Type: enum.ResourceTypeVideo},
		{URL: "https://d", Type: enum.ResourceTypeRoadmap},
	}

	out := r.Rank(resources, 3)
	if len(out) != 3 {
		t.Fatalf("expected 3 results, got %d", len(out))
	}
	for i := 0; i < len(out)-1; i++ {
		if r.score(&out[i]) < r.score(&out[i+1]) {
			t.Errorf("expected descending scores at position %d", i)
		}
	}
	// course+free的总加成最高
	if out[0].URL != "https://b" {
		t.Errorf("expected free course first, got '%s'", out[0].URL)
	}
}

func TestRankLimitLargerThanInput(t *testing.T) {
	r := newTestRanker()
	out := r.Rank([]schema.Resource{{URL: "https://a"}}, 40)
	if len(out) != 1 {
		t.Errorf("expected 1 result, got %d", len(out))
	}
}

func TestRankRatingMonotonicity(t *testing.T) {
	r := newTestRanker()

	low := schema.Resource{URL: "https://a", Type: enum.ResourceTypeCourse, Rating: floatPtr(3.0)}
	high := schema.Resource{URL: "https://b", Type: enum.ResourceTypeCourse, Rating: floatPtr(4.8)}

	if r.score(&high) < r.score(&low) {
		t.Error("higher rating must never score lower")
	}

	out := r.Rank([]schema.Resource{low, high}, 2)
	if out[0].URL != "https://b" {
		t.Errorf("expected higher-rated resource first, got '%s'", out[0].URL)
	}
}

func TestRankStableOnTies(t *testing.T) {
	r := newTestRanker()

	// 完全同分的记录必须保持插入顺序
	resources := []schema.Resource{
		{URL: "https://first", Type: enum.ResourceTypeArticle},
		{URL: "https://second", Type: enum.ResourceTypeArticle},
		{URL: "https://third", Type: enum.ResourceTypeArticle},
	}
	out := r.Rank(resources, 3)
	for i, expected := range []string{"https://first", "https://second", "https://third"} {
		if out[i].URL != expected {
			t.Errorf("position %d: expected '%s', got '%s'", i, expected, out[i].URL)
		}
	}
}

func TestScoreTerms(t *testing.T) {
	r := newTestRanker()

	base := schema.Resource{URL: "https://x.io", Type: enum.ResourceTypeArticle}
	if got := r.score(&base); got != 4 {
		t.Errorf("expected bare article score 4, got %f", got)
	}

	free := base
	free.Price = enum.PriceFree
	if got := r.score(&free); got != 10 {
		t.Errorf("expected free bonus +6, got %f", got)
	}

	// source权威加成与github加成可叠加
	authority := schema.Resource{URL: "https://github.com/x/y", Source: "freecodecamp.org", Type: enum.ResourceTypeArticle}
	if got := r.score(&authority); got != 4+12+6 {
		t.Errorf("expected stacked authority bonuses, got %f", got)
	}

	// 评论量上限封顶在20
	reviewed := base
	reviewed.NumReviews = intPtr(100000000)
	if got := r.score(&reviewed); got != 4+20 {
		t.Errorf("expected review term capped at 20, got %f", got)
	}
}

func TestScoreRecency(t *testing.T) {
	r := newTestRanker()
	nowMillis := int64(1700000000000)

	fresh := schema.Resource{URL: "https://a", Type: enum.ResourceTypeArticle, PublishedAt: intPtr(nowMillis)}
	if got := r.score(&fresh); got != 4+30 {
		t.Errorf("expected full recency bonus for fresh content, got %f", got)
	}

	// 360天等效衰减后归零
	old := schema.Resource{URL: "https://b", Type: enum.ResourceTypeArticle, PublishedAt: intPtr(nowMillis - 400*millisPerDay)}
	if got := r.score(&old); got != 4 {
		t.Errorf("expected recency term decayed to 0, got %f", got)
	}
}

func TestRankZeroLimit(t *testing.T) {
	r := newTestRanker()
	out := r.Rank([]schema.Resource{{URL: "https://a"}}, 0)
	if len(out) != 0 {
		t.Errorf("expected empty result for limit 0, got %d", len(out))
	}
}
