// 多因子加法评分
// 分数是临时计算值，每次排序时重算，不入库、不返回给调用方
package ranker

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/andrewyi/skillfinder/src/dbstorage/schema"
	"github.com/andrewyi/skillfinder/src/enum"
)

// source命中即+12的高质量平台列表（大小写不敏感的子串匹配）
var authoritySources = []string{
	"coursera",
	"udemy",
	"edx",
	"khanacademy",
	"youtube",
	"freecodecamp",
	"roadmap.sh",
	"scrimba",
	"egghead",
	"frontendmasters",
}

// url中命中即+6的代码托管域名
var codeHostDomains = []string{
	"github.com",
}

var typeBoost = map[string]float64{
	enum.ResourceTypeCourse:  10,
	enum.ResourceTypeRoadmap: 8,
	enum.ResourceTypeVideo:   6,
	enum.ResourceTypeBook:    5,
	enum.ResourceTypeArticle: 4,
}

const millisPerDay = 86400000

type SimpleRanker struct {
	now func() time.Time
}

func NewSimpleRanker() Ranker {
	return &SimpleRanker{now: time.Now}
}

func (r *SimpleRanker) Rank(resources []schema.Resource, limit int) []schema.Resource {
	if limit <= 0 || len(resources) == 0 {
		return []schema.Resource{}
	}

	ranked := make([]schema.Resource, len(resources))
	copy(ranked, resources)

	// 分数放在平行slice中，排序后即丢弃
	scores := make([]float64, len(ranked))
	for i := range ranked {
		scores[i] = r.score(&ranked[i])
	}

	indexes := make([]int, len(ranked))
	for i := range indexes {
		indexes[i] = i
	}
	sort.SliceStable(indexes, func(a, b int) bool {
		return scores[indexes[a]] > scores[indexes[b]]
	})

	if limit > len(indexes) {
		limit = len(indexes)
	}
	out := make([]schema.Resource, 0, limit)
	for _, idx := range indexes[:limit] {
		out = append(out, ranked[idx])
	}
	return out
}

func (r *SimpleRanker) score(res *schema.Resource) float64 {
	var score float64

	// 时效性：刚发布+30，随后线性衰减，约360天归零
	if res.PublishedAt != nil {
		ageDays := float64(r.now().UnixNano()/int64(time.Millisecond)-*res.PublishedAt) / millisPerDay
		score += math.Max(0, 30-math.Min(30, ageDays/12))
	}

	if res.Rating != nil {
		score += *res.Rating * 5
	}
	if res.NumReviews != nil {
		score += math.Min(20, math.Log10(1+float64(*res.NumReviews))*8)
	}

	// 来源权威性，两项可叠加
	source := strings.ToLower(res.Source)
	for _, a := range authoritySources {
		if strings.Contains(source, a) {
			score += 12
			break
		}
	}
	lowerURL := strings.ToLower(res.URL)
	for _, d := range codeHostDomains {
		if strings.Contains(lowerURL, d) {
			score += 6
			break
		}
	}

	score += typeBoost[res.Type]

	if res.Price == enum.PriceFree {
		score += 6
	}

	return score
}
