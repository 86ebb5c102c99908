// 将一条原始搜索结果转换为标准资源记录
// 纯函数，对残缺输入只降级为默认值，永不失败
// type/price的推断是子串匹配的启发式，匹配表作为数据维护，便于单独测试与调整
package normalizer

import (
	"strings"
	"time"

	"github.com/andrewyi/skillfinder/src/dbstorage/schema"
	"github.com/andrewyi/skillfinder/src/entity"
	"github.com/andrewyi/skillfinder/src/enum"
	"github.com/andrewyi/skillfinder/src/util"
)

// 有序规则表，首个命中即返回，顺序即优先级
type matchRule struct {
	patterns []string
	result   string
}

var typeRules = []matchRule{
	{[]string{"udemy", "course", "coursera", "edx", "class"}, enum.ResourceTypeCourse},
	{[]string{"youtube", "video", "playlist"}, enum.ResourceTypeVideo},
	{[]string{"book", "pdf", "ebook"}, enum.ResourceTypeBook},
	{[]string{"roadmap", "path"}, enum.ResourceTypeRoadmap},
}

var priceRules = []matchRule{
	{[]string{"free", "open source", "opensource", "open-source"}, enum.PriceFree},
	{[]string{"subscription", "paid", "price"}, enum.PricePaid},
}

type SimpleNormalizer struct {
	now func() time.Time
}

func NewSimpleNormalizer() Normalizer {
	return &SimpleNormalizer{now: time.Now}
}

func (n *SimpleNormalizer) Normalize(skill string, hit entity.SearchHit) schema.Resource {
	return schema.Resource{
		SkillName:   strings.ToLower(strings.TrimSpace(skill)),
		Title:       normalizeTitle(hit.Title),
		URL:         hit.URL, // url原样保留，无url的hit由调用方事先丢弃
		Source:      normalizeSource(hit),
		Type:        InferType(hit.Title, hit.URL),
		Price:       InferPrice(hit.Title, hit.Description, hit.URL),
		Description: truncate(hit.Description, enum.MaxDescriptionLength),
		Rating:      copyFloat(hit.Rating),
		NumReviews:  copyInt(hit.NumReviews),
		PublishedAt: copyInt(hit.PublishedAt),
		FetchedAt:   n.now().UnixNano() / int64(time.Millisecond),
	}
}

func normalizeTitle(title string) string {
	if title == "" {
		return enum.UntitledPlaceholder
	}
	return truncate(title, enum.MaxTitleLength)
}

func normalizeSource(hit entity.SearchHit) string {
	if hit.Source != "" {
		return hit.Source
	}
	return util.GetDomain(hit.URL)
}

// 根据标题与url推断资源类型，未命中任何规则时归为article
func InferType(title string, url string) string {
	text := strings.ToLower(title + " " + url)
	for _, rule := range typeRules {
		for _, p := range rule.patterns {
			if strings.Contains(text, p) {
				return rule.result
			}
		}
	}
	return enum.ResourceTypeArticle
}

// 根据标题、描述与url推断收费情况，无法判断时为unknown
func InferPrice(title string, description string, url string) string {
	text := strings.ToLower(title + " " + description + " " + url)
	for _, rule := range priceRules {
		for _, p := range rule.patterns {
			if strings.Contains(text, p) {
				return rule.result
			}
		}
	}
	return enum.PriceUnknown
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func copyInt(v *int64) *int64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
