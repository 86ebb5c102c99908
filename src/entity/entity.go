package entity

// 保存了外部搜索返回的一条原始结果
// 除URL以外的字段都可能缺失，searcher不做任何补全，统一交给normalizer处理
type SearchHit struct {
	Title       string
	URL         string
	Description string
	Source      string
	Rating      *float64
	NumReviews  *int64
	PublishedAt *int64 // epoch毫秒
}
