package enum

const (
	// 资源的分类，由normalizer根据标题/url启发式推断
	ResourceTypeCourse  = "course"
	ResourceTypeVideo   = "video"
	ResourceTypeBook    = "book"
	ResourceTypeRoadmap = "roadmap"
	ResourceTypeArticle = "article"

	// 资源的收费情况，无法判断时为unknown
	PriceFree    = "free"
	PricePaid    = "paid"
	PriceUnknown = "unknown"

	// 入库前的截断长度，防止异常长的搜索结果污染存储
	MaxTitleLength       = 300
	MaxDescriptionLength = 1000

	// 标题缺失时的占位值
	UntitledPlaceholder = "Untitled"

	// 单次查询默认返回的资源条数上限
	DefaultResultLimit = 40
)
