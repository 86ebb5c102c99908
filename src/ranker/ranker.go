package ranker

import (
	"github.com/andrewyi/skillfinder/src/dbstorage/schema"
)

type Ranker interface {
	// 按相关性降序返回最多limit条资源，同分保持输入顺序（结果确定性）
	Rank(resources []schema.Resource, limit int) []schema.Resource
}
