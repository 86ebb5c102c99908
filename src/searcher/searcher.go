package searcher

import (
	"errors"
	"fmt"
	"time"

	"github.com/andrewyi/skillfinder/src/entity"
)

// 所有provider失败（超时、传输错误、非2xx、解析失败）都包裹此错误
// 上层据此区分上游不可用与存储故障
var ErrUpstreamUnavailable = errors.New("search upstream unavailable")

type Searcher interface {
	Search(skill string) ([]entity.SearchHit, error)
}

// 由skill派生搜索query，年份取当前时间
func BuildQuery(skill string) string {
	return fmt.Sprintf("%s how to learn best resources guide %d", skill, time.Now().Year())
}
