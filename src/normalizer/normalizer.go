package normalizer

import (
	"github.com/andrewyi/skillfinder/src/dbstorage/schema"
	"github.com/andrewyi/skillfinder/src/entity"
)

type Normalizer interface {
	Normalize(skill string, hit entity.SearchHit) schema.Resource
}
