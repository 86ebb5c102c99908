// 数据库表结构
// resources的(skill_name, url)联合唯一索引是去重不变式的唯一承载点
// 应用层不做去重，重复插入由存储层直接忽略
package schema

import (
	"time"
)

type Resource struct {
	ID          uint64    `xorm:"bigint pk autoincr 'id'" json:"id"`
	SkillName   string    `xorm:"varchar(256) notnull unique(uk_skill_url) index 'skill_name'" json:"skill_name"`
	Title       string    `xorm:"varchar(300) notnull 'title'" json:"title"`
	URL         string    `xorm:"varchar(2048) notnull unique(uk_skill_url) 'url'" json:"url"`
	Source      string    `xorm:"varchar(256) 'source'" json:"source"`
	Type        string    `xorm:"varchar(32) 'type'" json:"type"`
	Price       string    `xorm:"varchar(32) 'price'" json:"price"`
	Description string    `xorm:"text 'description'" json:"description"`
	Rating      *float64  `xorm:"double 'rating'" json:"rating"`
	NumReviews  *int64    `xorm:"bigint 'num_reviews'" json:"num_reviews"`
	PublishedAt *int64    `xorm:"bigint 'published_at'" json:"published_at"`
	FetchedAt   int64     `xorm:"bigint notnull 'fetched_at'" json:"fetched_at"`
	CreatedAt   time.Time `xorm:"created notnull 'created_at'" json:"-"`
	UpdatedAt   time.Time `xorm:"updated notnull 'updated_at'" json:"-"`
}

func (r *Resource) TableName() string {
	return "resources"
}

// 记录每个skill最近一次刷新完成的时间，每个小写skill名仅一行
type Skill struct {
	ID              uint64    `xorm:"bigint pk autoincr 'id'" json:"id"`
	Name            string    `xorm:"varchar(256) notnull unique(uk_name) 'name'" json:"name"`
	LastRefreshedAt int64     `xorm:"bigint 'last_refreshed_at'" json:"last_refreshed_at"`
	CreatedAt       time.Time `xorm:"created notnull 'created_at'" json:"-"`
	UpdatedAt       time.Time `xorm:"updated notnull 'updated_at'" json:"-"`
}

func (s *Skill) TableName() string {
	return "skills"
}
