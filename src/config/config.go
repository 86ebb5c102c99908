package config

type Config struct {
	Log struct {
		Context bool   `mapstructure:"context"`
		Level   string `mapstructure:"level"`
	} `mapstructure:"log"`

	HTTP struct {
		Addr      string `mapstructure:"addr"`
		Debug     bool   `mapstructure:"debug"`
		StaticDir string `mapstructure:"static_dir"`
	} `mapstructure:"http"`

	Database struct {
		// driver支持sqlite3（默认，单文件部署）与postgres
		Driver string `mapstructure:"driver"`
		URL    string `mapstructure:"url"`
	} `mapstructure:"database"`

	Searcher struct {
		// 配置了api key时使用tavily，否则退化为duckduckgo html抓取
		TavilyAPIKey string `mapstructure:"tavily_api_key"`
		Timeout      uint32 `mapstructure:"timeout"`
		MaxResults   uint32 `mapstructure:"max_results"`
	} `mapstructure:"searcher"`

	Refresh struct {
		Worker    uint32 `mapstructure:"worker"`
		QueueSize uint32 `mapstructure:"queue_size"`
	} `mapstructure:"refresh"`

	Cron struct {
		// robfig/cron表达式，也支持@hourly等描述符
		Spec          string   `mapstructure:"spec"`
		PopularSkills []string `mapstructure:"popular_skills"`
	} `mapstructure:"cron"`
}
