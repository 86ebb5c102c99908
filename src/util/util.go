package util

import (
	"net/url"
	"strings"

	"github.com/spf13/viper"
)

func ReadConfig(filePath string, out interface{}) error {
	v := viper.New()
	v.SetConfigFile(filePath)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // for nested structure
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return err
	}

	if err := v.Unmarshal(&out); err != nil {
		return err
	}

	return nil
}

// 提取url中的主机名，移除端口与www.前缀
// 解析失败时返回空字符串而不是error，调用方（normalizer）要求永不失败
func GetDomain(u string) string {
	oURL, err := url.Parse(u)
	if err != nil {
		return ""
	}
	host := strings.Split(oURL.Host, ":")[0]
	return strings.TrimPrefix(host, "www.")
}
