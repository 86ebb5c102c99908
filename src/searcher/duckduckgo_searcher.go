// 无api key时的兜底provider，抓取duckduckgo的html结果页
// 仅提取结果区的a标签与摘要，结果质量不如tavily，保守使用
package searcher

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/andrewyi/skillfinder/src/entity"
)

const defaultDuckDuckGoEndpoint = "https://html.duckduckgo.com/html/"

type DuckDuckGoSearcher struct {
	maxResults uint32
	endpoint   string

	client *http.Client
}

func NewDuckDuckGoSearcher(timeout uint32, maxResults uint32) *DuckDuckGoSearcher {
	return &DuckDuckGoSearcher{
		maxResults: maxResults,
		endpoint:   defaultDuckDuckGoEndpoint,
		client: &http.Client{
			Timeout: time.Duration(timeout) * time.Second,
		},
	}
}

func (s *DuckDuckGoSearcher) Search(skill string) ([]entity.SearchHit, error) {
	reqURL := s.endpoint + "?q=" + url.QueryEscape(BuildQuery(skill))

	resp, err := s.client.Get(reqURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status=%d", ErrUpstreamUnavailable, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: parse html: %v", ErrUpstreamUnavailable, err)
	}

	var hits []entity.SearchHit
	seen := make(map[string]struct{})

	doc.Find(".result").Each(func(index int, element *goquery.Selection) {
		if uint32(len(hits)) >= s.maxResults {
			return
		}

		anchor := element.Find("a.result__a").First()
		href, exists := anchor.Attr("href")
		if !exists {
			return
		}
		target := resolveResultURL(href)
		if target == "" {
			return
		}
		if _, ok := seen[target]; ok {
			return
		}
		seen[target] = struct{}{}

		hits = append(hits, entity.SearchHit{
			Title:       strings.TrimSpace(anchor.Text()),
			URL:         target,
			Description: strings.TrimSpace(element.Find(".result__snippet").First().Text()),
		})
	})

	return hits, nil
}

// ddg结果页的href是跳转链接，真实地址在uddg参数中
func resolveResultURL(href string) string {
	if strings.HasPrefix(href, "//") {
		href = "https:" + href
	}
	parsed, err := url.Parse(href)
	if err != nil {
		return ""
	}
	if uddg := parsed.Query().Get("uddg"); uddg != "" {
		return uddg
	}
	if parsed.Scheme == "http" || parsed.Scheme == "https" {
		return href
	}
	return ""
}
