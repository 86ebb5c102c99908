// tavily搜索api客户端
// 仅单次请求，超时即视为失败，不在此层重试（重试属于调用方的策略）
package searcher

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/andrewyi/skillfinder/src/entity"
)

const defaultTavilyEndpoint = "https://api.tavily.com/search"

type TavilySearcher struct {
	apiKey     string
	maxResults uint32
	endpoint   string

	client *http.Client
}

func NewTavilySearcher(apiKey string, timeout uint32, maxResults uint32) *TavilySearcher {
	return &TavilySearcher{
		apiKey:     apiKey,
		maxResults: maxResults,
		endpoint:   defaultTavilyEndpoint,
		client: &http.Client{
			Timeout: time.Duration(timeout) * time.Second,
		},
	}
}

type tavilyRequest struct {
	APIKey        string `json:"api_key"`
	Query         string `json:"query"`
	SearchDepth   string `json:"search_depth"`
	IncludeAnswer bool   `json:"include_answer"`
	IncludeImages bool   `json:"include_images"`
	MaxResults    uint32 `json:"max_results"`
}

type tavilyResponse struct {
	Results []struct {
		Title   string `json:"title"`
		URL     string `json:"url"`
		Snippet string `json:"snippet"`
	} `json:"results"`
}

func (s *TavilySearcher) Search(skill string) ([]entity.SearchHit, error) {
	reqBody, err := json.Marshal(tavilyRequest{
		APIKey:        s.apiKey,
		Query:         BuildQuery(skill),
		SearchDepth:   "advanced",
		IncludeAnswer: false,
		IncludeImages: false,
		MaxResults:    s.maxResults,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: marshal request: %v", ErrUpstreamUnavailable, err)
	}

	resp, err := s.client.Post(s.endpoint, "application/json", bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrUpstreamUnavailable, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status=%d body=%s", ErrUpstreamUnavailable, resp.StatusCode, snippet(body, 200))
	}

	var parsed tavilyResponse
	if err = json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrUpstreamUnavailable, err)
	}

	hits := make([]entity.SearchHit, 0, len(parsed.Results))
	for _, r := range parsed.Results {
		hits = append(hits, entity.SearchHit{
			Title:       r.Title,
			URL:         r.URL,
			Description: r.Snippet,
		})
	}
	return hits, nil
}

func snippet(b []byte, max int) string {
	s := string(b)
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
