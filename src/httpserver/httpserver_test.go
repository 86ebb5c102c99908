package httpserver

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"

	log "github.com/sirupsen/logrus"

	"github.com/andrewyi/skillfinder/src/config"
	"github.com/andrewyi/skillfinder/src/dbstorage/schema"
	"github.com/andrewyi/skillfinder/src/enum"
	"github.com/andrewyi/skillfinder/src/searcher"
)

type fakeController struct {
	resources []schema.Resource
	err       error

	gotSkill string
	gotType  string
	gotPrice string
	gotLimit int
}

func (f *fakeController) GetRanked(skill string, typeFilter string, priceFilter string, limit int) ([]schema.Resource, bool, error) {
	f.gotSkill, f.gotType, f.gotPrice, f.gotLimit = skill, typeFilter, priceFilter, limit
	if f.err != nil {
		return nil, true, f.err
	}
	return f.resources, false, nil
}

func (f *fakeController) Refresh(skill string) error {
	return f.err
}

func discardLogger() *log.Logger {
	logger := log.New()
	logger.SetOutput(ioutil.Discard)
	return logger
}

func serve(t *testing.T, ctrl *fakeController, target string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewHTTPServer(discardLogger(), &config.Config{}, ctrl)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	h.Handler().ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	w := serve(t, &fakeController{}, "/api/health")
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestGetResourcesMissingSkill(t *testing.T) {
	ctrl := &fakeController{}
	w := serve(t, ctrl, "/api/resources")
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	// 前置条件校验必须发生在core之前
	if ctrl.gotSkill != "" {
		t.Error("controller must not be called without skill")
	}
}

func TestGetResourcesOK(t *testing.T) {
	ctrl := &fakeController{resources: []schema.Resource{
		{SkillName: "python", Title: "A", URL: "https://a", Type: enum.ResourceTypeCourse, Price: enum.PriceFree},
		{SkillName: "python", Title: "B", URL: "https://b", Type: enum.ResourceTypeArticle, Price: enum.PriceUnknown},
	}}
	w := serve(t, ctrl, "/api/resources?skill=python&type=course&price=free")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body struct {
		Skill     string            `json:"skill"`
		Count     int               `json:"count"`
		Resources []schema.Resource `json:"resources"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if body.Count != 2 || len(body.Resources) != 2 {
		t.Errorf("expected count 2, got %d/%d", body.Count, len(body.Resources))
	}
	if ctrl.gotSkill != "python" || ctrl.gotType != "course" || ctrl.gotPrice != "free" {
		t.Errorf("filters not passed through: %+v", ctrl)
	}
	if ctrl.gotLimit != enum.DefaultResultLimit {
		t.Errorf("expected default limit %d, got %d", enum.DefaultResultLimit, ctrl.gotLimit)
	}
}

func TestGetResourcesCustomLimit(t *testing.T) {
	ctrl := &fakeController{}
	serve(t, ctrl, "/api/resources?skill=python&limit=5")
	if ctrl.gotLimit != 5 {
		t.Errorf("expected limit 5, got %d", ctrl.gotLimit)
	}

	// 非法limit回退到默认值
	serve(t, ctrl, "/api/resources?skill=python&limit=abc")
	if ctrl.gotLimit != enum.DefaultResultLimit {
		t.Errorf("expected default limit on bad input, got %d", ctrl.gotLimit)
	}
}

func TestGetResourcesUpstreamDown(t *testing.T) {
	ctrl := &fakeController{err: fmt.Errorf("%w: timeout", searcher.ErrUpstreamUnavailable)}
	w := serve(t, ctrl, "/api/resources?skill=rust")

	// 上游不可用映射为空结果+提示，而不是5xx
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Count     int               `json:"count"`
		Resources []schema.Resource `json:"resources"`
		Message   string            `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if body.Count != 0 || len(body.Resources) != 0 {
		t.Errorf("expected empty result set, got %+v", body)
	}
	if body.Message == "" {
		t.Error("expected a try-again message")
	}
}

func TestGetResourcesStorageFailure(t *testing.T) {
	ctrl := &fakeController{err: fmt.Errorf("disk I/O error")}
	w := serve(t, ctrl, "/api/resources?skill=rust")
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500 for storage failure, got %d", w.Code)
	}
}
