package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"portfolio-backend/internal/domains/audit/model"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeService struct {
	filter model.Filter
	err    error
}

func (f *fakeService) Record(context.Context, string, string, string, model.Action, any, any) {}

func (f *fakeService) List(_ context.Context, filter model.Filter) ([]model.Entry, error) {
	f.filter = filter
	return nil, f.err
}

func (f *fakeService) Recent(context.Context, int) ([]model.Entry, error) { return nil, f.err }

func serve(svc *fakeService, url string) *httptest.ResponseRecorder {
	r := gin.New()
	r.GET("/audit-log", NewAuditHandler(svc).List)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))
	return w
}

func TestList(t *testing.T) {
	svc := &fakeService{}
	w := serve(svc, "/audit-log?table=skills&record_id=go&limit=5")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":[]}`, w.Body.String())
	assert.Equal(t, model.Filter{TableName: "skills", RecordID: "go", Limit: 5}, svc.filter)
}

func TestList_BadLimit(t *testing.T) {
	w := serve(&fakeService{}, "/audit-log?limit=-3")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestList_StoreError(t *testing.T) {
	w := serve(&fakeService{err: errors.New("down")}, "/audit-log")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
