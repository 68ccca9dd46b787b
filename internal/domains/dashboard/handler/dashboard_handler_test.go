package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	auditModel "portfolio-backend/internal/domains/audit/model"
	"portfolio-backend/internal/domains/dashboard/model"
)

type fakeService struct {
	err error
}

func (f fakeService) Stats(context.Context) (*model.Stats, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &model.Stats{ProjectsCount: 1, SkillsCount: 4, RecentActivity: []auditModel.Entry{}}, nil
}

func serve(svc fakeService) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/dashboard-stats", NewDashboardHandler(svc).Stats)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard-stats", nil))
	return w
}

func TestStats(t *testing.T) {
	w := serve(fakeService{})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":{
		"projectsCount":1,"experienceCount":0,"skillsCount":4,"certificationsCount":0,"recentActivity":[]
	}}`, w.Body.String())
}

func TestStats_Error(t *testing.T) {
	w := serve(fakeService{err: errors.New("down")})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
