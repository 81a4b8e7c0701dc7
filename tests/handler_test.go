package tests

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"assettrack/internal/handler"
	"assettrack/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func postJSON(t *testing.T, r *gin.Engine, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// Both validation paths — DTO tags and service-layer checks — answer 422.
func TestCreateAsset_ValidationFailuresAre422(t *testing.T) {
	gin.SetMode(gin.TestMode)
	f := newAssetFixture()
	cat := f.org.seedCategory(f.companyID, "COMP")

	h := handler.NewAssetsHandler(f.svc)
	r := gin.New()
	r.POST("/assets", middleware.JWTAuth(testJWTSecret), h.Create)

	token := signToken(t, uuid.NewString(), f.companyID.String(), "manager", time.Hour)

	// Tag validation: category_id is not a UUID.
	w := postJSON(t, r,
		"/assets",
		`{"asset_tag":"IT-0013","category_id":"not-a-uuid","name":"Bad category"}`,
		token,
	)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// Service validation: the body binds and passes tags, but the date cannot
	// be parsed.
	w = postJSON(t, r,
		"/assets",
		fmt.Sprintf(`{"asset_tag":"IT-0014","category_id":"%s","name":"Bad date","purchase_date":"31-12-2023"}`, cat.ID.String()),
		token,
	)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
