package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestOK(t *testing.T) {
	router := setupTestRouter()
	router.GET("/test", func(c *gin.Context) {
		OK(c, http.StatusOK, gin.H{"id": "abc"}, "Fetched successfully")
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, float64(200), resp["statusCode"])
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "Fetched successfully", resp["message"])
	assert.NotNil(t, resp["data"])
}

func TestFail_KnownError(t *testing.T) {
	router := setupTestRouter()
	router.GET("/test", func(c *gin.Context) {
		Fail(c, NotFound("Video not found"))
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, float64(404), resp["statusCode"])
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "Video not found", resp["message"])
}

func TestFail_WrappedError(t *testing.T) {
	router := setupTestRouter()
	router.GET("/test", func(c *gin.Context) {
		wrapped := errors.Join(errors.New("context"), Forbidden("Not the owner"))
		Fail(c, wrapped)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestFail_UnknownError(t *testing.T) {
	router := setupTestRouter()
	router.GET("/test", func(c *gin.Context) {
		Fail(c, errors.New("connection string leaked: surreal://root:root@db"))
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &resp)
	// Unknown errors never leak internal detail.
	assert.Equal(t, "Internal server error", resp["message"])
	assert.Equal(t, false, resp["success"])
}

func TestFail_ValidationWithDetails(t *testing.T) {
	router := setupTestRouter()
	router.GET("/test", func(c *gin.Context) {
		Fail(c, Validation("Invalid request", "title is required", "description is required"))
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &resp)
	errs := resp["errors"].([]interface{})
	assert.Len(t, errs, 2)
}

func TestErrorTaxonomyCodes(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, Validation("v").Code)
	assert.Equal(t, http.StatusUnauthorized, Unauthorized("u").Code)
	assert.Equal(t, http.StatusForbidden, Forbidden("f").Code)
	assert.Equal(t, http.StatusNotFound, NotFound("n").Code)
	assert.Equal(t, http.StatusConflict, Conflict("c").Code)
	assert.Equal(t, http.StatusInternalServerError, Upstream("s").Code)
}
