package route

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RAJAT9988/news-publisher/backend/common"
	"github.com/RAJAT9988/news-publisher/backend/model"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	webPath, uploadPath, dataFile := common.WebPath, common.UploadPath, common.DataFile
	t.Cleanup(func() {
		common.WebPath, common.UploadPath, common.DataFile = webPath, uploadPath, dataFile
	})
	common.WebPath = t.TempDir()
	common.UploadPath = t.TempDir()
	common.DataFile = filepath.Join(t.TempDir(), "news.json")
	model.NewsDB = model.NewStore(common.DataFile)

	require.NoError(t, os.WriteFile(filepath.Join(common.WebPath, "index.html"), []byte("<h1>site</h1>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(common.WebPath, "admin.html"), []byte("<h1>admin</h1>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(common.WebPath, "style.css"), []byte("body{}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(common.UploadPath, "123-pic.png"), []byte("png"), 0o644))

	router := gin.New()
	SetRouter(router)
	return router
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestPageRoutes(t *testing.T) {
	router := setupRouter(t)

	for _, path := range []string{"/", "/website"} {
		w := get(router, path)
		assert.Equal(t, http.StatusOK, w.Code, "path %q", path)
		assert.Equal(t, "<h1>site</h1>", w.Body.String())
	}

	w := get(router, "/admin")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "<h1>admin</h1>", w.Body.String())
}

func TestStaticRoutes(t *testing.T) {
	router := setupRouter(t)

	w := get(router, "/style.css")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "body{}", w.Body.String())

	w = get(router, "/uploads/123-pic.png")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "png", w.Body.String())
}

func TestNoRoute(t *testing.T) {
	router := setupRouter(t)

	w := get(router, "/api/unknown")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)

	w = get(router, "/missing.txt")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestApiNewsWired(t *testing.T) {
	router := setupRouter(t)

	w := get(router, "/api/news")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())

	w = get(router, "/api/status")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
}
