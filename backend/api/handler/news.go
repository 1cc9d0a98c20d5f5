package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/RAJAT9988/news-publisher/backend/common"
	"github.com/RAJAT9988/news-publisher/backend/model"
	"github.com/RAJAT9988/news-publisher/backend/service"
)

// CreateNewsRequest is the multipart form for POST /api/news. The optional
// image file is handled separately.
type CreateNewsRequest struct {
	Title    string `form:"title" binding:"required,notblank"`
	Subtitle string `form:"subtitle"`
	Date     string `form:"date" binding:"omitempty,newsdate"`
	Content  string `form:"content" binding:"required,notblank"`
}

// RegisterValidations installs the custom form validations on gin's binding
// engine. Must run before the router serves requests.
func RegisterValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
		_ = v.RegisterValidation("newsdate", func(fl validator.FieldLevel) bool {
			_, err := time.Parse("2006-01-02", fl.Field().String())
			return err == nil
		})
	}
}

// ListNews handles GET /api/news. Image paths are rewritten to absolute
// URLs using the request's scheme and host.
func ListNews(c *gin.Context) {
	items := model.NewsDB.All()
	c.JSON(http.StatusOK, withAbsoluteImageURLs(c, items))
}

// GetNews handles GET /api/news/:id. A non-numeric id behaves as not found.
func GetNews(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		common.RespNotFound(c, "news not found")
		return
	}

	item, err := model.NewsDB.ByID(id)
	if err != nil {
		common.RespNotFound(c, "news not found")
		return
	}

	c.JSON(http.StatusOK, absolutizeImageURL(c, item))
}

// CreateNews handles POST /api/news. The attachment is checked before the
// form fields, matching the upload filter of the admin page.
func CreateNews(c *gin.Context) {
	image, err := c.FormFile("image")
	if err != nil {
		if !errors.Is(err, http.ErrMissingFile) {
			common.RespError(c, http.StatusBadRequest, "invalid multipart form", err)
			return
		}
		image = nil
	}

	if image != nil {
		if !strings.HasPrefix(image.Header.Get("Content-Type"), "image/") {
			common.RespErrorStr(c, http.StatusBadRequest, "only image uploads are accepted")
			return
		}
		if image.Size > common.MaxImageSize {
			common.RespErrorStr(c, http.StatusBadRequest, "image exceeds the 5 MiB limit")
			return
		}
	}

	var req CreateNewsRequest
	if err := c.ShouldBind(&req); err != nil {
		common.RespError(c, http.StatusBadRequest, "title and content are required", err)
		return
	}

	created, err := service.CreateNews(req.Title, req.Subtitle, req.Date, req.Content, image)
	if err != nil {
		common.RespError(c, http.StatusInternalServerError, "failed to save news", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"news":    created,
	})
}

// DeleteNews handles DELETE /api/news/:id, removing the item and its upload
// file.
func DeleteNews(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		common.RespNotFound(c, "news not found")
		return
	}

	if err := service.DeleteNews(id); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			common.RespNotFound(c, "news not found")
			return
		}
		common.RespError(c, http.StatusInternalServerError, "failed to delete news", err)
		return
	}

	common.RespSuccess(c)
}

func requestBaseURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host
}

func absolutizeImageURL(c *gin.Context, item model.News) model.News {
	if item.Image != nil {
		url := requestBaseURL(c) + *item.Image
		item.Image = &url
	}
	return item
}

func withAbsoluteImageURLs(c *gin.Context, items []model.News) []model.News {
	result := make([]model.News, len(items))
	for i, item := range items {
		result[i] = absolutizeImageURL(c, item)
	}
	return result
}
