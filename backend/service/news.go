package service

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/RAJAT9988/news-publisher/backend/common"
	"github.com/RAJAT9988/news-publisher/backend/model"
)

// CreateNews stores the optional upload on disk, builds the news item with
// its defaults applied and inserts it into the collection. If the insert
// fails the saved upload is cleaned up so no orphaned file is left behind.
func CreateNews(title, subtitle, date, content string, image *multipart.FileHeader) (model.News, error) {
	now := time.Now().UTC()

	var imagePath *string
	if image != nil {
		name := common.UploadFilename(image.Filename, now)
		if err := saveUpload(image, filepath.Join(common.UploadPath, name)); err != nil {
			return model.News{}, fmt.Errorf("save upload %s: %w", name, err)
		}
		link := "/uploads/" + name
		imagePath = &link
	}

	if date = strings.TrimSpace(date); date == "" {
		date = now.Format("2006-01-02")
	}

	item := model.News{
		Title:     strings.TrimSpace(title),
		Subtitle:  strings.TrimSpace(subtitle),
		Date:      date,
		Content:   strings.TrimSpace(content),
		Image:     imagePath,
		CreatedAt: now,
	}

	created, err := model.NewsDB.Insert(item)
	if err != nil {
		if imagePath != nil {
			removeUpload(*imagePath)
		}
		return model.News{}, err
	}
	return created, nil
}

// DeleteNews removes the item and its upload file. A missing upload file is
// tolerated; the item is gone either way.
func DeleteNews(id int) error {
	removed, err := model.NewsDB.Delete(id)
	if err != nil {
		return err
	}
	if removed.Image != nil {
		removeUpload(*removed.Image)
	}
	return nil
}

func saveUpload(file *multipart.FileHeader, dst string) error {
	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, src)
	return err
}

func removeUpload(link string) {
	name := strings.TrimPrefix(link, "/uploads/")
	path := filepath.Join(common.UploadPath, common.SanitizeFilename(name))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		common.SysError(fmt.Sprintf("failed to remove upload %s: %s", path, err.Error()))
	}
}
