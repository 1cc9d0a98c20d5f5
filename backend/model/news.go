package model

import "time"

// News is one record of the news collection. Image is nil when the item has
// no attachment, otherwise a server-relative path like /uploads/<name>.
type News struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Subtitle  string    `json:"subtitle"`
	Date      string    `json:"date"`
	Content   string    `json:"content"`
	Image     *string   `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
}

// nextID returns one more than the highest id in use, or 1 for an empty
// collection. Ids are never reused, even after deletion.
func nextID(items []News) int {
	maxID := 0
	for _, item := range items {
		if item.ID > maxID {
			maxID = item.ID
		}
	}
	return maxID + 1
}
