package entity

import "time"

type Post struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Text        string    `json:"text"`
	PubDate     time.Time `json:"pub_date"`
	IsPublished bool      `json:"is_published"`
	AuthorID    string    `json:"author_id"`
	Author      *User     `json:"author,omitempty"`
	CategoryID  *string   `json:"category_id,omitempty"`
	Category    *Category `json:"category,omitempty"`
	LocationID  *string   `json:"location_id,omitempty"`
	Location    *Location `json:"location,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`

	// CommentCount is attached by the repository when listing.
	CommentCount int64 `json:"comment_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
