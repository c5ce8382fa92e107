package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostModel struct {
	ID          string         `gorm:"type:uuid;primary_key" json:"id"`
	Title       string         `gorm:"type:varchar(256);not null" json:"title"`
	Text        string         `gorm:"not null" json:"text"`
	PubDate     time.Time      `gorm:"not null;index" json:"pub_date"`
	IsPublished bool           `gorm:"default:true" json:"is_published"`
	AuthorID    string         `gorm:"type:uuid;not null;index" json:"author_id"`
	Author      *UserModel     `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	CategoryID  *string        `gorm:"type:uuid;index" json:"category_id,omitempty"`
	Category    *CategoryModel `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	LocationID  *string        `gorm:"type:uuid" json:"location_id,omitempty"`
	Location    *LocationModel `gorm:"foreignKey:LocationID" json:"location,omitempty"`
	ImageURL    string         `gorm:"type:varchar(500)" json:"image_url"`

	// Filled by a COUNT subquery when listing; not a column.
	CommentCount int64 `gorm:"->;-:migration" json:"comment_count"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (PostModel) TableName() string {
	return "posts"
}

func (p *PostModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
