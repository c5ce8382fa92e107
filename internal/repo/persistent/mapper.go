package persistent

import (
	"blogium/internal/entity"
	"blogium/internal/model"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:        m.ID,
		Email:     m.Email,
		Username:  m.Username,
		Password:  m.Password,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Role:      entity.UserRole(m.Role),
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:        e.ID,
		Email:     e.Email,
		Username:  e.Username,
		Password:  e.Password,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Role:      string(e.Role),
		IsActive:  e.IsActive,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToCategoryEntity(m *model.CategoryModel) *entity.Category {
	if m == nil {
		return nil
	}

	return &entity.Category{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Slug:        m.Slug,
		IsPublished: m.IsPublished,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToCategoryModel(e *entity.Category) *model.CategoryModel {
	if e == nil {
		return nil
	}

	return &model.CategoryModel{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Slug:        e.Slug,
		IsPublished: e.IsPublished,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToLocationEntity(m *model.LocationModel) *entity.Location {
	if m == nil {
		return nil
	}

	return &entity.Location{
		ID:          m.ID,
		Name:        m.Name,
		IsPublished: m.IsPublished,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToLocationModel(e *entity.Location) *model.LocationModel {
	if e == nil {
		return nil
	}

	return &model.LocationModel{
		ID:          e.ID,
		Name:        e.Name,
		IsPublished: e.IsPublished,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToPostEntity(m *model.PostModel) *entity.Post {
	if m == nil {
		return nil
	}

	return &entity.Post{
		ID:           m.ID,
		Title:        m.Title,
		Text:         m.Text,
		PubDate:      m.PubDate,
		IsPublished:  m.IsPublished,
		AuthorID:     m.AuthorID,
		Author:       ToUserEntity(m.Author),
		CategoryID:   m.CategoryID,
		Category:     ToCategoryEntity(m.Category),
		LocationID:   m.LocationID,
		Location:     ToLocationEntity(m.Location),
		ImageURL:     m.ImageURL,
		CommentCount: m.CommentCount,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func ToPostModel(e *entity.Post) *model.PostModel {
	if e == nil {
		return nil
	}

	return &model.PostModel{
		ID:          e.ID,
		Title:       e.Title,
		Text:        e.Text,
		PubDate:     e.PubDate,
		IsPublished: e.IsPublished,
		AuthorID:    e.AuthorID,
		CategoryID:  e.CategoryID,
		LocationID:  e.LocationID,
		ImageURL:    e.ImageURL,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToCommentEntity(m *model.CommentModel) *entity.Comment {
	if m == nil {
		return nil
	}

	return &entity.Comment{
		ID:        m.ID,
		Text:      m.Text,
		PostID:    m.PostID,
		AuthorID:  m.AuthorID,
		Author:    ToUserEntity(m.Author),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToCommentModel(e *entity.Comment) *model.CommentModel {
	if e == nil {
		return nil
	}

	return &model.CommentModel{
		ID:        e.ID,
		Text:      e.Text,
		PostID:    e.PostID,
		AuthorID:  e.AuthorID,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
