package postgres

import (
	"linkvault/internal/domain/entity"
	"linkvault/internal/infra/persistence/model"
)

// Mapping between persistence models and domain entities. The persistence
// layer never returns a model to callers.

func toUserDomain(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:           m.ID,
		Email:        m.Email,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func fromUserDomain(user *entity.User) *model.UserModel {
	if user == nil {
		return nil
	}

	return &model.UserModel{
		ID:           user.ID,
		Email:        user.Email,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}

func toRefreshTokenDomain(m *model.RefreshTokenModel) *entity.RefreshToken {
	if m == nil {
		return nil
	}

	return &entity.RefreshToken{
		ID:        m.ID,
		UserID:    m.UserID,
		TokenHash: m.TokenHash,
		ExpiresAt: m.ExpiresAt,
		CreatedAt: m.CreatedAt,
	}
}

func fromRefreshTokenDomain(token *entity.RefreshToken) *model.RefreshTokenModel {
	if token == nil {
		return nil
	}

	return &model.RefreshTokenModel{
		ID:        token.ID,
		UserID:    token.UserID,
		TokenHash: token.TokenHash,
		ExpiresAt: token.ExpiresAt,
		CreatedAt: token.CreatedAt,
	}
}

func toCategoryDomain(m *model.CategoryModel) *entity.Category {
	if m == nil {
		return nil
	}

	return &entity.Category{
		ID:          m.ID,
		UserID:      m.UserID,
		Name:        m.Name,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func fromCategoryDomain(category *entity.Category) *model.CategoryModel {
	if category == nil {
		return nil
	}

	return &model.CategoryModel{
		ID:          category.ID,
		UserID:      category.UserID,
		Name:        category.Name,
		Description: category.Description,
		CreatedAt:   category.CreatedAt,
		UpdatedAt:   category.UpdatedAt,
	}
}

func toBookmarkDomain(m *model.BookmarkModel) *entity.Bookmark {
	if m == nil {
		return nil
	}

	bookmark := &entity.Bookmark{
		ID:          m.ID,
		UserID:      m.UserID,
		CategoryID:  m.CategoryID,
		Title:       m.Title,
		URL:         m.URL,
		Description: m.Description,
		Category:    toCategoryDomain(m.Category),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}

	if len(m.Tags) > 0 {
		bookmark.Tags = make([]*entity.Tag, 0, len(m.Tags))
		for _, tagM := range m.Tags {
			bookmark.Tags = append(bookmark.Tags, toTagDomain(tagM))
		}
	}

	return bookmark
}

func fromBookmarkDomain(bookmark *entity.Bookmark) *model.BookmarkModel {
	if bookmark == nil {
		return nil
	}

	m := &model.BookmarkModel{
		ID:          bookmark.ID,
		UserID:      bookmark.UserID,
		CategoryID:  bookmark.CategoryID,
		Title:       bookmark.Title,
		URL:         bookmark.URL,
		Description: bookmark.Description,
		CreatedAt:   bookmark.CreatedAt,
		UpdatedAt:   bookmark.UpdatedAt,
	}

	if len(bookmark.Tags) > 0 {
		m.Tags = make([]*model.TagModel, 0, len(bookmark.Tags))
		for _, tag := range bookmark.Tags {
			m.Tags = append(m.Tags, fromTagDomain(tag))
		}
	}

	return m
}

func toTagDomain(m *model.TagModel) *entity.Tag {
	if m == nil {
		return nil
	}

	return &entity.Tag{
		ID:   m.ID,
		Name: m.Name,
	}
}

func fromTagDomain(tag *entity.Tag) *model.TagModel {
	if tag == nil {
		return nil
	}

	return &model.TagModel{
		ID:   tag.ID,
		Name: tag.Name,
	}
}
