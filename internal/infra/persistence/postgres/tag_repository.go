package postgres

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"linkvault/internal/domain/entity"
	"linkvault/internal/domain/repository"
	"linkvault/internal/infra/persistence/model"
)

// tagRepository implements the domain's TagRepository interface using GORM.
type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository is the constructor for tagRepository.
func NewTagRepository(db *gorm.DB) repository.TagRepository {
	return &tagRepository{db: db}
}

// FindOrCreate resolves each name to a tag row, creating missing ones. Names
// are trimmed and lowercased first; empty and duplicate names are dropped.
func (repo *tagRepository) FindOrCreate(ctx context.Context, names []string) ([]*entity.Tag, error) {
	normalized := normalizeTagNames(names)
	if len(normalized) == 0 {
		return nil, nil
	}

	toInsert := make([]*model.TagModel, 0, len(normalized))
	for _, name := range normalized {
		toInsert = append(toInsert, &model.TagModel{Name: name})
	}

	// ON CONFLICT DO NOTHING keeps concurrent inserts of the same name safe.
	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		Create(&toInsert).Error; err != nil {
		return nil, errors.Wrap(err, "failed to upsert tags")
	}

	// Re-read to pick up the ids of rows that already existed.
	var tagMs []*model.TagModel
	if err := repo.db.WithContext(ctx).
		Where("name IN ?", normalized).
		Order("name ASC").
		Find(&tagMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load tags")
	}

	tags := make([]*entity.Tag, 0, len(tagMs))
	for _, tagM := range tagMs {
		tags = append(tags, toTagDomain(tagM))
	}

	return tags, nil
}

func normalizeTagNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	normalized := make([]string, 0, len(names))

	for _, name := range names {
		cleaned := strings.ToLower(strings.TrimSpace(name))
		if cleaned == "" {
			continue
		}
		if _, ok := seen[cleaned]; ok {
			continue
		}
		seen[cleaned] = struct{}{}
		normalized = append(normalized, cleaned)
	}

	return normalized
}
