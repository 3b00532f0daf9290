package database

import (
	"context"

	"blogicum/internal/core/comment"
	"blogicum/internal/core/post"
	postPort "blogicum/internal/ports/post"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const commentCountColumn = "(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id) AS comment_count"

// PostRepositoryDatabase پیاده‌سازی PostRepository برای دیتابیس
type PostRepositoryDatabase struct {
	db *gorm.DB
}

// NewPostRepositoryDatabase سازنده PostRepositoryDatabase
func NewPostRepositoryDatabase(db *gorm.DB) *PostRepositoryDatabase {
	return &PostRepositoryDatabase{db: db}
}

func (repo *PostRepositoryDatabase) Create(ctx context.Context, p *post.Post) (*post.Post, error) {
	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

// Update writes the editable columns. MySQL reports 0 affected rows when
// nothing changed, so the row count is not used to detect a missing record.
func (repo *PostRepositoryDatabase) Update(ctx context.Context, p *post.Post) error {
	return repo.db.WithContext(ctx).Model(p).Omit(clause.Associations).
		Select("title", "text", "pub_date", "is_published", "category_id", "location_id", "updated_at").
		Updates(p).Error
}

// Delete پست و کامنت‌های آن را در یک تراکنش حذف می‌کند
func (repo *PostRepositoryDatabase) Delete(ctx context.Context, id uuid.UUID) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&comment.Comment{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&post.Post{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return post.ErrNotFound
		}
		return nil
	})
}

func (repo *PostRepositoryDatabase) FindByID(ctx context.Context, id uuid.UUID) (*post.Post, error) {
	var p post.Post
	if err := repo.withRelations(repo.db.WithContext(ctx).Model(&post.Post{})).
		Where("posts.id = ?", id).
		First(&p).Error; err != nil {
		return nil, translate(err, post.ErrNotFound)
	}
	return &p, nil
}

func (repo *PostRepositoryDatabase) Count(ctx context.Context, filter postPort.PostFilter) (int64, error) {
	var total int64
	if err := repo.scoped(ctx, filter).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (repo *PostRepositoryDatabase) List(ctx context.Context, filter postPort.PostFilter, offset, limit int) ([]*post.Post, error) {
	var posts []*post.Post
	if err := repo.withRelations(repo.scoped(ctx, filter)).
		Order("posts.pub_date DESC").
		Order("posts.created_at ASC").
		Order("posts.id ASC").
		Offset(offset).
		Limit(limit).
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// scoped applies filter to a query over posts.
func (repo *PostRepositoryDatabase) scoped(ctx context.Context, filter postPort.PostFilter) *gorm.DB {
	q := repo.db.WithContext(ctx).Model(&post.Post{})
	if filter.AuthorID != nil {
		q = q.Where("posts.author_id = ?", *filter.AuthorID)
	}
	if filter.CategoryID != nil {
		q = q.Where("posts.category_id = ?", *filter.CategoryID)
	}
	if filter.VisibleBefore != nil {
		q = q.Joins("LEFT JOIN categories ON categories.id = posts.category_id").
			Where("posts.is_published = ?", true).
			Where("posts.pub_date < ?", *filter.VisibleBefore).
			Where("(posts.category_id IS NULL OR categories.is_published = ?)", true)
	}
	return q
}

// withRelations selects the comment_count annotation and preloads the
// author, category and location.
func (repo *PostRepositoryDatabase) withRelations(q *gorm.DB) *gorm.DB {
	return q.Select("posts.*, " + commentCountColumn).
		Preload("Author").
		Preload("Category").
		Preload("Location")
}
