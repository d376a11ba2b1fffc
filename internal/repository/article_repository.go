package repository

import (
	"context"
	"editorial/internal/models"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	articleCacheKeyPrefix = "article:"
	allArticlesCacheKey   = "articles:all"
	cacheExpiration       = 30 * time.Minute
)

var ErrArticleNotFound = errors.New("article not found")

type ArticleRepository interface {
	// Save persists the article with its attachments and author links in one
	// transaction; detached attachments are orphaned (article_id cleared) in
	// the same transaction, never in between.
	Save(article *models.Article, detached []models.Attachment) error
	FindByID(id uint) (*models.Article, error)
	FindAll() ([]models.Article, error)
	FindByAuthorID(authorID uint) ([]models.Article, error)
	FindByFilters(status *models.Status, censorID *uint) ([]models.Article, error)
	Delete(id uint) error
	InvalidateCache(id uint) error
	InvalidateAllCache() error
}

type articleRepository struct {
	db    *gorm.DB
	redis *redis.Client
	ctx   context.Context
}

func getCacheKey(id uint) string {
	return fmt.Sprintf("%s%d", articleCacheKeyPrefix, id)
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db, redis: nil, ctx: context.Background()}
}

func NewCachedArticleRepository(db *gorm.DB, redisClient *redis.Client) ArticleRepository {
	return &articleRepository{db: db, redis: redisClient, ctx: context.Background()}
}

func (r *articleRepository) preload(db *gorm.DB) *gorm.DB {
	return db.Preload("Authors").Preload("Attachments").Preload("Censor").Preload("Category")
}

func (r *articleRepository) Save(article *models.Article, detached []models.Attachment) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(article).Error; err != nil {
			return err
		}
		for i := range detached {
			if err := tx.Model(&models.Attachment{}).
				Where("id = ?", detached[i].ID).
				Update("article_id", nil).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("Error saving article: %v", err)
		return err
	}

	if r.redis != nil {
		_ = r.InvalidateCache(article.ID)
		_ = r.InvalidateAllCache()
	}
	return nil
}

func (r *articleRepository) FindByID(id uint) (*models.Article, error) {
	if r.redis != nil {
		cachedData, err := r.redis.Get(r.ctx, getCacheKey(id)).Result()
		if err == nil {
			var article models.Article
			if err := json.Unmarshal([]byte(cachedData), &article); err == nil {
				return &article, nil
			}
			log.Printf("Failed to unmarshal cached article: %v", err)
		}
	}

	var article models.Article
	if err := r.preload(r.db).First(&article, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}

	if r.redis != nil {
		articleJSON, err := json.Marshal(article)
		if err == nil {
			if err := r.redis.Set(r.ctx, getCacheKey(id), articleJSON, cacheExpiration).Err(); err != nil {
				log.Printf("Failed to cache article ID %d: %v", id, err)
			}
		}
	}
	return &article, nil
}

func (r *articleRepository) FindAll() ([]models.Article, error) {
	if r.redis != nil {
		cachedData, err := r.redis.Get(r.ctx, allArticlesCacheKey).Result()
		if err == nil {
			var articles []models.Article
			if err := json.Unmarshal([]byte(cachedData), &articles); err == nil {
				return articles, nil
			}
		}
	}

	var articles []models.Article
	if err := r.preload(r.db).Find(&articles).Error; err != nil {
		return nil, err
	}

	if r.redis != nil {
		articlesJSON, err := json.Marshal(articles)
		if err == nil {
			if err := r.redis.Set(r.ctx, allArticlesCacheKey, articlesJSON, cacheExpiration).Err(); err != nil {
				log.Printf("Failed to cache all articles: %v", err)
			}
		}
	}
	return articles, nil
}

func (r *articleRepository) FindByAuthorID(authorID uint) ([]models.Article, error) {
	var articles []models.Article
	err := r.preload(r.db).
		Joins("JOIN article_authors ON article_authors.article_id = articles.id").
		Where("article_authors.author_id = ?", authorID).
		Find(&articles).Error
	return articles, err
}

func (r *articleRepository) FindByFilters(status *models.Status, censorID *uint) ([]models.Article, error) {
	query := r.preload(r.db)
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	if censorID != nil {
		query = query.Where("censor_id = ?", *censorID)
	}
	var articles []models.Article
	err := query.Find(&articles).Error
	return articles, err
}

func (r *articleRepository) Delete(id uint) error {
	if err := r.db.Delete(&models.Article{}, id).Error; err != nil {
		return err
	}
	if r.redis == nil {
		return nil
	}
	_ = r.InvalidateCache(id)
	_ = r.InvalidateAllCache()
	return nil
}

func (r *articleRepository) InvalidateCache(id uint) error {
	if r.redis == nil {
		return nil
	}
	return r.redis.Del(r.ctx, getCacheKey(id)).Err()
}

func (r *articleRepository) InvalidateAllCache() error {
	if r.redis == nil {
		return nil
	}
	return r.redis.Del(r.ctx, allArticlesCacheKey).Err()
}
