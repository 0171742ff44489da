package repository

import (
	"fmt"

	"github.com/user/kinoclub/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB 初始化数据库连接
func InitDB(databaseURL string) (*gorm.DB, error) {
	// TranslateError 让唯一索引冲突统一转换为 gorm.ErrDuplicatedKey
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("无法连接数据库: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// 测试连接
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库 ping 失败: %w", err)
	}

	// 设置连接池
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	// 自动建表
	if err := db.AutoMigrate(
		&model.User{},
		&model.RefreshToken{},
		&model.Favorite{},
		&model.Comment{},
		&model.Reaction{},
	); err != nil {
		return nil, fmt.Errorf("自动迁移失败: %w", err)
	}

	return db, nil
}

// Repositories 仓库集合
type Repositories struct {
	DB       *gorm.DB
	User     *UserRepository
	Token    *TokenRepository
	Favorite *FavoriteRepository
	Comment  *CommentRepository
	Reaction *ReactionRepository
}

// NewRepositories 创建仓库集合
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		DB:       db,
		User:     NewUserRepository(db),
		Token:    NewTokenRepository(db),
		Favorite: NewFavoriteRepository(db),
		Comment:  NewCommentRepository(db),
		Reaction: NewReactionRepository(db),
	}
}
