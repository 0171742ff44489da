package model

import (
	"time"
)

// Favorite 收藏
// (user_id, kinopoisk_id) 唯一索引在存储层保证不重复收藏
type Favorite struct {
	ID          int       `json:"id" db:"id"`
	UserID      int       `json:"user_id" db:"user_id" gorm:"uniqueIndex:idx_user_favorite"`
	KinopoiskID int       `json:"kinopoisk_id" db:"kinopoisk_id" gorm:"uniqueIndex:idx_user_favorite"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// Comment 影片评论
type Comment struct {
	ID          int       `json:"id" db:"id"`
	UserID      int       `json:"user_id" db:"user_id" gorm:"index"`
	KinopoiskID int       `json:"kinopoisk_id" db:"kinopoisk_id" gorm:"index"`
	Text        string    `json:"text" db:"text"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`

	// 列表查询时填充作者昵称
	AuthorLogin string `json:"author_login,omitempty" gorm:"-"`
}

// Reaction 点赞/点踩
// 行不存在即表示“无态度”，IsLike 表示态度方向
type Reaction struct {
	ID        int       `json:"id" db:"id"`
	UserID    int       `json:"user_id" db:"user_id" gorm:"uniqueIndex:idx_user_reaction"`
	MovieID   int       `json:"movie_id" db:"movie_id" gorm:"uniqueIndex:idx_user_reaction"`
	IsLike    bool      `json:"is_like" db:"is_like"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
