package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/user/kinoclub/internal/model"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// ErrInvalidMovieID 影片 ID 不是正整数
var ErrInvalidMovieID = errors.New("无效的影片 ID")

// ReactionState 用户对影片的态度
type ReactionState string

const (
	ReactionLike    ReactionState = "like"
	ReactionDislike ReactionState = "dislike"
	ReactionNone    ReactionState = "none"
)

// ReactionSummary 影片的赞/踩汇总
type ReactionSummary struct {
	Likes        int64         `json:"likes"`
	Dislikes     int64         `json:"dislikes"`
	UserReaction ReactionState `json:"userReaction"`
}

// ReactionStore 反应存储接口，由 repository.ReactionRepository 实现
type ReactionStore interface {
	Find(userID, movieID int) (*model.Reaction, error)
	Create(userID, movieID int, isLike bool) error
	UpdatePolarity(id int, isLike bool) error
	Delete(id int) error
	CountByMovie(movieID int, isLike bool) (int64, error)
}

// ReactionService 三态点赞引擎
// 同一 (用户, 影片) 至多一行：无 → 赞/踩，重复点击删除，反向点击翻转
type ReactionService struct {
	store  ReactionStore
	counts *cache.Cache
	group  singleflight.Group
}

// 汇总计数的缓存时间，写操作会主动失效
const countsCacheTTL = 10 * time.Second

func NewReactionService(store ReactionStore) *ReactionService {
	return &ReactionService{
		store:  store,
		counts: cache.New(countsCacheTTL, time.Minute),
	}
}

// SetReaction 切换用户对影片的态度并返回最新汇总
func (s *ReactionService) SetReaction(userID, movieID int, like bool) (*ReactionSummary, error) {
	if movieID <= 0 {
		return nil, ErrInvalidMovieID
	}

	state, err := s.toggle(userID, movieID, like)
	if err != nil {
		return nil, err
	}

	// 写操作后丢弃旧计数
	s.counts.Delete(countsKey(movieID))

	likes, dislikes, err := s.movieCounts(movieID)
	if err != nil {
		return nil, err
	}

	return &ReactionSummary{
		Likes:        likes,
		Dislikes:     dislikes,
		UserReaction: state,
	}, nil
}

// GetSummary 获取影片汇总；userID 为 nil 时 userReaction 固定为 none
func (s *ReactionService) GetSummary(movieID int, userID *int) (*ReactionSummary, error) {
	if movieID <= 0 {
		return nil, ErrInvalidMovieID
	}

	likes, dislikes, err := s.movieCounts(movieID)
	if err != nil {
		return nil, err
	}

	state := ReactionNone
	if userID != nil {
		reaction, err := s.store.Find(*userID, movieID)
		if err != nil {
			return nil, err
		}
		state = stateOf(reaction)
	}

	return &ReactionSummary{
		Likes:        likes,
		Dislikes:     dislikes,
		UserReaction: state,
	}, nil
}

// toggle 执行三态状态机，返回用户最终态度
func (s *ReactionService) toggle(userID, movieID int, like bool) (ReactionState, error) {
	reaction, err := s.store.Find(userID, movieID)
	if err != nil {
		return "", err
	}

	if reaction == nil {
		err := s.store.Create(userID, movieID, like)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// 并发请求已抢先建行，按“已设置”处理并重读
			reaction, err = s.store.Find(userID, movieID)
			if err != nil {
				return "", err
			}
			if reaction == nil || reaction.IsLike == like {
				return stateOfBool(like), nil
			}
			if err := s.store.UpdatePolarity(reaction.ID, like); err != nil {
				return "", err
			}
			return stateOfBool(like), nil
		}
		if err != nil {
			return "", err
		}
		return stateOfBool(like), nil
	}

	if reaction.IsLike == like {
		// 同向重复点击，撤销态度
		if err := s.store.Delete(reaction.ID); err != nil {
			return "", err
		}
		return ReactionNone, nil
	}

	// 反向点击，原地翻转
	if err := s.store.UpdatePolarity(reaction.ID, like); err != nil {
		return "", err
	}
	return stateOfBool(like), nil
}

// movieCounts 读取影片计数，短时缓存 + singleflight 合并并发重算
func (s *ReactionService) movieCounts(movieID int) (int64, int64, error) {
	key := countsKey(movieID)
	if cached, ok := s.counts.Get(key); ok {
		pair := cached.([2]int64)
		return pair[0], pair[1], nil
	}

	val, err, _ := s.group.Do(key, func() (interface{}, error) {
		likes, err := s.store.CountByMovie(movieID, true)
		if err != nil {
			return nil, err
		}
		dislikes, err := s.store.CountByMovie(movieID, false)
		if err != nil {
			return nil, err
		}
		pair := [2]int64{likes, dislikes}
		s.counts.Set(key, pair, countsCacheTTL)
		return pair, nil
	})
	if err != nil {
		return 0, 0, err
	}

	pair := val.([2]int64)
	return pair[0], pair[1], nil
}

func countsKey(movieID int) string {
	return fmt.Sprintf("reaction:counts:%d", movieID)
}

func stateOf(reaction *model.Reaction) ReactionState {
	if reaction == nil {
		return ReactionNone
	}
	return stateOfBool(reaction.IsLike)
}

func stateOfBool(like bool) ReactionState {
	if like {
		return ReactionLike
	}
	return ReactionDislike
}
