package service

import (
	"Pulseboard/internal/api/dto"
	"Pulseboard/internal/model"
	"Pulseboard/internal/repository"
	"context"
	log "log/slog"

	json "github.com/goccy/go-json"
)

type PostService interface {
	CreatePost(ctx context.Context, userID uint64, dto *dto.CreatePostDTO) (*dto.PostDTO, error)
	GetPostList(ctx context.Context, userID uint64, limit, offset int) ([]*dto.PostDTO, error)
	DeletePost(ctx context.Context, userID, postID uint64) error
}

type PostServiceImpl struct {
	postRepo     repository.PostRepo
	platformRepo repository.PlatformRepo
}

func NewPostService(postRepo repository.PostRepo, platformRepo repository.PlatformRepo) PostService {
	return &PostServiceImpl{
		postRepo:     postRepo,
		platformRepo: platformRepo,
	}
}

func (s *PostServiceImpl) CreatePost(ctx context.Context, userID uint64, createDTO *dto.CreatePostDTO) (*dto.PostDTO, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}

	platform, err := s.platformRepo.GetPlatformByName(ctx, createDTO.Platform)
	if err != nil {
		return nil, err
	}
	if platform == nil {
		return nil, ErrPlatformNotConfigured
	}

	status := model.PostStatusDraft
	if createDTO.ScheduledAt != nil {
		status = model.PostStatusScheduled
	}

	post := &model.Post{
		UserID:      userID,
		PlatformID:  platform.ID,
		Content:     createDTO.Content,
		Status:      status,
		ScheduledAt: createDTO.ScheduledAt,
	}
	if err = s.postRepo.CreatePost(ctx, post); err != nil {
		return nil, err
	}

	return s.toPostDTO(ctx, post, platform.Name), nil
}

func (s *PostServiceImpl) GetPostList(ctx context.Context, userID uint64, limit, offset int) ([]*dto.PostDTO, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	posts, err := s.postRepo.GetPostsByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}

	// 平台名按 ID 做一次性缓存，避免每条重复查询
	names := make(map[uint64]string)
	list := make([]*dto.PostDTO, 0, len(posts))
	for _, post := range posts {
		name, ok := names[post.PlatformID]
		if !ok {
			platform, err := s.platformRepo.GetPlatformById(ctx, post.PlatformID)
			if err != nil {
				return nil, err
			}
			if platform != nil {
				name = platform.Name
			}
			names[post.PlatformID] = name
		}
		list = append(list, s.toPostDTO(ctx, post, name))
	}
	return list, nil
}

func (s *PostServiceImpl) DeletePost(ctx context.Context, userID, postID uint64) error {
	if userID == 0 {
		return ErrUnauthenticated
	}

	post, err := s.postRepo.GetPostById(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil || post.UserID != userID {
		return ErrPostNotFound
	}
	return s.postRepo.DeletePost(ctx, postID)
}

func (s *PostServiceImpl) toPostDTO(ctx context.Context, post *model.Post, platformName string) *dto.PostDTO {
	postDTO := &dto.PostDTO{
		ID:          post.ID,
		Platform:    platformName,
		Content:     post.Content,
		Status:      post.Status,
		ScheduledAt: post.ScheduledAt,
		PostedAt:    post.PostedAt,
		CreatedAt:   post.CreatedAt,
	}

	if len(post.EngagementStats) > 0 {
		stats := make(map[string]int)
		if err := json.Unmarshal(post.EngagementStats, &stats); err != nil {
			// 历史脏数据不致命，返回时直接省略互动统计
			log.WarnContext(ctx, "failed to parse engagement stats", "post_id", post.ID, "err", err)
		} else {
			postDTO.EngagementStats = stats
		}
	}
	return postDTO
}
