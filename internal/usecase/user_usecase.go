package usecase

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"streamtube/internal/entity"
	"streamtube/internal/pipeline"
	"streamtube/internal/repo/persistent"
	"streamtube/pkg/jwt"
	"streamtube/pkg/logger"
	"streamtube/pkg/response"
	"streamtube/pkg/s3"

	"golang.org/x/crypto/bcrypt"
)

type RegisterInput struct {
	Fullname   string
	Email      string
	Username   string
	Password   string
	Avatar     *multipart.FileHeader
	CoverImage *multipart.FileHeader
}

type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type UserUseCase interface {
	Register(ctx context.Context, input RegisterInput) (*entity.User, error)
	Login(ctx context.Context, usernameOrEmail, password string) (*entity.User, *TokenPair, error)
	Logout(ctx context.Context, userID string) error
	RefreshTokens(ctx context.Context, refreshToken string) (*TokenPair, error)
	ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error
	GetCurrentUser(ctx context.Context, userID string) (*entity.User, error)
	UpdateAccount(ctx context.Context, userID, fullname, email string) (*entity.User, error)
	UpdateAvatar(ctx context.Context, userID string, avatar *multipart.FileHeader) (*entity.User, error)
	UpdateCoverImage(ctx context.Context, userID string, coverImage *multipart.FileHeader) (*entity.User, error)
	GetChannelProfile(ctx context.Context, username, principalID string) (*entity.ChannelProfile, error)
	GetWatchHistory(ctx context.Context, userID string, page, limit int) (*pipeline.Page[entity.VideoView], error)
}

type userUseCase struct {
	userRepo   persistent.UserRepository
	jwtService *jwt.Service
	s3Client   *s3.Client
	logger     *logger.Logger
}

func NewUserUseCase(
	userRepo persistent.UserRepository,
	jwtService *jwt.Service,
	s3Client *s3.Client,
	logger *logger.Logger,
) UserUseCase {
	return &userUseCase{
		userRepo:   userRepo,
		jwtService: jwtService,
		s3Client:   s3Client,
		logger:     logger,
	}
}

func (uc *userUseCase) Register(ctx context.Context, input RegisterInput) (*entity.User, error) {
	if input.Avatar == nil {
		return nil, response.Validation("avatar file is required")
	}

	existing, err := uc.userRepo.GetByUsernameOrEmail(ctx, input.Username, input.Email)
	if err != nil && !errors.Is(err, persistent.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, response.Conflict("user with this email or username already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	avatarURL, err := uploadToS3(uc.s3Client, "avatars", input.Avatar, "image/jpeg")
	if err != nil {
		return nil, response.Upstream("failed to upload avatar")
	}

	var coverURL string
	if input.CoverImage != nil {
		coverURL, err = uploadToS3(uc.s3Client, "covers", input.CoverImage, "image/jpeg")
		if err != nil {
			uc.removeUpload(avatarURL)
			return nil, response.Upstream("failed to upload cover image")
		}
	}

	user := &entity.User{
		Username:   input.Username,
		Email:      input.Email,
		Fullname:   input.Fullname,
		Avatar:     avatarURL,
		CoverImage: coverURL,
		Password:   string(hash),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		uc.removeUpload(avatarURL)
		uc.removeUpload(coverURL)
		if errors.Is(err, persistent.ErrDuplicate) {
			return nil, response.Conflict("user with this email or username already exists")
		}
		return nil, err
	}

	return user, nil
}

func (uc *userUseCase) Login(ctx context.Context, usernameOrEmail, password string) (*entity.User, *TokenPair, error) {
	user, err := uc.userRepo.GetByUsernameOrEmail(ctx, usernameOrEmail, usernameOrEmail)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, nil, response.NotFound("user does not exist")
		}
		return nil, nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, nil, response.Unauthorized("invalid credentials")
	}

	tokens, err := uc.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return user, tokens, nil
}

func (uc *userUseCase) Logout(ctx context.Context, userID string) error {
	return uc.userRepo.UpdateRefreshToken(ctx, userID, "")
}

// RefreshTokens rotates the pair. The presented token must match the stored
// one, so a logout or an earlier rotation revokes it.
func (uc *userUseCase) RefreshTokens(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := uc.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, response.Unauthorized("invalid refresh token")
	}

	user, err := uc.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, response.Unauthorized("invalid refresh token")
		}
		return nil, err
	}

	if user.RefreshToken == "" || user.RefreshToken != refreshToken {
		return nil, response.Unauthorized("refresh token is expired or revoked")
	}

	return uc.issueTokens(ctx, user)
}

func (uc *userUseCase) issueTokens(ctx context.Context, user *entity.User) (*TokenPair, error) {
	accessToken, err := uc.jwtService.GenerateToken(user.ID, "user")
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	refreshToken, err := uc.jwtService.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}
	if err := uc.userRepo.UpdateRefreshToken(ctx, user.ID, refreshToken); err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (uc *userUseCase) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return mapRepoErr(err, "user")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)); err != nil {
		return response.Validation("invalid old password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return uc.userRepo.UpdatePassword(ctx, userID, string(hash))
}

func (uc *userUseCase) GetCurrentUser(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, mapRepoErr(err, "user")
	}
	return user, nil
}

func (uc *userUseCase) UpdateAccount(ctx context.Context, userID, fullname, email string) (*entity.User, error) {
	user, err := uc.userRepo.UpdateAccount(ctx, userID, fullname, email)
	if err != nil {
		return nil, mapRepoErr(err, "user")
	}
	return user, nil
}

func (uc *userUseCase) UpdateAvatar(ctx context.Context, userID string, avatar *multipart.FileHeader) (*entity.User, error) {
	if avatar == nil {
		return nil, response.Validation("avatar file is required")
	}
	return uc.updateImage(ctx, userID, "avatars", avatar, uc.userRepo.UpdateAvatar)
}

func (uc *userUseCase) UpdateCoverImage(ctx context.Context, userID string, coverImage *multipart.FileHeader) (*entity.User, error) {
	if coverImage == nil {
		return nil, response.Validation("cover image file is required")
	}
	return uc.updateImage(ctx, userID, "covers", coverImage, uc.userRepo.UpdateCoverImage)
}

func (uc *userUseCase) updateImage(
	ctx context.Context,
	userID, folder string,
	file *multipart.FileHeader,
	update func(ctx context.Context, id, url string) (*entity.User, error),
) (*entity.User, error) {
	current, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, mapRepoErr(err, "user")
	}

	url, err := uploadToS3(uc.s3Client, folder, file, "image/jpeg")
	if err != nil {
		return nil, response.Upstream("failed to upload image")
	}

	user, err := update(ctx, userID, url)
	if err != nil {
		uc.removeUpload(url)
		return nil, mapRepoErr(err, "user")
	}

	old := current.Avatar
	if folder == "covers" {
		old = current.CoverImage
	}
	uc.removeUpload(old)

	return user, nil
}

func (uc *userUseCase) GetChannelProfile(ctx context.Context, username, principalID string) (*entity.ChannelProfile, error) {
	profile, err := uc.userRepo.GetChannelProfile(ctx, username, principalID)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, response.NotFound("channel does not exist")
		}
		return nil, err
	}
	return profile, nil
}

func (uc *userUseCase) GetWatchHistory(ctx context.Context, userID string, page, limit int) (*pipeline.Page[entity.VideoView], error) {
	return uc.userRepo.GetWatchHistory(ctx, userID, page, limit)
}

// removeUpload deletes a stored object as compensation; failures are logged
// and swallowed because the primary operation already settled.
func (uc *userUseCase) removeUpload(url string) {
	if url == "" {
		return
	}
	if err := uc.s3Client.DeleteFileByURL(url); err != nil {
		uc.logger.Warn("failed to delete object %s: %v", url, err)
	}
}
