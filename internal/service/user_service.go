package service

import (
	"context"
	"strconv"
	"time"

	"tweethub/internal/api/dto"
	"tweethub/internal/model"
	"tweethub/internal/pkg/consts"
	"tweethub/internal/pkg/redis"
	"tweethub/internal/pkg/security"
	"tweethub/internal/repository"

	"github.com/goccy/go-json"
)

type UserService interface {
	Register(ctx context.Context, credential *dto.CredentialDTO) error
	Login(ctx context.Context, credential *dto.CredentialDTO) (string, error)
	Logout(ctx context.Context, token string) error
	GetUserInfo(ctx context.Context, id uint64) (*dto.UserDTO, error)
	GetUserInfoByName(ctx context.Context, name string) (*dto.UserDTO, error)
	SearchUser(ctx context.Context, keyword string) ([]*dto.UserDTO, error)
	UpdateUserInfo(ctx context.Context, id uint64, info *dto.UpdateInfoDTO) error
}

type UserServiceImpl struct {
	userRepo repository.UserRepo
}

func NewUserService(userRepo repository.UserRepo) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) Register(ctx context.Context, credential *dto.CredentialDTO) error {
	exists, err := s.userRepo.ExistsByName(ctx, credential.Username)
	if err != nil {
		return err
	}
	if exists {
		return ErrUserUsernameExist
	}

	passwordHash, err := security.HashPassword(credential.Password)
	if err != nil {
		return err
	}
	user := &model.User{
		Name:     credential.Username,
		Nickname: credential.Username,
		Password: passwordHash,
		Role:     model.RoleUser,
		Sex:      "None",
		RegTime:  time.Now(),
	}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		if isDuplicateError(err) {
			return ErrUserUsernameExist
		}
		return err
	}
	return nil
}

func (s *UserServiceImpl) Login(ctx context.Context, credential *dto.CredentialDTO) (string, error) {
	user, err := s.userRepo.GetUserByName(ctx, credential.Username)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrCredentialInvalid
	}
	if err := security.CheckPasswordHash(credential.Password, user.Password); err != nil {
		return "", ErrCredentialInvalid
	}
	token, err := security.GenerateToken(user.ID, user.Role.Capabilities())
	if err != nil {
		return "", err
	}
	return token, nil
}

// Logout 把 token 签名拉黑到过期为止
func (s *UserServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return err
	}
	return redis.SetWithExpiration(ctx, signature, true, security.TokenExpiration())
}

func (s *UserServiceImpl) GetUserInfo(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	key := consts.UserInfoKey + strconv.FormatUint(id, 10)
	value, err := redis.GetValue(ctx, key)
	if err != nil {
		return nil, err
	}
	if value != "" {
		var userDTO *dto.UserDTO
		if err := json.Unmarshal([]byte(value), &userDTO); err == nil {
			return userDTO, nil
		}
	}
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	userDTO := toUserDTO(user)
	if jsonStr, err := json.Marshal(userDTO); err == nil {
		_ = redis.SetWithExpiration(ctx, key, string(jsonStr), time.Hour)
	}
	return userDTO, nil
}

func (s *UserServiceImpl) GetUserInfoByName(ctx context.Context, name string) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return toUserDTO(user), nil
}

func (s *UserServiceImpl) SearchUser(ctx context.Context, keyword string) ([]*dto.UserDTO, error) {
	users, err := s.userRepo.SearchUsers(ctx, keyword)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserDTO, 0, len(users))
	for _, user := range users {
		out = append(out, toUserDTO(user))
	}
	return out, nil
}

func (s *UserServiceImpl) UpdateUserInfo(ctx context.Context, id uint64, info *dto.UpdateInfoDTO) error {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if info.Nickname != nil {
		user.Nickname = *info.Nickname
	}
	if info.Introduction != nil {
		user.Introduction = *info.Introduction
	}
	if info.Sex != nil {
		user.Sex = *info.Sex
	}
	if info.Age != nil {
		user.Age = info.Age
	}
	if info.Email != nil {
		user.Email = *info.Email
	}
	if info.Password != nil {
		passwordHash, err := security.HashPassword(*info.Password)
		if err != nil {
			return err
		}
		user.Password = passwordHash
	}
	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return err
	}
	_ = redis.DeleteKey(ctx, consts.UserInfoKey+strconv.FormatUint(id, 10))
	return nil
}
