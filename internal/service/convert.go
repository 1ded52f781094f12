package service

import (
	"tweethub/internal/api/dto"
	"tweethub/internal/model"

	"github.com/jinzhu/copier"
)

const timeLayout = "2006-01-02 15:04:05"

func toUserDTO(user *model.User) *dto.UserDTO {
	out := &dto.UserDTO{}
	_ = copier.Copy(out, user)
	out.Role = string(user.Role)
	return out
}

func toUserRefDTO(user *model.User) *dto.UserRefDTO {
	return &dto.UserRefDTO{
		ID:       user.ID,
		Name:     user.Name,
		Nickname: user.Nickname,
	}
}

func toPostDTO(post *model.Post) *dto.PostDTO {
	out := &dto.PostDTO{
		ID:          post.ID,
		UserID:      post.UserID,
		Content:     post.Content,
		AuditState:  post.AuditState.String(),
		PublishTime: post.PublishTime.Format(timeLayout),
		ReplyID:     post.ReplyID,
		ForwardID:   post.ForwardID,
		Likes:       make([]*dto.UserRefDTO, 0, len(post.Likes)),
		Collections: make([]*dto.UserRefDTO, 0, len(post.Collections)),
	}
	if post.User.ID != 0 {
		out.Name = post.User.Name
		out.Nickname = post.User.Nickname
	}
	for i := range post.Likes {
		if post.Likes[i].User.ID != 0 {
			out.Likes = append(out.Likes, toUserRefDTO(&post.Likes[i].User))
		}
	}
	for i := range post.Collections {
		if post.Collections[i].User.ID != 0 {
			out.Collections = append(out.Collections, toUserRefDTO(&post.Collections[i].User))
		}
	}
	return out
}

func toPostDTOs(posts []*model.Post) []*dto.PostDTO {
	out := make([]*dto.PostDTO, 0, len(posts))
	for _, post := range posts {
		out = append(out, toPostDTO(post))
	}
	return out
}
