package response

import (
	"movie-catalog/internal/data/entity"
)

type CastMemberResponse struct {
	MovieID         int    `json:"movieId"`
	ActorName       string `json:"actorName"`
	RoleName        string `json:"roleName"`
	RoleDescription string `json:"roleDescription"`
}

func CastToResponse(cast []*entity.CastMember) []CastMemberResponse {
	out := make([]CastMemberResponse, len(cast))
	for i, member := range cast {
		out[i] = CastMemberResponse{
			MovieID:         member.MovieID,
			ActorName:       member.ActorName,
			RoleName:        member.RoleName,
			RoleDescription: member.RoleDescription,
		}
	}
	return out
}
