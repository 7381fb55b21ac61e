package entity

// CastMember rows live in the MovieCast table (pk: movieId, sk: actorName).
// movieId is a non-enforced reference to the Movies table. Immutable after
// seeding.
type CastMember struct {
	MovieID         int    `dynamodbav:"movieId"`
	ActorName       string `dynamodbav:"actorName"`
	RoleName        string `dynamodbav:"roleName"`
	RoleDescription string `dynamodbav:"roleDescription"`
}
