package request

// CastQuery is built from the cast endpoint's query string. movieId is
// required; the name filters are optional equality matches.
type CastQuery struct {
	MovieID   int    `validate:"required,gt=0"`
	ActorName string `validate:"omitempty"`
	RoleName  string `validate:"omitempty"`
}
