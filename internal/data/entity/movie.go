package entity

// Movie attribute names match the seeded Movies table (pk: id).
// Movies are created by seeding or an explicit create and read-only after.
type Movie struct {
	ID               int     `dynamodbav:"id"`
	Adult            bool    `dynamodbav:"adult"`
	BackdropPath     string  `dynamodbav:"backdrop_path"`
	GenreIDs         []int   `dynamodbav:"genre_ids"`
	OriginalLanguage string  `dynamodbav:"original_language"`
	OriginalTitle    string  `dynamodbav:"original_title"`
	Overview         string  `dynamodbav:"overview"`
	Popularity       float64 `dynamodbav:"popularity"`
	PosterPath       string  `dynamodbav:"poster_path"`
	ReleaseDate      string  `dynamodbav:"release_date"`
	Title            string  `dynamodbav:"title"`
	Video            bool    `dynamodbav:"video"`
	VoteAverage      float64 `dynamodbav:"vote_average"`
	VoteCount        int     `dynamodbav:"vote_count"`
}
