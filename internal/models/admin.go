package models

// TopMovie is the reduced movie shape reported by admin stats.
type TopMovie struct {
	ID        string `json:"id" bson:"id"`
	Title     string `json:"title" bson:"title"`
	ViewCount int    `json:"viewCount" bson:"viewCount"`
	PosterURL string `json:"posterUrl" bson:"posterUrl"`
}

type AdminStats struct {
	TotalMovies int64      `json:"totalMovies"`
	TotalViews  int64      `json:"totalViews"`
	TotalGenres int64      `json:"totalGenres"`
	TopMovies   []TopMovie `json:"topMovies"`
}

type TokenValidation struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

// ImportResult reports a bulk CSV import. Success covers the request as a
// whole; individual row failures land in Errors without aborting the batch.
type ImportResult struct {
	Success  bool     `json:"success"`
	Imported int      `json:"imported"`
	Errors   []string `json:"errors"`
}

type Ack struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
