package models

import "time"

// Movie is the document shape stored in the movies collection. The id is
// assigned by the application at creation time and never changes; mongo's
// own _id is ignored on the way out.
type Movie struct {
	ID          string    `json:"id" bson:"id"`
	Title       string    `json:"title" bson:"title"`
	Synopsis    string    `json:"synopsis" bson:"synopsis"`
	Genres      []string  `json:"genres" bson:"genres"`
	Cast        []string  `json:"cast" bson:"cast"`
	ReleaseYear int       `json:"releaseYear" bson:"releaseYear"`
	Runtime     int       `json:"runtime" bson:"runtime"`
	PosterURL   string    `json:"posterUrl" bson:"posterUrl"`
	VideoURL    string    `json:"videoUrl" bson:"videoUrl"`
	Language    string    `json:"language" bson:"language"`
	Subtitles   []string  `json:"subtitles" bson:"subtitles"`
	ViewCount   int       `json:"viewCount" bson:"viewCount"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
}

type MovieCreateRequest struct {
	Title       string   `json:"title"`
	Synopsis    string   `json:"synopsis"`
	Genres      []string `json:"genres"`
	Cast        []string `json:"cast"`
	ReleaseYear int      `json:"releaseYear"`
	Runtime     int      `json:"runtime"`
	PosterURL   string   `json:"posterUrl"`
	VideoURL    string   `json:"videoUrl"`
	Language    string   `json:"language"`
	Subtitles   []string `json:"subtitles"`
}

// MovieUpdateRequest is a sparse patch: nil means "leave untouched".
type MovieUpdateRequest struct {
	Title       *string   `json:"title"`
	Synopsis    *string   `json:"synopsis"`
	Genres      *[]string `json:"genres"`
	Cast        *[]string `json:"cast"`
	ReleaseYear *int      `json:"releaseYear"`
	Runtime     *int      `json:"runtime"`
	PosterURL   *string   `json:"posterUrl"`
	VideoURL    *string   `json:"videoUrl"`
	Language    *string   `json:"language"`
	Subtitles   *[]string `json:"subtitles"`
}

// Fields returns the explicitly supplied fields keyed by document field
// name. An empty map means the patch was empty and must be rejected.
func (r *MovieUpdateRequest) Fields() map[string]any {
	out := map[string]any{}
	if r.Title != nil {
		out["title"] = *r.Title
	}
	if r.Synopsis != nil {
		out["synopsis"] = *r.Synopsis
	}
	if r.Genres != nil {
		out["genres"] = *r.Genres
	}
	if r.Cast != nil {
		out["cast"] = *r.Cast
	}
	if r.ReleaseYear != nil {
		out["releaseYear"] = *r.ReleaseYear
	}
	if r.Runtime != nil {
		out["runtime"] = *r.Runtime
	}
	if r.PosterURL != nil {
		out["posterUrl"] = *r.PosterURL
	}
	if r.VideoURL != nil {
		out["videoUrl"] = *r.VideoURL
	}
	if r.Language != nil {
		out["language"] = *r.Language
	}
	if r.Subtitles != nil {
		out["subtitles"] = *r.Subtitles
	}
	return out
}
