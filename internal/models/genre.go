package models

type Genre struct {
	ID   string `json:"id" bson:"id"`
	Name string `json:"name" bson:"name"`
	Slug string `json:"slug" bson:"slug"`
}

type GenreCreateRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}
