package service

import "errors"

var (
	ErrMovieNotFound = errors.New("movie not found")
	ErrGenreNotFound = errors.New("genre not found")
	ErrEmptyUpdate   = errors.New("no fields to update")
	ErrSlugTaken     = errors.New("genre already exists")
)
