// internal/repository/genre_repo.go
package repository

import (
	"context"

	"moviestream/internal/db"
	"moviestream/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// genreListCap bounds the genre listing; there is no pagination on genres.
const genreListCap = 100

type GenreRepository struct {
	col *mongo.Collection
}

func NewGenreRepository() *GenreRepository {
	return &GenreRepository{col: db.DB().Collection("genres")}
}

func (r *GenreRepository) List(ctx context.Context) ([]models.Genre, error) {
	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetLimit(genreListCap))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]models.Genre, 0)
	for cur.Next(ctx) {
		var g models.Genre
		if err := cur.Decode(&g); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, cur.Err()
}

func (r *GenreRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	err := r.col.FindOne(ctx, bson.M{"slug": slug}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Insert persists a genre. IsDuplicate reports whether an insert error is
// the unique-index violation on slug, which is the authoritative conflict
// signal when two creators race past the existence pre-check.
func (r *GenreRepository) Insert(ctx context.Context, g *models.Genre) error {
	_, err := r.col.InsertOne(ctx, g)
	return err
}

func IsDuplicate(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}

func (r *GenreRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *GenreRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}
