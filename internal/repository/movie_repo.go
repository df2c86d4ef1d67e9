// internal/repository/movie_repo.go
package repository

import (
	"context"
	"regexp"

	"moviestream/internal/db"
	"moviestream/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MovieRepository struct {
	col *mongo.Collection
}

func NewMovieRepository() *MovieRepository {
	return &MovieRepository{col: db.DB().Collection("movies")}
}

// listFilter matches all movies, optionally narrowed to those whose genres
// array contains the given name.
func listFilter(genre string) bson.M {
	filter := bson.M{}
	if genre != "" {
		filter["genres"] = genre
	}
	return filter
}

// searchFilter builds a case-insensitive substring match of q against
// title or synopsis, intersected with the optional genre/year filters.
// The query is meta-quoted so regex characters in user input stay literal.
func searchFilter(q, genre string, year int) bson.M {
	pattern := regexp.QuoteMeta(q)
	filter := bson.M{
		"$or": bson.A{
			bson.M{"title": bson.M{"$regex": pattern, "$options": "i"}},
			bson.M{"synopsis": bson.M{"$regex": pattern, "$options": "i"}},
		},
	}
	if genre != "" {
		filter["genres"] = genre
	}
	if year > 0 {
		filter["releaseYear"] = year
	}
	return filter
}

func (r *MovieRepository) List(ctx context.Context, skip, limit int, genre string) ([]models.Movie, error) {
	opts := options.Find().
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cur, err := r.col.Find(ctx, listFilter(genre), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	return decodeMovies(ctx, cur)
}

func (r *MovieRepository) GetByID(ctx context.Context, id string) (*models.Movie, error) {
	var m models.Movie
	err := r.col.FindOne(ctx, bson.M{"id": id}).Decode(&m)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &m, err
}

func (r *MovieRepository) Search(ctx context.Context, q, genre string, year, limit int) ([]models.Movie, error) {
	opts := options.Find().SetLimit(int64(limit))

	cur, err := r.col.Find(ctx, searchFilter(q, genre, year), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	return decodeMovies(ctx, cur)
}

func (r *MovieRepository) Insert(ctx context.Context, m *models.Movie) error {
	_, err := r.col.InsertOne(ctx, m)
	return err
}

// Update applies the supplied fields as a $set. Reports whether the id
// matched a document.
func (r *MovieRepository) Update(ctx context.Context, id string, fields map[string]any) (bool, error) {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M(fields)},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *MovieRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// IncrementViews bumps viewCount by one with a store-side $inc, so
// concurrent bumps never lose updates.
func (r *MovieRepository) IncrementViews(ctx context.Context, id string) (bool, error) {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$inc": bson.M{"viewCount": 1}},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *MovieRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

// TotalViews sums viewCount across the collection with a $group
// aggregation. An empty collection yields 0.
func (r *MovieRepository) TotalViews(ctx context.Context) (int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":        nil,
			"totalViews": bson.M{"$sum": "$viewCount"},
		}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cur.Close(ctx)

	if !cur.Next(ctx) {
		return 0, cur.Err()
	}

	var res struct {
		TotalViews int64 `bson:"totalViews"`
	}
	if err := cur.Decode(&res); err != nil {
		return 0, err
	}
	return res.TotalViews, nil
}

// TopByViews returns the most-viewed movies, reduced to the stats shape.
func (r *MovieRepository) TopByViews(ctx context.Context, limit int) ([]models.TopMovie, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "viewCount", Value: -1}}).
		SetLimit(int64(limit)).
		SetProjection(bson.M{"_id": 0, "id": 1, "title": 1, "viewCount": 1, "posterUrl": 1})

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]models.TopMovie, 0)
	for cur.Next(ctx) {
		var m models.TopMovie
		if err := cur.Decode(&m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, cur.Err()
}

func decodeMovies(ctx context.Context, cur *mongo.Cursor) ([]models.Movie, error) {
	out := make([]models.Movie, 0)
	for cur.Next(ctx) {
		var m models.Movie
		if err := cur.Decode(&m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, cur.Err()
}
