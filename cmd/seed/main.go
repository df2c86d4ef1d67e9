// Seeds the catalog with a starter genre and movie set. Upserts are keyed
// by slug/title so reseeding an existing database does not duplicate.
package main

import (
	"context"
	"log"
	"time"

	"moviestream/internal/config"
	"moviestream/internal/db"
	"moviestream/internal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var genres = []models.GenreCreateRequest{
	{Name: "Action", Slug: "action"},
	{Name: "Drama", Slug: "drama"},
	{Name: "Comedy", Slug: "comedy"},
	{Name: "Thriller", Slug: "thriller"},
	{Name: "Sci-Fi", Slug: "sci-fi"},
	{Name: "Horror", Slug: "horror"},
	{Name: "Romance", Slug: "romance"},
	{Name: "Adventure", Slug: "adventure"},
	{Name: "Fantasy", Slug: "fantasy"},
	{Name: "Crime", Slug: "crime"},
}

var movies = []models.Movie{
	{
		Title:       "The Quantum Heist",
		Synopsis:    "A team of scientists must steal a quantum computer from a heavily guarded facility to save humanity from an AI takeover.",
		Genres:      []string{"Action", "Sci-Fi", "Thriller"},
		Cast:        []string{"Michael Chen", "Sarah Johnson", "David Park"},
		ReleaseYear: 2023,
		Runtime:     142,
		PosterURL:   "https://images.unsplash.com/photo-1536440136628-849c177e76a1?w=500",
		VideoURL:    "http://commondatastorage.googleapis.com/gtv-videos-bucket/sample/BigBuckBunny.mp4",
		Language:    "English",
		Subtitles:   []string{"English", "Spanish"},
		ViewCount:   12450,
	},
	{
		Title:       "Midnight in Paris Redux",
		Synopsis:    "A young artist discovers a magical portal that transports her to 1920s Paris every midnight, where she meets legendary artists.",
		Genres:      []string{"Romance", "Fantasy", "Drama"},
		Cast:        []string{"Emma Laurent", "Jean Beaumont", "Claire Dubois"},
		ReleaseYear: 2023,
		Runtime:     118,
		PosterURL:   "https://images.unsplash.com/photo-1489599849927-2ee91cede3ba?w=500",
		VideoURL:    "http://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ElephantsDream.mp4",
		Language:    "English",
		Subtitles:   []string{"English", "French"},
		ViewCount:   8920,
	},
	{
		Title:       "Shadows of Tomorrow",
		Synopsis:    "In a dystopian future, a detective must solve murders that haven't happened yet using time-bending technology.",
		Genres:      []string{"Thriller", "Sci-Fi", "Crime"},
		Cast:        []string{"Marcus Reid", "Lisa Wang", "Tom Anderson"},
		ReleaseYear: 2024,
		Runtime:     135,
		PosterURL:   "https://images.unsplash.com/photo-1485846234645-a62644f84728?w=500",
		VideoURL:    "http://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerBlazes.mp4",
		Language:    "English",
		Subtitles:   []string{"English"},
		ViewCount:   15230,
	},
	{
		Title:       "The Last Symphony",
		Synopsis:    "A deaf composer creates one final masterpiece that has the power to heal or destroy, and everyone wants it.",
		Genres:      []string{"Drama", "Thriller"},
		Cast:        []string{"Anna Martinez", "Robert Chen", "Sofia Lopez"},
		ReleaseYear: 2023,
		Runtime:     126,
		PosterURL:   "https://images.unsplash.com/photo-1514525253161-7a46d19cd819?w=500",
		VideoURL:    "http://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerEscapes.mp4",
		Language:    "English",
		Subtitles:   []string{"English", "Spanish", "German"},
		ViewCount:   6780,
	},
	{
		Title:       "Laugh Track",
		Synopsis:    "A stand-up comedian discovers her jokes are coming true in the worst possible ways, turning her life into a comedy of errors.",
		Genres:      []string{"Comedy", "Fantasy"},
		Cast:        []string{"Jessica Brown", "Mike Stevens", "Rachel Green"},
		ReleaseYear: 2024,
		Runtime:     98,
		PosterURL:   "https://images.unsplash.com/photo-1527224857830-43a7acc85260?w=500",
		VideoURL:    "http://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerFun.mp4",
		Language:    "English",
		Subtitles:   []string{"English"},
		ViewCount:   11200,
	},
	{
		Title:       "Blood Moon Rising",
		Synopsis:    "A small town sheriff must protect her community from ancient creatures that awaken during a rare blood moon eclipse.",
		Genres:      []string{"Horror", "Thriller", "Action"},
		Cast:        []string{"Kate Morrison", "John Blake", "Maria Santos"},
		ReleaseYear: 2023,
		Runtime:     110,
		PosterURL:   "https://images.unsplash.com/photo-1509347528160-9a9e33742cdb?w=500",
		VideoURL:    "http://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerJoyrides.mp4",
		Language:    "English",
		Subtitles:   []string{"English", "Spanish"},
		ViewCount:   9340,
	},
}

func main() {
	cfg := config.Load()
	db.InitMongo(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.EnsureIndexes(ctx); err != nil {
		log.Fatalf("index bootstrap failed: %v", err)
	}

	if err := seedGenres(ctx); err != nil {
		log.Fatalf("seed genres failed: %v", err)
	}
	if err := seedMovies(ctx); err != nil {
		log.Fatalf("seed movies failed: %v", err)
	}

	db.Close(ctx)
	log.Printf("seeded %d genres and %d movies", len(genres), len(movies))
}

func seedGenres(ctx context.Context) error {
	col := db.DB().Collection("genres")
	for _, g := range genres {
		_, err := col.UpdateOne(ctx,
			bson.M{"slug": g.Slug},
			bson.M{
				"$set":         bson.M{"name": g.Name},
				"$setOnInsert": bson.M{"id": uuid.NewString(), "slug": g.Slug},
			},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func seedMovies(ctx context.Context) error {
	col := db.DB().Collection("movies")
	for _, m := range movies {
		_, err := col.UpdateOne(ctx,
			bson.M{"title": m.Title},
			bson.M{
				"$set": bson.M{
					"synopsis":    m.Synopsis,
					"genres":      m.Genres,
					"cast":        m.Cast,
					"releaseYear": m.ReleaseYear,
					"runtime":     m.Runtime,
					"posterUrl":   m.PosterURL,
					"videoUrl":    m.VideoURL,
					"language":    m.Language,
					"subtitles":   m.Subtitles,
				},
				"$setOnInsert": bson.M{
					"id":        uuid.NewString(),
					"viewCount": m.ViewCount,
					"createdAt": time.Now().UTC(),
				},
			},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			return err
		}
	}
	return nil
}
