package postgres

import (
	"database/sql"

	"github.com/lib/pq"
	"github.com/restaurant-directory/internal/domain"
)

// ratings читаются в текстовом виде и разбираются pq.Float64Array,
// что одинаково работает с драйверами pgx и lib/pq
const (
	restaurantColumns = `
		id, name, description,
		ST_X(location::geometry) AS lon, ST_Y(location::geometry) AS lat,
		ratings::text AS ratings, radius, minimum_distance, maximum_distance`
)

type restaurantRow struct {
	ID              string          `db:"id"`
	Name            string          `db:"name"`
	Description     string          `db:"description"`
	Lon             float64         `db:"lon"`
	Lat             float64         `db:"lat"`
	Ratings         pq.Float64Array `db:"ratings"`
	Radius          float64         `db:"radius"`
	MinimumDistance float64         `db:"minimum_distance"`
	MaximumDistance float64         `db:"maximum_distance"`
}

func (row restaurantRow) toDomain() *domain.Restaurant {
	ratings := []float64(row.Ratings)
	if ratings == nil {
		ratings = []float64{}
	}
	return &domain.Restaurant{
		ID:              row.ID,
		Name:            row.Name,
		Description:     row.Description,
		Location:        domain.NewPoint(row.Lon, row.Lat),
		Ratings:         ratings,
		Radius:          row.Radius,
		MinimumDistance: row.MinimumDistance,
		MaximumDistance: row.MaximumDistance,
	}
}

type nearbyRow struct {
	ID              string          `db:"id"`
	Name            string          `db:"name"`
	Description     string          `db:"description"`
	Lon             float64         `db:"lon"`
	Lat             float64         `db:"lat"`
	AverageRating   sql.NullFloat64 `db:"average_rating"`
	NumberOfRatings int             `db:"number_of_ratings"`
	Distance        float64         `db:"distance"`
}

func (row nearbyRow) toDomain() *domain.NearbyRestaurant {
	n := &domain.NearbyRestaurant{
		ID:              row.ID,
		Name:            row.Name,
		Description:     row.Description,
		Location:        domain.NewPoint(row.Lon, row.Lat),
		NumberOfRatings: row.NumberOfRatings,
		Distance:        row.Distance,
	}
	if row.AverageRating.Valid {
		avg := row.AverageRating.Float64
		n.AverageRating = &avg
	}
	return n
}

type userRow struct {
	ID           string       `db:"id"`
	Username     string       `db:"username"`
	Email        string       `db:"email"`
	PasswordHash string       `db:"password_hash"`
	CreatedAt    sql.NullTime `db:"created_at"`
}

func (row userRow) toDomain() *domain.User {
	return &domain.User{
		ID:           row.ID,
		Username:     row.Username,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		CreatedAt:    row.CreatedAt.Time,
	}
}
