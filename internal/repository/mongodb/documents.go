package mongodb

import (
	"time"

	"github.com/restaurant-directory/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type restaurantDocument struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Name            string             `bson:"name"`
	Description     string             `bson:"description"`
	Location        domain.GeoPoint    `bson:"location"`
	Ratings         []float64          `bson:"ratings"`
	Radius          float64            `bson:"radius"`
	MinimumDistance float64            `bson:"minimumDistance"`
	MaximumDistance float64            `bson:"maximumDistance"`
}

func newRestaurantDocument(r *domain.Restaurant) restaurantDocument {
	ratings := r.Ratings
	if ratings == nil {
		ratings = []float64{}
	}
	return restaurantDocument{
		Name:            r.Name,
		Description:     r.Description,
		Location:        r.Location,
		Ratings:         ratings,
		Radius:          r.Radius,
		MinimumDistance: r.MinimumDistance,
		MaximumDistance: r.MaximumDistance,
	}
}

func (d restaurantDocument) toDomain() *domain.Restaurant {
	ratings := d.Ratings
	if ratings == nil {
		ratings = []float64{}
	}
	return &domain.Restaurant{
		ID:              d.ID.Hex(),
		Name:            d.Name,
		Description:     d.Description,
		Location:        d.Location,
		Ratings:         ratings,
		Radius:          d.Radius,
		MinimumDistance: d.MinimumDistance,
		MaximumDistance: d.MaximumDistance,
	}
}

// nearbyDocument - строка результата $geoNear после $project
type nearbyDocument struct {
	ID              primitive.ObjectID `bson:"_id"`
	Name            string             `bson:"name"`
	Description     string             `bson:"description"`
	Location        domain.GeoPoint    `bson:"location"`
	AverageRating   *float64           `bson:"averageRating"`
	NumberOfRatings int                `bson:"numberOfRatings"`
	Distance        float64            `bson:"distance"`
}

func (d nearbyDocument) toDomain() *domain.NearbyRestaurant {
	return &domain.NearbyRestaurant{
		ID:              d.ID.Hex(),
		Name:            d.Name,
		Description:     d.Description,
		Location:        d.Location,
		AverageRating:   d.AverageRating,
		NumberOfRatings: d.NumberOfRatings,
		Distance:        d.Distance,
	}
}

type userDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Username     string             `bson:"username"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password"`
	CreatedAt    time.Time          `bson:"createdAt"`
}

func (d userDocument) toDomain() *domain.User {
	return &domain.User{
		ID:           d.ID.Hex(),
		Username:     d.Username,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		CreatedAt:    d.CreatedAt,
	}
}
