package mongodb

import (
	"github.com/restaurant-directory/internal/domain"
	"github.com/restaurant-directory/internal/pkg/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// nearPipeline собирает $geoNear агрегацию для поиска от точки.
//
// Точка передаётся legacy-парой [lon, lat] со spherical: true, поэтому
// min/maxDistance и вычисленное distance - в радианах. Перевод метров в радианы
// и обратно идёт через один радиус Земли. $avg по пустому массиву даёт null,
// и это значение сохраняется как есть.
func nearPipeline(q domain.ProximityQuery) mongo.Pipeline {
	geoNear := bson.D{
		{Key: "near", Value: bson.A{q.Center.Longitude(), q.Center.Latitude()}},
		{Key: "distanceField", Value: "distance"},
		{Key: "maxDistance", Value: utils.MetersToRadians(q.MaxDistance)},
		{Key: "spherical", Value: true},
	}
	if q.MinDistance != nil {
		geoNear = append(geoNear, bson.E{Key: "minDistance", Value: utils.MetersToRadians(*q.MinDistance)})
	}

	return mongo.Pipeline{
		{{Key: "$geoNear", Value: geoNear}},
		{{Key: "$addFields", Value: bson.D{
			{Key: "averageRating", Value: bson.D{{Key: "$avg", Value: "$ratings"}}},
			{Key: "numberOfRatings", Value: bson.D{{Key: "$size", Value: bson.D{
				{Key: "$ifNull", Value: bson.A{"$ratings", bson.A{}}},
			}}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "name", Value: 1},
			{Key: "description", Value: 1},
			{Key: "location", Value: 1},
			{Key: "averageRating", Value: 1},
			{Key: "numberOfRatings", Value: 1},
			{Key: "distance", Value: bson.D{{Key: "$multiply", Value: bson.A{"$distance", utils.EarthRadiusMeters}}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "distance", Value: 1}, {Key: "_id", Value: 1}}}},
	}
}

// withinSphereFilter - $geoWithin/$centerSphere, радиус в радианах
func withinSphereFilter(center domain.GeoPoint, radiusMeters float64) bson.D {
	return bson.D{{Key: "location", Value: bson.D{
		{Key: "$geoWithin", Value: bson.D{
			{Key: "$centerSphere", Value: bson.A{
				bson.A{center.Longitude(), center.Latitude()},
				utils.MetersToRadians(radiusMeters),
			}},
		}},
	}}}
}

// updateDocument - $set только для переданных полей
func updateDocument(u domain.RestaurantUpdate) bson.D {
	set := bson.D{}
	if u.Name != nil {
		set = append(set, bson.E{Key: "name", Value: *u.Name})
	}
	if u.Description != nil {
		set = append(set, bson.E{Key: "description", Value: *u.Description})
	}
	if u.Location != nil {
		set = append(set, bson.E{Key: "location", Value: *u.Location})
	}
	if u.Ratings != nil {
		set = append(set, bson.E{Key: "ratings", Value: u.Ratings})
	}
	return bson.D{{Key: "$set", Value: set}}
}
