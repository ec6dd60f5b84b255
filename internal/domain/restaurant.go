package domain

const (
	DefaultRadius          = 500.0
	DefaultMinimumDistance = 500.0
	DefaultMaximumDistance = 2000.0
)

// Restaurant - запись каталога ресторанов
type Restaurant struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Location        GeoPoint  `json:"location"`
	Ratings         []float64 `json:"ratings"`
	Radius          float64   `json:"radius"`
	MinimumDistance float64   `json:"minimumDistance"`
	MaximumDistance float64   `json:"maximumDistance"`
}

// NewRestaurant создаёт запись со значениями по умолчанию
func NewRestaurant(name, description string, location GeoPoint, ratings []float64) *Restaurant {
	if ratings == nil {
		ratings = []float64{}
	}
	return &Restaurant{
		Name:            name,
		Description:     description,
		Location:        location.Normalize(),
		Ratings:         ratings,
		Radius:          DefaultRadius,
		MinimumDistance: DefaultMinimumDistance,
		MaximumDistance: DefaultMaximumDistance,
	}
}

// RestaurantUpdate - частичное обновление, nil означает "не менять"
type RestaurantUpdate struct {
	Name        *string
	Description *string
	Location    *GeoPoint
	Ratings     []float64
}

func (u RestaurantUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.Location == nil && u.Ratings == nil
}

// ProximityQuery - поиск от точки; расстояния в метрах.
// MinDistance == nil означает поиск только по радиусу.
type ProximityQuery struct {
	Center      GeoPoint
	MinDistance *float64
	MaxDistance float64
}

// NearbyRestaurant - результат поиска с вычисленными агрегатами.
// AverageRating == nil, если оценок нет.
type NearbyRestaurant struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Location        GeoPoint `json:"location"`
	AverageRating   *float64 `json:"averageRating"`
	NumberOfRatings int      `json:"numberOfRatings"`
	Distance        float64  `json:"distance"`
}
