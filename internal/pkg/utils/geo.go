package utils

// EarthRadiusMeters - экваториальный радиус Земли (WGS84), единственная
// константа для перевода расстояний в угловой радиус и обратно
// (обратный перевод делается в $project агрегации).
const EarthRadiusMeters = 6378137.0

const metersPerMile = 1609.344

// MetersToRadians - угловой радиус для сферических запросов
func MetersToRadians(meters float64) float64 {
	return meters / EarthRadiusMeters
}

// MilesToMeters - мили в метры, используется на границе API
func MilesToMeters(miles float64) float64 {
	return miles * metersPerMile
}

// ValidateCoordinates проверяет валидность координат
func ValidateCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
