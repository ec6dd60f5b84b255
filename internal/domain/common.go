package domain

import "errors"

// PointType - дискриминатор GeoJSON точки
const PointType = "Point"

var (
	ErrInvalidPointType   = errors.New("location type must be Point")
	ErrInvalidCoordinates = errors.New("location coordinates must be an array with two elements")
	ErrCoordinatesRange   = errors.New("location coordinates out of range")
)

// GeoPoint - GeoJSON точка, coordinates всегда [longitude, latitude]
type GeoPoint struct {
	Type        string    `json:"type" bson:"type"`
	Coordinates []float64 `json:"coordinates" bson:"coordinates"`
}

func NewPoint(lon, lat float64) GeoPoint {
	return GeoPoint{Type: PointType, Coordinates: []float64{lon, lat}}
}

func (p GeoPoint) Longitude() float64 { return p.Coordinates[0] }
func (p GeoPoint) Latitude() float64  { return p.Coordinates[1] }

// Normalize - пустой тип трактуется как Point
func (p GeoPoint) Normalize() GeoPoint {
	if p.Type == "" {
		p.Type = PointType
	}
	return p
}

// Validate проверяет тип, количество координат и их диапазон
func (p GeoPoint) Validate() error {
	if p.Type != PointType {
		return ErrInvalidPointType
	}
	if len(p.Coordinates) != 2 {
		return ErrInvalidCoordinates
	}
	lon, lat := p.Coordinates[0], p.Coordinates[1]
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return ErrCoordinatesRange
	}
	return nil
}

// LatLon - точка в виде двух скаляров
type LatLon struct {
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
}

func (p GeoPoint) LatLon() LatLon {
	return LatLon{Latitude: p.Latitude(), Longitude: p.Longitude()}
}
