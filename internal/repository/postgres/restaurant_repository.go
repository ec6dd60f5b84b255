package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/restaurant-directory/internal/domain"
	"github.com/restaurant-directory/internal/domain/repository"
	"github.com/restaurant-directory/internal/pkg/errors"
	"go.uber.org/zap"
)

type restaurantRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewRestaurantRepository(db *DB) repository.RestaurantRepository {
	return &restaurantRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *restaurantRepository) Create(ctx context.Context, restaurant *domain.Restaurant) error {
	query := `
		INSERT INTO restaurants (
			id, name, description, location, ratings,
			radius, minimum_distance, maximum_distance
		)
		VALUES (
			$1, $2, $3, ST_SetSRID(ST_MakePoint($4, $5), 4326)::geography, $6::text::float8[],
			$7, $8, $9
		)
	`

	id := uuid.NewString()
	_, err := r.db.ExecContext(ctx, query,
		id, restaurant.Name, restaurant.Description,
		restaurant.Location.Longitude(), restaurant.Location.Latitude(),
		pq.Float64Array(restaurant.Ratings),
		restaurant.Radius, restaurant.MinimumDistance, restaurant.MaximumDistance,
	)
	if err != nil {
		return errors.ErrDatabaseError.WithCause(fmt.Errorf("insert restaurant: %w", err))
	}

	restaurant.ID = id
	return nil
}

func (r *restaurantRepository) GetByID(ctx context.Context, id string) (*domain.Restaurant, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, errors.ErrRestaurantNotFound
	}

	query := `SELECT ` + restaurantColumns + ` FROM restaurants WHERE id = $1`

	var row restaurantRow
	err := r.db.GetContext(ctx, &row, query, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrRestaurantNotFound
	}
	if err != nil {
		return nil, errors.ErrDatabaseError.WithCause(fmt.Errorf("get restaurant %s: %w", id, err))
	}

	return row.toDomain(), nil
}

func (r *restaurantRepository) List(ctx context.Context) ([]*domain.Restaurant, error) {
	return r.selectRestaurants(ctx, `SELECT `+restaurantColumns+` FROM restaurants ORDER BY created_at`)
}

func (r *restaurantRepository) FindWithinSphere(
	ctx context.Context,
	center domain.GeoPoint,
	radiusMeters float64,
) ([]*domain.Restaurant, error) {
	query := `
		SELECT ` + restaurantColumns + `
		FROM restaurants
		WHERE ST_DWithin(location, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography, $3, false)
	`
	return r.selectRestaurants(ctx, query, center.Longitude(), center.Latitude(), radiusMeters)
}

func (r *restaurantRepository) selectRestaurants(
	ctx context.Context,
	query string,
	args ...interface{},
) ([]*domain.Restaurant, error) {
	var rows []restaurantRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.ErrDatabaseError.WithCause(fmt.Errorf("select restaurants: %w", err))
	}

	restaurants := make([]*domain.Restaurant, 0, len(rows))
	for _, row := range rows {
		restaurants = append(restaurants, row.toDomain())
	}
	return restaurants, nil
}

// FindNear - аналог $geoNear: расстояние на сфере (use_spheroid = false),
// сортировка по расстоянию, агрегаты по массиву оценок
func (r *restaurantRepository) FindNear(
	ctx context.Context,
	q domain.ProximityQuery,
) ([]*domain.NearbyRestaurant, error) {
	query := `
		WITH point AS (
			SELECT ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography AS geom
		)
		SELECT
			r.id, r.name, r.description,
			ST_X(r.location::geometry) AS lon, ST_Y(r.location::geometry) AS lat,
			(SELECT AVG(x) FROM unnest(r.ratings) AS x) AS average_rating,
			cardinality(r.ratings) AS number_of_ratings,
			ST_Distance(r.location, point.geom, false) AS distance
		FROM restaurants r, point
		WHERE ST_DWithin(r.location, point.geom, $3, false)
	`

	args := []interface{}{q.Center.Longitude(), q.Center.Latitude(), q.MaxDistance}
	if q.MinDistance != nil {
		query += " AND ST_Distance(r.location, point.geom, false) >= $4"
		args = append(args, *q.MinDistance)
	}
	query += " ORDER BY distance, r.id"

	var rows []nearbyRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.ErrDatabaseError.WithCause(fmt.Errorf("select nearby restaurants: %w", err))
	}

	result := make([]*domain.NearbyRestaurant, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.toDomain())
	}
	return result, nil
}

func (r *restaurantRepository) Update(
	ctx context.Context,
	id string,
	update domain.RestaurantUpdate,
) (*domain.Restaurant, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, errors.ErrRestaurantNotFound
	}

	sets := []string{"updated_at = NOW()"}
	args := []interface{}{id}
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if update.Name != nil {
		sets = append(sets, "name = "+arg(*update.Name))
	}
	if update.Description != nil {
		sets = append(sets, "description = "+arg(*update.Description))
	}
	if update.Location != nil {
		lon := arg(update.Location.Longitude())
		lat := arg(update.Location.Latitude())
		sets = append(sets, fmt.Sprintf("location = ST_SetSRID(ST_MakePoint(%s, %s), 4326)::geography", lon, lat))
	}
	if update.Ratings != nil {
		sets = append(sets, "ratings = "+arg(pq.Float64Array(update.Ratings))+"::text::float8[]")
	}

	query := fmt.Sprintf(
		`UPDATE restaurants SET %s WHERE id = $1 RETURNING %s`,
		strings.Join(sets, ", "), restaurantColumns,
	)

	var row restaurantRow
	err := r.db.GetContext(ctx, &row, query, args...)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrRestaurantNotFound
	}
	if err != nil {
		return nil, errors.ErrDatabaseError.WithCause(fmt.Errorf("update restaurant %s: %w", id, err))
	}

	return row.toDomain(), nil
}

func (r *restaurantRepository) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return errors.ErrRestaurantNotFound
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM restaurants WHERE id = $1`, id)
	if err != nil {
		return errors.ErrDatabaseError.WithCause(fmt.Errorf("delete restaurant %s: %w", id, err))
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return errors.ErrDatabaseError.WithCause(fmt.Errorf("delete restaurant %s: %w", id, err))
	}
	if affected == 0 {
		return errors.ErrRestaurantNotFound
	}

	return nil
}
