package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"aqarsearch/internal/model"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

// PostgresRepository handles database operations
type PostgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(dsn string, maxConn, maxIdleConn int) (*PostgresRepository, error) {
	// Disable prepared statement caching to avoid "unnamed prepared statement does not exist" errors
	if !strings.Contains(dsn, "?") {
		dsn += "?prefer_simple_protocol=true"
	} else {
		dsn += "&prefer_simple_protocol=true"
	}

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(maxConn)
	db.SetMaxIdleConns(maxIdleConn)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresRepository{db: db}, nil
}

// Close closes the database connection
func (r *PostgresRepository) Close() error {
	return r.db.Close()
}

const propertyColumns = `
	id, title_ar AS "title.name_ar", title_en AS "title.name_en",
	property_type, purpose, district, city, price, area_m2,
	bedrooms, bathrooms, living_rooms, metro_time_minutes,
	lat, lon, images, details, created_at, updated_at
`

// ListProperties fetches the candidate set for the given criteria. Only
// dimensions the database stores as typed columns are pushed into SQL; price
// and area live as formatted strings and are filtered client-side by the
// attribute engine.
func (r *PostgresRepository) ListProperties(ctx context.Context, criteria model.FilterCriteria, query string, limit, offset int) ([]model.Property, int, error) {
	whereClauses := []string{"1=1"}
	args := []interface{}{}
	argIndex := 1

	if criteria.PropertyType != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("property_type ILIKE $%d", argIndex))
		args = append(args, "%"+criteria.PropertyType+"%")
		argIndex++
	}
	if criteria.District != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("district ILIKE $%d", argIndex))
		args = append(args, "%"+criteria.District+"%")
		argIndex++
	}
	if criteria.City != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("city ILIKE $%d", argIndex))
		args = append(args, "%"+criteria.City+"%")
		argIndex++
	}
	if criteria.Purpose != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("purpose = $%d", argIndex))
		args = append(args, criteria.Purpose)
		argIndex++
	}
	if criteria.Bedrooms > 0 {
		whereClauses = append(whereClauses, fmt.Sprintf("bedrooms = $%d", argIndex))
		args = append(args, criteria.Bedrooms)
		argIndex++
	}
	if criteria.Bathrooms > 0 {
		whereClauses = append(whereClauses, fmt.Sprintf("bathrooms = $%d", argIndex))
		args = append(args, criteria.Bathrooms)
		argIndex++
	}
	if criteria.LivingRooms > 0 {
		whereClauses = append(whereClauses, fmt.Sprintf("living_rooms = $%d", argIndex))
		args = append(args, criteria.LivingRooms)
		argIndex++
	}
	if query != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("(title_ar ILIKE $%d OR title_en ILIKE $%d OR district ILIKE $%d)", argIndex, argIndex, argIndex))
		args = append(args, "%"+query+"%")
		argIndex++
	}

	whereClause := strings.Join(whereClauses, " AND ")

	countQuery := "SELECT COUNT(*) FROM properties WHERE " + whereClause
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count properties: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT %s
		FROM properties
		WHERE %s
		ORDER BY updated_at DESC
		LIMIT $%d OFFSET $%d
	`, propertyColumns, whereClause, argIndex, argIndex+1)
	args = append(args, limit, offset)

	var properties []model.Property
	if err := r.db.SelectContext(ctx, &properties, selectQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to fetch properties: %w", err)
	}

	return properties, total, nil
}

// GetPropertyByID retrieves a single property by its ID
func (r *PostgresRepository) GetPropertyByID(ctx context.Context, id int64) (*model.Property, error) {
	var property model.Property
	query := fmt.Sprintf(`SELECT %s FROM properties WHERE id = $1`, propertyColumns)
	err := r.db.GetContext(ctx, &property, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get property: %w", err)
	}
	return &property, nil
}

// SemanticSearch returns the properties closest to the query embedding by
// cosine distance. Attribute and proximity filtering still run client-side
// on the returned candidates.
func (r *PostgresRepository) SemanticSearch(ctx context.Context, queryEmbedding []float32, limit int) ([]model.Property, error) {
	vec := pgvector.NewVector(queryEmbedding)
	query := fmt.Sprintf(`
		SELECT %s
		FROM properties
		WHERE embedding IS NOT NULL
		ORDER BY embedding <=> $1
		LIMIT $2
	`, propertyColumns)

	var properties []model.Property
	if err := r.db.SelectContext(ctx, &properties, query, vec, limit); err != nil {
		return nil, fmt.Errorf("failed to run semantic search: %w", err)
	}
	return properties, nil
}

// BatchUpdateEmbeddings updates embeddings for multiple properties
func (r *PostgresRepository) BatchUpdateEmbeddings(ctx context.Context, items []model.EmbeddingItem) (int, []string) {
	success := 0
	var errors []string

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		errors = append(errors, fmt.Sprintf("failed to start transaction: %v", err))
		return success, errors
	}
	defer tx.Rollback()

	stmt, err := tx.PreparexContext(ctx, `UPDATE properties SET embedding = $1, updated_at = NOW() WHERE id = $2`)
	if err != nil {
		errors = append(errors, fmt.Sprintf("failed to prepare statement: %v", err))
		return success, errors
	}
	defer stmt.Close()

	for _, item := range items {
		vec := pgvector.NewVector(item.Embedding)
		_, err := stmt.ExecContext(ctx, vec, item.PropertyID)
		if err != nil {
			errors = append(errors, fmt.Sprintf("property_id %d: %v", item.PropertyID, err))
			continue
		}
		success++
	}

	if err := tx.Commit(); err != nil {
		errors = append(errors, fmt.Sprintf("failed to commit transaction: %v", err))
		return 0, errors
	}

	return success, errors
}

// ListSchools fetches all school records for a city.
func (r *PostgresRepository) ListSchools(ctx context.Context, city string) ([]model.School, error) {
	query := `
		SELECT id, name_ar AS "name.name_ar", name_en AS "name.name_en",
		       gender, level, city, lat, lon
		FROM schools
		WHERE ($1 = '' OR city ILIKE '%' || $1 || '%')
	`
	var schools []model.School
	if err := r.db.SelectContext(ctx, &schools, query, city); err != nil {
		return nil, fmt.Errorf("failed to fetch schools: %w", err)
	}
	return schools, nil
}

// ListUniversities fetches all university records for a city.
func (r *PostgresRepository) ListUniversities(ctx context.Context, city string) ([]model.University, error) {
	query := `
		SELECT id, name_ar AS "name.name_ar", name_en AS "name.name_en", city, lat, lon
		FROM universities
		WHERE ($1 = '' OR city ILIKE '%' || $1 || '%')
	`
	var universities []model.University
	if err := r.db.SelectContext(ctx, &universities, query, city); err != nil {
		return nil, fmt.Errorf("failed to fetch universities: %w", err)
	}
	return universities, nil
}

// ListMosques fetches all mosque records for a city.
func (r *PostgresRepository) ListMosques(ctx context.Context, city string) ([]model.Mosque, error) {
	query := `
		SELECT id, name_ar AS "name.name_ar", name_en AS "name.name_en", city, lat, lon
		FROM mosques
		WHERE ($1 = '' OR city ILIKE '%' || $1 || '%')
	`
	var mosques []model.Mosque
	if err := r.db.SelectContext(ctx, &mosques, query, city); err != nil {
		return nil, fmt.Errorf("failed to fetch mosques: %w", err)
	}
	return mosques, nil
}

// ToggleFavorite adds the property to the user's favorites, or removes it if
// already present. Reports whether the property is favorited afterwards.
func (r *PostgresRepository) ToggleFavorite(ctx context.Context, userID string, propertyID int64) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM favorites WHERE user_id = $1 AND property_id = $2`,
		userID, propertyID)
	if err != nil {
		return false, fmt.Errorf("failed to toggle favorite: %w", err)
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to toggle favorite: %w", err)
	}
	if deleted > 0 {
		return false, nil
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO favorites (user_id, property_id, created_at) VALUES ($1, $2, NOW())`,
		userID, propertyID)
	if err != nil {
		return false, fmt.Errorf("failed to add favorite: %w", err)
	}
	return true, nil
}

// ListFavorites returns the user's favorited properties.
func (r *PostgresRepository) ListFavorites(ctx context.Context, userID string) ([]model.Property, error) {
	query := `
		SELECT p.id, p.title_ar AS "title.name_ar", p.title_en AS "title.name_en",
		       p.property_type, p.purpose, p.district, p.city, p.price, p.area_m2,
		       p.bedrooms, p.bathrooms, p.living_rooms, p.metro_time_minutes,
		       p.lat, p.lon, p.images, p.details, p.created_at, p.updated_at
		FROM properties p
		JOIN favorites f ON f.property_id = p.id
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC
	`

	var properties []model.Property
	if err := r.db.SelectContext(ctx, &properties, query, userID); err != nil {
		return nil, fmt.Errorf("failed to fetch favorites: %w", err)
	}
	return properties, nil
}

// DistrictPriceStats aggregates price statistics per district for the
// heatmap view. Prices are stored as comma-formatted strings, so the commas
// are stripped before the numeric cast; rows that still fail to parse are
// excluded.
func (r *PostgresRepository) DistrictPriceStats(ctx context.Context, city string) ([]model.DistrictStats, error) {
	query := `
		SELECT district, city,
		       AVG(REPLACE(price, ',', '')::numeric) AS avg_price,
		       MIN(REPLACE(price, ',', '')::numeric) AS min_price,
		       MAX(REPLACE(price, ',', '')::numeric) AS max_price,
		       COUNT(*) AS count
		FROM properties
		WHERE district <> ''
		  AND REPLACE(price, ',', '') ~ '^[0-9]+(\.[0-9]+)?$'
		  AND ($1 = '' OR city ILIKE '%' || $1 || '%')
		GROUP BY district, city
		ORDER BY avg_price DESC
	`
	var stats []model.DistrictStats
	if err := r.db.SelectContext(ctx, &stats, query, city); err != nil {
		return nil, fmt.Errorf("failed to aggregate district prices: %w", err)
	}
	return stats, nil
}
