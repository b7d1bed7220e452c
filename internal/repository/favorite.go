package repository

import (
	"context"
	"errors"

	"pokedex/internal/domain"
)

var ErrInvalidFavorite = errors.New("invalid favorite")

type FavoriteRepository struct {
	db ExtHandle
}

func NewFavoriteRepository(db ExtHandle) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// Add inserts the favorite or replaces the existing row with the same id.
// A replaced row moves to the top of the newest-first listing.
func (r *FavoriteRepository) Add(ctx context.Context, fav *domain.Favorite) error {
	if fav == nil || fav.ID <= 0 {
		return ErrInvalidFavorite
	}

	query := `
		INSERT INTO favorites (id, name, image_url, created_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name,
		    image_url = EXCLUDED.image_url,
		    created_at = EXCLUDED.created_at
		RETURNING created_at
	`

	return r.db.QueryRowxContext(ctx, query, fav.ID, fav.Name, fav.ImageURL).Scan(&fav.CreatedAt)
}

func (r *FavoriteRepository) Remove(ctx context.Context, id int) error {
	query := `DELETE FROM favorites WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *FavoriteRepository) Contains(ctx context.Context, id int) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM favorites WHERE id = $1)`

	exists := false
	err := r.db.GetContext(ctx, &exists, query, id)
	return exists, err
}

func (r *FavoriteRepository) ListAll(ctx context.Context) ([]domain.Favorite, error) {
	query := `
		SELECT id, name, image_url, created_at
		FROM favorites
		ORDER BY created_at DESC, id DESC
	`

	favorites := []domain.Favorite{}
	if err := r.db.SelectContext(ctx, &favorites, query); err != nil {
		return nil, err
	}
	return favorites, nil
}
