package repos

import (
	"parana/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ShopperRepo struct{ db *sqlx.DB }

func NewShopperRepo(db *sqlx.DB) *ShopperRepo { return &ShopperRepo{db: db} }

// ByID returns sql.ErrNoRows (via sqlx.Get) when the shopper does not exist.
func (r *ShopperRepo) ByID(id string) (domain.Shopper, error) {
	var s domain.Shopper
	err := r.db.Get(&s, `SELECT shopper_id, first_name, surname FROM shoppers WHERE shopper_id = ?`, id)
	return s, err
}
