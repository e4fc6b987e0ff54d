package models

import (
	"time"

	"github.com/lib/pq"
)

// OutfitLook is a combination the user saved or wore. Looks only feed the
// learned preferences, they are never rescored.
type OutfitLook struct {
	JsonModel
	Name     string        `json:"name"`
	Owner    UserAccount   `json:"-"`
	OwnerID  uint          `json:"-" gorm:"index"`
	Occasion string        `json:"occasion"`
	ItemIDs  pq.Int64Array `gorm:"type:bigint[]" json:"item_ids"`
	WornAt   *time.Time    `json:"worn_at"`
}
