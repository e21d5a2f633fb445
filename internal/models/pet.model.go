package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Pet struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"       json:"id"`
	Name      string          `gorm:"type:text;not null"         json:"name"`
	Species   string          `gorm:"type:text"                  json:"species"`
	Breed     string          `gorm:"type:text"                  json:"breed"`
	Age       int             `gorm:"type:int"                   json:"age"`
	Weight    decimal.Decimal `gorm:"type:decimal(6,2)"          json:"weight"`
	OwnerID   uuid.UUID       `gorm:"type:uuid;index"            json:"ownerId"`
	Owner     *User           `gorm:"foreignKey:OwnerID"         json:"-"`
	CreatedAt time.Time       `gorm:"autoCreateTime"             json:"createdAt"`
}

func (p *Pet) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		p.ID = id
	}
	return nil
}
