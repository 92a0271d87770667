package entity

import (
	"time"

	"github.com/google/uuid"
)

type Channel struct {
	Id        uuid.UUID
	Name      string
	CreatedBy uuid.UUID
	CreatedAt time.Time
}
