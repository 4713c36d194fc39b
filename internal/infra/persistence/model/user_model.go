// Package model holds the GORM persistence models mirroring the database tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the user table. The primary key is supplied by the
// application's identifier generator, never by the database, so there is no
// default expression on the id column. The table name is configurable and
// therefore set per query, not via TableName.
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Email     string    `gorm:"type:varchar(255);unique;not null"`
	Password  string    `gorm:"type:varchar(255);not null"` // bcrypt digest, never plaintext
	CreatedAt time.Time
}
