package db_models

// UserFavorite is a row of the users_favorites join table.
type UserFavorite struct {
	UserID        uint `gorm:"primaryKey;autoIncrement:false"`
	DestinationID uint `gorm:"primaryKey;autoIncrement:false"`

	User        *User        `gorm:"constraint:OnDelete:CASCADE"`
	Destination *Destination `gorm:"constraint:OnDelete:CASCADE"`
}

func (UserFavorite) TableName() string {
	return "users_favorites"
}
