package db_models

type User struct {
	ID      uint   `gorm:"primaryKey"`
	Nom     string `gorm:"size:100"`
	Prenom  string `gorm:"size:100"`
	Email   string `gorm:"not null;uniqueIndex"`
	Adresse *string
}

func (User) TableName() string {
	return "users"
}
