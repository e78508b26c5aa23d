package db_models

type Destination struct {
	ID          uint    `gorm:"primaryKey"`
	City        string  `gorm:"size:100"`
	Country     string  `gorm:"not null;index"`
	Description *string `gorm:"type:text"`
}

func (Destination) TableName() string {
	return "destinations"
}
