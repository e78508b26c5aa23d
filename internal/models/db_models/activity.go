package db_models

const (
	ActivityTypeTransport = "transport"
	ActivityTypeLoisir    = "loisir"
	ActivityTypeRepas     = "repas"
)

// ActivityTypes is the closed set accepted for Activity.Type.
var ActivityTypes = []string{ActivityTypeTransport, ActivityTypeLoisir, ActivityTypeRepas}

type Activity struct {
	ID             uint   `gorm:"primaryKey"`
	Name           string `gorm:"not null"`
	Type           string `gorm:"not null"`
	PriceEstimated *float64
	DestinationID  *uint `gorm:"index"`

	// Only declares the foreign key for migrations; never preloaded.
	Destination *Destination `gorm:"constraint:OnDelete:SET NULL"`
}

func (Activity) TableName() string {
	return "activities"
}
