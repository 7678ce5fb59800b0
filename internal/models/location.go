package models

// Location is a per-user address. At most one location per user may
// have DefaultLocation set; the application layer enforces this inside
// a transaction since there is no database constraint for it.
type Location struct {
	BaseModel
	UserID          string `gorm:"type:uuid;not null;index" json:"user_id"`
	Address         string `gorm:"not null;uniqueIndex:idx_address_city_country" json:"address"`
	City            string `gorm:"not null;uniqueIndex:idx_address_city_country" json:"city"`
	Country         string `gorm:"not null;uniqueIndex:idx_address_city_country" json:"country"`
	DefaultLocation bool   `gorm:"default:false" json:"default_location"`
}
