package models

// Planet matches the planet table. Population is kept as text ("unknown" is a valid value).
type Planet struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Name       string `gorm:"size:120;not null" json:"name"`
	Population string `gorm:"size:100" json:"population"`
	Terrain    string `gorm:"size:100" json:"terrain"`
}

func (Planet) TableName() string {
	return "planet"
}
