package models

// People matches the people table. Height and gender are free-form text.
type People struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Name   string `gorm:"size:120;not null" json:"name"`
	Height string `gorm:"size:50" json:"height"`
	Gender string `gorm:"size:50" json:"gender"`
}

func (People) TableName() string {
	return "people"
}
