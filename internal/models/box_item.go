package models

type BoxItem struct {
	BaseModel
	BoxID       uint   `gorm:"index;not null" json:"box_id"`
	Name        string `gorm:"type:varchar(255);not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Price       string `gorm:"type:varchar(64)" json:"price"`
}
