package models

// Box is identified by the (Name, Month) pair; the surrogate ID is assigned
// by the store and never part of box identity.
type Box struct {
	BaseModel
	Name        string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_boxes_name_month" json:"name"`
	Month       string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_boxes_name_month" json:"month"`
	Description string    `gorm:"type:text" json:"description"`
	Price       string    `gorm:"type:varchar(64)" json:"price"`
	Items       []BoxItem `gorm:"foreignKey:BoxID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}
