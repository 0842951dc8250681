package models

// Subscriber tracks progress through the notification stream via LastBoxID,
// the id of the most recent box it was confirmed-notified about. The pointer
// is a weak reference: deleting a box does not touch subscribers, so a stale
// id may point at a row that no longer exists.
type Subscriber struct {
	BaseModel
	Email     string `gorm:"type:varchar(255);not null;unique" json:"email"`
	Active    bool   `gorm:"not null;default:false" json:"active"`
	LastBoxID *uint  `gorm:"index" json:"last_box_id,omitempty"`
}

// NotifiedAbout reports whether the subscriber's notification pointer is at
// the given box.
func (s *Subscriber) NotifiedAbout(box *Box) bool {
	return s.LastBoxID != nil && box != nil && *s.LastBoxID == box.ID
}
