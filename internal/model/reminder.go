package model

// Reminder is a stored medicine reminder. Time is an "HH:MM" string and is
// not validated on write.
type Reminder struct {
	ID           uint   `gorm:"primaryKey"`
	MedicineName string `gorm:"type:text"`
	Dosage       string `gorm:"type:text"`
	Time         string `gorm:"type:text"`
	HealthCheck  string `gorm:"type:text"`
}

// TableName keeps the table name used by earlier installs.
func (Reminder) TableName() string {
	return "reminders"
}
