package model

// Setting is a runtime key/value setting editable from the admin panel.
type Setting struct {
	Key       string `gorm:"primaryKey;size:191" json:"key"`
	Value     string `gorm:"type:text" json:"value"`
	Desc      string `gorm:"size:255" json:"desc"`
	Category  string `gorm:"size:64" json:"category"`
	Sensitive bool   `gorm:"default:false" json:"sensitive"`
}
