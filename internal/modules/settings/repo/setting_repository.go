package repo

import (
	"karondoran-server/internal/model"

	"gorm.io/gorm"
)

type UpdateSettingItem struct {
	Key   string
	Value string
}

// UpdateFailure reports a key that could not be written during a batch update.
type UpdateFailure struct {
	Key string
	Err error
}

type SettingStore interface {
	InitializeDefaults(defaults []model.Setting) error
	DeleteNotInKeys(allowedKeys []string) error
	FindByKey(key string) (*model.Setting, error)
	Create(setting *model.Setting) error
	FindAll() ([]model.Setting, error)
	// UpdateSettings writes each item independently; a failing key does not
	// stop the others. It returns the keys that were applied and the failures.
	UpdateSettings(items []UpdateSettingItem, maskedValue string) ([]string, []UpdateFailure)
}

func NewSettingRepository(db *gorm.DB) SettingStore {
	return &SettingRepository{db: db}
}
