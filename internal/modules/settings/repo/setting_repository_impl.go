package repo

import (
	"fmt"

	"karondoran-server/internal/model"

	"gorm.io/gorm"
)

type SettingRepository struct {
	db *gorm.DB
}

func (r *SettingRepository) InitializeDefaults(defaults []model.Setting) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, def := range defaults {
			var count int64
			if err := tx.Model(&model.Setting{}).Where("key = ?", def.Key).Count(&count).Error; err != nil {
				return fmt.Errorf("count default setting %q failed: %w", def.Key, err)
			}
			if count == 0 {
				row := def
				if err := tx.Create(&row).Error; err != nil {
					return fmt.Errorf("create default setting %q failed: %w", def.Key, err)
				}
				continue
			}
			if err := tx.Model(&model.Setting{}).Where("key = ?", def.Key).Updates(map[string]interface{}{
				"category":  def.Category,
				"desc":      def.Desc,
				"sensitive": def.Sensitive,
			}).Error; err != nil {
				return fmt.Errorf("update default setting metadata %q failed: %w", def.Key, err)
			}
		}
		return nil
	})
}

func (r *SettingRepository) DeleteNotInKeys(allowedKeys []string) error {
	query := r.db.Model(&model.Setting{})
	if len(allowedKeys) == 0 {
		return query.Where("1 = 1").Delete(&model.Setting{}).Error
	}
	return query.Where("key NOT IN ?", allowedKeys).Delete(&model.Setting{}).Error
}

func (r *SettingRepository) FindByKey(key string) (*model.Setting, error) {
	var setting model.Setting
	if err := r.db.Where("key = ?", key).First(&setting).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *SettingRepository) Create(setting *model.Setting) error {
	return r.db.Create(setting).Error
}

func (r *SettingRepository) FindAll() ([]model.Setting, error) {
	var settings []model.Setting
	if err := r.db.Order("key ASC").Find(&settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}

func (r *SettingRepository) UpdateSettings(items []UpdateSettingItem, maskedValue string) ([]string, []UpdateFailure) {
	applied := make([]string, 0, len(items))
	var failures []UpdateFailure

	for _, item := range items {
		if r.isMaskedSensitive(item, maskedValue) {
			continue
		}
		if err := r.upsertValue(item); err != nil {
			failures = append(failures, UpdateFailure{Key: item.Key, Err: err})
			continue
		}
		applied = append(applied, item.Key)
	}
	return applied, failures
}

// isMaskedSensitive reports whether the submitted value is just the mask
// echoed back for a sensitive setting, which must not overwrite the secret.
func (r *SettingRepository) isMaskedSensitive(item UpdateSettingItem, maskedValue string) bool {
	if item.Value != maskedValue {
		return false
	}
	current, err := r.FindByKey(item.Key)
	if err != nil {
		return false
	}
	return current.Sensitive
}

func (r *SettingRepository) upsertValue(item UpdateSettingItem) error {
	result := r.db.Model(&model.Setting{}).Where("key = ?", item.Key).Update("value", item.Value)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}
	// MySQL reports zero affected rows when the value is unchanged
	var count int64
	if err := r.db.Model(&model.Setting{}).Where("key = ?", item.Key).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return r.db.Create(&model.Setting{Key: item.Key, Value: item.Value}).Error
}
