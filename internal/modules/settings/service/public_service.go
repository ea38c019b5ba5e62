package service

import platformservice "karondoran-server/internal/platform/service"

// WebInfo returns the settings shown on the public site.
func (s *Service) WebInfo() map[string]string {
	info := make(map[string]string, len(platformservice.PublicSettingKeys))
	for _, key := range platformservice.PublicSettingKeys {
		info[key] = s.GetString(key)
	}
	return info
}
