package dto

type UpdateSettingRequest struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value"`
}

// SettingFailure is a key a batch update could not apply.
type SettingFailure struct {
	Key   string `json:"key"`
	Error string `json:"error"`
}

type BatchUpdateResponse struct {
	Updated []string         `json:"updated"`
	Failed  []SettingFailure `json:"failed"`
}
