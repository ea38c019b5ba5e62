package service

import (
	"karondoran-server/internal/config"
	"karondoran-server/internal/platform/imaging"
	platformservice "karondoran-server/internal/platform/service"
)

type Service struct {
	*platformservice.AppService
	normalizer *imaging.Normalizer
	upload     config.UploadConfig
}

func New(appService *platformservice.AppService, normalizer *imaging.Normalizer, upload config.UploadConfig) *Service {
	if upload.CompressThresholdBytes <= 0 {
		upload.CompressThresholdBytes = imaging.MB
	}
	if upload.TargetMaxBytes <= 0 {
		upload.TargetMaxBytes = imaging.DefaultTargetMaxBytes
	}
	return &Service{
		AppService: appService,
		normalizer: normalizer,
		upload:     upload,
	}
}
