package service

import (
	"karondoran-server/internal/modules/pages/repo"
	platformservice "karondoran-server/internal/platform/service"
)

type Service struct {
	*platformservice.AppService
	pageStore repo.PageStore
}

func New(appService *platformservice.AppService, pageStore repo.PageStore) *Service {
	return &Service{
		AppService: appService,
		pageStore:  pageStore,
	}
}
