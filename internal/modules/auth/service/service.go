package service

import (
	"sync"

	"karondoran-server/internal/modules/auth/repo"
	platformservice "karondoran-server/internal/platform/service"
)

type Service struct {
	*platformservice.AppService
	userStore repo.AdminUserStore

	// registerMu serializes the duplicate check, the first-account count and
	// the insert of Register.
	registerMu sync.Mutex
}

func New(appService *platformservice.AppService, userStore repo.AdminUserStore) *Service {
	return &Service{
		AppService: appService,
		userStore:  userStore,
	}
}
