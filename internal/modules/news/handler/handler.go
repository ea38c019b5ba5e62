package handler

import newsservice "karondoran-server/internal/modules/news/service"

type Handler struct {
	newsService *newsservice.Service
}

func New(newsService *newsservice.Service) *Handler {
	return &Handler{newsService: newsService}
}
