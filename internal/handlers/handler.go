package handlers

import (
	"github.com/lifeline-app/lifeline-api/internal/auth"
	"github.com/lifeline-app/lifeline-api/internal/services"
	"github.com/lifeline-app/lifeline-api/internal/store"
)

// Handler carries everything route bodies need: storage, the identity
// verifier, and the stats service. All of it is constructed in main
// and injected here.
type Handler struct {
	Store    *store.Store
	Verifier *auth.Verifier
	StatsSvc *services.StatsService
}

func NewHandler(st *store.Store, verifier *auth.Verifier, statsSvc *services.StatsService) *Handler {
	return &Handler{
		Store:    st,
		Verifier: verifier,
		StatsSvc: statsSvc,
	}
}
