package handlers

import (
	"github.com/biosecret/todoapp-api/store"
)

// Handler gom các endpoint lại quanh hai store, thay cho việc
// gọi thẳng database từ từng handler
type Handler struct {
	Profiles store.ProfileStore
	Tasks    store.TaskStore
}

func New(profiles store.ProfileStore, tasks store.TaskStore) *Handler {
	return &Handler{Profiles: profiles, Tasks: tasks}
}
