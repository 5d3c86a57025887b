package tui

import (
	"github.com/MKhiriev/go-post-board/models"
)

// stream deliveries
type postsMsg struct {
	posts []models.Post
}

type detailMsg struct {
	post *models.Post
}

type usersMsg struct {
	users []models.User
}

type streamClosedMsg struct{}

// command results
type loadDoneMsg struct {
	err error
}

type createDoneMsg struct {
	post models.Post
	err  error
}

type updateDoneMsg struct {
	err error
}

type deleteDoneMsg struct {
	id  int64
	err error
}

type selectDoneMsg struct {
	id  int64
	err error
}
