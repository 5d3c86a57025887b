package tui

import (
	"github.com/MKhiriev/go-post-board/models"
	tea "github.com/charmbracelet/bubbletea"
)

// listen returns a command that blocks until ch yields and wraps the value
// into a message. The model re-issues it after every delivery, so exactly one
// receive per stream is pending at any time.
func listen[T any](ch <-chan T, wrap func(T) tea.Msg) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		v, ok := <-ch
		if !ok {
			return streamClosedMsg{}
		}
		return wrap(v)
	}
}

func wrapPosts(posts []models.Post) tea.Msg { return postsMsg{posts: posts} }
func wrapDetail(post *models.Post) tea.Msg  { return detailMsg{post: post} }
func wrapUsers(users []models.User) tea.Msg { return usersMsg{users: users} }
