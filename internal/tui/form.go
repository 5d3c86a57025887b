package tui

import (
	"strconv"
	"strings"

	"github.com/MKhiriev/go-post-board/models"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type formMode int

const (
	formCreate formMode = iota
	formEdit
)

const (
	fieldUserID = iota
	fieldTitle
	fieldBody
	fieldCount
)

// postForm edits the three mutable fields of a post. In edit mode only the
// fields that differ from the original end up in the patch.
type postForm struct {
	mode     formMode
	original models.Post
	returnTo screen

	userID textinput.Model
	title  textinput.Model
	body   textarea.Model
	focus  int

	err        string
	submitting bool
}

func newCreateForm(draft models.PostDraft) postForm {
	return newPostForm(formCreate, models.Post{UserID: draft.UserID, Title: draft.Title, Body: draft.Body}, screenList)
}

func newEditForm(post models.Post, returnTo screen) postForm {
	return newPostForm(formEdit, post, returnTo)
}

func newPostForm(mode formMode, original models.Post, returnTo screen) postForm {
	userID := textinput.New()
	userID.Placeholder = "id автора"
	userID.CharLimit = 10
	userID.Width = 10
	if original.UserID > 0 {
		userID.SetValue(strconv.FormatInt(original.UserID, 10))
	}

	title := textinput.New()
	title.Placeholder = "Заголовок"
	title.Width = 50
	title.SetValue(original.Title)

	body := textarea.New()
	body.Placeholder = "Текст поста"
	body.SetWidth(60)
	body.SetHeight(6)
	body.SetValue(original.Body)

	f := postForm{
		mode:     mode,
		original: original,
		returnTo: returnTo,
		userID:   userID,
		title:    title,
		body:     body,
	}
	f.setFocus(fieldTitle)
	return f
}

func (f *postForm) setFocus(field int) {
	f.userID.Blur()
	f.title.Blur()
	f.body.Blur()

	f.focus = (field + fieldCount) % fieldCount
	switch f.focus {
	case fieldUserID:
		f.userID.Focus()
	case fieldTitle:
		f.title.Focus()
	case fieldBody:
		f.body.Focus()
	}
}

func (f *postForm) nextField() { f.setFocus(f.focus + 1) }
func (f *postForm) prevField() { f.setFocus(f.focus - 1) }

func (f postForm) values() (models.Post, error) {
	userID, err := strconv.ParseInt(strings.TrimSpace(f.userID.Value()), 10, 64)
	if err != nil {
		return models.Post{}, models.ErrInvalidUserID
	}

	return models.Post{
		ID:     f.original.ID,
		UserID: userID,
		Title:  strings.TrimSpace(f.title.Value()),
		Body:   f.body.Value(),
	}, nil
}

func (f postForm) draft() (models.PostDraft, error) {
	v, err := f.values()
	if err != nil {
		return models.PostDraft{}, err
	}

	d := models.PostDraft{UserID: v.UserID, Title: v.Title, Body: v.Body}
	return d, d.Validate()
}

func (f postForm) patch() (models.PostPatch, error) {
	v, err := f.values()
	if err != nil {
		return models.PostPatch{}, err
	}

	var p models.PostPatch
	if v.UserID != f.original.UserID {
		p.UserID = &v.UserID
	}
	// the form trims the title, so an untouched padded title is not a change
	if v.Title != strings.TrimSpace(f.original.Title) {
		p.Title = &v.Title
	}
	if v.Body != f.original.Body {
		p.Body = &v.Body
	}
	return p, p.Validate()
}

func (f postForm) update(msg tea.Msg) (postForm, tea.Cmd) {
	var cmd tea.Cmd
	switch f.focus {
	case fieldUserID:
		f.userID, cmd = f.userID.Update(msg)
	case fieldTitle:
		f.title, cmd = f.title.Update(msg)
	case fieldBody:
		f.body, cmd = f.body.Update(msg)
	}
	return f, cmd
}

func (f postForm) pageTitle() string {
	if f.mode == formEdit {
		return "ИЗМЕНЕНИЕ ПОСТА " + postIDLabel(f.original.ID)
	}
	return "НОВЫЙ ПОСТ"
}

func (f postForm) view() string {
	out := "Автор (id): [ " + f.userID.View() + " ]\n"
	out += "Заголовок : [ " + f.title.View() + " ]\n"
	out += "Текст     :\n"
	out += f.body.View() + "\n"
	if f.submitting {
		out += "\nСохранение...\n"
	}
	if f.err != "" {
		out += "\nОшибка: " + f.err + "\n"
	}
	return strings.TrimRight(out, "\n")
}
