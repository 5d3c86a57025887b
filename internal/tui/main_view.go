package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-post-board/models"
)

const (
	detailHotKeys = "esc: назад │ e: изм. │ d: уд. │ c: копировать текст"
	formHotKeys   = "esc: назад │ tab: след. поле │ ctrl+s: сохранить"
)

func (m mainLoopModel) View() string {
	var page string
	switch {
	case m.showBuildInfo:
		page = renderBuildInfoWindow(m.buildInfo)
	case m.screen == screenForm:
		page = renderPage(m.form.pageTitle(), m.form.view(), formHotKeys)
	case m.screen == screenDetail:
		page = m.viewDetail()
	default:
		page = m.viewList()
	}

	if m.overlay != nil {
		return page + "\n" + m.overlay.View()
	}
	if m.confirm != nil {
		return page + "\n" + m.confirm.View()
	}
	return page
}

func (m mainLoopModel) viewList() string {
	out := ""

	if m.loading {
		out += m.spinner.View() + " Загрузка списка...\n"
	}
	if m.status != "" {
		out += "Статус: " + m.status + "\n"
	}
	if out != "" {
		out += "\n"
	}

	out += "[ ПОСТЫ ]\n"
	if len(m.posts) == 0 {
		out += "Постов нет\n"
	} else {
		out += "ID    │ Автор │ Заголовок\n"
		out += "──────┼───────┼──────────────────────────────────────────\n"
		for i, post := range m.posts {
			cursor := " "
			line := fmt.Sprintf("%s │ %-5d │ %s",
				padRight(postIDLabel(post.ID), 4),
				post.UserID,
				fitText(valueOrDash(post.Title), 42),
			)
			if i == m.idx {
				cursor = ">"
				line = cursorStyle.Render(line)
			}
			out += cursor + " " + line + "\n"
		}
	}

	out += "\n" + viewUsers(m.users)

	return renderPage("ГЛАВНАЯ СТРАНИЦА", strings.TrimRight(out, "\n"), listHotKeys)
}

func viewUsers(users []models.User) string {
	out := "[ ПОЛЬЗОВАТЕЛИ ]\n"
	if len(users) == 0 {
		return out + "-\n"
	}
	for _, u := range users {
		out += fmt.Sprintf("%s %s (@%s) %s\n",
			padRight(postIDLabel(u.ID), 4),
			fitText(valueOrDash(u.Name), 24),
			valueOrDash(u.Username),
			valueOrDash(u.Email),
		)
	}
	return out
}

func (m mainLoopModel) viewDetail() string {
	post, ok := m.openPost()
	if !ok {
		return renderPage("ПРОСМОТР ПОСТА", m.spinner.View()+" Загрузка...", "esc: назад")
	}

	out := ""
	if m.status != "" {
		out += "Статус: " + m.status + "\n\n"
	}
	out += "ID        : " + postIDLabel(post.ID) + "\n"
	out += fmt.Sprintf("Автор     : %d\n", post.UserID)
	if author, ok := m.author(post.UserID); ok {
		out += "            " + author.Name + " <" + valueOrDash(author.Email) + ">\n"
	}
	out += "Заголовок : " + valueOrDash(post.Title) + "\n"
	out += "\n[ ТЕКСТ ]\n"
	out += bodyStyle.Render(valueOrDash(post.Body)) + "\n"

	return renderPage("ПРОСМОТР ПОСТА "+postIDLabel(post.ID), strings.TrimRight(out, "\n"), detailHotKeys)
}

func (m mainLoopModel) author(userID int64) (models.User, bool) {
	for _, u := range m.users {
		if u.ID == userID {
			return u, true
		}
	}
	return models.User{}, false
}
