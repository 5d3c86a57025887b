package tui

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-post-board/internal/adapter"
	"github.com/MKhiriev/go-post-board/internal/service"
	"github.com/MKhiriev/go-post-board/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenList screen = iota
	screenDetail
	screenForm
)

const listHotKeys = "n: новый │ a: форма │ enter: открыть │ e: изм. │ d: уд. │ r: обновить │ ↑/↓: нав. │ v: версия │ q: выход"

type mainLoopModel struct {
	ctx       context.Context
	feed      service.FeedService
	buildInfo models.AppBuildInfo
	copyText  func(string) error

	postsCh  <-chan []models.Post
	detailCh <-chan *models.Post
	usersCh  <-chan []models.User

	posts    []models.Post
	users    []models.User
	detail   *models.Post
	idx      int
	cursorID int64
	openID   int64

	screen        screen
	form          postForm
	confirm       *confirmModel
	overlay       *errorOverlayModel
	showBuildInfo bool

	loading bool
	spinner spinner.Model
	status  string
}

// streams holds the subscriber channels the model listens on.
type streams struct {
	posts  <-chan []models.Post
	detail <-chan *models.Post
	users  <-chan []models.User
}

func newMainLoopModel(ctx context.Context, feed service.FeedService, subs streams, buildInfo models.AppBuildInfo, copyText func(string) error) mainLoopModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return mainLoopModel{
		ctx:       ctx,
		feed:      feed,
		buildInfo: buildInfo,
		copyText:  copyText,
		postsCh:   subs.posts,
		detailCh:  subs.detail,
		usersCh:   subs.users,
		loading:   true,
		spinner:   sp,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(
		listen(m.postsCh, wrapPosts),
		listen(m.detailCh, wrapDetail),
		listen(m.usersCh, wrapUsers),
		m.cmdBootstrap(),
		m.spinner.Tick,
	)
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case postsMsg:
		m.applyPosts(msg.posts)
		return m, listen(m.postsCh, wrapPosts)
	case detailMsg:
		m.detail = msg.post
		if msg.post == nil && m.screen == screenDetail {
			m.screen = screenList
		}
		return m, listen(m.detailCh, wrapDetail)
	case usersMsg:
		m.users = msg.users
		return m, listen(m.usersCh, wrapUsers)
	case streamClosedMsg:
		return m, nil
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case loadDoneMsg:
		m.loading = false
		if msg.err != nil {
			m.showError("Не удалось загрузить данные", msg.err)
			return m, nil
		}
		return m, nil
	case createDoneMsg:
		m.form.submitting = false
		if msg.err != nil {
			m.showError("Не удалось создать пост", msg.err)
			return m, nil
		}
		if m.screen == screenForm {
			m.screen = screenList
		}
		m.cursorID = msg.post.ID
		m.idx = 0
		m.status = fmt.Sprintf("Пост создан, id=%d", msg.post.ID)
		return m, nil
	case updateDoneMsg:
		m.form.submitting = false
		if msg.err != nil {
			m.showError("Не удалось изменить пост", msg.err)
			return m, nil
		}
		if m.screen == screenForm {
			m.screen = m.form.returnTo
		}
		m.status = "Пост обновлён"
		return m, nil
	case deleteDoneMsg:
		if msg.err != nil {
			m.showError("Не удалось удалить пост", msg.err)
			return m, nil
		}
		if m.screen == screenDetail && m.openID == msg.id {
			m.screen = screenList
		}
		m.status = "Пост " + postIDLabel(msg.id) + " удалён"
		return m, nil
	case selectDoneMsg:
		if msg.err != nil && m.openID == msg.id {
			m.showError("Не удалось открыть пост", msg.err)
			if m.detail == nil || m.detail.ID != msg.id {
				m.screen = screenList
			}
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.screen == screenForm {
		var cmd tea.Cmd
		m.form, cmd = m.form.update(msg)
		return m, cmd
	}

	return m, nil
}

func (m mainLoopModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.forceQuit) {
		return m, tea.Quit
	}

	if m.overlay != nil {
		if key.Matches(msg, keys.enter, keys.esc) {
			m.overlay = nil
		}
		return m, nil
	}

	if m.confirm != nil {
		switch {
		case key.Matches(msg, keys.yes):
			id := m.confirm.postID
			m.confirm = nil
			m.status = "Удаление..."
			return m, m.cmdDelete(id)
		case key.Matches(msg, keys.no):
			m.confirm = nil
		}
		return m, nil
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.esc, keys.buildInfo) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch m.screen {
	case screenForm:
		return m.updateForm(msg)
	case screenDetail:
		return m.updateDetail(msg)
	default:
		return m.updateList(msg)
	}
}

func (m mainLoopModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
			m.syncCursorID()
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.posts)-1 {
			m.idx++
			m.syncCursorID()
		}
	case key.Matches(msg, keys.enter):
		post, ok := m.current()
		if !ok {
			m.status = "Постов нет"
			return m, nil
		}
		m.screen = screenDetail
		m.openID = post.ID
		m.status = ""
		return m, m.cmdSelect(post.ID)
	case key.Matches(msg, keys.quickNew):
		m.status = "Создание..."
		return m, m.cmdCreate(models.NewDefaultDraft())
	case key.Matches(msg, keys.newItem):
		m.form = newCreateForm(models.NewDefaultDraft())
		m.screen = screenForm
		m.status = ""
		return m, textinput.Blink
	case key.Matches(msg, keys.edit):
		post, ok := m.current()
		if !ok {
			m.status = "Постов нет"
			return m, nil
		}
		m.form = newEditForm(post, screenList)
		m.screen = screenForm
		m.status = ""
		return m, textinput.Blink
	case key.Matches(msg, keys.delete):
		post, ok := m.current()
		if !ok {
			m.status = "Постов нет"
			return m, nil
		}
		m.confirm = &confirmModel{postID: post.ID, title: post.Title}
	case key.Matches(msg, keys.reload):
		if m.loading {
			return m, nil
		}
		m.loading = true
		m.status = ""
		return m, tea.Batch(m.cmdLoad(), m.spinner.Tick)
	case key.Matches(msg, keys.buildInfo):
		m.showBuildInfo = true
	}

	return m, nil
}

func (m mainLoopModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.esc):
		m.screen = screenList
		m.openID = 0
		m.feed.ClearSelection()
	case key.Matches(msg, keys.edit):
		post, ok := m.openPost()
		if !ok {
			return m, nil
		}
		m.form = newEditForm(post, screenDetail)
		m.screen = screenForm
		return m, textinput.Blink
	case key.Matches(msg, keys.delete):
		post, ok := m.openPost()
		if !ok {
			return m, nil
		}
		m.confirm = &confirmModel{postID: post.ID, title: post.Title}
	case key.Matches(msg, keys.copy):
		post, ok := m.openPost()
		if !ok || strings.TrimSpace(post.Body) == "" {
			m.status = "Нечего копировать"
			return m, nil
		}
		if err := m.copyText(post.Body); err != nil {
			m.showError("Ошибка копирования", err)
			return m, nil
		}
		m.status = "Текст поста скопирован"
	}

	return m, nil
}

func (m mainLoopModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.form.submitting {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		m.screen = m.form.returnTo
		return m, nil
	case key.Matches(msg, keys.tab):
		m.form.nextField()
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.form.prevField()
		return m, nil
	case key.Matches(msg, keys.enter) && m.form.focus != fieldBody:
		m.form.nextField()
		return m, nil
	case key.Matches(msg, keys.save):
		return m.submitForm()
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m mainLoopModel) submitForm() (tea.Model, tea.Cmd) {
	switch m.form.mode {
	case formCreate:
		draft, err := m.form.draft()
		if err != nil {
			m.form.err = err.Error()
			return m, nil
		}
		m.form.err = ""
		m.form.submitting = true
		return m, m.cmdCreate(draft)
	default:
		patch, err := m.form.patch()
		if errors.Is(err, models.ErrEmptyPatch) {
			m.form.err = "Нет изменений"
			return m, nil
		}
		if err != nil {
			m.form.err = err.Error()
			return m, nil
		}
		m.form.err = ""
		m.form.submitting = true
		return m, m.cmdUpdate(m.form.original.ID, patch)
	}
}

// applyPosts installs a new snapshot keeping the cursor on the same post id
// when it is still present.
func (m *mainLoopModel) applyPosts(posts []models.Post) {
	m.posts = posts

	if i := slices.IndexFunc(posts, func(p models.Post) bool { return p.ID == m.cursorID }); i >= 0 {
		m.idx = i
	}
	if m.idx >= len(m.posts) {
		m.idx = len(m.posts) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
	m.syncCursorID()
}

func (m *mainLoopModel) syncCursorID() {
	if post, ok := m.current(); ok {
		m.cursorID = post.ID
	}
}

func (m mainLoopModel) current() (models.Post, bool) {
	if len(m.posts) == 0 || m.idx < 0 || m.idx >= len(m.posts) {
		return models.Post{}, false
	}
	return m.posts[m.idx], true
}

// openPost returns the post shown on the detail screen. The local list entry
// wins over the fetched detail since it carries the optimistic edits.
func (m mainLoopModel) openPost() (models.Post, bool) {
	if i := slices.IndexFunc(m.posts, func(p models.Post) bool { return p.ID == m.openID }); i >= 0 {
		return m.posts[i], true
	}
	if m.detail != nil && m.detail.ID == m.openID {
		return *m.detail, true
	}
	return models.Post{}, false
}

func (m *mainLoopModel) showError(title string, err error) {
	m.status = ""
	m.overlay = &errorOverlayModel{title: title, message: errorMessage(err)}
}

func errorMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.DeadlineExceeded):
		return "Сервер не ответил вовремя"
	case errors.Is(err, adapter.ErrNotFound):
		return "Пост не найден на сервере"
	case errors.Is(err, service.ErrInvalidPatch), errors.Is(err, service.ErrInvalidDraft):
		return "Некорректные данные: " + err.Error()
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") {
		return "Отсутствует сеть или сервер недоступен"
	}

	return err.Error()
}

func (m mainLoopModel) cmdBootstrap() tea.Cmd {
	ctx, feed := m.ctx, m.feed
	return func() tea.Msg {
		return loadDoneMsg{err: feed.Bootstrap(ctx)}
	}
}

func (m mainLoopModel) cmdLoad() tea.Cmd {
	ctx, feed := m.ctx, m.feed
	return func() tea.Msg {
		return loadDoneMsg{err: feed.Load(ctx)}
	}
}

func (m mainLoopModel) cmdSelect(id int64) tea.Cmd {
	ctx, feed := m.ctx, m.feed
	return func() tea.Msg {
		return selectDoneMsg{id: id, err: feed.Select(ctx, id)}
	}
}

func (m mainLoopModel) cmdCreate(draft models.PostDraft) tea.Cmd {
	ctx, feed := m.ctx, m.feed
	return func() tea.Msg {
		post, err := feed.Create(ctx, draft)
		return createDoneMsg{post: post, err: err}
	}
}

func (m mainLoopModel) cmdUpdate(id int64, patch models.PostPatch) tea.Cmd {
	ctx, feed := m.ctx, m.feed
	return func() tea.Msg {
		return updateDoneMsg{err: feed.Update(ctx, id, patch)}
	}
}

func (m mainLoopModel) cmdDelete(id int64) tea.Cmd {
	ctx, feed := m.ctx, m.feed
	return func() tea.Msg {
		return deleteDoneMsg{id: id, err: feed.Delete(ctx, id)}
	}
}
