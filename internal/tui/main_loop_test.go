package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-post-board/internal/adapter"
	"github.com/MKhiriev/go-post-board/internal/mock"
	"github.com/MKhiriev/go-post-board/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

func newTestModel(t *testing.T) (mainLoopModel, *mock.MockFeedService, *[]string) {
	t.Helper()

	ctrl := gomock.NewController(t)
	feed := mock.NewMockFeedService(ctrl)

	copied := &[]string{}
	copyText := func(s string) error {
		*copied = append(*copied, s)
		return nil
	}

	m := newMainLoopModel(context.Background(), feed, streams{}, models.NewAppBuildInfo("post-board", "1.0.0", "2026-01-01", "abc123"), copyText)
	m.loading = false
	return m, feed, copied
}

func testPosts(n int) []models.Post {
	posts := make([]models.Post, 0, n)
	for i := 1; i <= n; i++ {
		posts = append(posts, models.Post{
			ID:     int64(i),
			UserID: 1,
			Title:  fmt.Sprintf("title %d", i),
			Body:   fmt.Sprintf("body %d", i),
		})
	}
	return posts
}

func send(t *testing.T, m mainLoopModel, msg tea.Msg) (mainLoopModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(mainLoopModel)
	require.True(t, ok)
	return nm, cmd
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyType(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

// run executes cmd and feeds the resulting message back into the model.
func run(t *testing.T, m mainLoopModel, cmd tea.Cmd) (mainLoopModel, tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)
	return send(t, m, cmd())
}

// ── Init and streams ─────────────────────────────────────────────────────────

func TestInit_ReturnsBatch(t *testing.T) {
	m, _, _ := newTestModel(t)
	assert.NotNil(t, m.Init())
}

func TestUpdate_PostsMsgPreservesCursorByID(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, _ = send(t, m, postsMsg{posts: testPosts(3)})
	m, _ = send(t, m, keyType(tea.KeyDown))
	require.Equal(t, int64(2), m.cursorID)

	reordered := []models.Post{{ID: 9, Title: "new"}, {ID: 1}, {ID: 2}, {ID: 3}}
	m, _ = send(t, m, postsMsg{posts: reordered})

	assert.Equal(t, 2, m.idx)
	assert.Equal(t, int64(2), m.cursorID)
}

func TestUpdate_PostsMsgClampsCursorWhenPostVanishes(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, _ = send(t, m, postsMsg{posts: testPosts(3)})
	m, _ = send(t, m, keyType(tea.KeyDown))
	m, _ = send(t, m, keyType(tea.KeyDown))
	require.Equal(t, 2, m.idx)

	m, _ = send(t, m, postsMsg{posts: testPosts(2)})
	assert.Equal(t, 1, m.idx)
	assert.Equal(t, int64(2), m.cursorID)

	m, _ = send(t, m, postsMsg{posts: nil})
	assert.Equal(t, 0, m.idx)
	_, ok := m.current()
	assert.False(t, ok)
}

func TestUpdate_UsersMsg(t *testing.T) {
	m, _, _ := newTestModel(t)
	users := []models.User{{ID: 1, Name: "Leanne Graham", Username: "Bret", Email: "Sincere@april.biz"}}

	m, _ = send(t, m, usersMsg{users: users})

	assert.Equal(t, users, m.users)
	assert.Contains(t, m.View(), "Leanne Graham")
	assert.Contains(t, m.View(), "[ ПОЛЬЗОВАТЕЛИ ]")
}

func TestUpdate_NilDetailLeavesDetailScreen(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.screen = screenDetail
	m.detail = &models.Post{ID: 1}

	m, _ = send(t, m, detailMsg{post: nil})

	assert.Nil(t, m.detail)
	assert.Equal(t, screenList, m.screen)
}

func TestListen(t *testing.T) {
	t.Run("nil channel", func(t *testing.T) {
		assert.Nil(t, listen[[]models.Post](nil, wrapPosts))
	})

	t.Run("delivers value", func(t *testing.T) {
		ch := make(chan []models.Post, 1)
		ch <- testPosts(1)

		msg := listen(ch, wrapPosts)()
		assert.Equal(t, postsMsg{posts: testPosts(1)}, msg)
	})

	t.Run("closed channel", func(t *testing.T) {
		ch := make(chan *models.Post)
		close(ch)

		assert.Equal(t, streamClosedMsg{}, listen(ch, wrapDetail)())
	})
}

// ── Loading ──────────────────────────────────────────────────────────────────

func TestList_ReloadCallsLoad(t *testing.T) {
	m, feed, _ := newTestModel(t)
	feed.EXPECT().Load(gomock.Any()).Return(nil)

	m, cmd := send(t, m, keyRunes("r"))
	require.NotNil(t, cmd)
	require.True(t, m.loading)

	m, _ = run(t, m, m.cmdLoad())
	assert.False(t, m.loading)
	assert.Nil(t, m.overlay)
}

func TestLoadDone_ErrorShowsOverlay(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.loading = true

	m, _ = send(t, m, loadDoneMsg{err: errors.New("dial tcp: connection refused")})

	assert.False(t, m.loading)
	require.NotNil(t, m.overlay)
	assert.Equal(t, "Отсутствует сеть или сервер недоступен", m.overlay.message)

	m, _ = send(t, m, keyType(tea.KeyEnter))
	assert.Nil(t, m.overlay)
}

func TestBootstrapCommand(t *testing.T) {
	m, feed, _ := newTestModel(t)
	feed.EXPECT().Bootstrap(gomock.Any()).Return(nil)

	msg := m.cmdBootstrap()()
	assert.Equal(t, loadDoneMsg{}, msg)
}

// ── Create ───────────────────────────────────────────────────────────────────

func TestList_QuickCreate(t *testing.T) {
	m, feed, _ := newTestModel(t)
	m, _ = send(t, m, postsMsg{posts: testPosts(2)})

	feed.EXPECT().Create(gomock.Any(), models.NewDefaultDraft()).
		Return(models.Post{ID: 101, UserID: 1, Title: "t"}, nil)

	m, cmd := send(t, m, keyRunes("n"))
	m, _ = run(t, m, cmd)

	assert.Equal(t, "Пост создан, id=101", m.status)
	assert.Equal(t, int64(101), m.cursorID)

	m, _ = send(t, m, postsMsg{posts: append([]models.Post{{ID: 101}}, testPosts(2)...)})
	assert.Equal(t, 0, m.idx)
}

func TestList_CreateFailureShowsOverlay(t *testing.T) {
	m, feed, _ := newTestModel(t)
	feed.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.Post{}, adapter.ErrInternalServerError)

	m, cmd := send(t, m, keyRunes("n"))
	m, _ = run(t, m, cmd)

	require.NotNil(t, m.overlay)
	assert.Equal(t, "Не удалось создать пост", m.overlay.title)
	assert.Contains(t, m.View(), "Не удалось создать пост")
}

func TestForm_CreateSubmitsDraft(t *testing.T) {
	m, feed, _ := newTestModel(t)

	m, _ = send(t, m, keyRunes("a"))
	require.Equal(t, screenForm, m.screen)
	require.Equal(t, formCreate, m.form.mode)

	m.form.title.SetValue("Hello")
	m.form.body.SetValue("World")

	feed.EXPECT().Create(gomock.Any(), models.PostDraft{UserID: 1, Title: "Hello", Body: "World"}).
		Return(models.Post{ID: 7, UserID: 1, Title: "Hello", Body: "World"}, nil)

	m, cmd := send(t, m, keyType(tea.KeyCtrlS))
	assert.True(t, m.form.submitting)

	m, _ = run(t, m, cmd)
	assert.Equal(t, screenList, m.screen)
	assert.Equal(t, "Пост создан, id=7", m.status)
}

func TestForm_CreateRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		userID string
		title  string
		want   string
	}{
		{name: "empty title", userID: "1", title: "  ", want: models.ErrEmptyTitle.Error()},
		{name: "non numeric user", userID: "abc", title: "x", want: models.ErrInvalidUserID.Error()},
		{name: "zero user", userID: "0", title: "x", want: models.ErrInvalidUserID.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _, _ := newTestModel(t)
			m, _ = send(t, m, keyRunes("a"))

			m.form.userID.SetValue(tt.userID)
			m.form.title.SetValue(tt.title)

			m, cmd := send(t, m, keyType(tea.KeyCtrlS))
			assert.Nil(t, cmd)
			assert.False(t, m.form.submitting)
			assert.Equal(t, tt.want, m.form.err)
		})
	}
}

func TestForm_EscReturnsWithoutSaving(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, _ = send(t, m, keyRunes("a"))
	m, _ = send(t, m, keyType(tea.KeyEsc))

	assert.Equal(t, screenList, m.screen)
}

func TestForm_TabCyclesFocus(t *testing.T) {
	m, _, _ := newTestModel(t)
	m, _ = send(t, m, keyRunes("a"))
	require.Equal(t, fieldTitle, m.form.focus)

	m, _ = send(t, m, keyType(tea.KeyTab))
	assert.Equal(t, fieldBody, m.form.focus)
	m, _ = send(t, m, keyType(tea.KeyTab))
	assert.Equal(t, fieldUserID, m.form.focus)
	m, _ = send(t, m, keyType(tea.KeyShiftTab))
	assert.Equal(t, fieldBody, m.form.focus)
}

// ── Update ───────────────────────────────────────────────────────────────────

func TestForm_EditSendsOnlyChangedFields(t *testing.T) {
	m, feed, _ := newTestModel(t)
	m, _ = send(t, m, postsMsg{posts: testPosts(3)})
	m, _ = send(t, m, keyType(tea.KeyDown))

	m, _ = send(t, m, keyRunes("e"))
	require.Equal(t, screenForm, m.screen)
	require.Equal(t, int64(2), m.form.original.ID)

	m.form.title.SetValue("renamed")

	feed.EXPECT().Update(gomock.Any(), int64(2), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, p models.PostPatch) error {
			require.NotNil(t, p.Title)
			assert.Equal(t, "renamed", *p.Title)
			assert.Nil(t, p.UserID)
			assert.Nil(t, p.Body)
			return nil
		})

	m, cmd := send(t, m, keyType(tea.KeyCtrlS))
	m, _ = run(t, m, cmd)

	assert.Equal(t, screenList, m.screen)
	assert.Equal(t, "Пост обновлён", m.status)
}

func TestForm_EditWithoutChanges(t *testing.T) {
	m, _, _ := newTestModel(t)
	m, _ = send(t, m, postsMsg{posts: testPosts(1)})
	m, _ = send(t, m, keyRunes("e"))

	m, cmd := send(t, m, keyType(tea.KeyCtrlS))

	assert.Nil(t, cmd)
	assert.Equal(t, "Нет изменений", m.form.err)
}

func TestForm_EditPaddedTitleIsNotAChange(t *testing.T) {
	m, _, _ := newTestModel(t)
	m, _ = send(t, m, postsMsg{posts: []models.Post{{ID: 7, UserID: 1, Title: "  padded title  ", Body: "b"}}})
	m, _ = send(t, m, keyRunes("e"))
	require.Equal(t, screenForm, m.screen)

	m, cmd := send(t, m, keyType(tea.KeyCtrlS))

	assert.Nil(t, cmd)
	assert.Equal(t, "Нет изменений", m.form.err)
}

func TestForm_EditFailureKeepsForm(t *testing.T) {
	m, feed, _ := newTestModel(t)
	m, _ = send(t, m, postsMsg{posts: testPosts(1)})
	m, _ = send(t, m, keyRunes("e"))
	m.form.body.SetValue("changed")

	feed.EXPECT().Update(gomock.Any(), int64(1), gomock.Any()).Return(adapter.ErrNotFound)

	m, cmd := send(t, m, keyType(tea.KeyCtrlS))
	m, _ = run(t, m, cmd)

	assert.Equal(t, screenForm, m.screen)
	assert.False(t, m.form.submitting)
	require.NotNil(t, m.overlay)
	assert.Equal(t, "Пост не найден на сервере", m.overlay.message)
}

// ── Delete ───────────────────────────────────────────────────────────────────

func TestList_DeleteAfterConfirm(t *testing.T) {
	m, feed, _ := newTestModel(t)
	m, _ = send(t, m, postsMsg{posts: testPosts(2)})

	m, _ = send(t, m, keyRunes("d"))
	require.NotNil(t, m.confirm)
	assert.Equal(t, int64(1), m.confirm.postID)
	assert.Contains(t, m.View(), "Удалить пост #1")

	feed.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)

	m, cmd := send(t, m, keyRunes("y"))
	assert.Nil(t, m.confirm)
	m, _ = run(t, m, cmd)

	assert.Equal(t, "Пост #1 удалён", m.status)
}

func TestList_DeleteCancelled(t *testing.T) {
	m, _, _ := newTestModel(t)
	m, _ = send(t, m, postsMsg{posts: testPosts(2)})

	m, _ = send(t, m, keyRunes("d"))
	m, cmd := send(t, m, keyRunes("n"))

	assert.Nil(t, cmd)
	assert.Nil(t, m.confirm)
}

func TestList_ActionsOnEmptyList(t *testing.T) {
	for _, k := range []string{"e", "d"} {
		m, _, _ := newTestModel(t)

		m, cmd := send(t, m, keyRunes(k))

		assert.Nil(t, cmd)
		assert.Nil(t, m.confirm)
		assert.Equal(t, screenList, m.screen)
		assert.Equal(t, "Постов нет", m.status)
	}
}

// ── Detail ───────────────────────────────────────────────────────────────────

func TestList_EnterOpensDetail(t *testing.T) {
	m, feed, _ := newTestModel(t)
	m, _ = send(t, m, postsMsg{posts: testPosts(2)})
	m, _ = send(t, m, keyType(tea.KeyDown))

	feed.EXPECT().Select(gomock.Any(), int64(2)).Return(nil)

	m, cmd := send(t, m, keyType(tea.KeyEnter))
	require.Equal(t, screenDetail, m.screen)
	m, _ = run(t, m, cmd)

	m, _ = send(t, m, detailMsg{post: &models.Post{ID: 2, UserID: 1, Title: "title 2", Body: "body 2"}})

	view := m.View()
	assert.Contains(t, view, "ПРОСМОТР ПОСТА #2")
	assert.Contains(t, view, "body 2")
}

func TestDetail_SelectFailureReturnsToList(t *testing.T) {
	m, feed, _ := newTestModel(t)
	m, _ = send(t, m, postsMsg{posts: testPosts(1)})
	feed.EXPECT().Select(gomock.Any(), int64(1)).Return(adapter.ErrServiceUnavailable)

	m, cmd := send(t, m, keyType(tea.KeyEnter))
	m, _ = run(t, m, cmd)

	assert.Equal(t, screenList, m.screen)
	require.NotNil(t, m.overlay)
	assert.Equal(t, "Не удалось открыть пост", m.overlay.title)
}

func TestDetail_EscClearsSelection(t *testing.T) {
	m, feed, _ := newTestModel(t)
	m.screen = screenDetail
	m.openID = 1

	feed.EXPECT().ClearSelection()

	m, _ = send(t, m, keyType(tea.KeyEsc))
	assert.Equal(t, screenList, m.screen)
	assert.Zero(t, m.openID)
}

func TestDetail_CopyBody(t *testing.T) {
	m, _, copied := newTestModel(t)
	m, _ = send(t, m, postsMsg{posts: testPosts(1)})
	m.screen = screenDetail
	m.openID = 1

	m, _ = send(t, m, keyRunes("c"))

	assert.Equal(t, []string{"body 1"}, *copied)
	assert.Equal(t, "Текст поста скопирован", m.status)
}

func TestDetail_CopyFailureShowsOverlay(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.copyText = func(string) error { return errors.New("no clipboard utilities available") }
	m, _ = send(t, m, postsMsg{posts: testPosts(1)})
	m.screen = screenDetail
	m.openID = 1

	m, _ = send(t, m, keyRunes("c"))

	require.NotNil(t, m.overlay)
	assert.Equal(t, "Ошибка копирования", m.overlay.title)
}

func TestDetail_EditReturnsToDetail(t *testing.T) {
	m, feed, _ := newTestModel(t)
	m, _ = send(t, m, postsMsg{posts: testPosts(1)})
	m.screen = screenDetail
	m.openID = 1

	m, _ = send(t, m, keyRunes("e"))
	require.Equal(t, screenForm, m.screen)
	assert.Equal(t, screenDetail, m.form.returnTo)

	m.form.title.SetValue("changed")
	feed.EXPECT().Update(gomock.Any(), int64(1), gomock.Any()).Return(nil)

	m, cmd := send(t, m, keyType(tea.KeyCtrlS))
	m, _ = run(t, m, cmd)
	assert.Equal(t, screenDetail, m.screen)
}

func TestDetail_DeleteReturnsToList(t *testing.T) {
	m, feed, _ := newTestModel(t)
	m, _ = send(t, m, postsMsg{posts: testPosts(1)})
	m.screen = screenDetail
	m.openID = 1

	feed.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)

	m, _ = send(t, m, keyRunes("d"))
	m, cmd := send(t, m, keyRunes("y"))
	m, _ = run(t, m, cmd)

	assert.Equal(t, screenList, m.screen)
}

// ── Global keys ──────────────────────────────────────────────────────────────

func TestBuildInfoToggle(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, _ = send(t, m, keyRunes("v"))
	require.True(t, m.showBuildInfo)
	view := m.View()
	assert.Contains(t, view, "ИНФОРМАЦИЯ О ПРОГРАММЕ")
	assert.Contains(t, view, "abc123")

	m, _ = send(t, m, keyRunes("v"))
	assert.False(t, m.showBuildInfo)
}

func TestQuitKeys(t *testing.T) {
	m, _, _ := newTestModel(t)

	_, cmd := send(t, m, keyRunes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())

	m.overlay = &errorOverlayModel{title: "x"}
	_, cmd = send(t, m, keyType(tea.KeyCtrlC))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestOverlayBlocksOtherKeys(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.overlay = &errorOverlayModel{title: "x"}

	m, cmd := send(t, m, keyRunes("n"))

	assert.Nil(t, cmd)
	assert.NotNil(t, m.overlay)
}

// ── Views ────────────────────────────────────────────────────────────────────

func TestViewList(t *testing.T) {
	m, _, _ := newTestModel(t)

	assert.Contains(t, m.View(), "Постов нет")

	m, _ = send(t, m, postsMsg{posts: testPosts(2)})
	view := m.View()
	assert.Contains(t, view, "ГЛАВНАЯ СТРАНИЦА")
	assert.Contains(t, view, "title 1")
	assert.Contains(t, view, "title 2")
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "deadline", err: fmt.Errorf("list posts request: %w", context.DeadlineExceeded), want: "Сервер не ответил вовремя"},
		{name: "not found", err: fmt.Errorf("%w: {}", adapter.ErrNotFound), want: "Пост не найден на сервере"},
		{name: "no host", err: errors.New("dial tcp: lookup x: no such host"), want: "Отсутствует сеть или сервер недоступен"},
		{name: "other", err: errors.New("boom"), want: "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errorMessage(tt.err))
		})
	}
}
