package tui

type confirmModel struct {
	postID int64
	title  string
}

func (m confirmModel) View() string {
	content := "Удалить пост " + postIDLabel(m.postID) + " \"" + fitText(m.title, 40) + "\"?\n\n"
	content += "y да    n нет"
	return overlayBoxStyle.Render(content)
}
