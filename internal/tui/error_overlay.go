package tui

type errorOverlayModel struct {
	title   string
	message string
}

func (m errorOverlayModel) View() string {
	content := errorStyle.Render(m.title) + "\n\n" + m.message + "\n\nenter / esc закрыть"
	return overlayBoxStyle.Render(content)
}
