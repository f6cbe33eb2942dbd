package tui

import (
	"fmt"
	"strings"

	"festquote/models"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	subtleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	cursorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	previewStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63")).Padding(0, 1)
	noticeStyles = map[models.NoticeKind]lipgloss.Style{
		models.NoticeSuccess: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		models.NoticeError:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		models.NoticeInfo:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
	}
)

func (m *Model) View() string {
	if m.closed && !m.done {
		return ""
	}
	var b strings.Builder
	if m.done {
		b.WriteString(m.noticeLine())
		b.WriteString("\n\n")
		b.WriteString("Link copiado para a área de transferência:\n")
		b.WriteString(m.link)
		b.WriteString("\n\n")
		b.WriteString(subtleStyle.Render("enter para sair"))
		return b.String()
	}

	v := m.view
	b.WriteString(titleStyle.Render(fmt.Sprintf("Solicitar Orçamento · Passo %d de %d", v.Step, v.Total)))
	b.WriteString("\n")
	b.WriteString(m.progressLine())
	b.WriteString("\n\n")
	b.WriteString(titleStyle.Render(v.Title))
	b.WriteString("\n")
	b.WriteString(subtleStyle.Render(v.Description))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(subtleStyle.Render("Carregando opções..."))
		b.WriteString("\n")
	}

	rows := m.rows()
	if len(rows) == 0 && !m.loading {
		b.WriteString(subtleStyle.Render("Nenhuma opção disponível."))
		b.WriteString("\n")
	}
	for i, r := range rows {
		prefix := "  "
		label := r.label
		if i == m.cursor {
			prefix = cursorStyle.Render("> ")
			label = cursorStyle.Render(label)
		}
		line := prefix
		if r.mark != "" {
			line += r.mark + " "
		}
		line += label
		if r.detail != "" {
			line += "  " + subtleStyle.Render(r.detail)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.editing != nil {
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(subtleStyle.Render("enter confirma · esc cancela"))
		b.WriteString("\n")
	}

	if v.Summary != nil {
		b.WriteString("\n")
		b.WriteString(previewStyle.Render(v.Summary.Message))
		b.WriteString("\n")
	}
	if v.Contact != nil && v.Contact.Submit.Hint != "" {
		b.WriteString("\n")
		b.WriteString(subtleStyle.Render(v.Contact.Submit.Hint))
		b.WriteString("\n")
	}
	if m.submitting {
		b.WriteString("\nEnviando...\n")
	}
	if m.notice != nil {
		b.WriteString("\n")
		b.WriteString(m.noticeLine())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(subtleStyle.Render(m.helpLine()))
	return b.String()
}

func (m *Model) progressLine() string {
	marks := make([]string, 0, len(m.view.Progress))
	for _, p := range m.view.Progress {
		switch {
		case p.Current:
			marks = append(marks, cursorStyle.Render("●"))
		case p.Done:
			marks = append(marks, doneStyle.Render("●"))
		default:
			marks = append(marks, subtleStyle.Render("○"))
		}
	}
	return strings.Join(marks, " ")
}

func (m *Model) noticeLine() string {
	if m.notice == nil {
		return ""
	}
	style, ok := noticeStyles[m.notice.Kind]
	if !ok {
		style = noticeStyles[models.NoticeInfo]
	}
	return style.Render(m.notice.Title) + " " + m.notice.Message
}

func (m *Model) helpLine() string {
	enter := "enter avança"
	if m.view.Step == models.MaxStep {
		enter = "enter envia"
	}
	return "←/→ voltar/avançar · ↑/↓ mover · espaço seleciona · 1-7 ir ao passo · " + enter + " · esc fecha"
}
