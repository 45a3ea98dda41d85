package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"recipe-vault/backend/app/dto"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type recipeCreatedMsg struct {
	Recipe *dto.RecipeResponse
	Err    error
}

// formCancelledMsg returns to the dashboard without saving.
type formCancelledMsg struct{}

const (
	fieldTitle = iota
	fieldMinutes
	fieldInstructions
)

type RecipeFormModel struct {
	Client       *Client
	Title        textinput.Model
	Minutes      textinput.Model
	Instructions textarea.Model
	Focus        int
	Err          error
}

func NewRecipeFormModel(c *Client, width int) RecipeFormModel {
	title := textinput.New()
	title.Prompt = "Title: "
	title.Placeholder = "Pancakes"
	title.CharLimit = 200
	title.Focus()

	minutes := textinput.New()
	minutes.Prompt = "Minutes: "
	minutes.Placeholder = "optional"
	minutes.CharLimit = 6

	instructions := textarea.New()
	instructions.Placeholder = "At least 50 characters of instructions..."
	instructions.SetHeight(8)
	if width > 10 {
		instructions.SetWidth(width - 6)
	}
	instructions.Blur()

	return RecipeFormModel{Client: c, Title: title, Minutes: minutes, Instructions: instructions}
}

func (m RecipeFormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m RecipeFormModel) Update(msg tea.Msg) (RecipeFormModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc:
			return m, func() tea.Msg { return formCancelledMsg{} }
		case tea.KeyCtrlS:
			req, err := m.request()
			if err != nil {
				m.Err = err
				return m, nil
			}
			return m, m.submit(req)
		case tea.KeyTab:
			m.setFocus((m.Focus + 1) % 3)
			return m, nil
		case tea.KeyShiftTab:
			m.setFocus((m.Focus + 2) % 3)
			return m, nil
		}
	case recipeCreatedMsg:
		m.Err = msg.Err
		return m, nil
	}

	var cmd tea.Cmd
	switch m.Focus {
	case fieldTitle:
		m.Title, cmd = m.Title.Update(msg)
	case fieldMinutes:
		m.Minutes, cmd = m.Minutes.Update(msg)
	case fieldInstructions:
		m.Instructions, cmd = m.Instructions.Update(msg)
	}
	return m, cmd
}

func (m *RecipeFormModel) setFocus(i int) {
	m.Title.Blur()
	m.Minutes.Blur()
	m.Instructions.Blur()
	m.Focus = i
	switch i {
	case fieldTitle:
		m.Title.Focus()
	case fieldMinutes:
		m.Minutes.Focus()
	case fieldInstructions:
		m.Instructions.Focus()
	}
}

// request builds the create payload. Field rules beyond the minutes format are left to the server.
func (m RecipeFormModel) request() (dto.RecipeRequest, error) {
	req := dto.RecipeRequest{Title: m.Title.Value(), Instructions: m.Instructions.Value()}
	if raw := strings.TrimSpace(m.Minutes.Value()); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return req, fmt.Errorf("minutes must be a whole number")
		}
		req.MinutesToComplete = &n
	}
	return req, nil
}

func (m RecipeFormModel) submit(req dto.RecipeRequest) tea.Cmd {
	client := m.Client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		recipe, err := client.CreateRecipe(ctx, req)
		return recipeCreatedMsg{Recipe: recipe, Err: err}
	}
}

func (m RecipeFormModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("New recipe") + "\n\n")
	b.WriteString(m.Title.View() + "\n")
	b.WriteString(m.Minutes.View() + "\n\n")
	if m.Focus == fieldInstructions {
		b.WriteString(focusedStyle.Render("Instructions") + "\n")
	} else {
		b.WriteString(blurredStyle.Render("Instructions") + "\n")
	}
	b.WriteString(m.Instructions.View())
	b.WriteString("\n\n")
	b.WriteString(blurredStyle.Render("Tab to change fields, Ctrl+S to save, Esc to cancel"))
	if m.Err != nil {
		b.WriteString("\n\n" + errorMessageStyle(describe(m.Err)))
	}
	return b.String()
}
