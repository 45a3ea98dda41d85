package ui

import (
	"context"
	"strconv"
	"strings"

	"recipe-vault/backend/app/dto"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type recipesLoadedMsg struct {
	Recipes []dto.RecipeResponse
	Err     error
}

type loggedOutMsg struct{ Err error }

// newRecipeMsg asks the root model to open the recipe form.
type newRecipeMsg struct{}

type DashboardModel struct {
	Client  *Client
	User    *dto.UserResponse
	Table   table.Model
	Recipes []dto.RecipeResponse
	Status  string
	Err     error
}

func NewDashboardModel(c *Client, user *dto.UserResponse, height int) DashboardModel {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Title", Width: 36},
		{Title: "Minutes", Width: 8},
		{Title: "Author", Width: 20},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(tableHeight(height)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return DashboardModel{Client: c, User: user, Table: t}
}

func tableHeight(height int) int {
	if height <= 12 {
		return 10
	}
	return height - 10
}

func (m DashboardModel) Init() tea.Cmd {
	return m.refresh
}

func (m DashboardModel) refresh() tea.Msg {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	recipes, err := m.Client.ListRecipes(ctx)
	return recipesLoadedMsg{Recipes: recipes, Err: err}
}

func (m DashboardModel) logout() tea.Msg {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	return loggedOutMsg{Err: m.Client.Logout(ctx)}
}

func (m DashboardModel) Update(msg tea.Msg) (DashboardModel, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			m.Status = "refreshing..."
			return m, m.refresh
		case "n":
			return m, func() tea.Msg { return newRecipeMsg{} }
		case "l":
			return m, m.logout
		case "q":
			return m, tea.Quit
		}

	case recipesLoadedMsg:
		if msg.Err != nil {
			m.Err = msg.Err
			return m, nil
		}
		m.Err = nil
		m.Status = strconv.Itoa(len(msg.Recipes)) + " recipes"
		m.Recipes = msg.Recipes
		m.Table.SetRows(recipeRows(msg.Recipes))
		return m, nil
	}

	m.Table, cmd = m.Table.Update(msg)
	return m, cmd
}

func recipeRows(recipes []dto.RecipeResponse) []table.Row {
	rows := make([]table.Row, 0, len(recipes))
	for _, r := range recipes {
		minutes := "-"
		if r.MinutesToComplete != nil {
			minutes = strconv.Itoa(*r.MinutesToComplete)
		}
		author := "-"
		if r.User != nil {
			author = r.User.Username
		}
		rows = append(rows, table.Row{strconv.FormatUint(uint64(r.ID), 10), r.Title, minutes, author})
	}
	return rows
}

func (m DashboardModel) View() string {
	var b strings.Builder
	heading := "Recipes"
	if m.User != nil {
		heading += " - signed in as " + m.User.Username
	}
	b.WriteString(titleStyle.Render(heading) + "\n\n")
	b.WriteString(m.Table.View())
	b.WriteString("\n\n")
	b.WriteString(blurredStyle.Render("r refresh, n new recipe, l log out, q quit"))

	if m.Status != "" {
		b.WriteString("\n" + statusMessageStyle(m.Status))
	}
	if m.Err != nil {
		b.WriteString("\n" + errorMessageStyle(describe(m.Err)))
	}
	return b.String()
}
