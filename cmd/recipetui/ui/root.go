package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const requestTimeout = 10 * time.Second

type state int

const (
	stateLogin state = iota
	stateDashboard
	stateRecipeForm
)

type RootModel struct {
	State     state
	Client    *Client
	Login     LoginModel
	Dashboard DashboardModel
	Form      RecipeFormModel
	Quitting  bool
	width     int
	height    int
}

func NewRootModel(c *Client) RootModel {
	return RootModel{
		State:  stateLogin,
		Client: c,
		Login:  NewLoginModel(c),
	}
}

// resume checks for a still-valid session so a restart skips the login screen.
func (m RootModel) resume() tea.Msg {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	user, err := m.Client.CheckSession(ctx)
	if err != nil {
		return nil
	}
	return authDoneMsg{User: user}
}

func (m RootModel) Init() tea.Cmd {
	return tea.Batch(m.Login.Init(), m.resume)
}

func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.Dashboard.Table.SetHeight(tableHeight(msg.Height))

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.Quitting = true
			return m, tea.Quit
		}

	case authDoneMsg:
		if msg.Err == nil && m.State == stateLogin {
			m.State = stateDashboard
			m.Dashboard = NewDashboardModel(m.Client, msg.User, m.height)
			return m, m.Dashboard.Init()
		}

	case loggedOutMsg:
		if msg.Err == nil {
			m.State = stateLogin
			m.Login = NewLoginModel(m.Client)
			return m, m.Login.Init()
		}
		m.Dashboard.Err = msg.Err
		return m, nil

	case newRecipeMsg:
		m.State = stateRecipeForm
		m.Form = NewRecipeFormModel(m.Client, m.width)
		return m, m.Form.Init()

	case formCancelledMsg:
		m.State = stateDashboard
		return m, nil

	case recipeCreatedMsg:
		if msg.Err == nil {
			m.State = stateDashboard
			m.Dashboard.Status = "saved " + msg.Recipe.Title
			return m, m.Dashboard.refresh
		}
	}

	var cmd tea.Cmd
	switch m.State {
	case stateLogin:
		m.Login, cmd = m.Login.Update(msg)
	case stateDashboard:
		m.Dashboard, cmd = m.Dashboard.Update(msg)
	case stateRecipeForm:
		m.Form, cmd = m.Form.Update(msg)
	}
	return m, cmd
}

func (m RootModel) View() string {
	if m.Quitting {
		return "Bye!\n"
	}
	var body string
	switch m.State {
	case stateLogin:
		body = m.Login.View()
	case stateDashboard:
		body = m.Dashboard.View()
	case stateRecipeForm:
		body = m.Form.View()
	}
	return docStyle.Render(body)
}
