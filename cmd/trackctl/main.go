package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const defaultServerURL = "http://localhost:3000"

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170")).
			Bold(true).
			PaddingLeft(2)

	normalStyle = lipgloss.NewStyle().
			PaddingLeft(4)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	tokenStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))
)

type step int

const (
	stepChoosingMode step = iota
	stepEnteringName
	stepEnteringEmail
	stepEnteringPassword
	stepSubmitting
	stepComplete
)

type mode int

const (
	modeRegister mode = iota
	modeLogin
)

var modeLabels = []string{"Register a new account", "Log in to an existing account"}

type model struct {
	step         step
	mode         mode
	cursor       int
	serverURL    string
	name         string
	email        string
	password     string
	currentInput string
	userID       string
	token        string
	message      string
	quitting     bool
}

type registerSuccessMsg struct {
	userID string
}

type loginSuccessMsg struct {
	userID string
	token  string
}

type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

func initialModel() model {
	serverURL := os.Getenv("TRACKER_URL")
	if serverURL == "" {
		serverURL = defaultServerURL
	}
	return model{
		step:      stepChoosingMode,
		serverURL: serverURL,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func registerUser(serverURL, name, email, password string) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{Timeout: 10 * time.Second}

		payload := map[string]string{
			"name":     name,
			"email":    email,
			"password": password,
		}
		jsonData, _ := json.Marshal(payload)

		req, _ := http.NewRequest("POST", serverURL+"/api/auth/register", bytes.NewBuffer(jsonData))
		req.Header.Set("Content-Type", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			return errMsg{fmt.Errorf("server not reachable at %s: %w", serverURL, err)}
		}
		defer resp.Body.Close()

		var result struct {
			Message string `json:"message"`
			User    struct {
				ID string `json:"id"`
			} `json:"user"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return errMsg{fmt.Errorf("unexpected response from server")}
		}

		if resp.StatusCode != http.StatusCreated {
			return errMsg{fmt.Errorf("%s", result.Message)}
		}

		return registerSuccessMsg{userID: result.User.ID}
	}
}

func loginUser(serverURL, email, password string) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{Timeout: 10 * time.Second}

		payload := map[string]string{
			"email":    email,
			"password": password,
		}
		jsonData, _ := json.Marshal(payload)

		req, _ := http.NewRequest("POST", serverURL+"/api/auth/login", bytes.NewBuffer(jsonData))
		req.Header.Set("Content-Type", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			return errMsg{fmt.Errorf("server not reachable at %s: %w", serverURL, err)}
		}
		defer resp.Body.Close()

		var result struct {
			Message string `json:"message"`
			Token   string `json:"token"`
			User    struct {
				ID string `json:"id"`
			} `json:"user"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return errMsg{fmt.Errorf("unexpected response from server")}
		}

		if resp.StatusCode != http.StatusOK {
			return errMsg{fmt.Errorf("%s", result.Message)}
		}

		return loginSuccessMsg{userID: result.User.ID, token: result.Token}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "q":
			if m.step == stepChoosingMode || m.step == stepComplete {
				m.quitting = true
				return m, tea.Quit
			}
			m.currentInput += "q"

		case "up", "k":
			if m.step == stepChoosingMode && m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.step == stepChoosingMode && m.cursor < len(modeLabels)-1 {
				m.cursor++
			}

		case "backspace":
			if len(m.currentInput) > 0 {
				m.currentInput = m.currentInput[:len(m.currentInput)-1]
			}

		default:
			if m.step == stepEnteringName || m.step == stepEnteringEmail || m.step == stepEnteringPassword {
				m.currentInput += msg.String()
			}

		case "enter":
			switch m.step {
			case stepChoosingMode:
				m.mode = mode(m.cursor)
				if m.mode == modeRegister {
					m.step = stepEnteringName
				} else {
					m.step = stepEnteringEmail
				}

			case stepEnteringName:
				if m.currentInput != "" {
					m.name = m.currentInput
					m.currentInput = ""
					m.step = stepEnteringEmail
				}

			case stepEnteringEmail:
				if m.currentInput != "" {
					m.email = m.currentInput
					m.currentInput = ""
					m.step = stepEnteringPassword
				}

			case stepEnteringPassword:
				if m.currentInput != "" {
					m.password = m.currentInput
					m.currentInput = ""
					m.step = stepSubmitting
					if m.mode == modeRegister {
						m.message = "Creating account..."
						return m, registerUser(m.serverURL, m.name, m.email, m.password)
					}
					m.message = "Logging in..."
					return m, loginUser(m.serverURL, m.email, m.password)
				}

			case stepComplete:
				m.quitting = true
				return m, tea.Quit
			}
		}

	case registerSuccessMsg:
		m.userID = msg.userID
		m.step = stepComplete
		m.message = successStyle.Render("✓ Account created for " + m.email)

	case loginSuccessMsg:
		m.userID = msg.userID
		m.token = msg.token
		m.step = stepComplete
		m.message = successStyle.Render("✓ Logged in as " + m.email)

	case errMsg:
		m.message = errorStyle.Render("✗ " + msg.err.Error())
		m.step = stepChoosingMode
		m.cursor = 0
	}

	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder

	s.WriteString(titleStyle.Render("📋 Tracker Account Tool\n\n"))

	switch m.step {
	case stepChoosingMode:
		if m.message != "" {
			s.WriteString(m.message + "\n\n")
		}
		s.WriteString(promptStyle.Render("What do you want to do?\n\n"))
		for i, label := range modeLabels {
			cursor := " "
			style := normalStyle
			if m.cursor == i {
				cursor = ">"
				style = selectedStyle
			}
			s.WriteString(fmt.Sprintf("%s %s\n", cursor, style.Render(label)))
		}
		s.WriteString("\nUse ↑/↓, Enter to select, q to quit\n")

	case stepEnteringName:
		s.WriteString(promptStyle.Render("Enter your name:\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringEmail:
		s.WriteString(promptStyle.Render("Enter your email:\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringPassword:
		s.WriteString(promptStyle.Render("Enter your password:\n"))
		s.WriteString(inputStyle.Render("> " + strings.Repeat("•", len(m.currentInput))))
		s.WriteString("\n\nPress Enter\n")

	case stepSubmitting:
		s.WriteString(m.message + "\n")

	case stepComplete:
		s.WriteString(m.message + "\n")
		if m.userID != "" {
			s.WriteString(fmt.Sprintf("\nUser id: %s\n", m.userID))
		}
		if m.token != "" {
			s.WriteString("\nBearer token:\n")
			s.WriteString(tokenStyle.Render(m.token) + "\n")
		}
		s.WriteString("\nPress Enter to exit\n")
	}

	return s.String()
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
