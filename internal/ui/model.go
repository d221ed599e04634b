package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MohamedMaroufMD/MAUDE-Binary-Automator/internal/automator"
	"github.com/MohamedMaroufMD/MAUDE-Binary-Automator/internal/types"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type state int

const (
	stateFilePicker state = iota
	stateProcessing
	stateComplete
	stateError
)

type Model struct {
	state        state
	opts         automator.Options
	filepicker   filepicker.Model
	selectedFile string
	result       *types.ProcessResult
	err          error
	width        int
	height       int
	progress     progress.Model
	progressChan chan float64
	resultChan   chan processResultMsg
}

type processResultMsg struct {
	result *types.ProcessResult
	err    error
}

type progressMsg float64

type waitForProgressMsg struct{}

func InitialModel(opts automator.Options) Model {
	fp := filepicker.New()
	fp.AllowedTypes = []string{".xlsx"}
	fp.CurrentDirectory, _ = os.Getwd()

	// Set filepicker colors to match theme
	fp.Styles.Cursor = lipgloss.NewStyle().Foreground(lipgloss.Color("#2EC4B6"))
	fp.Styles.Symlink = lipgloss.NewStyle().Foreground(lipgloss.Color("#3DD9CB"))
	fp.Styles.Directory = lipgloss.NewStyle().Foreground(lipgloss.Color("#3DD9CB"))
	fp.Styles.File = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF"))
	fp.Styles.Permission = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	fp.Styles.Selected = lipgloss.NewStyle().Foreground(lipgloss.Color("#2EC4B6")).Bold(true)
	fp.Styles.FileSize = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))

	prog := progress.New(progress.WithGradient("#2EC4B6", "#3DD9CB"))

	return Model{
		state:      stateFilePicker,
		opts:       opts,
		filepicker: fp,
		progress:   prog,
	}
}

func (m Model) Init() tea.Cmd {
	return m.filepicker.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// Subtract space for title, subtitle, help text, and padding
		height := msg.Height - 14
		if height < 5 {
			height = 5
		}
		m.filepicker.SetHeight(height)

		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case stateFilePicker:
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			}

		case stateComplete, stateError:
			switch msg.String() {
			case "ctrl+c", "q", "enter", "esc":
				return m, tea.Quit
			}
		}

	case processResultMsg:
		if msg.err != nil {
			m.err = msg.err
			m.state = stateError
			return m, nil
		}
		m.result = msg.result
		m.state = stateComplete
		return m, nil

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		return m, cmd

	case progressMsg:
		if m.state == stateProcessing {
			cmd := m.progress.SetPercent(float64(msg))
			return m, tea.Batch(cmd, waitForProgress(m.progressChan, m.resultChan))
		}
		return m, nil

	case waitForProgressMsg:
		return m, waitForProgress(m.progressChan, m.resultChan)
	}

	// Handle filepicker updates
	if m.state == stateFilePicker {
		var cmd tea.Cmd
		m.filepicker, cmd = m.filepicker.Update(msg)

		if didSelect, path := m.filepicker.DidSelectFile(msg); didSelect {
			m.selectedFile = path
			m.state = stateProcessing
			return m.processFile()
		}

		return m, cmd
	}

	return m, nil
}

func (m Model) processFile() (Model, tea.Cmd) {
	m.progressChan = make(chan float64, 100)
	m.resultChan = make(chan processResultMsg, 1)

	cmd := tea.Batch(
		func() tea.Msg {
			// Capture for the goroutine
			progressChan := m.progressChan
			resultChan := m.resultChan
			selectedFile := m.selectedFile
			opts := m.opts

			go func() {
				result, err := automator.Process(selectedFile, opts, progressChan)
				resultChan <- processResultMsg{result: result, err: err}
				close(progressChan)
				close(resultChan)
			}()

			return waitForProgressMsg{}
		},
		waitForProgress(m.progressChan, m.resultChan),
		m.progress.Init(), // Start progress bar animation
	)

	return m, cmd
}

func waitForProgress(progressChan chan float64, resultChan chan processResultMsg) tea.Cmd {
	return func() tea.Msg {
		if progressChan == nil {
			return nil
		}

		p, ok := <-progressChan
		if !ok {
			// Progress channel closed, check result
			res, ok := <-resultChan
			if ok {
				return res
			}
			return nil
		}

		return progressMsg(p)
	}
}

func (m Model) View() string {
	switch m.state {
	case stateFilePicker:
		return m.viewFilePicker()
	case stateProcessing:
		return m.viewProcessing()
	case stateComplete:
		return m.viewComplete()
	case stateError:
		return m.viewError()
	}
	return ""
}

func (m Model) viewFilePicker() string {
	var s strings.Builder

	title := TitleStyle.Render("⚕ MAUDE Binary Columns Automator")

	s.WriteString(title)
	s.WriteString("\n")
	s.WriteString(SubtitleStyle.Render("Select a MAUDE xlsx export to process"))
	s.WriteString("\n\n")
	s.WriteString(m.filepicker.View())
	s.WriteString("\n\n")
	s.WriteString(HelpStyle.Render("Press q to quit"))

	return s.String()
}

func (m Model) viewProcessing() string {
	var s strings.Builder

	s.WriteString(TitleStyle.Render("⚕ Processing..."))
	s.WriteString("\n\n")
	s.WriteString(fmt.Sprintf("Adding binary columns to %s...", filepath.Base(m.selectedFile)))
	s.WriteString("\n\n")
	s.WriteString(m.progress.View())

	return BoxStyle.Render(s.String())
}

func (m Model) viewComplete() string {
	var s strings.Builder

	s.WriteString(TitleStyle.Render("✓ Processing Complete!"))
	s.WriteString("\n\n")

	// Truncate paths if they're too long
	maxPathLen := m.width - 20
	if maxPathLen < 30 {
		maxPathLen = 30
	}

	inputPath := m.result.InputFile
	if len(inputPath) > maxPathLen {
		inputPath = "..." + inputPath[len(inputPath)-maxPathLen+3:]
	}

	s.WriteString(fmt.Sprintf("File: %s\n\n", inputPath))
	s.WriteString(fmt.Sprintf("Device problems:  %d\n", m.result.DeviceValues))
	s.WriteString(fmt.Sprintf("Patient problems: %d\n", m.result.PatientProblems))
	s.WriteString(fmt.Sprintf("Patient outcomes: %d\n", m.result.PatientOutcomes))
	s.WriteString("\n")

	if m.result.NoOp {
		s.WriteString(SuccessStyle.Render("No new binary columns needed"))
		s.WriteString("\n")
	} else {
		backupPath := m.result.BackupFile
		if len(backupPath) > maxPathLen {
			backupPath = "..." + backupPath[len(backupPath)-maxPathLen+3:]
		}
		s.WriteString(SuccessStyle.Render(fmt.Sprintf("Binary columns added: %d\n", len(m.result.NewColumns))))
		s.WriteString(fmt.Sprintf("Rows: %d • Columns: %d → %d\n", m.result.Rows, m.result.OriginalColumns, m.result.TotalColumns))
		s.WriteString(fmt.Sprintf("Backup: %s\n", backupPath))
	}

	s.WriteString("\n")
	s.WriteString(HelpStyle.Render("Press any key to exit"))

	return BoxStyle.Render(s.String())
}

func (m Model) viewError() string {
	var s strings.Builder

	s.WriteString(ErrorStyle.Render("✗ Error"))
	s.WriteString("\n\n")
	s.WriteString(m.err.Error())
	s.WriteString("\n\n")
	s.WriteString(HelpStyle.Render("Press any key to exit"))

	return BoxStyle.Render(s.String())
}
