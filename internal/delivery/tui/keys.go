package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap lists every key the quiz reacts to.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Next     key.Binding
	Prev     key.Binding
	Choose   key.Binding
	Confirm  key.Binding
	Language key.Binding
	Finish   key.Binding
	Restart  key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Next:     key.NewBinding(key.WithKeys("right", "n", "tab"), key.WithHelp("→/n", "next question")),
		Prev:     key.NewBinding(key.WithKeys("left", "p", "shift+tab"), key.WithHelp("←/p", "previous question")),
		Choose:   key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "select")),
		Confirm:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Language: key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "language")),
		Finish:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "finish")),
		Restart:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// quizHelp returns the bindings shown under a question.
func (k keyMap) quizHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Choose, k.Confirm, k.Prev, k.Next, k.Finish, k.Language, k.Quit}
}

// resultsHelp returns the bindings shown under the results.
func (k keyMap) resultsHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Restart, k.Language, k.Quit}
}
