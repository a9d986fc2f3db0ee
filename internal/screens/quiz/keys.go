package quiz

import "charm.land/bubbles/v2/key"

type keyMap struct {
	More    key.Binding
	Fewer   key.Binding
	Up      key.Binding
	Down    key.Binding
	Pick    key.Binding
	Check   key.Binding
	Steps   key.Binding
	Plot    key.Binding
	Prev    key.Binding
	Next    key.Binding
	New     key.Binding
	Summary key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		More:    key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+/-", "Count")),
		Fewer:   key.NewBinding(key.WithKeys("-", "_")),
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑↓/1-4", "Choose")),
		Down:    key.NewBinding(key.WithKeys("down", "j")),
		Pick:    key.NewBinding(key.WithKeys("1", "2", "3", "4")),
		Check:   key.NewBinding(key.WithKeys("c", "enter"), key.WithHelp("c", "Check")),
		Steps:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "Steps")),
		Plot:    key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "Plot")),
		Prev:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←→", "Exercise")),
		Next:    key.NewBinding(key.WithKeys("right", "l")),
		New:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "New batch")),
		Summary: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "Summary"), key.WithDisabled()),
	}
}

func (k keyMap) hints() []key.Binding {
	return []key.Binding{k.Up, k.Check, k.Steps, k.Plot, k.Prev, k.New, k.More, k.Summary}
}
