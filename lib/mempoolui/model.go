// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package mempoolui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Model is the bubbletea model for the inspector. It holds the
// current State and delegates transitions to the Engine and drawing
// to the Renderer.
type Model struct {
	engine   *Engine
	renderer Renderer
	state    State

	width  int
	height int
	ready  bool
}

// NewModel returns a model in the engine's initial state. Nothing is
// drawn until the first window size message arrives.
func NewModel(engine *Engine, renderer Renderer) Model {
	return Model{
		engine:   engine,
		renderer: renderer,
		state:    engine.Initial(),
	}
}

// State returns the current state.
func (model Model) State() State {
	return model.state
}

// Init implements tea.Model.
func (model Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		model.ready = true
		rows := message.Height - chromeRows
		model.state = model.engine.Resize(model.state, rows, rows)
		return model, nil

	case tea.KeyMsg:
		model.state = model.engine.Reduce(model.state, message)
		if model.state.Quit {
			return model, tea.Quit
		}
		return model, nil
	}
	return model, nil
}

// View implements tea.Model.
func (model Model) View() string {
	if !model.ready {
		return "Loading..."
	}
	return model.renderer.Render(model.engine.Project(model.state, model.width, model.height))
}
