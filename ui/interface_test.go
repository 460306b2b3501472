package ui

import (
	"github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestSignalListNotHighlightedBeforeSelection(t *testing.T) {
	list := widgets.NewList()

	configureSignalList(list, SignalTableVM{Rows: []string{"NVDA", "AMD"}, SelectedRow: -1})

	assert.Equal(t, 0, list.SelectedRow)
	assert.Equal(t, list.TextStyle, list.SelectedRowStyle)
}

func TestSignalListHighlightsSelectedRow(t *testing.T) {
	list := widgets.NewList()

	configureSignalList(list, SignalTableVM{Rows: []string{"NVDA", "AMD"}, SelectedRow: 1})

	assert.Equal(t, 1, list.SelectedRow)
	assert.Equal(t, termui.NewStyle(termui.ColorBlack, termui.ColorYellow), list.SelectedRowStyle)
}

func TestSignalListShowsEmptyStateText(t *testing.T) {
	list := widgets.NewList()

	configureSignalList(list, SignalTableVM{EmptyText: "No momentum signals today.", SelectedRow: -1})

	assert.Equal(t, []string{"No momentum signals today."}, list.Rows)
	assert.Equal(t, list.TextStyle, list.SelectedRowStyle)
}
