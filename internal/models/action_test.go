package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActionKind_String(t *testing.T) {
	assert.Equal(t, "add", ActionAdd.String())
	assert.Equal(t, "update", ActionUpdate.String())
	assert.Equal(t, "remove", ActionRemove.String())
	assert.Equal(t, "ActionKind(42)", ActionKind(42).String())
}

func TestAction_String(t *testing.T) {
	tests := []struct {
		name   string
		action Action
		want   string
	}{
		{
			name:   "add shows key and text",
			action: Action{Kind: ActionAdd, Key: "greeting", Text: "Hello"},
			want:   `+ greeting => "Hello"`,
		},
		{
			name:   "update shows key and text",
			action: Action{Kind: ActionUpdate, Key: "greeting", Text: "Hi", RemoteID: "t1"},
			want:   `~ greeting => "Hi"`,
		},
		{
			name:   "remove shows only the key",
			action: Action{Kind: ActionRemove, Key: "farewell", RemoteID: "t2"},
			want:   "- farewell",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.action.String())
		})
	}
}
