package cmd

import (
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestHandleActionExit(t *testing.T) {
	err := handleAction(PromptExit, &Config{}, zap.NewNop())
	if !errors.Is(err, errExit) {
		t.Fatalf("expected errExit, got %v", err)
	}
}

func TestHandleActionUnknown(t *testing.T) {
	err := handleAction("make coffee", &Config{}, zap.NewNop())
	if err == nil || !strings.Contains(err.Error(), "invalid action") {
		t.Fatalf("expected an invalid action error, got %v", err)
	}
}
