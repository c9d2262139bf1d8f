package handlers

import (
	"context"
	"html"
	"strings"

	"github.com/edgard/cthulhubot/internal/command"
)

// NewHelpHandler returns a handler for the /help and /start commands.
func NewHelpHandler(deps HandlerDeps) CommandFunc {
	return helpHandler{deps}.Handle
}

// helpHandler processes the /help command using injected dependencies.
type helpHandler struct {
	deps HandlerDeps
}

func (h helpHandler) Handle(_ context.Context, _ command.Command) (Reply, error) {
	helpMsg := h.deps.Config.Messages.Help
	if info := h.deps.Config.Telegram.BotInfo; info != nil && info.Username != "" {
		helpMsg = strings.ReplaceAll(helpMsg, "@botname", "@"+info.Username)
	}
	return Reply{Text: html.EscapeString(helpMsg)}, nil
}
