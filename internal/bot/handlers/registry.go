package handlers

import (
	"github.com/go-telegram/bot/models"

	"github.com/edgard/cthulhubot/internal/command"
	"github.com/edgard/cthulhubot/internal/roll"
)

// RegisteredHandler represents a command handler with the menu entry that documents it.
type RegisteredHandler struct {
	Kind        command.Kind
	Command     string
	Description string
	Handler     CommandFunc
}

// RegisterAllCommands returns the handler of every command kind.
func RegisterAllCommands(deps HandlerDeps) map[command.Kind]RegisteredHandler {
	handlers := make(map[command.Kind]RegisteredHandler)

	handlers[command.KindRoll] = RegisteredHandler{
		Kind:        command.KindRoll,
		Command:     "roll",
		Description: "Roll d100 against a target number (alias /r)",
		Handler:     NewRollHandler(deps),
	}
	handlers[command.KindCustomRoll] = RegisteredHandler{
		Kind:        command.KindCustomRoll,
		Command:     "custom_roll",
		Description: "Roll a dice expression, e.g. 2d6+3 (alias /cr)",
		Handler:     NewCustomRollHandler(deps),
	}
	handlers[command.KindCreateSheet] = RegisteredHandler{
		Kind:        command.KindCreateSheet,
		Command:     "create_sheet",
		Description: "Roll a character sheet (alias /cs)",
		Handler:     NewSheetHandler(deps),
	}
	handlers[command.KindChoose] = RegisteredHandler{
		Kind:        command.KindChoose,
		Command:     "choose",
		Description: "Pick one of comma separated options",
		Handler:     NewChooseHandler(deps),
	}
	handlers[command.KindSkill] = RegisteredHandler{
		Kind:        command.KindSkill,
		Command:     "skill",
		Description: "Skill check, 5th edition rules (alias /sk5)",
		Handler:     NewSkillHandler(deps, roll.Fifth),
	}
	handlers[command.KindSkill7] = RegisteredHandler{
		Kind:        command.KindSkill7,
		Command:     "sk7",
		Description: "Skill check with hard and extreme successes",
		Handler:     NewSkillHandler(deps, roll.Seventh),
	}
	handlers[command.KindOpposed] = RegisteredHandler{
		Kind:        command.KindOpposed,
		Command:     "op6",
		Description: "Opposed roll on the resistance table, e.g. 12 10",
		Handler:     NewOpposedHandler(deps),
	}
	handlers[command.KindHelp] = RegisteredHandler{
		Kind:        command.KindHelp,
		Command:     "help",
		Description: "Show available commands",
		Handler:     NewHelpHandler(deps),
	}

	return handlers
}

// menuOrder is the order commands appear in the Telegram menu.
var menuOrder = []command.Kind{
	command.KindRoll,
	command.KindCustomRoll,
	command.KindCreateSheet,
	command.KindSkill,
	command.KindSkill7,
	command.KindOpposed,
	command.KindChoose,
	command.KindHelp,
}

// MenuCommands lists the registered commands for setMyCommands.
func MenuCommands(handlers map[command.Kind]RegisteredHandler) []models.BotCommand {
	cmds := make([]models.BotCommand, 0, len(handlers))
	for _, kind := range menuOrder {
		h, ok := handlers[kind]
		if !ok {
			continue
		}
		cmds = append(cmds, models.BotCommand{Command: h.Command, Description: h.Description})
	}
	return cmds
}
