package handlers

import (
	"context"
	"log/slog"
	"strings"
	"time"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/edgard/cthulhubot/internal/command"
	"github.com/edgard/cthulhubot/internal/database"
	"github.com/edgard/cthulhubot/internal/logger"
)

const (
	defaultSendTimeout = 10 * time.Second
	recordTimeout      = 5 * time.Second
)

// Reply is the outcome of a command handler. Category is set for d100 rolls.
type Reply struct {
	Text     string
	Category string
}

// CommandFunc answers a parsed command with the reply text.
type CommandFunc func(ctx context.Context, cmd command.Command) (Reply, error)

// Sender is the part of the Telegram client used to answer commands.
// *tgbot.Bot implements it.
type Sender interface {
	SendMessage(ctx context.Context, params *tgbot.SendMessageParams) (*models.Message, error)
}

// Dispatcher parses incoming messages and routes commands to their handler.
type Dispatcher struct {
	deps     HandlerDeps
	handlers map[command.Kind]RegisteredHandler
}

// NewDispatcher creates a Dispatcher over handlers.
func NewDispatcher(deps HandlerDeps, handlers map[command.Kind]RegisteredHandler) *Dispatcher {
	return &Dispatcher{deps: deps, handlers: handlers}
}

// Handle is the default handler registered with the Telegram client.
func (d *Dispatcher) Handle(ctx context.Context, b *tgbot.Bot, update *models.Update) {
	d.Dispatch(ctx, b, update)
}

// Dispatch handles one update, replying through s. Anything that is not a
// known command addressed to this bot is ignored.
func (d *Dispatcher) Dispatch(ctx context.Context, s Sender, update *models.Update) {
	if update == nil || update.Message == nil {
		return
	}
	msg := update.Message
	if msg.From != nil && msg.From.IsBot {
		return
	}

	kind, reply, ok, err := d.Evaluate(ctx, msg.Text)
	if !ok {
		return
	}
	log := logger.FromContext(ctx, d.deps.Logger).With("handler", kind.String())
	if err != nil {
		log.ErrorContext(ctx, "Command handler failed", "error", err, "chat_id", msg.Chat.ID)
		return
	}

	d.deps.Metrics.CommandHandled(kind.String())
	d.send(ctx, s, msg, reply.Text, log)
	d.record(ctx, msg, kind, reply, log)
}

// Evaluate parses line and runs the matching handler. It reports false when
// line is not a known command addressed to this bot.
func (d *Dispatcher) Evaluate(ctx context.Context, line string) (command.Kind, Reply, bool, error) {
	cmd, ok := command.Parse(line)
	if !ok {
		return command.KindUnknown, Reply{}, false, nil
	}

	log := logger.FromContext(ctx, d.deps.Logger)

	name, ok := d.addressedName(cmd.Name)
	if !ok {
		log.DebugContext(ctx, "Ignoring command addressed to another bot", "command", cmd.Name)
		return command.KindUnknown, Reply{}, false, nil
	}
	cmd.Name = name

	kind, ok := command.Lookup(name)
	if !ok {
		return command.KindUnknown, Reply{}, false, nil
	}
	h, ok := d.handlers[kind]
	if !ok {
		log.WarnContext(ctx, "No handler registered for command", "command", name)
		return kind, Reply{}, false, nil
	}

	log.InfoContext(ctx, "Handling command", "command", name)
	reply, err := h.Handler(ctx, cmd)
	return kind, reply, true, err
}

// addressedName strips an "@username" suffix from name. It reports false when
// the command is addressed to a different bot.
func (d *Dispatcher) addressedName(name string) (string, bool) {
	base, target, found := strings.Cut(name, "@")
	if !found {
		return name, true
	}
	info := d.deps.Config.Telegram.BotInfo
	if info == nil || info.Username == "" {
		return base, true
	}
	return base, strings.EqualFold(target, info.Username)
}

func (d *Dispatcher) send(ctx context.Context, s Sender, msg *models.Message, text string, log *slog.Logger) {
	timeout := d.deps.Config.Telegram.SendTimeout
	if timeout <= 0 {
		timeout = defaultSendTimeout
	}
	sendCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	_, err := s.SendMessage(sendCtx, &tgbot.SendMessageParams{
		ChatID:          msg.Chat.ID,
		MessageThreadID: msg.MessageThreadID,
		Text:            text,
		ParseMode:       models.ParseModeHTML,
		ReplyParameters: &models.ReplyParameters{
			MessageID:                msg.ID,
			AllowSendingWithoutReply: true,
		},
	})
	if err != nil {
		d.deps.Metrics.SendFailed()
		log.ErrorContext(ctx, "Failed to send reply", "error", err, "chat_id", msg.Chat.ID)
		return
	}
	log.DebugContext(ctx, "Reply sent")
}

// record persists the command for statistics. Failures never affect the reply.
func (d *Dispatcher) record(ctx context.Context, msg *models.Message, kind command.Kind, reply Reply, log *slog.Logger) {
	if d.deps.Store == nil {
		return
	}
	recordCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recordTimeout)
	defer cancel()

	event := &database.CommandEvent{
		Command:  kind.String(),
		ChatID:   msg.Chat.ID,
		UserID:   senderID(msg),
		Category: reply.Category,
	}
	if err := d.deps.Store.SaveCommandEvent(recordCtx, event); err != nil {
		log.WarnContext(ctx, "Failed to record command event", "error", err, "chat_id", msg.Chat.ID)
	}
}

func senderID(msg *models.Message) int64 {
	if msg.From == nil {
		return 0
	}
	return msg.From.ID
}
