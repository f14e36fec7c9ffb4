package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Service is what the chat commands are answered from.
type Service interface {
	GetScore(ctx context.Context, query string, week int) (string, error)
	GetTeams(ctx context.Context) (string, error)
	GetStandings(ctx context.Context) (string, error)
	GetCurrentScores(ctx context.Context) (string, error)
	GetMatchups(ctx context.Context) (string, error)
	GetTeamRoster(ctx context.Context, query string) (string, error)
	GetPlayersToMonitor(ctx context.Context) (string, error)
	WhoHas(ctx context.Context, playerName string) (string, error)
	GetKickoff(ctx context.Context, nflTeam string, week int) (string, error)
	GetByeWeek(ctx context.Context, nflTeam string) (string, error)
	GetFinalScoreReport(ctx context.Context) (string, error)
	GetMondayNightCloseGames(ctx context.Context) (string, error)
}

const helpText = "Available commands:\n" +
	"/score <team> [week] - Score for a team or owner\n" +
	"/scores - Get current scores\n" +
	"/teams - List teams and owners\n" +
	"/standings - Get league standings\n" +
	"/team <team> - View team's roster and points\n" +
	"/whohas <player> - Check which team has a player\n" +
	"/monitor - Get players to monitor\n" +
	"/kickoff <nfl team> [week] - NFL kickoff time\n" +
	"/bye <nfl team> - NFL bye week\n" +
	"/finalscore - Get final score report\n" +
	"/mondaynight - Get close games for Monday night\n" +
	"/matchup - Get matchups for this week"

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) HandleCommand(ctx context.Context, update tgbotapi.Update) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(update.Message.Chat.ID, "")
	msg.ParseMode = "Markdown"
	msg.Text = h.Respond(ctx, update.Message.Command(), update.Message.CommandArguments())
	return msg
}

// Respond produces the reply text for a command and its raw arguments.
func (h *Handler) Respond(ctx context.Context, command, args string) string {
	args = strings.TrimSpace(args)

	switch strings.ToLower(command) {
	case "start":
		return "Welcome to ScoreBot! Use /help to see available commands."
	case "help":
		return helpText
	case "score":
		if args == "" {
			return "Please provide a team or owner. Usage: /score <team> [week]"
		}
		query, week := splitWeek(args)
		return reply(h.service.GetScore(ctx, query, week))("Error fetching score")
	case "scores":
		return reply(h.service.GetCurrentScores(ctx))("Error fetching scores")
	case "teams":
		return reply(h.service.GetTeams(ctx))("Error fetching teams")
	case "standings":
		return reply(h.service.GetStandings(ctx))("Error fetching standings")
	case "team", "roster":
		if args == "" {
			return "Please provide a team name. Usage: /team <team name>"
		}
		return reply(h.service.GetTeamRoster(ctx, args))("Error getting team roster")
	case "whohas":
		if args == "" {
			return "Please provide a player name. Usage: /whohas <player name>"
		}
		return reply(h.service.WhoHas(ctx, args))("Error checking who has player")
	case "monitor", "injuries":
		return reply(h.service.GetPlayersToMonitor(ctx))("Error fetching players to monitor")
	case "kickoff":
		if args == "" {
			return "Please provide an NFL team. Usage: /kickoff <nfl team> [week]"
		}
		team, week := splitWeek(args)
		return reply(h.service.GetKickoff(ctx, team, week))("Error fetching kickoff")
	case "bye":
		if args == "" {
			return "Please provide an NFL team. Usage: /bye <nfl team>"
		}
		return reply(h.service.GetByeWeek(ctx, args))("Error fetching bye week")
	case "finalscore":
		return reply(h.service.GetFinalScoreReport(ctx))("Error generating final score report")
	case "mondaynight":
		return reply(h.service.GetMondayNightCloseGames(ctx))("Error generating Monday night close games report")
	case "matchup":
		return reply(h.service.GetMatchups(ctx))("Error generating matchups report")
	default:
		return "Unknown command. Use /help to see available commands."
	}
}

func reply(text string, err error) func(prefix string) string {
	return func(prefix string) string {
		if err != nil {
			return fmt.Sprintf("%s: %v", prefix, err)
		}
		return text
	}
}

// splitWeek peels a trailing week number off the arguments, if present.
func splitWeek(args string) (string, int) {
	fields := strings.Fields(args)
	if len(fields) < 2 {
		return args, 0
	}
	week, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil {
		return args, 0
	}
	return strings.Join(fields[:len(fields)-1], " "), week
}
