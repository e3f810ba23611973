package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"

	"slotmachine/models"
	"slotmachine/service"
)

// Game drives the interactive session: identify the player, provision the
// session, then run bet/spin/settle cycles until the player quits.
type Game struct {
	in      *bufio.Scanner
	out     io.Writer
	players service.PlayerService
	slots   service.SlotService
}

// New creates a game over the given input and output streams
func New(in io.Reader, out io.Writer, players service.PlayerService, slots service.SlotService) *Game {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	return &Game{
		in:      scanner,
		out:     out,
		players: players,
		slots:   slots,
	}
}

// Run plays one full session. It returns nil when the player quits or the
// input stream ends; persistence trouble never ends a session, so the
// only early exit is the input drying up.
func (g *Game) Run(ctx context.Context) error {
	player := g.identify(ctx)
	if player == nil {
		return nil // input ended during identification
	}

	fmt.Fprintf(g.out, "Welcome %s! Your balance is %g.\n", player.Name, player.Balance)

	g.spinCycle(ctx, player)
	g.summary(ctx, player)

	return nil
}

// identify reads the identity triple and provisions the player. A nil
// player means stdin ended before the triple was read.
func (g *Game) identify(ctx context.Context) *models.Player {
	name, ok := g.readToken("Enter your name: ")
	if !ok {
		return nil
	}
	age, ok := g.readInt("Enter your age: ")
	if !ok {
		return nil
	}
	card, ok := g.readToken("Enter your card: ")
	if !ok {
		return nil
	}

	player := g.players.ResolvePlayer(ctx, name, age, card)
	g.players.BeginSession(ctx, player)

	return player
}

// spinCycle loops until the player quits or input ends
func (g *Game) spinCycle(ctx context.Context, player *models.Player) {
	for ctx.Err() == nil {
		choice, ok := g.readToken("Press 'p' to play, 'q' to quit: ")
		if !ok {
			return
		}

		switch choice {
		case "q":
			return
		case "p":
			bet, ok := g.readFloat("Enter your bet amount: ")
			if !ok {
				return
			}

			outcome := g.slots.PlaySpin(ctx, player, bet)
			fmt.Fprint(g.out, outcome.Grid.String())
			fmt.Fprintf(g.out, "New Balance: %g\n", outcome.NewBalance)
		default:
			fmt.Fprintf(g.out, "Unknown choice %q.\n", choice)
		}
	}
}

// summary prints the session's recorded spins on the way out
func (g *Game) summary(ctx context.Context, player *models.Player) {
	records, err := g.slots.History(ctx, player, 10)
	if err != nil {
		// Summary is best effort; the session already ended.
		return
	}
	if len(records) == 0 {
		fmt.Fprintln(g.out, "Thanks for playing!")
		return
	}

	fmt.Fprintln(g.out, "Recent spins:")
	for _, r := range records {
		fmt.Fprintf(g.out, "  bet %g, won %g, balance %g\n", r.Bet, r.Winnings, r.Balance)
	}
	fmt.Fprintln(g.out, "Thanks for playing!")
}

// readToken prompts until a token is available. ok is false once the
// input stream ends.
func (g *Game) readToken(prompt string) (string, bool) {
	fmt.Fprint(g.out, prompt)
	if !g.in.Scan() {
		return "", false
	}
	return g.in.Text(), true
}

// readInt prompts until a valid integer is read, re-prompting on
// malformed input rather than leaving the stream in an undefined state
func (g *Game) readInt(prompt string) (int, bool) {
	for {
		token, ok := g.readToken(prompt)
		if !ok {
			return 0, false
		}
		value, err := strconv.Atoi(token)
		if err != nil {
			fmt.Fprintf(g.out, "%q is not a whole number, try again.\n", token)
			continue
		}
		return value, true
	}
}

// readFloat prompts until a valid number is read
func (g *Game) readFloat(prompt string) (float64, bool) {
	for {
		token, ok := g.readToken(prompt)
		if !ok {
			return 0, false
		}
		value, err := strconv.ParseFloat(token, 64)
		if err != nil {
			fmt.Fprintf(g.out, "%q is not a number, try again.\n", token)
			continue
		}
		return value, true
	}
}
