package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"companion.GO/config"
	"companion.GO/core/logger"
	"companion.GO/server"
	chatService "companion.GO/service/chat"
)

type sessionDeleter interface {
	Delete(id string) error
}

// endSession drops the REPL session; a failure is only logged since the process is exiting.
func endSession(sessions sessionDeleter, id string) {
	if err := sessions.Delete(id); err != nil {
		logger.L().Warn("chat session cleanup failed", zap.String("session_id", id), zap.Error(err))
	}
}

const chatHelp = `Type a message, or:
  /select <product-id>    toggle a product
  /all <msg> <group>      toggle select-all in a recommendation group
  /add <msg> <group>      add the group's selected products to the cart
  /cart                   show the cart
  /qty <product-id> <n>   set a cart quantity (0 removes)
  /checkout               simulated checkout
  /quit`

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with the shopping assistant in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := server.BuildDeps(cmd.Context(), config.LoadAppConfig())
		if err != nil {
			return err
		}
		s, err := deps.Sessions.Create(cmd.Context())
		if err != nil {
			return err
		}
		defer endSession(deps.Sessions, s.ID())
		return runChat(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), s)
	},
}

func printMessage(out io.Writer, index int, m chatService.Message) {
	fmt.Fprintf(out, "[%d] %s: %s\n", index, m.Role, m.Content)
	for gi, g := range m.Recommendations {
		header := fmt.Sprintf("  (%d %d) %s", index, gi, g.Title)
		if g.Discount != nil {
			header += fmt.Sprintf(" - %.0f%% off", *g.Discount)
		}
		fmt.Fprintln(out, header)
		for _, p := range g.Products {
			fmt.Fprintf(out, "      %-12s %-36s $%.2f\n", p.ID, p.Name, p.Price)
		}
	}
}

func printCart(out io.Writer, s *chatService.Session) {
	items := s.Cart().Items()
	if len(items) == 0 {
		fmt.Fprintln(out, "cart is empty")
		return
	}
	for _, it := range items {
		fmt.Fprintf(out, "  %-12s x%d  $%.2f\n", it.Product.ID, it.Quantity, it.LineTotal())
	}
	fmt.Fprintf(out, "  subtotal: $%.2f\n", s.Cart().Subtotal())
}

func groupArgs(fields []string) (int, int, error) {
	if len(fields) != 3 {
		return 0, 0, fmt.Errorf("usage: %s <msg> <group>", fields[0])
	}
	m, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("bad message index %q", fields[1])
	}
	g, err := strconv.Atoi(fields[2])
	if err != nil {
		return 0, 0, fmt.Errorf("bad group index %q", fields[2])
	}
	return m, g, nil
}

// command runs one slash command. It reports false on /quit.
func command(out io.Writer, s *chatService.Session, fields []string) (bool, error) {
	switch fields[0] {
	case "/quit", "/exit":
		return false, nil
	case "/help":
		fmt.Fprintln(out, chatHelp)
	case "/select":
		if len(fields) != 2 {
			return true, fmt.Errorf("usage: /select <product-id>")
		}
		fmt.Fprintf(out, "%s selected: %v\n", fields[1], s.ToggleProductSelection(fields[1]))
	case "/all", "/add":
		m, g, err := groupArgs(fields)
		if err != nil {
			return true, err
		}
		grp, err := s.Group(m, g)
		if err != nil {
			return true, err
		}
		if fields[0] == "/all" {
			s.ToggleSelectAllInGroup(grp)
			fmt.Fprintf(out, "%s: all selected %v\n", grp.Title, s.AllSelected(grp))
			return true, nil
		}
		added, err := s.AddSelectedToCart(grp)
		if err != nil {
			return true, err
		}
		if !added {
			fmt.Fprintln(out, "nothing selected in that group")
			return true, nil
		}
		printCart(out, s)
	case "/cart":
		printCart(out, s)
	case "/qty":
		if len(fields) != 3 {
			return true, fmt.Errorf("usage: /qty <product-id> <n>")
		}
		n, err := strconv.Atoi(fields[2])
		if err != nil {
			return true, fmt.Errorf("bad quantity %q", fields[2])
		}
		if err := s.Cart().SetQuantity(fields[1], n); err != nil {
			return true, err
		}
		printCart(out, s)
	case "/checkout":
		sum, err := s.Checkout()
		if err != nil {
			return true, err
		}
		fmt.Fprintf(out, "checkout complete: %d items, $%.2f\n", sum.Count, sum.Subtotal)
	default:
		return true, fmt.Errorf("unknown command %s (try /help)", fields[0])
	}
	return true, nil
}

func runChat(ctx context.Context, in io.Reader, out io.Writer, s *chatService.Session) error {
	for i, m := range s.History() {
		printMessage(out, i, m)
	}
	fmt.Fprintln(out, "(/help for commands)")

	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !sc.Scan() {
			return sc.Err()
		}
		line := strings.TrimSpace(sc.Text())
		if strings.HasPrefix(line, "/") {
			more, err := command(out, s, strings.Fields(line))
			if err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
			}
			if !more {
				return nil
			}
			continue
		}
		reply := s.Submit(line)
		if reply == nil {
			continue
		}
		fmt.Fprintln(out, "assistant is typing...")
		select {
		case m := <-reply:
			printMessage(out, len(s.History())-1, m)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func init() {
	Register(chatCmd)
}
