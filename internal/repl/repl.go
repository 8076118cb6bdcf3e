// Package repl runs the interactive chat loop on a terminal.
package repl

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pmaseko/finbot/internal/bot"
	"github.com/pmaseko/finbot/internal/query"
)

const banner = " Hi This is the Financial Analysis Chatbot\nType 'exit' to quit"

// REPL reads one query per line, answers it, and repeats until the exit
// intent or input EOF. Queries are handled strictly one at a time; the
// process blocks on input indefinitely.
type REPL struct {
	bot *bot.Bot
	in  io.Reader
	out io.Writer
}

func New(b *bot.Bot, in io.Reader, out io.Writer) *REPL {
	return &REPL{bot: b, in: in, out: out}
}

// Run drives the loop. Handler lookup failures are printed as a generic
// error line and the session continues; only the exit intent (or EOF)
// ends it.
func (r *REPL) Run() error {
	fmt.Fprintln(r.out, banner)

	scanner := bufio.NewScanner(r.in)
	for {
		fmt.Fprint(r.out, "\nYou: ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		resp, err := r.bot.Answer(scanner.Text())
		if err != nil {
			fmt.Fprintf(r.out, "Error: %v\n", err)
			continue
		}

		fmt.Fprintf(r.out, "Bot: %s\n", resp.Text)
		if resp.Intent == query.IntentExit {
			return nil
		}
	}
}
