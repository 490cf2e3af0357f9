// Package shell is the interactive front-end: load a lexicon, set or roll a
// board, and solve it.
package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/boggler/board"
	"github.com/domino14/boggler/config"
	"github.com/domino14/boggler/dice"
	"github.com/domino14/boggler/lexicon"
	"github.com/domino14/boggler/solver"
	"github.com/domino14/boggler/trie"
)

var (
	errNoData            = errors.New("no data in this line")
	errWrongOptionSyntax = errors.New("wrong format; all options need arguments")
)

type Response struct {
	message string
}

func Msg(message string) *Response {
	return &Response{message: message}
}

type ShellController struct {
	l        *readline.Instance
	config   *config.Config
	execPath string

	lexiconName string
	trie        *trie.Trie
	board       *board.Board
	roller      *dice.Roller
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func writeln(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func (sc *ShellController) showMessage(msg string) {
	writeln(msg, sc.l.Stderr())
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

func NewShellController(cfg *config.Config, execPath string) *ShellController {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mboggler>\033[0m ",
		HistoryFile:     "/tmp/readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	execPath = config.FindBasePath(execPath)
	return &ShellController{l: l, config: cfg, execPath: execPath,
		roller: dice.NewRoller()}
}

func usage(w io.Writer) {
	io.WriteString(w, "commands:\n")
	io.WriteString(w, "load <lexicon> - load a named lexicon from the data path\n")
	io.WriteString(w, "load -file <path> - load a word list from a file\n")
	io.WriteString(w, "board <letters> - set the board; 16 letters, or 4 rows of 4\n")
	io.WriteString(w, "roll - shake the dice tray for a random board\n")
	io.WriteString(w, "show - show the current board\n")
	io.WriteString(w, "solve - list every word on the board\n")
	io.WriteString(w, "set [<option> <value>] - show settings, or change one\n")
	io.WriteString(w, "exit - leave\n")
}

func (sc *ShellController) loadLexicon(cmd *shellcmd) (*Response, error) {
	var words []string
	var err error
	var name string
	if file := cmd.options["file"]; file != "" {
		words, err = lexicon.LoadWordList(file)
		name = file
	} else if len(cmd.args) == 1 {
		name = cmd.args[0]
		words, err = lexicon.NamedWordList(sc.config, name)
	} else {
		return nil, errors.New("load <lexicon> or load -file <path>")
	}
	if err != nil {
		return nil, err
	}
	sc.trie = trie.NewTrie(words)
	sc.lexiconName = name
	return Msg(fmt.Sprintf("loaded %v (%d words)", name,
		sc.trie.NumWords())), nil
}

func (sc *ShellController) setBoard(args []string) (*Response, error) {
	var b *board.Board
	var err error
	switch len(args) {
	case 1:
		b, err = board.NewBoardFromString(args[0])
	case board.DefaultDim:
		b, err = board.NewBoardFromRows(args)
	default:
		return nil, errors.New(
			"board <16 letters> or board <row> <row> <row> <row>")
	}
	if err != nil {
		return nil, err
	}
	sc.board = b
	return Msg(b.ToDisplayText()), nil
}

func (sc *ShellController) roll() (*Response, error) {
	sc.board = sc.roller.Roll()
	return Msg(sc.board.ToDisplayText()), nil
}

func (sc *ShellController) show() (*Response, error) {
	if sc.board == nil {
		return nil, errors.New("no board set; use `board` or `roll`")
	}
	return Msg(sc.board.ToDisplayText()), nil
}

func (sc *ShellController) solve() (*Response, error) {
	if sc.board == nil {
		return nil, errors.New("no board set; use `board` or `roll`")
	}
	if sc.trie == nil {
		return nil, errors.New("no lexicon loaded; use `load`")
	}
	if sc.board.Rows() != solver.ValidBoardDim ||
		sc.board.Cols() != solver.ValidBoardDim {
		return nil, solver.ErrInvalidBoardSize
	}
	s := solver.NewSearcher(sc.board, sc.trie)
	s.Search()
	words := s.Words()
	var str strings.Builder
	fmt.Fprintf(&str, "%d words\n", len(words))
	str.WriteString(strings.Join(words, " "))
	return Msg(str.String()), nil
}

// The options `set` may change. Everything else in the config is fixed at
// startup (profiles are wired before the shell starts).
var settableOptions = []string{"data-path", "default-lexicon"}

func (sc *ShellController) set(args []string) (*Response, error) {
	switch len(args) {
	case 0:
		var str strings.Builder
		str.WriteString("settings:\n")
		for _, key := range settableOptions {
			str.WriteString("  " + key + ": " + sc.config.GetString(key) + "\n")
		}
		return Msg(str.String()), nil
	case 2:
		key, value := args[0], args[1]
		if !lo.Contains(settableOptions, key) {
			return nil, fmt.Errorf("no such option: %v", key)
		}
		sc.config.Set(key, value)
		return Msg(key + ": " + value), nil
	default:
		return nil, errors.New("set [<option> <value>]")
	}
}

func (sc *ShellController) handle(line string) (*Response, error) {
	cmd, err := extractFields(line)
	if err != nil {
		return nil, err
	}
	switch cmd.cmd {
	case "load", "l":
		return sc.loadLexicon(cmd)
	case "board", "b":
		return sc.setBoard(cmd.args)
	case "roll", "r":
		return sc.roll()
	case "show", "s":
		return sc.show()
	case "solve", "gen", "g":
		return sc.solve()
	case "set":
		return sc.set(cmd.args)
	case "help", "?":
		usage(sc.l.Stderr())
		return nil, nil
	default:
		msg := fmt.Sprintf("command %v not found", strconv.Quote(cmd.cmd))
		log.Info().Msg(msg)
		return nil, errors.New(msg)
	}
}

func firstRunHint(name, dataPath string) string {
	return fmt.Sprintf(
		"no %v.txt found under %v; load a word list with `load <name>` or `load -file <path>`",
		name, dataPath)
}

// Loop runs the readline loop until exit or interrupt.
func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()

	if name := sc.config.GetString("default-lexicon"); name != "" {
		resp, err := sc.loadLexicon(&shellcmd{cmd: "load", args: []string{name}})
		if err != nil {
			// A fresh checkout ships no word lists, so this is the
			// expected first-run path; keep it friendly.
			log.Debug().Err(err).Str("lexicon", name).Msg("default lexicon not loaded")
			sc.showMessage(firstRunHint(name, sc.config.GetString("data-path")))
		} else {
			sc.showMessage(resp.message)
		}
	}

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			}
			continue
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if line == "exit" {
			sig <- syscall.SIGINT
			break
		}
		resp, err := sc.handle(line)
		if err != nil {
			sc.showError(err)
		} else if resp != nil {
			sc.showMessage(resp.message)
		}
	}
	log.Debug().Msg("exiting readline loop...")
}
