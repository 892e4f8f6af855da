package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/cortado-games/tessera/ai/player"
	"github.com/cortado-games/tessera/automatic"
	"github.com/cortado-games/tessera/board"
	"github.com/cortado-games/tessera/config"
	"github.com/cortado-games/tessera/game"
	"github.com/cortado-games/tessera/lexicon"
	"github.com/cortado-games/tessera/move"
	"github.com/cortado-games/tessera/movegen"
	"github.com/cortado-games/tessera/tiles"
)

type shellController struct {
	l   *readline.Instance
	cfg *config.Config

	lex  *lexicon.Lexicon
	dist *tiles.LetterDistribution

	curBoard  *board.Board
	curRack   *tiles.Rack
	curPlays  []*move.Move
	standings *automatic.Standings
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func usage(w io.Writer) {
	io.WriteString(w, "commands:\n")
	io.WriteString(w, "load <lexicon> - load a word list, by name from the lexicon path or by file path\n")
	io.WriteString(w, "rack <letters> - set the current rack (a-z only)\n")
	io.WriteString(w, "gen [n] - generate plays for the current rack; show the top n (default 15)\n")
	io.WriteString(w, "commit <n> - place play number n from the last gen on the board\n")
	io.WriteString(w, "show - show the current board and rack\n")
	io.WriteString(w, "clear - reset the board\n")
	io.WriteString(w, "play <p1> <p2> - play one full game between two player kinds\n")
	io.WriteString(w, "auto <n> <kinds...> - round-robin tournament, n games per matchup\n")
	io.WriteString(w, "hist <kind> - score histogram for a player from the last tournament\n")
	io.WriteString(w, "seed <s> - seed all randomness (empty argument clears it)\n")
	io.WriteString(w, "players - list available player kinds\n")
	io.WriteString(w, "exit\n")
}

func newShellController(cfg *config.Config) *shellController {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mtessera>\033[0m ",
		HistoryFile:     "/tmp/readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	dist := tiles.English()
	return &shellController{
		l:        l,
		cfg:      cfg,
		dist:     dist,
		curBoard: board.New(dist),
		curRack:  tiles.NewRack(),
	}
}

// rng builds the random source the current seed setting calls for.
func (sc *shellController) rng() *frand.RNG {
	if key := sc.cfg.SeedKey(); key != nil {
		return frand.NewCustom(key, 1024, 12)
	}
	return frand.New()
}

func (sc *shellController) loadLexicon(name string) error {
	path := name
	if _, err := os.Stat(path); err != nil {
		path = filepath.Join(sc.cfg.LexiconPath, name+".txt")
	}
	lex, err := lexicon.Load(path)
	if err != nil {
		return err
	}
	sc.lex = lex
	showMessage(fmt.Sprintf("loaded %v (%v words)", lex.Name(), lex.WordCount()),
		sc.l.Stderr())
	return nil
}

func (sc *shellController) setRack(letters string) error {
	rack, err := tiles.RackFromString(letters)
	if err != nil {
		return err
	}
	sc.curRack = rack
	return nil
}

func (sc *shellController) generate(args []string) error {
	if sc.lex == nil {
		return errNoLexicon
	}
	numToShow := 15
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		numToShow = n
	}
	gen := movegen.NewGenerator(sc.curBoard, sc.lex)
	plays, err := gen.GenAll(sc.curRack)
	if err != nil {
		return err
	}
	sort.SliceStable(plays, func(i, j int) bool {
		return plays[i].Score() > plays[j].Score()
	})
	sc.curPlays = plays
	showMessage(fmt.Sprintf("%v plays:", len(plays)), sc.l.Stderr())
	for i, p := range plays {
		if i >= numToShow {
			break
		}
		showMessage(fmt.Sprintf("%4d: %v", i+1, p.ShortDescription()), sc.l.Stderr())
	}
	return nil
}

func (sc *shellController) commit(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("need a play number")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return err
	}
	if n < 1 || n > len(sc.curPlays) {
		return fmt.Errorf("play number out of range, run gen first")
	}
	p := sc.curPlays[n-1]
	if err := sc.curBoard.PlaceWord(p.Word(), p.Start(), p.Direction(), sc.curRack); err != nil {
		return err
	}
	sc.curPlays = nil
	showMessage(sc.curBoard.String(), sc.l.Stderr())
	return nil
}

func (sc *shellController) playGame(args []string) error {
	if sc.lex == nil {
		return errNoLexicon
	}
	if len(args) != 2 {
		return fmt.Errorf("need two player kinds, one of %v", player.Kinds())
	}
	p1, err := player.New(args[0], args[0]+"-1")
	if err != nil {
		return err
	}
	p2, err := player.New(args[1], args[1]+"-2")
	if err != nil {
		return err
	}
	g := game.New(sc.lex, sc.dist, p1, p2, sc.rng())
	s1, s2, err := g.Play()
	if err != nil {
		return err
	}
	showMessage(g.Board().String(), sc.l.Stderr())
	showMessage(fmt.Sprintf("final (%v turns): %v %v - %v %v",
		g.Turn(), p1.Name(), s1, p2.Name(), s2), sc.l.Stderr())
	return nil
}

func (sc *shellController) runTournament(args []string) error {
	if sc.lex == nil {
		return errNoLexicon
	}
	if len(args) < 2 {
		return fmt.Errorf("usage: auto <games-per-matchup> <kinds...>")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return err
	}
	t, err := automatic.NewTournament(sc.cfg, sc.lex, sc.dist, args[1:])
	if err != nil {
		return err
	}
	t.SetGamesPerMatchup(n)
	standings, err := t.Run(context.Background(), "/tmp/tessera_games.csv")
	if err != nil {
		return err
	}
	sc.standings = standings
	showMessage(standings.Results().String(), sc.l.Stderr())
	showMessage("per-game log written to /tmp/tessera_games.csv", sc.l.Stderr())
	return nil
}

func (sc *shellController) histogram(args []string) error {
	if sc.standings == nil {
		return fmt.Errorf("no tournament has been run yet")
	}
	if len(args) != 1 {
		return fmt.Errorf("need a player kind")
	}
	return sc.standings.ScoreHistogram(sc.l.Stderr(), args[0])
}

var errNoLexicon = fmt.Errorf("no lexicon loaded; use the load command")

func (sc *shellController) execute(line string) error {
	fields, err := shellquote.Split(line)
	if err != nil {
		return err
	}
	if len(fields) == 0 {
		return nil
	}
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "help":
		usage(sc.l.Stderr())
	case "load":
		if len(args) != 1 {
			return fmt.Errorf("need a lexicon name or path")
		}
		return sc.loadLexicon(args[0])
	case "rack":
		if len(args) != 1 {
			return fmt.Errorf("need rack letters")
		}
		return sc.setRack(args[0])
	case "gen":
		return sc.generate(args)
	case "commit":
		return sc.commit(args)
	case "show":
		showMessage(sc.curBoard.String(), sc.l.Stderr())
		showMessage("rack: "+sc.curRack.String(), sc.l.Stderr())
	case "clear":
		sc.curBoard = board.New(sc.dist)
		sc.curPlays = nil
	case "play":
		return sc.playGame(args)
	case "auto":
		return sc.runTournament(args)
	case "hist":
		return sc.histogram(args)
	case "seed":
		seed := ""
		if len(args) > 0 {
			seed = args[0]
		}
		sc.cfg.Seed = seed
	case "players":
		showMessage(strings.Join(player.Kinds(), " "), sc.l.Stderr())
	default:
		return fmt.Errorf("unknown command %v, try help", strconv.Quote(cmd))
	}
	return nil
}

func (sc *shellController) loop(sig chan os.Signal) {
	defer sc.l.Close()

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
		if line == "exit" || line == "quit" {
			sig <- syscall.SIGINT
			break
		}
		if err := sc.execute(line); err != nil {
			log.Error().Err(err).Msg("")
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
}
