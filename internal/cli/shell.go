package cli

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/idilsaglam/packlist/internal/model"
	"github.com/idilsaglam/packlist/internal/packing"
	"github.com/idilsaglam/packlist/internal/snapshot"
	"github.com/idilsaglam/packlist/internal/ui"
)

const shellHelp = `  add [QTY] DESCRIPTION...   Add an item, QTY 1-20 (default 1)
  done ID | toggle ID        Toggle packed for item ID
  rm ID                      Remove item ID
  clear                      Remove every item
  sort KEY [MODE]            Sort by input, description or packed
  order MODE                 ascending or descending
  ls                         Show the list
  stats                      Show the summary line
  dump                       Print the list as JSON
  help                       Show these commands
  quit                       Stop reading
`

// errUsage marks a line the shell could not make sense of.
type errUsage string

func (e errUsage) Error() string { return string(e) }

type shell struct {
	store  *packing.Store
	proj   *packing.Projector
	out    io.Writer
	errOut io.Writer
	log    *slog.Logger
	prompt bool

	usageErrors int
}

// run executes one command per line until EOF or quit.
// Exit code is 2 when any line was a usage error, 1 on a read failure.
func (sh *shell) run(in io.Reader) int {
	sc := bufio.NewScanner(in)
	lineNo := 0
	for {
		if sh.prompt {
			fmt.Fprint(sh.out, "> ")
		}
		if !sc.Scan() {
			break
		}
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		stop, err := sh.exec(line)
		if err != nil {
			sh.usageErrors++
			sh.log.Debug("usage error", "line", lineNo, "err", err)
			ui.Fail(sh.errOut, fmt.Sprintf("line %d: %v", lineNo, err))
		}
		if stop {
			break
		}
	}
	if err := sc.Err(); err != nil {
		ui.Fail(sh.errOut, "read: "+err.Error())
		return 1
	}
	if sh.usageErrors > 0 {
		return 2
	}
	return 0
}

func (sh *shell) exec(line string) (stop bool, err error) {
	fields := strings.Fields(line)
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "add":
		return false, sh.doAdd(args)
	case "done", "toggle":
		id, err := oneID(cmd, args)
		if err != nil {
			return false, err
		}
		sh.doToggle(id)
	case "rm", "delete":
		id, err := oneID(cmd, args)
		if err != nil {
			return false, err
		}
		sh.doRemove(id)
	case "clear":
		if len(args) != 0 {
			return false, errUsage("usage: clear")
		}
		sh.store.Clear()
		ui.OK(sh.out, "cleared")
	case "sort":
		return false, sh.doSort(args)
	case "order":
		if len(args) != 1 {
			return false, errUsage("usage: order ascending|descending")
		}
		mode, err := packing.ParseSortMode(args[0])
		if err != nil {
			return false, errUsage(err.Error())
		}
		sh.store.SetSortMode(mode)
		ui.OK(sh.out, ui.SortLine(sh.store.SortBy(), mode))
	case "ls", "list":
		sh.doList()
	case "stats":
		fmt.Fprintln(sh.out, packing.Summarize(sh.store.Items()).Message())
	case "dump":
		if err := snapshot.Write(sh.out, snapshot.Take(sh.store, sh.proj)); err != nil {
			ui.Fail(sh.errOut, "dump: "+err.Error())
		}
	case "help":
		fmt.Fprint(sh.out, shellHelp)
	case "quit", "exit":
		return true, nil
	default:
		return false, errUsage("unknown command: " + cmd)
	}
	return false, nil
}

// -------------- command impls ----------------

func (sh *shell) doAdd(args []string) error {
	qty := model.MinQuantity
	if len(args) > 1 {
		if n, err := strconv.Atoi(args[0]); err == nil {
			if n < model.MinQuantity || n > model.MaxQuantity {
				return errUsage(fmt.Sprintf("add: quantity must be %d-%d, got %d", model.MinQuantity, model.MaxQuantity, n))
			}
			qty, args = n, args[1:]
		}
	}
	desc := strings.Join(args, " ")
	if desc == "" {
		return errUsage("usage: add [QTY] DESCRIPTION...")
	}
	it, _ := sh.store.Add(desc, qty)
	ui.OK(sh.out, fmt.Sprintf("added #%d %d %s", it.ID, it.Quantity, it.Description))
	return nil
}

func (sh *shell) doToggle(id int) {
	if !sh.store.Toggle(id) {
		ui.Hint(sh.out, fmt.Sprintf("no item #%d", id))
		return
	}
	it, _ := sh.store.Get(id)
	state := "unpacked"
	if it.Packed {
		state = "packed"
	}
	ui.OK(sh.out, fmt.Sprintf("%s #%d", state, id))
}

func (sh *shell) doRemove(id int) {
	if !sh.store.Delete(id) {
		ui.Hint(sh.out, fmt.Sprintf("no item #%d", id))
		return
	}
	ui.OK(sh.out, fmt.Sprintf("removed #%d", id))
}

func (sh *shell) doSort(args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return errUsage("usage: sort input|description|packed [ascending|descending]")
	}
	by, err := packing.ParseSortKey(args[0])
	if err != nil {
		return errUsage(err.Error())
	}
	mode := sh.store.SortMode()
	if len(args) == 2 {
		if mode, err = packing.ParseSortMode(args[1]); err != nil {
			return errUsage(err.Error())
		}
	}
	sh.store.SetSortBy(by)
	sh.store.SetSortMode(mode)
	ui.OK(sh.out, ui.SortLine(by, mode))
	return nil
}

func (sh *shell) doList() {
	t := ui.Current()
	view := sh.proj.View(sh.store)

	var lines []string
	lines = append(lines, t.Title.Render("Packing list")+"  "+t.Muted.Render(ui.SortLine(sh.store.SortBy(), sh.store.SortMode())))
	lines = append(lines, "")
	if len(view) == 0 {
		lines = append(lines, t.Muted.Render("no items"))
	}
	for _, it := range view {
		lines = append(lines, fmt.Sprintf("%s %s", t.Muted.Render(fmt.Sprintf("#%-3d", it.ID)), ui.ItemLine(it)))
	}
	lines = append(lines, "")
	lines = append(lines, ui.Footer(packing.Summarize(view))...)
	fmt.Fprintln(sh.out, ui.Panel(lines))
}

func oneID(cmd string, args []string) (int, error) {
	if len(args) != 1 {
		return 0, errUsage(fmt.Sprintf("usage: %s ID", cmd))
	}
	n, err := strconv.Atoi(strings.TrimPrefix(args[0], "#"))
	if err != nil {
		return 0, errUsage(cmd + ": not a number: " + args[0])
	}
	return n, nil
}
