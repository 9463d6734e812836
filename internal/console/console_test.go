package console

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/ChizhovVadim/reversi/pkg/common"
)

func newTestConsole(start common.Position) (*Console, *bytes.Buffer, *bytes.Buffer) {
	var out, logs bytes.Buffer
	var logger = log.New(&logs, "", 0)
	return New(logger, &out, start), &out, &logs
}

func TestConsoleMoves(t *testing.T) {
	var c, out, _ = newTestConsole(common.InitialPosition())
	if err := c.Handle("moves"); err != nil {
		t.Fatal(err)
	}
	var want = "d3 (d4)\nc4 (d4)\nf5 (e5)\ne6 (e5)\n"
	if out.String() != want {
		t.Error(out.String())
	}
}

func TestConsoleMakeMoveAndUndo(t *testing.T) {
	var c, _, _ = newTestConsole(common.InitialPosition())
	if err := c.Handle("d3"); err != nil {
		t.Fatal(err)
	}
	if c.Game().Ply() != 1 || c.Game().Position().BlackMove {
		t.Error(c.Game().Position().String())
	}
	var err = c.Handle("a1")
	if !errors.Is(err, errBadMove) {
		t.Error(err)
	}
	if err := c.Handle("undo"); err != nil {
		t.Fatal(err)
	}
	if *c.Game().Position() != common.InitialPosition() {
		t.Error(c.Game().Position().String())
	}
	if err := c.Handle("undo"); err != errNoHistory {
		t.Error(err)
	}
	if err := c.Handle("pass"); err != errCannotPass {
		t.Error(err)
	}
	if err := c.Handle("jump"); err == nil {
		t.Error("unknown command accepted")
	}
}

func TestConsolePosAndPass(t *testing.T) {
	var c, out, _ = newTestConsole(common.InitialPosition())
	var pass = "XO-------------------------------------------------------------- O"
	if err := c.Handle("pos " + pass); err != nil {
		t.Fatal(err)
	}
	if err := c.Handle("pass"); err != nil {
		t.Fatal(err)
	}
	if err := c.Handle("c1"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "game over: black 3 white 0") {
		t.Error(out.String())
	}
	out.Reset()
	if err := c.Handle("pos"); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(out.String()); got != "XXX------------------------------------------------------------- O" {
		t.Error(got)
	}
	if err := c.Handle("pos xyz"); err == nil {
		t.Error("bad position accepted")
	}
}

func TestConsoleRun(t *testing.T) {
	var c, out, logs = newTestConsole(common.InitialPosition())
	var input = "d3\n\nz9\nc5\nshow\nquit\nd6\n"
	if err := c.Run(strings.NewReader(input)); err != nil {
		t.Fatal(err)
	}
	if c.Game().Ply() != 2 {
		t.Error(c.Game().Ply())
	}
	if !strings.Contains(logs.String(), "unknown command z9") {
		t.Error(logs.String())
	}
	if !strings.Contains(out.String(), "White Pieces:") {
		t.Error(out.String())
	}
}

func TestGameReset(t *testing.T) {
	var g = NewGame(common.InitialPosition())
	if !g.MakeMove(common.PositionOf(common.Row2, common.Column3)) {
		t.Fatal("d3 rejected")
	}
	g.Reset()
	if g.Ply() != 0 || *g.Position() != common.InitialPosition() {
		t.Error(g.Position().String())
	}
}
