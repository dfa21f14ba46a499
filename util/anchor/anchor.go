package anchor

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"sync"

	"atomicgo.dev/cursor"
	"github.com/fatih/color"
)

type Color int

const (
	Plain Color = iota
	Red
	Green
	Yellow
	Blue
)

var palette = map[Color]*color.Color{
	Plain:  color.New(),
	Red:    color.New(color.FgRed, color.Bold),
	Green:  color.New(color.FgGreen, color.Bold),
	Yellow: color.New(color.FgYellow, color.Bold),
	Blue:   color.New(color.FgBlue, color.Bold),
}

// TUI is a terminal printer which keeps a set
// of labelled status lines anchored at the bottom
// of the output while regular lines scroll above
type TUI struct {
	mutex  sync.Mutex
	accent *color.Color
	lots   map[string]*Lot
	order  []string
	reader *bufio.Reader
}

type Lot struct {
	tui     *TUI
	label   string
	message string
	closed  bool
}

func New(accent Color) *TUI {
	painter, ok := palette[accent]
	if !ok {
		painter = palette[Plain]
	}
	return &TUI{
		accent: painter,
		lots:   map[string]*Lot{},
		reader: bufio.NewReader(os.Stdin),
	}
}

func (tui *TUI) Printf(format string, a ...interface{}) {
	tui.mutex.Lock()
	defer tui.mutex.Unlock()
	tui.wipeLots()
	fmt.Printf(format+"\n", a...)
	tui.drawLots()
}

// AnchorPrintf prints with the accent color applied,
// used for failure and attention-worthy lines
func (tui *TUI) AnchorPrintf(format string, a ...interface{}) {
	tui.mutex.Lock()
	defer tui.mutex.Unlock()
	tui.wipeLots()
	tui.accent.Printf(format+"\n", a...)
	tui.drawLots()
}

// Reads prompts for a line of user input
func (tui *TUI) Reads(prompt string) string {
	tui.mutex.Lock()
	tui.wipeLots()
	fmt.Printf("%s ", prompt)
	tui.mutex.Unlock()

	line, err := tui.reader.ReadString('\n')
	if err != nil {
		return ""
	}

	tui.mutex.Lock()
	tui.drawLots()
	tui.mutex.Unlock()
	return strings.TrimSpace(line)
}

// Lot returns the anchored status line for the given
// label, allocating it on first use
func (tui *TUI) Lot(label string) *Lot {
	tui.mutex.Lock()
	defer tui.mutex.Unlock()

	lot, ok := tui.lots[label]
	if !ok {
		lot = &Lot{tui: tui, label: label}
		tui.lots[label] = lot
		tui.order = append(tui.order, label)
	}
	lot.closed = false
	return lot
}

func (lot *Lot) Print(message string) {
	lot.tui.mutex.Lock()
	defer lot.tui.mutex.Unlock()
	lot.tui.wipeLots()
	lot.message = message
	lot.tui.drawLots()
}

func (lot *Lot) Printf(format string, a ...interface{}) {
	lot.Print(fmt.Sprintf(format, a...))
}

// Wipe clears the lot message keeping the line allocated
func (lot *Lot) Wipe() {
	lot.Print("")
}

// Close settles the lot with an optional final message
func (lot *Lot) Close(message ...string) {
	lot.tui.mutex.Lock()
	defer lot.tui.mutex.Unlock()
	lot.tui.wipeLots()
	lot.closed = true
	if len(message) > 0 {
		lot.message = message[0]
	} else {
		lot.message = "done"
	}
	lot.tui.drawLots()
}

func (tui *TUI) wipeLots() {
	if len(tui.order) == 0 {
		return
	}
	cursor.ClearLinesUp(len(tui.order))
	cursor.StartOfLine()
}

func (tui *TUI) drawLots() {
	for _, label := range tui.order {
		lot := tui.lots[label]
		marker := "…"
		if lot.closed {
			marker = "✓"
		}
		fmt.Printf("%s %s: %s\n", marker, tui.accent.Sprint(lot.label), lot.message)
	}
}
