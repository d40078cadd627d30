package ebiten

import (
	"fmt"
	"testing"
)

func TestConsoleInput_TypeAndSubmit(t *testing.T) {
	var c consoleInput
	c.toggle()
	c.typeRunes([]rune("bind fire keyboard:Xx`"))
	c.backspace()
	if c.text != "bind fire keyboard:X" {
		t.Errorf("text = %q, want the toggle key dropped and one rune erased", c.text)
	}

	cmd, ok := c.submit()
	if !ok || cmd != "bind fire keyboard:X" {
		t.Errorf("submit = %q, %v", cmd, ok)
	}
	if c.text != "" {
		t.Errorf("text = %q after submit, want empty", c.text)
	}

	c.typeRunes([]rune("   "))
	if _, ok := c.submit(); ok {
		t.Error("submit of a blank line = true, want false")
	}
}

func TestConsoleInput_History(t *testing.T) {
	var c consoleInput
	for _, cmd := range []string{"list", "help"} {
		c.typeRunes([]rune(cmd))
		c.submit()
	}

	c.historyUp()
	if c.text != "help" {
		t.Errorf("text = %q, want help", c.text)
	}
	c.historyUp()
	c.historyUp()
	if c.text != "list" {
		t.Errorf("text = %q, want list at the oldest entry", c.text)
	}
	c.historyDown()
	c.historyDown()
	if c.text != "" {
		t.Errorf("text = %q past the newest entry, want empty", c.text)
	}
}

func TestConsoleInput_HistoryIsBounded(t *testing.T) {
	var c consoleInput
	for i := 0; i < maxConsoleHistory+5; i++ {
		c.typeRunes([]rune(fmt.Sprintf("cmd %d", i)))
		c.submit()
	}
	if len(c.history) != maxConsoleHistory {
		t.Errorf("len(history) = %d, want %d", len(c.history), maxConsoleHistory)
	}
}

func TestConsoleInput_ToggleClears(t *testing.T) {
	var c consoleInput
	c.toggle()
	c.typeRunes([]rune("half typed"))
	c.toggle()
	if c.active || c.text != "" {
		t.Errorf("console = %+v after closing, want inactive and empty", c)
	}
}

func TestConsoleInput_ScrollAndVisible(t *testing.T) {
	var c consoleInput
	output := make([]string, 30)
	for i := range output {
		output[i] = fmt.Sprint(i)
	}

	got := c.visible(output)
	if len(got) != consoleLines || got[len(got)-1] != "29" {
		t.Errorf("visible = %v, want the last %d lines", got, consoleLines)
	}

	c.scroll(consoleScrollStep, len(output))
	got = c.visible(output)
	if got[len(got)-1] != "19" {
		t.Errorf("visible ends at %q after scrolling, want 19", got[len(got)-1])
	}

	c.scroll(100, len(output))
	if got := c.visible(output); len(got) != 0 {
		t.Errorf("visible = %v scrolled past the top, want empty", got)
	}
	c.scroll(-100, len(output))
	if c.scrollOffset != 0 {
		t.Errorf("scrollOffset = %d, want clamped to 0", c.scrollOffset)
	}
}
