package tui

import (
	"strings"
	"testing"

	"roster-cli/internal/i18n"
	"roster-cli/internal/nav"

	tea "github.com/charmbracelet/bubbletea"
	xansi "github.com/charmbracelet/x/ansi"
)

func newTestApp(t *testing.T) appModel {
	t.Helper()
	return newAppModel(Options{Catalog: i18n.MustLoad("en")})
}

func typeText(m appModel, s string) appModel {
	mm, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return mm.(appModel)
}

func press(m appModel, k tea.KeyType) appModel {
	mm, _ := m.Update(tea.KeyMsg{Type: k})
	return mm.(appModel)
}

func entryNames(m appModel) []string {
	var out []string
	for _, e := range m.entry.state.Entries() {
		out = append(out, e.Name)
	}
	return out
}

func TestApp_StartsOnEntryWithSeed(t *testing.T) {
	m := newTestApp(t)
	if m.shown != nav.ScreenEntry {
		t.Fatalf("expected entry screen, got %v", m.shown)
	}
	if got := strings.Join(entryNames(m), ","); got != "Tanu,Tina,Tono" {
		t.Fatalf("unexpected seed: %q", got)
	}
}

func TestApp_TypingUpdatesDraftAndEnterCommits(t *testing.T) {
	m := newTestApp(t)
	m = typeText(m, "Budi")
	if got := m.entry.state.Draft().Name; got != "Budi" {
		t.Fatalf("expected draft Budi, got %q", got)
	}

	m = press(m, tea.KeyEnter)
	m = typeText(m, "Siti")
	m = press(m, tea.KeyEnter)

	if got := strings.Join(entryNames(m), ","); got != "Tanu,Tina,Tono,Budi,Siti" {
		t.Fatalf("unexpected entries: %q", got)
	}
	if got := m.entry.input.Value(); got != "" {
		t.Fatalf("expected input cleared after commit, got %q", got)
	}
}

func TestApp_BlankCommitIsSilent(t *testing.T) {
	m := newTestApp(t)
	m = typeText(m, "   ")
	m = press(m, tea.KeyEnter)

	if n := m.entry.state.Len(); n != 3 {
		t.Fatalf("expected list unchanged, got %d entries", n)
	}
	if got := m.entry.input.Value(); got != "   " {
		t.Fatalf("expected input left as typed, got %q", got)
	}
}

func TestApp_AddButtonViaFocus(t *testing.T) {
	m := newTestApp(t)
	m = typeText(m, "Budi")
	m = press(m, tea.KeyTab) // add
	if m.entry.focus != focusAdd {
		t.Fatalf("expected add focused, got %v", m.entry.focus)
	}
	m = press(m, tea.KeyEnter)
	if n := m.entry.state.Len(); n != 4 {
		t.Fatalf("expected 4 entries, got %d", n)
	}

	m = press(m, tea.KeyShiftTab)
	if m.entry.focus != focusInput {
		t.Fatalf("expected input focused after shift+tab, got %v", m.entry.focus)
	}
}

func TestApp_FinishNavigatesWithSnapshot(t *testing.T) {
	m := newTestApp(t)
	m = typeText(m, "Budi")
	m = press(m, tea.KeyEnter)
	want := m.entry.state.Snapshot()

	m = press(m, tea.KeyTab)
	m = press(m, tea.KeyTab) // finish
	m = press(m, tea.KeyEnter)

	if m.shown != nav.ScreenResult {
		t.Fatalf("expected result screen, got %v", m.shown)
	}
	if m.result.payload != want {
		t.Fatalf("expected payload %q, got %q", want, m.result.payload)
	}
	if m.entry != nil {
		t.Fatalf("expected entry screen to be released while result is shown")
	}
}

func TestApp_BackFromResultRecreatesFreshEntry(t *testing.T) {
	m := newTestApp(t)
	m = typeText(m, "Budi")
	m = press(m, tea.KeyEnter)
	m = press(m, tea.KeyShiftTab) // finish
	m = press(m, tea.KeyEnter)
	if m.shown != nav.ScreenResult {
		t.Fatalf("expected result screen, got %v", m.shown)
	}

	m = press(m, tea.KeyEsc)
	if m.shown != nav.ScreenEntry {
		t.Fatalf("expected entry screen after back, got %v", m.shown)
	}
	if got := strings.Join(entryNames(m), ","); got != "Tanu,Tina,Tono" {
		t.Fatalf("expected fresh seeded list, got %q", got)
	}
	if m.entry.focus != focusInput || !m.entry.input.Focused() {
		t.Fatalf("expected input focused on re-entry")
	}
}

func TestApp_EscOnEntryQuits(t *testing.T) {
	m := newTestApp(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestApp_QTypedIntoInput(t *testing.T) {
	m := newTestApp(t)
	m = typeText(m, "q")
	if got := m.entry.state.Draft().Name; got != "q" {
		t.Fatalf("expected q typed into draft, got %q", got)
	}
}

func TestApp_EntryViewShowsEntries(t *testing.T) {
	m := newTestApp(t)
	mm, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = mm.(appModel)
	m = typeText(m, "Budi")
	m = press(m, tea.KeyEnter)

	v := xansi.Strip(m.View())
	for _, want := range []string{"Enter Item", "add", "Finish", "Tanu", "Tono", "Budi"} {
		if !strings.Contains(v, want) {
			t.Fatalf("expected entry view to contain %q:\n%s", want, v)
		}
	}
	if lines := strings.Count(m.View(), "\n") + 1; lines != 30 {
		t.Fatalf("expected frame of 30 lines, got %d", lines)
	}
}

func TestApp_ResultViewShowsPayloadVerbatim(t *testing.T) {
	m := newTestApp(t)
	mm, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = mm.(appModel)

	payload := m.entry.state.Snapshot()
	m = press(m, tea.KeyShiftTab)
	m = press(m, tea.KeyEnter)

	v := xansi.Strip(m.View())
	if !strings.Contains(v, "Result") {
		t.Fatalf("expected result title:\n%s", v)
	}
	if !strings.Contains(v, payload) {
		t.Fatalf("expected payload %q verbatim in view:\n%s", payload, v)
	}
}

func TestApp_ResultWithoutPayloadRendersNothing(t *testing.T) {
	m := newTestApp(t)
	mm, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = mm.(appModel)
	m.nav.Navigate("result")
	m.syncScreen()

	if m.result.payload != "" {
		t.Fatalf("expected empty payload, got %q", m.result.payload)
	}
	if got := strings.TrimSpace(xansi.Strip(m.result.body.View())); got != "" {
		t.Fatalf("expected empty body, got %q", got)
	}
	if v := xansi.Strip(m.View()); !strings.Contains(v, "Result") {
		t.Fatalf("expected result title:\n%s", v)
	}
}

func TestApp_LongDraftIsNotTruncated(t *testing.T) {
	m := newTestApp(t)
	name := strings.Repeat("n", 250)
	m = typeText(m, name)
	if got := m.entry.state.Draft().Name; got != name {
		t.Fatalf("expected draft of %d runes, got %d", len(name), len(got))
	}

	m = press(m, tea.KeyEnter)
	names := entryNames(m)
	if got := names[len(names)-1]; got != name {
		t.Fatalf("expected committed entry of %d runes, got %d", len(name), len(got))
	}
}

func TestApp_CtrlCQuitsFromAnyFocus(t *testing.T) {
	for _, tabs := range []int{0, 1, 2} {
		m := typeText(newTestApp(t), "Budi")
		for i := 0; i < tabs; i++ {
			m = press(m, tea.KeyTab)
		}
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
		if cmd == nil {
			t.Fatalf("expected quit command")
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("expected tea.QuitMsg")
		}
	}
}

func TestApp_BackspaceOnButtonDoesNotQuit(t *testing.T) {
	m := newTestApp(t)
	m = press(m, tea.KeyTab) // add
	mm, cmd := m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m = mm.(appModel)

	if cmd != nil {
		if _, ok := cmd().(tea.QuitMsg); ok {
			t.Fatalf("expected backspace on a button not to quit")
		}
	}
	if m.shown != nav.ScreenEntry || m.entry.focus != focusAdd {
		t.Fatalf("expected entry screen with add focused, got %v / %v", m.shown, m.entry.focus)
	}
}

func TestApp_QOnButtonQuits(t *testing.T) {
	m := newTestApp(t)
	m = press(m, tea.KeyTab) // add
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}
