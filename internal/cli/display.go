package cli

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/abdorrahmani/polysolve/internal/alphabet"
	"github.com/abdorrahmani/polysolve/internal/corpus"
	"github.com/abdorrahmani/polysolve/internal/solver"
	"github.com/abdorrahmani/polysolve/internal/utils"
)

// ConsoleDisplay renders solver output to the terminal
type ConsoleDisplay struct {
	theme    utils.Theme
	progress *color.Color
}

// NewConsoleDisplay creates a new console display handler
func NewConsoleDisplay() *ConsoleDisplay {
	return &ConsoleDisplay{
		theme:    utils.DefaultTheme,
		progress: color.New(color.FgHiGreen),
	}
}

// ShowWelcome displays the session banner
func (d *ConsoleDisplay) ShowWelcome(cipherName string) {
	title := cases.Title(language.English).String(cipherName)
	fmt.Printf("%s\n", d.theme.Format(fmt.Sprintf("polysolve - %s cryptanalysis", title), "bold brightCyan"))
	fmt.Printf("%s\n", d.theme.Format("----------------------------------------", "dim blue"))
}

// ShowError displays an error message
func (d *ConsoleDisplay) ShowError(err error) {
	fmt.Printf("\n%s %s\n", d.theme.Format("Error:", "bold brightRed"), d.theme.Format(err.Error(), "red"))
}

// ShowProgress prints one live search progress line
func (d *ConsoleDisplay) ShowProgress(format string, args ...interface{}) {
	// nolint:errcheck // Progress output is best effort
	d.progress.Printf(format+"\n", args...)
}

// ShowResult displays the solved state, the recovered plaintext and the
// dictionary report.
func (d *ConsoleDisplay) ShowResult(res *solver.Result, elapsed time.Duration, dict *corpus.Dictionary) {
	v := utils.NewVisualizer()
	v.AddStep(fmt.Sprintf("Search finished in %s", utils.FormatDuration(elapsed)))
	v.AddScoreStep("Score", res.Score)
	if res.CribTotal > 0 {
		v.AddTextStep("Crib matches", fmt.Sprintf("%d/%d", res.CribMatches, res.CribTotal))
	}
	v.AddSeparator()
	v.AddAlphabetStep("PT alphabet", res.State.PT.String())
	v.AddAlphabetStep("CT alphabet", res.State.CT.String())
	v.AddAlphabetStep("Cycleword  ", alphabet.ToText(res.State.Cycleword()))
	v.Display()

	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Cipher", "Period", "PT Prefix", "CT Prefix", "Score"})
	// nolint:errcheck // Table operations are safe to ignore errors
	table.Append([]string{
		res.Type.String(),
		strconv.Itoa(res.State.L),
		strconv.Itoa(res.State.PTPrefix),
		strconv.Itoa(res.State.CTPrefix),
		fmt.Sprintf("%.6f", res.Score),
	})
	// nolint:errcheck // Table render is safe to ignore errors
	table.Render()

	fmt.Printf("\n%s\n", d.theme.Format("Plaintext:", "bold brightGreen"))
	for _, line := range wrap(alphabet.ToText(res.Plaintext), utils.GetTerminalWidth()) {
		fmt.Printf("%s\n", d.theme.Format(line, "brightGreen"))
	}

	if dict.Len() > 0 {
		d.showWords(alphabet.ToText(res.Plaintext), dict)
	}
}

// showWords prints the dictionary words found in the plaintext.
func (d *ConsoleDisplay) showWords(plaintext string, dict *corpus.Dictionary) {
	words := dict.Match(plaintext)
	fmt.Printf("\n%s %s\n",
		d.theme.Format("Dictionary words found:", "bold brightCyan"),
		d.theme.Format(strconv.Itoa(len(words)), "brightYellow"))
	if len(words) == 0 {
		return
	}
	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"#", "Word", "Length"})
	for i, w := range words {
		// nolint:errcheck // Table operations are safe to ignore errors
		table.Append([]string{strconv.Itoa(i + 1), w, strconv.Itoa(len(w))})
	}
	// nolint:errcheck // Table render is safe to ignore errors
	table.Render()
}

func wrap(text string, width int) []string {
	if width < 20 {
		width = 20
	}
	var lines []string
	for len(text) > width {
		lines = append(lines, text[:width])
		text = text[width:]
	}
	if len(text) > 0 {
		lines = append(lines, text)
	}
	return lines
}

// Steps prints visualizer steps collected elsewhere, such as the
// benchmark report.
func (d *ConsoleDisplay) Steps(steps []string) {
	for _, step := range steps {
		fmt.Println(step)
	}
	fmt.Printf("%s\n", d.theme.Format("----------------------------------------", "dim blue"))
}
