package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/pkg/errors"

	"github.com/vadiminshakov/factorial/core/config"
	"github.com/vadiminshakov/factorial/core/tools"
)

// REPLCommands stores command history and provides REPL functionality
type REPLCommands struct {
	history     []string
	historyFile string
	readline    *readline.Instance
}

// createReadline creates a new readline instance with standard configuration
func createReadline(historyFile string) (*readline.Instance, error) {
	return readline.NewEx(&readline.Config{
		Prompt:            "",
		HistoryFile:       historyFile,
		AutoComplete:      newCompleter(),
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
}

// NewREPL creates a new REPL interface. An empty historyFile keeps history in memory only.
func NewREPL(historyFile string) (*REPLCommands, error) {
	rl, err := createReadline(historyFile)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize readline")
	}

	return &REPLCommands{
		history:     make([]string, 0),
		historyFile: historyFile,
		readline:    rl,
	}, nil
}

var builtinCommands = []string{"help", "clear", "history", "tools", "stats", "reconfig", "exit"}

// newCompleter provides auto-completion for built-in commands and tool names
func newCompleter() *readline.PrefixCompleter {
	var items []readline.PrefixCompleterInterface
	for _, cmd := range builtinCommands {
		items = append(items, readline.PcItem(cmd))
	}
	for _, name := range tools.List() {
		items = append(items, readline.PcItem(name))
	}
	return readline.NewPrefixCompleter(items...)
}

// Close releases REPL resources
func (r *REPLCommands) Close() {
	if r.readline != nil {
		r.readline.Close()
	}
}

// ShowWelcome prints the welcome message
func (r *REPLCommands) ShowWelcome() {
	fmt.Println()
	fmt.Println(Bold(BrightCyan("n! exact factorial calculator")))
	fmt.Println()
	fmt.Println(Info("Enter a number, \"5!\", or a tool call such as \"calc factorial(20)/factorial(18)\""))
	fmt.Println(Dim("Available commands: " + strings.Join(builtinCommands, ", ")))
	fmt.Println()
}

// GetPrompt returns a styled prompt for user input
func (r *REPLCommands) GetPrompt() string {
	timestamp := time.Now().Format("15:04")
	return fmt.Sprintf("%s [%s] %s ",
		BrightBlue("n!"),
		Dim(timestamp),
		BrightGreen("❯"))
}

// ReadInput reads user input and handles built-in commands.
// It returns the input to evaluate, whether to exit, and whether the
// configuration was changed through reconfig.
func (r *REPLCommands) ReadInput() (string, bool, bool) {
	r.readline.SetPrompt(r.GetPrompt())

	line, err := r.readline.Readline()
	if err != nil {
		if err == readline.ErrInterrupt {
			return "", false, false
		}
		return "", true, false
	}

	inputStr := strings.TrimSpace(line)

	if inputStr == "" {
		return "", false, false
	}

	r.history = append(r.history, inputStr)

	switch inputStr {
	case "exit", "quit":
		return "", true, false

	case "help":
		r.showHelp()
		return "", false, false

	case "clear":
		r.clear()
		return "", false, false

	case "history":
		r.showHistory()
		return "", false, false

	case "tools":
		showTools()
		return "", false, false

	case "stats":
		r.showStats()
		return "", false, false

	case "reconfig":
		if r.reconfig() {
			return "", false, true
		}
		return "", false, false

	default:
		return inputStr, false, false
	}
}

// showHelp prints built-in command help
func (r *REPLCommands) showHelp() {
	helpText := `Evaluate:
  20                 – 20!
  20!                – same as above
  factorial 20       – same as above
  factorial_table 0 10
  calc factorial(20)/factorial(18)

General:
  help     – show this help
  clear    – clear the screen
  history  – show command history
  tools    – list available tools
  stats    – show tool usage for this session
  reconfig – recreate configuration
  exit     – quit the program`

	fmt.Println(helpText)
}

// clear clears the terminal screen
func (r *REPLCommands) clear() {
	fmt.Print("\033[2J\033[H")
	fmt.Println(BrightCyan("🧹 Screen cleared"))
	fmt.Println()
}

// showHistory prints command history
func (r *REPLCommands) showHistory() {
	fmt.Println()
	if len(r.history) == 0 {
		fmt.Println(Info("Command history is empty"))
		fmt.Println()
		return
	}

	fmt.Println(BrightCyan("📜 Command history:"))
	fmt.Println()

	start := 0
	if len(r.history) > 10 {
		start = len(r.history) - 10
		fmt.Println(Dim("... (showing last 10 commands)"))
	}

	for i := start; i < len(r.history); i++ {
		fmt.Printf("%s %s\n",
			Dim(fmt.Sprintf("%2d.", i+1)),
			BrightWhite(truncate(r.history[i], 60)))
	}
	fmt.Println()
}

func truncate(s string, limit int) string {
	if len(s) > limit {
		return s[:limit-3] + "..."
	}
	return s
}

func showTools() {
	fmt.Println()
	for _, def := range tools.GetToolDescriptions() {
		fmt.Printf("%s %s\n", Tool(def.Name), Dim(def.Description))
	}
	fmt.Println()
}

func (r *REPLCommands) showStats() {
	out, err := tools.Execute("session_stats", nil)
	if err != nil {
		ShowError(err)
		return
	}
	fmt.Println(out)
}

// ShowError prints the error in a formatted style
func ShowError(err error) {
	fmt.Println(Error(err.Error()))
}

// ShowWarning prints a non-fatal problem
func ShowWarning(msg string) {
	fmt.Println(Warning(msg))
}

// ShowResult prints a tool result
func ShowResult(out string) {
	fmt.Print(FormatToolOutput(out))
}

func (r *REPLCommands) reconfig() bool {
	fmt.Println()

	if r.readline != nil {
		r.readline.Close()
	}

	_, err := config.InteractiveSetup()

	rl, reinitErr := createReadline(r.historyFile)
	if reinitErr != nil {
		fmt.Println(Error("failed to reinitialize readline: " + reinitErr.Error()))
		return false
	}
	r.readline = rl

	if err != nil {
		fmt.Println(Error("failed to reconfigure: " + err.Error()))
		fmt.Println()
		return false
	}
	fmt.Println(Success("configuration updated."))
	fmt.Println()
	return true
}
