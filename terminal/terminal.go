package terminal

import (
	"fmt"
	"time"

	"github.com/vadiminshakov/factorial/core/config"
	"github.com/vadiminshakov/factorial/pkg/logging"
	"github.com/vadiminshakov/factorial/ui"
)

// spinnerDelay is how long an evaluation may run before a spinner is shown.
const spinnerDelay = 200 * time.Millisecond

func RunTerminal(cfg config.Config) error {
	repl, err := ui.NewREPL(cfg.HistoryFile)
	if err != nil {
		return err
	}
	defer repl.Close()
	repl.ShowWelcome()

	for {
		input, shouldExit, reconfigured := repl.ReadInput()
		if shouldExit {
			break
		}

		if reconfigured {
			reloadConfig()
			continue
		}

		if input == "" {
			continue
		}

		out, err := evaluateWithSpinner(input)
		if err != nil {
			ui.ShowError(err)
			continue
		}
		ui.ShowResult(out)
	}

	return nil
}

func reloadConfig() {
	cfg, err := config.LoadOrDefault()
	if err != nil {
		logging.L().Debug("failed to reload configuration", "err", err)
		ui.ShowWarning("configuration not reloaded, using defaults: " + err.Error())
	}
	if err := ApplyConfig(cfg); err != nil {
		logging.L().Debug("failed to apply configuration", "err", err)
		ui.ShowWarning("configuration not applied: " + err.Error())
	}
}

type outcome struct {
	out string
	err error
}

// evaluateWithSpinner shows a spinner only for evaluations slower than spinnerDelay.
func evaluateWithSpinner(input string) (string, error) {
	done := make(chan outcome, 1)
	go func() {
		out, err := Evaluate(input)
		done <- outcome{out: out, err: err}
	}()

	select {
	case o := <-done:
		return o.out, o.err
	case <-time.After(spinnerDelay):
	}

	start := time.Now()
	spinner := ui.ShowComputing(input)
	defer spinner.Stop()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case o := <-done:
			return o.out, o.err
		case <-ticker.C:
			spinner.UpdateMessage(elapsedMessage(input, time.Since(start)))
		}
	}
}

func elapsedMessage(input string, elapsed time.Duration) string {
	return fmt.Sprintf("%s (%s)", input, elapsed.Round(time.Second))
}
