package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/Macmod/ppolicyx/log"
	"github.com/Macmod/ppolicyx/ppolicy"
	"github.com/c-bata/go-prompt"
)

var suggestions = []prompt.Suggest{
	{Text: "decode", Description: "Decode a control value given as hex or base64"},
	{Text: "error", Description: "Look up a password policy error code"},
	{Text: "set", Description: "Set a configuration parameter"},
	{Text: "show", Description: "Show current configuration"},
	{Text: "help", Description: "Show help message"},
	{Text: "exit", Description: "Exit the program"},
}

var setParamSuggestions = []prompt.Suggest{
	{Text: "base64", Description: "Read decode input as base64 (on/off)"},
	{Text: "control", Description: "Treat input as a whole Control element (on/off)"},
	{Text: "trace", Description: "Trace each decoded element (on/off)"},
}

func completer(in prompt.Document) []prompt.Suggest {
	w := in.GetWordBeforeCursor()
	if w == "" {
		return []prompt.Suggest{}
	}

	args := strings.Split(in.TextBeforeCursor(), " ")
	if len(args) <= 1 {
		return prompt.FilterHasPrefix(suggestions, w, true)
	}

	switch args[0] {
	case "set":
		return prompt.FilterHasPrefix(setParamSuggestions, w, true)
	default:
		return []prompt.Suggest{}
	}
}

func executor(in string) {
	in = strings.TrimSpace(in)
	blocks := strings.Split(in, " ")

	if len(blocks) == 0 || blocks[0] == "" {
		return
	}

	switch blocks[0] {
	case "exit":
		fmt.Println("Bye!")
		os.Exit(0)
	case "decode":
		if len(blocks) < 2 {
			fmt.Println("Usage: decode <hex or base64>")
			return
		}
		data, err := parseInput(strings.Join(blocks[1:], ""))
		if err != nil {
			red.Printf("Invalid input: %v\n", err)
			return
		}
		if err := report(data); err != nil {
			red.Printf("Decode failed: %v\n", err)
		}
	case "error":
		if len(blocks) < 2 {
			fmt.Println("Usage: error <code>")
			return
		}
		handleErrorCommand(blocks[1])
	case "set":
		if len(blocks) < 3 {
			fmt.Println("Usage: set <parameter> <on|off>")
			return
		}
		handleSetCommand(blocks[1], blocks[2])
	case "show":
		showCurrentConfig()
	case "help":
		showHelp()
	default:
		fmt.Printf("Unknown command: '%s'\n", blocks[0])
	}
}

func RunShell() {
	p := prompt.New(
		executor,
		completer,
		prompt.OptionPrefix("ppolicyx> "),
		prompt.OptionTitle("ppolicyx interactive shell"),
		prompt.OptionAddKeyBind(prompt.KeyBind{
			Key: prompt.ControlD,
			Fn: func(b *prompt.Buffer) {
				fmt.Println("Bye!")
				os.Exit(0)
			},
		}),
	)
	p.Run()
}

func handleErrorCommand(codeStr string) {
	var code int64
	if _, err := fmt.Sscanf(codeStr, "%d", &code); err != nil {
		fmt.Printf("Invalid error code: %s\n", codeStr)
		return
	}
	fmt.Printf("Error %d: %s\n", code, ppolicy.ErrorText(code))
}

func handleSetCommand(param string, value string) {
	enabled := value == "on" || value == "true"
	switch param {
	case "base64":
		useBase64 = enabled
	case "control":
		fromControl = enabled
	case "trace":
		if enabled {
			ppolicy.TraceLogger = log.Log
		} else {
			ppolicy.TraceLogger = nil
		}
		traceNodes = enabled
	default:
		fmt.Printf("Unknown parameter: %s\n", param)
		return
	}
	fmt.Printf("%s = %v\n", param, enabled)
}

func showCurrentConfig() {
	fmt.Printf("[Settings]\n")
	fmt.Printf("  Base64 input: %v\n", useBase64)
	fmt.Printf("  Control element input: %v\n", fromControl)
	fmt.Printf("  Trace decoding: %v\n", traceNodes)
	fmt.Println("")
}

func showHelp() {
	fmt.Println("[Available commands]")
	fmt.Println("  decode <value>            Decode a password policy control value")
	fmt.Println("  error <code>              Look up a password policy error code")
	fmt.Println("  set <parameter> <on|off>  Set a configuration parameter")
	fmt.Println("  show                      Show current configuration")
	fmt.Println("  help                      Show this help message")
	fmt.Println("  exit                      Exit the program")
	fmt.Println("\n[Parameters]")
	fmt.Println("  base64   - Read decode input as base64 instead of hex")
	fmt.Println("  control  - Treat input as a whole Control element")
	fmt.Println("  trace    - Trace each decoded element")
	fmt.Println("")
}
