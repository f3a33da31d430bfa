package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"nko-content-assistant/pkg/store"
	"nko-content-assistant/pkg/wizard"

	"github.com/fatih/color"
)

// Interactive dry run of the dialogue graph. No database, no backends:
// effects are echoed instead of executed, so the questionnaire flow can
// be exercised end to end from a terminal.

var effectNames = map[wizard.Effect]string{
	wizard.EffectListOrgs:      "LIST_ORGS",
	wizard.EffectListOrgNames:  "LIST_ORG_NAMES",
	wizard.EffectSelectOrg:     "SELECT_ORG",
	wizard.EffectSaveOrg:       "SAVE_ORG",
	wizard.EffectGenerateText:  "GENERATE_TEXT",
	wizard.EffectRegenerate:    "REGENERATE",
	wizard.EffectRefine:        "REFINE",
	wizard.EffectSavePost:      "SAVE_POST",
	wizard.EffectSaveEdited:    "SAVE_EDITED",
	wizard.EffectGenerateImage: "GENERATE_IMAGE",
	wizard.EffectSaveImage:     "SAVE_IMAGE",
}

func main() {
	bot := color.New(color.FgCyan)
	meta := color.New(color.FgYellow)
	prompt := color.New(color.FgGreen, color.Bold)

	machine := wizard.NewMachine()
	sess := store.NewSession("simulate")

	fmt.Println("=== Dialogue Simulation ===")
	fmt.Println("Type a number to pick a menu option, or free text. Ctrl+D exits.")

	res := machine.Advance(sess, store.Text("/start"))
	options := render(bot, meta, res)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		prompt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		inbound := store.Text(line)
		if n, err := strconv.Atoi(line); err == nil && n >= 1 && n <= len(options) {
			inbound = store.Select(options[n-1].Value)
		}

		res = machine.Advance(sess, inbound)
		options = render(bot, meta, res)
	}
}

func render(bot, meta *color.Color, res wizard.Result) []store.Option {
	for _, msg := range res.Out.Messages {
		bot.Println(msg)
	}
	if name, ok := effectNames[res.Effect]; ok {
		if res.Value != "" {
			meta.Printf("[effect: %s %q]\n", name, res.Value)
		} else {
			meta.Printf("[effect: %s]\n", name)
		}
	}
	for i, opt := range res.Out.Options {
		meta.Printf("  %d. %s\n", i+1, opt.Label)
	}
	return res.Out.Options
}
