package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"

	"personapilot/internal/session"
)

// runInteractive drives the numbered-menu session loop: pick a persona, ask
// questions, switch personas, exit.
func runInteractive(ctx context.Context, a *app) error {
	reader := bufio.NewReader(os.Stdin)

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		renderer = nil
	}

	fmt.Println(titleStyle.Render("🤖 Welcome to PersonaPilot!"))
	fmt.Println("Your AI assistant with customizable personas.")

	personas := a.session.Registry().List()
	personaName, err := selectPersona(reader, personas)
	if err != nil {
		return err
	}
	showPersona(a, personaName)

	query, err := readLine(reader, "\n💬 Enter your prompt: ")
	if err != nil {
		return err
	}
	answer(ctx, a, renderer, personaName, query)

	for {
		fmt.Println("\n📋 Options:")
		fmt.Println(menuStyle.Render("  1️⃣  Ask another question with the same persona"))
		fmt.Println(menuStyle.Render("  2️⃣  Change persona"))
		fmt.Println(menuStyle.Render("  3️⃣  Exit"))

		choice, err := readLine(reader, "\n🔍 Enter your choice (1-3): ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			query, err := readLine(reader, "\n💬 Enter your prompt: ")
			if err != nil {
				return err
			}
			answer(ctx, a, renderer, personaName, query)
		case "2":
			personaName, err = selectPersona(reader, personas)
			if err != nil {
				return err
			}
			showPersona(a, personaName)
			query, err := readLine(reader, "\n💬 Enter your prompt: ")
			if err != nil {
				return err
			}
			answer(ctx, a, renderer, personaName, query)
		case "3":
			fmt.Println("\n👋 Goodbye!")
			return nil
		default:
			fmt.Println(warnStyle.Render("⚠️  Please enter a number between 1 and 3"))
		}
	}
}

// selectPersona shows the numbered persona list and reads a choice until it
// gets a valid one.
func selectPersona(reader *bufio.Reader, personas []string) (string, error) {
	fmt.Println("\n📋 Available personas:")
	for i, name := range personas {
		fmt.Printf("  %d. %s\n", i+1, personaStyle.Render(name))
	}

	for {
		input, err := readLine(reader, "\n🔍 Select a persona (enter number): ")
		if err != nil {
			return "", err
		}
		index, err := strconv.Atoi(input)
		if err != nil {
			fmt.Println(warnStyle.Render("⚠️  Please enter a valid number"))
			continue
		}
		if index < 1 || index > len(personas) {
			fmt.Println(warnStyle.Render(fmt.Sprintf("⚠️  Please enter a number between 1 and %d", len(personas))))
			continue
		}
		return personas[index-1], nil
	}
}

func showPersona(a *app, name string) {
	info, err := a.session.Registry().Describe(name)
	if err != nil {
		return
	}
	fmt.Printf("\n✨ You selected: %s\n", personaStyle.Render(name))
	fmt.Printf("   %s\n", info.Description)
	if len(info.PersonalityTraits) > 0 {
		fmt.Printf("   Traits: %s\n", strings.Join(info.PersonalityTraits, ", "))
	}
}

// answer runs one turn and prints the result. Errors show as a one-line
// message and return control to the menu.
func answer(ctx context.Context, a *app, renderer *glamour.TermRenderer, personaName, query string) {
	fmt.Println("\n⏳ Generating response...")

	out, err := a.session.Respond(ctx, personaName, query, session.Options{
		Mode: session.Mode(a.cfg.Output.DefaultFormat),
	})
	if err != nil {
		fmt.Println(errorStyle.Render("❌ Error: " + err.Error()))
		return
	}

	if renderer != nil {
		if pretty, err := renderer.Render(out); err == nil {
			fmt.Printf("\n✅ Response:\n%s", pretty)
			return
		}
	}
	fmt.Printf("\n✅ Response:\n%s\n", out)
}

func readLine(reader *bufio.Reader, promptText string) (string, error) {
	fmt.Print(promptText)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
