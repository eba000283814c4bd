// ABOUTME: Interactive AI chat session on the configured provider.
// ABOUTME: Plain stdin/stdout loop; exit, quit, or EOF ends it.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/nutrilog/nutrilog/internal/ai"
	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with the configured AI provider",
	Long: `Start an interactive chat session with the configured AI provider.
Handy for nutrition questions without leaving the terminal.

Type 'exit' or 'quit' (or press Ctrl-D) to leave.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		provider, err := ai.NewProvider(ctx, cfg.GetAIProvider(), cfg.AIModel)
		if err != nil {
			return err
		}
		worker := ai.NewWorker(provider)

		fmt.Printf("Chatting with %s. Type 'exit' to leave.\n\n", provider.Name())

		faint := color.New(color.Faint)
		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("You: ")
			if !scanner.Scan() {
				fmt.Println()
				return scanner.Err()
			}
			msg := strings.TrimSpace(scanner.Text())
			if msg == "" {
				continue
			}
			if msg == "exit" || msg == "quit" {
				return nil
			}

			faint.Println("AI: Thinking...")
			response, err := worker.Ask(ctx, msg)
			if errors.Is(err, ai.ErrRequestInFlight) {
				fmt.Println("AI: Still working on the last message.")
				continue
			}
			if err != nil {
				return fmt.Errorf("AI request failed: %w", err)
			}
			fmt.Printf("AI: %s\n\n", response)
		}
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
