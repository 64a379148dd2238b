package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"geochat/internal/chat"
	"geochat/internal/config"
	"geochat/internal/credentials"
	"geochat/internal/history"
	"geochat/internal/llm"
	"geochat/internal/secrets"
	"geochat/internal/speech"
)

// consoleNotifier prints transient notices; on a device these would be
// snackbars with an open-settings action.
type consoleNotifier struct{}

func (consoleNotifier) Notify(text string) {
	fmt.Printf("! %s\n", text)
}

func (consoleNotifier) MissingCredential() {
	fmt.Println("! no API key configured, save one with /key <value>")
}

// consoleInput: the terminal consumes the line as it is read, there is
// nothing to clear.
type consoleInput struct{}

func (consoleInput) Clear() {}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg := config.New()

	store, err := secrets.NewFileStore(cfg.SecretsFilePath)
	if err != nil {
		log.Fatalf("failed to init secrets store: %v", err)
	}

	var creds credentials.Source
	switch cfg.CredentialMode {
	case config.ModeStatic:
		creds = credentials.Static{Key: cfg.GeminiAPIKey}
	default:
		creds = credentials.NewStoreBacked(store)
	}

	client, err := llm.NewClient(cfg.LLMProvider, llm.Options{
		GeminiBaseURL:  cfg.GeminiBaseURL,
		GeminiModel:    cfg.GeminiModel,
		GeminiSampling: cfg.GeminiSampling,
		OpenAIBaseURL:  cfg.OpenAIBaseURL,
		OpenAIModel:    cfg.OpenAIModel,
	})
	if err != nil {
		log.Fatalf("failed to create llm client: %v", err)
	}

	var engine speech.Engine
	if cfg.TTSCommand != "" {
		engine = speech.NewExecEngine(cfg.TTSCommand)
	} else {
		engine = speech.NewNopEngine()
	}
	engine.SetLanguage(cfg.TTSLanguage)
	engine.SetPitch(cfg.TTSPitch)
	engine.SetSpeechRate(cfg.TTSRate)

	ctrl := chat.New(creds, client, engine, consoleNotifier{}, consoleInput{})
	defer func(ctrl *chat.Controller) {
		if err := ctrl.Close(); err != nil {
			log.Printf("teardown: %v", err)
		}
	}(ctrl)

	fmt.Println("geochat: ask about a place. /key <value> saves the API key, /speak replays the last answer, /quit exits")
	runLoop(ctrl, store)
}

func runLoop(ctrl *chat.Controller, store secrets.Store) {
	scanner := bufio.NewScanner(os.Stdin)
	rendered := 0

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "/quit":
			return
		case strings.HasPrefix(line, "/key"):
			value := strings.TrimSpace(strings.TrimPrefix(line, "/key"))
			if value == "" {
				fmt.Println("! usage: /key <value>")
				continue
			}
			if err := store.Set(secrets.KeyGeminiAPIKey, value); err != nil {
				log.Printf("failed to save key: %v", err)
				continue
			}
			fmt.Println("saved")
		case line == "/speak":
			if last, ok := ctrl.LastAssistant(); ok {
				ctrl.Speak(last.Text)
			} else {
				fmt.Println("! nothing to speak yet")
			}
		case line == "/history":
			rendered = render(ctrl.Messages(), 0)
		default:
			if err := ctrl.Submit(context.Background(), line); err != nil {
				fmt.Printf("! %v\n", err)
				continue
			}
			rendered += render(ctrl.Messages(), rendered)
		}
	}
}

func render(msgs []history.Message, from int) int {
	printed := 0
	for _, msg := range msgs[from:] {
		prefix := "you"
		if msg.Origin == history.OriginAssistant {
			prefix = "bot"
		}
		fmt.Printf("[%s %s] %s\n", msg.Timestamp.Format("15:04:05"), prefix, msg.Text)
		printed++
	}
	return printed
}
