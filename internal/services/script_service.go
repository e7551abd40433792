package services

import (
	"context"
	"log"

	"itacatech/internal/gemini"
	"itacatech/internal/models"
)

// systemInstruction is the fixed persona of the sales-script assistant.
const systemInstruction = `Você é um especialista sênior em SDR (Sales Development Representative) e Vendas B2B da empresa ItacaTech.

Seu objetivo é ajudar a equipe de vendas a:
1. Criar scripts de abordagem (Cold Call, Email, LinkedIn, WhatsApp) persuasivos e curtos.
2. Criar respostas para quebra de objeções comuns (ex: "Não tenho interesse", "Está caro", "Já tenho fornecedor").
3. Analisar respostas de leads e sugerir o próximo passo.

Tom de voz: Profissional, assertivo, empático e focado em resultados.
Use formatação Markdown para deixar o texto claro (negrito, listas).
Contexto da ItacaTech: Somos especialistas em terceirização de prospecção e hunting.`

// WelcomeMessage opens every new conversation.
const WelcomeMessage = "Olá! Sou seu assistente de vendas ItacaTech. Posso ajudar a criar scripts de abordagem, quebrar objeções ou analisar respostas de leads. O que você precisa hoje?"

// ScriptService drives the AI chat used for writing sales scripts.
type ScriptService struct {
	Client   *gemini.Client
	Settings *SettingsService
}

func NewScriptService(client *gemini.Client, settings *SettingsService) *ScriptService {
	return &ScriptService{Client: client, Settings: settings}
}

// Chat sends the persona, the prior turns and the new user message, and
// returns the model's reply. The key is resolved at call time; a missing key
// fails before any network traffic.
func (s *ScriptService) Chat(ctx context.Context, history []models.ChatMessage, message string) (string, error) {
	apiKey := s.Settings.ResolveAPIKey()
	if apiKey == "" {
		return "", gemini.ErrMissingKey
	}

	contents := make([]gemini.Content, 0, len(history)+2)
	contents = append(contents, gemini.Content{
		Role:  "user",
		Parts: []gemini.Part{{Text: systemInstruction}},
	})
	for _, m := range history {
		contents = append(contents, gemini.Content{
			Role:  string(m.Role),
			Parts: []gemini.Part{{Text: m.Text}},
		})
	}
	contents = append(contents, gemini.Content{
		Role:  "user",
		Parts: []gemini.Part{{Text: message}},
	})

	reply, err := s.Client.GenerateContent(ctx, apiKey, contents, false)
	if err != nil {
		log.Printf("[ai][script] generate failed: %v", err)
		return "", err
	}
	return reply, nil
}
