// Package coach is the IronBot AI coach: a Gemini-backed chat with
// persistent threads, grounded in the user's workout history.
package coach

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"

	"github.com/coocood/freecache"

	"github.com/bfit-app/bfit-backend/internal/telemetry/tracing"
)

const (
	defaultGeminiModel = "gemini-2.5-flash"
	geminiTemperature  = 0.7

	systemInstruction = `You are IronBot, an elite bodybuilding coach with the knowledge of legends like Arnold, scientific approach of Jeff Nippard, and intensity of CBUM.
Your goal is to help the user with workout advice, form tips (text-based), split recommendations, and recovery science.
Keep answers concise, direct, and motivating. No fluff. Use bodybuilding terminology correctly (e.g., hypertrophy, progressive overload, RPE, volume, frequency).`

	defaultContext = "No active workout context."

	// fallback replies, the coach never surfaces raw errors to the user
	replyKeyMissing   = "AI Configuration Error: API Key missing."
	replyEmpty        = "Train harder, I couldn't process that."
	replyConnectError = "I'm having trouble connecting to the neural link. Check your connection."

	oneMinute         = 60
	replyCacheExpire  = oneMinute * 10
	replyCacheSizeMiB = 20
)

// Client calls the Gemini generateContent REST API. Identical prompts
// are answered from a short-lived cache to spare quota on retries.
type Client struct {
	apiURL     string // https://generativelanguage.googleapis.com
	apiKey     string
	model      string
	cache      *freecache.Cache
	httpClient *http.Client
}

func NewClient(apiURL, apiKey, model string, httpClient *http.Client) *Client {
	if model == "" {
		model = defaultGeminiModel
	}
	megabyte := 1024 * 1024
	return &Client{
		apiURL:     strings.TrimSuffix(apiURL, "/"),
		apiKey:     apiKey,
		model:      model,
		cache:      freecache.NewCache(replyCacheSizeMiB * megabyte),
		httpClient: httpClient,
	}
}

type generateContentRequest struct {
	SystemInstruction content          `json:"system_instruction"`
	Contents          []content        `json:"contents"`
	GenerationConfig  generationConfig `json:"generationConfig"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature float64 `json:"temperature"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// GetCoachResponse asks IronBot. It never returns an error: failures
// map to fixed coach-voice fallback replies.
func (c *Client) GetCoachResponse(ctx context.Context, userMessage, workoutContext string) (reply string) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "coachClient.getCoachResponse")
	defer span.End()
	defer func() {
		span.SetStatus(codes.Ok, fmt.Sprintf("coach reply length: %d", len(reply)))
	}()

	if c.apiKey == "" {
		log.Warnln("gemini api key is missing, ai coach will not work")
		return replyKeyMissing
	}

	if workoutContext == "" {
		workoutContext = defaultContext
	}
	prompt := fmt.Sprintf("%s\n\nUser question: %s", workoutContext, userMessage)

	cacheKey := sha256.Sum256([]byte(prompt))
	if cachedReply, err := c.cache.Get(cacheKey[:]); err == nil {
		log.Tracef("found coach reply in cache")
		return string(cachedReply)
	}

	reqBody, err := json.Marshal(generateContentRequest{
		SystemInstruction: content{Parts: []part{{Text: systemInstruction}}},
		Contents: []content{
			{Role: "user", Parts: []part{{Text: prompt}}},
		},
		GenerationConfig: generationConfig{Temperature: geminiTemperature},
	})
	if err != nil {
		log.Errorf("marshal gemini request: %s", err)
		return replyConnectError
	}

	geminiURL := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.apiURL, c.model)
	req, err := http.NewRequestWithContext(ctx, "POST", geminiURL, bytes.NewReader(reqBody))
	if err != nil {
		log.Errorf("create gemini request: %s", err)
		return replyConnectError
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Errorf("gemini http client do: %s", err)
		return replyConnectError
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Errorf("read gemini response bytes: %s", err)
		return replyConnectError
	}

	if resp.StatusCode != http.StatusOK {
		log.Errorf("gemini response status %d: %s", resp.StatusCode, string(respBytes))
		return replyConnectError
	}

	var contentResp generateContentResponse
	if err := json.Unmarshal(respBytes, &contentResp); err != nil {
		log.Errorf("unmarshal gemini response bytes: %s", err)
		return replyConnectError
	}

	text := c.responseText(contentResp)
	if text == "" {
		log.Errorf("gemini returned an empty response")
		return replyEmpty
	}

	if err := c.cache.Set(cacheKey[:], []byte(text), replyCacheExpire); err != nil {
		log.Errorf("failed to write coach reply cache: %s", err)
	}

	return text
}

func (c *Client) responseText(resp generateContentResponse) string {
	for _, candidate := range resp.Candidates {
		for _, p := range candidate.Content.Parts {
			if text := strings.TrimSpace(p.Text); text != "" {
				return text
			}
		}
	}
	return ""
}
