package diagnoses

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"podium-service/internal/app/contracts"
	"podium-service/internal/app/models"
	"podium-service/internal/app/services/core/intake"
	"podium-service/internal/pkg/constvars"
	"podium-service/internal/pkg/exceptions"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
)

const (
	OpenAIProviderName = "openai"
	maxCandidates      = 3

	systemPrompt    = "Responde solo JSON válido."
	diagnosisPrompt = "Eres fisioterapeuta experto en diagnóstico diferencial. " +
		"Responde SOLO JSON como {\"ddx\":[{\"label\":\"\",\"prob\":0,\"why\":\"\"},...]} " +
		"3 diagnósticos diferenciales, \"prob\" 0-100, \"why\" breve. ANAMNESIS JSON:\n"
)

var errEmptyDdx = errors.New("provider returned no candidates")

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Temperature float64       `json:"temperature"`
	Messages    []chatMessage `json:"messages"`
}

type openAIProvider struct {
	BaseUrl     string
	ApiKey      string
	Model       string
	Temperature float64
	Client      *http.Client
}

func NewOpenAIProvider(baseUrl, apiKey, model string, temperature float64, timeout time.Duration) contracts.DiagnosisProvider {
	return &openAIProvider{
		BaseUrl:     strings.TrimRight(baseUrl, "/"),
		ApiKey:      apiKey,
		Model:       model,
		Temperature: temperature,
		Client:      &http.Client{Timeout: timeout},
	}
}

func (p *openAIProvider) Name() string {
	return OpenAIProviderName
}

func (p *openAIProvider) Diagnose(ctx context.Context, bodyRegion string, answers models.Answers) ([]models.DdxCandidate, error) {
	anamnesis := answers.Clone()
	delete(anamnesis, intake.EmailFieldID)
	anamnesis["bodyRegion"] = bodyRegion

	anamnesisJSON, err := json.Marshal(anamnesis)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	requestJSON, err := json.Marshal(chatCompletionRequest{
		Model:       p.Model,
		Temperature: p.Temperature,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: diagnosisPrompt + string(anamnesisJSON)},
		},
	})
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, p.BaseUrl+"/chat/completions", bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+p.ApiKey)

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, exceptions.ErrDiagnosisProvider(err, OpenAIProviderName)
	}
	if resp.StatusCode != constvars.StatusOK {
		providerErr := fmt.Errorf("status %d: %s", resp.StatusCode, gjson.GetBytes(body, "error.message").String())
		return nil, exceptions.ErrDiagnosisProvider(providerErr, OpenAIProviderName)
	}

	content := gjson.GetBytes(body, "choices.0.message.content").String()
	candidates, err := ParseDdx(content)
	if err != nil {
		return nil, exceptions.ErrDiagnosisParse(err)
	}
	return candidates, nil
}

// ParseDdx reads the {"ddx":[{label,prob,why}]} payload, tolerating a
// markdown code fence around it.
func ParseDdx(content string) ([]models.DdxCandidate, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	if !gjson.Valid(content) {
		return nil, fmt.Errorf("invalid JSON content %q", content)
	}

	candidates := make([]models.DdxCandidate, 0, maxCandidates)
	gjson.Get(content, "ddx").ForEach(func(_, item gjson.Result) bool {
		label := strings.TrimSpace(item.Get("label").String())
		if label == "" {
			return true
		}
		probability := item.Get("prob").Float()
		if probability < 0 {
			probability = 0
		}
		if probability > 100 {
			probability = 100
		}
		candidates = append(candidates, models.DdxCandidate{
			Label:       label,
			Probability: probability,
			Rationale:   strings.TrimSpace(item.Get("why").String()),
		})
		return len(candidates) < maxCandidates
	})

	if len(candidates) == 0 {
		return nil, errEmptyDdx
	}
	return candidates, nil
}
