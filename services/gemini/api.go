package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

const (
	keyFlag    = "gemini-api-key"
	hostFlag   = "gemini-api-host"
	portFlag   = "gemini-api-port"
	secureFlag = "gemini-api-secure"
	modelFlag  = "gemini-model"
)

func RegisterFlags(f []cli.Flag) []cli.Flag {
	return append(f,
		cli.StringFlag{
			Name:   hostFlag,
			Usage:  "gemini api host",
			EnvVar: "GEMINI_API_HOST",
			Value:  "generativelanguage.googleapis.com",
		},
		cli.IntFlag{
			Name:   portFlag,
			Usage:  "gemini api port",
			EnvVar: "GEMINI_API_PORT",
			Value:  443,
		},
		cli.BoolTFlag{
			Name:   secureFlag,
			Usage:  "gemini api secure (https)",
			EnvVar: "GEMINI_API_SECURE",
		},
		cli.StringFlag{
			Name:   keyFlag,
			Usage:  "gemini api key",
			Value:  "",
			EnvVar: "GEMINI_API_KEY",
		},
		cli.StringFlag{
			Name:   modelFlag,
			Usage:  "gemini model",
			Value:  "gemini-2.5-flash",
			EnvVar: "GEMINI_MODEL",
		},
	)
}

const (
	temperature = 0.8
	topP        = 0.9
)

type generateRequest struct {
	Contents         []content       `json:"contents"`
	GenerationConfig *generateConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateConfig struct {
	ResponseMimeType string  `json:"responseMimeType,omitempty"`
	ResponseSchema   *Schema `json:"responseSchema,omitempty"`
	Temperature      float64 `json:"temperature,omitempty"`
	TopP             float64 `json:"topP,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

type Api struct {
	url            string
	model          string
	cl             *http.Client
	prepareRequest func(r *http.Request) (*http.Request, error)
}

func New(c *cli.Context, cl *http.Client) *Api {
	host := c.String(hostFlag)
	port := c.Int(portFlag)
	secure := c.BoolT(secureFlag)
	key := c.String(keyFlag)
	model := c.String(modelFlag)
	if key == "" {
		return nil
	}

	protocol := "http"
	if secure {
		protocol = "https"
	}

	u := fmt.Sprintf("%v://%v:%v", protocol, host, port)
	prepareRequest := func(r *http.Request) (*http.Request, error) {
		r.Header.Set("x-goog-api-key", key)
		r.Header.Set("Content-Type", "application/json")
		return r, nil
	}

	log.Infof("gemini api endpoint %v model %v", u, model)

	return &Api{
		url:            u,
		model:          model,
		cl:             cl,
		prepareRequest: prepareRequest,
	}
}

// GenerateText sends a single-turn prompt with a structured output schema
// and returns the raw text of the first candidate.
func (api *Api) GenerateText(ctx context.Context, prompt string, schema *Schema) (string, error) {
	reqURL := fmt.Sprintf("%s/v1beta/models/%s:generateContent", api.url, api.model)

	body := &generateRequest{
		Contents: []content{
			{Parts: []part{{Text: prompt}}},
		},
		GenerationConfig: &generateConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   schema,
			Temperature:      temperature,
			TopP:             topP,
		},
	}

	b, err := json.Marshal(body)
	if err != nil {
		return "", errors.Wrap(err, "marshal request")
	}

	req, err := http.NewRequestWithContext(ctx, "POST", reqURL, bytes.NewReader(b))
	if err != nil {
		return "", errors.Wrap(err, "create request")
	}

	req, err = api.prepareRequest(req)
	if err != nil {
		return "", errors.Wrap(err, "prepare request")
	}

	resp, err := api.cl.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "request failed")
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	var gr generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return "", errors.Wrap(err, "decode response")
	}

	if resp.StatusCode != http.StatusOK {
		if gr.Error != nil {
			return "", errors.Errorf("gemini error: %v %v", gr.Error.Status, gr.Error.Message)
		}
		return "", errors.Errorf("gemini error: status %v", resp.StatusCode)
	}

	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("gemini error: empty candidates")
	}

	text := ""
	for _, p := range gr.Candidates[0].Content.Parts {
		text += p.Text
	}

	return text, nil
}
