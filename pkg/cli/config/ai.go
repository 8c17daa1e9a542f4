package config

import (
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/brandlens/brandlens/pkg/domain/interfaces"
	"github.com/brandlens/brandlens/pkg/domain/types"
	"github.com/brandlens/brandlens/pkg/infra/ai"
)

type AI struct {
	endpoint string
	apiKey   types.AIAPIKey
	model    string
}

func (x *AI) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "ai-endpoint",
			Usage:       "Chat completion API endpoint (optional, fix options fall back to templates without it)",
			Category:    "AI",
			Sources:     cli.EnvVars("BRANDLENS_AI_ENDPOINT"),
			Destination: &x.endpoint,
		},
		&cli.StringFlag{
			Name:        "ai-api-key",
			Usage:       "Chat completion API key",
			Category:    "AI",
			Sources:     cli.EnvVars("BRANDLENS_AI_API_KEY"),
			Destination: (*string)(&x.apiKey),
		},
		&cli.StringFlag{
			Name:        "ai-model",
			Usage:       "Chat completion model name",
			Category:    "AI",
			Sources:     cli.EnvVars("BRANDLENS_AI_MODEL"),
			Value:       "gpt-4o-mini",
			Destination: &x.model,
		},
	}
}

func (x *AI) Enabled() bool {
	return x.endpoint != ""
}

// NewGenerator returns nil when no endpoint is configured; the usecase
// layer treats a nil generator as "templates only".
func (x *AI) NewGenerator() interfaces.TextGenerator {
	if !x.Enabled() {
		return nil
	}
	return ai.New(x.endpoint, x.apiKey, ai.WithModel(x.model))
}

func (x *AI) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("endpoint", x.endpoint),
		slog.Any("apiKey", x.apiKey),
		slog.Any("model", x.model),
	)
}
