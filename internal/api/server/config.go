package server

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/DjordjeVuckovic/calcfin/pkg/utils"
)

type Config struct {
	Port        string
	UseHttp2    bool
	CorsOrigins []string
	// BodyLimit caps request bodies, e.g. "16K".
	BodyLimit string
}

// LoadConfig reads server settings from the environment; .env loading is the caller's job.
func LoadConfig() (*Config, error) {
	useHttp2 := os.Getenv("USE_HTTP2") == "true"

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := validatePort(port); err != nil {
		return nil, fmt.Errorf("invalid port: %w", err)
	}

	origins := utils.SplitAndTrim(os.Getenv("CORS_ORIGINS"))
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	bodyLimit := os.Getenv("BODY_LIMIT")
	if bodyLimit == "" {
		bodyLimit = "16K"
	}

	return &Config{
		Port:        port,
		UseHttp2:    useHttp2,
		CorsOrigins: origins,
		BodyLimit:   bodyLimit,
	}, nil
}

func validatePort(port string) error {
	portNum, err := strconv.Atoi(port)

	if err != nil {
		return errors.New("port must be a number")
	}

	if portNum < 1 || portNum > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	return nil
}
