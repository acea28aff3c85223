/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/valpere/lindatran/internal/config"
	"github.com/valpere/lindatran/internal/httpclient"
	"github.com/valpere/lindatran/internal/translator"
)

const defaultModel = "aya-expanse-8b"

// loadConfig resolves the command's settings and sets up logging on the
// command's stderr.
func loadConfig(cmd *cobra.Command) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(cmd.Flags(), cfgFile)
	if err != nil {
		return nil, zerolog.Nop(), err
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose)
	if cfg.ConfigFile != "" {
		logger.Debug().Str("file", cfg.ConfigFile).Msg("using config file")
	}
	return cfg, logger, nil
}

func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// newClient builds the translation client for cfg.
func newClient(cfg *config.Config, logger zerolog.Logger) (*translator.Client, error) {
	httpClient, err := httpclient.New(httpclient.Options{
		Timeout: cfg.Timeout,
		Proxy:   cfg.Proxy,
		NoProxy: cfg.NoProxy,
	})
	if err != nil {
		return nil, err
	}

	if cfg.Proxy != "" {
		logger.Debug().Str("proxy", httpclient.MaskProxyURL(cfg.Proxy)).Msg("using proxy")
	}

	return translator.NewClient(cfg.BaseURL, httpClient, logger), nil
}

// checkLang trims code and rejects an empty one. Values that are not BCP 47
// tags only get a warning: the service also accepts language names.
func checkLang(logger zerolog.Logger, flag, code string) (string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", fmt.Errorf("--%s language is required", flag)
	}
	if _, err := language.Parse(code); err != nil {
		logger.Warn().Err(err).Str("flag", flag).Str("lang", code).Msg("not a BCP 47 language tag, sending as given")
	}
	return code, nil
}
