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
	"context"
	"fmt"
	"html"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/valpere/lindatran/internal/detector"
	"github.com/valpere/lindatran/internal/postprocess"
	"github.com/valpere/lindatran/internal/prompt"
	"github.com/valpere/lindatran/internal/translator"
	"github.com/valpere/lindatran/internal/validator"
)

const defaultTextBaseURL = "http://localhost:5001/api/v2/models"

var textCmd = &cobra.Command{
	Use:   "text [input_file]",
	Short: "Translate a block of text",
	Long: `Translate a block of text read from input_file, or from standard input
when input_file is omitted or "-". The translation is printed to stdout.

With --tags the text is sent inside an XML envelope as a file upload so the
service handles inline markup itself. Without --prompt a default instruction
is chosen: a markup-preserving one when the text contains tags and --tags is
off, a plain one otherwise.

Use --src auto to detect the source language locally, and --verify to warn
when the translation does not look like the target language.

Example:
  echo "Dobrý den" | lindatran text --src cs --tgt uk
  lindatran text --src en --tgt fr --tags page.html`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		text, err := readText(cmd.InOrStdin(), args)
		if err != nil {
			return err
		}

		var det *detector.Detector
		srcLang := cfg.SourceLang
		if strings.EqualFold(strings.TrimSpace(srcLang), detector.Auto) {
			det = detector.New()
			srcLang, err = det.Resolve(detector.Auto, text)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Detected source language: %s\n", srcLang)
		}
		if srcLang, err = checkLang(logger, "src", srcLang); err != nil {
			return err
		}
		tgtLang, err := checkLang(logger, "tgt", cfg.TargetLang)
		if err != nil {
			return err
		}

		client, err := newClient(cfg, logger)
		if err != nil {
			return err
		}

		translated, err := translateText(cmd.Context(), client, translator.TextRequest{
			SourceLang: srcLang,
			TargetLang: tgtLang,
			Model:      cfg.Model,
			Text:       text,
			Prompt:     cfg.Prompt,
			Tags:       cfg.Tags,
		}, cfg.PromptSet, cfg.Clean)
		if err != nil {
			stderr := cmd.ErrOrStderr()
			fmt.Fprintf(stderr, "Error: %v\n", err)
			fmt.Fprintln(stderr, "ERROR")
			return errReported
		}

		if cfg.Verify {
			if err := validator.New(det).Check(translated, tgtLang); err != nil {
				logger.Warn().Err(err).Msg("translation may not be in the target language")
			}
		}

		fmt.Fprintln(cmd.OutOrStdout(), translated)
		return nil
	},
}

// readText returns the contents of the single positional file, or of in when
// there is none.
func readText(in io.Reader, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(in)
		if err != nil {
			return "", fmt.Errorf("failed to read standard input: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read input file: %w", err)
	}
	return string(data), nil
}

// translateText fills in the default prompt unless one was set, calls the service and turns the
// response into display text.
func translateText(ctx context.Context, client *translator.Client, req translator.TextRequest, promptSet, clean bool) (string, error) {
	req.Prompt = prompt.Resolve(req.Prompt, promptSet, req.Text, req.Tags)

	out, err := client.TranslateText(ctx, req)
	if err != nil {
		return "", err
	}

	if clean {
		out = postprocess.Clean(out)
	}
	return html.UnescapeString(out), nil
}

func init() {
	rootCmd.AddCommand(textCmd)

	textCmd.Flags().String("src", "cs", "Source language code, or \"auto\" to detect")
	textCmd.Flags().String("tgt", "uk", "Target language code")
	textCmd.Flags().Bool("tags", false, "Send the text in an XML envelope so tags are handled separately")
	textCmd.Flags().String("prompt", "", "Prompt for the model (default template chosen from the input)")
	textCmd.Flags().String("base-url", defaultTextBaseURL, "Base URL of the translation API")
	textCmd.Flags().Bool("clean", false, "Strip reasoning blocks and preambles from the model output")
	textCmd.Flags().Bool("verify", false, "Warn when the translation is not detected as the target language")
}
