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
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/valpere/lindatran/internal/translator"
)

const defaultFileBaseURL = "https://quest.ms.mff.cuni.cz/llmtranslate-1/api/v2/models"

var fileCmd = &cobra.Command{
	Use:   "file <input_file>",
	Short: "Translate a document and save the result",
	Long: `Translate the raw contents of a file and write the service's response to
an output file, translated_<input_file> next to the input by default.

With --tags the file is uploaded as an XML file part instead of a form field.
Any failure (unreadable input, service error, unwritable output) ends the
command with a non-zero exit code.

Example:
  lindatran file report.docx --src en --tgt fr
  lindatran file page.xml --tags -o page.fr.xml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		inputPath := args[0]
		outputPath := cfg.Output
		if outputPath == "" {
			outputPath = defaultOutputPath(inputPath)
		}
		if filepath.Clean(outputPath) == filepath.Clean(inputPath) {
			return fmt.Errorf("input file and output file cannot be the same")
		}

		srcLang, err := checkLang(logger, "src", cfg.SourceLang)
		if err != nil {
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

		translated, err := client.TranslateFile(cmd.Context(), translator.FileRequest{
			SourceLang: srcLang,
			TargetLang: tgtLang,
			Model:      cfg.Model,
			Path:       inputPath,
			Prompt:     cfg.Prompt,
			Tags:       cfg.Tags,
		})
		if err != nil {
			return err
		}

		if err := writeOutput(outputPath, translated); err != nil {
			return fmt.Errorf("error writing to output file '%s': %w", outputPath, err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Translation saved to '%s'\n", outputPath)
		return nil
	},
}

// defaultOutputPath prefixes the base name of inputPath with "translated_",
// keeping the directory.
func defaultOutputPath(inputPath string) string {
	return filepath.Join(filepath.Dir(inputPath), "translated_"+filepath.Base(inputPath))
}

func writeOutput(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

func init() {
	rootCmd.AddCommand(fileCmd)

	fileCmd.Flags().String("src", "en", "Source language code")
	fileCmd.Flags().String("tgt", "fr", "Target language code")
	fileCmd.Flags().Bool("tags", false, "Upload the file as an XML file part")
	fileCmd.Flags().String("prompt", "", "Optional prompt for the model")
	fileCmd.Flags().String("base-url", defaultFileBaseURL, "Base URL of the translation API")
	fileCmd.Flags().StringP("output", "o", "", "Output file (default: translated_<input_file>)")
}
