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
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

var (
	inputFile  string
	outputFile string
	targetLang string
)

var translateCmd = &cobra.Command{
	Use:   "translate [text...]",
	Short: "Translate text into a supported language",
	Long: `Translate text into one of the supported languages using Gemini.

The text is taken from the arguments, from --input, or from standard input,
in that order. The translation is printed exactly as returned.

Examples:
  gemtran translate -t French "Hello, world"
  gemtran translate -t German -i notes.txt -o notes.de.txt
  echo "Good morning" | gemtran translate -t Urdu`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInputText(args, inputFile, cmd.InOrStdin())
		if err != nil {
			return err
		}

		tr, closeFn, err := buildTranslator(cfg, logger)
		if err != nil {
			return err
		}
		defer closeFn()

		translated, err := tr.Translate(cmd.Context(), text, targetLang)
		if err != nil {
			return err
		}

		if outputFile == "" {
			fmt.Fprintln(cmd.OutOrStdout(), translated)
			return nil
		}

		if dir := filepath.Dir(outputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}
		if err := os.WriteFile(outputFile, []byte(translated), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Successfully translated to %s\n", targetLang)
		return nil
	},
}

func readInputText(args []string, path string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		if path != "" {
			return "", fmt.Errorf("pass text either as arguments or with --input, not both")
		}
		return strings.Join(args, " "), nil
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read standard input: %w", err)
	}
	return string(data), nil
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().StringVarP(&targetLang, "target", "t", "", "Target language, e.g. French or \"Chinese (Simplified)\" (required)")
	translateCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input file to translate")
	translateCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file for the translation (default: stdout)")

	translateCmd.MarkFlagRequired("target")
}
